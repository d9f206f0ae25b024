package datum

type MessageUser struct {
	UserId    string `json:"userid"`
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type Message struct {
	Base
	MessageText   string       `json:"messageText"`
	ParentMessage string       `json:"parentMessage,omitempty"`
	User          *MessageUser `json:"user,omitempty"`
}

// NormalizeMessage accepts notes from the message API, which carry their date in
// "timestamp" rather than "time".
func NormalizeMessage(raw Raw, opts *Options) (*Message, error) {
	if _, ok := raw["time"]; !ok {
		if timestamp, ok := raw.String("timestamp"); ok {
			raw = withValue(raw, "time", timestamp)
		}
	}
	base, err := normalizeBase(raw, opts, TypeMessage)
	if err != nil {
		return nil, err
	}

	message := &Message{
		Base:          base,
		MessageText:   raw.StringOr("messagetext", raw.StringOr("messageText", "")),
		ParentMessage: raw.StringOr("parentmessage", raw.StringOr("parentMessage", "")),
	}
	if user, ok := raw.Map("user"); ok {
		message.User = &MessageUser{}
		if err := decode(user, message.User); err != nil {
			message.User = nil
		}
	}
	return message, nil
}

func withValue(raw Raw, key string, value interface{}) Raw {
	result := make(Raw, len(raw)+1)
	for k, v := range raw {
		result[k] = v
	}
	result[key] = value
	return result
}
