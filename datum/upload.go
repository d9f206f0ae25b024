package datum

type Upload struct {
	Base
	UploadId            string   `json:"uploadId"`
	DeviceTags          []string `json:"deviceTags"`
	DeviceManufacturers []string `json:"deviceManufacturers"`
	DeviceModel         string   `json:"deviceModel,omitempty"`
	DeviceSerialNumber  string   `json:"deviceSerialNumber,omitempty"`
	Version             string   `json:"version,omitempty"`
}

func NormalizeUpload(raw Raw, opts *Options) (*Upload, error) {
	base, err := normalizeBase(raw, opts, TypeUpload)
	if err != nil {
		return nil, err
	}
	return &Upload{
		Base:                base,
		UploadId:            raw.StringOr("uploadId", ""),
		DeviceTags:          raw.Strings("deviceTags"),
		DeviceManufacturers: raw.Strings("deviceManufacturers"),
		DeviceModel:         raw.StringOr("deviceModel", ""),
		DeviceSerialNumber:  raw.StringOr("deviceSerialNumber", ""),
		Version:             raw.StringOr("version", ""),
	}, nil
}
