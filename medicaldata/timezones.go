package medicaldata

import (
	"strconv"

	"github.com/eapache/queue"
	"github.com/google/uuid"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/timeutil"
)

// TimezoneListEntry tells the zone in use from Time on. The first entry has a zero Time.
type TimezoneListEntry struct {
	Time     int64  `json:"time"`
	Timezone string `json:"timezone"`
}

type TimezoneList []TimezoneListEntry

// At returns the zone in use at epoch, or fallback when the list is empty.
func (l TimezoneList) At(epoch int64, fallback string) string {
	timezone := fallback
	for _, entry := range l {
		if entry.Time > epoch {
			break
		}
		timezone = entry.Timezone
	}
	return timezone
}

// Latest returns the last zone of the list, or fallback when the list is empty.
func (l TimezoneList) Latest(fallback string) string {
	if len(l) == 0 {
		return fallback
	}
	return l[len(l)-1].Timezone
}

// NormalizeTimezones fixes the zones of data and detects where they change.
//
// Records with a missing, invalid or previously guessed zone get the last valid zone seen
// before them (or the first valid zone of the data). The records where the display offset
// changes give the zone lookup table and, except the first one, the generated change
// events. A change in offset within the same zone is a DST transition: its event is
// placed on the transition instant rather than on the next record.
//
// data must not contain timezone changes nor fills. It is sorted in place.
func NormalizeTimezones(data []datum.Datum, fallback string) (TimezoneList, []*datum.TimeZoneChange) {
	datum.SortByEpoch(data)
	backfillTimezones(data, fallback)

	eventIndexes := make([]int, 0)
	for i, d := range data {
		if i == 0 || d.GetBase().DisplayOffset != data[i-1].GetBase().DisplayOffset {
			eventIndexes = append(eventIndexes, i)
		}
	}

	list := make(TimezoneList, 0, len(eventIndexes))
	changes := make([]*datum.TimeZoneChange, 0)
	for n, i := range eventIndexes {
		event := data[i].GetBase()
		if n == 0 {
			list = append(list, TimezoneListEntry{Time: 0, Timezone: event.Timezone})
			continue
		}
		list = append(list, TimezoneListEntry{Time: event.Epoch, Timezone: event.Timezone})

		previous := data[eventIndexes[n-1]].GetBase()
		if previous.Timezone != event.Timezone {
			changes = append(changes, newTimeZoneChange(event.Epoch, event.Epoch, previous.Timezone, event.Timezone))
			continue
		}

		before := data[i-1].GetBase()
		boundary, ok := timeutil.FindTransition(before.Epoch, event.Epoch, event.Timezone)
		if !ok {
			boundary = event.Epoch
		}
		changes = append(changes, newTimeZoneChange(boundary-1, boundary, event.Timezone, event.Timezone))
	}
	return list, changes
}

// backfillTimezones gives the records without a usable zone the last valid zone seen
// before them. The records preceding the first valid zone wait in a queue until it is
// known, and get fallback when the data has none.
func backfillTimezones(data []datum.Datum, fallback string) {
	pending := queue.New()
	current := ""
	for _, d := range data {
		base := d.GetBase()
		if !base.GuessedTimezone && timeutil.IsValidTimezone(base.Timezone) {
			current = base.Timezone
			drainTimezones(pending, current)
			continue
		}
		if current == "" {
			pending.Add(d)
			continue
		}
		d.SetTimezone(current, true)
	}
	drainTimezones(pending, fallback)
}

func drainTimezones(pending *queue.Queue, timezone string) {
	for pending.Length() > 0 {
		pending.Remove().(datum.Datum).SetTimezone(timezone, true)
	}
}

var generatedNamespace = uuid.MustParse("5b1e3c7a-4f1d-4d0e-9a43-2f7a1c0e8b6d")

// generatedId derives the id of a generated record from what identifies it, so regenerating
// the same record keeps its id.
func generatedId(kind string, epoch int64, detail string) string {
	return uuid.NewSHA1(generatedNamespace, []byte(kind+"/"+strconv.FormatInt(epoch, 10)+"/"+detail)).String()
}

func newTimeZoneChange(fromEpoch, epoch int64, fromZone, toZone string) *datum.TimeZoneChange {
	id := generatedId(datum.SubTypeTimeChange, epoch, fromZone+">"+toZone)
	return datum.NewTimeZoneChange(id, fromEpoch, epoch, fromZone, toZone, datum.DefaultSource)
}
