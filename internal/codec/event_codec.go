package codec

import (
	"fmt"
	"strconv"
	"strings"

	"event-booking-terminal/internal/models"
)

// minEventFields is the number of fields up to and including averageRating.
const minEventFields = 16

type PipeEventCodec struct{}

func NewPipeEventCodec() *PipeEventCodec {
	return &PipeEventCodec{}
}

func (c *PipeEventCodec) Encode(events []models.Event) []byte {
	var b strings.Builder
	for _, ev := range events {
		fields := []string{
			strconv.Itoa(ev.ID),
			ev.Title,
			ev.Description,
			ev.Date,
			ev.Time,
			ev.Location,
			strconv.Itoa(ev.OrganizerID),
			encodeAttendees(ev.Attendees),
			strconv.Itoa(ev.ExpectedParticipants),
			formatFloat(ev.TotalFee),
			formatFloat(ev.ThemeCost),
			ev.ThemeName,
			ev.VendorName,
			ev.Marketing,
			ev.Status.String(),
			formatFloat(ev.AverageRating),
			encodeRatings(ev.Ratings),
		}
		b.WriteString(strings.Join(fields, FieldSep))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func (c *PipeEventCodec) Decode(data []byte) ([]models.Event, []LineError) {
	var (
		events  []models.Event
		skipped []LineError
	)

	splitLines(data, func(n int, line string) {
		ev, err := decodeEvent(line)
		if err != nil {
			skipped = append(skipped, LineError{Line: n, Content: line, Reason: err.Error()})
			return
		}
		events = append(events, ev)
	})

	return events, skipped
}

func decodeEvent(line string) (models.Event, error) {
	tokens := strings.Split(line, FieldSep)
	if len(tokens) < minEventFields {
		return models.Event{}, fmt.Errorf("invalid format: expected at least %d fields, got %d", minEventFields, len(tokens))
	}

	var (
		ev  models.Event
		err error
	)

	if ev.ID, err = strconv.Atoi(tokens[0]); err != nil {
		return models.Event{}, fmt.Errorf("invalid id: %w", err)
	}
	ev.Title = tokens[1]
	ev.Description = tokens[2]
	ev.Date = tokens[3]
	ev.Time = tokens[4]
	ev.Location = tokens[5]
	if ev.OrganizerID, err = strconv.Atoi(tokens[6]); err != nil {
		return models.Event{}, fmt.Errorf("invalid organizer id: %w", err)
	}
	if ev.Attendees, err = decodeAttendees(tokens[7]); err != nil {
		return models.Event{}, err
	}
	if ev.ExpectedParticipants, err = strconv.Atoi(tokens[8]); err != nil {
		return models.Event{}, fmt.Errorf("invalid expected participants: %w", err)
	}
	if ev.TotalFee, err = strconv.ParseFloat(tokens[9], 64); err != nil {
		return models.Event{}, fmt.Errorf("invalid total fee: %w", err)
	}
	if ev.ThemeCost, err = strconv.ParseFloat(tokens[10], 64); err != nil {
		return models.Event{}, fmt.Errorf("invalid theme cost: %w", err)
	}
	ev.ThemeName = tokens[11]
	ev.VendorName = tokens[12]
	ev.Marketing = tokens[13]
	ev.Status = models.ParseEventStatus(tokens[14])
	if ev.AverageRating, err = strconv.ParseFloat(tokens[15], 64); err != nil {
		return models.Event{}, fmt.Errorf("invalid average rating: %w", err)
	}

	if len(tokens) > minEventFields && tokens[16] != "" {
		if ev.Ratings, err = decodeRatings(tokens[16]); err != nil {
			return models.Event{}, err
		}
	}

	return ev, nil
}

func encodeAttendees(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ListSep)
}

func decodeAttendees(field string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(field, ListSep) {
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid attendee id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func encodeRatings(ratings []models.Rating) string {
	parts := make([]string, len(ratings))
	for i, r := range ratings {
		parts[i] = strings.Join([]string{
			strconv.Itoa(r.AttendeeID),
			formatFloat(r.Rating),
			r.Comment,
			r.Complaint,
		}, ListSep)
	}
	return strings.Join(parts, RatingSep)
}

// decodeRatings keeps at most four comma-separated parts per entry; any
// further parts (commas inside a complaint) are dropped.
func decodeRatings(field string) ([]models.Rating, error) {
	var ratings []models.Rating
	for _, entry := range strings.Split(field, RatingSep) {
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ListSep)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid rating entry %q", entry)
		}

		var (
			r   models.Rating
			err error
		)
		if r.AttendeeID, err = strconv.Atoi(parts[0]); err != nil {
			return nil, fmt.Errorf("invalid rating attendee id: %w", err)
		}
		if r.Rating, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return nil, fmt.Errorf("invalid rating value: %w", err)
		}
		if len(parts) > 2 {
			r.Comment = parts[2]
		}
		if len(parts) > 3 {
			r.Complaint = parts[3]
		}
		ratings = append(ratings, r)
	}
	return ratings, nil
}
