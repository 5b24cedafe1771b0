package repositories

import (
	"errors"
	"fmt"
	"os"

	"event-booking-terminal/internal/codec"
	"event-booking-terminal/internal/models"
	"event-booking-terminal/pkg/database"

	"github.com/sirupsen/logrus"
)

type eventRepo struct {
	file   *database.FlatFile
	codec  codec.EventCodec
	log    logrus.FieldLogger
	events []*models.Event
}

func NewEventRepository(file *database.FlatFile, c codec.EventCodec, log logrus.FieldLogger) EventRepository {
	return &eventRepo{file: file, codec: c, log: log}
}

// Load replaces the in-memory collection with the file content. A missing
// file is not an error and yields an empty collection.
func (r *eventRepo) Load() error {
	r.events = nil

	data, err := r.file.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.log.WithField("file", r.file.Path).Info("No events file found, starting empty")
			return nil
		}
		return fmt.Errorf("failed to load events: %w", err)
	}

	events, skipped := r.codec.Decode(data)
	for _, s := range skipped {
		r.log.WithFields(logrus.Fields{
			"file": r.file.Path,
			"line": s.Line,
		}).Warnf("Skipping invalid event line: %s", s.Reason)
	}

	for i := range events {
		ev := events[i]
		r.events = append(r.events, &ev)
	}

	r.log.WithField("count", len(r.events)).Info("Events loaded")
	return nil
}

func (r *eventRepo) Save() error {
	events := make([]models.Event, len(r.events))
	for i, ev := range r.events {
		events[i] = *ev
	}
	return r.file.Write(r.codec.Encode(events))
}

// persist rewrites the file after a mutation; failures are logged only.
func (r *eventRepo) persist() {
	if err := r.Save(); err != nil {
		r.log.WithError(err).WithField("file", r.file.Path).Error("Failed to save events")
	}
}

func (r *eventRepo) filter(keep func(*models.Event) bool) []models.Event {
	var out []models.Event
	for _, ev := range r.events {
		if keep(ev) {
			out = append(out, ev.Clone())
		}
	}
	return out
}

func (r *eventRepo) ListEvents() []models.Event {
	return r.filter(func(*models.Event) bool { return true })
}

func (r *eventRepo) ListEventsByStatus(status models.EventStatus) []models.Event {
	return r.filter(func(ev *models.Event) bool { return ev.Status == status })
}

func (r *eventRepo) ListEventsByOrganizer(organizerID int) []models.Event {
	return r.filter(func(ev *models.Event) bool { return ev.OrganizerID == organizerID })
}

func (r *eventRepo) ListEventsByAttendee(attendeeID int) []models.Event {
	return r.filter(func(ev *models.Event) bool { return ev.HasAttendee(attendeeID) })
}

func (r *eventRepo) find(id int) (int, bool) {
	for i, ev := range r.events {
		if ev.ID == id {
			return i, true
		}
	}
	return -1, false
}

// GetEventByID returns a copy of the stored event.
func (r *eventRepo) GetEventByID(id int) (*models.Event, error) {
	i, ok := r.find(id)
	if !ok {
		return nil, fmt.Errorf("%w with ID: %d", ErrEventNotFound, id)
	}
	ev := r.events[i].Clone()
	return &ev, nil
}

// NextEventID is recomputed from the current collection on every call.
func (r *eventRepo) NextEventID() int {
	maxID := 0
	for _, ev := range r.events {
		if ev.ID > maxID {
			maxID = ev.ID
		}
	}
	return maxID + 1
}

func (r *eventRepo) HasSlotConflict(date, slot, location string, excludeID int) bool {
	for _, ev := range r.events {
		if ev.ID == excludeID {
			continue
		}
		if ev.Date == date && ev.Time == slot && ev.Location == location {
			return true
		}
	}
	return false
}

func (r *eventRepo) CreateEvent(event *models.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if _, exists := r.find(event.ID); exists {
		return fmt.Errorf("%w: event %d", ErrDuplicateID, event.ID)
	}

	ev := event.Clone()
	r.events = append(r.events, &ev)
	r.persist()

	r.log.WithField("event_id", ev.ID).Info("Event created")
	return nil
}

func (r *eventRepo) UpdateEvent(event *models.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	i, ok := r.find(event.ID)
	if !ok {
		return fmt.Errorf("%w with ID: %d", ErrEventNotFound, event.ID)
	}

	ev := event.Clone()
	r.events[i] = &ev
	r.persist()

	r.log.WithField("event_id", ev.ID).Debug("Event updated")
	return nil
}

func (r *eventRepo) DeleteEvent(id int) error {
	i, ok := r.find(id)
	if !ok {
		return fmt.Errorf("%w with ID: %d", ErrEventNotFound, id)
	}

	r.events = append(r.events[:i], r.events[i+1:]...)
	r.persist()

	r.log.WithField("event_id", id).Info("Event deleted")
	return nil
}

// DetachUser marks events organized by userID as orphaned and removes the
// user from every attendee list. Ratings are kept. It returns the number
// of events touched.
func (r *eventRepo) DetachUser(userID int) int {
	touched := 0
	for _, ev := range r.events {
		changed := false
		if ev.OrganizerID == userID {
			ev.OrganizerID = models.DeletedOrganizerID
			changed = true
		}
		for ev.RemoveAttendee(userID) {
			changed = true
		}
		if changed {
			touched++
		}
	}

	if touched > 0 {
		r.persist()
	}
	return touched
}
