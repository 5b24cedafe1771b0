package services

import (
	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/repositories"
	"event-booking-terminal/internal/utils"

	"github.com/sirupsen/logrus"
)

type ParticipantService struct {
	repo   *repositories.Repository
	events *EventService
	log    logrus.FieldLogger
}

func NewParticipantService(repo *repositories.Repository, events *EventService, log logrus.FieldLogger) *ParticipantService {
	return &ParticipantService{repo: repo, events: events, log: log}
}

type RatingRequest struct {
	Rating    float64 `validate:"min=1,max=5" label:"rating"`
	Comment   string
	Complaint string
}

// Register adds attendeeID to an upcoming event.
func (s *ParticipantService) Register(attendeeID, eventID int) (*models.Event, error) {
	if _, err := s.events.requireRole(attendeeID, models.RoleAttendee); err != nil {
		return nil, err
	}
	event, err := s.events.getEvent(eventID)
	if err != nil {
		return nil, err
	}
	return s.addAttendee(event, attendeeID)
}

// RegisterOnBehalf lets an organizer add an attendee account, looked up by
// username, to one of the organizer's own events. The same status and
// duplicate rules as self-registration apply.
func (s *ParticipantService) RegisterOnBehalf(organizerID, eventID int, username string) (*models.Event, *models.User, error) {
	event, err := s.events.getOwnedEvent(organizerID, eventID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.repo.UserRepo.GetUserByUsername(username)
	if err != nil || user.Role != models.RoleAttendee {
		return nil, nil, NewBookingError("Attendee not found", ErrUserNotFound, err)
	}

	event, err = s.addAttendee(event, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return event, user, nil
}

func (s *ParticipantService) addAttendee(event *models.Event, attendeeID int) (*models.Event, error) {
	if event.Status != models.StatusUpcoming {
		return nil, NewBookingError("Registration is only open for upcoming events", ErrInvalidStatus, nil)
	}
	if event.HasAttendee(attendeeID) {
		return nil, NewBookingError("Already registered for this event", ErrAlreadyRegistered, nil)
	}

	event.Attendees = append(event.Attendees, attendeeID)
	if err := s.repo.EventRepo.UpdateEvent(event); err != nil {
		return nil, NewBookingError("Failed to update event", ErrStorage, err)
	}

	s.log.WithFields(logrus.Fields{
		"event_id": event.ID,
		"user_id":  attendeeID,
	}).Info("Attendee registered")
	return event, nil
}

// CancelRegistration removes attendeeID from the event. It reports false,
// and changes nothing, when the attendee was not registered.
func (s *ParticipantService) CancelRegistration(attendeeID, eventID int) (bool, error) {
	event, err := s.events.getEvent(eventID)
	if err != nil {
		return false, err
	}
	if !event.RemoveAttendee(attendeeID) {
		return false, nil
	}

	if err := s.repo.EventRepo.UpdateEvent(event); err != nil {
		return false, NewBookingError("Failed to update event", ErrStorage, err)
	}

	s.log.WithFields(logrus.Fields{
		"event_id": event.ID,
		"user_id":  attendeeID,
	}).Info("Registration cancelled")
	return true, nil
}

// SubmitRating stores or replaces the attendee's rating of a completed
// event and recomputes the average.
func (s *ParticipantService) SubmitRating(attendeeID, eventID int, req RatingRequest) (*models.Event, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewBookingError(err.Error(), ErrInvalidInput, nil)
	}

	event, err := s.events.getEvent(eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != models.StatusCompleted {
		return nil, NewBookingError("Only completed events can be rated", ErrInvalidStatus, nil)
	}
	if !event.HasAttendee(attendeeID) {
		return nil, NewBookingError("You did not attend this event", ErrNotRegistered, nil)
	}

	rating := models.Rating{
		AttendeeID: attendeeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Complaint:  req.Complaint,
	}
	if existing, ok := event.FindRating(attendeeID); ok {
		*existing = rating
	} else {
		event.Ratings = append(event.Ratings, rating)
	}
	event.RecalculateAverageRating()

	if err := s.repo.EventRepo.UpdateEvent(event); err != nil {
		return nil, NewBookingError("Failed to update event", ErrStorage, err)
	}

	s.log.WithFields(logrus.Fields{
		"event_id": event.ID,
		"user_id":  attendeeID,
		"average":  event.AverageRating,
	}).Info("Rating submitted")
	return event, nil
}

// RateableEvents lists completed events the attendee attended.
func (s *ParticipantService) RateableEvents(attendeeID int) []models.Event {
	var out []models.Event
	for _, ev := range s.repo.EventRepo.ListEventsByAttendee(attendeeID) {
		if ev.Status == models.StatusCompleted {
			out = append(out, ev)
		}
	}
	return out
}

// Attendees resolves the attendee ids of an event to accounts. Ids whose
// account no longer exists are skipped.
func (s *ParticipantService) Attendees(event *models.Event) []models.User {
	var users []models.User
	for _, id := range event.Attendees {
		if u, err := s.repo.UserRepo.GetUserByID(id); err == nil {
			users = append(users, *u)
		}
	}
	return users
}
