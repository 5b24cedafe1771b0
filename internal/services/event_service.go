package services

import (
	"errors"
	"sort"

	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/repositories"
	"event-booking-terminal/internal/utils"

	"github.com/sirupsen/logrus"
)

type EventService struct {
	repo     *repositories.Repository
	checkout Checkout
	log      logrus.FieldLogger
}

func NewEventService(repo *repositories.Repository, checkout Checkout, log logrus.FieldLogger) *EventService {
	return &EventService{repo: repo, checkout: checkout, log: log}
}

type CreateEventRequest struct {
	OrganizerID          int    `validate:"required" label:"organizer"`
	Title                string `validate:"required" label:"title"`
	Description          string `validate:"required" label:"description"`
	Date                 string `validate:"required,event_date" label:"date"`
	Time                 string `validate:"required,time_slot" label:"time slot"`
	Location             string `validate:"required,venue" label:"location"`
	ExpectedParticipants int    `validate:"min=1,max=100" label:"expected participants"`
	// ThemeName is a catalog theme, or empty / "None" for no package.
	ThemeName string `validate:"omitempty,theme" label:"theme"`
}

// EditEventRequest holds the fields to change; nil keeps the current value.
type EditEventRequest struct {
	Title                *string `validate:"omitempty,min=1" label:"title"`
	Description          *string `validate:"omitempty,min=1" label:"description"`
	Date                 *string `validate:"omitempty,event_date" label:"date"`
	Time                 *string `validate:"omitempty,time_slot" label:"time slot"`
	Location             *string `validate:"omitempty,venue" label:"location"`
	ExpectedParticipants *int    `validate:"omitempty,min=1,max=100" label:"expected participants"`
	// ThemeName set to "None" removes the decoration package.
	ThemeName *string `validate:"omitempty,theme" label:"theme"`
}

type EditResult struct {
	Event       *models.Event
	PreviousFee float64
	// TopUp is the extra amount owed after the edit, zero if the fee did not rise.
	TopUp   float64
	Receipt *models.Receipt
	// TopUpDeclined is set when the extra payment failed. The fee was kept
	// at PreviousFee while the other changes were saved.
	TopUpDeclined bool
}

func themeSelection(name string) (theme string, vendor string, cost float64) {
	if t, ok := models.ThemeByName(name); ok {
		return t.Name, t.Vendor, t.Cost()
	}
	return models.NoneOption, models.NoneOption, 0
}

// QuoteFee returns the total fee for the given booking options.
func (s *EventService) QuoteFee(location string, participants int, themeName string) float64 {
	_, _, themeCost := themeSelection(themeName)
	return models.CalculateTotalFee(models.VenueCost(location), participants, themeCost)
}

func (s *EventService) getEvent(eventID int) (*models.Event, error) {
	event, err := s.repo.EventRepo.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, NewBookingError("Event not found", ErrEventNotFound, err)
		}
		return nil, NewBookingError("Failed to get event", ErrStorage, err)
	}
	return event, nil
}

// getOwnedEvent loads an event and checks that organizerID created it.
func (s *EventService) getOwnedEvent(organizerID, eventID int) (*models.Event, error) {
	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizerID {
		return nil, NewBookingError("Event not found or you don't have permission to manage it", ErrPermissionDenied, nil)
	}
	return event, nil
}

func (s *EventService) requireRole(userID int, role models.Role) (*models.User, error) {
	user, err := s.repo.UserRepo.GetUserByID(userID)
	if err != nil {
		return nil, NewBookingError("User not found", ErrUserNotFound, err)
	}
	if user.Role != role {
		return nil, NewBookingError(role.Title()+" access required", ErrPermissionDenied, nil)
	}
	return user, nil
}

// CreateEvent books a slot for the organizer. The event is stored only
// after the checkout succeeds.
func (s *EventService) CreateEvent(req CreateEventRequest) (*models.Event, *models.Receipt, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, nil, NewBookingError(err.Error(), ErrInvalidInput, nil)
	}
	if _, err := s.requireRole(req.OrganizerID, models.RoleOrganizer); err != nil {
		return nil, nil, err
	}

	if s.repo.EventRepo.HasSlotConflict(req.Date, req.Time, req.Location, 0) {
		return nil, nil, NewBookingError("Another event is already scheduled at this date, time and location", ErrSlotConflict, nil)
	}

	themeName, vendorName, themeCost := themeSelection(req.ThemeName)
	event := &models.Event{
		ID:                   s.repo.EventRepo.NextEventID(),
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		OrganizerID:          req.OrganizerID,
		ExpectedParticipants: req.ExpectedParticipants,
		ThemeCost:            themeCost,
		ThemeName:            themeName,
		VendorName:           vendorName,
		Status:               models.StatusUpcoming,
	}
	event.TotalFee = models.CalculateTotalFee(models.VenueCost(event.Location), event.ExpectedParticipants, event.ThemeCost)

	receipt, err := s.checkout.Charge(event.TotalFee, "Event booking")
	if err != nil {
		s.log.WithError(err).WithField("organizer_id", req.OrganizerID).Info("Event creation payment failed")
		return nil, nil, NewBookingError("Payment failed or cancelled. Event was not created", ErrPaymentFailed, err)
	}

	if err := s.repo.EventRepo.CreateEvent(event); err != nil {
		return nil, nil, NewBookingError("Failed to create event", ErrStorage, err)
	}

	return event, receipt, nil
}

// EditEvent applies req to an event owned by organizerID. A slot clash
// aborts the whole edit. When the recomputed fee is higher the difference
// is charged; if that fails the fee stays at its previous value but the
// remaining changes are still saved.
func (s *EventService) EditEvent(organizerID, eventID int, req EditEventRequest) (*EditResult, error) {
	event, err := s.getOwnedEvent(organizerID, eventID)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewBookingError(err.Error(), ErrInvalidInput, nil)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}

	slotChanged := false
	if req.Date != nil && *req.Date != event.Date {
		event.Date = *req.Date
		slotChanged = true
	}
	if req.Time != nil && *req.Time != event.Time {
		event.Time = *req.Time
		slotChanged = true
	}
	if req.Location != nil && *req.Location != event.Location {
		event.Location = *req.Location
		slotChanged = true
	}
	if slotChanged && s.repo.EventRepo.HasSlotConflict(event.Date, event.Time, event.Location, event.ID) {
		return nil, NewBookingError("Another event is already scheduled at this date, time and location", ErrSlotConflict, nil)
	}

	if req.ExpectedParticipants != nil {
		event.ExpectedParticipants = *req.ExpectedParticipants
	}
	if req.ThemeName != nil {
		event.ThemeName, event.VendorName, event.ThemeCost = themeSelection(*req.ThemeName)
	}

	result := &EditResult{PreviousFee: event.TotalFee}
	event.TotalFee = models.CalculateTotalFee(models.VenueCost(event.Location), event.ExpectedParticipants, event.ThemeCost)

	if event.TotalFee > result.PreviousFee {
		result.TopUp = event.TotalFee - result.PreviousFee
		receipt, err := s.checkout.Charge(result.TopUp, "Event fee top-up")
		if err != nil {
			s.log.WithError(err).WithField("event_id", event.ID).Info("Fee top-up failed, keeping previous fee")
			event.TotalFee = result.PreviousFee
			result.TopUpDeclined = true
		} else {
			result.Receipt = receipt
		}
	}

	if err := s.repo.EventRepo.UpdateEvent(event); err != nil {
		return nil, NewBookingError("Failed to update event", ErrStorage, err)
	}

	result.Event = event
	return result, nil
}

// DeleteEvent removes an event owned by organizerID. Attendee lists are
// not touched elsewhere.
func (s *EventService) DeleteEvent(organizerID, eventID int) error {
	if _, err := s.getOwnedEvent(organizerID, eventID); err != nil {
		return err
	}
	return s.removeEvent(eventID)
}

// RemoveEvent is the administrator's unrestricted delete.
func (s *EventService) RemoveEvent(adminID, eventID int) error {
	if _, err := s.requireRole(adminID, models.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.getEvent(eventID); err != nil {
		return err
	}
	return s.removeEvent(eventID)
}

func (s *EventService) removeEvent(eventID int) error {
	if err := s.repo.EventRepo.DeleteEvent(eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return NewBookingError("Event not found", ErrEventNotFound, err)
		}
		return NewBookingError("Failed to delete event", ErrStorage, err)
	}
	return nil
}

// UpdateStatus moves an event to any status. Only administrators may do it.
func (s *EventService) UpdateStatus(adminID, eventID int, status models.EventStatus) (*models.Event, error) {
	if _, err := s.requireRole(adminID, models.RoleAdmin); err != nil {
		return nil, err
	}
	if status < models.StatusUpcoming || status > models.StatusCancelled {
		return nil, NewBookingError("Invalid status", ErrInvalidInput, nil)
	}

	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}

	previous := event.Status
	event.Status = status
	if err := s.repo.EventRepo.UpdateEvent(event); err != nil {
		return nil, NewBookingError("Failed to update event", ErrStorage, err)
	}

	s.log.WithFields(logrus.Fields{
		"event_id": event.ID,
		"from":     previous.String(),
		"to":       status.String(),
	}).Info("Event status changed")
	return event, nil
}

// UpdateAdvertisement sets the marketing text; an empty text removes it.
func (s *EventService) UpdateAdvertisement(organizerID, eventID int, text string) (*models.Event, error) {
	event, err := s.getOwnedEvent(organizerID, eventID)
	if err != nil {
		return nil, err
	}

	event.Marketing = text
	if err := s.repo.EventRepo.UpdateEvent(event); err != nil {
		return nil, NewBookingError("Failed to update event", ErrStorage, err)
	}
	return event, nil
}

func (s *EventService) GetEvent(eventID int) (*models.Event, error) {
	return s.getEvent(eventID)
}

// GetOwnedEvent returns an event only if organizerID created it.
func (s *EventService) GetOwnedEvent(organizerID, eventID int) (*models.Event, error) {
	return s.getOwnedEvent(organizerID, eventID)
}

func (s *EventService) ListEvents() []models.Event {
	return s.repo.EventRepo.ListEvents()
}

func (s *EventService) ListEventsByStatus(status models.EventStatus) []models.Event {
	return s.repo.EventRepo.ListEventsByStatus(status)
}

func (s *EventService) ListEventsByOrganizer(organizerID int) []models.Event {
	return s.repo.EventRepo.ListEventsByOrganizer(organizerID)
}

func (s *EventService) ListEventsByAttendee(attendeeID int) []models.Event {
	return s.repo.EventRepo.ListEventsByAttendee(attendeeID)
}

// TopEvent returns the event with the most attendees; the earliest one
// wins a tie. It reports false when there are no events at all.
func (s *EventService) TopEvent() (*models.Event, bool) {
	var top *models.Event
	for _, ev := range s.repo.EventRepo.ListEvents() {
		if top == nil || len(ev.Attendees) > len(top.Attendees) {
			e := ev
			top = &e
		}
	}
	return top, top != nil
}

// Receipt itemizes the fee of an event owned by organizerID.
func (s *EventService) Receipt(organizerID, eventID int) (*models.Event, models.FeeBreakdown, error) {
	event, err := s.getOwnedEvent(organizerID, eventID)
	if err != nil {
		return nil, models.FeeBreakdown{}, err
	}
	return event, models.BreakdownFor(event), nil
}

// RatedEvents returns events that have at least one rating, highest
// average first.
func (s *EventService) RatedEvents() []models.Event {
	var rated []models.Event
	for _, ev := range s.repo.EventRepo.ListEvents() {
		if len(ev.Ratings) > 0 {
			rated = append(rated, ev)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].AverageRating > rated[j].AverageRating
	})
	return rated
}
