package handlers

import (
	"errors"
	"fmt"

	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/services"
	"event-booking-terminal/internal/utils"
)

func (h *Handler) attendeeMenu() []menuItem {
	return []menuItem{
		{label: "Browse Events", action: h.BrowseEvents},
		{label: "Register for Event", action: h.RegisterForEvent},
		{label: "Cancel Registration", action: h.CancelRegistration},
		{label: "View My Events", action: h.ListRegisteredEvents},
		{label: "Rate Event", action: h.RateEvent},
	}
}

// BrowseEvents lists events, optionally filtered by status, then offers
// the details of one of them.
func (h *Handler) BrowseEvents(*models.User) error {
	utils.Heading(h.out, "browse events")

	statuses := models.AllStatuses()
	fmt.Fprintln(h.out, "  1. All events")
	for i, s := range statuses {
		fmt.Fprintf(h.out, "  %d. %s only\n", i+2, s)
	}
	choice, err := h.prompt.Int("Select filter (0 to cancel): ", 1, len(statuses)+1)
	if err != nil {
		return err
	}

	events := h.eventSvc.ListEvents()
	if choice > 1 {
		events = h.eventSvc.ListEventsByStatus(statuses[choice-2])
	}
	h.printEventTable(events)
	if len(events) == 0 {
		return nil
	}

	id, err := h.prompt.ID("Event ID to view details (0 to go back): ")
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return nil
		}
		return err
	}
	event, err := h.eventSvc.GetEvent(id)
	if err != nil {
		return err
	}
	h.printEventDetails(event)
	return nil
}

func (h *Handler) RegisterForEvent(attendee *models.User) error {
	utils.Heading(h.out, "register for event")
	h.printEventTable(h.eventSvc.ListEventsByStatus(models.StatusUpcoming))

	id, err := h.prompt.ID("Event ID to register for (0 to cancel): ")
	if err != nil {
		return err
	}
	event, err := h.participantSvc.Register(attendee.ID, id)
	if err != nil {
		return err
	}
	utils.Success(h.out, fmt.Sprintf("You are registered for '%s' on %s at %s.", event.Title, event.Date, event.Time))
	return nil
}

func (h *Handler) CancelRegistration(attendee *models.User) error {
	utils.Heading(h.out, "cancel registration")
	h.printEventTable(h.eventSvc.ListEventsByAttendee(attendee.ID))

	id, err := h.prompt.ID("Event ID to cancel (0 to go back): ")
	if err != nil {
		return err
	}
	removed, err := h.participantSvc.CancelRegistration(attendee.ID, id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintln(h.out, "You are not registered for this event.")
		return nil
	}
	utils.Success(h.out, "Registration cancelled.")
	return nil
}

func (h *Handler) ListRegisteredEvents(attendee *models.User) error {
	utils.Heading(h.out, "my events")
	h.printEventTable(h.eventSvc.ListEventsByAttendee(attendee.ID))
	return nil
}

func (h *Handler) RateEvent(attendee *models.User) error {
	utils.Heading(h.out, "rate event")

	rateable := h.participantSvc.RateableEvents(attendee.ID)
	if len(rateable) == 0 {
		fmt.Fprintln(h.out, "You have no completed events to rate.")
		return nil
	}
	h.printEventTable(rateable)

	id, err := h.prompt.ID("Event ID to rate (0 to cancel): ")
	if err != nil {
		return err
	}
	rating, err := h.prompt.Float("Rating (1-5): ", 1, 5)
	if err != nil {
		return err
	}
	comment, _, err := h.prompt.Optional("Comment (optional): ")
	if err != nil {
		return err
	}
	complaint, _, err := h.prompt.Optional("Complaint (optional): ")
	if err != nil {
		return err
	}

	event, err := h.participantSvc.SubmitRating(attendee.ID, id, services.RatingRequest{
		Rating:    rating,
		Comment:   comment,
		Complaint: complaint,
	})
	if err != nil {
		return err
	}
	utils.Success(h.out, fmt.Sprintf("Thank you! '%s' now averages %.1f/5.", event.Title, event.AverageRating))
	return nil
}
