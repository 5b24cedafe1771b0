package handlers

import (
	"fmt"

	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/services"
	"event-booking-terminal/internal/utils"
)

func (h *Handler) organizerMenu() []menuItem {
	return []menuItem{
		{label: "Create Event", action: h.CreateEvent},
		{label: "Edit Event", action: h.EditEvent},
		{label: "Delete Event", action: h.DeleteEvent},
		{label: "View My Events", action: h.ListMyEvents},
		{label: "Advertise Event", action: h.AdvertiseEvent},
		{label: "Register Attendee", action: h.RegisterAttendee},
		{label: "View Event Ratings", action: h.ListMyRatings},
		{label: "View Receipt", action: h.ShowReceipt},
	}
}

func (h *Handler) CreateEvent(organizer *models.User) error {
	utils.Heading(h.out, "create event")
	req := services.CreateEventRequest{OrganizerID: organizer.ID}
	var err error

	if req.Title, err = h.prompt.Text("Title (0 to cancel): "); err != nil {
		return err
	}
	if req.Description, err = h.prompt.Text("Description (0 to cancel): "); err != nil {
		return err
	}
	if req.Date, err = h.readDate("Date YYYY-MM-DD (0 to cancel): "); err != nil {
		return err
	}
	if req.Time, err = h.chooseTimeSlot(); err != nil {
		return err
	}
	if req.Location, err = h.chooseVenue(); err != nil {
		return err
	}
	if req.ExpectedParticipants, err = h.prompt.Int(
		fmt.Sprintf("Expected participants (%d-%d, 0 to cancel): ", models.MinParticipants, models.MaxParticipants),
		models.MinParticipants, models.MaxParticipants); err != nil {
		return err
	}
	if req.ThemeName, err = h.chooseTheme(); err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Total fee: %s\n", utils.Money(h.eventSvc.QuoteFee(req.Location, req.ExpectedParticipants, req.ThemeName)))

	event, receipt, err := h.eventSvc.CreateEvent(req)
	if err != nil {
		return err
	}

	h.printReceipt(receipt, "Booking fee")
	utils.Success(h.out, fmt.Sprintf("Event '%s' created with ID %d.", event.Title, event.ID))
	return nil
}

// EditEvent changes any subset of fields; a blank answer keeps the value.
func (h *Handler) EditEvent(organizer *models.User) error {
	utils.Heading(h.out, "edit event")

	id, err := h.prompt.ID("Event ID to edit (0 to cancel): ")
	if err != nil {
		return err
	}
	event, err := h.eventSvc.GetOwnedEvent(organizer.ID, id)
	if err != nil {
		return err
	}
	h.printEventDetails(event)
	fmt.Fprintln(h.out, "Leave a field blank to keep its current value.")

	var req services.EditEventRequest
	if req.Title, err = h.optionalText(fmt.Sprintf("Title [%s]: ", event.Title)); err != nil {
		return err
	}
	if req.Description, err = h.optionalText(fmt.Sprintf("Description [%s]: ", event.Description)); err != nil {
		return err
	}
	if req.Date, err = h.optionalValidated(fmt.Sprintf("Date [%s]: ", event.Date), "event_date", "date"); err != nil {
		return err
	}
	if req.Time, err = h.optionalChoice("Time slot", event.Time, models.TimeSlots); err != nil {
		return err
	}
	if req.Location, err = h.optionalChoice("Location", event.Location, venueNames()); err != nil {
		return err
	}
	if req.ExpectedParticipants, err = h.prompt.OptionalInt(
		fmt.Sprintf("Expected participants [%d]: ", event.ExpectedParticipants),
		models.MinParticipants, models.MaxParticipants); err != nil {
		return err
	}
	if req.ThemeName, err = h.optionalChoice("Theme", event.ThemeName, append(themeNames(), models.NoneOption)); err != nil {
		return err
	}

	result, err := h.eventSvc.EditEvent(organizer.ID, id, req)
	if err != nil {
		return err
	}

	switch {
	case result.TopUpDeclined:
		utils.Error(h.out, fmt.Sprintf("Payment of %s was not completed. The fee stays at %s; other changes were saved.",
			utils.Money(result.TopUp), utils.Money(result.PreviousFee)))
	case result.Receipt != nil:
		h.printReceipt(result.Receipt, "Additional fee")
	case result.Event.TotalFee < result.PreviousFee:
		fmt.Fprintf(h.out, "New total fee: %s (previously %s).\n", utils.Money(result.Event.TotalFee), utils.Money(result.PreviousFee))
	}
	utils.Success(h.out, "Event updated successfully.")
	return nil
}

func (h *Handler) DeleteEvent(organizer *models.User) error {
	utils.Heading(h.out, "delete event")

	id, err := h.prompt.ID("Event ID to delete (0 to cancel): ")
	if err != nil {
		return err
	}
	event, err := h.eventSvc.GetOwnedEvent(organizer.ID, id)
	if err != nil {
		return err
	}

	ok, err := h.prompt.Confirm(fmt.Sprintf("Delete '%s'? (y/n): ", event.Title))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(h.out, "Deletion cancelled.")
		return nil
	}

	if err := h.eventSvc.DeleteEvent(organizer.ID, id); err != nil {
		return err
	}
	utils.Success(h.out, "Event deleted successfully.")
	return nil
}

func (h *Handler) ListMyEvents(organizer *models.User) error {
	utils.Heading(h.out, "my events")
	h.printEventTable(h.eventSvc.ListEventsByOrganizer(organizer.ID))
	return nil
}

func (h *Handler) AdvertiseEvent(organizer *models.User) error {
	utils.Heading(h.out, "advertise event")

	id, err := h.prompt.ID("Event ID (0 to cancel): ")
	if err != nil {
		return err
	}
	event, err := h.eventSvc.GetOwnedEvent(organizer.ID, id)
	if err != nil {
		return err
	}
	if event.Marketing != "" {
		fmt.Fprintf(h.out, "Current advertisement: %s\n", event.Marketing)
	}

	text, _, err := h.prompt.Optional("Advertisement text (blank to remove): ")
	if err != nil {
		return err
	}
	if _, err := h.eventSvc.UpdateAdvertisement(organizer.ID, id, text); err != nil {
		return err
	}

	if text == "" {
		utils.Success(h.out, "Advertisement removed.")
	} else {
		utils.Success(h.out, "Advertisement saved.")
	}
	return nil
}

func (h *Handler) RegisterAttendee(organizer *models.User) error {
	utils.Heading(h.out, "register attendee")

	id, err := h.prompt.ID("Event ID (0 to cancel): ")
	if err != nil {
		return err
	}
	username, err := h.prompt.Text("Attendee username (0 to cancel): ")
	if err != nil {
		return err
	}

	event, user, err := h.participantSvc.RegisterOnBehalf(organizer.ID, id, username)
	if err != nil {
		return err
	}
	utils.Success(h.out, fmt.Sprintf("%s registered for '%s'.", user.Name, event.Title))
	return nil
}

func (h *Handler) ListMyRatings(organizer *models.User) error {
	utils.Heading(h.out, "event ratings")

	found := false
	for _, ev := range h.eventSvc.ListEventsByOrganizer(organizer.ID) {
		if len(ev.Ratings) == 0 {
			continue
		}
		found = true
		ev := ev
		h.printRatings(&ev)
		fmt.Fprintln(h.out)
	}
	if !found {
		fmt.Fprintln(h.out, "None of your events has been rated yet.")
	}
	return nil
}

// ShowReceipt prints the itemized fee and a QR code of the receipt number.
func (h *Handler) ShowReceipt(organizer *models.User) error {
	id, err := h.prompt.ID("Event ID (0 to cancel): ")
	if err != nil {
		return err
	}
	event, breakdown, err := h.eventSvc.Receipt(organizer.ID, id)
	if err != nil {
		return err
	}

	utils.Heading(h.out, "receipt")
	fmt.Fprintf(h.out, "Receipt No: %s\n", breakdown.ReceiptNo)
	fmt.Fprintf(h.out, "Event:      %s (%s %s)\n", event.Title, event.Date, event.Time)
	utils.Rule(h.out)
	fmt.Fprintf(h.out, "%-40s %12s\n", "Venue: "+event.Location, utils.Money(breakdown.VenueCost))
	fmt.Fprintf(h.out, "%-40s %12s\n", fmt.Sprintf("Participants: %d x RM%d", event.ExpectedParticipants, models.ParticipantRate), utils.Money(breakdown.ParticipantCost))
	if event.HasTheme() {
		fmt.Fprintf(h.out, "%-40s %12s\n", "Theme: "+event.ThemeName+" by "+event.VendorName, utils.Money(breakdown.ThemeCost))
	}
	utils.Rule(h.out)
	fmt.Fprintf(h.out, "%-40s %12s\n", "TOTAL", utils.Money(breakdown.Total))

	qr, err := utils.RenderQRCode(breakdown.ReceiptNo)
	if err != nil {
		h.log.WithError(err).Warn("Failed to render receipt QR code")
		return nil
	}
	fmt.Fprintln(h.out, qr)

	if h.cfg.SaveReceiptQR {
		path, err := utils.GenerateQRCodeImage(breakdown.ReceiptNo, h.cfg.ReceiptDir, breakdown.ReceiptNo)
		if err != nil {
			h.log.WithError(err).Warn("Failed to save receipt QR code")
			return nil
		}
		fmt.Fprintf(h.out, "QR code saved to %s\n", path)
	}
	return nil
}

// readDate reprompts until the answer is a bookable date.
func (h *Handler) readDate(label string) (string, error) {
	return h.prompt.Validated(label, func(s string) error {
		return utils.ValidateField(s, "event_date", "date")
	})
}

func (h *Handler) chooseTimeSlot() (string, error) {
	fmt.Fprintln(h.out, "Time slots:")
	for i, slot := range models.TimeSlots {
		fmt.Fprintf(h.out, "  %d. %s\n", i+1, slot)
	}
	choice, err := h.prompt.Int("Select time slot (0 to cancel): ", 1, len(models.TimeSlots))
	if err != nil {
		return "", err
	}
	return models.TimeSlots[choice-1], nil
}

func (h *Handler) chooseVenue() (string, error) {
	fmt.Fprintln(h.out, "Locations:")
	for i, v := range models.Venues {
		fmt.Fprintf(h.out, "  %d. %s (RM%d)\n", i+1, v.Name, v.Cost)
	}
	choice, err := h.prompt.Int("Select location (0 to cancel): ", 1, len(models.Venues))
	if err != nil {
		return "", err
	}
	return models.Venues[choice-1].Name, nil
}

// chooseTheme offers the decoration packages; the last entry skips them.
func (h *Handler) chooseTheme() (string, error) {
	fmt.Fprintln(h.out, "Theme packages:")
	for i, t := range models.Themes {
		fmt.Fprintf(h.out, "  %d. %s by %s (%s)\n", i+1, t.Name, t.Vendor, utils.Money(t.Cost()))
	}
	fmt.Fprintf(h.out, "  %d. No theme\n", len(models.Themes)+1)

	choice, err := h.prompt.Int("Select theme (0 to cancel): ", 1, len(models.Themes)+1)
	if err != nil {
		return "", err
	}
	if choice > len(models.Themes) {
		return models.NoneOption, nil
	}
	return models.Themes[choice-1].Name, nil
}

func (h *Handler) optionalText(label string) (*string, error) {
	s, ok, err := h.prompt.Optional(label)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (h *Handler) optionalValidated(label, tag, name string) (*string, error) {
	for {
		s, err := h.optionalText(label)
		if err != nil || s == nil {
			return nil, err
		}
		if err := utils.ValidateField(*s, tag, name); err != nil {
			fmt.Fprintf(h.out, "%s. Please try again.\n", err)
			continue
		}
		return s, nil
	}
}

// optionalChoice lists options by number; blank keeps current.
func (h *Handler) optionalChoice(name, current string, options []string) (*string, error) {
	fmt.Fprintf(h.out, "%s options:\n", name)
	for i, o := range options {
		fmt.Fprintf(h.out, "  %d. %s\n", i+1, o)
	}
	choice, err := h.prompt.OptionalInt(fmt.Sprintf("%s [%s]: ", name, current), 1, len(options))
	if err != nil || choice == nil {
		return nil, err
	}
	return &options[*choice-1], nil
}

func venueNames() []string {
	names := make([]string, len(models.Venues))
	for i, v := range models.Venues {
		names[i] = v.Name
	}
	return names
}

func themeNames() []string {
	names := make([]string, len(models.Themes))
	for i, t := range models.Themes {
		names[i] = t.Name
	}
	return names
}
