package handlers

import (
	"fmt"

	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/utils"
)

func (h *Handler) adminMenu() []menuItem {
	return []menuItem{
		{label: "View All Users", action: h.ListUsers},
		{label: "Add User", action: h.AddUser},
		{label: "Delete User", action: h.DeleteUser},
		{label: "View All Events", action: h.ListAllEvents},
		{label: "View Event Details", action: h.ShowEvent},
		{label: "Remove Event", action: h.RemoveEvent},
		{label: "System Statistics", action: h.ShowStatistics},
		{label: "Change Event Status", action: h.ChangeEventStatus},
		{label: "View Ratings and Complaints", action: h.ListAllRatings},
	}
}

func (h *Handler) ListUsers(*models.User) error {
	utils.Heading(h.out, "all users")

	fmt.Fprintf(h.out, "%-6s %-15s %-10s %-25s %s\n", "ID", "Username", "Role", "Name", "Email")
	utils.Rule(h.out)
	for _, u := range h.authSvc.ListUsers() {
		fmt.Fprintf(h.out, "%-6d %-15s %-10s %-25s %s\n", u.ID, u.Username, u.Role.Title(), u.Name, u.Email)
	}
	return nil
}

func (h *Handler) AddUser(admin *models.User) error {
	utils.Heading(h.out, "add user")
	fmt.Fprintln(h.out, "  1. Admin")
	fmt.Fprintln(h.out, "  2. Organizer")
	fmt.Fprintln(h.out, "  3. Attendee")

	choice, err := h.prompt.Int("Select role (0 to cancel): ", 1, 3)
	if err != nil {
		return err
	}
	role := []models.Role{models.RoleAdmin, models.RoleOrganizer, models.RoleAttendee}[choice-1]

	req, err := h.readAccount(role)
	if err != nil {
		return err
	}

	user, err := h.authSvc.CreateUser(admin.ID, req)
	if err != nil {
		return err
	}

	utils.Success(h.out, fmt.Sprintf("%s account '%s' created with ID %d.", user.Role.Title(), user.Username, user.ID))
	return nil
}

// DeleteUser removes an account after confirmation. The account's events
// stay behind without an organizer.
func (h *Handler) DeleteUser(admin *models.User) error {
	utils.Heading(h.out, "delete user")

	id, err := h.prompt.ID("User ID to delete (0 to cancel): ")
	if err != nil {
		return err
	}
	user, err := h.authSvc.GetUser(id)
	if err != nil {
		return err
	}

	ok, err := h.prompt.Confirm(fmt.Sprintf("Delete %s '%s' (%s)? (y/n): ", user.Role.Title(), user.Username, user.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(h.out, "Deletion cancelled.")
		return nil
	}

	touched, err := h.authSvc.DeleteUser(admin.ID, id)
	if err != nil {
		return err
	}

	utils.Success(h.out, fmt.Sprintf("User deleted. %d event(s) updated.", touched))
	return nil
}

func (h *Handler) ListAllEvents(*models.User) error {
	utils.Heading(h.out, "all events")
	h.printEventTable(h.eventSvc.ListEvents())
	return nil
}

func (h *Handler) ShowEvent(*models.User) error {
	id, err := h.prompt.ID("Event ID (0 to cancel): ")
	if err != nil {
		return err
	}
	event, err := h.eventSvc.GetEvent(id)
	if err != nil {
		return err
	}

	h.printEventDetails(event)
	attendees := h.participantSvc.Attendees(event)
	fmt.Fprintf(h.out, "Registered attendees (%d):\n", len(attendees))
	for _, u := range attendees {
		fmt.Fprintf(h.out, "  - %s (%s)\n", u.Name, u.Username)
	}
	return nil
}

func (h *Handler) RemoveEvent(admin *models.User) error {
	utils.Heading(h.out, "remove event")

	id, err := h.prompt.ID("Event ID to remove (0 to cancel): ")
	if err != nil {
		return err
	}
	event, err := h.eventSvc.GetEvent(id)
	if err != nil {
		return err
	}

	ok, err := h.prompt.Confirm(fmt.Sprintf("Remove '%s'? (y/n): ", event.Title))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(h.out, "Removal cancelled.")
		return nil
	}

	if err := h.eventSvc.RemoveEvent(admin.ID, id); err != nil {
		return err
	}
	utils.Success(h.out, "Event removed successfully.")
	return nil
}

func (h *Handler) ShowStatistics(*models.User) error {
	utils.Heading(h.out, "system statistics")
	stats := h.statsSvc.Statistics()

	fmt.Fprintf(h.out, "Total users:  %d\n", stats.TotalUsers)
	for _, role := range []models.Role{models.RoleAdmin, models.RoleOrganizer, models.RoleAttendee} {
		fmt.Fprintf(h.out, "  %-10s %d\n", role.Title()+":", stats.UsersByRole[role])
	}
	fmt.Fprintf(h.out, "Total events: %d\n", stats.TotalEvents)
	for _, status := range models.AllStatuses() {
		fmt.Fprintf(h.out, "  %-10s %d\n", status.String()+":", stats.StatusBreakdown[status])
	}
	fmt.Fprintf(h.out, "Average attendees per event: %.2f\n", stats.AverageAttendees)
	fmt.Fprintf(h.out, "Total revenue: %s\n", utils.Money(stats.TotalRevenue))
	return nil
}

func (h *Handler) ChangeEventStatus(admin *models.User) error {
	utils.Heading(h.out, "change event status")

	id, err := h.prompt.ID("Event ID (0 to cancel): ")
	if err != nil {
		return err
	}
	event, err := h.eventSvc.GetEvent(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Current status of '%s': %s\n", event.Title, event.Status)
	status, err := h.chooseStatus()
	if err != nil {
		return err
	}

	event, err = h.eventSvc.UpdateStatus(admin.ID, id, status)
	if err != nil {
		return err
	}
	utils.Success(h.out, fmt.Sprintf("Status of '%s' set to %s.", event.Title, event.Status))
	return nil
}

func (h *Handler) chooseStatus() (models.EventStatus, error) {
	statuses := models.AllStatuses()
	for i, s := range statuses {
		fmt.Fprintf(h.out, "  %d. %s\n", i+1, s)
	}
	choice, err := h.prompt.Int("Select status (0 to cancel): ", 1, len(statuses))
	if err != nil {
		return 0, err
	}
	return statuses[choice-1], nil
}

func (h *Handler) ListAllRatings(*models.User) error {
	utils.Heading(h.out, "ratings and complaints")

	rated := h.eventSvc.RatedEvents()
	if len(rated) == 0 {
		fmt.Fprintln(h.out, "No ratings submitted yet.")
		return nil
	}
	for i := range rated {
		h.printRatings(&rated[i])
		fmt.Fprintln(h.out)
	}
	return nil
}
