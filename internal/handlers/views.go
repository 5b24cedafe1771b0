package handlers

import (
	"fmt"
	"strings"

	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/utils"
)

func (h *Handler) printEventTable(events []models.Event) {
	if len(events) == 0 {
		fmt.Fprintln(h.out, "No events found.")
		return
	}

	fmt.Fprintf(h.out, "%-5s %-25s %-12s %-13s %-24s %-10s %s\n", "ID", "Title", "Date", "Time", "Location", "Status", "Attendees")
	utils.Rule(h.out)
	for _, ev := range events {
		fmt.Fprintf(h.out, "%-5d %-25s %-12s %-13s %-24s %-10s %d\n",
			ev.ID, truncate(ev.Title, 25), ev.Date, ev.Time, ev.Location, ev.Status, len(ev.Attendees))
	}
}

func (h *Handler) printEventDetails(ev *models.Event) {
	utils.Rule(h.out)
	fmt.Fprintf(h.out, "Event ID:     %d\n", ev.ID)
	fmt.Fprintf(h.out, "Title:        %s\n", ev.Title)
	fmt.Fprintf(h.out, "Description:  %s\n", ev.Description)
	fmt.Fprintf(h.out, "Date:         %s\n", ev.Date)
	fmt.Fprintf(h.out, "Time:         %s\n", ev.Time)
	fmt.Fprintf(h.out, "Location:     %s\n", ev.Location)
	fmt.Fprintf(h.out, "Organizer:    %s\n", h.organizerName(ev))
	fmt.Fprintf(h.out, "Participants: %d expected, %d registered\n", ev.ExpectedParticipants, len(ev.Attendees))
	if ev.HasTheme() {
		fmt.Fprintf(h.out, "Theme:        %s by %s (%s)\n", ev.ThemeName, ev.VendorName, utils.Money(ev.ThemeCost))
	}
	fmt.Fprintf(h.out, "Total fee:    %s\n", utils.Money(ev.TotalFee))
	fmt.Fprintf(h.out, "Status:       %s\n", ev.Status)
	if len(ev.Ratings) > 0 {
		fmt.Fprintf(h.out, "Rating:       %.1f/5 (%d reviews)\n", ev.AverageRating, len(ev.Ratings))
	}
	if ev.Marketing != "" {
		fmt.Fprintf(h.out, "Advertisement: %s\n", ev.Marketing)
	}
	utils.Rule(h.out)
}

func (h *Handler) organizerName(ev *models.Event) string {
	if ev.OrganizerDeleted() {
		return "(deleted)"
	}
	user, err := h.authSvc.GetUser(ev.OrganizerID)
	if err != nil {
		return fmt.Sprintf("#%d", ev.OrganizerID)
	}
	return user.Name
}

// printRatings lists each rating with its comment and complaint.
func (h *Handler) printRatings(ev *models.Event) {
	fmt.Fprintf(h.out, "%s (ID %d): average %.1f/5 from %d ratings\n", ev.Title, ev.ID, ev.AverageRating, len(ev.Ratings))
	for _, r := range ev.Ratings {
		name := fmt.Sprintf("#%d", r.AttendeeID)
		if u, err := h.authSvc.GetUser(r.AttendeeID); err == nil {
			name = u.Name
		}
		fmt.Fprintf(h.out, "  - %s: %.1f/5\n", name, r.Rating)
		if r.Comment != "" {
			fmt.Fprintf(h.out, "    Comment:   %s\n", r.Comment)
		}
		if r.Complaint != "" {
			fmt.Fprintf(h.out, "    Complaint: %s\n", r.Complaint)
		}
	}
}

func (h *Handler) printReceipt(r *models.Receipt, purpose string) {
	if r == nil {
		return
	}
	fmt.Fprintf(h.out, "%s paid: %s via %s\n", purpose, utils.Money(r.Amount), r.Method)
	fmt.Fprintf(h.out, "Reference: %s\n", r.Reference)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-3]) + "..."
}
