package handlers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"event-booking-terminal/internal/config"
	"event-booking-terminal/internal/middleware"
	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/services"
	"event-booking-terminal/internal/utils"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	authSvc        *services.AuthService
	eventSvc       *services.EventService
	participantSvc *services.ParticipantService
	statsSvc       *services.StatsService
	cfg            *config.Config
	log            logrus.FieldLogger
	prompt         *Prompter
	out            io.Writer
}

func NewHandler(
	authSvc *services.AuthService,
	eventSvc *services.EventService,
	participantSvc *services.ParticipantService,
	statsSvc *services.StatsService,
	cfg *config.Config,
	log logrus.FieldLogger,
	prompt *Prompter,
	out io.Writer,
) *Handler {
	return &Handler{
		authSvc:        authSvc,
		eventSvc:       eventSvc,
		participantSvc: participantSvc,
		statsSvc:       statsSvc,
		cfg:            cfg,
		log:            log,
		prompt:         prompt,
		out:            out,
	}
}

type menuItem struct {
	label  string
	action middleware.Action
}

// Run shows the main menu until the operator exits or input ends.
func (h *Handler) Run() error {
	for {
		h.showTopEvent()
		fmt.Fprintln(h.out, "+=================================================+")
		fmt.Fprintln(h.out, "|          EVENT MANAGEMENT SYSTEM                |")
		fmt.Fprintln(h.out, "+=================================================+")
		fmt.Fprintln(h.out, "  1. Login")
		fmt.Fprintln(h.out, "  2. Register")
		fmt.Fprintln(h.out, "  3. Exit")

		choice, err := h.prompt.Choice("Enter your choice (1-3): ", 3)
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case 1:
			err = h.Login()
		case 2:
			err = h.Register()
		case 3:
			fmt.Fprintln(h.out, "Goodbye!")
			return nil
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			h.report(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// session dispatches a logged-in user to the menu of their role.
func (h *Handler) session(user *models.User) error {
	switch user.Role {
	case models.RoleAdmin:
		return h.runMenu("ADMIN MENU", user, h.adminMenu(), middleware.AdminOnly)
	case models.RoleOrganizer:
		return h.runMenu("ORGANIZER MENU", user, h.organizerMenu(), middleware.OrganizerOnly)
	case models.RoleAttendee:
		h.showTopEvent()
		return h.runMenu("ATTENDEE MENU", user, h.attendeeMenu(), middleware.AttendeeOnly)
	default:
		return fmt.Errorf("%w: unknown role %q", middleware.ErrForbidden, user.Role)
	}
}

// runMenu loops over items until the user logs out. A final "Logout"
// entry is added automatically.
func (h *Handler) runMenu(title string, user *models.User, items []menuItem, guard func(middleware.Action) middleware.Action) error {
	for {
		fmt.Fprintln(h.out)
		fmt.Fprintln(h.out, "+=================================================+")
		fmt.Fprintf(h.out, "|  %-47s|\n", title)
		fmt.Fprintln(h.out, "+=================================================+")
		fmt.Fprintf(h.out, " Welcome, %s (%s)\n\n", user.Name, user.Role.Title())
		for i, item := range items {
			fmt.Fprintf(h.out, "  %d. %s\n", i+1, item.label)
		}
		fmt.Fprintf(h.out, "  %d. Logout\n", len(items)+1)

		choice, err := h.prompt.Choice(fmt.Sprintf("Enter your choice (1-%d): ", len(items)+1), len(items)+1)
		if err != nil {
			return err
		}
		if choice == len(items)+1 {
			fmt.Fprintln(h.out, "Logging out...")
			return nil
		}

		action := middleware.Chain(items[choice-1].action, middleware.Recover(h.log), guard)
		if err := action(user); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			h.report(err)
		}
	}
}

func (h *Handler) report(err error) {
	if errors.Is(err, ErrCancelled) && !services.IsBookingError(err) {
		fmt.Fprintln(h.out, "Operation cancelled.")
		return
	}
	utils.Error(h.out, services.ErrorMessage(err))
}

func (h *Handler) showTopEvent() {
	event, ok := h.eventSvc.TopEvent()

	content := "Today's Top Event: No events available yet"
	if ok {
		content = fmt.Sprintf("Today's Top Event: %s (Attendees: %d)", event.Title, len(event.Attendees))
	}
	border := len(content) + 4

	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, strings.Repeat("=", border))
	fmt.Fprintf(h.out, "| %s |\n", content)
	fmt.Fprintln(h.out, strings.Repeat("=", border))
	if ok && event.Marketing != "" {
		fmt.Fprintln(h.out, event.Marketing)
		fmt.Fprintln(h.out, strings.Repeat("-", border))
	}
}
