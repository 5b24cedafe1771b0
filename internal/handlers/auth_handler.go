package handlers

import (
	"errors"
	"fmt"

	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/services"
	"event-booking-terminal/internal/utils"
)

const delimiterTags = "excludesall=0x7C0x2C"

// Login asks for credentials and runs the menu of the authenticated user.
func (h *Handler) Login() error {
	utils.Heading(h.out, "login")

	username, err := h.prompt.Text("Username (0 to cancel): ")
	if err != nil {
		return err
	}
	password, err := h.prompt.Text("Password (0 to cancel): ")
	if err != nil {
		return err
	}

	user, err := h.authSvc.Authenticate(username, password)
	if err != nil {
		return err
	}

	utils.Success(h.out, fmt.Sprintf("Login successful. Welcome, %s!", user.Name))
	return h.session(user)
}

// Register signs up an organizer or attendee account.
func (h *Handler) Register() error {
	utils.Heading(h.out, "register")
	fmt.Fprintln(h.out, "  1. Organizer")
	fmt.Fprintln(h.out, "  2. Attendee")

	choice, err := h.prompt.Int("Select role (0 to cancel): ", 1, 2)
	if err != nil {
		return err
	}
	role := models.RoleOrganizer
	if choice == 2 {
		role = models.RoleAttendee
	}

	req, err := h.readAccount(role)
	if err != nil {
		return err
	}

	user, err := h.authSvc.RegisterUser(req)
	if err != nil {
		return err
	}

	utils.Success(h.out, fmt.Sprintf("Registration successful! Your user ID is %d. Please log in.", user.ID))
	return nil
}

// readAccount collects the fields of a new account, reprompting per field.
func (h *Handler) readAccount(role models.Role) (services.RegisterRequest, error) {
	req := services.RegisterRequest{Role: role}
	var err error

	req.Username, err = h.prompt.Validated("Username (0 to cancel): ", func(s string) error {
		if err := utils.ValidateField(s, "required,"+delimiterTags, "username"); err != nil {
			return err
		}
		if !h.authSvc.UsernameAvailable(s) {
			return errors.New("Username already exists")
		}
		return nil
	})
	if err != nil {
		return req, err
	}

	req.Password, err = h.prompt.Validated("Password (0 to cancel): ", func(s string) error {
		return utils.ValidateField(s, fmt.Sprintf("min=%d,%s", utils.MinPasswordLength, delimiterTags), "password")
	})
	if err != nil {
		return req, err
	}

	req.Name, err = h.prompt.Validated("Full name (0 to cancel): ", func(s string) error {
		return utils.ValidateField(s, "required,"+delimiterTags, "name")
	})
	if err != nil {
		return req, err
	}

	req.Email, err = h.prompt.Validated("Email (0 to cancel): ", func(s string) error {
		return utils.ValidateField(s, "required,email,lowercase,"+delimiterTags, "email")
	})
	if err != nil {
		return req, err
	}

	return req, nil
}
