package handlers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"event-booking-terminal/internal/config"
	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/repositories"
	"event-booking-terminal/internal/services"
	"event-booking-terminal/pkg/database"
	"event-booking-terminal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shell struct {
	repo *repositories.Repository
	cfg  *config.Config
	out  *bytes.Buffer
}

func newShell(t *testing.T) *shell {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		EventsFile: filepath.Join(dir, "events.dat"),
		UsersFile:  filepath.Join(dir, "users.dat"),
		ReceiptDir: filepath.Join(dir, "receipts"),
		LogLevel:   "info",
	}
	repo := repositories.NewRepository(database.NewFlatFile(cfg.EventsFile), database.NewFlatFile(cfg.UsersFile), logger.Discard())
	require.NoError(t, repo.Load())

	return &shell{repo: repo, cfg: cfg, out: &bytes.Buffer{}}
}

// run drives the main menu with the given input lines.
func (s *shell) run(t *testing.T, lines ...string) string {
	t.Helper()

	log := logger.Discard()
	prompt := NewPrompter(strings.NewReader(strings.Join(lines, "\n")+"\n"), s.out)
	checkout := NewTerminalCheckout(prompt, services.NewPaymentService(log), s.out)

	eventSvc := services.NewEventService(s.repo, checkout, log)
	h := NewHandler(
		services.NewAuthService(s.repo, s.cfg, log),
		eventSvc,
		services.NewParticipantService(s.repo, eventSvc, log),
		services.NewStatsService(s.repo),
		s.cfg,
		log,
		prompt,
		s.out,
	)

	require.NoError(t, h.Run())
	return s.out.String()
}

func (s *shell) addUser(t *testing.T, username string, role models.Role) int {
	t.Helper()
	u := &models.User{Username: username, Password: "pass", Role: role, Name: strings.ToUpper(username[:1]) + username[1:], Email: username + "@mail.com"}
	require.NoError(t, s.repo.UserRepo.CreateUser(u))
	return u.ID
}

func (s *shell) addEvent(t *testing.T, organizerID int, status models.EventStatus, attendees ...int) int {
	t.Helper()
	ev := &models.Event{
		ID:                   s.repo.EventRepo.NextEventID(),
		Title:                "Gala Night",
		Description:          "Annual dinner",
		Date:                 "2025-07-01",
		Time:                 "18:00-21:00",
		Location:             "2nd Floor Banquet Hall",
		OrganizerID:          organizerID,
		Attendees:            attendees,
		ExpectedParticipants: 20,
		ThemeName:            "Retro",
		VendorName:           "RetroVibe Planners",
		ThemeCost:            420,
		TotalFee:             595,
		Status:               status,
	}
	require.NoError(t, s.repo.EventRepo.CreateEvent(ev))
	return ev.ID
}

func TestRun_Exit(t *testing.T) {
	s := newShell(t)

	out := s.run(t, "3")

	assert.Contains(t, out, "Today's Top Event: No events available yet")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_EndOfInput(t *testing.T) {
	s := newShell(t)

	out := s.run(t, "7", "abc")

	assert.Contains(t, out, "Invalid input. Please enter a number between 1 and 3.")
	assert.NotContains(t, out, "Goodbye!")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newShell(t)

	out := s.run(t, "1", "admin", "wrong", "3")

	assert.Contains(t, out, "Error: Invalid username or password")
}

func TestLogin_Cancelled(t *testing.T) {
	s := newShell(t)

	out := s.run(t, "1", "0", "3")

	assert.Contains(t, out, "Operation cancelled.")
}

func TestRegister_Attendee(t *testing.T) {
	s := newShell(t)

	out := s.run(t,
		"2", "2",
		"admin", "kim",
		"abc", "pass",
		"Kim Lee",
		"Kim@mail.com", "kim@mail.com",
		"3",
	)

	assert.Contains(t, out, "Username already exists. Please try again.")
	assert.Contains(t, out, "password must be at least 4 characters. Please try again.")
	assert.Contains(t, out, "email must not contain uppercase letters. Please try again.")
	assert.Contains(t, out, "Registration successful! Your user ID is 1001.")

	user, err := s.repo.UserRepo.GetUserByUsername("kim")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAttendee, user.Role)
	assert.Equal(t, "Kim Lee", user.Name)
}

func TestOrganizer_CreateEventWithPayment(t *testing.T) {
	s := newShell(t)
	s.addUser(t, "olivia", models.RoleOrganizer)

	out := s.run(t,
		"1", "olivia", "pass",
		"1", "Launch", "Product launch",
		"2030-01-01", "2025-07-01",
		"2", "1", "10", "4",
		"3", "123", "123456",
		"9", "3",
	)

	assert.Contains(t, out, "Invalid date. Use YYYY-MM-DD with a year between 2025 and 2028. Please try again.")
	assert.Contains(t, out, "Total fee: RM100.00")
	assert.Contains(t, out, "E-Wallet (TNG) PIN must be exactly 6 digits. Please try again.")
	assert.Contains(t, out, "Payment successful!")
	assert.Contains(t, out, "Event 'Launch' created with ID 1.")

	events := s.repo.EventRepo.ListEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "12:00-15:00", events[0].Time)
	assert.Equal(t, "1st Floor Banquet Hall", events[0].Location)
	assert.Equal(t, models.NoneOption, events[0].ThemeName)
	assert.Equal(t, 100.0, events[0].TotalFee)
}

func TestOrganizer_CreateEventPaymentCancelled(t *testing.T) {
	s := newShell(t)
	s.addUser(t, "olivia", models.RoleOrganizer)

	out := s.run(t,
		"1", "olivia", "pass",
		"1", "Launch", "Product launch", "2025-07-01",
		"2", "1", "10", "1",
		"0",
		"9", "3",
	)

	assert.Contains(t, out, "Error: Payment failed or cancelled. Event was not created")
	assert.Empty(t, s.repo.EventRepo.ListEvents())
}

func TestOrganizer_EditEventKeepsBlankFields(t *testing.T) {
	s := newShell(t)
	orgID := s.addUser(t, "olivia", models.RoleOrganizer)
	id := s.addEvent(t, orgID, models.StatusUpcoming)

	out := s.run(t,
		"1", "olivia", "pass",
		"2", "1",
		"Summer Gala", "", "", "", "", "10", "4",
		"9", "3",
	)

	assert.Contains(t, out, "New total fee: RM125.00 (previously RM595.00).")
	assert.Contains(t, out, "Event updated successfully.")

	ev, err := s.repo.EventRepo.GetEventByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Summer Gala", ev.Title)
	assert.Equal(t, "Annual dinner", ev.Description)
	assert.Equal(t, "2nd Floor Banquet Hall", ev.Location)
	assert.Equal(t, 10, ev.ExpectedParticipants)
	assert.Equal(t, models.NoneOption, ev.ThemeName)
	assert.Equal(t, 125.0, ev.TotalFee)
}

func TestOrganizer_ReceiptAndForeignEvent(t *testing.T) {
	s := newShell(t)
	orgID := s.addUser(t, "olivia", models.RoleOrganizer)
	otherID := s.addUser(t, "omar", models.RoleOrganizer)
	s.addEvent(t, orgID, models.StatusUpcoming)
	s.addEvent(t, otherID, models.StatusUpcoming)

	out := s.run(t,
		"1", "olivia", "pass",
		"8", "1",
		"8", "2",
		"9", "3",
	)

	assert.Contains(t, out, "Receipt No: R12025")
	assert.Contains(t, out, "RM75.00")
	assert.Contains(t, out, "RM100.00")
	assert.Contains(t, out, "RM420.00")
	assert.Contains(t, out, "RM595.00")
	assert.Contains(t, out, "Error: Event not found or you don't have permission to manage it")
}

func TestAttendee_RegisterAndCancel(t *testing.T) {
	s := newShell(t)
	orgID := s.addUser(t, "olivia", models.RoleOrganizer)
	samID := s.addUser(t, "sam", models.RoleAttendee)
	id := s.addEvent(t, orgID, models.StatusUpcoming)

	out := s.run(t,
		"1", "sam", "pass",
		"2", "1",
		"2", "1",
		"6", "3",
	)

	assert.Contains(t, out, "Today's Top Event: Gala Night (Attendees: 0)")
	assert.Contains(t, out, "You are registered for 'Gala Night' on 2025-07-01 at 18:00-21:00.")
	assert.Contains(t, out, "Error: Already registered for this event")
	assert.Contains(t, out, "Today's Top Event: Gala Night (Attendees: 1)")

	ev, err := s.repo.EventRepo.GetEventByID(id)
	require.NoError(t, err)
	assert.Equal(t, []int{samID}, ev.Attendees)

	s.out.Reset()
	out = s.run(t,
		"1", "sam", "pass",
		"3", "1",
		"3", "1",
		"6", "3",
	)

	assert.Contains(t, out, "Registration cancelled.")
	assert.Contains(t, out, "You are not registered for this event.")
	ev, err = s.repo.EventRepo.GetEventByID(id)
	require.NoError(t, err)
	assert.Empty(t, ev.Attendees)
}

func TestAttendee_RateCompletedEvent(t *testing.T) {
	s := newShell(t)
	orgID := s.addUser(t, "olivia", models.RoleOrganizer)
	samID := s.addUser(t, "sam", models.RoleAttendee)
	id := s.addEvent(t, orgID, models.StatusCompleted, samID)

	out := s.run(t,
		"1", "sam", "pass",
		"5", "1", "9", "4", "Great food", "",
		"6", "3",
	)

	assert.Contains(t, out, "Invalid input. Please enter a number between 1 and 5.")
	assert.Contains(t, out, "Thank you! 'Gala Night' now averages 4.0/5.")

	ev, err := s.repo.EventRepo.GetEventByID(id)
	require.NoError(t, err)
	require.Len(t, ev.Ratings, 1)
	assert.Equal(t, "Great food", ev.Ratings[0].Comment)
}

func TestAdmin_DeleteUserCascade(t *testing.T) {
	s := newShell(t)
	orgID := s.addUser(t, "olivia", models.RoleOrganizer)
	samID := s.addUser(t, "sam", models.RoleAttendee)
	id := s.addEvent(t, orgID, models.StatusUpcoming, samID)

	out := s.run(t,
		"1", "admin", "admin123",
		"3", "0",
		"3", "1001", "n",
		"3", "1001", "y",
		"10", "3",
	)

	assert.Contains(t, out, "Operation cancelled.")
	assert.Contains(t, out, "Deletion cancelled.")
	assert.Contains(t, out, "User deleted. 1 event(s) updated.")

	_, err := s.repo.UserRepo.GetUserByID(orgID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	ev, err := s.repo.EventRepo.GetEventByID(id)
	require.NoError(t, err)
	assert.True(t, ev.OrganizerDeleted())
	assert.Equal(t, []int{samID}, ev.Attendees)
}

func TestAdmin_StatusAndStatistics(t *testing.T) {
	s := newShell(t)
	orgID := s.addUser(t, "olivia", models.RoleOrganizer)
	id := s.addEvent(t, orgID, models.StatusUpcoming)

	out := s.run(t,
		"1", "admin", "admin123",
		"8", "1", "3",
		"7",
		"10", "3",
	)

	assert.Contains(t, out, "Status of 'Gala Night' set to COMPLETED.")
	assert.Contains(t, out, "Total users:  2")
	assert.Contains(t, out, "Total revenue: RM595.00")

	ev, err := s.repo.EventRepo.GetEventByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, ev.Status)
}
