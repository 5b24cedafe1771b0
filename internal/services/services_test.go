package services

import (
	"errors"
	"path/filepath"
	"testing"

	"event-booking-terminal/internal/config"
	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/repositories"
	"event-booking-terminal/pkg/database"
	"event-booking-terminal/pkg/logger"

	"github.com/stretchr/testify/require"
)

type stubCheckout struct {
	fail    bool
	charges []float64
}

func (c *stubCheckout) Charge(amount float64, purpose string) (*models.Receipt, error) {
	c.charges = append(c.charges, amount)
	if c.fail {
		return nil, errors.New("payment cancelled")
	}
	return &models.Receipt{Reference: "ref", Method: models.PaymentEWallet, Amount: amount, Success: true}, nil
}

type fixture struct {
	dir          string
	cfg          *config.Config
	repo         *repositories.Repository
	checkout     *stubCheckout
	events       *EventService
	participants *ParticipantService
	auth         *AuthService
	stats        *StatsService

	adminID     int
	organizerID int
	attendeeID  int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		EventsFile: filepath.Join(dir, "events.dat"),
		UsersFile:  filepath.Join(dir, "users.dat"),
		ReceiptDir: filepath.Join(dir, "receipts"),
		LogLevel:   "info",
	}
	log := logger.Discard()

	repo := repositories.NewRepository(database.NewFlatFile(cfg.EventsFile), database.NewFlatFile(cfg.UsersFile), log)
	require.NoError(t, repo.Load())

	f := &fixture{
		dir:      dir,
		cfg:      cfg,
		repo:     repo,
		checkout: &stubCheckout{},
		adminID:  repositories.DefaultAdminID,
	}
	f.events = NewEventService(repo, f.checkout, log)
	f.participants = NewParticipantService(repo, f.events, log)
	f.auth = NewAuthService(repo, cfg, log)
	f.stats = NewStatsService(repo)

	f.organizerID = f.addUser(t, "olivia", models.RoleOrganizer)
	f.attendeeID = f.addUser(t, "sam", models.RoleAttendee)
	return f
}

func (f *fixture) addUser(t *testing.T, username string, role models.Role) int {
	t.Helper()
	u := &models.User{Username: username, Password: "pass", Role: role, Name: username, Email: username + "@mail.com"}
	require.NoError(t, f.repo.UserRepo.CreateUser(u))
	return u.ID
}

// reload reads both files into a fresh repository.
func (f *fixture) reload(t *testing.T) *repositories.Repository {
	t.Helper()
	repo := repositories.NewRepository(database.NewFlatFile(f.cfg.EventsFile), database.NewFlatFile(f.cfg.UsersFile), logger.Discard())
	require.NoError(t, repo.Load())
	return repo
}

func (f *fixture) createRequest() CreateEventRequest {
	return CreateEventRequest{
		OrganizerID:          f.organizerID,
		Title:                "Spring Gala",
		Description:          "Annual dinner",
		Date:                 "2025-04-12",
		Time:                 "18:00-21:00",
		Location:             "1st Floor Banquet Hall",
		ExpectedParticipants: 10,
	}
}

func (f *fixture) createEvent(t *testing.T, mutate func(*CreateEventRequest)) *models.Event {
	t.Helper()
	req := f.createRequest()
	if mutate != nil {
		mutate(&req)
	}
	event, _, err := f.events.CreateEvent(req)
	require.NoError(t, err)
	return event
}

func requireCode(t *testing.T, err error, code BookingErrorType) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, GetBookingErrorCode(err), err.Error())
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
