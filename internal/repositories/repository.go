package repositories

import (
	"errors"

	"event-booking-terminal/internal/codec"
	"event-booking-terminal/internal/models"
	"event-booking-terminal/pkg/database"

	"github.com/sirupsen/logrus"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateID   = errors.New("duplicate id")
)

// Repository owns the two process-wide collections.
type Repository struct {
	EventRepo EventRepository
	UserRepo  UserRepository
}

func NewRepository(eventsFile, usersFile *database.FlatFile, log logrus.FieldLogger) *Repository {
	return &Repository{
		EventRepo: NewEventRepository(eventsFile, codec.NewPipeEventCodec(), log),
		UserRepo:  NewUserRepository(usersFile, codec.NewPipeUserCodec(), log),
	}
}

// Load reads both collections. A failure on either side leaves that
// collection empty (or seeded, for users) and is returned joined.
func (r *Repository) Load() error {
	return errors.Join(r.EventRepo.Load(), r.UserRepo.Load())
}

// Save rewrites both files.
func (r *Repository) Save() error {
	return errors.Join(r.EventRepo.Save(), r.UserRepo.Save())
}

type EventRepository interface {
	Load() error
	Save() error

	ListEvents() []models.Event
	ListEventsByStatus(status models.EventStatus) []models.Event
	ListEventsByOrganizer(organizerID int) []models.Event
	ListEventsByAttendee(attendeeID int) []models.Event
	GetEventByID(id int) (*models.Event, error)

	NextEventID() int
	HasSlotConflict(date, slot, location string, excludeID int) bool

	CreateEvent(event *models.Event) error
	UpdateEvent(event *models.Event) error
	DeleteEvent(id int) error
	DetachUser(userID int) int
}

type UserRepository interface {
	Load() error
	Save() error

	ListUsers() []models.User
	GetUserByID(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)

	NextUserID() int
	CreateUser(user *models.User) error
	DeleteUser(id int) error
}
