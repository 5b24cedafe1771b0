package repositories

import (
	"errors"
	"fmt"
	"os"

	"event-booking-terminal/internal/codec"
	"event-booking-terminal/internal/models"
	"event-booking-terminal/pkg/database"

	"github.com/sirupsen/logrus"
)

var ErrUsernameTaken = errors.New("username already exists")

// DefaultAdminID is the id of the administrator synthesized for an empty directory.
const DefaultAdminID = 1000

func DefaultAdmin() models.User {
	return models.User{
		ID:       DefaultAdminID,
		Username: "admin",
		Password: "admin123",
		Role:     models.RoleAdmin,
		Name:     "System Administrator",
		Email:    "admin@events.com",
	}
}

type userRepo struct {
	file   *database.FlatFile
	codec  codec.UserCodec
	log    logrus.FieldLogger
	users  []models.User
	nextID int
}

func NewUserRepository(file *database.FlatFile, c codec.UserCodec, log logrus.FieldLogger) UserRepository {
	return &userRepo{file: file, codec: c, log: log, nextID: 1}
}

// Load reads the directory and seeds the id sequence from the highest id.
// When nothing usable is found the default administrator is created and
// written out immediately.
func (r *userRepo) Load() error {
	r.users = nil

	data, err := r.file.Read()
	switch {
	case errors.Is(err, os.ErrNotExist):
		r.log.WithField("file", r.file.Path).Info("No users file found")
	case err != nil:
		r.users = []models.User{DefaultAdmin()}
		r.seedSequence()
		return fmt.Errorf("failed to load users: %w", err)
	default:
		users, skipped := r.codec.Decode(data)
		for _, s := range skipped {
			r.log.WithFields(logrus.Fields{
				"file": r.file.Path,
				"line": s.Line,
			}).Warnf("Skipping invalid user line: %s", s.Reason)
		}
		r.users = users
	}

	if len(r.users) == 0 {
		r.log.Warn("No valid users found, creating default admin user")
		r.users = []models.User{DefaultAdmin()}
		r.seedSequence()
		r.persist()
		return nil
	}

	r.seedSequence()
	r.log.WithField("count", len(r.users)).Info("Users loaded")
	return nil
}

func (r *userRepo) seedSequence() {
	maxID := 0
	for _, u := range r.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	r.nextID = maxID + 1
}

func (r *userRepo) Save() error {
	return r.file.Write(r.codec.Encode(r.users))
}

func (r *userRepo) persist() {
	if err := r.Save(); err != nil {
		r.log.WithError(err).WithField("file", r.file.Path).Error("Failed to save users")
	}
}

func (r *userRepo) ListUsers() []models.User {
	return append([]models.User(nil), r.users...)
}

func (r *userRepo) GetUserByID(id int) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w with ID: %d", ErrUserNotFound, id)
}

func (r *userRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w with username: %s", ErrUserNotFound, username)
}

// NextUserID hands out the next value of the sequence. Ids are never
// reused within a session, even after deletions.
func (r *userRepo) NextUserID() int {
	id := r.nextID
	r.nextID++
	return id
}

// CreateUser stores the user, assigning an id from the sequence when
// user.ID is zero.
func (r *userRepo) CreateUser(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: %s", ErrUsernameTaken, user.Username)
		}
		if user.ID != 0 && u.ID == user.ID {
			return fmt.Errorf("%w: user %d", ErrDuplicateID, user.ID)
		}
	}

	if user.ID == 0 {
		user.ID = r.NextUserID()
	} else if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}

	r.users = append(r.users, *user)
	r.persist()

	r.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User created")
	return nil
}

func (r *userRepo) DeleteUser(id int) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.persist()
			r.log.WithField("user_id", id).Info("User deleted")
			return nil
		}
	}
	return fmt.Errorf("%w with ID: %d", ErrUserNotFound, id)
}
