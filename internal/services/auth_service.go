package services

import (
	"errors"
	"strings"

	"event-booking-terminal/internal/config"
	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/repositories"
	"event-booking-terminal/internal/utils"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	repo *repositories.Repository
	cfg  *config.Config
	log  logrus.FieldLogger
}

func NewAuthService(repo *repositories.Repository, cfg *config.Config, log logrus.FieldLogger) *AuthService {
	return &AuthService{repo: repo, cfg: cfg, log: log}
}

// Fields are stored unescaped, so delimiter characters are refused.
type RegisterRequest struct {
	Username string      `validate:"required,excludesall=0x7C0x2C" label:"username"`
	Password string      `validate:"min=4,excludesall=0x7C0x2C" label:"password"`
	Name     string      `validate:"required,excludesall=0x7C0x2C" label:"name"`
	Email    string      `validate:"required,email,lowercase,excludesall=0x7C0x2C" label:"email"`
	Role     models.Role `validate:"required,oneof=admin organizer attendee" label:"role"`
}

var selfRegisterRoles = map[models.Role]bool{
	models.RoleOrganizer: true,
	models.RoleAttendee:  true,
}

func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, NewBookingError("Username and password are required", ErrInvalidInput, nil)
	}

	user, err := s.repo.UserRepo.GetUserByUsername(username)
	if err != nil {
		return nil, NewBookingError("Invalid username or password", ErrInvalidCredentials, nil)
	}

	if err := utils.CheckPassword(password, user.Password); err != nil {
		return nil, NewBookingError("Invalid username or password", ErrInvalidCredentials, nil)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User logged in")
	return user, nil
}

// UsernameAvailable reports whether no account uses username.
func (s *AuthService) UsernameAvailable(username string) bool {
	_, err := s.repo.UserRepo.GetUserByUsername(username)
	return errors.Is(err, repositories.ErrUserNotFound)
}

// RegisterUser creates an organizer or attendee account for a visitor.
// Administrator accounts can only be added by another administrator.
func (s *AuthService) RegisterUser(req RegisterRequest) (*models.User, error) {
	if !selfRegisterRoles[req.Role] {
		return nil, NewBookingError("Only organizer or attendee accounts can be registered", ErrPermissionDenied, nil)
	}
	return s.createUser(req)
}

// CreateUser adds an account of any role on behalf of an administrator.
func (s *AuthService) CreateUser(adminID int, req RegisterRequest) (*models.User, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}
	return s.createUser(req)
}

func (s *AuthService) createUser(req RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewBookingError(err.Error(), ErrInvalidInput, nil)
	}
	if !s.UsernameAvailable(req.Username) {
		return nil, NewBookingError("Username already exists", ErrUsernameTaken, nil)
	}

	password := req.Password
	if s.cfg.HashPasswords {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, NewBookingError("Failed to hash password", ErrInvalidInput, err)
		}
		password = hashed
	}

	user := &models.User{
		Username: req.Username,
		Password: password,
		Role:     req.Role,
		Name:     req.Name,
		Email:    req.Email,
	}

	if err := s.repo.UserRepo.CreateUser(user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, NewBookingError("Username already exists", ErrUsernameTaken, err)
		}
		return nil, NewBookingError("Failed to create user", ErrStorage, err)
	}

	return user, nil
}

// DeleteUser removes an account. Events the user organized are kept with
// no organizer and the user is taken off every attendee list; ratings stay.
// It returns the number of events that were touched.
func (s *AuthService) DeleteUser(adminID, userID int) (int, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return 0, err
	}
	if adminID == userID {
		return 0, NewBookingError("You cannot delete your own account", ErrPermissionDenied, nil)
	}

	if err := s.repo.UserRepo.DeleteUser(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, NewBookingError("User not found", ErrUserNotFound, err)
		}
		return 0, NewBookingError("Failed to delete user", ErrStorage, err)
	}

	touched := s.repo.EventRepo.DetachUser(userID)
	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"events":  touched,
	}).Info("User removed from events")
	return touched, nil
}

func (s *AuthService) GetUser(userID int) (*models.User, error) {
	user, err := s.repo.UserRepo.GetUserByID(userID)
	if err != nil {
		return nil, NewBookingError("User not found", ErrUserNotFound, err)
	}
	return user, nil
}

func (s *AuthService) ListUsers() []models.User {
	return s.repo.UserRepo.ListUsers()
}

func (s *AuthService) requireAdmin(userID int) error {
	user, err := s.repo.UserRepo.GetUserByID(userID)
	if err != nil || user.Role != models.RoleAdmin {
		return NewBookingError("Admin access required", ErrPermissionDenied, nil)
	}
	return nil
}
