package middleware

import (
	"errors"
	"fmt"

	"event-booking-terminal/internal/models"

	"github.com/sirupsen/logrus"
)

// Action is the work behind one menu entry, run for the logged-in user.
type Action func(user *models.User) error

var ErrForbidden = errors.New("access denied")

// RequireRole lets the action run only for users holding one of roles.
func RequireRole(message string, roles ...models.Role) func(Action) Action {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next Action) Action {
		return func(user *models.User) error {
			if user == nil || !allowed[user.Role] {
				return fmt.Errorf("%w: %s", ErrForbidden, message)
			}
			return next(user)
		}
	}
}

func AdminOnly(next Action) Action {
	return RequireRole("Admin access required", models.RoleAdmin)(next)
}

func OrganizerOnly(next Action) Action {
	return RequireRole("Organizer access required", models.RoleOrganizer)(next)
}

func AttendeeOnly(next Action) Action {
	return RequireRole("Attendee access required", models.RoleAttendee)(next)
}

// Recover turns a panic inside an action into a logged error so the menu
// loop keeps running.
func Recover(log logrus.FieldLogger) func(Action) Action {
	return func(next Action) Action {
		return func(user *models.User) (err error) {
			defer func() {
				if r := recover(); r != nil {
					fields := logrus.Fields{"panic": r}
					if user != nil {
						fields["user_id"] = user.ID
					}
					log.WithFields(fields).Error("Recovered from panic in menu action")
					err = fmt.Errorf("unexpected error: %v", r)
				}
			}()
			return next(user)
		}
	}
}

// Chain wraps action with guards; the first guard runs outermost.
func Chain(action Action, guards ...func(Action) Action) Action {
	for i := len(guards) - 1; i >= 0; i-- {
		action = guards[i](action)
	}
	return action
}
