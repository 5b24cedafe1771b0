package models

import "strings"

// DeletedOrganizerID marks events whose organizer account was removed.
const DeletedOrganizerID = -1

// NoneOption is stored in theme and vendor fields when no package was chosen.
const NoneOption = "None"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleAttendee  Role = "attendee"
)

var allowedRoles = map[Role]bool{
	RoleAdmin:     true,
	RoleOrganizer: true,
	RoleAttendee:  true,
}

// ParseRole maps a stored role name onto the closed set of roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.TrimSpace(strings.ToLower(s)))
	return r, allowedRoles[r]
}

func (r Role) String() string {
	return string(r)
}

// Title returns the role name as shown in menus.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleOrganizer:
		return "Organizer"
	case RoleAttendee:
		return "Attendee"
	default:
		return string(r)
	}
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type EventStatus int

const (
	StatusUpcoming EventStatus = iota
	StatusOngoing
	StatusCompleted
	StatusCancelled
)

var eventStatusNames = [...]string{"UPCOMING", "ONGOING", "COMPLETED", "CANCELLED"}

// AllStatuses lists every status in menu order.
func AllStatuses() []EventStatus {
	return []EventStatus{StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled}
}

func (s EventStatus) String() string {
	if s < StatusUpcoming || s > StatusCancelled {
		return eventStatusNames[StatusUpcoming]
	}
	return eventStatusNames[s]
}

// ParseEventStatus never fails: unknown names fall back to UPCOMING.
func ParseEventStatus(s string) EventStatus {
	for i, name := range eventStatusNames {
		if name == s {
			return EventStatus(i)
		}
	}
	return StatusUpcoming
}

type Rating struct {
	AttendeeID int     `json:"attendee_id"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
	Complaint  string  `json:"complaint"`
}

type Event struct {
	ID                   int         `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Date                 string      `json:"date"`
	Time                 string      `json:"time"`
	Location             string      `json:"location"`
	OrganizerID          int         `json:"organizer_id"`
	Attendees            []int       `json:"attendees"`
	ExpectedParticipants int         `json:"expected_participants"`
	TotalFee             float64     `json:"total_fee"`
	ThemeCost            float64     `json:"theme_cost"`
	ThemeName            string      `json:"theme_name"`
	VendorName           string      `json:"vendor_name"`
	Marketing            string      `json:"marketing"`
	Status               EventStatus `json:"status"`
	Ratings              []Rating    `json:"ratings"`
	AverageRating        float64     `json:"average_rating"`
}

// Clone returns a deep copy so callers can edit without touching the stored record.
func (e Event) Clone() Event {
	c := e
	if e.Attendees != nil {
		c.Attendees = append([]int(nil), e.Attendees...)
	}
	if e.Ratings != nil {
		c.Ratings = append([]Rating(nil), e.Ratings...)
	}
	return c
}

func (e *Event) HasAttendee(userID int) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}

// RemoveAttendee drops the first occurrence of userID and reports whether it was present.
func (e *Event) RemoveAttendee(userID int) bool {
	for i, id := range e.Attendees {
		if id == userID {
			e.Attendees = append(e.Attendees[:i], e.Attendees[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Event) FindRating(attendeeID int) (*Rating, bool) {
	for i := range e.Ratings {
		if e.Ratings[i].AttendeeID == attendeeID {
			return &e.Ratings[i], true
		}
	}
	return nil, false
}

// RecalculateAverageRating recomputes the mean over all stored ratings.
func (e *Event) RecalculateAverageRating() {
	if len(e.Ratings) == 0 {
		e.AverageRating = 0
		return
	}
	total := 0.0
	for _, r := range e.Ratings {
		total += r.Rating
	}
	e.AverageRating = total / float64(len(e.Ratings))
}

func (e *Event) HasTheme() bool {
	return e.ThemeName != "" && e.ThemeName != NoneOption
}

func (e *Event) OrganizerDeleted() bool {
	return e.OrganizerID == DeletedOrganizerID
}
