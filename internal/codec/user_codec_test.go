package codec

import (
	"testing"

	"event-booking-terminal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeUserCodec_RoundTrip(t *testing.T) {
	c := NewPipeUserCodec()
	users := []models.User{
		{ID: 1000, Username: "admin", Password: "admin123", Role: models.RoleAdmin, Name: "System Administrator", Email: "admin@events.com"},
		{ID: 1001, Username: "olivia", Password: "secret", Role: models.RoleOrganizer, Name: "Olivia Tan", Email: "olivia@mail.com"},
	}

	decoded, skipped := c.Decode(c.Encode(users))

	assert.Empty(t, skipped)
	assert.Equal(t, users, decoded)
}

func TestPipeUserCodec_Decode(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantUsers int
		wantSkip  int
	}{
		{name: "valid", line: "1|u|p|attendee|Name|u@mail.com", wantUsers: 1},
		{name: "legacy comma format", line: "1,u,p,organizer,Name,u@mail.com", wantUsers: 1},
		{name: "too few fields", line: "1|u|p|attendee|Name", wantSkip: 1},
		{name: "too many fields", line: "1|u|p|attendee|Name|u@mail.com|extra", wantSkip: 1},
		{name: "bad id", line: "abc|u|p|attendee|Name|u@mail.com", wantSkip: 1},
		{name: "unknown role", line: "1|u|p|guest|Name|u@mail.com", wantSkip: 1},
		{name: "blank line", line: "", wantUsers: 0},
	}

	c := NewPipeUserCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, skipped := c.Decode([]byte(tt.line + "\n"))
			assert.Len(t, users, tt.wantUsers)
			assert.Len(t, skipped, tt.wantSkip)
		})
	}
}

func TestPipeUserCodec_LegacyCommaFormatFields(t *testing.T) {
	c := NewPipeUserCodec()

	users, _ := c.Decode([]byte("12,bob,pw,attendee,Bob Lee,bob@mail.com\r\n"))

	require.Len(t, users, 1)
	assert.Equal(t, models.User{ID: 12, Username: "bob", Password: "pw", Role: models.RoleAttendee, Name: "Bob Lee", Email: "bob@mail.com"}, users[0])
}
