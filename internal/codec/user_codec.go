package codec

import (
	"fmt"
	"strconv"
	"strings"

	"event-booking-terminal/internal/models"
)

const userFields = 6

type PipeUserCodec struct{}

func NewPipeUserCodec() *PipeUserCodec {
	return &PipeUserCodec{}
}

func (c *PipeUserCodec) Encode(users []models.User) []byte {
	var b strings.Builder
	for _, u := range users {
		b.WriteString(strings.Join([]string{
			strconv.Itoa(u.ID),
			u.Username,
			u.Password,
			u.Role.String(),
			u.Name,
			u.Email,
		}, FieldSep))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func (c *PipeUserCodec) Decode(data []byte) ([]models.User, []LineError) {
	var (
		users   []models.User
		skipped []LineError
	)

	splitLines(data, func(n int, line string) {
		u, err := decodeUser(line)
		if err != nil {
			skipped = append(skipped, LineError{Line: n, Content: line, Reason: err.Error()})
			return
		}
		users = append(users, u)
	})

	return users, skipped
}

func decodeUser(line string) (models.User, error) {
	// Older files used ',' as the field separator.
	if strings.Contains(line, ListSep) {
		line = strings.ReplaceAll(line, ListSep, FieldSep)
	}

	tokens := strings.Split(line, FieldSep)
	if len(tokens) != userFields {
		return models.User{}, fmt.Errorf("invalid user format: expected %d fields, got %d", userFields, len(tokens))
	}

	id, err := strconv.Atoi(tokens[0])
	if err != nil {
		return models.User{}, fmt.Errorf("invalid user id: %w", err)
	}

	role, ok := models.ParseRole(tokens[3])
	if !ok {
		return models.User{}, fmt.Errorf("unknown role %q", tokens[3])
	}

	return models.User{
		ID:       id,
		Username: tokens[1],
		Password: tokens[2],
		Role:     role,
		Name:     tokens[4],
		Email:    tokens[5],
	}, nil
}
