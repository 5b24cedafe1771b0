// Package codec converts events and users to and from the line-oriented
// flat-file format. Fields are separated by '|', lists by ',' and ratings
// by ';'. Nothing is escaped: free text containing one of these
// delimiters or a newline will not survive a reload.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"event-booking-terminal/internal/models"
)

const (
	FieldSep  = "|"
	ListSep   = ","
	RatingSep = ";"
)

// LineError describes a persisted line that was skipped during decoding.
type LineError struct {
	Line    int
	Content string
	Reason  string
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

type EventCodec interface {
	Encode(events []models.Event) []byte
	Decode(data []byte) ([]models.Event, []LineError)
}

type UserCodec interface {
	Encode(users []models.User) []byte
	Decode(data []byte) ([]models.User, []LineError)
}

// splitLines yields non-empty lines with their 1-based line numbers.
func splitLines(data []byte, fn func(n int, line string)) {
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fn(i+1, line)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
