package handlers

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestPrompter_Text(t *testing.T) {
	p, out := newTestPrompter("\n  hello  \n0\n")

	s, err := p.Text("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Contains(t, out.String(), "This field cannot be empty.")

	_, err = p.Text("Name: ")
	assert.ErrorIs(t, err, ErrCancelled)

	_, err = p.Text("Name: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Int(t *testing.T) {
	p, out := newTestPrompter("abc\n101\n42\n0\n")

	v, err := p.Int("Participants: ", 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input. Please enter a number between 1 and 100."))

	_, err = p.Int("Participants: ", 1, 100)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPrompter_OptionalInt(t *testing.T) {
	p, _ := newTestPrompter("\n0\n3\n")

	v, err := p.OptionalInt("Slot: ", 1, 4)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = p.OptionalInt("Slot: ", 1, 4)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 3, *v)
}

func TestPrompter_ChoiceNeverCancels(t *testing.T) {
	p, _ := newTestPrompter("0\n2\n")

	v, err := p.Choice("Choice: ", 3)

	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestPrompter_ConfirmAndValidated(t *testing.T) {
	p, out := newTestPrompter("maybe\nY\nbad\ngood\n")

	ok, err := p.Confirm("Sure? ")
	require.NoError(t, err)
	assert.True(t, ok)

	s, err := p.Validated("Word: ", func(s string) error {
		if s != "good" {
			return errors.New("not good")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "good", s)
	assert.Contains(t, out.String(), "Please enter 'y' or 'n'.")
	assert.Contains(t, out.String(), "not good. Please try again.")
}
