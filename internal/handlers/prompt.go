package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the operator enters the cancel sentinel "0".
var ErrCancelled = errors.New("cancelled")

const cancelInput = "0"

// Prompter reads line-oriented answers from the operator. Every method
// reprompts on bad input and returns io.EOF once input is exhausted.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints label and returns the next trimmed input line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Text asks until a non-empty answer is given.
func (p *Prompter) Text(label string) (string, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if s == cancelInput {
			return "", ErrCancelled
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(p.out, "This field cannot be empty. Enter a value or '0' to cancel.")
	}
}

// Optional returns the answer and false when it was left blank.
func (p *Prompter) Optional(label string) (string, bool, error) {
	s, err := p.Line(label)
	if err != nil {
		return "", false, err
	}
	return s, s != "", nil
}

// Choice asks for a menu entry in [1, n]. It never cancels.
func (p *Prompter) Choice(label string, n int) (int, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.Atoi(s); err == nil && v >= 1 && v <= n {
			return v, nil
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter a number between 1 and %d.\n", n)
	}
}

// Int asks for a number in [min, max]; "0" cancels.
func (p *Prompter) Int(label string, min, max int) (int, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		if s == cancelInput {
			return 0, ErrCancelled
		}
		if v, err := strconv.Atoi(s); err == nil && v >= min && v <= max {
			return v, nil
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter a number between %d and %d.\n", min, max)
	}
}

// OptionalInt is Int where a blank answer keeps the current value (nil).
func (p *Prompter) OptionalInt(label string, min, max int) (*int, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		if v, err := strconv.Atoi(s); err == nil && v >= min && v <= max {
			return &v, nil
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter a number between %d and %d, or leave blank.\n", min, max)
	}
}

// ID asks for a positive record id; "0" cancels.
func (p *Prompter) ID(label string) (int, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		if s == cancelInput {
			return 0, ErrCancelled
		}
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a numeric ID.")
	}
}

func (p *Prompter) Float(label string, min, max float64) (float64, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= min && v <= max {
			return v, nil
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter a number between %g and %g.\n", min, max)
	}
}

// Confirm asks a y/n question.
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please enter 'y' or 'n'.")
	}
}

// Validated asks until check accepts the answer; "0" cancels.
func (p *Prompter) Validated(label string, check func(string) error) (string, error) {
	for {
		s, err := p.Text(label)
		if err != nil {
			return "", err
		}
		if err := check(s); err != nil {
			fmt.Fprintf(p.out, "%s. Please try again.\n", err)
			continue
		}
		return s, nil
	}
}
