package goals

import (
	"errors"
	"fmt"
)

// Reasons a new goal is rejected. Match them with errors.Is.
var (
	ErrBlankTitle   = errors.New("input your goal")
	ErrLimitReached = fmt.Errorf("you've reached the %d goals limit", MaxActive)
	ErrInvalidDays  = fmt.Errorf("days must be between 1 and %d", MaxDays)
)

// CheckDays rejects targets outside the 1..MaxDays range the pickers offer.
func CheckDays(n int) error {
	if n < 1 || n > MaxDays {
		return ValidationError{Reason: ErrInvalidDays}
	}
	return nil
}

// ErrNotFound is returned by Resolve when no goal matches.
var ErrNotFound = errors.New("goal not found")

// ValidationError rejects an Add. It is shown to the user as-is.
type ValidationError struct {
	Reason error
}

func (e ValidationError) Error() string {
	return e.Reason.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Reason
}

// AmbiguousError is returned by Resolve when a prefix matches several goals.
type AmbiguousError struct {
	Ref     string
	Matches int
}

func (e AmbiguousError) Error() string {
	return fmt.Sprintf("%q matches %d goals, use a longer id", e.Ref, e.Matches)
}

// Message returns the text shown to the user for an Add failure.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrLimitReached):
		return fmt.Sprintf("You've reached %d goals limit.", MaxActive)
	case errors.Is(err, ErrBlankTitle):
		return "Input your goal!"
	case errors.Is(err, ErrInvalidDays):
		return fmt.Sprintf("Pick between 1 and %d days.", MaxDays)
	default:
		return err.Error()
	}
}
