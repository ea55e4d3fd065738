package order

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown order status")

// Status is the order lifecycle state. Orders start as StatusNew and only
// move along validNext; Shipped and Cancelled are terminal.
type Status string

const (
	StatusNew       Status = "New"
	StatusProcessed Status = "Processed"
	StatusShipped   Status = "Shipped"
	StatusCancelled Status = "Cancelled"
)

var validNext = map[Status]map[Status]bool{
	StatusNew:       {StatusProcessed: true},
	StatusProcessed: {StatusShipped: true, StatusCancelled: true},
	StatusShipped:   {},
	StatusCancelled: {},
}

// CanTransition reports whether the table allows from -> to.
func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func (s Status) IsTerminal() bool {
	return s == StatusShipped || s == StatusCancelled
}

func (s Status) Valid() bool {
	_, ok := validNext[s]
	return ok
}

// String representation (for logging)
func (s Status) String() string { return string(s) }

// ParseStatus maps free-form input onto a recognized Status.
func ParseStatus(s string) (Status, error) {
	if st := Status(s); st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownStatus)
}
