package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

const (
	OwnerPotato Owner = "potato"
	OwnerRabbit Owner = "rabbit"
)

type (
	// Kind tells whether an entry adds to or takes from the household.
	Kind string

	// Owner is the partner who recorded the entry.
	Owner string

	Date struct {
		time.Time
	}

	// Entry is one line of the household ledger.
	Entry struct {
		ID          int64
		Date        Date
		Description string
		Amount      Won
		Kind        Kind
		Owner       Owner
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidKind      = errors.New("invalid entry kind")
	ErrInvalidOwner     = errors.New("invalid entry owner")
)

func (k Kind) Valid() bool { return k == Income || k == Expense }

func (o Owner) Valid() bool { return o == OwnerPotato || o == OwnerRabbit }

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (e Entry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !e.Kind.Valid() {
		return ErrInvalidKind
	}
	if !e.Owner.Valid() {
		return ErrInvalidOwner
	}
	return nil
}

// Signed returns the amount with expenses negative.
func (e Entry) Signed() Won {
	if e.Kind == Expense {
		return -e.Amount
	}
	return e.Amount
}
