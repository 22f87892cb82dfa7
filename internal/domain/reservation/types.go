package reservation

import "strings"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation holds its dates.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) CanCancel() bool {
	return s.IsActive()
}

func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ActiveStatuses are the statuses that block dates.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

// PaymentOutcome describes what recording a paid deposit did to a reservation.
type PaymentOutcome int

const (
	// PaymentAlreadyRecorded means the deposit was already marked paid; nothing changed.
	PaymentAlreadyRecorded PaymentOutcome = iota
	// PaymentConfirmed means a PENDING reservation became CONFIRMED.
	PaymentConfirmed
	// PaymentRecorded means the deposit was marked paid without a status change.
	PaymentRecorded
	// PaymentAfterCancel means a CANCELLED reservation was paid and needs a manual refund.
	PaymentAfterCancel
)

func (o PaymentOutcome) Changed() bool {
	return o != PaymentAlreadyRecorded
}
