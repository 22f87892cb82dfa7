package reservation

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"
)

const day = 24 * time.Hour

// DateRange is a stay from start to end, start strictly before end.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrDatesRequired
	}
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start.UTC(), end: end.UTC()}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Nights counts started 24h periods.
func (r DateRange) Nights() int {
	d := r.end.Sub(r.start)
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return n
}

// Overlaps uses closed intervals: ranges that only touch at an endpoint still overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func (r DateRange) String() string {
	return r.start.Format(time.DateOnly) + " - " + r.end.Format(time.DateOnly)
}

const (
	confirmationCodeLength   = 10
	confirmationCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// CodeGenerator produces confirmation codes.
type CodeGenerator func() (string, error)

// NewConfirmationCode returns a random code without ambiguous characters (0/O, 1/I).
func NewConfirmationCode() (string, error) {
	var sb strings.Builder
	sb.Grow(confirmationCodeLength)
	size := big.NewInt(int64(len(confirmationCodeAlphabet)))
	for range confirmationCodeLength {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		sb.WriteByte(confirmationCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

func NormalizeConfirmationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
