package promotion

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration  = errors.New("duration must be a positive number of days")
	ErrMissingSessionID = errors.New("checkout session id is required")
)

// Purchase is one confirmed promotion payment as reported by the payment
// processor. The checkout session id doubles as the idempotence key: the
// processor delivers webhooks at least once, so the same Purchase may be seen
// more than once.
type Purchase struct {
	sessionID    string
	listingID    uuid.UUID
	userID       uuid.UUID
	kind         Kind
	durationDays int
	amountCents  int64
}

func NewPurchase(sessionID string, listingID, userID uuid.UUID, kind string, durationDays int, amountCents int64) (*Purchase, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	parsedKind, err := NewKind(kind)
	if err != nil {
		return nil, err
	}

	if durationDays <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Purchase{
		sessionID:    sessionID,
		listingID:    listingID,
		userID:       userID,
		kind:         parsedKind,
		durationDays: durationDays,
		amountCents:  amountCents,
	}, nil
}

// ParseDurationDays converts the processor's metadata value, which arrives as
// a string, into a day count. Non-numeric and non-positive values are both
// rejected as ErrInvalidDuration.
func ParseDurationDays(value string) (int, error) {
	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrInvalidDuration
	}
	if days <= 0 {
		return 0, ErrInvalidDuration
	}
	return days, nil
}

func (p *Purchase) SessionID() string    { return p.sessionID }
func (p *Purchase) ListingID() uuid.UUID { return p.listingID }
func (p *Purchase) UserID() uuid.UUID    { return p.userID }
func (p *Purchase) Kind() Kind           { return p.kind }
func (p *Purchase) DurationDays() int    { return p.durationDays }
func (p *Purchase) AmountCents() int64   { return p.amountCents }
