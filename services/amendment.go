package services

import (
	"errors"
	"time"
)

// MaxAmendments caps how often a booking's checkout date may change. Once
// reached the booking can never be amended again.
const MaxAmendments = 3

// amendmentCutoff blocks amendments inside the final day before the original
// checkout.
const amendmentCutoff = 24 * time.Hour

var ErrInvalidAmendment = errors.New("new checkout must be after check-in")

// CanAmend reports whether another checkout amendment is allowed: fewer than
// MaxAmendments so far and at least 24 hours left before the original
// checkout.
func CanAmend(amendmentHistoryLength int, originalCheckOut, now time.Time) bool {
	if amendmentHistoryLength >= MaxAmendments {
		return false
	}
	return originalCheckOut.Sub(now) >= amendmentCutoff
}

// AmendmentResult is the recomputed duration after a checkout change.
type AmendmentResult struct {
	NewDays int `json:"newDays"`
	Delta   int `json:"delta"`
}

// ApplyAmendment recomputes the stay length for a new checkout date. Only
// newCheckOut > checkIn is required: amendments may shorten the stay as well
// as lengthen it.
func ApplyAmendment(checkIn time.Time, currentDays int, newCheckOut time.Time) (AmendmentResult, error) {
	if !newCheckOut.After(checkIn) {
		return AmendmentResult{}, ErrInvalidAmendment
	}
	newDays := Nights(checkIn, newCheckOut)
	return AmendmentResult{
		NewDays: newDays,
		Delta:   newDays - currentDays,
	}, nil
}
