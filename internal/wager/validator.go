package wager

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid_amount")
var ErrInsufficientFunds = errors.New("insufficient_funds")

// ParseStake parses a raw stake value into whole currency units.
// Clients send the amount as a JSON number or string; it must be a
// finite, positive, integral value.
func ParseStake(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	// float64(MaxInt64) rounds up to exactly 2^63, so the comparison
	// must be inclusive or int64(f) wraps negative at the boundary.
	if f <= 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, ErrInvalidAmount
	}
	return int64(f), nil
}

// CheckFunds is the advisory funds check taken against a balance
// snapshot. The authoritative check happens again inside the settle
// transaction.
func CheckFunds(stake, balance int64) error {
	if stake > balance {
		return ErrInsufficientFunds
	}
	return nil
}
