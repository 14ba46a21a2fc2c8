package kernel

import (
	"fmt"

	"moving/internal/pkg/errs"
)

// MoveType is the service tier of a move. It determines the allowed load and
// the price band, and orders tiers so classification can decide whether a
// declared tier needs an upgrade.
//
// Rank order: light < regular < premium.
type MoveType string

const (
	// MoveTypeLight covers small moves: few items, low weight.
	MoveTypeLight MoveType = "light"

	// MoveTypeRegular covers typical apartment moves.
	MoveTypeRegular MoveType = "regular"

	// MoveTypePremium covers heavy or complex moves and items that always
	// need special handling (pianos, safes).
	MoveTypePremium MoveType = "premium"
)

// moveTypeRanks orders tiers for upgrade comparisons.
func moveTypeRanks() map[MoveType]int {
	return map[MoveType]int{
		MoveTypeLight:   0,
		MoveTypeRegular: 1,
		MoveTypePremium: 2,
	}
}

// ParseMoveType converts a raw string to a MoveType, returning a validation
// error for unrecognized values.
func ParseMoveType(s string) (MoveType, error) {
	t := MoveType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the MoveType is one of the known tiers.
// The zero value and any other string are invalid.
func (t MoveType) Validate() error {
	if _, ok := moveTypeRanks()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("moveType",
			fmt.Errorf("%q is not a valid move type", string(t)))
	}
	return nil
}

// Rank returns the tier's position in the upgrade order.
// Unknown tiers rank below light so comparisons against them never demand
// a downgrade; callers are expected to Validate first.
func (t MoveType) Rank() int {
	if rank, ok := moveTypeRanks()[t]; ok {
		return rank
	}
	return -1
}

// RanksAbove reports whether t is a strictly higher tier than other.
func (t MoveType) RanksAbove(other MoveType) bool {
	return t.Rank() > other.Rank()
}

// String returns the wire representation of the tier.
func (t MoveType) String() string {
	return string(t)
}
