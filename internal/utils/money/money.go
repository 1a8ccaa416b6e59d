// Package money converts between the decimal major-unit amounts used at the
// API boundary and the int64 minor-unit amounts the ledger stores. Keeping
// amounts in minor units end-to-end makes the double-entry balance check an
// exact integer comparison with no epsilon.
package money

import (
	"fmt"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places a minor unit carries.
const minorUnitExponent = 2

// ToMinorUnits converts a major-unit decimal amount into minor units.
// Amounts with sub-cent precision are rejected rather than rounded.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(minorUnitExponent)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: amount %s has more precision than minor units allow", apperrors.ErrValidation, amount.String())
	}
	bigAmount := shifted.BigInt()
	if !bigAmount.IsInt64() {
		return 0, fmt.Errorf("%w: amount %s overflows minor unit range", apperrors.ErrValidation, amount.String())
	}
	return bigAmount.Int64(), nil
}

// FromMinorUnits converts minor units back to a major-unit decimal amount.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Shift(-minorUnitExponent)
}
