package money

import (
	"testing"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	minor, err := ToMinorUnits(decimal.RequireFromString("1000"))
	require.NoError(t, err)
	assert.Equal(t, int64(100000), minor)

	minor, err = ToMinorUnits(decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	assert.Equal(t, int64(1050), minor)

	minor, err = ToMinorUnits(decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), minor)
}

func TestToMinorUnitsRejectsSubCentPrecision(t *testing.T) {
	_, err := ToMinorUnits(decimal.RequireFromString("10.505"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFromMinorUnitsRoundTrip(t *testing.T) {
	original := decimal.RequireFromString("12345.67")
	minor, err := ToMinorUnits(original)
	require.NoError(t, err)
	assert.True(t, original.Equal(FromMinorUnits(minor)))
}
