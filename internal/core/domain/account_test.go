package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalBalanceFor(t *testing.T) {
	assert.Equal(t, NormalDebit, NormalBalanceFor(Asset))
	assert.Equal(t, NormalDebit, NormalBalanceFor(Expense))
	assert.Equal(t, NormalCredit, NormalBalanceFor(Liability))
	assert.Equal(t, NormalCredit, NormalBalanceFor(Equity))
	assert.Equal(t, NormalCredit, NormalBalanceFor(Revenue))
}

func TestAccountIsPostable(t *testing.T) {
	leaf := Account{IsActive: true, IsHeader: false}
	assert.True(t, leaf.IsPostable())

	header := Account{IsActive: true, IsHeader: true}
	assert.False(t, header.IsPostable())

	inactive := Account{IsActive: false, IsHeader: false}
	assert.False(t, inactive.IsPostable())
}
