package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caisse-pos/caisse_backend/internal/utils/reconcile"
)

func TestTender_ChangeOnCash(t *testing.T) {
	// amount due 100, cash 150, nothing else → change 50, retained 100.
	res := reconcile.Tender(reconcile.TenderAmounts{Cash: dec("150.00")}, dec("100.00"))

	assert.True(t, res.ChangeDue.Equal(dec("50.00")), "change %s", res.ChangeDue)
	assert.True(t, res.CashRetained.Equal(dec("100.00")))
	assert.True(t, res.TotalCollected.Equal(dec("100.00")))
}

func TestTender_MixedMethods(t *testing.T) {
	// due 80: card 50 + cash 40 → change 10, retained 30, collected 80.
	res := reconcile.Tender(reconcile.TenderAmounts{
		Card: dec("50.00"),
		Cash: dec("40.00"),
	}, dec("80.00"))

	assert.True(t, res.ChangeDue.Equal(dec("10.00")))
	assert.True(t, res.CashRetained.Equal(dec("30.00")))
	assert.True(t, res.TotalCollected.Equal(dec("80.00")))
}

func TestTender_ExactNoChange(t *testing.T) {
	res := reconcile.Tender(reconcile.TenderAmounts{
		Check:   dec("20.00"),
		AltCard: dec("30.00"),
	}, dec("50.00"))

	assert.True(t, res.ChangeDue.IsZero())
	assert.True(t, res.CashRetained.IsZero())
	assert.True(t, res.TotalCollected.Equal(dec("50.00")))
}

func TestTender_OtherMethodsCoverEverything(t *testing.T) {
	// Card alone over-covers; cash still tendered stays with the customer as
	// change, never counted as collected twice.
	res := reconcile.Tender(reconcile.TenderAmounts{
		Card: dec("100.00"),
		Cash: dec("5.00"),
	}, dec("100.00"))

	assert.True(t, res.ChangeDue.Equal(dec("5.00")))
	assert.True(t, res.CashRetained.IsZero())
	assert.True(t, res.TotalCollected.Equal(dec("100.00")))
}

func TestTenderAmounts_AnyPositive(t *testing.T) {
	assert.False(t, reconcile.TenderAmounts{}.AnyPositive())
	assert.True(t, reconcile.TenderAmounts{Cash: dec("0.01")}.AnyPositive())
}
