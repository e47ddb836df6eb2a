package reconcile_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/utils/reconcile"
)

func TestSplitVAT_Buckets(t *testing.T) {
	lines := []domain.SaleLine{
		line("120.00", 1, "0", domain.ConditionNew),
		line("50.00", 1, "0", domain.ConditionUsed),
	}
	norm := reconcile.NormalizeLines(lines, decimal.Zero)
	vat := reconcile.SplitVAT(lines, norm)

	assert.True(t, vat.TTC20.Equal(dec("120.00")))
	assert.True(t, vat.TTC0.Equal(dec("50.00")))
	assert.True(t, vat.HT20.Equal(dec("100.00")))
	assert.True(t, vat.TVA20.Equal(dec("20.00")))
	assert.True(t, vat.HT0.Equal(dec("50.00")))
	assert.True(t, vat.TotalHT.Equal(dec("150.00")))
	assert.True(t, vat.TotalTVA.Equal(dec("20.00")))
	assert.True(t, vat.TotalTTC.Equal(dec("170.00")))
}

func TestSplitVAT_Additivity(t *testing.T) {
	// HT0 + HT20 + TotalTVA == TotalTTC within one cent, for awkward amounts.
	lines := []domain.SaleLine{
		line("19.99", 3, "10", domain.ConditionNew),
		line("7.77", 2, "0", domain.ConditionNew),
		line("12.34", 1, "33", domain.ConditionUsed),
		line("0.99", 5, "0", domain.ConditionUsed),
	}
	norm := reconcile.NormalizeLines(lines, dec("3.50"))
	vat := reconcile.SplitVAT(lines, norm)

	lhs := vat.HT0.Add(vat.HT20).Add(vat.TotalTVA)
	drift := lhs.Sub(vat.TotalTTC).Abs()
	assert.True(t, drift.LessThanOrEqual(dec("0.01")), "drift %s", drift)
}

func TestSplitVAT_UsedOnlyHasNoVAT(t *testing.T) {
	lines := []domain.SaleLine{line("42.00", 1, "0", domain.ConditionUsed)}
	norm := reconcile.NormalizeLines(lines, decimal.Zero)
	vat := reconcile.SplitVAT(lines, norm)

	assert.True(t, vat.TTC20.IsZero())
	assert.True(t, vat.TVA20.IsZero())
	assert.True(t, vat.TotalTVA.IsZero())
	assert.True(t, vat.TotalTTC.Equal(dec("42.00")))
}
