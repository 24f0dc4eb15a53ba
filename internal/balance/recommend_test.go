package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpalanivelraj/nekipay/internal/person"
)

func snapshotWithDebt(t *testing.T, debtor person.Person, amount float64) *Balance {
	t.Helper()
	entry := ExpenseEntry{PaidBy: debtor.Other(), PaidFor: person.PaidForBoth, Amount: amount * 2}
	return Calculate([]ExpenseEntry{entry}, nil, threshold)
}

func TestRecommend_NothingOwed(t *testing.T) {
	rec := Recommend(Calculate(nil, nil, threshold))

	assert.False(t, rec.ShouldSettle)
	assert.Zero(t, rec.Amount)
	assert.Empty(t, rec.From)
	assert.Empty(t, rec.To)
}

func TestRecommend_FullAmountForModestDebt(t *testing.T) {
	rec := Recommend(snapshotWithDebt(t, person.Neha, 400))

	assert.True(t, rec.ShouldSettle)
	assert.Equal(t, person.Neha, rec.From)
	assert.Equal(t, person.Kiruthika, rec.To)
	assert.InDelta(t, 400, rec.Amount, 1e-9)
	assert.False(t, rec.IsPartial)
}

func TestRecommend_PartialAboveCutoff(t *testing.T) {
	rec := Recommend(snapshotWithDebt(t, person.Kiruthika, 2501))

	assert.True(t, rec.ShouldSettle)
	assert.Equal(t, person.Kiruthika, rec.From)
	// ceil(2501 / 2) = 1251
	assert.InDelta(t, 1251, rec.Amount, 1e-9)
	assert.InDelta(t, 2501, rec.FullAmount, 1e-9)
	assert.True(t, rec.IsPartial)
}

func TestRecommend_FullAmountAtCutoff(t *testing.T) {
	rec := Recommend(snapshotWithDebt(t, person.Kiruthika, 2000))

	assert.InDelta(t, 2000, rec.Amount, 1e-9)
	assert.False(t, rec.IsPartial)
}

func TestValidateSettlement_MatchingDirection(t *testing.T) {
	b := snapshotWithDebt(t, person.Neha, 400)
	check := ValidateSettlement(person.Neha, person.Kiruthika, 400, b)

	assert.True(t, check.IsValid)
	assert.Empty(t, check.Errors)
	assert.Empty(t, check.Warnings)
}

func TestValidateSettlement_WrongDirection(t *testing.T) {
	b := snapshotWithDebt(t, person.Neha, 400)
	check := ValidateSettlement(person.Kiruthika, person.Neha, 400, b)

	assert.False(t, check.IsValid)
	assert.NotEmpty(t, check.Errors)
}

func TestValidateSettlement_NoDebt(t *testing.T) {
	check := ValidateSettlement(person.Neha, person.Kiruthika, 100, Calculate(nil, nil, threshold))

	assert.False(t, check.IsValid)
	assert.Contains(t, check.Errors[0], "settled up")
}

func TestValidateSettlement_OverpaymentOnlyWarns(t *testing.T) {
	b := snapshotWithDebt(t, person.Neha, 400)
	check := ValidateSettlement(person.Neha, person.Kiruthika, 600, b)

	assert.True(t, check.IsValid)
	assert.NotEmpty(t, check.Warnings)
}

func TestSummarize(t *testing.T) {
	b := snapshotWithDebt(t, person.Neha, 600)
	s := Summarize(b)

	assert.Equal(t, "Neha owes Kiruthika", s.MainMessage)
	assert.InDelta(t, 600, s.Amount, 1e-9)
	assert.True(t, s.ShowAlert)
	assert.NotEmpty(t, s.AlertMessage)

	quiet := Summarize(Calculate(nil, nil, threshold))
	assert.False(t, quiet.ShowAlert)
	assert.Empty(t, quiet.AlertMessage)
}

func TestIndividual(t *testing.T) {
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 1000},
		{PaidBy: person.Neha, PaidFor: person.PaidForBoth, Amount: 200},
	}, nil, threshold)

	ind := Individual(b)
	assert.InDelta(t, 1000, ind.Kiruthika.Paid, 1e-9)
	assert.InDelta(t, 100, ind.Kiruthika.Owes, 1e-9)
	assert.InDelta(t, 500, ind.Kiruthika.IsOwed, 1e-9)
	assert.InDelta(t, 200, ind.Neha.Paid, 1e-9)
	assert.InDelta(t, 500, ind.Neha.Owes, 1e-9)
	assert.InDelta(t, 100, ind.Neha.IsOwed, 1e-9)
}
