package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpalanivelraj/nekipay/internal/person"
)

const threshold = 500

func TestCalculate_EmptyLedger(t *testing.T) {
	b := Calculate(nil, nil, threshold)

	assert.Zero(t, b.NetBalance)
	assert.Zero(t, b.OwedAmount)
	assert.Equal(t, "All settled up!", b.WhoOwesWhom)
	assert.False(t, b.ExceedsThreshold)
}

func TestCalculate_SharedExpenseSplitsInHalf(t *testing.T) {
	// Kiruthika pays 1000 for both: Neha owes her half.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 1000},
	}, nil, threshold)

	assert.InDelta(t, 1000, b.KiruthikaPaid, 1e-9)
	assert.InDelta(t, 500, b.NehaOwesKiruthika, 1e-9)
	assert.InDelta(t, -500, b.NetBalance, 1e-9)
	assert.InDelta(t, 500, b.OwedAmount, 1e-9)
	assert.Equal(t, "Neha owes Kiruthika", b.WhoOwesWhom)
}

func TestCalculate_MutualSharedExpensesNetOut(t *testing.T) {
	// Kiruthika pays 1000, then Neha pays 200, both shared.
	// Neha's 100 credit nets the debt down to 400.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 1000},
		{PaidBy: person.Neha, PaidFor: person.PaidForBoth, Amount: 200},
	}, nil, threshold)

	assert.InDelta(t, 500, b.NehaOwesKiruthika, 1e-9)
	assert.InDelta(t, 100, b.KiruthikaOwesNeha, 1e-9)
	assert.InDelta(t, -400, b.NetBalance, 1e-9)
	assert.InDelta(t, 400, b.OwedAmount, 1e-9)
	assert.InDelta(t, 1200, b.TotalExpenses, 1e-9)
	assert.InDelta(t, 600, b.FairShare, 1e-9)
}

func TestCalculate_AllSharedMatchesHalfDifference(t *testing.T) {
	// When every expense is shared, the net balance is half the
	// difference of what each person paid.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 620.50},
		{PaidBy: person.Neha, PaidFor: person.PaidForBoth, Amount: 180.30},
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 99.99},
	}, nil, threshold)

	wantNet := (180.30 - (620.50 + 99.99)) / 2
	assert.InDelta(t, wantNet, b.NetBalance, 0.01)
}

func TestCalculate_PaidForOtherOwedInFull(t *testing.T) {
	// Kiruthika pays 300 for Neha alone: full amount owed, no halving.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForNeha, Amount: 300},
	}, nil, threshold)

	assert.InDelta(t, 300, b.NehaOwesKiruthika, 1e-9)
	assert.InDelta(t, 300, b.OwedAmount, 1e-9)
}

func TestCalculate_SelfFundedCreatesNoDebt(t *testing.T) {
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForKiruthika, Amount: 9999},
		{PaidBy: person.Neha, PaidFor: person.PaidForNeha, Amount: 42},
	}, nil, threshold)

	assert.Zero(t, b.KiruthikaOwesNeha)
	assert.Zero(t, b.NehaOwesKiruthika)
	assert.Zero(t, b.NetBalance)
	assert.InDelta(t, 10041, b.TotalExpenses, 1e-9)
}

func TestCalculate_EmptyPaidForDefaultsToBoth(t *testing.T) {
	// Records created before the field existed carry no beneficiary.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: "", Amount: 100},
	}, nil, threshold)

	assert.InDelta(t, 50, b.NehaOwesKiruthika, 1e-9)
}

func TestCalculate_ConfirmedSettlementReducesDebt(t *testing.T) {
	// The settlement scenario: Neha owes 400 and pays it back in full.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 1000},
		{PaidBy: person.Neha, PaidFor: person.PaidForBoth, Amount: 200},
	}, []SettlementEntry{
		{From: person.Neha, To: person.Kiruthika, Amount: 400},
	}, threshold)

	// One-directional debts after settlement: 500-400=100 vs 100.
	assert.InDelta(t, 100, b.NehaOwesKiruthika, 1e-9)
	assert.InDelta(t, 100, b.KiruthikaOwesNeha, 1e-9)
	assert.Zero(t, b.NetBalance)
	assert.Zero(t, b.OwedAmount)
	assert.InDelta(t, 400, b.TotalSettled, 1e-9)
}

func TestCalculate_OverSettlementFloorsAtZero(t *testing.T) {
	// Paying more than the outstanding one-directional debt floors it at
	// zero; the excess is discarded, never credited to the reverse side.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 200},
	}, []SettlementEntry{
		{From: person.Neha, To: person.Kiruthika, Amount: 1000},
	}, threshold)

	assert.Zero(t, b.NehaOwesKiruthika)
	assert.Zero(t, b.KiruthikaOwesNeha)
	assert.Zero(t, b.NetBalance)
	assert.InDelta(t, 1000, b.TotalSettled, 1e-9)
}

func TestCalculate_SettlementNeverIncreasesAbsoluteBalance(t *testing.T) {
	expenses := []ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 800},
		{PaidBy: person.Neha, PaidFor: person.PaidForKiruthika, Amount: 150},
	}
	before := Calculate(expenses, nil, threshold)

	for _, amount := range []float64{1, 100, 250, 500, 10000} {
		after := Calculate(expenses, []SettlementEntry{
			{From: person.Neha, To: person.Kiruthika, Amount: amount},
		}, threshold)
		assert.LessOrEqual(t, after.OwedAmount, before.OwedAmount,
			"settlement of %v increased the owed amount", amount)
	}
}

func TestCalculate_SettlementWrongDirectionDoesNotReduceDebt(t *testing.T) {
	// Neha owes Kiruthika, but Kiruthika pays Neha: the debt in the
	// Neha->Kiruthika direction is untouched.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 1000},
	}, []SettlementEntry{
		{From: person.Kiruthika, To: person.Neha, Amount: 300},
	}, threshold)

	assert.InDelta(t, 500, b.NehaOwesKiruthika, 1e-9)
	assert.InDelta(t, 500, b.OwedAmount, 1e-9)
}

func TestCalculate_ThresholdFlag(t *testing.T) {
	under := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 998},
	}, nil, threshold)
	assert.False(t, under.ExceedsThreshold)

	at := Calculate([]ExpenseEntry{
		{PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 1000},
	}, nil, threshold)
	assert.True(t, at.ExceedsThreshold)
	assert.InDelta(t, threshold, at.ThresholdAmount, 1e-9)
}

func TestCalculate_RoundsToCents(t *testing.T) {
	// 33.33 shared: half is 16.665, rounded half away from zero to 16.67.
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Neha, PaidFor: person.PaidForBoth, Amount: 33.33},
	}, nil, threshold)

	assert.InDelta(t, 16.67, b.KiruthikaOwesNeha, 1e-9)
	assert.InDelta(t, 16.67, b.OwedAmount, 1e-9)
}

func TestDebtor(t *testing.T) {
	b := Calculate([]ExpenseEntry{
		{PaidBy: person.Neha, PaidFor: person.PaidForBoth, Amount: 100},
	}, nil, threshold)

	debtor, ok := b.Debtor()
	assert.True(t, ok)
	assert.Equal(t, person.Kiruthika, debtor)

	_, ok = Calculate(nil, nil, threshold).Debtor()
	assert.False(t, ok)
}
