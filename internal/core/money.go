// Package core holds the shared ledger vocabulary: error kinds and the
// money arithmetic rules every component must agree on.
package core

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places every stored money value has.
const MoneyScale = 2

// PercentScale is the number of decimal places for goal progress figures.
const PercentScale = 4

// RoundMoney rounds half-up to MoneyScale. Every money computation that can
// produce extra precision must pass through here before it is stored.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// Convert converts an amount between two currencies through the EUR pivot.
// Rates are the value of one unit of the currency in EUR; EUR itself is
// assumed to stay at 1.0. The result is rounded half-up to MoneyScale.
func Convert(amount, fromRate, toRate decimal.Decimal) decimal.Decimal {
	amountInEur := amount.Mul(fromRate)
	return RoundMoney(amountInEur.Div(toRate))
}

// ProgressPercent returns current/target expressed as a percentage at
// PercentScale. A zero target yields zero.
func ProgressPercent(current, target decimal.Decimal) decimal.Decimal {
	if target.IsZero() {
		return decimal.Zero
	}
	return current.Mul(decimal.NewFromInt(100)).Div(target).Round(PercentScale)
}
