// README: Money value object used to display predicted fares.
package types

import "fmt"

const CurrencyUSD = "USD"

// Money stores an amount in major units as reported by the model.
// Rounding happens only when the amount is rendered.
type Money struct {
	Amount   float64
	Currency string
}

func USD(dollars float64) Money {
	return Money{Amount: dollars, Currency: CurrencyUSD}
}

// Dollars returns the amount in major units.
func (m Money) Dollars() float64 {
	return m.Amount
}

// String renders the exact binary amount with two decimals, e.g. "$12.50".
// Ties round half to even, so 0.125 renders as "$0.12".
func (m Money) String() string {
	if m.Amount < 0 {
		return fmt.Sprintf("-$%.2f", -m.Amount)
	}
	return fmt.Sprintf("$%.2f", m.Amount)
}
