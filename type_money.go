package prospect

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an amount with its currency for display purposes. Amounts
// are stored on clients as bare decimals; Money only exists so views can
// format them with the right symbol and fraction.
type Money struct {
	value *money.Money
}

// M creates a Money from a decimal amount in major units.
func M(amount decimal.Decimal, currency Currency) Money {
	cur := money.GetCurrency(string(currency))
	if cur == nil {
		return Money{}
	}
	factor := decimal.New(1, int32(cur.Fraction))
	return Money{money.New(amount.Mul(factor).IntPart(), string(currency))}
}

// String returns the formatted money value, like "$1,500.00".
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

// IsZero reports whether the amount is zero or unset.
func (m Money) IsZero() bool {
	return m.value == nil || m.value.IsZero()
}
