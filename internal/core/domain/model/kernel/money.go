package kernel

import "fmt"

// Cents is an exact monetary amount expressed in U.S. cents.
// All menu prices and order subtotals are integer cents, so item arithmetic
// never accumulates floating-point drift. Formatting to dollars happens only
// at the presentation boundary via String.
type Cents int64

// amountPerCent is the number of Amount units in one cent.
// One Amount unit is a hundred-thousandth of a cent, which is fine enough to
// carry the 6.625% tax rate exactly.
const amountPerCent int64 = 100_000

// Times multiplies the amount by an item quantity.
func (c Cents) Times(quantity int) Cents {
	return c * Cents(quantity)
}

// Add returns the sum of two amounts.
func (c Cents) Add(other Cents) Cents {
	return c + other
}

// Amount widens the value to tax-precision units without loss.
func (c Cents) Amount() Amount {
	return Amount(int64(c) * amountPerCent)
}

// ApplyRate multiplies the amount by a rate expressed in hundred-thousandths.
// A rate of 6625 means 6.625%. The result is exact because the rate unit
// matches the Amount unit.
func (c Cents) ApplyRate(rate int64) Amount {
	return Amount(int64(c) * rate)
}

// Dollars returns the amount as a dollar value.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// String renders the amount as dollars with exactly two decimals, e.g. "$7.59".
func (c Cents) String() string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// Amount is an exact monetary amount in hundred-thousandths of a cent.
// It carries tax and total values without pre-rounding; rounding to cents is
// a presentation concern handled by String.
type Amount int64

// Add returns the sum of two amounts.
func (a Amount) Add(other Amount) Amount {
	return a + other
}

// Dollars returns the amount as a dollar value.
func (a Amount) Dollars() float64 {
	return float64(a) / float64(amountPerCent*100)
}

// Round rounds the amount half-up to whole cents.
func (a Amount) Round() Cents {
	return Cents((int64(a) + amountPerCent/2) / amountPerCent)
}

// String renders the amount rounded half-up to cents, e.g. "$6.38".
func (a Amount) String() string {
	return a.Round().String()
}
