package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with the symbol, separators and precision of the given ISO currency.
// Example: 1234.5 with USD returns "$1,234.50"
// Example: -12.3456 with JPY returns "-¥12"
// Unknown codes fall back to two decimals followed by the code.
func FormatMoney(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return FormatWithPrecision(amount, 2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatSignedMoney is FormatMoney with an explicit "+" on positive amounts.
func FormatSignedMoney(amount decimal.Decimal, code string) string {
	if amount.IsPositive() {
		return "+" + FormatMoney(amount, code)
	}
	return FormatMoney(amount, code)
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatPercent renders a ratio in [0,1] as a whole percentage.
func FormatPercent(ratio decimal.Decimal) string {
	return ratio.Shift(2).Round(0).String() + "%"
}
