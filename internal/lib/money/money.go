// Package money отвечает за разбор денежных сумм из внешнего ввода.
//
// Суммы хранятся как decimal с фиксированной точностью в два знака,
// чтобы агрегаты не накапливали погрешность плавающей точки.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parse разбирает строку с денежной суммой.
// Допускаются только положительные значения с не более чем двумя
// знаками после точки.
func Parse(s string) (decimal.Decimal, error) {
	const op = "money.Parse"
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}
	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("%s: more than two fractional digits: %s", op, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s: amount must be positive: %s", op, s)
	}
	return d, nil
}
