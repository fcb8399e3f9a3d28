package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Money は金額（1/100単位の整数）。
// floatの丸め誤差を避けるため、ファイル上の "12.34" は 1234 として持つ。
type Money int64

// ParseMoney は "12.34" 形式の文字列をMoneyにする。
// 小数部は2桁まで。
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("too many decimal places: %s", s)
	}
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", s)
	}

	var frac int64 = 0
	if fracPart != "" {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %s", s)
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
	}

	v := whole*100 + frac
	if neg {
		v = -v
	}
	return Money(v), nil
}

// String は常に小数2桁で描画する（"10.00" など）。
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MulQty は単価×数量。
func (m Money) MulQty(qty int64) Money {
	return Money(int64(m) * qty)
}
