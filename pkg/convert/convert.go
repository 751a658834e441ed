// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] to provide fault-tolerant conversions for query parameters
and form inputs, plus the conversion between the price an author types and the
integer minor-currency units the backend stores.

Do not use the fault-tolerant helpers where distinguishing malformed data from
zero values matters; use [ToMinorUnits], which reports failure.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}

// # Prices

// ToMinorUnits converts a typed major-unit price ("49.99") into minor units
// (4999), rounding half up. An empty string is zero.
//
// It reports false when the input is not a finite number.
func ToMinorUnits(price string) (int64, bool) {
	price = strings.TrimSpace(price)
	if price == "" {
		return 0, true
	}

	value, err := strconv.ParseFloat(price, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return int64(math.Floor(value*100 + 0.5)), true
}

// FromMinorUnits renders minor units as a major-unit price with two decimals.
//
// Example:
//
//	convert.FromMinorUnits(4999) // "49.99"
func FromMinorUnits(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return sign + strconv.FormatInt(minor/100, 10) + "." + leftPad2(minor%100)
}

func leftPad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
