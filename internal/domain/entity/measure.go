package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
)

// Weights are carried as integer grams (3 decimal places of a kilogram)
// and point amounts as integer hundredths (2 decimal places). Keeping
// both in fixed point avoids floating accumulation drift in the totals.

// WeightDecimalPlaces is the number of decimal places accepted for weights in kg
const WeightDecimalPlaces = 3

// PointsDecimalPlaces is the number of decimal places used for point amounts
const PointsDecimalPlaces = 2

// ParseWeightKg validates and converts a kilogram string to integer grams.
// Uses a string-based approach so "2.5", "2.50" and "2.500" all map to 2500
// without ever routing through float64.
// Returns ErrInvalidWeight for negative or malformed input.
func ParseWeightKg(weight string) (int64, error) {
	grams, err := parseFixed(weight, WeightDecimalPlaces)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidWeight, err.Error())
	}
	return grams, nil
}

// ParsePoints validates and converts a point amount string to integer hundredths.
// Returns ErrInvalidAmount for negative or malformed input.
func ParsePoints(amount string) (int64, error) {
	hundredths, err := parseFixed(amount, PointsDecimalPlaces)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return hundredths, nil
}

// parseFixed converts a non-negative decimal string to an integer scaled by
// 10^places, accepting at most `places` digits after the decimal point
func parseFixed(value string, places int) (int64, error) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return 0, fmt.Errorf("empty value")
	}

	if strings.HasPrefix(value, "-") {
		return 0, fmt.Errorf("negative value")
	}

	parts := strings.Split(value, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid number format")
	}

	fraction := ""
	if len(parts) == 2 {
		fraction = parts[1]
	}
	if len(fraction) > places {
		return 0, fmt.Errorf("maximum %d decimal places allowed", places)
	}
	for len(fraction) < places {
		fraction += "0"
	}

	scaled, err := strconv.ParseInt(parts[0]+fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", value)
	}

	return scaled, nil
}

// FormatWeightKg converts integer grams back to a kilogram string with
// exactly 3 decimal places, e.g. 2500 -> "2.500"
func FormatWeightKg(grams int64) string {
	return formatFixed(grams, WeightDecimalPlaces)
}

// FormatPoints converts integer hundredths back to a point string with
// exactly 2 decimal places, e.g. 250 -> "2.50"
func FormatPoints(hundredths int64) string {
	return formatFixed(hundredths, PointsDecimalPlaces)
}

// formatFixed renders a scaled integer as a decimal string with the given
// number of fraction digits
func formatFixed(scaled int64, places int) string {
	isNegative := scaled < 0
	if isNegative {
		scaled = -scaled
	}

	digits := strconv.FormatInt(scaled, 10)
	for len(digits) <= places {
		digits = "0" + digits
	}

	split := len(digits) - places
	result := digits[:split] + "." + digits[split:]
	if isNegative {
		return "-" + result
	}
	return result
}
