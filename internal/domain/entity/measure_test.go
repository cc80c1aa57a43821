package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
)

func TestParseWeightKg(t *testing.T) {
	t.Run("Valid weights", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"2.5", 2500},
			{"2.50", 2500},
			{"2.500", 2500},
			{"0.001", 1},
			{"100", 100000},
			{"0.1", 100},
			{"12.345", 12345},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				grams, err := ParseWeightKg(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, grams)
			})
		}
	})

	t.Run("Invalid weights", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"   ", "Whitespace only"},
			{"-2.5", "Negative weight"},
			{"2.5000", "Too many decimal places"},
			{"abc", "Non-numeric"},
			{"2.5.0", "Multiple decimal points"},
			{"2,5", "Comma as decimal separator"},
			{"2.5kg", "Trailing unit"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseWeightKg(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidWeight)
			})
		}
	})
}

func TestParsePoints(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"1.00", 100},
			{"1", 100},
			{"0.5", 50},
			{"3.00", 300},
			{"0.01", 1},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				hundredths, err := ParsePoints(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, hundredths)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		for _, input := range []string{"", "-1.00", "1.005", "x"} {
			_, err := ParsePoints(input)
			assert.Error(t, err, input)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})
}

func TestFormatWeightKg(t *testing.T) {
	testCases := []struct {
		grams    int64
		expected string
	}{
		{2500, "2.500"},
		{1, "0.001"},
		{100000, "100.000"},
		{0, "0.000"},
		{12345, "12.345"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatWeightKg(tc.grams))
		})
	}
}

func TestFormatPoints(t *testing.T) {
	testCases := []struct {
		hundredths int64
		expected   string
	}{
		{250, "2.50"},
		{1, "0.01"},
		{0, "0.00"},
		{10050, "100.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatPoints(tc.hundredths))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, weight := range []string{"0.001", "2.500", "99.999", "100.000"} {
		grams, err := ParseWeightKg(weight)
		assert.NoError(t, err)
		assert.Equal(t, weight, FormatWeightKg(grams))
	}
}
