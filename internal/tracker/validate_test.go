package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	t.Run("AcceptsNonEmpty", func(t *testing.T) {
		username, err := ValidateUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("RejectsEmpty", func(t *testing.T) {
		_, err := ValidateUsername("")
		require.Error(t, err)
		assert.Equal(t, ErrorKindMissingField, ErrorKind(err))
	})

	t.Run("RejectsWhitespaceOnly", func(t *testing.T) {
		_, err := ValidateUsername("   ")
		require.Error(t, err)
		assert.Equal(t, ErrorKindMissingField, ErrorKind(err))
	})
}

func TestCoerceDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		want     int
		wantKind string
	}{
		{name: "JSONNumber", input: float64(30), want: 30},
		{name: "NumericString", input: "45", want: 45},
		{name: "FloatStringTruncates", input: "12.9", want: 12},
		{name: "NegativeNumber", input: "-5", want: -5},
		{name: "Absent", input: nil, wantKind: ErrorKindMissingField},
		{name: "EmptyString", input: "", wantKind: ErrorKindMissingField},
		{name: "NonNumericString", input: "abc", wantKind: ErrorKindInvalidNumber},
		{name: "NaNString", input: "NaN", wantKind: ErrorKindInvalidNumber},
		{name: "InfString", input: "Inf", wantKind: ErrorKindInvalidNumber},
		{name: "Bool", input: true, wantKind: ErrorKindInvalidNumber},
		{name: "JSONNumberType", input: json.Number("60"), want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceDuration(tt.input)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, ErrorKind(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("AbsentFallsBackToNow", func(t *testing.T) {
		assert.Equal(t, now, CoerceDate("", now))
	})

	t.Run("UnparsableFallsBackToNow", func(t *testing.T) {
		assert.Equal(t, now, CoerceDate("not-a-date", now))
	})

	t.Run("DateOnly", func(t *testing.T) {
		got := CoerceDate("2023-01-05", now)
		assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC3339", func(t *testing.T) {
		got := CoerceDate("2023-01-05T10:30:00Z", now)
		assert.Equal(t, time.Date(2023, 1, 5, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("OutputFormatRoundTrips", func(t *testing.T) {
		got := CoerceDate("Thu Jan 05 2023", now)
		assert.Equal(t, "Thu Jan 05 2023", got.Format(DateLayout))
	})
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "Absent", input: "", wantOK: false},
		{name: "Positive", input: "5", want: 5, wantOK: true},
		{name: "Zero", input: "0", want: 0, wantOK: true},
		{name: "Negative", input: "-1", wantOK: false},
		{name: "NonNumeric", input: "abc", wantOK: false},
		{name: "TrailingGarbage", input: "5x", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLimit(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
