package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestGenerateDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "Intervalo de um dia",
			start:    time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Mês de janeiro inteiro",
			start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			expected: 31,
		},
		{
			name:     "Fevereiro de ano bissexto",
			start:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expected: 29,
		},
		{
			name:     "Intervalo invertido",
			start:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := GenerateDateRange(tt.start, tt.end)
			assert.Len(t, dates, tt.expected)
			assert.Equal(t, tt.expected, DaysInclusive(tt.start, tt.end))

			for i := 1; i < len(dates); i++ {
				assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
			}
		})
	}
}
