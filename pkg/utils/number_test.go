package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 85.71, RoundWithTwoDecimalPlace(600.0/7.0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -1.23, RoundWithTwoDecimalPlace(-1.234))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 0.0, SafeDivide(0, 0))
	assert.Equal(t, 0.0, SafeDivide(math.Inf(1), 1))
	assert.Equal(t, 2.5, SafeDivide(5, 2))
	assert.Equal(t, 25.0, Percentage(1, 4))
	assert.Equal(t, 0.0, Percentage(3, 0))
}
