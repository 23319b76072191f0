package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDigits(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"123", 123},
		{"0", 0},
		{"007", 7},
		{"12.5", 0},
		{"-5", 0},
		{"+5", 0},
		{"", 0},
		{" 42", 0},
		{"42 ", 0},
		{"1e5", 0},
		{"12a", 0},
		{"450000", 450000},
		{strings.Repeat("9", 400), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDigits(tt.raw), "ParseDigits(%q)", tt.raw)
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123456789"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("١٢٣"))
}
