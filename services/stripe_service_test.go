package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		want  int64
	}{
		{"two decimal places", 19.99, 1999},
		{"whole dollars", 10, 1000},
		{"single decimal place", 0.5, 50},
		{"extra precision truncates, never rounds up", 19.999, 1999},
		{"sub-cent precision truncates", 2.009, 200},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MinorUnits(tc.price))
		})
	}
}
