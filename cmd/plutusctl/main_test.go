package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseETH(t *testing.T) {
	tt := []struct {
		in       string
		expected string
		valid    bool
	}{
		{in: "1", expected: "1000000000000000000", valid: true},
		{in: "0.01", expected: "10000000000000000", valid: true},
		{in: "0.000000000000000001", expected: "1", valid: true},
		{in: "0", expected: "0", valid: true},
		{in: "0.0000000000000000001"},
		{in: "-1"},
		{in: "abc"},
	}

	for _, tc := range tt {
		v, err := parseETH(tc.in)
		if !tc.valid {
			assert.Error(t, err, tc.in)
			continue
		}

		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, v.String(), tc.in)
	}

	v, err := parseETH("")
	require.NoError(t, err)
	require.Nil(t, v)
}

func Test_formatETH(t *testing.T) {
	assert.Equal(t, "0", formatETH(nil))
	assert.Equal(t, "1.5", formatETH(big.NewInt(1500000000000000000)))
	assert.Equal(t, "0.000000000000000001", formatETH(big.NewInt(1)))
}
