package pairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Symmetric(t *testing.T) {
	tests := []struct {
		a, b     int64
		expected Key
	}{
		{31, 5064, "31_5064"},
		{5064, 31, "31_5064"},
		{7, 7, "7_7"},
		{1, 2, "1_2"},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			k1, err := DeriveKey(tt.a, tt.b)
			require.NoError(t, err)
			k2, err := DeriveKey(tt.b, tt.a)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, k1)
			assert.Equal(t, k1, k2)
		})
	}
}

func TestDeriveKey_InvalidID(t *testing.T) {
	for _, ids := range [][2]int64{{0, 1}, {1, 0}, {-5, 3}} {
		_, err := DeriveKey(ids[0], ids[1])
		assert.ErrorIs(t, err, ErrInvalidID)
	}
}
