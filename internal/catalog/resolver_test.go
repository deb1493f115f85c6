package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmCalc_Go/internal/domain"
)

func TestSuggest(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"wheat", "Wheat", true},
		{"pump", "Pumpkin", true},
		{"Potatoe", "Potato", true},
		{"Cheri Tree", "Cherry Tree", true},
		{"tomatto", "Tomato", true},
		{"zzzzzz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := c.Suggest(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	crop, err := c.Resolve("CORN")
	require.NoError(t, err)
	assert.Equal(t, "Corn", crop.Name)

	_, err = c.Resolve("Carot")
	require.ErrorIs(t, err, domain.ErrCropNotFound)
	assert.Contains(t, err.Error(), `did you mean "Carrot"`)

	_, err = c.Resolve("Mandrake")
	require.ErrorIs(t, err, domain.ErrCropNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}
