package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownBuffError(t *testing.T) {
	err := fmt.Errorf("compute: %w", &UnknownBuffError{Token: "42"})

	assert.ErrorIs(t, err, ErrUnknownBuff)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, `compute: buff not recognized: "42"`, err.Error())

	var unknown *UnknownBuffError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "42", unknown.Token)
}

func TestBuffKind(t *testing.T) {
	assert.True(t, BuffAdditive.Valid())
	assert.True(t, BuffMultiplicative.Valid())
	assert.False(t, BuffKind("").Valid())
	assert.False(t, BuffKind("Additive").Valid())

	assert.Equal(t, "+", BuffAdditive.Symbol())
	assert.Equal(t, "x", BuffMultiplicative.Symbol())
}

func TestBuffDefinitionLabel(t *testing.T) {
	tests := []struct {
		buff BuffDefinition
		want string
	}{
		{BuffDefinition{Name: "Wild Magic 2", Magnitude: 2, Kind: BuffAdditive}, "Wild Magic 2 (+2)"},
		{BuffDefinition{Name: "Dark Squad lvl 3", Magnitude: 1.01, Kind: BuffMultiplicative}, "Dark Squad lvl 3 (x1.01)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.buff.Label())
	}
}
