package critrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicCritBot_Go/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	want := []domain.BuffDefinition{
		{ID: "1", Name: "Wild Magic 2", Magnitude: 2, Kind: domain.BuffAdditive},
		{ID: "2", Name: "Prophecy of Water / PoF / CoV", Magnitude: 2, Kind: domain.BuffAdditive},
		{ID: "3", Name: "Necklace of Valakas", Magnitude: 2, Kind: domain.BuffAdditive},
		{ID: "4", Name: "Talisman: Wild Magic", Magnitude: 2, Kind: domain.BuffAdditive},
		{ID: "5", Name: "Active Augment: WM Level 10", Magnitude: 4, Kind: domain.BuffAdditive},
		{ID: "6", Name: "Passive Augment: WM (any)", Magnitude: 4, Kind: domain.BuffAdditive},
		{ID: "7", Name: "Infinity Scepter", Magnitude: 1, Kind: domain.BuffAdditive},
		{ID: "8", Name: "Dance of Siren", Magnitude: 2, Kind: domain.BuffMultiplicative},
		{ID: "9", Name: "Dark Squad lvl 3", Magnitude: 1.01, Kind: domain.BuffMultiplicative},
		{ID: "10", Name: "Magician's Will", Magnitude: 1.05, Kind: domain.BuffMultiplicative},
	}

	cat := DefaultCatalog()
	assert.Equal(t, len(want), cat.Len())
	assert.Equal(t, want, cat.All())

	b, ok := cat.Get("10")
	require.True(t, ok)
	assert.Equal(t, "Magician's Will (x1.05)", b.Label())
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	cat := DefaultCatalog()
	all := cat.All()
	all[0].Name = "changed"

	b, _ := cat.Get("1")
	assert.Equal(t, "Wild Magic 2", b.Name)
	assert.Equal(t, "Wild Magic 2", cat.All()[0].Name)
}

func TestNewCatalog_Validation(t *testing.T) {
	valid := domain.BuffDefinition{ID: "1", Name: "a", Magnitude: 1, Kind: domain.BuffAdditive}

	tests := []struct {
		name  string
		buffs []domain.BuffDefinition
		msg   string
	}{
		{"missing id", []domain.BuffDefinition{{Name: "a", Magnitude: 1, Kind: domain.BuffAdditive}}, "has no id"},
		{"duplicate id", []domain.BuffDefinition{valid, valid}, "duplicate buff id"},
		{"unknown kind", []domain.BuffDefinition{{ID: "1", Name: "a", Magnitude: 1, Kind: "exponential"}}, "unknown kind"},
		{"zero magnitude", []domain.BuffDefinition{{ID: "1", Name: "a", Kind: domain.BuffAdditive}}, "must be positive"},
		{"negative magnitude", []domain.BuffDefinition{{ID: "1", Name: "a", Magnitude: -2, Kind: domain.BuffMultiplicative}}, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.buffs)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestNewCatalog_OrdersIDs(t *testing.T) {
	cat, err := NewCatalog([]domain.BuffDefinition{
		{ID: "b", Name: "b", Magnitude: 1, Kind: domain.BuffAdditive},
		{ID: "10", Name: "ten", Magnitude: 1, Kind: domain.BuffAdditive},
		{ID: "2", Name: "two", Magnitude: 1, Kind: domain.BuffAdditive},
		{ID: "a", Name: "a", Magnitude: 1, Kind: domain.BuffAdditive},
	})
	require.NoError(t, err)

	var ids []string
	for _, b := range cat.All() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"2", "10", "a", "b"}, ids)
}

func TestParseCatalog(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		cat, err := ParseCatalog([]byte(`
buffs:
  - id: "1"
    name: Focus
    magnitude: 1.5
    kind: multiplicative
`))
		require.NoError(t, err)
		b, ok := cat.Get("1")
		require.True(t, ok)
		assert.Equal(t, domain.BuffMultiplicative, b.Kind)
		assert.Equal(t, 1.5, b.Magnitude)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseCatalog([]byte("buffs: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode buff catalog")
	})

	t.Run("invalid entry", func(t *testing.T) {
		_, err := ParseCatalog([]byte("buffs:\n  - id: \"1\"\n    name: x\n    magnitude: 1\n    kind: sideways\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("mustParseCatalog panics", func(t *testing.T) {
		assert.Panics(t, func() { mustParseCatalog([]byte("buffs: [")) })
	})
}
