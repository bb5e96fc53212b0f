package critrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicCritBot_Go/internal/domain"
)

func TestService_CacheMatchesColdComputation(t *testing.T) {
	svc := NewService(NewCalculator(nil), CacheConfig{Size: 16})
	cold := NewCalculator(nil)

	want, err := cold.ComputeRate(40, []string{"8", "9", "10"})
	require.NoError(t, err)

	first, err := svc.ComputeRate(40, []string{"8", "9", "10"})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.CachedEntries())

	second, err := svc.ComputeRate(40, []string{"8", "9", "10"})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.CachedEntries())

	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
}

func TestService_PreservesSuppliedOrder(t *testing.T) {
	svc := NewService(nil, CacheConfig{Size: 16})

	a, err := svc.ComputeRate(23, []string{"3", "9"})
	require.NoError(t, err)
	b, err := svc.ComputeRate(23, []string{"9", "3"})
	require.NoError(t, err)

	assert.InDelta(t, a.FinalRate, b.FinalRate, rateTolerance)
	assert.Equal(t, []string{"Necklace of Valakas", "Dark Squad lvl 3"}, a.AppliedBuffs)
	assert.Equal(t, []string{"Dark Squad lvl 3", "Necklace of Valakas"}, b.AppliedBuffs)
}

func TestService_CachedResultIsNotShared(t *testing.T) {
	svc := NewService(nil, CacheConfig{Size: 16})

	first, err := svc.ComputeRate(23, []string{"3"})
	require.NoError(t, err)
	first.AppliedBuffs[0] = "mutated"

	second, err := svc.ComputeRate(23, []string{"3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Necklace of Valakas"}, second.AppliedBuffs)
}

func TestService_RejectionsAreNotCached(t *testing.T) {
	svc := NewService(nil, CacheConfig{Size: 16})

	_, err := svc.ComputeRate(23, []string{"3", "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownBuff)
	assert.Equal(t, 0, svc.CachedEntries())
}

func TestService_ZeroSizeDisablesCache(t *testing.T) {
	svc := NewService(nil, CacheConfig{Size: 0})

	res, err := svc.ComputeRate(23, nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.813125, res.FinalRate, rateTolerance)
	assert.Equal(t, 0, svc.CachedEntries())

	svc.Purge()
}

func TestService_Purge(t *testing.T) {
	svc := NewService(nil, CacheConfig{Size: 16})

	for wit := 20; wit < 25; wit++ {
		_, err := svc.ComputeRate(wit, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, svc.CachedEntries())

	svc.Purge()
	assert.Equal(t, 0, svc.CachedEntries())
}

func TestService_Catalog(t *testing.T) {
	svc := NewService(nil, CacheConfig{})
	assert.Same(t, DefaultCatalog(), svc.Catalog())
}

func TestCacheKey(t *testing.T) {
	key, ok := cacheKey(23, []string{"3", "9"})
	assert.True(t, ok)
	assert.Equal(t, "23 3 9", key)

	key, ok = cacheKey(23, nil)
	assert.True(t, ok)
	assert.Equal(t, "23", key)

	other, ok := cacheKey(23, []string{"9", "3"})
	assert.True(t, ok)
	assert.NotEqual(t, "23 3 9", other)

	_, ok = cacheKey(23, []string{"3 9"})
	assert.False(t, ok, "tokens containing the separator are not cacheable")
}

func TestService_SeparatorTokensBypassCache(t *testing.T) {
	svc := NewService(nil, CacheConfig{Size: 16})

	_, err := svc.ComputeRate(23, []string{"3 9"})
	assert.ErrorIs(t, err, domain.ErrUnknownBuff)
	assert.Equal(t, 0, svc.CachedEntries())
}
