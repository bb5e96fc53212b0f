package critrate

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MagicCritBot_Go/internal/domain"
	"github.com/osse101/MagicCritBot_Go/internal/metrics"
)

// CacheConfig controls the result cache. Size 0 disables caching.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// Service is what command handlers call. It wraps a Calculator with an
// expirable LRU of successful results and records calculation metrics.
type Service struct {
	calc  *Calculator
	cache *expirable.LRU[string, domain.CalculationResult]
}

// NewService creates a calculation service
func NewService(calc *Calculator, cfg CacheConfig) *Service {
	if calc == nil {
		calc = NewCalculator(nil)
	}
	s := &Service{calc: calc}
	if cfg.Size > 0 {
		s.cache = expirable.NewLRU[string, domain.CalculationResult](cfg.Size, nil, cfg.TTL)
	}
	return s
}

// Catalog exposes the buff catalog for help listings
func (s *Service) Catalog() *Catalog {
	return s.calc.Catalog()
}

// ComputeRate returns the result for attribute and tokens, serving repeats from cache.
// Rejections are never cached.
func (s *Service) ComputeRate(attribute int, tokens []string) (domain.CalculationResult, error) {
	key, cacheable := cacheKey(attribute, tokens)
	if s.cache != nil && cacheable {
		if res, ok := s.cache.Get(key); ok {
			metrics.CalculationCacheHits.Inc()
			metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
			return cloneResult(res), nil
		}
		metrics.CalculationCacheMisses.Inc()
	}

	res, err := s.calc.ComputeRate(attribute, tokens)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, domain.ErrUnknownBuff) {
			outcome = metrics.OutcomeRejected
		}
		metrics.CalculationsTotal.WithLabelValues(outcome).Inc()
		return domain.CalculationResult{}, err
	}

	metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	if res.Capped {
		metrics.CappedResults.Inc()
	}
	if s.cache != nil && cacheable {
		s.cache.Add(key, cloneResult(res))
	}
	return res, nil
}

// Purge drops every cached result
func (s *Service) Purge() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

// CachedEntries reports how many results are currently cached
func (s *Service) CachedEntries() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// cacheKey keeps the supplied token order so cached buff names display in that order.
// Tokens containing the separator would make keys ambiguous and are not cached.
func cacheKey(attribute int, tokens []string) (string, bool) {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(attribute))
	for _, t := range tokens {
		if strings.Contains(t, CacheKeySeparator) {
			return "", false
		}
		sb.WriteString(CacheKeySeparator)
		sb.WriteString(t)
	}
	return sb.String(), true
}

func cloneResult(res domain.CalculationResult) domain.CalculationResult {
	names := make([]string, len(res.AppliedBuffs))
	copy(names, res.AppliedBuffs)
	res.AppliedBuffs = names
	return res
}
