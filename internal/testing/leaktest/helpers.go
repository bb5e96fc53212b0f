// Package leaktest catches goroutines left running by background loops.
package leaktest

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	settleWait  = 2 * time.Second
	settlePoll  = 10 * time.Millisecond
	warmupPause = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count before a test starts its
// background work.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(warmupPause)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check waits for the goroutine count to fall back to within tolerance of
// the recorded count and fails the test if it never does.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	assert.Eventually(g.t, func() bool {
		return runtime.NumGoroutine()-g.before <= tolerance
	}, settleWait, settlePoll,
		"goroutine leak: before=%d after=%d tolerance=%d", g.before, runtime.NumGoroutine(), tolerance)
}

// CheckNoGoroutineLeak runs fn and verifies every goroutine it started has exited
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
