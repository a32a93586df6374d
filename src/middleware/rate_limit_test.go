package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowLocalEnforcesLimit(t *testing.T) {
	key := "test:1.2.3.4"
	for i := 0; i < 5; i++ {
		assert.True(t, allowLocal(key, 5, time.Minute), "hit %d should pass", i+1)
	}
	assert.False(t, allowLocal(key, 5, time.Minute))
}

func TestAllowLocalWindowsAreIndependentPerKey(t *testing.T) {
	assert.True(t, allowLocal("a:1.1.1.1", 1, time.Minute))
	assert.False(t, allowLocal("a:1.1.1.1", 1, time.Minute))
	assert.True(t, allowLocal("a:2.2.2.2", 1, time.Minute))
	assert.True(t, allowLocal("b:1.1.1.1", 1, time.Minute))
}

func TestAllowLocalResetsAfterWindow(t *testing.T) {
	key := "reset:9.9.9.9"
	assert.True(t, allowLocal(key, 1, 10*time.Millisecond))
	assert.False(t, allowLocal(key, 1, 10*time.Millisecond))

	time.Sleep(15 * time.Millisecond)
	assert.True(t, allowLocal(key, 1, 10*time.Millisecond))
}
