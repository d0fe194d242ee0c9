package liveness

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeLifecycle(t *testing.T) {
	s := NewScope()
	assert.True(t, s.Alive())

	s.Kill()
	assert.False(t, s.Alive())

	// idempotent
	s.Kill()
	assert.False(t, s.Alive())
}

func TestNilScopeIsAlive(t *testing.T) {
	var s *Scope
	assert.True(t, s.Alive())
	s.Kill() // must not panic
}

func TestScopeConcurrentKill(t *testing.T) {
	s := NewScope()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Kill()
			s.Alive()
		}()
	}
	wg.Wait()

	assert.False(t, s.Alive())
}
