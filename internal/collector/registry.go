package collector

import (
	"sync"

	"github.com/anthropics/hackslice/internal/errs"
	"github.com/anthropics/hackslice/internal/provider"
)

// guardedChecker wraps a provider.TypeChecker so AddDependencyCallback
// refuses a second concurrent registration instead of relying on every
// TypeChecker implementation (including test fakes) to enforce it
// itself. Modeled on the teacher's daemon.Socket, which refuses a second
// Start while one is already serving and guarantees its shutdown path
// runs on every exit.
type guardedChecker struct {
	provider.TypeChecker
	mu     sync.Mutex
	active bool
}

// Guard wraps tc with single-registration enforcement.
func Guard(tc provider.TypeChecker) provider.TypeChecker {
	return &guardedChecker{TypeChecker: tc}
}

func (g *guardedChecker) AddDependencyCallback(name string, cb provider.EdgeCallback) (func(), error) {
	g.mu.Lock()
	if g.active {
		g.mu.Unlock()
		return nil, errs.NewUnexpectedDependency("dependency callback already registered; concurrent extractions are not supported")
	}
	g.active = true
	g.mu.Unlock()

	unregister, err := g.TypeChecker.AddDependencyCallback(name, cb)
	if err != nil {
		g.mu.Lock()
		g.active = false
		g.mu.Unlock()
		return nil, err
	}

	return func() {
		unregister()
		g.mu.Lock()
		g.active = false
		g.mu.Unlock()
	}, nil
}
