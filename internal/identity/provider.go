package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSignOutFailure   = errors.New("sign out failed")
)

// Change describes one session transition delivered to OnChange listeners.
type Change struct {
	SignedIn bool
	Session  Session
}

// Provider exposes the current authenticated identity and session
// lifecycle transitions. Listeners registered with OnChange are invoked
// on sign-in and sign-out; the returned unsubscribe function must be
// called on teardown so callbacks do not leak.
type Provider struct {
	store      Store
	sessionTTL time.Duration

	mu        sync.Mutex
	listeners map[int]func(Change)
	nextID    int
}

func NewProvider(store Store, sessionTTL time.Duration) *Provider {
	return &Provider{
		store:      store,
		sessionTTL: sessionTTL,
		listeners:  make(map[int]func(Change)),
	}
}

// Current returns the session snapshot for uid, or ErrNotAuthenticated
// when no session exists. Transport errors are returned as-is.
func (p *Provider) Current(ctx context.Context, uid string) (*Session, error) {
	session, err := p.store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotAuthenticated
	}
	return session, nil
}

// SignIn records a new session and notifies listeners.
func (p *Provider) SignIn(ctx context.Context, session Session) error {
	if err := p.store.Put(ctx, session, p.sessionTTL); err != nil {
		return err
	}
	p.notify(Change{SignedIn: true, Session: session})
	return nil
}

// SignOut invalidates the session and notifies listeners. A transport
// error surfaces as ErrSignOutFailure.
func (p *Provider) SignOut(ctx context.Context, uid string) error {
	if err := p.store.Delete(ctx, uid); err != nil {
		return fmt.Errorf("%w: %v", ErrSignOutFailure, err)
	}
	p.notify(Change{SignedIn: false, Session: Session{UID: uid}})
	return nil
}

// OnChange registers a listener for session transitions and returns its
// unsubscribe function.
func (p *Provider) OnChange(fn func(Change)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *Provider) notify(change Change) {
	p.mu.Lock()
	fns := make([]func(Change), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}
