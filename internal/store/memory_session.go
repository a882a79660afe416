// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-echo-sockets/models"
)

// DefaultMemoryCapacity is how many sessions the in-memory journal keeps.
const DefaultMemoryCapacity = 1024

// memorySessionRepository keeps the most recent sessions in a fixed-size
// ring. When full, saving a session evicts the oldest one.
type memorySessionRepository struct {
	mu    sync.RWMutex
	ring  []models.Session
	head  int // index of the oldest entry
	count int
}

// NewMemorySessionRepository returns a ring-backed [SessionRepository]
// holding up to capacity sessions. A non-positive capacity uses
// [DefaultMemoryCapacity].
func NewMemorySessionRepository(capacity int) SessionRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &memorySessionRepository{
		ring: make([]models.Session, capacity),
	}
}

func (r *memorySessionRepository) Save(_ context.Context, session models.Session) error {
	if !session.Closed() {
		return ErrSessionNotClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count < len(r.ring) {
		r.ring[(r.head+r.count)%len(r.ring)] = session
		r.count++
		return nil
	}

	r.ring[r.head] = session
	r.head = (r.head + 1) % len(r.ring)
	return nil
}

// List returns sessions in reverse save order. Sessions are saved when they
// close, so that is newest first.
func (r *memorySessionRepository) List(_ context.Context, limit int) ([]models.Session, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := min(limit, r.count)
	sessions := make([]models.Session, 0, n)
	for i := r.count - 1; i >= r.count-n; i-- {
		sessions = append(sessions, r.ring[(r.head+i)%len(r.ring)])
	}

	return sessions, nil
}

func (r *memorySessionRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]models.Session, 0, r.count)
	for i := 0; i < r.count; i++ {
		s := r.ring[(r.head+i)%len(r.ring)]
		if s.EndedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, s)
	}

	deleted := int64(r.count - len(kept))

	clear(r.ring)
	copy(r.ring, kept)
	r.head = 0
	r.count = len(kept)

	return deleted, nil
}
