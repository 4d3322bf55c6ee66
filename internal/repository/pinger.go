package repository

import "context"

// Pinger reports whether the backing store can serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MemoryPinger is the Pinger of the in-memory backend, which is always up.
type MemoryPinger struct{}

func (MemoryPinger) Ping(context.Context) error { return nil }
