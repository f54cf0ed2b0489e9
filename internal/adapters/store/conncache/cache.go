package conncache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Cenagaurav77/Present-App/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTimeout = 5 * time.Second

	attemptKey = "connect"
)

var ErrConnectTimeout = errors.New("connection attempt timed out")

type State int

const (
	StateUnconnected State = iota
	StateConnecting
	StateConnected
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Dialer opens a new connection. It should honour ctx, but a dialer that does not is
// still bounded by the cache timeout.
type Dialer[T any] func(ctx context.Context) (T, error)

type Config[T any] struct {
	// Timeout bounds a single connection attempt. Zero means DefaultTimeout.
	Timeout time.Duration
	Logger  *zap.Logger
	// Discard releases a connection whose attempt had already timed out when it arrived.
	Discard func(T)
}

// Cache holds at most one established connection and at most one in-flight
// connection attempt. Callers arriving during an attempt share its outcome. A failed
// attempt leaves the cache unconnected so the next Acquire dials again.
type Cache[T any] struct {
	dial    Dialer[T]
	timeout time.Duration
	logger  *zap.Logger
	discard func(T)

	group    singleflight.Group
	attempts atomic.Int64

	mu    sync.Mutex
	state State
	conn  T
}

func New[T any](dial Dialer[T], cfg Config[T]) *Cache[T] {
	if dial == nil {
		panic("conncache: nil dialer")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Cache[T]{
		dial:    dial,
		timeout: timeout,
		logger:  logger,
		discard: cfg.Discard,
	}
}

// Acquire returns the established connection, dialing it first if needed. A failed
// or timed-out attempt is reported as a *domain.ConnectionError and never retried here.
func (c *Cache[T]) Acquire(ctx context.Context) (T, error) {
	if conn, ok := c.established(); ok {
		c.logger.Debug("reusing cached connection")
		return conn, nil
	}

	ch := c.group.DoChan(attemptKey, func() (any, error) {
		return c.connect()
	})

	var zero T
	select {
	case result := <-ch:
		if result.Err != nil {
			return zero, result.Err
		}
		return result.Val.(T), nil
	case <-ctx.Done():
		return zero, &domain.ConnectionError{Err: ctx.Err()}
	}
}

func (c *Cache[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Attempts is the number of dials started over the cache lifetime.
func (c *Cache[T]) Attempts() int64 {
	return c.attempts.Load()
}

// Close tears down the established connection, if any, and returns the cache to
// the unconnected state. closeFn may be nil.
func (c *Cache[T]) Close(closeFn func(T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConnected {
		return nil
	}

	conn := c.conn
	var zero T
	c.conn = zero
	c.state = StateUnconnected
	c.logger.Info("connection closed")

	if closeFn == nil {
		return nil
	}
	return closeFn(conn)
}

func (c *Cache[T]) established() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateConnected {
		return c.conn, true
	}
	var zero T
	return zero, false
}

// connect runs inside the single-flight group, so at most one executes at a time.
func (c *Cache[T]) connect() (T, error) {
	c.mu.Lock()
	if c.state == StateConnected {
		conn := c.conn
		c.mu.Unlock()
		return conn, nil
	}
	c.state = StateConnecting
	c.mu.Unlock()

	attempt := c.attempts.Add(1)
	logger := c.logger.With(zap.Int64("attempt", attempt))
	logger.Info("connecting to document store", zap.Duration("timeout", c.timeout))
	started := time.Now()

	conn, err := c.dialWithTimeout()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		logger.Error("connection failed",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(started)),
			zap.Stringer("state", StateFailed),
		)
		c.state = StateUnconnected

		var zero T
		return zero, &domain.ConnectionError{Err: err}
	}

	c.conn = conn
	c.state = StateConnected
	logger.Info("connected to document store", zap.Duration("elapsed", time.Since(started)))
	return conn, nil
}

type dialResult[T any] struct {
	conn T
	err  error
}

func (c *Cache[T]) dialWithTimeout() (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	done := make(chan dialResult[T], 1)
	go func() {
		conn, err := c.dial(ctx)
		done <- dialResult[T]{conn: conn, err: err}
	}()

	select {
	case result := <-done:
		return result.conn, result.err
	case <-ctx.Done():
		go c.discardLate(done)

		var zero T
		return zero, fmt.Errorf("%w after %s", ErrConnectTimeout, c.timeout)
	}
}

func (c *Cache[T]) discardLate(done <-chan dialResult[T]) {
	result := <-done
	if result.err != nil || c.discard == nil {
		return
	}
	c.logger.Warn("discarding connection that arrived after timeout")
	c.discard(result.conn)
}
