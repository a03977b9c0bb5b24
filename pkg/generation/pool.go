package generation

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"lifegen/pkg/core"
)

// PoisonByte is written over returned buffers when poisoning is enabled.
const PoisonByte uint8 = 0xA5

// PoolStats summarises buffer traffic through a BufferPool.
type PoolStats struct {
	Rented      int
	Returned    int
	Outstanding int
}

// BufferPool hands out reusable byte buffers keyed by length. Every rented
// buffer must be returned exactly once; a second return of the same buffer
// is rejected.
type BufferPool struct {
	mu     sync.Mutex
	free   map[int][][]uint8
	out    map[*uint8]struct{}
	poison bool
	stats  PoolStats
}

// PoolOption configures a BufferPool.
type PoolOption func(*BufferPool)

// WithPoison makes the pool overwrite returned buffers with PoisonByte so
// reads through a stale reference are detectable.
func WithPoison() PoolOption {
	return func(p *BufferPool) { p.poison = true }
}

// NewBufferPool returns an empty pool.
func NewBufferPool(opts ...PoolOption) *BufferPool {
	p := &BufferPool{
		free: map[int][][]uint8{},
		out:  map[*uint8]struct{}{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DefaultPool is shared by builders that are not given an explicit pool.
var DefaultPool = NewBufferPool()

// Rent returns a buffer of length n. Its contents are unspecified.
func (p *BufferPool) Rent(n int) ([]uint8, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: buffer length %d must be positive", core.ErrOutOfRange, n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var buf []uint8
	if stack := p.free[n]; len(stack) > 0 {
		buf = stack[len(stack)-1]
		p.free[n] = stack[:len(stack)-1]
	} else {
		buf = make([]uint8, n)
	}
	p.out[&buf[0]] = struct{}{}
	p.stats.Rented++
	p.stats.Outstanding++
	return buf, nil
}

// Return hands buf back to the pool. Returning a buffer that is not
// currently rented from this pool fails with core.ErrInvalidOperation.
func (p *BufferPool) Return(buf []uint8) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty buffer returned to pool", core.ErrInvalidOperation)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	key := &buf[0]
	if _, ok := p.out[key]; !ok {
		logrus.Warnf("buffer pool: rejecting return of %d-byte buffer that is not rented", len(buf))
		return fmt.Errorf("%w: buffer returned twice or not rented from this pool", core.ErrInvalidOperation)
	}
	delete(p.out, key)
	if p.poison {
		for i := range buf {
			buf[i] = PoisonByte
		}
	}
	p.free[len(buf)] = append(p.free[len(buf)], buf)
	p.stats.Returned++
	p.stats.Outstanding--
	return nil
}

// Stats returns a snapshot of the pool counters.
func (p *BufferPool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
