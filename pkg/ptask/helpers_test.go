package ptask

import (
	"bytes"
	"sync"
	"time"
)

const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

// syncBuffer is a log sink safe for concurrent writers and readers;
// some stages log after the aggregate signal resolves.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
