package inventory

import (
	"sync"

	"parts-service/internal/domain"
)

// watchers fans listing snapshots out to subscribers. Each subscriber has a
// one-slot buffer holding the most recent snapshot; older unread snapshots
// are dropped.
type watchers struct {
	mu   sync.Mutex
	next int
	subs map[int]chan []domain.VendorListing
}

func (w *watchers) init() {
	w.subs = make(map[int]chan []domain.VendorListing)
}

func (w *watchers) add(initial []domain.VendorListing) (int, chan []domain.VendorListing) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ch := make(chan []domain.VendorListing, 1)
	ch <- initial
	id := w.next
	w.next++
	w.subs[id] = ch
	return id, ch
}

func (w *watchers) remove(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ch, ok := w.subs[id]; ok {
		delete(w.subs, id)
		close(ch)
	}
}

func (w *watchers) publish(snapshot []domain.VendorListing) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Subscribe returns a channel that first carries the current listings and
// then a fresh snapshot after every mutation. A slow reader only sees the
// latest snapshot. cancel closes the channel; it is safe to call more than once.
func (m *Manager) Subscribe() (<-chan []domain.VendorListing, func()) {
	m.mu.RLock()
	id, ch := m.watchers.add(m.snapshotLocked())
	m.mu.RUnlock()

	var once sync.Once
	return ch, func() { once.Do(func() { m.watchers.remove(id) }) }
}
