// Package signal implements the synchronous change notification the
// colormap model exposes: observers register a callback and every mutation
// delivers exactly one call to each of them, on the mutating goroutine.
package signal

// Subscription identifies a registered observer for Unsubscribe.
type Subscription struct {
	id uint64
}

type entry struct {
	id uint64
	// fn reports false when the entry should be dropped.
	fn func() bool
}

// Signal fans a zero-argument notification out to its subscribers in
// registration order. The zero value is ready to use.
//
// A Signal belongs to a single owner and is not safe for concurrent use;
// callers sharing the owner across goroutines must provide their own
// locking, as for the rest of the model.
type Signal struct {
	subs   []entry
	nextID uint64
}

// Subscribe registers fn to run on every Emit and returns a handle for
// Unsubscribe. fn keeps everything it captures alive; see ObserveWeak for
// observers that must not be retained by the model they watch.
func (s *Signal) Subscribe(fn func()) Subscription {
	return s.add(func() bool {
		fn()
		return true
	})
}

func (s *Signal) add(fn func() bool) Subscription {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, entry{id: id, fn: fn})
	return Subscription{id: id}
}

// Unsubscribe removes a previously registered observer. Unknown or already
// removed handles are ignored.
func (s *Signal) Unsubscribe(sub Subscription) {
	for i, e := range s.subs {
		if e.id == sub.id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Emit invokes every subscriber once, synchronously, in registration order.
// Subscribers registered during delivery are not called until the next
// Emit; subscribers may unsubscribe themselves or others during delivery.
func (s *Signal) Emit() {
	if len(s.subs) == 0 {
		return
	}
	snapshot := make([]entry, len(s.subs))
	copy(snapshot, s.subs)
	for _, e := range snapshot {
		if !s.has(e.id) {
			continue
		}
		if !e.fn() {
			s.Unsubscribe(Subscription{id: e.id})
		}
	}
}

func (s *Signal) has(id uint64) bool {
	for _, e := range s.subs {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of live subscriptions.
func (s *Signal) Len() int {
	return len(s.subs)
}
