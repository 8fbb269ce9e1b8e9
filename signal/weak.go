package signal

import "weak"

// ObserveWeak registers fn without keeping owner alive: the subscription
// holds only a weak reference, so a UI element watching a long-lived model
// can be collected normally once nothing else refers to it. After owner is
// reclaimed the subscription removes itself during the next Emit.
//
// fn receives the owner on every delivery and must not capture it directly,
// otherwise the closure keeps it reachable and the weak reference never
// clears.
func ObserveWeak[T any](s *Signal, owner *T, fn func(owner *T)) Subscription {
	ref := weak.Make(owner)
	return s.add(func() bool {
		o := ref.Value()
		if o == nil {
			return false
		}
		fn(o)
		return true
	})
}
