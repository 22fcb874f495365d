// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

import (
	"os"

	"code.hybscloud.com/atomix"
)

// maxStrongCount is the safety bound on an Arc's strong count. It mirrors
// isize::MAX from the original Rust crate: an ordinary program will never
// come close to it, so hitting it means clones are being leaked in a
// loop, not legitimate use.
const maxStrongCount = 1<<63 - 1

// ArcPool hands out shared-ownership values with atomic reference
// counting: Destroy runs once, when the last Arc sharing a slot
// releases, never sooner and never twice.
//
// An ArcPool's zero value is ready to use once at least one ArcSlot has
// been handed to it via Manage.
type ArcPool[T any] struct {
	s stack[arcPayload[T]]
}

type arcPayload[T any] struct {
	value  T
	strong atomix.Uintptr
}

// ArcSlot is caller-provided backing storage for one arc. Its zero value
// is unmanaged; it becomes usable after a single call to ArcPool.Manage.
type ArcSlot[T any] struct {
	n node[arcPayload[T]]
}

// Manage adds slot to the pool, making it available to Request. slot must
// not already belong to this or any other pool, and must outlive every
// Arc ever requested from it.
func (p *ArcPool[T]) Manage(slot *ArcSlot[T]) {
	p.s.push(&slot.n)
}

// Request checks out a slot, initializes it from *value, and returns an
// Arc holding the one initial reference. It returns ErrWouldBlock if no
// managed slot is currently available, in which case *value is left
// untouched and still belongs to the caller.
func (p *ArcPool[T]) Request(value *T) (*Arc[T], error) {
	n := p.s.pop()
	if n == nil {
		return nil, ErrWouldBlock
	}
	n.data.value = *value
	// The original stores this with relaxed ordering and notes it is
	// unclear whether that is sufficient; elevated to release here so
	// that whichever goroutine first observes this Arc also observes a
	// fully-initialized value, without relying solely on the two fences
	// in Release.
	n.data.strong.StoreRelease(1)
	return &Arc[T]{pool: p, n: n}, nil
}

// Arc is a shared-ownership handle checked out of an ArcPool.
type Arc[T any] struct {
	pool *ArcPool[T]
	n    *node[arcPayload[T]]
}

// Value returns a pointer to the underlying value for reading. Shared
// ownership forbids mutation through the handle itself; a payload
// needing interior mutation must synchronize itself.
func (a *Arc[T]) Value() *T {
	return &a.n.data.value
}

// Clone returns a new Arc sharing the same slot, incrementing the strong
// count. If the strong count would exceed its safety bound — which
// requires leaking clones in a loop, not ordinary use — the process
// aborts outright rather than returning a recoverable error, matching
// the original's "should abort instead of panic" note.
func (a *Arc[T]) Clone() *Arc[T] {
	old := a.n.data.strong.AddRelaxed(1) - 1
	if old > maxStrongCount {
		os.Exit(2)
	}
	return &Arc[T]{pool: a.pool, n: a.n}
}

// Release drops this reference. If it was the last one, it runs Destroy
// on the value (if T implements Destroyer), clears the slot, and returns
// it to the pool. Calling Release more than once on the same Arc is a
// caller error.
func (a *Arc[T]) Release() {
	if a.n.data.strong.AddRelease(^uintptr(0)) != 0 {
		return
	}

	// Synchronizes the loads Destroy performs below with the Release
	// fetch-sub of every other Arc that decremented ahead of this one:
	// sync/atomic and atomix expose no standalone fence, so a throwaway
	// acquire load of the counter this goroutine just zeroed stands in
	// for it.
	a.n.data.strong.LoadAcquire()

	if d, ok := any(&a.n.data.value).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	a.n.data.value = zero
	a.pool.s.push(a.n)
}
