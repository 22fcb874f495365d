// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

// ObjectPool recycles values of type T without ever running a
// destructor on them. Requesting and releasing an Object only ever moves
// its backing Slot between "on the pool" and "checked out" — the value
// itself is left exactly as the last holder wrote it.
//
// An ObjectPool's zero value is ready to use once at least one Slot has
// been handed to it via Manage.
type ObjectPool[T any] struct {
	s stack[objectPayload[T]]
}

type objectPayload[T any] struct {
	value T
}

// Slot is caller-provided backing storage for one object. Its zero value
// is unmanaged; it becomes usable after a single call to
// ObjectPool.Manage.
type Slot[T any] struct {
	n node[objectPayload[T]]
}

// Manage adds slot to the pool, making it available to Request. slot must
// not already belong to this or any other pool, and must outlive every
// Object ever requested from it — typically a package-level var or a
// value that is itself never freed.
func (p *ObjectPool[T]) Manage(slot *Slot[T]) {
	p.s.push(&slot.n)
}

// Request checks out one slot from the pool. It returns ErrWouldBlock if
// no managed slot is currently available.
func (p *ObjectPool[T]) Request() (*Object[T], error) {
	n := p.s.pop()
	if n == nil {
		return nil, ErrWouldBlock
	}
	return &Object[T]{pool: p, n: n}, nil
}

// Object is a value checked out of an ObjectPool.
type Object[T any] struct {
	pool *ObjectPool[T]
	n    *node[objectPayload[T]]
}

// Value returns a pointer to the underlying value, valid until Release.
func (o *Object[T]) Value() *T {
	return &o.n.data.value
}

// Release returns the slot to the pool. It does not reset or destroy the
// value — the next Request sees it exactly as Release left it. Calling
// Release more than once on the same Object is a caller error.
func (o *Object[T]) Release() {
	o.pool.s.push(o.n)
}
