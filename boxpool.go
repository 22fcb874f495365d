// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

// Destroyer is implemented by payload types that need to run cleanup
// when a Box or Arc releases their last reference. It is this package's
// explicit stand-in for Rust's automatic Drop: Go never runs cleanup
// implicitly, so Release calls Destroy itself when the payload supports
// it.
type Destroyer interface {
	Destroy()
}

// BoxPool hands out uniquely-owned values: requesting one always
// initializes the slot from the caller's value, and releasing it runs
// Destroy (if the payload implements Destroyer) before the slot goes back
// to the pool.
//
// A BoxPool's zero value is ready to use once at least one BoxSlot has
// been handed to it via Manage.
type BoxPool[T any] struct {
	s stack[boxPayload[T]]
}

type boxPayload[T any] struct {
	value T
}

// BoxSlot is caller-provided backing storage for one box. Its zero value
// is unmanaged; it becomes usable after a single call to
// BoxPool.Manage.
type BoxSlot[T any] struct {
	n node[boxPayload[T]]
}

// Manage adds slot to the pool, making it available to Request. slot must
// not already belong to this or any other pool, and must outlive every
// Box ever requested from it.
func (p *BoxPool[T]) Manage(slot *BoxSlot[T]) {
	p.s.push(&slot.n)
}

// Request checks out a slot and initializes it from *value. It returns
// ErrWouldBlock if no managed slot is currently available, in which case
// *value is left untouched and still belongs to the caller.
func (p *BoxPool[T]) Request(value *T) (*Box[T], error) {
	n := p.s.pop()
	if n == nil {
		return nil, ErrWouldBlock
	}
	n.data.value = *value
	return &Box[T]{pool: p, n: n}, nil
}

// Box is a uniquely-owned value checked out of a BoxPool.
type Box[T any] struct {
	pool *BoxPool[T]
	n    *node[boxPayload[T]]
}

// Value returns a pointer to the underlying value, valid until Release.
func (b *Box[T]) Value() *T {
	return &b.n.data.value
}

// Release destructs the value (via Destroy, if T implements Destroyer),
// clears the slot, and returns it to the pool. Calling Release more than
// once on the same Box is a caller error.
func (b *Box[T]) Release() {
	if d, ok := any(&b.n.data.value).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	b.n.data.value = zero
	b.pool.s.push(b.n)
}
