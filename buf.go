// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

import "unsafe"

// Buf is a fixed-capacity, growable-up-to-capacity array of T backed by a
// caller-supplied byte slice — typically the value held by an Object from
// an ObjectPool, letting a pool of raw byte buffers double as storage for
// any element type the caller wants at the time.
//
// The original this is ported from computes its capacity from
// unsafe.Sizeof(T) where it means unsafe.Alignof(T): sizing the initial
// alignment adjustment off an element's size rather than its alignment
// only happens to work when the two coincide, and produces the wrong
// capacity whenever they don't (e.g. a 3-byte struct aligned to 1 byte,
// or any T whose size is not also a valid alignment). Buf uses
// unsafe.Alignof(T) for that adjustment.
type Buf[T any] struct {
	storage []byte
	len     int
}

// NewBuf creates an empty Buf backed by storage. storage is retained, not
// copied; the caller must not use it directly while the Buf is alive.
func NewBuf[T any](storage []byte) *Buf[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("ficap: zero-sized types are not supported")
	}
	return &Buf[T]{storage: storage}
}

// Len returns the number of elements currently stored.
func (b *Buf[T]) Len() int {
	return b.len
}

// Cap returns the total number of elements storage can hold, accounting
// for the alignment adjustment at the front of storage.
func (b *Buf[T]) Cap() int {
	var zero T
	size := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)

	if len(b.storage) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&b.storage[0]))
	offset := addr % align
	adj := uintptr(0)
	if offset != 0 {
		adj = align - offset
	}

	available := uintptr(len(b.storage))
	if available < adj {
		return 0
	}
	available -= adj

	return int(available / size)
}

// alignedPtr returns the first aligned element address within storage.
// The caller must have already checked against Cap.
func (b *Buf[T]) alignedPtr() *T {
	var zero T
	align := unsafe.Alignof(zero)

	addr := uintptr(unsafe.Pointer(&b.storage[0]))
	offset := addr % align
	adj := uintptr(0)
	if offset != 0 {
		adj = align - offset
	}
	return (*T)(unsafe.Add(unsafe.Pointer(&b.storage[0]), adj))
}

// Push appends value. It returns ErrWouldBlock if the buffer is already
// at capacity.
func (b *Buf[T]) Push(value T) error {
	if b.len == b.Cap() {
		return ErrWouldBlock
	}

	base := b.alignedPtr()
	*(*T)(unsafe.Add(unsafe.Pointer(base), b.len*int(unsafe.Sizeof(value)))) = value
	b.len++
	return nil
}

// Pop removes and returns the last element. It returns
// (zero-value, ErrWouldBlock) if the buffer is empty.
func (b *Buf[T]) Pop() (T, error) {
	if b.len == 0 {
		var zero T
		return zero, ErrWouldBlock
	}

	base := b.alignedPtr()
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	p := (*T)(unsafe.Add(unsafe.Pointer(base), (b.len-1)*elemSize))
	value := *p
	*p = zero
	b.len--
	return value, nil
}

// Close runs the destructor (via Destroy, for any element implementing
// Destroyer) over every remaining live element and truncates the buffer
// to empty, the equivalent of the original's Drop over its contents.
func (b *Buf[T]) Close() {
	for b.len > 0 {
		value, _ := b.Pop()
		if d, ok := any(&value).(Destroyer); ok {
			d.Destroy()
		}
	}
}
