// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

import "code.hybscloud.com/atomix"

// Channel is a fixed-capacity, single-producer single-consumer ring
// buffer channel: a Lamport ring buffer with a cached peer cursor, same
// as the teacher's SPSC[T], generalized to any capacity N ≥ 1 — capacity
// is not rounded up to a power of two, so indexing uses modulo instead
// of a mask.
//
// A Channel must be split via Split before use; Send/Recv are not
// exposed on the Channel itself so that the single-producer
// single-consumer contract is encoded in the type system rather than
// left to caller discipline alone.
type Channel[T any] struct {
	_     pad
	read  atomix.Uint64 // consumer reads from here
	_     pad
	cachedWrite uint64 // consumer's cached view of write
	_     pad
	write atomix.Uint64 // producer writes here
	_     pad
	cachedRead uint64 // producer's cached view of read
	_     pad
	buf []T
	n   uint64 // capacity
}

// NewChannel initializes ch with capacity n and returns ch. n must be at
// least 1. ch must be statically-lived: Split hands out pointers into it
// that are assumed valid for the remaining lifetime of the program.
func NewChannel[T any](ch *Channel[T], n int) *Channel[T] {
	if n < 1 {
		panic("ficap: capacity must be >= 1")
	}
	ch.buf = make([]T, n)
	ch.n = uint64(n)
	return ch
}

// Cap returns the channel's capacity.
func (ch *Channel[T]) Cap() int {
	return int(ch.n)
}

// Split consumes ch and returns its sender and receiver halves. It is a
// one-shot operation: calling it more than once on the same Channel, or
// using the Channel directly afterward, violates the single-producer
// single-consumer contract and is undefined behavior, not detected in
// release builds. Each half's cached view of the peer cursor starts at
// that cursor's current value, so the cursors may start at any matching
// value.
func (ch *Channel[T]) Split() (*Sender[T], *Receiver[T]) {
	ch.cachedRead = ch.read.LoadRelaxed()
	ch.cachedWrite = ch.write.LoadRelaxed()
	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

// Sender is the producer half of a Channel, obtained from Split.
type Sender[T any] struct {
	ch *Channel[T]
}

// Send enqueues value. It returns ErrWouldBlock if the channel is
// observed full.
func (s *Sender[T]) Send(value T) error {
	ch := s.ch
	write := ch.write.LoadRelaxed()

	if write-ch.cachedRead >= ch.n {
		ch.cachedRead = ch.read.LoadAcquire()
		if write-ch.cachedRead >= ch.n {
			return ErrWouldBlock
		}
	}

	ch.buf[write%ch.n] = value
	ch.write.StoreRelease(write + 1)
	return nil
}

// Receiver is the consumer half of a Channel, obtained from Split.
type Receiver[T any] struct {
	ch *Channel[T]
}

// Recv dequeues and returns the oldest value. It returns
// (zero-value, ErrWouldBlock) if the channel is observed empty.
func (r *Receiver[T]) Recv() (T, error) {
	ch := r.ch
	read := ch.read.LoadRelaxed()

	if read == ch.cachedWrite {
		ch.cachedWrite = ch.write.LoadAcquire()
		if read == ch.cachedWrite {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := ch.buf[read%ch.n]
	var zero T
	ch.buf[read%ch.n] = zero
	ch.read.StoreRelease(read + 1)
	return elem, nil
}
