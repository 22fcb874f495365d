// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// PtrChannel is the unsafe.Pointer specialization of Channel: a
// single-producer single-consumer ring buffer for zero-copy pointer
// handoff between exactly one producer and one consumer goroutine.
type PtrChannel struct {
	_           pad
	read        atomix.Uint64
	_           pad
	cachedWrite uint64
	_           pad
	write       atomix.Uint64
	_           pad
	cachedRead  uint64
	_           pad
	buf         []unsafe.Pointer
	n           uint64
}

// NewPtrChannel initializes ch with capacity n and returns ch. n must be
// at least 1. Like Channel, ch must be statically-lived.
func NewPtrChannel(ch *PtrChannel, n int) *PtrChannel {
	if n < 1 {
		panic("ficap: capacity must be >= 1")
	}
	ch.buf = make([]unsafe.Pointer, n)
	ch.n = uint64(n)
	return ch
}

// Cap returns the channel's capacity.
func (ch *PtrChannel) Cap() int {
	return int(ch.n)
}

// Split consumes ch and returns its sender and receiver halves. See
// Channel.Split for the one-shot contract this shares.
func (ch *PtrChannel) Split() (*PtrSender, *PtrReceiver) {
	return &PtrSender{ch: ch}, &PtrReceiver{ch: ch}
}

// PtrSender is the producer half of a PtrChannel.
type PtrSender struct {
	ch *PtrChannel
}

// Send enqueues a pointer. It returns ErrWouldBlock if the channel is
// observed full.
func (s *PtrSender) Send(p unsafe.Pointer) error {
	ch := s.ch
	write := ch.write.LoadRelaxed()

	if write-ch.cachedRead >= ch.n {
		ch.cachedRead = ch.read.LoadAcquire()
		if write-ch.cachedRead >= ch.n {
			return ErrWouldBlock
		}
	}

	ch.buf[write%ch.n] = p
	ch.write.StoreRelease(write + 1)
	return nil
}

// PtrReceiver is the consumer half of a PtrChannel.
type PtrReceiver struct {
	ch *PtrChannel
}

// Recv dequeues the oldest pointer. It returns (nil, ErrWouldBlock) if
// the channel is observed empty.
func (r *PtrReceiver) Recv() (unsafe.Pointer, error) {
	ch := r.ch
	read := ch.read.LoadRelaxed()

	if read == ch.cachedWrite {
		ch.cachedWrite = ch.write.LoadAcquire()
		if read == ch.cachedWrite {
			return nil, ErrWouldBlock
		}
	}

	p := ch.buf[read%ch.n]
	ch.buf[read%ch.n] = nil
	ch.read.StoreRelease(read + 1)
	return p, nil
}
