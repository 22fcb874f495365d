// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/ficap/internal/asm"
)

// IndexChannel is the uintptr specialization of Channel: a
// single-producer single-consumer ring buffer for carrying indices (or
// any other uintptr-sized token) into a caller-owned slab — typically the
// slots of an ObjectPool, BoxPool, or ArcPool — rather than the value
// itself. This avoids copying T through the channel when T is large and
// already lives in a pool slot; only the slot's identity crosses over.
type IndexChannel struct {
	_           pad
	read        atomix.Uint64
	_           pad
	cachedWrite uint64
	_           pad
	write       atomix.Uint64
	_           pad
	cachedRead  uint64
	_           pad
	buf         []uintptr
	n           uint64
}

// NewIndexChannel initializes ch with capacity n and returns ch. n must
// be at least 1. Like Channel, ch must be statically-lived.
func NewIndexChannel(ch *IndexChannel, n int) *IndexChannel {
	if n < 1 {
		panic("ficap: capacity must be >= 1")
	}
	ch.buf = make([]uintptr, n)
	ch.n = uint64(n)
	return ch
}

// Cap returns the channel's capacity.
func (ch *IndexChannel) Cap() int {
	return int(ch.n)
}

// Split consumes ch and returns its sender and receiver halves. See
// Channel.Split for the one-shot contract and cached-cursor start this
// shares.
func (ch *IndexChannel) Split() (*IndexSender, *IndexReceiver) {
	ch.cachedRead = ch.read.LoadRelaxed()
	ch.cachedWrite = ch.write.LoadRelaxed()
	return &IndexSender{ch: ch}, &IndexReceiver{ch: ch}
}

// IndexSender is the producer half of an IndexChannel.
type IndexSender struct {
	ch *IndexChannel
}

// Send enqueues an index. It returns ErrWouldBlock if the channel is
// observed full. The ring buffer logic itself lives in internal/asm,
// behind the same per-architecture hook the teacher wires SPSCIndirect
// through; ch's field layout is part of that hook's contract (see
// internal/asm's TestIndexChannelLayout).
func (s *IndexSender) Send(idx uintptr) error {
	if asm.ChannelSend(uintptr(unsafe.Pointer(s.ch)), idx) != 0 {
		return ErrWouldBlock
	}
	return nil
}

// IndexReceiver is the consumer half of an IndexChannel.
type IndexReceiver struct {
	ch *IndexChannel
}

// Recv dequeues the oldest index. It returns (0, ErrWouldBlock) if the
// channel is observed empty.
func (r *IndexReceiver) Recv() (uintptr, error) {
	idx, err := asm.ChannelRecv(uintptr(unsafe.Pointer(r.ch)))
	if err != 0 {
		return 0, ErrWouldBlock
	}
	return idx, nil
}
