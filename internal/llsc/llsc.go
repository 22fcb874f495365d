// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package llsc emulates a load-linked/store-conditional pair on targets
// where Go exposes only compare-and-swap.
//
// A true LL/SC reservation is invalidated by any intervening store to the
// reserved address, from any source, which is what makes it immune to the
// ABA problem: a reservation can never silently succeed just because the
// bit pattern at the address returned to its original value. A bare CAS
// has no such protection. This package closes that gap the way spec.md's
// design notes sanction for CAS-only targets: it packs a small generation
// counter into the low bits of the word alongside the pointer, and bumps
// the counter on every successful store. A pointer value repeating can no
// longer make a stale reservation look current, because the generation
// attached to it has moved on.
package llsc

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// genBits is the number of low bits of the word spent on the generation
// counter. Every pointer Go hands out to a statically-lived, pointer- or
// 64-bit-field-containing allocation is 8-byte aligned, which leaves 3
// low bits free on every architecture this package targets.
const genBits = 3

const genMask = uintptr(1)<<genBits - 1
const ptrMask = ^genMask

// Word is a single machine word that multiplexes a pointer and a
// generation counter, read and written only through LoadLink and
// StoreConditional.
type Word struct {
	v atomix.Uintptr
}

// Reservation is the value returned by LoadLink. It must be passed to at
// most one StoreConditional call before being discarded.
type Reservation struct {
	raw uintptr
}

// Pointer returns the pointer observed at reservation time.
func (r Reservation) Pointer() unsafe.Pointer {
	return unsafe.Pointer(r.raw & ptrMask)
}

// LoadLink reserves the current value of w for a subsequent
// StoreConditional. The load is acquire-ordered so that a successful
// StoreConditional synchronizes with the store it is racing against.
func (w *Word) LoadLink() Reservation {
	return Reservation{raw: w.v.LoadAcquire()}
}

// StoreConditional stores ptr into w if and only if no other
// StoreConditional has succeeded against w since r was obtained by
// LoadLink. It reports whether the store happened. On success the
// generation counter is bumped, so a subsequent LoadLink can never be
// fooled by ptr's bit pattern recurring.
func (w *Word) StoreConditional(r Reservation, ptr unsafe.Pointer) bool {
	next := (uintptr(ptr) & ptrMask) | ((r.raw + 1) & genMask)
	return w.v.CompareAndSwapAcqRel(r.raw, next)
}

// Clear discards any implicit reservation held by the calling goroutine.
// It has no effect in this emulation — StoreConditional already keys its
// CAS to the exact Reservation returned by LoadLink rather than to an
// ambient per-core monitor — but it is kept as a no-op so call sites read
// the same as they would against a real LDREX/STREX or LL/SC pair, and so
// a future assembly backend (see internal/asm) has an obvious place to
// emit a real CLREX.
func (w *Word) Clear() {}
