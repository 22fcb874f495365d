// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asm

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// indexChannel mirrors the field layout of ficap.IndexChannel. This
// package cannot import ficap (ficap imports this package for its
// architecture-gated hook), so q is handed across as a bare uintptr and
// reinterpreted here via unsafe.Pointer, exactly as the struct offsets
// this package documents require.
type indexChannel struct {
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

type pad [64]byte

func channelSend(q uintptr, idx uintptr) int {
	ch := (*indexChannel)(unsafe.Pointer(q))

	write := ch.write.LoadRelaxed()
	if write-ch.cachedRead >= ch.n {
		ch.cachedRead = ch.read.LoadAcquire()
		if write-ch.cachedRead >= ch.n {
			return 1
		}
	}

	ch.buf[write%ch.n] = idx
	ch.write.StoreRelease(write + 1)
	return 0
}

func channelRecv(q uintptr) (idx uintptr, err int) {
	ch := (*indexChannel)(unsafe.Pointer(q))

	read := ch.read.LoadRelaxed()
	if read == ch.cachedWrite {
		ch.cachedWrite = ch.write.LoadAcquire()
		if read == ch.cachedWrite {
			return 0, 1
		}
	}

	idx = ch.buf[read%ch.n]
	ch.buf[read%ch.n] = 0
	ch.read.StoreRelease(read + 1)
	return idx, 0
}
