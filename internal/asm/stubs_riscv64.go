// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build riscv64

package asm

// ChannelSend performs the IndexChannel enqueue.
//
// This architecture does not currently carry a hand-written FENCE/LR/SC
// sequence — see indexchannel.go for the shared, portable Go body every
// build tag in this package resolves to — but the symbol, the build tag,
// and the layout contract below are kept so a real assembly backend has
// a ready-made, already-wired home.
//
// Parameters:
//   - q: pointer to an IndexChannel
//   - idx: the uintptr value to enqueue
//
// Returns 0 on success, 1 if the channel is full (ErrWouldBlock).
//
// The struct layout is (verified via reflection):
//   - offset 0:   pad (64 bytes cache line isolation)
//   - offset 64:  read (atomix.Uint64 - 8 bytes)
//   - offset 72:  pad (64 bytes)
//   - offset 136: cachedWrite (8 bytes, non-atomic)
//   - offset 144: pad (64 bytes)
//   - offset 208: write (atomix.Uint64 - 8 bytes)
//   - offset 216: pad (64 bytes)
//   - offset 280: cachedRead (8 bytes, non-atomic)
//   - offset 288: pad (64 bytes)
//   - offset 352: buf (slice header: ptr, len, cap = 24 bytes)
//   - offset 376: n (8 bytes)
//   - Total size: 384 bytes
func ChannelSend(q uintptr, idx uintptr) int {
	return channelSend(q, idx)
}

// ChannelRecv performs the IndexChannel dequeue. See ChannelSend for the
// layout contract this relies on.
//
// Returns 0 on success, 1 if the channel is empty (ErrWouldBlock).
func ChannelRecv(q uintptr) (idx uintptr, err int) {
	return channelRecv(q)
}
