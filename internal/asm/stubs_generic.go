// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !riscv64

package asm

// ChannelSend is the portable implementation, used by every architecture
// except riscv64 (which gets its own identical-bodied file below so the
// per-architecture build-tag hook has a place to grow a real backend
// without disturbing this one).
// See indexchannel.go for the shared implementation.
func ChannelSend(q uintptr, idx uintptr) int {
	return channelSend(q, idx)
}

// ChannelRecv is the portable implementation, used by every architecture
// except riscv64.
func ChannelRecv(q uintptr) (idx uintptr, err int) {
	return channelRecv(q)
}
