// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides the architecture-gated fast path IndexChannel.Send
// and IndexChannel.Recv call through to.
//
// Layout contract:
// The IndexChannel offsets an assembly backend would rely on must match
// the Go struct layout; TestIndexChannelLayout verifies the expected
// offsets on supported architectures. No architecture currently ships a
// real assembly implementation — every build tag below resolves to the
// same portable Go body in indexchannel.go — but the hook point and its
// layout contract are kept so a real backend has a ready-made,
// already-wired home: it only has to replace channelSend/channelRecv's
// body, not the call sites in ficap.
package asm
