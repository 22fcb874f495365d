// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ficap

// RaceEnabled is true when the race detector is active.
// Tests can check it to skip concurrent tests for the lock-free pool and
// channel types, which trigger false positives due to cross-variable
// memory ordering the race detector cannot observe.
const RaceEnabled = true
