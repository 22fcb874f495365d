// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ficap provides fixed-capacity, allocation-free container and
// pool primitives for resource-constrained, concurrent environments.
//
// Every type in this package is handed its backing storage by the caller
// up front and never allocates again afterward. This makes the package
// usable from interrupt handlers and other contexts where a dynamic
// allocator is unavailable or undesirable.
//
// # Components
//
//   - A lock-free LIFO stack of intrusively-linked, statically-lived
//     nodes, built on a load-linked/store-conditional emulation
//     (internal/llsc). Not exported directly; it is the shared engine
//     behind the three pool types below.
//   - [ObjectPool]: recycles values in place. The payload's destructor,
//     if any, never runs while the slot is pool-managed.
//   - [BoxPool]: unique-ownership handles. Releasing a [Box] destructs the
//     payload (if it implements [Destroyer]) and returns the slot.
//   - [ArcPool]: shared-ownership handles with atomic reference counting.
//     Releasing the last [Arc] destructs the payload and returns the slot.
//   - [Channel] (and its [IndexChannel]/[PtrChannel] specializations): a
//     fixed-capacity single-producer single-consumer ring buffer.
//
// # Quick Start
//
// Object pool — recycle scratch buffers whose initialization is costly:
//
//	var pool ficap.ObjectPool[[4096]byte]
//	var slot ficap.Slot[[4096]byte]
//	pool.Manage(&slot)
//
//	obj, err := pool.Request()
//	if err != nil {
//	    // pool exhausted, try again later
//	}
//	defer obj.Release()
//	buf := obj.Value()
//	_ = buf
//
// Box pool — unique ownership, destructor on release:
//
//	var pool ficap.BoxPool[Connection]
//	var slot ficap.BoxSlot[Connection]
//	pool.Manage(&slot)
//
//	conn := newConnection()
//	box, err := pool.Request(&conn)
//	if err != nil {
//	    // no free slot; conn is untouched, caller still owns it
//	}
//	defer box.Release() // runs Connection.Destroy, returns the slot
//
// Arc pool — shared ownership, destructor on last release:
//
//	var pool ficap.ArcPool[Session]
//	var slot ficap.ArcSlot[Session]
//	pool.Manage(&slot)
//
//	sess := newSession()
//	arc, err := pool.Request(&sess)
//	clone := arc.Clone()
//	go func() { defer clone.Release(); use(clone) }()
//	defer arc.Release()
//
// SPSC channel — fixed-capacity handoff between exactly one producer and
// one consumer goroutine:
//
//	var ch ficap.Channel[Event]
//	ficap.NewChannel(&ch, 64)
//	sender, receiver := ch.Split()
//
//	go func() {
//	    for ev := range events {
//	        for sender.Send(ev) != nil {
//	            runtime.Gosched()
//	        }
//	    }
//	}()
//
//	for {
//	    ev, err := receiver.Recv()
//	    if err == nil {
//	        process(ev)
//	    }
//	}
//
// # Error Handling
//
// Every non-fatal condition in this package — pool exhaustion, a full
// channel, an empty channel — is signalled as [ErrWouldBlock]. This is an
// alias for [code.hybscloud.com/iox.ErrWouldBlock], reused for
// consistency with the rest of the code.hybscloud.com packages:
//
//	obj, err := pool.Request()
//	if ficap.IsWouldBlock(err) {
//	    // retry later, this is not a failure
//	}
//
// The one fatal condition in this package is an [Arc] strong-count
// overflow past its safety bound, which aborts the process outright
// (see [Arc.Clone]) rather than returning an error — reaching it requires
// leaking clones in a loop, not ordinary use.
//
// # Thread Safety
//
// Pools are designed to live for the entire program and are safe to
// share across any number of goroutines: concurrent [ObjectPool.Request],
// [BoxPool.Request], [ArcPool.Request], and handle [Object.Release] /
// [Box.Release] / [Arc.Release] calls from any goroutine are legal.
//
// A [Channel] (or [IndexChannel]/[PtrChannel]) is shared between exactly
// one producer goroutine and one consumer goroutine, established by
// [Channel.Split]. Violating this — two senders, two receivers, or use
// before/after Split — is undefined behavior, not detected in release
// builds, exactly like calling Manage twice on the same slot.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization (mutexes, channels,
// WaitGroups) but not the happens-before relationships this package
// establishes purely through atomic load/store ordering on unrelated
// memory locations (the classic lock-free pattern: an atomic op on one
// word guards plain reads/writes of a different word). Concurrent tests
// that rely on this are excluded via //go:build !race; see [RaceEnabled].
package ficap
