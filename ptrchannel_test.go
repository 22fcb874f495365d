// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap_test

import (
	"errors"
	"testing"
	"unsafe"

	"code.hybscloud.com/ficap"
)

func TestPtrChannelBasic(t *testing.T) {
	var ch ficap.PtrChannel
	ficap.NewPtrChannel(&ch, 1)
	sender, receiver := ch.Split()

	if p, err := receiver.Recv(); !errors.Is(err, ficap.ErrWouldBlock) || p != nil {
		t.Fatalf("Recv on empty: got (%v, %v), want (nil, ErrWouldBlock)", p, err)
	}

	value := 42
	ptr := unsafe.Pointer(&value)

	if err := sender.Send(ptr); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := sender.Send(ptr); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Send on full: got %v, want ErrWouldBlock", err)
	}

	got, err := receiver.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if (*int)(got) != &value {
		t.Fatal("Recv returned a different pointer than was sent")
	}
}

func TestPtrChannelZeroCopyHandoff(t *testing.T) {
	var ch ficap.PtrChannel
	ficap.NewPtrChannel(&ch, 2)
	sender, receiver := ch.Split()

	type payload struct{ n int }
	a := &payload{n: 1}
	b := &payload{n: 2}

	if err := sender.Send(unsafe.Pointer(a)); err != nil {
		t.Fatalf("Send a: %v", err)
	}
	if err := sender.Send(unsafe.Pointer(b)); err != nil {
		t.Fatalf("Send b: %v", err)
	}

	got, err := receiver.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if (*payload)(got).n != 1 {
		t.Fatalf("Recv: got n=%d, want 1", (*payload)(got).n)
	}

	got, err = receiver.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if (*payload)(got).n != 2 {
		t.Fatalf("Recv: got n=%d, want 2", (*payload)(got).n)
	}
}
