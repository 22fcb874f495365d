// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ficap"
)

func TestChannelCapacityOne(t *testing.T) {
	var ch ficap.Channel[int]
	ficap.NewChannel(&ch, 1)
	sender, receiver := ch.Split()

	if _, err := receiver.Recv(); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Recv on empty: got %v, want ErrWouldBlock", err)
	}

	if err := sender.Send(42); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := sender.Send(42); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Send on full: got %v, want ErrWouldBlock", err)
	}

	v, err := receiver.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if v != 42 {
		t.Fatalf("Recv: got %d, want 42", v)
	}

	if _, err := receiver.Recv(); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Recv on empty: got %v, want ErrWouldBlock", err)
	}
}

func TestChannelFIFOOrder(t *testing.T) {
	var ch ficap.Channel[int]
	ficap.NewChannel(&ch, 2)
	sender, receiver := ch.Split()

	if err := sender.Send(42); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := sender.Send(24); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if v, err := receiver.Recv(); err != nil || v != 42 {
		t.Fatalf("Recv: got (%d, %v), want (42, nil)", v, err)
	}
	if v, err := receiver.Recv(); err != nil || v != 24 {
		t.Fatalf("Recv: got (%d, %v), want (24, nil)", v, err)
	}
}

func TestChannelWorksWithNonPowerOfTwo(t *testing.T) {
	var ch ficap.Channel[int]
	ficap.NewChannel(&ch, 3)
	sender, receiver := ch.Split()

	if _, err := receiver.Recv(); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Recv on empty: got %v, want ErrWouldBlock", err)
	}

	for _, v := range []int{42, 24, 123} {
		if err := sender.Send(v); err != nil {
			t.Fatalf("Send(%d): %v", v, err)
		}
	}
	if err := sender.Send(123); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Send on full: got %v, want ErrWouldBlock", err)
	}

	for _, want := range []int{42, 24, 123} {
		v, err := receiver.Recv()
		if err != nil || v != want {
			t.Fatalf("Recv: got (%d, %v), want (%d, nil)", v, err, want)
		}
	}
	if _, err := receiver.Recv(); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Recv on empty: got %v, want ErrWouldBlock", err)
	}
}

func TestChannelWrapAround(t *testing.T) {
	var ch ficap.Channel[int]
	ficap.NewChannel(&ch, 4)
	sender, receiver := ch.Split()

	for round := range 1000 {
		for i := range 4 {
			v := round*100 + i
			if err := sender.Send(v); err != nil {
				t.Fatalf("round %d send %d: %v", round, i, err)
			}
		}
		for i := range 4 {
			v, err := receiver.Recv()
			if err != nil {
				t.Fatalf("round %d recv %d: %v", round, i, err)
			}
			if want := round*100 + i; v != want {
				t.Fatalf("round %d recv %d: got %d, want %d", round, i, v, want)
			}
		}
	}
}

func TestChannelCap(t *testing.T) {
	var ch ficap.Channel[int]
	ficap.NewChannel(&ch, 3)

	if ch.Cap() != 3 {
		t.Fatalf("Cap: got %d, want 3", ch.Cap())
	}
}
