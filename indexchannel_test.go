// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ficap"
)

func TestIndexChannelBasic(t *testing.T) {
	var ch ficap.IndexChannel
	ficap.NewIndexChannel(&ch, 2)
	sender, receiver := ch.Split()

	if _, err := receiver.Recv(); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Recv on empty: got %v, want ErrWouldBlock", err)
	}

	if err := sender.Send(7); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := sender.Send(9); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := sender.Send(11); !errors.Is(err, ficap.ErrWouldBlock) {
		t.Fatalf("Send on full: got %v, want ErrWouldBlock", err)
	}

	if idx, err := receiver.Recv(); err != nil || idx != 7 {
		t.Fatalf("Recv: got (%d, %v), want (7, nil)", idx, err)
	}
	if idx, err := receiver.Recv(); err != nil || idx != 9 {
		t.Fatalf("Recv: got (%d, %v), want (9, nil)", idx, err)
	}
}

// TestIndexChannelBackedByPool shows the intended use: the channel carries
// indices of slots checked out of an ObjectPool rather than copying the
// pooled values themselves through the channel.
func TestIndexChannelBackedByPool(t *testing.T) {
	const n = 4

	var pool ficap.ObjectPool[int]
	var slots [n]ficap.Slot[int]
	objects := make([]*ficap.Object[int], 0, n)
	for i := range slots {
		pool.Manage(&slots[i])
	}
	for i := range n {
		obj, err := pool.Request()
		if err != nil {
			t.Fatalf("Request(%d): %v", i, err)
		}
		*obj.Value() = i * 10
		objects = append(objects, obj)
	}

	var ch ficap.IndexChannel
	ficap.NewIndexChannel(&ch, n)
	sender, receiver := ch.Split()

	for i, obj := range objects {
		if err := sender.Send(uintptr(i)); err != nil {
			t.Fatalf("Send(%d): %v", i, err)
		}
		_ = obj
	}

	for i := range n {
		idx, err := receiver.Recv()
		if err != nil {
			t.Fatalf("Recv(%d): %v", i, err)
		}
		if got, want := *objects[idx].Value(), int(idx)*10; got != want {
			t.Fatalf("object %d value: got %d, want %d", idx, got, want)
		}
	}
}
