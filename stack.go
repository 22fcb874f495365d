// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/ficap/internal/llsc"
)

// node is an intrusively-linked stack element. Nodes are never allocated
// or freed by this package — callers supply statically- or
// caller-owned-lived storage via Manage, and a node only ever moves
// between "on the stack" and "checked out" for the rest of its life.
type node[T any] struct {
	next atomix.Uintptr // *node[T], 0 meaning nil
	data T
}

// stack is a lock-free LIFO built on llsc.Word, a direct port of
// treiber::Stack from the original Rust crate. It is unexported: like the
// original's pub(crate) visibility, only the pool types in this package
// use it.
type stack[T any] struct {
	top llsc.Word
}

func (s *stack[T]) push(n *node[T]) {
	sw := spin.Wait{}
	for {
		r := s.top.LoadLink()
		n.next.StoreRelaxed(uintptr(r.Pointer()))
		if s.top.StoreConditional(r, unsafe.Pointer(n)) {
			return
		}
		sw.Once()
	}
}

func (s *stack[T]) pop() *node[T] {
	sw := spin.Wait{}
	for {
		r := s.top.LoadLink()
		top := (*node[T])(r.Pointer())
		if top == nil {
			s.top.Clear()
			return nil
		}

		next := top.next.LoadRelaxed()
		if s.top.StoreConditional(r, unsafe.Pointer(next)) {
			return top
		}
		sw.Once()
	}
}
