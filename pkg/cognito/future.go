/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cognito

import (
	"context"
	"sync"
)

// Future is the pending result of one call. It resolves exactly once, either
// to a response or to an error.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value *T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolvedFuture returns a future that is already settled.
func resolvedFuture[T any](value *T, err error) *Future[T] {
	f := newFuture[T]()
	f.resolve(value, err)
	return f
}

// resolve settles the future. Only the first call has any effect; it reports
// whether this call was the one that settled it.
func (f *Future[T]) resolve(value *T, err error) bool {
	settled := false
	f.once.Do(func() {
		if err != nil {
			value = nil
		}
		f.value, f.err = value, err
		settled = true
		close(f.done)
	})
	return settled
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the future has settled.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the future resolves or ctx is done. A done ctx only
// abandons this wait: the call itself keeps going and the future can still be
// waited on afterwards.
func (f *Future[T]) Wait(ctx context.Context) (*T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
