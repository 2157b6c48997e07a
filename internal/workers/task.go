// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "context"

// Task is a handle on one background call. The call runs exactly once and is
// never retried. Waiting is optional.
type Task struct {
	done chan struct{}
	err  error
}

// Go runs fn in a new goroutine and returns its handle.
func Go(fn func() error) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.err = fn()
	}()
	return t
}

// Completed returns a task that has already finished with err.
func Completed(err error) *Task {
	t := &Task{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

// Done is closed when the call returns.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the call returns or ctx is done.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
