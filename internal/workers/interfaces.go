// Package workers provides the background execution primitives of the
// photo album client.
//
// [Worker] is a long-running job started with Run and stopped with Stop;
// [Workers] runs several of them together. [Task] is a handle on a single
// background call that the caller may wait for or ignore.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutine and keep
// working until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
