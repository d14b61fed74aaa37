// Package engine runs one catalog operation per invocation:
//
//	Resolve → NewClient → Dispatch → Normalize
//
// An invocation performs exactly one remote call and yields exactly one
// Envelope or one error. Nothing is shared between invocations, so any
// number may run concurrently; bounding concurrency is the host's job.
package engine
