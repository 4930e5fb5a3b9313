// Package classifier turns staged images into waste classifications.
//
// The only implementation is Mock, which waits a configured latency and then
// picks one of four canned outcomes. Guarded wraps any Classifier with a
// timeout, panic recovery and mapping onto the error taxonomy in common, so a
// real inference backend can replace Mock without touching callers.
package classifier
