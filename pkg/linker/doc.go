// Package linker applies link and unlink transitions to reconciled entries.
//
// Link acts only on Missing entries and Unlink only on Linked ones; every
// other entry is left alone. Each entry is handled independently: a
// failure is recorded in the Result and the batch carries on.
package linker
