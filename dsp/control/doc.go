// Package control holds the live parameter block shared between a control
// surface and the generation loop, and the preset snapshot/apply contract.
//
// Live is single-writer/single-reader friendly: readers load an immutable
// State through an atomic pointer without locking, writers replace it under
// a writer-only mutex. A reader may observe a State that is one block
// stale; it never observes a torn one.
package control
