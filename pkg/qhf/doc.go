// Package qhf decodes QHF (QIP History File) chat archives into a
// structured in-memory form.
//
// The format is consumed, never produced: there is no encode path. A
// decode is a pure function of the input buffer with no I/O, so identical
// buffers always produce identical histories. File-level entry points
// (DecodeFile, Open) load the whole file before decoding begins; the
// decoder never re-reads storage.
//
// Unencrypted QHF variants (QIP PDA) exist in the wild but are not
// handled; decoding one fails with an encoding error rather than guessing
// a detection heuristic.
package qhf
