// Package types defines the public data model and typed errors shared by
// the QHF decoder and its consumers. It has no dependency on the decoding
// machinery, so renderers and tools can use it without pulling in the
// parser.
package types
