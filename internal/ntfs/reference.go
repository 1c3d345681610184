// Package ntfs implements the journal ingestion and path-resolution engine
// for NTFS Update Sequence Number (USN) change journals: volume handle
// acquisition, MFT enumeration, USN journal reading, binary record decoding,
// and file-reference path resolution.
//
// Binary layouts and iteration protocols follow the behavior of the
// FSCTL_QUERY_USN_JOURNAL, FSCTL_ENUM_USN_DATA, and FSCTL_READ_USN_JOURNAL
// device control codes; the Go-level handle and device-control plumbing
// uses explicit golang.org/x/sys/windows calls, no cgo.
package ntfs

// referenceIndexMask isolates the low 48 bits of a 64-bit NTFS file
// reference, which identify the MFT record. The high 16 bits are a reuse
// sequence number that the path resolver discards.
const referenceIndexMask = 0x0000FFFFFFFFFFFF

// RootDirectoryIndex is the well-known MFT record index of an NTFS volume's
// root directory.
const RootDirectoryIndex = 5

// FileReference is the 64-bit opaque identifier NTFS assigns to an MFT
// record. RecordIndex returns the 48-bit record index that the path resolver
// keys on; the remaining high bits are a reuse sequence that callers may need
// to preserve (e.g. for downstream correlation) but that path resolution
// ignores.
type FileReference uint64

// RecordIndex returns the 48-bit MFT record index encoded in the reference,
// discarding the 16-bit reuse sequence.
func (r FileReference) RecordIndex() uint64 {
	return uint64(r) & referenceIndexMask
}
