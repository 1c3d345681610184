package ntfs

import "encoding/binary"

// All multi-byte fields in MFT and USN journal records are little-endian,
// regardless of host architecture; these helpers make that explicit at every
// call site instead of relying on an implicit host-endian cast.

func leUint16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func leUint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func leUint64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
