package ntfs

import (
	"encoding/binary"
	"testing"
)

// buildMFTRecord constructs one synthetic MFT enumeration record matching
// the layout ParseMFTRecords expects: recordLength:u32 @0, fileReference:u64
// @8, parentReference:u64 @16, filenameLength:u16 @56, filenameOffset:u16
// @58, filename bytes (UTF-16LE) at filenameOffset.
func buildMFTRecord(fileIndex, parentIndex uint64, name string) []byte {
	nameBytes := utf16LEBytes(name)
	filenameOffset := mftRecordMinHeader
	recordLength := filenameOffset + len(nameBytes)

	record := make([]byte, recordLength)
	binary.LittleEndian.PutUint32(record[0:4], uint32(recordLength))
	binary.LittleEndian.PutUint64(record[8:16], fileIndex)
	binary.LittleEndian.PutUint64(record[16:24], parentIndex)
	binary.LittleEndian.PutUint16(record[56:58], uint16(len(nameBytes)))
	binary.LittleEndian.PutUint16(record[58:60], uint16(filenameOffset))
	copy(record[filenameOffset:], nameBytes)
	return record
}

func utf16LEBytes(s string) []byte {
	var out []byte
	for _, r := range s {
		out = append(out, byte(r), 0)
	}
	return out
}

func TestParseMFTRecordsPopulatesPathCache(t *testing.T) {
	var data []byte
	data = append(data, buildMFTRecord(100, RootDirectoryIndex, "dir")...)
	data = append(data, buildMFTRecord(200, 100, "a.txt")...)

	cache := NewPathCache('C', DefaultMaxResolutionDepth)
	ParseMFTRecords(data, cache)

	if cache.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cache.Len())
	}
	if got := cache.Resolve(200); got != `C:\dir\a.txt` {
		t.Fatalf("Resolve(200) = %q, want C:\\dir\\a.txt", got)
	}
}

func TestParseMFTRecordsSkipsZeroLength(t *testing.T) {
	data := make([]byte, 4) // recordLength == 0
	cache := NewPathCache('C', DefaultMaxResolutionDepth)
	ParseMFTRecords(data, cache)
	if cache.Len() != 0 {
		t.Fatalf("expected no records parsed, got %d", cache.Len())
	}
}

func TestParseMFTRecordsStopsOnOverflowingLength(t *testing.T) {
	valid := buildMFTRecord(1, RootDirectoryIndex, "a")
	var data []byte
	data = append(data, valid...)
	// Append a bogus trailing record claiming a length past the buffer end.
	bogus := make([]byte, 4)
	binary.LittleEndian.PutUint32(bogus, 1_000_000)
	data = append(data, bogus...)

	cache := NewPathCache('C', DefaultMaxResolutionDepth)
	ParseMFTRecords(data, cache)
	if cache.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (bogus trailing record ignored)", cache.Len())
	}
}

func TestParseMFTRecordsIdempotentOverRepeatRuns(t *testing.T) {
	data := buildMFTRecord(200, 100, "a.txt")

	first := NewPathCache('C', DefaultMaxResolutionDepth)
	ParseMFTRecords(data, first)
	second := NewPathCache('C', DefaultMaxResolutionDepth)
	ParseMFTRecords(data, second)

	if first.Len() != second.Len() {
		t.Fatalf("repeat runs produced different parent-cache sizes: %d vs %d", first.Len(), second.Len())
	}
}
