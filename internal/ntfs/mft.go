package ntfs

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// mftRecordMinHeader is the minimum number of bytes of a USN_RECORD_V2-style
// MFT enumeration record needed to read its fixed-offset fields (up through
// FileNameOffset at +58..+60).
const mftRecordMinHeader = 60

// utf16LEDecoder decodes MFT/journal filenames, which are always UTF-16LE on
// disk. Using golang.org/x/text/encoding/unicode instead of a hand-rolled
// loop over uint16 code units gets correct behavior for surrogate pairs; an
// unpaired surrogate decodes to U+FFFD. decodeUTF16LE rejects odd-length
// (truncated) byte runs as a decode failure, and callers skip such names
// silently.
var utf16LEDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

var errOddLengthUTF16 = errors.New("UTF-16LE name has an odd byte length")

func decodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errOddLengthUTF16
	}
	return utf16LEDecoder.Bytes(b)
}

// ParseMFTRecords walks a tightly packed sequence of MFT enumeration records
// (the payload of an FSCTL_ENUM_USN_DATA response, excluding the leading
// 8-byte next-start-index field) and adds a ParentLink to cache for every
// record it can decode.
//
// Malformed records (zero or out-of-bounds length, unresolvable filename
// bytes, undecodable UTF-16) are skipped silently; parsing continues at the
// next record when the length field itself was trustworthy, and stops
// entirely when it wasn't.
func ParseMFTRecords(data []byte, cache *PathCache) {
	offset := 0
	for offset+4 <= len(data) {
		recordLength := int(leUint32(data[offset : offset+4]))
		if recordLength == 0 || recordLength > len(data) || offset+recordLength > len(data) {
			break
		}
		if recordLength >= mftRecordMinHeader {
			parseOneMFTRecord(data[offset:offset+recordLength], cache)
		}
		offset += recordLength
	}
}

func parseOneMFTRecord(record []byte, cache *PathCache) {
	fileIndex := FileReference(leUint64(record[8:16])).RecordIndex()
	parentIndex := FileReference(leUint64(record[16:24])).RecordIndex()
	filenameLength := int(leUint16(record[56:58]))
	filenameOffset := int(leUint16(record[58:60]))

	start := filenameOffset
	end := start + filenameLength
	if start < 0 || end > len(record) || end < start {
		return
	}

	name, err := decodeUTF16LE(record[start:end])
	if err != nil {
		return
	}

	cache.AddParent(fileIndex, ParentLink{ParentIndex: parentIndex, Name: name})
}
