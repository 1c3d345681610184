package ntfs

// journalHeaderSize is the fixed size, in bytes, of the USN_JOURNAL_DATA_V0
// structure returned by FSCTL_QUERY_USN_JOURNAL.
const journalHeaderSize = 56

// JournalHeader is the parsed result of querying a volume's USN journal
// metadata (FSCTL_QUERY_USN_JOURNAL). It is an opaque handle to the volume's
// current journal incarnation; JournalID must accompany every subsequent
// journal read so that a journal that has been deleted and recreated between
// the probe and the read is detected rather than silently misread.
type JournalHeader struct {
	JournalID       uint64
	FirstUsn        int64
	NextUsn         int64
	LowestValidUsn  int64
	MaxUsn          int64
	MaxSize         uint64
	AllocationDelta uint64
}

// parseJournalHeader decodes a 56-byte USN_JOURNAL_DATA_V0 buffer. All
// fields are little-endian, matching the on-disk/on-wire NTFS convention;
// they are read explicitly via encoding/binary rather than relying on host
// endianness.
func parseJournalHeader(data []byte) (JournalHeader, error) {
	if len(data) < journalHeaderSize {
		return JournalHeader{}, errShortJournalHeader
	}
	return JournalHeader{
		JournalID:       leUint64(data[0:8]),
		FirstUsn:        int64(leUint64(data[8:16])),
		NextUsn:         int64(leUint64(data[16:24])),
		LowestValidUsn:  int64(leUint64(data[24:32])),
		MaxUsn:          int64(leUint64(data[32:40])),
		MaxSize:         leUint64(data[40:48]),
		AllocationDelta: leUint64(data[48:56]),
	}, nil
}
