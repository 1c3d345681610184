package ntfs

// journalRecordMinHeader is the minimum size of a version-2 USN journal
// record through FileNameOffset (+58..+60).
const journalRecordMinHeader = 60

// ParseJournalRecords walks a tightly packed sequence of USN journal
// records (the payload of an FSCTL_READ_USN_JOURNAL response, excluding the
// leading 8-byte next-start-USN field) and invokes emit for every
// successfully decoded version-2 record.
//
// Records with a major version other than 2 are skipped (without being
// treated as malformed: they still advance by their declared length).
// Malformed records (bad length, unresolvable filename bytes, undecodable
// UTF-16) are skipped silently; parsing stops entirely once the length
// field itself can no longer be trusted.
func ParseJournalRecords(data []byte, emit func(RawJournalRecord)) {
	offset := 0
	for offset+4 <= len(data) {
		recordLength := int(leUint32(data[offset : offset+4]))
		if recordLength == 0 || recordLength > len(data) || offset+recordLength > len(data) {
			break
		}

		record := data[offset : offset+recordLength]
		if len(record) >= 6 {
			majorVersion := leUint16(record[4:6])
			if majorVersion == 2 && len(record) >= journalRecordMinHeader {
				if raw, ok := parseOneJournalRecord(record); ok {
					emit(raw)
				}
			}
		}

		offset += recordLength
	}
}

func parseOneJournalRecord(record []byte) (RawJournalRecord, bool) {
	filenameLength := int(leUint16(record[56:58]))
	filenameOffset := int(leUint16(record[58:60]))

	start := filenameOffset
	end := start + filenameLength
	if start < 0 || end > len(record) || end < start {
		return RawJournalRecord{}, false
	}

	name, err := decodeUTF16LE(record[start:end])
	if err != nil {
		return RawJournalRecord{}, false
	}

	return RawJournalRecord{
		FileReference:       leUint64(record[8:16]),
		ParentFileReference: leUint64(record[16:24]),
		USN:                 int64(leUint64(record[24:32])),
		TimestampFiletime:   leUint64(record[32:40]),
		Reason:              leUint32(record[40:44]),
		FileAttributes:      leUint32(record[52:56]),
		Name:                name,
	}, true
}
