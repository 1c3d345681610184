package ntfs

// RawJournalRecord is the parsed-but-undecorated content of one version-2
// USN journal record, as produced by the Journal Reader (C5) before
// enrichment.
type RawJournalRecord struct {
	FileReference       uint64
	ParentFileReference uint64
	USN                 int64
	TimestampFiletime   uint64
	Reason              uint32
	FileAttributes      uint32
	Name                string
}

// Enrich converts a raw journal record into a ChangeEntry, attaching a
// resolved path, decoded reason/attribute strings, and rename-pair
// metadata.
//
// When cache is nil, path assembly runs in "fast mode": path is just
// drivePrefix concatenated with the record's own name, and
// Attributes is left empty. This mode is retained as a contract for
// low-latency callers but is not used by the primary scan pipeline, which
// always resolves full paths via a non-nil cache.
func Enrich(record RawJournalRecord, drivePrefix string, cache *PathCache) ChangeEntry {
	isRename, renameType := classifyRename(record.Reason)

	var path, attributes string
	if cache == nil {
		path = drivePrefix + record.Name
	} else {
		parentIndex := FileReference(record.ParentFileReference).RecordIndex()
		path = joinPath(cache.Get(parentIndex), record.Name)
		attributes = AttributeString(record.FileAttributes)
	}

	return ChangeEntry{
		USN:                 record.USN,
		Name:                record.Name,
		Path:                path,
		Timestamp:           FiletimeToISO8601(record.TimestampFiletime),
		Reason:              ReasonString(record.Reason),
		Attributes:          attributes,
		IsDirectory:         IsDirectoryAttribute(record.FileAttributes),
		FileReference:       record.FileReference,
		ParentFileReference: record.ParentFileReference,
		OriginalName:        record.Name,
		IsRename:            isRename,
		RenameType:          renameType,
		Details:             "",
	}
}
