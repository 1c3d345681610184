package ntfs

import "time"

// reasonFlag pairs a USN reason bit with its canonical name. The table order
// is significant: the joined reason string lists set bits in table order.
type reasonFlag struct {
	bit  uint32
	name string
}

// reasonTable enumerates the 23 named USN_REASON_* bits.
var reasonTable = []reasonFlag{
	{0x00000001, "DATA_OVERWRITE"},
	{0x00000002, "DATA_EXTEND"},
	{0x00000004, "DATA_TRUNCATION"},
	{0x00000010, "NAMED_DATA_OVERWRITE"},
	{0x00000020, "NAMED_DATA_EXTEND"},
	{0x00000040, "NAMED_DATA_TRUNCATION"},
	{0x00000100, "FILE_CREATE"},
	{0x00000200, "FILE_DELETE"},
	{0x00000400, "EA_CHANGE"},
	{0x00000800, "SECURITY_CHANGE"},
	{0x00001000, "RENAME_OLD_NAME"},
	{0x00002000, "RENAME_NEW_NAME"},
	{0x00004000, "INDEXABLE_CHANGE"},
	{0x00008000, "BASIC_INFO_CHANGE"},
	{0x00010000, "HARD_LINK_CHANGE"},
	{0x00020000, "COMPRESSION_CHANGE"},
	{0x00040000, "ENCRYPTION_CHANGE"},
	{0x00080000, "OBJECT_ID_CHANGE"},
	{0x00100000, "REPARSE_POINT_CHANGE"},
	{0x00200000, "STREAM_CHANGE"},
	{0x00400000, "TRANSACTED_CHANGE"},
	{0x00800000, "INTEGRITY_CHANGE"},
	{0x80000000, "CLOSE"},
}

const (
	reasonRenameOldName uint32 = 0x00001000
	reasonRenameNewName uint32 = 0x00002000

	attributeDirectory uint32 = 0x00000010
)

// attributeFlag pairs a FILE_ATTRIBUTE_* bit with its canonical name.
type attributeFlag struct {
	bit  uint32
	name string
}

// attributeTable enumerates the 13 named file attribute bits.
var attributeTable = []attributeFlag{
	{0x00000001, "READONLY"},
	{0x00000002, "HIDDEN"},
	{0x00000004, "SYSTEM"},
	{0x00000010, "DIRECTORY"},
	{0x00000020, "ARCHIVE"},
	{0x00000080, "NORMAL"},
	{0x00000100, "TEMPORARY"},
	{0x00000200, "SPARSE_FILE"},
	{0x00000400, "REPARSE_POINT"},
	{0x00000800, "COMPRESSED"},
	{0x00001000, "OFFLINE"},
	{0x00002000, "NOT_CONTENT_INDEXED"},
	{0x00004000, "ENCRYPTED"},
}

// ReasonString joins the names of every set bit in mask, in table order,
// with " | ". A mask with no recognized bits set yields "UNKNOWN"; unknown
// bits outside the table are silently dropped.
func ReasonString(mask uint32) string {
	var names []string
	for _, flag := range reasonTable {
		if mask&flag.bit != 0 {
			names = append(names, flag.name)
		}
	}
	if len(names) == 0 {
		return "UNKNOWN"
	}
	return joinWith(names, " | ")
}

// AttributeString joins the names of every set bit in attributes, in table
// order, with ", ". No bits set yields "NORMAL".
func AttributeString(attributes uint32) string {
	var names []string
	for _, flag := range attributeTable {
		if attributes&flag.bit != 0 {
			names = append(names, flag.name)
		}
	}
	if len(names) == 0 {
		return "NORMAL"
	}
	return joinWith(names, ", ")
}

func joinWith(names []string, sep string) string {
	out := names[0]
	for _, n := range names[1:] {
		out += sep + n
	}
	return out
}

// IsDirectoryAttribute reports whether the DIRECTORY bit (0x10) is set.
func IsDirectoryAttribute(attributes uint32) bool {
	return attributes&attributeDirectory != 0
}

// classifyRename derives isRename/renameType from a raw reason mask.
// "old" wins whenever both the rename-old and rename-new bits are set; a
// well-formed journal should never set both simultaneously, but this
// tie-break is deliberate rather than incidental.
func classifyRename(reason uint32) (bool, RenameType) {
	switch {
	case reason&reasonRenameOldName != 0:
		return true, RenameTypeOld
	case reason&reasonRenameNewName != 0:
		return true, RenameTypeNew
	default:
		return false, RenameTypeNone
	}
}

// windowsEpochOffset is the number of 100-ns intervals between the Windows
// filetime epoch (1601-01-01T00:00:00Z) and the Unix epoch
// (1970-01-01T00:00:00Z).
const windowsEpochOffset = 116444736000000000

// windowsEpoch is the Windows filetime epoch, used as the conversion base.
// The conversion adds whole seconds to its Unix time instead of building a
// Duration, since a Duration overflows int64 nanoseconds after about 292
// years (less than the span from 1601 to 1970).
var windowsEpoch = time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)

// FiletimeToISO8601 converts a Windows filetime (100-ns intervals since
// 1601-01-01 UTC) to an ISO-8601 UTC timestamp string, or nil if the
// filetime is zero. Precision beyond microseconds is discarded. Filetimes
// before the Unix epoch (dates between 1601-01-01 and 1970-01-01) convert
// normally rather than being rejected.
func FiletimeToISO8601(filetime uint64) *string {
	if filetime == 0 {
		return nil
	}
	micros := int64(filetime) / 10
	seconds := micros / 1_000_000
	remainderNanos := (micros % 1_000_000) * 1000
	t := time.Unix(windowsEpoch.Unix()+seconds, remainderNanos).UTC()
	s := t.Format("2006-01-02T15:04:05.999999")
	return &s
}

// filetimeFromTime is the inverse of FiletimeToISO8601's underlying
// conversion, truncated to microsecond precision the same way the forward
// conversion is. It exists for round-trip property testing; nothing in the
// production pipeline needs to re-encode a filetime.
func filetimeFromTime(t time.Time) uint64 {
	micros := t.UTC().UnixMicro()
	return uint64(micros*10 + windowsEpochOffset)
}
