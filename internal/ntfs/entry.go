package ntfs

// ParentLink is one observed MFT record's parent pointer and name: the raw
// material the path resolver folds into full paths. Its lifetime is a single
// volume's scan: the enumerator populates it, the resolver consumes it, and
// the orchestrator discards it once that volume's scan finishes.
type ParentLink struct {
	ParentIndex uint64
	Name        string
}

// RenameType labels which half of a rename pair a journal entry represents.
type RenameType string

const (
	RenameTypeOld  RenameType = "old"
	RenameTypeNew  RenameType = "new"
	RenameTypeNone RenameType = "none"
)

// ChangeEntry is the enriched output record for a single version-2 USN
// journal record.
type ChangeEntry struct {
	USN                 int64      `json:"usn"`
	Name                string     `json:"name"`
	Path                string     `json:"path"`
	Timestamp           *string    `json:"timestamp"`
	Reason              string     `json:"reason"`
	Attributes          string     `json:"attributes"`
	IsDirectory         bool       `json:"isDirectory"`
	FileReference       uint64     `json:"fileReference"`
	ParentFileReference uint64     `json:"parentFileReference"`
	OriginalName        string     `json:"originalName"`
	IsRename            bool       `json:"isRename"`
	RenameType          RenameType `json:"renameType"`
	// Details is carried purely so the CSV export column exists; nothing
	// ever populates it.
	Details string `json:"details"`
}

// VolumeSummary captures the per-volume header/count information the
// orchestrator reports alongside the flat entry stream.
type VolumeSummary struct {
	Drive       string
	FirstUsn    int64
	NextUsn     int64
	MaxUsn      int64
	JournalSize uint64
	EntryCount  int
}

// ScanResult is the flat, insertion-ordered output of a run across one or
// more volumes.
type ScanResult struct {
	Entries []ChangeEntry
	Volumes []VolumeSummary
}
