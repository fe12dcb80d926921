package config

// Service Constants
const (
	// ServiceName is reported by the health endpoint.
	ServiceName = "FixMySheet API"

	// DefaultPort is used when PORT is not set in the environment.
	DefaultPort = "8080"

	// TmpDir is the directory for generated workbook artifacts.
	TmpDir = "tmp"

	// MaxUploadBytes caps the size of a multipart upload (32 MiB).
	MaxUploadBytes = 32 << 20
)

// Workbook Constants
const (
	// WorkbookContentType is the MIME type of the generated XLSX artifact.
	WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Sheet names in the reconciliation workbook.
	SheetMatches = "Matches"
	SheetOnlyInA = "Only_in_File_A"
	SheetOnlyInB = "Only_in_File_B"
	SheetSummary = "Summary"

	// SheetAllRows is the single sheet of the deduplication workbook.
	SheetAllRows = "All_Rows"
)
