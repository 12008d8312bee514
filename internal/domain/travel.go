package domain

// DateTimeFormat is the layout of every timestamp accepted or returned by the API.
const DateTimeFormat = "2006-01-02 15:04:05"

// FileType is a supported export format.
type FileType string

// Supported export formats.
const (
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
)

// AllowedFileTypes lists the export formats in preference order.
// The first entry is the default.
var AllowedFileTypes = []FileType{FileTypeCSV, FileTypeXLSX}

// TravelQuery selects travel-time observations for a set of links over a
// time window. StartTime and EndTime are kept in DateTimeFormat text.
type TravelQuery struct {
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	LinkDirs  []string `json:"link_dirs"`
}

// TravelRecord is one aggregated travel-time observation for a link.
type TravelRecord struct {
	LinkDir    string  `json:"link_dir"`
	Tx         string  `json:"tx"`
	Length     float64 `json:"length"`
	Mean       float64 `json:"mean"`
	Stddev     float64 `json:"stddev"`
	Confidence int64   `json:"confidence"`
	Pct50      float64 `json:"pct_50"`
}
