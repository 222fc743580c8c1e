package backend

// Entry describes one kind's contents inside a previously written backup
// root, generic enough for the CLI to render a consolidated view.
type Entry struct {
	Root      string `json:"root"`      // backup root directory name
	Host      string `json:"host"`      // server host parsed from the root name, if any
	Timestamp string `json:"timestamp"` // YYYYMMDDTHHMMSS-0000 portion, if any
	Kind      string `json:"kind"`      // nodes|roles|environments|data_bags
	Count     int    `json:"count"`     // JSON files under the kind
	Path      string `json:"path"`      // absolute path to the kind directory
}

// KindAll selects every kind when listing.
const KindAll = "all"

// Lister defines read-only enumeration of existing backups.
type Lister interface {
	List(kind string) ([]Entry, error)
}
