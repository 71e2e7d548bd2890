package dto

// Config is the persisted program configuration (~/.seafile-link.yaml).
type Config struct {
	// Server is the origin of the Seafile server, e.g. https://seafile.example.org
	Server string `yaml:"server"`
	// Dialog optionally forces a dialog backend: "kdialog" or "terminal".
	Dialog string `yaml:"dialog,omitempty"`
}

// Repository is one library on the Seafile server. The server returns more
// fields; only the ones needed for matching are decoded.
type Repository struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match ties a local file to the repository it lives in and the path
// relative to that repository's root. Either both fields are set or both
// are empty, never one of the two.
type Match struct {
	RepoID string
	Path   string
}

func (m Match) Found() bool {
	return m.RepoID != ""
}
