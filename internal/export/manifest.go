package export

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ManifestFile is the name of the run manifest at the output root
const ManifestFile = "manifest.json"

// runNamespace scopes manifest run ids
var runNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://example.edu/student360/runs"))

// ManifestEntry records one written file
type ManifestEntry struct {
	Path    string   `json:"path"`
	Schema  string   `json:"schema"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
}

// Manifest describes one generator run. It carries no wall-clock data so
// two runs with the same parameters produce the same bytes.
type Manifest struct {
	RunID    string          `json:"runId"`
	Students int             `json:"numStudents"`
	Seed     int64           `json:"seed"`
	Files    []ManifestEntry `json:"files"`
}

// RunID derives a name-based UUID from the generator parameters
func RunID(students int, seed int64) uuid.UUID {
	return uuid.NewSHA1(runNamespace, []byte(fmt.Sprintf("students=%d;seed=%d", students, seed)))
}

// NewManifest builds the manifest of the given tables
func NewManifest(students int, seed int64, tables []Table) *Manifest {
	m := &Manifest{
		RunID:    RunID(students, seed).String(),
		Students: students,
		Seed:     seed,
		Files:    make([]ManifestEntry, 0, len(tables)),
	}
	for _, t := range tables {
		m.Files = append(m.Files, ManifestEntry{
			Path:    t.Path(),
			Schema:  t.Schema(),
			Columns: t.Header(),
			Rows:    len(t.Rows),
		})
	}
	return m
}

// Marshal encodes the manifest as indented JSON with a trailing newline
func (m *Manifest) Marshal() ([]byte, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
