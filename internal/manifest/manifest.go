// Package manifest records the outcome of a generation run: which files
// were produced, which deck mode was used, and where the archive landed.
// The manifest lives next to the archive, outside the pack root, so it is
// never swept into its own archive.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
)

// CampaignEntry is the per-campaign slice of a run.
type CampaignEntry struct {
	Name     string   `json:"name"`
	Files    []string `json:"files"`
	DeckMode string   `json:"deck_mode"`
	DeckPath string   `json:"deck_path"`
	Degraded bool     `json:"degraded,omitempty"`
}

type Manifest struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	PackRoot    string          `json:"pack_root"`
	Archive     string          `json:"archive,omitempty"`
	Campaigns   []CampaignEntry `json:"campaigns"`
	Files       []string        `json:"files"`
}

// New creates a manifest with a fresh run ID.
func New(generatedAt time.Time, packRoot string) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: generatedAt,
		PackRoot:    packRoot,
	}
}

// Save writes the manifest to path atomically.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, append(data, '\n'), 0644)
}

// Load reads a manifest from a prior run. Returns nil if none exists.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
