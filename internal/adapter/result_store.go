package adapter

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/blocks/internal/model"
)

const resultsFile = "results.yaml"

// ResultStore persists and retrieves completed runs.
type ResultStore interface {
	SaveRun(dir m.Path, run m.Run) error
	LoadRun(dir m.Path) (m.Run, error)
}

type resultStore struct {
	fs afero.Fs
}

// NewResultStore constructs a ResultStore writing YAML reports to fs.
func NewResultStore(fs afero.Fs) ResultStore {
	return &resultStore{fs: fs}
}

// NewLocalResultStore constructs a ResultStore backed by the local disk.
func NewLocalResultStore() ResultStore {
	return NewResultStore(afero.NewOsFs())
}

func (rs *resultStore) SaveRun(dir m.Path, run m.Run) error {
	if err := rs.fs.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("failed to create reports dir: %w", err)
	}

	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}

	path := filepath.Join(string(dir), resultsFile)
	if err := afero.WriteFile(rs.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Debugf("saved %d suite results to %s", len(run.Suites), path)

	return nil
}

func (rs *resultStore) LoadRun(dir m.Path) (m.Run, error) {
	path := filepath.Join(string(dir), resultsFile)

	data, err := afero.ReadFile(rs.fs, path)
	if err != nil {
		return m.Run{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var run m.Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return m.Run{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return run, nil
}
