// Package production provides production integrations for statekit
// containers: snapshot persistence and change publishing.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Snapshot captures one container's state at a point in time. Name keys the
// snapshot on disk, so it must be non-empty and filename-safe.
type Snapshot struct {
	Name       string    `json:"name" yaml:"name"`
	State      any       `json:"state" yaml:"state"`
	CapturedAt time.Time `json:"capturedAt" yaml:"capturedAt"`
}

// Capture builds a snapshot of state under the given container name.
func Capture(name string, state any) Snapshot {
	return Snapshot{Name: name, State: state, CapturedAt: time.Now().UTC()}
}

// Persister saves and loads container snapshots.
type Persister interface {
	Save(ctx context.Context, snapshot Snapshot) error
	Load(ctx context.Context, name string) (Snapshot, error)
}

// JSONPersister is a file-based persister using JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, snapshot Snapshot) error {
	if snapshot.Name == "" {
		return errors.New("snapshot has no name")
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(p.dir, snapshot.Name+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *JSONPersister) Load(ctx context.Context, name string) (Snapshot, error) {
	fn := filepath.Join(p.dir, name+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, fmt.Errorf("snapshot %q: %w", name, os.ErrNotExist)
		}
		return Snapshot{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	snapshot.Name = name // Ensure name matches the file

	return snapshot, nil
}

// YAMLPersister is a file-based persister using YAML serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, snapshot Snapshot) error {
	if snapshot.Name == "" {
		return errors.New("snapshot has no name")
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, snapshot.Name+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *YAMLPersister) Load(ctx context.Context, name string) (Snapshot, error) {
	fn := filepath.Join(p.dir, name+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, fmt.Errorf("snapshot %q: %w", name, os.ErrNotExist)
		}
		return Snapshot{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	snapshot.Name = name // Ensure name matches the file

	return snapshot, nil
}
