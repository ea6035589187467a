package substrate

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const keystoreFile = "keystore.json"

// Keystore stores the snapshot base64-encoded inside a small JSON state
// file. It survives tools that only round-trip text, at roughly 4/3 the
// size of the raw snapshot.
type Keystore struct {
	path string
}

type keystoreState struct {
	Snapshot string `json:"snapshot"`
}

// NewKeystore creates a keystore substrate rooted at dir.
func NewKeystore(dir string) (*Keystore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("keystore substrate: %w", err)
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return nil, fmt.Errorf("keystore substrate: %w", err)
	}
	os.Remove(probe)
	return &Keystore{path: filepath.Join(dir, keystoreFile)}, nil
}

func (k *Keystore) Name() string { return "keystore" }

func (k *Keystore) Load(_ context.Context) ([]byte, bool, error) {
	raw, err := os.ReadFile(k.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("keystore substrate: load: %w", err)
	}

	var state keystoreState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, false, fmt.Errorf("keystore substrate: corrupt state file: %w", err)
	}
	if state.Snapshot == "" {
		return nil, false, nil
	}

	data, err := base64.StdEncoding.DecodeString(state.Snapshot)
	if err != nil {
		return nil, false, fmt.Errorf("keystore substrate: corrupt snapshot: %w", err)
	}
	return data, true, nil
}

func (k *Keystore) Save(_ context.Context, data []byte) error {
	raw, err := json.Marshal(keystoreState{
		Snapshot: base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return fmt.Errorf("keystore substrate: save: %w", err)
	}

	dir := filepath.Dir(k.path)
	tmp, err := os.CreateTemp(dir, keystoreFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("keystore substrate: save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("keystore substrate: save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("keystore substrate: save: %w", err)
	}
	if err := os.Rename(tmp.Name(), k.path); err != nil {
		return fmt.Errorf("keystore substrate: save: %w", err)
	}
	return nil
}

func (k *Keystore) Drop(_ context.Context) error {
	err := os.Remove(k.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("keystore substrate: drop: %w", err)
	}
	return nil
}
