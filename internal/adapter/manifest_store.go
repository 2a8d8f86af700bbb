package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "fuze.dev/pkg/fuze/internal/model"
)

// ManifestStore persists provenance manifests next to fused outputs.
type ManifestStore interface {
	SaveManifest(path string, manifest m.Manifest) error
	LoadManifest(path string) (m.Manifest, error)
}

// LocalManifestStore stores manifests as YAML files on the local filesystem.
type LocalManifestStore struct{}

// NewLocalManifestStore constructs a LocalManifestStore.
func NewLocalManifestStore() *LocalManifestStore {
	return &LocalManifestStore{}
}

// SaveManifest writes manifest as YAML to path.
func (s *LocalManifestStore) SaveManifest(path string, manifest m.Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// LoadManifest reads a YAML manifest from path.
func (s *LocalManifestStore) LoadManifest(path string) (m.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return manifest, nil
}
