package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file kept at the project root.
const FileName = "taqyon.json"

// Frontend describes the web part of a project.
type Frontend struct {
	Dir       string `json:"dir"`
	Framework string `json:"framework"`
	Language  string `json:"language"`
}

// Backend describes the native part of a project.
type Backend struct {
	Dir string `json:"dir"`
}

// Project is the parsed taqyon.json manifest.
type Project struct {
	Name     string            `json:"name"`
	Version  string            `json:"version"`
	Frontend *Frontend         `json:"frontend,omitempty"`
	Backend  *Backend          `json:"backend,omitempty"`
	Commands map[string]string `json:"commands"`
}

// Load reads and parses the manifest at projectRoot. A missing manifest means
// the directory is not a taqyon project; a malformed one is a configuration
// error. Both abort the caller with an actionable message.
func Load(projectRoot string) (*Project, error) {
	path := filepath.Join(projectRoot, FileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found in %s: not a taqyon project (run 'taqyon init' first)", FileName, projectRoot)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the manifest to projectRoot with stable formatting.
func Save(projectRoot string, p *Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(projectRoot, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
