package toolchain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RecordFileName is the persisted toolchain record kept at the project root.
// The generated build helpers read the same file.
const RecordFileName = "qt6.config.json"

// Record is the single piece of state shared between generation runs, build
// helper invocations, and dev sessions.
type Record struct {
	Qt6Path *string `json:"qt6Path"`
}

// NewRecord builds a record from a resolved path. An empty path persists as
// JSON null, which the build helpers treat as "prompt the operator".
func NewRecord(path string) *Record {
	if path == "" {
		return &Record{}
	}
	return &Record{Qt6Path: &path}
}

// Path returns the recorded path, or "" when the record holds null.
func (r *Record) Path() string {
	if r == nil || r.Qt6Path == nil {
		return ""
	}
	return *r.Qt6Path
}

// LoadRecord reads the record from projectRoot. Returns nil, nil if the file
// does not exist (project generated without a backend, or pre-record layout).
// A malformed record is a configuration error, not something to limp past.
func LoadRecord(projectRoot string) (*Record, error) {
	path := filepath.Join(projectRoot, RecordFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading toolchain record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing toolchain record %s: %w", path, err)
	}
	return &rec, nil
}

// SaveRecord writes the record atomically: to a temp file in the same
// directory, then rename. Concurrent sessions never observe a half-written
// record.
func SaveRecord(projectRoot string, rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling toolchain record: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(projectRoot, RecordFileName+".*")
	if err != nil {
		return fmt.Errorf("creating temp record: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp record: %w", err)
	}

	final := filepath.Join(projectRoot, RecordFileName)
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing toolchain record: %w", err)
	}
	return nil
}
