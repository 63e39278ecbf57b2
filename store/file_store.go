package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	yaml "gopkg.in/yaml.v3"

	"github.com/cycleworks/taskcycle/cycle"
)

const (
	defaultDataFile   = "state.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	checksumSuffix    = ".checksum"
)

// FileStateStore implements StateStore on a single snapshot file. It
// supports JSON and YAML and uses file-level locking so concurrent CLI
// invocations serialize their read-modify-write cycles.
type FileStateStore struct {
	filePath string
	flk      *flock.Flock
	format   string
}

// NewFileStateStore creates a new instance. Initialize must be called
// before use.
func NewFileStateStore() *FileStateStore {
	return &FileStateStore{}
}

// Initialize configures the store. It expects a 'dataFile' key with the
// snapshot path; without one it defaults to state.json in the working
// directory. The parent directory is created if needed.
func (s *FileStateStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json and yaml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)
	return nil
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// Load reads and verifies the snapshot. A missing or empty file yields a
// fresh state.
func (s *FileStateStore) Load() (*cycle.State, error) {
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock for load: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()
	return s.loadInternal()
}

// loadInternal reads the snapshot assuming the lock is held.
func (s *FileStateStore) loadInternal() (*cycle.State, error) {
	checksumFilePath := s.filePath + checksumSuffix

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			_ = os.Remove(checksumFilePath)
			return cycle.NewState(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", s.filePath, err)
	}

	if _, err := os.Stat(checksumFilePath); err == nil {
		expectedChecksumBytes, readErr := os.ReadFile(checksumFilePath)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read checksum file %s: %w - snapshot may be corrupt or tampered", checksumFilePath, readErr)
		}
		expectedChecksum := strings.TrimSpace(string(expectedChecksumBytes))
		actualChecksum := calculateChecksum(data)
		if actualChecksum != expectedChecksum {
			return nil, fmt.Errorf("checksum mismatch for %s - expected %s, got %s - file is corrupt or tampered", s.filePath, expectedChecksum, actualChecksum)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error checking checksum file %s: %w", checksumFilePath, err)
	}
	// No checksum file next to an existing snapshot means pre-checksum
	// data; load it and let the next save create one.

	if len(data) == 0 {
		return cycle.NewState(), nil
	}

	var state cycle.State
	switch s.format {
	case formatJSON:
		if err := json.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON from %s: %w", s.filePath, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML from %s: %w", s.filePath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported data format for loading: %s", s.format)
	}

	return &state, nil
}

// Save writes the snapshot and its checksum atomically: both are written
// to temp files first and renamed into place.
func (s *FileStateStore) Save(state *cycle.State) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for save: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()
	return s.saveInternal(state)
}

func (s *FileStateStore) saveInternal(state *cycle.State) error {
	var marshaledData []byte
	var err error

	switch s.format {
	case formatJSON:
		marshaledData, err = json.MarshalIndent(state, "", "  ")
	case formatYAML:
		marshaledData, err = yaml.Marshal(state)
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal state to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	checksumFilePath := s.filePath + checksumSuffix
	tempChecksumFilePath := checksumFilePath + ".tmp"

	defer func() { _ = os.Remove(tempFilePath) }()
	defer func() { _ = os.Remove(tempChecksumFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaledData, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary snapshot file %s: %w", tempFilePath, err)
	}

	actualChecksum := calculateChecksum(marshaledData)
	if err := os.WriteFile(tempChecksumFilePath, []byte(actualChecksum), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary checksum file %s: %w", tempChecksumFilePath, err)
	}

	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary snapshot file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	if err := os.Rename(tempChecksumFilePath, checksumFilePath); err != nil {
		return fmt.Errorf("CRITICAL: snapshot %s updated, but failed to update checksum file %s: %w - store may be inconsistent", s.filePath, checksumFilePath, err)
	}

	return nil
}

// Backup copies the current snapshot file to the destination path. The
// checksum sidecar is not copied; a restored backup gets a fresh checksum
// on its next save.
func (s *FileStateStore) Backup(destinationPath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for backup: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	input, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read source file %s for backup: %w", s.filePath, err)
	}
	if err = os.WriteFile(destinationPath, input, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file to %s: %w", destinationPath, err)
	}
	return nil
}

// Restore replaces the current snapshot with data from sourcePath. Any
// existing checksum sidecar is removed since it no longer matches.
func (s *FileStateStore) Restore(sourcePath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for restore: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	sourceData, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source backup file %s: %w", sourcePath, err)
	}

	tempFilePath := s.filePath + ".tmp_restore"
	defer func() { _ = os.Remove(tempFilePath) }()

	if err = os.WriteFile(tempFilePath, sourceData, 0o644); err != nil {
		return fmt.Errorf("failed to write restored data to temporary file %s: %w", tempFilePath, err)
	}
	if err = os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to atomically replace file %s with restored data from %s: %w", s.filePath, sourcePath, err)
	}

	_ = os.Remove(s.filePath + checksumSuffix)
	return nil
}

// Close releases the file lock. flock.Unlock is idempotent.
func (s *FileStateStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
