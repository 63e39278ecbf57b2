package store

import "github.com/cycleworks/taskcycle/cycle"

// StateStore defines the interface for persisting the survey state tree.
// The whole tree is read and written as one snapshot, mirroring the
// original single-key persistence model.
type StateStore interface {
	// Initialize configures the store with backend-specific settings such
	// as the snapshot file path and data format. It must be called before
	// any other operation.
	Initialize(config map[string]string) error

	// Load reads the persisted snapshot. A store with no snapshot yet
	// returns a fresh state with the seed catalog installed.
	Load() (*cycle.State, error)

	// Save persists the snapshot, replacing any previous one.
	Save(state *cycle.State) error

	// Backup copies the current snapshot file to the destination path.
	Backup(destinationPath string) error

	// Restore replaces the current snapshot with the file at sourcePath.
	Restore(sourcePath string) error

	// Close releases any resources held by the store, such as file locks.
	Close() error
}
