package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/errata-labs/errata-go/pkg"
)

// WriteSnapshot writes the record collection as a pretty-printed JSON array.
// The write is atomic: a temp file in the target directory renamed over the
// destination, so readers never observe a partial snapshot.
func WriteSnapshot(path string, records []ErrorRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return pkg.NewAppError(pkg.ErrSnapshotCode, "encode snapshot", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkg.NewAppError(pkg.ErrSnapshotCode, "create snapshot directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return pkg.NewAppError(pkg.ErrSnapshotCode, "create temp snapshot", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return pkg.NewAppError(pkg.ErrSnapshotCode, "write snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return pkg.NewAppError(pkg.ErrSnapshotCode, "close snapshot", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return pkg.NewAppError(pkg.ErrSnapshotCode, "replace snapshot", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot. The returned slice
// is treated as read-only by every consumer.
func ReadSnapshot(path string) ([]ErrorRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.NewAppError(pkg.ErrSnapshotCode, "read snapshot", err)
	}
	var records []ErrorRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, pkg.NewAppError(pkg.ErrSnapshotCode, "decode snapshot", err)
	}
	return records, nil
}
