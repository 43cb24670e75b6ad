package market

import (
	"os"
	"path/filepath"

	appErrors "tradedeck/internal/errors"
)

// SnapshotDirName is the per-project directory holding the lead snapshot.
const SnapshotDirName = ".tradedeck"

// SnapshotFileName is the SQLite file the marketplace sync job maintains.
const SnapshotFileName = "market.db"

// DiscoverSnapshot walks up from startDir looking for
// .tradedeck/market.db, the same way project config is found.
func DiscoverSnapshot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", appErrors.New(appErrors.CodeStoreOpenFailed, "resolve working directory", err)
	}
	for {
		candidate := filepath.Join(dir, SnapshotDirName, SnapshotFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", appErrors.New(appErrors.CodeNotFound,
				"no "+SnapshotDirName+"/"+SnapshotFileName+" found in this directory or any parent", nil)
		}
		dir = parent
	}
}
