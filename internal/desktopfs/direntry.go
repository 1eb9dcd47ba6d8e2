package desktopfs

import (
	"io/fs"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/types"
)

// entryDirEntry wraps a types.Entry to implement fs.DirEntry
type entryDirEntry struct {
	entry   *types.Entry
	modTime time.Time
}

func newDirEntry(entry *types.Entry, modTime time.Time) fs.DirEntry {
	return &entryDirEntry{entry: entry, modTime: modTime}
}

func (de *entryDirEntry) Name() string {
	return de.entry.Name
}

// IsDir reports whether the entry is a folder, drive, or cd-rom
func (de *entryDirEntry) IsDir() bool {
	return de.entry.Kind.IsContainer()
}

func (de *entryDirEntry) Type() fs.FileMode {
	if de.entry.Kind.IsContainer() {
		return fs.ModeDir
	}
	return 0
}

func (de *entryDirEntry) Info() (fs.FileInfo, error) {
	return newFileInfo(de.entry, de.modTime), nil
}
