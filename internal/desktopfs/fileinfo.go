package desktopfs

import (
	"io/fs"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/types"
)

// entryFileInfo wraps a types.Entry to implement fs.FileInfo
type entryFileInfo struct {
	entry   *types.Entry
	modTime time.Time
}

func newFileInfo(entry *types.Entry, modTime time.Time) fs.FileInfo {
	return &entryFileInfo{entry: entry, modTime: modTime}
}

// Name returns the display name of the entry
func (fi *entryFileInfo) Name() string {
	return fi.entry.Name
}

// Size returns the content length for files; 0 for containers
func (fi *entryFileInfo) Size() int64 {
	if fi.entry.Kind.IsContainer() {
		return 0
	}
	return int64(len(fi.entry.Content))
}

// Mode reports every entry read-only
func (fi *entryFileInfo) Mode() fs.FileMode {
	if fi.entry.Kind.IsContainer() {
		return fs.ModeDir | 0555
	}
	return 0444
}

// ModTime returns the time the file system was loaded
func (fi *entryFileInfo) ModTime() time.Time {
	return fi.modTime
}

func (fi *entryFileInfo) IsDir() bool {
	return fi.entry.Kind.IsContainer()
}

// Sys returns the underlying *types.Entry
func (fi *entryFileInfo) Sys() any {
	return fi.entry
}
