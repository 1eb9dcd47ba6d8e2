package desktopfs

import (
	"io"
	"io/fs"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/types"
)

// entryFile implements fs.File for file entries
type entryFile struct {
	entry   *types.Entry
	modTime time.Time
	data    []byte
	offset  int64
}

// entryDir implements fs.ReadDirFile for folders, drives, and cd-roms
type entryDir struct {
	entry   *types.Entry
	modTime time.Time
	entries []fs.DirEntry
}

func (f *entryFile) Stat() (fs.FileInfo, error) {
	return newFileInfo(f.entry, f.modTime), nil
}

// Read reads the entry content
func (f *entryFile) Read(b []byte) (int, error) {
	if f.offset >= int64(len(f.data)) {
		return 0, io.EOF
	}

	n := copy(b, f.data[f.offset:])
	f.offset += int64(n)
	return n, nil
}

func (f *entryFile) Close() error {
	return nil
}

func (d *entryDir) Stat() (fs.FileInfo, error) {
	return newFileInfo(d.entry, d.modTime), nil
}

// Read always fails on a directory
func (d *entryDir) Read(b []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.entry.Name, Err: errIsDir}
}

// ReadDir reads the children of the directory and returns
// a slice of up to n DirEntry values in declared order
func (d *entryDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if n <= 0 {
		result := make([]fs.DirEntry, len(d.entries))
		copy(result, d.entries)
		d.entries = d.entries[:0]
		return result, nil
	}

	if len(d.entries) == 0 {
		return nil, io.EOF
	}

	count := min(n, len(d.entries))
	result := make([]fs.DirEntry, count)
	copy(result, d.entries[:count])
	d.entries = d.entries[count:]
	return result, nil
}

func (d *entryDir) Close() error {
	return nil
}
