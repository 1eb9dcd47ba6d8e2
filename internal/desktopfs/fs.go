package desktopfs

import (
	"io/fs"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/internal/utils"
)

// entryFS exposes a forest as a read-only fs.FS addressed by display names.
// The root directory lists the top-level entries.
type entryFS struct {
	root    *types.Entry
	modTime time.Time
}

func newEntryFS(forest []*types.Entry, modTime time.Time) *entryFS {
	return &entryFS{
		root: &types.Entry{
			ID:       RootID,
			Name:     ".",
			Kind:     types.KindFolder,
			Children: forest,
		},
		modTime: modTime,
	}
}

// Open implements fs.FS
func (efs *entryFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	entry := efs.lookup(name)
	if entry == nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	if !entry.Kind.IsContainer() {
		return &entryFile{entry: entry, modTime: efs.modTime, data: []byte(entry.Content)}, nil
	}

	entries := make([]fs.DirEntry, 0, len(entry.Children))
	for _, child := range entry.Children {
		if child != nil {
			entries = append(entries, newDirEntry(child, efs.modTime))
		}
	}
	return &entryDir{entry: entry, modTime: efs.modTime, entries: entries}, nil
}

// Stat implements fs.StatFS
func (efs *entryFS) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	entry := efs.lookup(name)
	if entry == nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return newFileInfo(entry, efs.modTime), nil
}

// lookup resolves a slash path segment by segment, first sibling match wins
func (efs *entryFS) lookup(name string) *types.Entry {
	current := efs.root
	for _, segment := range utils.SplitPath(name) {
		var next *types.Entry
		for _, child := range current.Children {
			if child != nil && child.Name == segment {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}
