// Package desktopfs implements the simulated file system of the desktop:
// the searchable index, the metadata catalog, the navigation tree, and an
// io/fs view of the declared forest.
package desktopfs

import (
	"cmp"
	"fmt"
	"io/fs"
	"slices"
	"sync"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/internal/utils"
	"go.uber.org/zap"
)

// SortKey selects the display order of folder children
type SortKey string

// SortKey constants
const (
	SortNone SortKey = ""
	SortName SortKey = "name"
	SortKind SortKey = "type"
)

// FileSystem owns a static forest and everything derived from it.
// Apart from the navigation expand flags it is immutable after New.
type FileSystem struct {
	forest     []*types.Entry
	recycleBin []*types.Entry
	byID       map[string]*types.Entry
	index      *Index
	catalog    *Catalog
	loadedAt   time.Time

	navMu      sync.Mutex
	navigation []*types.NavigationLink
}

// New builds the index, catalog, and navigation tree of forest
func New(forest *Forest) *FileSystem {
	if forest == nil {
		forest = &Forest{}
	}

	fsys := &FileSystem{
		forest:     forest.FileSystem,
		recycleBin: forest.RecycleBin,
		byID:       make(map[string]*types.Entry),
		index:      NewIndex(),
		loadedAt:   time.Now(),
	}

	fsys.register(fsys.forest)
	fsys.register(fsys.recycleBin)
	fsys.index.Build(fsys.forest)
	fsys.catalog = NewCatalog(fsys.forest, fsys.recycleBin)
	fsys.navigation = DefaultNavigation(fsys.forest, fsys.recycleBin)

	logging.Named("desktopfs").Debug("file system built",
		zap.Int("entries", len(fsys.byID)),
		zap.Int("indexed", fsys.index.Len()),
		zap.Int("sensitive_buckets", fsys.index.BucketCount(true)),
		zap.Int("insensitive_buckets", fsys.index.BucketCount(false)),
	)
	return fsys
}

// register records entries by id, the first declaration of an id wins
func (fsys *FileSystem) register(entries []*types.Entry) {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if _, exists := fsys.byID[entry.ID]; !exists {
			fsys.byID[entry.ID] = entry
		}
		fsys.register(entry.Children)
	}
}

// Forest returns the top-level entries
func (fsys *FileSystem) Forest() []*types.Entry {
	return slices.Clone(fsys.forest)
}

// RecycleBin returns the recycle-bin entries
func (fsys *FileSystem) RecycleBin() []*types.Entry {
	return slices.Clone(fsys.recycleBin)
}

// Index returns the search index
func (fsys *FileSystem) Index() *Index {
	return fsys.index
}

// GetEntry returns the entry with id
func (fsys *FileSystem) GetEntry(id string) (*types.Entry, error) {
	entry, ok := fsys.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entry, nil
}

// GetFolderChildren returns a copy of the children of a folder, drive, or cd-rom.
// "root" lists the forest and "recycle-bin" the recycle bin. Unknown ids and
// files yield an empty list.
func (fsys *FileSystem) GetFolderChildren(id string) []*types.Entry {
	switch id {
	case RootID:
		return fsys.Forest()
	case RecycleBinID:
		return fsys.RecycleBin()
	}

	entry, ok := fsys.byID[id]
	if !ok || !entry.Kind.IsContainer() {
		return []*types.Entry{}
	}
	children := make([]*types.Entry, len(entry.Children))
	copy(children, entry.Children)
	return children
}

// GetFileContent returns the content of a file entry
func (fsys *FileSystem) GetFileContent(id string) (string, error) {
	entry, ok := fsys.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if entry.Kind != types.KindFile {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, id)
	}
	return entry.Content, nil
}

// GetMetadata returns the metadata record of id
func (fsys *FileSystem) GetMetadata(id string) (types.Metadata, bool) {
	return fsys.catalog.Get(id)
}

// GetNavigationTree returns the live navigation roots.
// Use ToggleNavigation to flip expand flags when shared between goroutines.
func (fsys *FileSystem) GetNavigationTree() []*types.NavigationLink {
	return fsys.navigation
}

// NavigationSnapshot returns a deep copy of the navigation roots
func (fsys *FileSystem) NavigationSnapshot() []*types.NavigationLink {
	fsys.navMu.Lock()
	defer fsys.navMu.Unlock()

	return cloneLinks(fsys.navigation)
}

// ToggleNavigation flips the expand flag of the link navigating to targetID
func (fsys *FileSystem) ToggleNavigation(targetID string) (bool, error) {
	fsys.navMu.Lock()
	defer fsys.navMu.Unlock()

	for _, root := range fsys.navigation {
		if link := root.Find(targetID); link != nil {
			link.Toggle()
			return link.IsExpanded, nil
		}
	}
	return false, fmt.Errorf("%w: %s", ErrNotFound, targetID)
}

// SearchExact finds an entry by its full name
func (fsys *FileSystem) SearchExact(name string, caseSensitive bool) types.SearchResult {
	return fsys.index.SearchExact(name, caseSensitive)
}

// SearchBySubstring finds entries whose name contains query
func (fsys *FileSystem) SearchBySubstring(query string, caseSensitive bool) []types.SearchResult {
	return fsys.index.SearchBySubstring(query, caseSensitive)
}

// DisplayPath renders a search result path as "/Drive/Folder/Name"
func (fsys *FileSystem) DisplayPath(result types.SearchResult) string {
	return utils.JoinPath(result.Path...)
}

// AsFS returns a read-only fs.FS over the forest
func (fsys *FileSystem) AsFS() fs.FS {
	return newEntryFS(fsys.forest, fsys.loadedAt)
}

// SortEntries returns a sorted copy of entries. Containers always precede
// files; SortName orders by name, SortKind by kind then name.
func SortEntries(entries []*types.Entry, by SortKey) []*types.Entry {
	sorted := slices.Clone(entries)
	if by == SortNone {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b *types.Entry) int {
		if a.Kind.IsContainer() != b.Kind.IsContainer() {
			if a.Kind.IsContainer() {
				return -1
			}
			return 1
		}
		if by == SortKind {
			if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return sorted
}

// ParseSortKey validates a sort key
func ParseSortKey(value string) (SortKey, error) {
	switch key := SortKey(value); key {
	case SortNone, SortName, SortKind:
		return key, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q", value)
}

func cloneLinks(links []*types.NavigationLink) []*types.NavigationLink {
	if links == nil {
		return nil
	}
	cloned := make([]*types.NavigationLink, len(links))
	for i, link := range links {
		c := *link
		c.Path = slices.Clone(link.Path)
		c.Children = cloneLinks(link.Children)
		cloned[i] = &c
	}
	return cloned
}
