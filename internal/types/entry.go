package types

// EntryKind is the kind of a file-system entry
type EntryKind string

// EntryKind constants
const (
	KindFolder EntryKind = "folder"
	KindDrive  EntryKind = "drive"
	KindCdrom  EntryKind = "cdrom"
	KindFile   EntryKind = "file"
)

// IsContainer reports whether entries of this kind may hold children
func (k EntryKind) IsContainer() bool {
	return k == KindFolder || k == KindDrive || k == KindCdrom
}

// IsVolume reports whether the kind is a drive or a cd-rom
func (k EntryKind) IsVolume() bool {
	return k == KindDrive || k == KindCdrom
}

// SizeUnit is the unit of Size and FreeSpace
type SizeUnit string

// SizeUnit constants
const (
	UnitB  SizeUnit = "B"
	UnitKB SizeUnit = "KB"
	UnitMB SizeUnit = "MB"
	UnitGB SizeUnit = "GB"
)

// Valid reports whether u is empty or one of the known units
func (u SizeUnit) Valid() bool {
	switch u {
	case "", UnitB, UnitKB, UnitMB, UnitGB:
		return true
	}
	return false
}

// Entry is one node of the simulated file system.
// A File never has children; identifiers are unique across every forest.
type Entry struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Kind      EntryKind   `json:"type"`
	Icon      string      `json:"icon,omitempty"`
	IconURL   string      `json:"icon_url,omitempty"`
	Children  []*Entry    `json:"children,omitempty"`
	Content   string      `json:"content,omitempty"`
	Size      *float64    `json:"size,omitempty"`
	FreeSpace *float64    `json:"free_space,omitempty"`
	SpaceUnit SizeUnit    `json:"space_unit,omitempty"`
	Action    *LaunchSpec `json:"action,omitempty"`
}

// Metadata is the read-only descriptive record of an entry
type Metadata struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Kind          EntryKind `json:"type"`
	Size          *float64  `json:"size,omitempty"`
	FreeSpace     *float64  `json:"free_space,omitempty"`
	SpaceUnit     SizeUnit  `json:"space_unit,omitempty"`
	ChildrenCount *int      `json:"children_count,omitempty"`
}

// SearchResult pairs an entry with the names from its top-level ancestor down to itself.
// A nil Entry with an empty Path is the not-found sentinel.
type SearchResult struct {
	Entry *Entry   `json:"entry"`
	Path  []string `json:"path"`
}

// Found reports whether the result holds an entry
func (r SearchResult) Found() bool {
	return r.Entry != nil
}

// BreadCrumb is one segment of a navigation path
type BreadCrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NavigationLinkType distinguishes folder links from action links
type NavigationLinkType string

// NavigationLinkType constants
const (
	LinkAction     NavigationLinkType = "action"
	LinkNavigation NavigationLinkType = "navigation"
)

// NavigationLink is a node of the side-bar navigation tree
type NavigationLink struct {
	LinkType   NavigationLinkType `json:"link_type"`
	IconURL    string             `json:"icon_url"`
	Name       string             `json:"name"`
	TargetID   string             `json:"dst_directory_id,omitempty"`
	Action     *LaunchSpec        `json:"action,omitempty"`
	IsExpanded bool               `json:"is_expanded"`
	Level      int                `json:"level"`
	Children   []*NavigationLink  `json:"children"`
	Path       []BreadCrumb       `json:"path"`
}

// Toggle flips the expand/collapse flag in place
func (l *NavigationLink) Toggle() {
	l.IsExpanded = !l.IsExpanded
}

// Find returns the first link in this subtree navigating to targetID
func (l *NavigationLink) Find(targetID string) *NavigationLink {
	if l == nil {
		return nil
	}
	if l.LinkType == LinkNavigation && l.TargetID == targetID {
		return l
	}
	for _, child := range l.Children {
		if found := child.Find(targetID); found != nil {
			return found
		}
	}
	return nil
}
