package desktopfs

import "github.com/Project-Sylos/Desktop98/internal/types"

// Navigation root icons
const (
	RootIconURL       = "/assets/icons/desktop/computer_explorer.png"
	RecycleBinIconURL = "/assets/icons/desktop/recycle_bin_full.png"
)

// BuildNavigation returns a root link for forest. Every non-file entry
// becomes a collapsed navigation link one level below its parent.
func BuildNavigation(forest []*types.Entry, rootID, rootName, rootIcon string, expanded bool) *types.NavigationLink {
	rootPath := []types.BreadCrumb{{ID: rootID, Name: rootName}}
	return &types.NavigationLink{
		LinkType:   types.LinkNavigation,
		IconURL:    rootIcon,
		Name:       rootName,
		TargetID:   rootID,
		IsExpanded: expanded,
		Level:      0,
		Children:   navigationChildren(forest, rootPath, 1),
		Path:       rootPath,
	}
}

// DefaultNavigation returns the "My Computer" and "Recycle Bin" roots
func DefaultNavigation(forest, recycleBin []*types.Entry) []*types.NavigationLink {
	return []*types.NavigationLink{
		BuildNavigation(forest, RootID, RootName, RootIconURL, true),
		BuildNavigation(recycleBin, RecycleBinID, RecycleName, RecycleBinIconURL, false),
	}
}

func navigationChildren(entries []*types.Entry, parentPath []types.BreadCrumb, level int) []*types.NavigationLink {
	links := []*types.NavigationLink{}
	for _, entry := range entries {
		if entry == nil || entry.Kind == types.KindFile {
			continue
		}

		path := make([]types.BreadCrumb, len(parentPath)+1)
		copy(path, parentPath)
		path[len(parentPath)] = types.BreadCrumb{ID: entry.ID, Name: entry.Name}

		links = append(links, &types.NavigationLink{
			LinkType:   types.LinkNavigation,
			IconURL:    entry.IconURL,
			Name:       entry.Name,
			TargetID:   entry.ID,
			IsExpanded: false,
			Level:      level,
			Children:   navigationChildren(entry.Children, path, level+1),
			Path:       path,
		})
	}
	return links
}
