package desktopfs

import "github.com/Project-Sylos/Desktop98/internal/types"

// Synthetic root identifiers
const (
	RootID       = "root"
	RootName     = "My Computer"
	RecycleBinID = "recycle-bin"
	RecycleName  = "Recycle Bin"
)

// Catalog maps every entry identifier to its metadata record
type Catalog struct {
	records map[string]types.Metadata
}

// NewCatalog records the two synthetic roots, then every entry of both forests in pre-order
func NewCatalog(forest, recycleBin []*types.Entry) *Catalog {
	c := &Catalog{records: make(map[string]types.Metadata)}

	c.records[RootID] = types.Metadata{
		ID:            RootID,
		Name:          RootName,
		Kind:          types.KindFolder,
		ChildrenCount: intPtr(len(forest)),
	}
	c.records[RecycleBinID] = types.Metadata{
		ID:            RecycleBinID,
		Name:          RecycleName,
		Kind:          types.KindFolder,
		ChildrenCount: intPtr(len(recycleBin)),
	}

	c.visit(forest)
	c.visit(recycleBin)
	return c
}

func (c *Catalog) visit(entries []*types.Entry) {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		c.records[entry.ID] = metadataOf(entry)
		if len(entry.Children) > 0 {
			c.visit(entry.Children)
		}
	}
}

// Get returns the metadata of id. A false result means nothing is selected.
func (c *Catalog) Get(id string) (types.Metadata, bool) {
	record, ok := c.records[id]
	return record, ok
}

// Len returns the number of records, synthetic roots included
func (c *Catalog) Len() int {
	return len(c.records)
}

func metadataOf(entry *types.Entry) types.Metadata {
	record := types.Metadata{
		ID:        entry.ID,
		Name:      entry.Name,
		Kind:      entry.Kind,
		Size:      entry.Size,
		FreeSpace: entry.FreeSpace,
		SpaceUnit: entry.SpaceUnit,
	}
	// A nil children field has no count; an explicit empty list counts zero
	if entry.Children != nil {
		record.ChildrenCount = intPtr(len(entry.Children))
	}
	return record
}

func intPtr(n int) *int {
	return &n
}
