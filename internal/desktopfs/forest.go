package desktopfs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Project-Sylos/Desktop98/internal/types"
)

//go:embed default_forest.json
var defaultForest []byte

// Forest is the declared content of the simulated machine
type Forest struct {
	FileSystem []*types.Entry `json:"file_system"`
	RecycleBin []*types.Entry `json:"recycle_bin"`
}

// LoadForest decodes a forest document
func LoadForest(r io.Reader) (*Forest, error) {
	var forest Forest
	if err := json.NewDecoder(r).Decode(&forest); err != nil {
		return nil, fmt.Errorf("failed to decode forest: %w", err)
	}

	if err := checkEntries(forest.FileSystem); err != nil {
		return nil, err
	}
	if err := checkEntries(forest.RecycleBin); err != nil {
		return nil, err
	}
	return &forest, nil
}

// LoadForestFile decodes the forest document at path
func LoadForestFile(path string) (*Forest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open forest file: %w", err)
	}
	defer file.Close()

	return LoadForest(file)
}

// DefaultForest returns a fresh copy of the embedded forest
func DefaultForest() *Forest {
	forest, err := LoadForest(bytes.NewReader(defaultForest))
	if err != nil {
		panic(fmt.Sprintf("embedded forest is invalid: %v", err))
	}
	return forest
}

// checkEntries rejects unknown kinds and units.
// Tree shape - files with children, duplicate ids - remains a caller precondition.
func checkEntries(entries []*types.Entry) error {
	for _, entry := range entries {
		if entry == nil {
			return fmt.Errorf("forest contains a null entry")
		}
		switch entry.Kind {
		case types.KindFolder, types.KindDrive, types.KindCdrom, types.KindFile:
		default:
			return fmt.Errorf("entry %s has unknown type %q", entry.ID, entry.Kind)
		}
		if !entry.SpaceUnit.Valid() {
			return fmt.Errorf("entry %s has unknown space unit %q", entry.ID, entry.SpaceUnit)
		}
		if err := checkEntries(entry.Children); err != nil {
			return err
		}
	}
	return nil
}
