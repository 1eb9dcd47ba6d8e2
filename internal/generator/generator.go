// Package generator builds seeded synthetic drives for the simulated file system.
package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/google/uuid"
)

// Icons used for synthetic entries
const (
	driveIconURL  = "/assets/icons/others/hard_disk_drive-32.png"
	folderIconURL = "/assets/icons/files/folder.png"
	fileIconURL   = "/assets/icons/files/file.png"
)

// RNG wraps math/rand.Rand for seeded random generation
type RNG struct {
	*rand.Rand
}

// NewRNG creates a new seeded random number generator
func NewRNG(seed int64) *RNG {
	return &RNG{
		Rand: rand.New(rand.NewSource(seed)),
	}
}

// newID draws a uuid from the seeded stream so ids repeat across runs
func (r *RNG) newID() string {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// math/rand never fails to read
		panic(err)
	}
	return id.String()
}

// GenerateDrive builds a drive whose subtree is fully determined by cfg.Seed
func GenerateDrive(cfg types.SyntheticConfig) (*types.Entry, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	rng := NewRNG(cfg.Seed)
	children, bytes := generateChildren(1, rng, cfg)

	// sizes are reported in KB, rounded to two places
	size := math.Round(float64(bytes)/1024*100) / 100
	free := 0.0

	return &types.Entry{
		ID:        cfg.DriveID,
		Name:      cfg.DriveName,
		Kind:      types.KindDrive,
		IconURL:   driveIconURL,
		Children:  children,
		Size:      &size,
		FreeSpace: &free,
		SpaceUnit: types.UnitKB,
	}, nil
}

// generateChildren returns the entries of one level and their total content size
func generateChildren(depth int, rng *RNG, cfg types.SyntheticConfig) ([]*types.Entry, int) {
	children := []*types.Entry{}
	if depth > cfg.MaxDepth {
		return children, 0
	}

	var total int

	folderCount := rng.Intn(cfg.MaxFolders-cfg.MinFolders+1) + cfg.MinFolders
	for i := 0; i < folderCount; i++ {
		folder := &types.Entry{
			ID:      rng.newID(),
			Name:    fmt.Sprintf("folder_%d", i+1),
			Kind:    types.KindFolder,
			IconURL: folderIconURL,
		}
		var size int
		folder.Children, size = generateChildren(depth+1, rng, cfg)
		total += size
		children = append(children, folder)
	}

	fileCount := rng.Intn(cfg.MaxFiles-cfg.MinFiles+1) + cfg.MinFiles
	for i := 0; i < fileCount; i++ {
		name := fmt.Sprintf("file_%d.txt", i+1)
		file := &types.Entry{
			ID:        rng.newID(),
			Name:      name,
			Kind:      types.KindFile,
			IconURL:   fileIconURL,
			Content:   GenerateContent(rng, name),
			SpaceUnit: types.UnitB,
		}
		size := float64(len(file.Content))
		file.Size = &size
		total += len(file.Content)
		children = append(children, file)
	}

	return children, total
}

// ValidateConfig validates the generator configuration
func ValidateConfig(cfg types.SyntheticConfig) error {
	if cfg.DriveID == "" || cfg.DriveName == "" {
		return fmt.Errorf("synthetic drive needs an id and a name")
	}
	if cfg.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1")
	}
	if cfg.MinFolders < 0 || cfg.MaxFolders < cfg.MinFolders {
		return fmt.Errorf("invalid folder count range: min=%d, max=%d", cfg.MinFolders, cfg.MaxFolders)
	}
	if cfg.MinFiles < 0 || cfg.MaxFiles < cfg.MinFiles {
		return fmt.Errorf("invalid file count range: min=%d, max=%d", cfg.MinFiles, cfg.MaxFiles)
	}
	return nil
}
