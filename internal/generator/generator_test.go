package generator

import (
	"reflect"
	"testing"

	"github.com/Project-Sylos/Desktop98/internal/types"
)

func testSyntheticConfig() types.SyntheticConfig {
	return types.SyntheticConfig{
		Enabled:    true,
		DriveID:    "syntheticDriveS",
		DriveName:  "Synthetic (S:)",
		MaxDepth:   3,
		MinFolders: 1,
		MaxFolders: 3,
		MinFiles:   2,
		MaxFiles:   5,
		Seed:       42,
	}
}

// TestRNG tests the random number generator functionality
func TestRNG(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)

	for i := 0; i < 100; i++ {
		val1 := rng1.Intn(1000)
		val2 := rng2.Intn(1000)
		if val1 != val2 {
			t.Errorf("Same seed should produce same sequence. Iteration %d: got %d and %d", i, val1, val2)
		}
	}

	if NewRNG(1).newID() != NewRNG(1).newID() {
		t.Errorf("Same seed should produce same ids")
	}
}

// TestGenerateDrive tests drive generation
func TestGenerateDrive(t *testing.T) {
	cfg := testSyntheticConfig()

	drive, err := GenerateDrive(cfg)
	if err != nil {
		t.Fatalf("Unexpected error generating drive: %v", err)
	}

	if drive.ID != cfg.DriveID || drive.Name != cfg.DriveName {
		t.Errorf("Expected drive %s/%s, got %s/%s", cfg.DriveID, cfg.DriveName, drive.ID, drive.Name)
	}
	if drive.Kind != types.KindDrive {
		t.Errorf("Expected drive kind, got %s", drive.Kind)
	}
	if drive.Size == nil || *drive.Size <= 0 {
		t.Errorf("Expected positive drive size")
	}

	ids := make(map[string]bool)
	var walk func(entries []*types.Entry, depth int)
	walk = func(entries []*types.Entry, depth int) {
		if depth > cfg.MaxDepth {
			if len(entries) != 0 {
				t.Errorf("Expected no entries below max depth, got %d at depth %d", len(entries), depth)
			}
			return
		}

		var folders, files int
		for _, entry := range entries {
			if ids[entry.ID] {
				t.Errorf("Duplicate id %s", entry.ID)
			}
			ids[entry.ID] = true

			switch entry.Kind {
			case types.KindFolder:
				folders++
				walk(entry.Children, depth+1)
			case types.KindFile:
				files++
				if len(entry.Children) != 0 {
					t.Errorf("File %s should have no children", entry.Name)
				}
				if entry.Content == "" {
					t.Errorf("File %s should have content", entry.Name)
				}
			default:
				t.Errorf("Unexpected kind %s", entry.Kind)
			}
		}
		if folders < cfg.MinFolders || folders > cfg.MaxFolders {
			t.Errorf("Folder count %d outside [%d, %d]", folders, cfg.MinFolders, cfg.MaxFolders)
		}
		if files < cfg.MinFiles || files > cfg.MaxFiles {
			t.Errorf("File count %d outside [%d, %d]", files, cfg.MinFiles, cfg.MaxFiles)
		}
	}
	walk(drive.Children, 1)
}

// TestGenerateDriveDeterminism tests that a seed fully determines the tree
func TestGenerateDriveDeterminism(t *testing.T) {
	cfg := testSyntheticConfig()

	first, err := GenerateDrive(cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateDrive(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Same seed should produce identical drives")
	}

	cfg.Seed = 43
	third, err := GenerateDrive(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(first, third) {
		t.Errorf("Different seeds should produce different drives")
	}
}

// TestValidateConfig tests generator config validation
func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*types.SyntheticConfig)
		expectError bool
	}{
		{name: "valid", mutate: func(*types.SyntheticConfig) {}},
		{name: "no drive id", mutate: func(c *types.SyntheticConfig) { c.DriveID = "" }, expectError: true},
		{name: "zero depth", mutate: func(c *types.SyntheticConfig) { c.MaxDepth = 0 }, expectError: true},
		{name: "inverted folders", mutate: func(c *types.SyntheticConfig) { c.MinFolders, c.MaxFolders = 3, 1 }, expectError: true},
		{name: "negative files", mutate: func(c *types.SyntheticConfig) { c.MinFiles = -1 }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSyntheticConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(cfg)
			if tt.expectError && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.expectError {
				if _, err := GenerateDrive(cfg); err == nil {
					t.Errorf("Expected GenerateDrive to reject invalid config")
				}
			}
		})
	}
}
