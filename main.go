package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/spf13/pflag"
)

func main() {
	configFlag := pflag.StringP("config", "c", "", "Configuration file path (default: built-in config, in-memory store)")
	queryFlag := pflag.StringP("search", "s", "doc", "Substring to search for in the demo")
	helpFlag := pflag.BoolP("help", "h", false, "Show help")

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Desktop98 - Simulated Desktop Environment")
		fmt.Fprintln(os.Stderr, "=========================================")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  go run main.go [options]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		pflag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "API Server:")
		fmt.Fprintln(os.Stderr, "  go run cmd/api/main.go [--config config.json]")
	}
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	fmt.Println("Desktop98 - SDK Demo")
	fmt.Println("====================")
	fmt.Println("For the API server, run: go run cmd/api/main.go")
	fmt.Println()

	runDemo(*configFlag, *queryFlag)
}

func openDesktop(configPath string) (*sdk.Desktop, error) {
	if configPath == "" {
		fmt.Println("Using the default configuration with an in-memory store")
		return sdk.NewWithDefaults()
	}
	fmt.Printf("Loading configuration from: %s\n", configPath)
	return sdk.New(configPath)
}

func runDemo(configPath, query string) {
	desktop, err := openDesktop(configPath)
	if err != nil {
		log.Fatalf("Failed to initialize desktop: %v", err)
	}
	defer desktop.Close()

	cfg := desktop.GetConfig()
	fmt.Printf("Configuration loaded: viewport=%dx%d, theme=%s\n",
		cfg.Desktop.ViewportWidth, cfg.Desktop.ViewportHeight, desktop.Theme().Name)

	// File system
	fsys := desktop.FileSystem()
	fmt.Println("\nMy Computer:")
	for _, entry := range fsys.GetFolderChildren(sdk.RootID) {
		metadata, _ := fsys.GetMetadata(entry.ID)
		children := 0
		if metadata.ChildrenCount != nil {
			children = *metadata.ChildrenCount
		}
		fmt.Printf("  %-20s %-6s %d items\n", entry.Name, entry.Kind, children)
	}
	fmt.Printf("Recycle Bin: %d items\n", len(fsys.RecycleBin()))
	fmt.Printf("Search index: %d entries\n", fsys.Index().Len())

	// Search
	fmt.Printf("\nSearching for %q:\n", query)
	results := desktop.Search(query, false)
	for _, result := range results {
		fmt.Printf("  %s\n", fsys.DisplayPath(result))
	}
	if len(results) == 0 {
		fmt.Println("  no matches")
	}

	// Windows
	fmt.Println("\nOpening windows...")
	if _, err := desktop.OpenIcon("my-computer"); err != nil {
		log.Printf("Failed to open My Computer: %v", err)
	}
	if _, err := desktop.OpenEntry("resume"); err != nil {
		log.Printf("Failed to open resume: %v", err)
	}
	if _, err := desktop.OpenStartMenuItem("find"); err != nil {
		log.Printf("Failed to open Find: %v", err)
	}
	desktop.Windows().Minimize("file-explorer")

	fmt.Println("\nTaskbar:")
	for _, item := range desktop.Taskbar() {
		state := ""
		switch {
		case item.Active:
			state = " (active)"
		case item.Minimized:
			state = " (minimized)"
		}
		fmt.Printf("  [%s]%s\n", item.Title, state)
	}

	fmt.Println("\nDesktop98 SDK demo completed successfully!")
	fmt.Println("\nTo start the API server, run:")
	fmt.Println("  go run cmd/api/main.go")
}
