package main

import (
	"os"

	"github.com/citekit/citekit/internal/config"
	"github.com/citekit/citekit/internal/registry"
)

// requireWorkspace locates the enclosing workspace or exits with a
// configuration error.
func requireWorkspace() string {
	start, exitCode := getStartDir()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindWorkspace(start)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return root
}

// openRegistry opens the citation store for a workspace root.
func openRegistry(root string) (*registry.Registry, error) {
	return registry.Open(config.DBPath(root))
}

// loadConfig loads workspace config or exits with a configuration error.
func loadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
