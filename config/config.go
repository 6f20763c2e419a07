package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Categories []CategoryConfig `json:"categories"`
	Output     OutputConfig     `json:"output"`
	Git        GitConfig        `json:"git"`
}

// CategoryConfig is one category table entry. Entries extend the
// built-in table: a known key overrides its title, a new key is
// appended.
type CategoryConfig struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// OutputConfig holds document output configuration.
type OutputConfig struct {
	File    string `json:"file"`    // Default: "RELEASE_NOTES.md"
	Format  string `json:"format"`  // Default: "markdown"
	RepoURL string `json:"repoURL"` // Base URL for commit links
}

// GitConfig holds repository access configuration.
type GitConfig struct {
	Backend    string `json:"backend"`    // "cli" (git executable) or "gogit"
	TagPattern string `json:"tagPattern"` // Doublestar pattern restricting candidate tags
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			File:    "RELEASE_NOTES.md",
			Format:  "markdown",
			RepoURL: "https://github.com/unknown/unknown",
		},
		Git: GitConfig{
			Backend: "cli",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".relnotes.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".relnotes.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
