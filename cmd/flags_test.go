package cmd

import (
	"testing"

	"github.com/alamaby/relnotes/config"
	"github.com/alamaby/relnotes/internal/output"
)

func TestDocumentPath(t *testing.T) {
	tests := []struct {
		name        string
		format      output.OutputFormat
		flagValue   string
		configValue string
		want        string
	}{
		{"console always stdout", output.FormatConsole, "notes.md", "RELEASE_NOTES.md", ""},
		{"flag wins", output.FormatMarkdown, "notes.md", "RELEASE_NOTES.md", "notes.md"},
		{"config fallback", output.FormatMarkdown, "", "RELEASE_NOTES.md", "RELEASE_NOTES.md"},
		{"json uses flag", output.FormatJSON, "release.json", "RELEASE_NOTES.md", "release.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := documentPath(tt.format, tt.flagValue, tt.configValue)
			if got != tt.want {
				t.Errorf("documentPath(%v, %q, %q) = %q, want %q",
					tt.format, tt.flagValue, tt.configValue, got, tt.want)
			}
		})
	}
}

func TestCategoryTable_DefaultsWhenUnconfigured(t *testing.T) {
	table := categoryTable(config.DefaultConfig())
	if got := table.Title("feat"); got != "Features" {
		t.Errorf("Title(feat) = %q", got)
	}
}

func TestCategoryTable_ConfigExtendsDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Categories = []config.CategoryConfig{
		{Key: "feat", Title: "New Features"},
		{Key: "security", Title: "Security"},
	}

	table := categoryTable(cfg)
	if got := table.Title("feat"); got != "New Features" {
		t.Errorf("Title(feat) = %q, want override", got)
	}
	if got := table.Title("security"); got != "Security" {
		t.Errorf("Title(security) = %q, want appended entry", got)
	}
	if got := table.Title("fix"); got != "Bug Fixes" {
		t.Errorf("Title(fix) = %q, want untouched default", got)
	}
}

func TestApp_HasCommands(t *testing.T) {
	app := App()
	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"generate", "tags"} {
		if !names[want] {
			t.Errorf("command %q missing", want)
		}
	}
}
