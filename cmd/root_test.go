package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "portfolio ") {
		t.Errorf("unexpected version output %q", got)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "term", "version"} {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("expected %s subcommand, got %v (%v)", name, c, err)
		}
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	if err := os.WriteFile(path, []byte("theme: sepia\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	old := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = old })

	if _, err := loadConfig(); err == nil || !strings.Contains(err.Error(), "sepia") {
		t.Errorf("expected invalid theme error, got %v", err)
	}
}
