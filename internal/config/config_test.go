package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.MFTBufferSize != 4*1024*1024 {
		t.Fatalf("MFTBufferSize = %d, want 4MiB", cfg.MFTBufferSize)
	}
	if cfg.JournalBufferSize != 8*1024*1024 {
		t.Fatalf("JournalBufferSize = %d, want 8MiB", cfg.JournalBufferSize)
	}
	if cfg.MaxResolutionDepth != 100 {
		t.Fatalf("MaxResolutionDepth = %d, want 100", cfg.MaxResolutionDepth)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error for a missing file: %v", err)
	}
	want := Default()
	if cfg.MFTBufferSize != want.MFTBufferSize || cfg.JournalBufferSize != want.JournalBufferSize ||
		cfg.MaxResolutionDepth != want.MaxResolutionDepth || len(cfg.DefaultExcludes) != 0 {
		t.Fatalf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadParsesHumanReadableByteSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "mftBufferSize: 16MiB\nmaxResolutionDepth: 50\ndefaultExcludes:\n  - \"C:\\\\Windows\\\\**\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MFTBufferSize != 16*1024*1024 {
		t.Fatalf("MFTBufferSize = %d, want 16MiB", cfg.MFTBufferSize)
	}
	if cfg.MaxResolutionDepth != 50 {
		t.Fatalf("MaxResolutionDepth = %d, want 50", cfg.MaxResolutionDepth)
	}
	if cfg.JournalBufferSize != 8*1024*1024 {
		t.Fatalf("JournalBufferSize = %d, want default 8MiB when unspecified", cfg.JournalBufferSize)
	}
	if len(cfg.DefaultExcludes) != 1 {
		t.Fatalf("DefaultExcludes = %v, want 1 entry", cfg.DefaultExcludes)
	}
}

func TestLoadParsesPlainIntegerByteSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("journalBufferSize: 2048\n"), 0o644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.JournalBufferSize != 2048 {
		t.Fatalf("JournalBufferSize = %d, want 2048", cfg.JournalBufferSize)
	}
}

func TestLoadDotEnvMissingFileIsNotAnError(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("unexpected error for a missing .env file: %v", err)
	}
}
