package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Default should be "dev"
	v := GetVersion()
	if v != "dev" {
		t.Errorf("expected default version dev, got %s", v)
	}
}

func TestGetBuild(t *testing.T) {
	b := GetBuild()
	if b != "unknown" {
		t.Errorf("expected default build unknown, got %s", b)
	}
}

func TestGetGitCommit(t *testing.T) {
	gc := GetGitCommit()
	if gc != "unknown" {
		t.Errorf("expected default git commit unknown, got %s", gc)
	}
}

func TestGetFullVersion(t *testing.T) {
	fv := GetFullVersion()
	expected := "dev (build: unknown, commit: unknown)"
	if fv != expected {
		t.Errorf("expected full version %q, got %q", expected, fv)
	}
}

func TestLoadVersionFile_FillsDefaultsOnly(t *testing.T) {
	origVersion, origBuild, origCommit := Version, Build, GitCommit
	t.Cleanup(func() {
		Version, Build, GitCommit = origVersion, origBuild, origCommit
	})

	Version = "dev"
	Build = "from-ldflags"
	GitCommit = "unknown"

	path := filepath.Join(t.TempDir(), ".version")
	content := "# build metadata\nversion: 1.2.3\nbuild: 20261018\ncommit: abc1234\nnot a pair\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loadVersionFile(path)

	if Version != "1.2.3" {
		t.Errorf("expected version 1.2.3 from file, got %s", Version)
	}
	if Build != "from-ldflags" {
		t.Errorf("ldflags build should not be overwritten, got %s", Build)
	}
	if GitCommit != "abc1234" {
		t.Errorf("expected commit abc1234 from file, got %s", GitCommit)
	}
}

func TestLoadVersionFile_MissingFileIsIgnored(t *testing.T) {
	loadVersionFile(filepath.Join(t.TempDir(), "absent"))
	if GetVersion() == "" {
		t.Error("version should never be empty")
	}
}
