package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestInitScaffoldsProject(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "my-app")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"init", project, "--platforms", "ios,web", "--no-git"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	for _, dir := range []string{
		"specs/models", "specs/api", "specs/themes", "specs/components",
		"generated/ios", "generated/web",
	} {
		if st, err := os.Stat(filepath.Join(project, dir)); err != nil || !st.IsDir() {
			t.Errorf("missing directory %q: %v", dir, err)
		}
	}
	if _, err := os.Stat(filepath.Join(project, "generated", "android")); !os.IsNotExist(err) {
		t.Errorf("android output dir created for unselected platform")
	}

	data, err := os.ReadFile(filepath.Join(project, manifestFileName))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if m.Name != "my-app" {
		t.Errorf("manifest name = %q", m.Name)
	}
	if m.Version != "1.0.0" {
		t.Errorf("manifest version = %q", m.Version)
	}
	if len(m.Platforms) != 2 || m.Platforms[0] != "ios" || m.Platforms[1] != "web" {
		t.Errorf("manifest platforms = %v", m.Platforms)
	}
	if m.Specs.Local != "./specs" {
		t.Errorf("manifest specs.local = %q", m.Specs.Local)
	}
	if _, err := os.Stat(filepath.Join(project, ".git")); !os.IsNotExist(err) {
		t.Errorf("--no-git must skip repository initialization")
	}
}

func TestInitRecordsFlags(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "flagged")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"init", project,
		"--no-git",
		"--template", "starter",
		"--package-manager", "pnpm",
		"--specs-repo", "https://example.com/specs.git",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(project, manifestFileName))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if m.Template != "starter" {
		t.Errorf("template = %q", m.Template)
	}
	if m.PackageManager != "pnpm" {
		t.Errorf("packageManager = %q", m.PackageManager)
	}
	if m.Specs.Repo != "https://example.com/specs.git" {
		t.Errorf("specs.repo = %q", m.Specs.Repo)
	}
}

func TestInitRefusesExistingProject(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "taken")
	if err := os.MkdirAll(project, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(project, manifestFileName), []byte("{}"), 0o644); err != nil {
		t.Fatalf("seed manifest: %v", err)
	}

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"init", project, "--no-git"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected error for existing project")
	}
	if _, ok := err.(usageError); !ok {
		t.Fatalf("expected usage error, got %T: %v", err, err)
	}
}
