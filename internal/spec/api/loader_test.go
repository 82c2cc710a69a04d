package api

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()
	path := writeSpec(t, "spec.yaml", sampleSpec)

	doc, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Info == nil || doc.Info.Title != "Pet Store" {
		t.Fatalf("unexpected document: %+v", doc.Info)
	}
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()
	path := writeSpec(t, "spec.json", `{
  "openapi": "3.0.0",
  "info": {"title": "Tiny", "version": "0.1.0"},
  "paths": {}
}`)

	doc, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Info.Title != "Tiny" {
		t.Fatalf("title: got %q", doc.Info.Title)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	var se *SpecError
	if !errors.As(err, &se) || se.Code != InputError {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestLoad_SwaggerV2Rejected(t *testing.T) {
	t.Parallel()
	path := writeSpec(t, "v2.yaml", `swagger: "2.0"
info: {title: Old, version: "1.0"}
paths: {}`)

	_, err := Load(context.Background(), path)
	var se *SpecError
	if !errors.As(err, &se) || se.Code != ParseError {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()
	_, err := Load(context.Background(), "   ")
	if err == nil {
		t.Fatalf("expected error for empty path")
	}
}
