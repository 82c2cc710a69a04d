package cli

import (
	"errors"
	"testing"

	"github.com/cuppalabs/cuppa/internal/typeconv"
)

func TestResolvePlatformsAll(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"all", "ALL", ""} {
		got, err := resolvePlatforms(value, nil)
		if err != nil {
			t.Fatalf("resolvePlatforms(%q): %v", value, err)
		}
		if len(got) != 3 {
			t.Errorf("resolvePlatforms(%q) = %v, want all targets", value, got)
		}
	}
}

func TestResolvePlatformsList(t *testing.T) {
	t.Parallel()

	got, err := resolvePlatforms("ios, web, ios", nil)
	if err != nil {
		t.Fatalf("resolvePlatforms: %v", err)
	}
	want := []typeconv.Target{typeconv.IOS, typeconv.Web}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResolvePlatformsManifestFallback(t *testing.T) {
	t.Parallel()

	m := &Manifest{Platforms: []string{"android"}}
	got, err := resolvePlatforms("", m)
	if err != nil {
		t.Fatalf("resolvePlatforms: %v", err)
	}
	if len(got) != 1 || got[0] != typeconv.Android {
		t.Errorf("got %v, want [android]", got)
	}

	// An explicit flag still wins over the manifest.
	got, err = resolvePlatforms("web", m)
	if err != nil {
		t.Fatalf("resolvePlatforms: %v", err)
	}
	if len(got) != 1 || got[0] != typeconv.Web {
		t.Errorf("got %v, want [web]", got)
	}
}

func TestResolvePlatformsUnknown(t *testing.T) {
	t.Parallel()

	_, err := resolvePlatforms("windows", nil)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestSupportMatrix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind   specKind
		target typeconv.Target
		want   bool
	}{
		{kindModel, typeconv.Android, true},
		{kindAPIClient, typeconv.Web, true},
		{kindTheme, typeconv.IOS, true},
		{kindComponent, typeconv.Android, false},
		{kindComponent, typeconv.Web, true},
		{kindPlugin, typeconv.IOS, true},
		{kindPlugin, typeconv.Android, false},
		{kindPlugin, typeconv.Web, false},
	}
	for _, tc := range cases {
		if got := supportsTarget(tc.kind, tc.target); got != tc.want {
			t.Errorf("supportsTarget(%s, %s) = %v, want %v", tc.kind, tc.target, got, tc.want)
		}
	}
}
