package cli

import (
	"fmt"
	"strings"

	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// specKind identifies one generator family.
type specKind string

const (
	kindModel     specKind = "model"
	kindAPIClient specKind = "api-client"
	kindTheme     specKind = "theme"
	kindComponent specKind = "component"
	kindPlugin    specKind = "plugin"
)

// supportMatrix lists the targets each generator family can emit. A requested
// platform outside this set is skipped with a warning, never an error on its
// own.
var supportMatrix = map[specKind][]typeconv.Target{
	kindModel:     {typeconv.IOS, typeconv.Android, typeconv.Web},
	kindAPIClient: {typeconv.IOS, typeconv.Android, typeconv.Web},
	kindTheme:     {typeconv.IOS, typeconv.Android, typeconv.Web},
	kindComponent: {typeconv.IOS, typeconv.Web},
	kindPlugin:    {typeconv.IOS},
}

func supportsTarget(kind specKind, target typeconv.Target) bool {
	for _, t := range supportMatrix[kind] {
		if t == target {
			return true
		}
	}
	return false
}

// resolvePlatforms turns the --platform value into concrete targets:
// "all" expands to every known target, an empty value falls back to the
// manifest's platform list and then to all targets. Unknown names are usage
// errors; support filtering happens later so skips can warn per platform.
func resolvePlatforms(value string, manifest *Manifest) ([]typeconv.Target, error) {
	value = strings.TrimSpace(value)
	if value == "" && manifest != nil && len(manifest.Platforms) > 0 {
		value = strings.Join(manifest.Platforms, ",")
	}
	if value == "" || strings.EqualFold(value, "all") {
		return typeconv.AllTargets(), nil
	}

	var targets []typeconv.Target
	seen := map[typeconv.Target]bool{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		target, ok := typeconv.ParseTarget(part)
		if !ok {
			return nil, newUsageError(fmt.Sprintf("unknown platform %q (allowed: ios, android, web, all)", part))
		}
		if !seen[target] {
			seen[target] = true
			targets = append(targets, target)
		}
	}
	if len(targets) == 0 {
		return typeconv.AllTargets(), nil
	}
	return targets, nil
}
