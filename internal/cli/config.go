package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// manifestFileName is the project manifest init writes and every command
// looks for when --config is not given.
const manifestFileName = "cuppa.config.json"

// Manifest is the cuppa.config.json project file.
type Manifest struct {
	Name           string             `json:"name"`
	Version        string             `json:"version"`
	Platforms      []string           `json:"platforms"`
	Specs          ManifestSpecs      `json:"specs"`
	Generation     ManifestGeneration `json:"generation"`
	Plugins        []string           `json:"plugins"`
	Template       string             `json:"template,omitempty"`
	PackageManager string             `json:"packageManager,omitempty"`
}

// ManifestSpecs locates the spec documents.
type ManifestSpecs struct {
	Local string `json:"local"`
	Repo  string `json:"repo,omitempty"`
}

// ManifestGeneration holds the per-kind output directories.
type ManifestGeneration struct {
	Models string `json:"models"`
	API    string `json:"api"`
	Theme  string `json:"theme"`
}

func defaultManifest(name string) *Manifest {
	return &Manifest{
		Name:      name,
		Version:   "1.0.0",
		Platforms: []string{"ios", "android", "web"},
		Specs:     ManifestSpecs{Local: "./specs"},
		Generation: ManifestGeneration{
			Models: "./generated",
			API:    "./generated",
			Theme:  "./generated",
		},
		Plugins: []string{},
	}
}

// loadManifest reads the manifest at path. An empty path falls back to
// ./cuppa.config.json; a missing fallback is not an error, a missing explicit
// path is.
func loadManifest(path string) (*Manifest, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = manifestFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, newUsageError(fmt.Sprintf("read config file %q: %v", path, err))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, wrapUsageError(err, fmt.Sprintf("parse config file %q: %v", path, err))
	}
	return &m, nil
}

// envOverrides are CUPPA_* environment variables applied between the manifest
// and the flags.
type envOverrides struct {
	Platform string `envconfig:"PLATFORM"`
	Output   string `envconfig:"OUTPUT"`
}

func loadEnvOverrides() (*envOverrides, error) {
	var env envOverrides
	if err := envconfig.Process("cuppa", &env); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &env, nil
}
