package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cuppalabs/cuppa/internal/emitter/swiftemitter"
	"github.com/cuppalabs/cuppa/internal/emitter/webemitter"
	"github.com/cuppalabs/cuppa/internal/spec/component"
	"github.com/cuppalabs/cuppa/internal/spec/docs"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// ComponentConfig captures the inputs of the component command.
type ComponentConfig struct {
	Name      string
	From      string
	Platform  string
	Output    string
	Category  string
	Overwrite bool

	manifest *Manifest
}

var componentRunner = runComponent

func newComponentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "component [name]",
		Short: "Generate a UI component from a component spec",
		Long:  "Generate a UI component from a component spec file. Without --from, a minimal component is synthesized from the name and category.",
		Example: strings.TrimSpace(`  cuppa component SubmitButton --category input
  cuppa component --from specs/components/button.yaml --platform web`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &ComponentConfig{Output: "./generated", Category: "custom"}
			if len(args) > 0 {
				cfg.Name = strings.TrimSpace(args[0])
			}

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg.manifest, err = loadManifest(strings.TrimSpace(configPath))
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if v, err := flags.GetString("from"); err == nil {
				cfg.From = strings.TrimSpace(v)
			}
			if v, err := flags.GetString("platform"); err == nil {
				cfg.Platform = strings.TrimSpace(v)
			}
			if flags.Changed("output") {
				v, err := flags.GetString("output")
				if err != nil {
					return err
				}
				cfg.Output = strings.TrimSpace(v)
			}
			if flags.Changed("category") {
				v, err := flags.GetString("category")
				if err != nil {
					return err
				}
				cfg.Category = strings.TrimSpace(v)
			}
			if v, err := flags.GetBool("overwrite"); err == nil {
				cfg.Overwrite = v
			}

			return componentRunner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("from", "", "Path to the component spec file")
	flags.String("platform", "", "Target platform (ios|web); defaults to manifest platforms")
	flags.String("output", "", "Output directory; defaults to ./generated")
	flags.String("category", "", "Component category for synthesized specs (default: custom)")
	flags.Bool("overwrite", false, "Replace existing output files")

	return cmd
}

func runComponent(ctx context.Context, cfg *ComponentConfig) error {
	_ = ctx

	if cfg.Name == "" && cfg.From == "" {
		return newUsageError("component: a name or --from is required")
	}

	var parsed *component.ParsedComponent
	label := "synthesized"
	if cfg.From != "" {
		data, err := os.ReadFile(cfg.From)
		if err != nil {
			return newUsageError(fmt.Sprintf("component: read %q: %v", cfg.From, err))
		}
		root, err := docs.Parse(data)
		if err != nil {
			return newUsageError(fmt.Sprintf("component: %q: %v", cfg.From, err))
		}
		parsed, err = component.Parse(root, cfg.Name, cfg.Category)
		if err != nil {
			return newUsageError(fmt.Sprintf("component: %q: %v", cfg.From, err))
		}
		label = filepath.Base(cfg.From)
	} else {
		parsed = component.Synthesize(cfg.Name, cfg.Category)
	}

	targets, err := resolvePlatforms(cfg.Platform, cfg.manifest)
	if err != nil {
		return err
	}

	var files []plannedFile
	for _, target := range targets {
		if !supportsTarget(kindComponent, target) {
			slog.Warn("platform not supported for components, skipping", "platform", target)
			continue
		}
		switch target {
		case typeconv.IOS:
			files = append(files, plannedFile{RelPath: "ios/" + parsed.Name + ".swift", Content: swiftemitter.Component(parsed, label)})
		case typeconv.Web:
			files = append(files, plannedFile{RelPath: "web/" + parsed.Name + ".tsx", Content: webemitter.Component(parsed, label)})
		}
	}

	if len(files) == 0 {
		return newUsageError("component: no files were generated (every requested platform was skipped)")
	}
	written, err := writeOutputs(cfg.Output, files, cfg.Overwrite, false)
	if err != nil {
		return err
	}
	slog.Info("component generated", "name", parsed.Name, "files", written, "output", cfg.Output)
	return nil
}
