package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cuppalabs/cuppa/internal/emitter/swiftemitter"
	"github.com/cuppalabs/cuppa/internal/spec/docs"
	"github.com/cuppalabs/cuppa/internal/spec/plugin"
)

// PluginConfig captures the inputs of the plugin command.
type PluginConfig struct {
	Name      string
	Platform  string
	Output    string
	Template  string
	Overwrite bool

	manifest *Manifest
}

var pluginRunner = runPlugin

func newPluginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin <name>",
		Short: "Generate a plugin scaffold from a built-in template",
		Example: strings.TrimSpace(`  cuppa plugin Analytics
  cuppa plugin Payments --template provider --output ./generated`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &PluginConfig{
				Name:     strings.TrimSpace(args[0]),
				Output:   "./generated",
				Template: "basic",
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
			if flags.Changed("template") {
				v, err := flags.GetString("template")
				if err != nil {
					return err
				}
				cfg.Template = strings.ToLower(strings.TrimSpace(v))
			}
			if v, err := flags.GetBool("overwrite"); err == nil {
				cfg.Overwrite = v
			}

			return pluginRunner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("platform", "", "Target platform (ios); defaults to manifest platforms")
	flags.String("output", "", "Output directory; defaults to ./generated")
	flags.String("template", "", fmt.Sprintf("Plugin template (%s)", strings.Join(plugin.TemplateNames(), "|")))
	flags.Bool("overwrite", false, "Replace existing output files")

	return cmd
}

func runPlugin(ctx context.Context, cfg *PluginConfig) error {
	_ = ctx

	if cfg.Name == "" {
		return newUsageError("plugin: a plugin name is required")
	}

	tpl, err := plugin.Template(cfg.Template)
	if err != nil {
		return newUsageError(fmt.Sprintf("plugin: %v (allowed: %s)", err, strings.Join(plugin.TemplateNames(), ", ")))
	}
	root, err := docs.Parse(tpl)
	if err != nil {
		return fmt.Errorf("plugin template %q: %w", cfg.Template, err)
	}
	parsed, err := plugin.Parse(root, cfg.Name)
	if err != nil {
		return newUsageError(fmt.Sprintf("plugin: %v", err))
	}

	targets, err := resolvePlatforms(cfg.Platform, cfg.manifest)
	if err != nil {
		return err
	}

	label := cfg.Template + " template"
	var files []plannedFile
	for _, target := range targets {
		if !supportsTarget(kindPlugin, target) {
			slog.Warn("platform not supported for plugins, skipping", "platform", target)
			continue
		}
		rendered := swiftemitter.Plugin(parsed, label)
		names := make([]string, 0, len(rendered))
		for name := range rendered {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			files = append(files, plannedFile{RelPath: "ios/" + parsed.Name + "/" + name, Content: rendered[name]})
		}
	}

	if len(files) == 0 {
		return newUsageError("plugin: no files were generated (every requested platform was skipped)")
	}
	written, err := writeOutputs(cfg.Output, files, cfg.Overwrite, false)
	if err != nil {
		return err
	}
	slog.Info("plugin scaffold generated", "name", parsed.Name, "files", written, "output", cfg.Output)
	return nil
}
