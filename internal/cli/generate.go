package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cuppalabs/cuppa/internal/emitter/kotlinemitter"
	"github.com/cuppalabs/cuppa/internal/emitter/swiftemitter"
	"github.com/cuppalabs/cuppa/internal/emitter/webemitter"
	"github.com/cuppalabs/cuppa/internal/spec/api"
	"github.com/cuppalabs/cuppa/internal/spec/docs"
	"github.com/cuppalabs/cuppa/internal/spec/schema"
	"github.com/cuppalabs/cuppa/internal/spec/tokens"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// GenerateConfig captures all inputs that influence a generate subcommand
// after merging defaults, the manifest, environment overrides, and flags.
type GenerateConfig struct {
	Name       string
	From       string
	Platform   string
	Output     string
	Overwrite  bool
	DryRun     bool
	ConfigPath string

	manifest *Manifest
}

var (
	modelRunner     = runGenerateModel
	apiClientRunner = runGenerateAPIClient
	themeRunner     = runGenerateTheme
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate platform code from a spec document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	model := &cobra.Command{
		Use:   "model [name]",
		Short: "Generate data models from JSON Schema files",
		Example: strings.TrimSpace(`  cuppa generate model --from specs/models/user.schema.json
  cuppa generate model --from specs/models --platform ios --output ./generated`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveGenerateConfig(cmd, args, "Models")
			if err != nil {
				return err
			}
			return modelRunner(cmd.Context(), cfg)
		},
	}

	apiClient := &cobra.Command{
		Use:   "api-client",
		Short: "Generate API clients from an OpenAPI document",
		Example: strings.TrimSpace(`  cuppa generate api-client --from specs/api/petstore.yaml
  cuppa generate api-client --from openapi.json --platform web`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveGenerateConfig(cmd, args, "API")
			if err != nil {
				return err
			}
			return apiClientRunner(cmd.Context(), cfg)
		},
	}

	theme := &cobra.Command{
		Use:   "theme",
		Short: "Generate theme code from a design-token document",
		Example: strings.TrimSpace(`  cuppa generate theme --from specs/themes/brand.tokens.json
  cuppa generate theme --from tokens.json --platform all`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveGenerateConfig(cmd, args, "Theme")
			if err != nil {
				return err
			}
			return themeRunner(cmd.Context(), cfg)
		},
	}

	for _, sub := range []*cobra.Command{model, apiClient, theme} {
		addGenerateFlags(sub.Flags())
		cmd.AddCommand(sub)
	}

	return cmd
}

func addGenerateFlags(flags *pflag.FlagSet) {
	flags.String("from", "", "Path to the spec document (or directory of documents for model)")
	flags.String("platform", "", "Target platform (ios|android|web|all); defaults to manifest platforms")
	flags.String("output", "", "Output directory; defaults to manifest generation output, else ./generated")
	flags.Bool("overwrite", false, "Replace existing output files")
	flags.Bool("dry-run", false, "Preview planned outputs without writing files")
}

// resolveGenerateConfig merges defaults, manifest values, CUPPA_* environment
// overrides, and flags, in that order. kindField selects the manifest
// generation entry ("Models", "API", "Theme").
func resolveGenerateConfig(cmd *cobra.Command, args []string, kindField string) (*GenerateConfig, error) {
	cfg := &GenerateConfig{Output: "./generated"}
	if len(args) > 0 {
		cfg.Name = strings.TrimSpace(args[0])
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigPath = strings.TrimSpace(configPath)

	manifest, err := loadManifest(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.manifest = manifest
	if manifest != nil {
		out := ""
		switch kindField {
		case "Models":
			out = manifest.Generation.Models
		case "API":
			out = manifest.Generation.API
		case "Theme":
			out = manifest.Generation.Theme
		}
		if strings.TrimSpace(out) != "" {
			cfg.Output = strings.TrimSpace(out)
		}
	}

	env, err := loadEnvOverrides()
	if err != nil {
		return nil, err
	}
	if env.Platform != "" {
		cfg.Platform = env.Platform
	}
	if env.Output != "" {
		cfg.Output = env.Output
	}

	if err := applyGenerateFlagOverrides(cmd.Flags(), cfg); err != nil {
		return nil, err
	}

	cfg.From = strings.TrimSpace(cfg.From)
	if cfg.From == "" {
		return nil, newUsageError("generate: --from is required")
	}
	return cfg, nil
}

func applyGenerateFlagOverrides(flags *pflag.FlagSet, cfg *GenerateConfig) error {
	if flags.Changed("from") {
		value, err := flags.GetString("from")
		if err != nil {
			return err
		}
		cfg.From = strings.TrimSpace(value)
	}
	if flags.Changed("platform") {
		value, err := flags.GetString("platform")
		if err != nil {
			return err
		}
		cfg.Platform = strings.TrimSpace(value)
	}
	if flags.Changed("output") {
		value, err := flags.GetString("output")
		if err != nil {
			return err
		}
		cfg.Output = strings.TrimSpace(value)
	}
	if flags.Changed("overwrite") {
		value, err := flags.GetBool("overwrite")
		if err != nil {
			return err
		}
		cfg.Overwrite = value
	}
	if flags.Changed("dry-run") {
		value, err := flags.GetBool("dry-run")
		if err != nil {
			return err
		}
		cfg.DryRun = value
	}
	return nil
}

func runGenerateModel(ctx context.Context, cfg *GenerateConfig) error {
	_ = ctx

	paths, err := collectSchemaFiles(cfg.From, cfg.Name)
	if err != nil {
		return err
	}

	targets, err := resolvePlatforms(cfg.Platform, cfg.manifest)
	if err != nil {
		return err
	}

	var files []plannedFile
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return newUsageError(fmt.Sprintf("generate model: read %q: %v", path, err))
		}
		root, err := docs.Parse(data)
		if err != nil {
			return newUsageError(fmt.Sprintf("generate model: %q: %v", path, err))
		}
		model, err := schema.Parse(root)
		if err != nil {
			return newUsageError(fmt.Sprintf("generate model: %q: %v", path, err))
		}
		if cfg.Name != "" && len(paths) == 1 {
			model.Name = cfg.Name
		}

		label := filepath.Base(path)
		name := typeconv.Pascal(model.Name)
		for _, target := range targets {
			if !supportsTarget(kindModel, target) {
				slog.Warn("platform not supported for models, skipping", "platform", target)
				continue
			}
			switch target {
			case typeconv.IOS:
				files = append(files, plannedFile{RelPath: "ios/" + name + ".swift", Content: swiftemitter.Model(model, label)})
			case typeconv.Android:
				files = append(files, plannedFile{RelPath: "android/" + name + ".kt", Content: kotlinemitter.Model(model, label)})
			case typeconv.Web:
				files = append(files, plannedFile{RelPath: "web/" + name + ".ts", Content: webemitter.Model(model, label)})
			}
		}
	}

	return finishGenerate(cfg, files)
}

func runGenerateAPIClient(ctx context.Context, cfg *GenerateConfig) error {
	doc, err := api.Load(ctx, cfg.From)
	if err != nil {
		var se *api.SpecError
		if errors.As(err, &se) {
			msg := fmt.Sprintf("spec: %s", se.Message)
			if se.Location != "" {
				msg = fmt.Sprintf("%s\nLocation: %s", msg, se.Location)
			}
			return wrapUsageError(err, msg)
		}
		return err
	}

	parsed, err := api.BuildParsedAPI(ctx, doc)
	if err != nil {
		return fmt.Errorf("build api model: %w", err)
	}

	targets, err := resolvePlatforms(cfg.Platform, cfg.manifest)
	if err != nil {
		return err
	}

	label := filepath.Base(cfg.From)
	name := typeconv.Pascal(parsed.Name)

	var files []plannedFile
	for _, target := range targets {
		if !supportsTarget(kindAPIClient, target) {
			slog.Warn("platform not supported for api clients, skipping", "platform", target)
			continue
		}
		switch target {
		case typeconv.IOS:
			files = append(files, plannedFile{RelPath: "ios/" + name + "Client.swift", Content: swiftemitter.APIClient(parsed, label)})
		case typeconv.Android:
			files = append(files, plannedFile{RelPath: "android/" + name + "Api.kt", Content: kotlinemitter.APIClient(parsed, label)})
		case typeconv.Web:
			files = append(files, plannedFile{RelPath: "web/" + name + "Client.ts", Content: webemitter.APIClient(parsed, label)})
		}
	}

	return finishGenerate(cfg, files)
}

func runGenerateTheme(ctx context.Context, cfg *GenerateConfig) error {
	_ = ctx

	data, err := os.ReadFile(cfg.From)
	if err != nil {
		return newUsageError(fmt.Sprintf("generate theme: read %q: %v", cfg.From, err))
	}
	root, err := docs.Parse(data)
	if err != nil {
		return newUsageError(fmt.Sprintf("generate theme: %q: %v", cfg.From, err))
	}

	theme, err := tokens.Parse(root, themeNameFromPath(cfg.From))
	if err != nil {
		return newUsageError(fmt.Sprintf("generate theme: %q: %v", cfg.From, err))
	}
	if theme.IsEmpty() {
		return newUsageError(fmt.Sprintf("generate theme: %q declares no tokens", cfg.From))
	}

	targets, err := resolvePlatforms(cfg.Platform, cfg.manifest)
	if err != nil {
		return err
	}

	label := filepath.Base(cfg.From)
	name := typeconv.Pascal(theme.Name)

	var files []plannedFile
	for _, target := range targets {
		if !supportsTarget(kindTheme, target) {
			slog.Warn("platform not supported for themes, skipping", "platform", target)
			continue
		}
		switch target {
		case typeconv.IOS:
			files = append(files, plannedFile{RelPath: "ios/" + name + "Theme.swift", Content: swiftemitter.Theme(theme, label)})
		case typeconv.Android:
			files = append(files, plannedFile{RelPath: "android/" + name + "Theme.kt", Content: kotlinemitter.Theme(theme, label)})
		case typeconv.Web:
			files = append(files, plannedFile{RelPath: "web/" + typeconv.Camel(theme.Name) + "Theme.ts", Content: webemitter.Theme(theme, label)})
		}
	}

	return finishGenerate(cfg, files)
}

// finishGenerate writes the planned files. Skipped platforms are only fatal
// when they leave nothing to write.
func finishGenerate(cfg *GenerateConfig, files []plannedFile) error {
	if len(files) == 0 {
		return newUsageError("generate: no files were generated (every requested platform was skipped)")
	}
	written, err := writeOutputs(cfg.Output, files, cfg.Overwrite, cfg.DryRun)
	if err != nil {
		return err
	}
	if !cfg.DryRun {
		slog.Info("generation complete", "files", written, "output", cfg.Output)
	}
	return nil
}

// collectSchemaFiles expands a directory --from into its schema documents.
// name filters by file base name when walking a directory.
func collectSchemaFiles(from, name string) ([]string, error) {
	info, err := os.Stat(from)
	if err != nil {
		return nil, newUsageError(fmt.Sprintf("generate model: %q: %v", from, err))
	}
	if !info.IsDir() {
		return []string{from}, nil
	}

	entries, err := os.ReadDir(from)
	if err != nil {
		return nil, newUsageError(fmt.Sprintf("generate model: read directory %q: %v", from, err))
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}
		if name != "" && !strings.EqualFold(schemaBaseName(e.Name()), name) {
			continue
		}
		paths = append(paths, filepath.Join(from, e.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		if name != "" {
			return nil, newUsageError(fmt.Sprintf("generate model: no schema named %q under %q", name, from))
		}
		return nil, newUsageError(fmt.Sprintf("generate model: no schema documents under %q", from))
	}
	return paths, nil
}

// schemaBaseName strips the extension and a trailing ".schema" marker:
// "user.schema.json" matches the name "user".
func schemaBaseName(file string) string {
	base := strings.TrimSuffix(file, filepath.Ext(file))
	return strings.TrimSuffix(base, ".schema")
}

// themeNameFromPath derives the fallback theme name from the file name:
// "brand.tokens.json" falls back to "brand".
func themeNameFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.TrimSuffix(base, ".tokens")
}
