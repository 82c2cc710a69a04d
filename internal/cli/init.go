package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/spf13/cobra"
)

// InitConfig captures the options for the init command.
type InitConfig struct {
	Name           string
	Platforms      string
	Template       string
	SpecsRepo      string
	PackageManager string
	NoGit          bool
}

var initRunner = runInit

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [project-name]",
		Short: "Scaffold a cuppa project directory and manifest",
		Long:  "Scaffold a project directory with spec folders, per-platform output folders, and a cuppa.config.json manifest.",
		Example: strings.TrimSpace(`  cuppa init my-app
  cuppa init my-app --platforms ios,web --no-git`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &InitConfig{Name: "cuppa-app"}
			if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
				cfg.Name = strings.TrimSpace(args[0])
			}

			flags := cmd.Flags()
			var err error
			if cfg.Platforms, err = flags.GetString("platforms"); err != nil {
				return err
			}
			if cfg.Template, err = flags.GetString("template"); err != nil {
				return err
			}
			if cfg.SpecsRepo, err = flags.GetString("specs-repo"); err != nil {
				return err
			}
			if cfg.PackageManager, err = flags.GetString("package-manager"); err != nil {
				return err
			}
			if cfg.NoGit, err = flags.GetBool("no-git"); err != nil {
				return err
			}

			return initRunner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("platforms", "", "Comma-separated target platforms (default: ios,android,web)")
	flags.String("template", "", "Project template name recorded in the manifest")
	flags.String("specs-repo", "", "Remote spec repository URL recorded in the manifest")
	flags.String("package-manager", "", "Package manager recorded in the manifest")
	flags.Bool("no-git", false, "Skip repository initialization")

	return cmd
}

func runInit(ctx context.Context, cfg *InitConfig) error {
	targets, err := resolvePlatforms(cfg.Platforms, nil)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(cfg.Name)
	if err != nil {
		return fmt.Errorf("init: resolve project path: %w", err)
	}
	if _, err := os.Stat(filepath.Join(root, manifestFileName)); err == nil {
		return newUsageError(fmt.Sprintf("init: %q already contains a cuppa project", root))
	}

	dirs := []string{
		filepath.Join(root, "specs", "models"),
		filepath.Join(root, "specs", "api"),
		filepath.Join(root, "specs", "themes"),
		filepath.Join(root, "specs", "components"),
	}
	for _, t := range targets {
		dirs = append(dirs, filepath.Join(root, "generated", string(t)))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newUsageError(fmt.Sprintf("init: create %q: %v", dir, err))
		}
	}

	manifest := defaultManifest(filepath.Base(root))
	manifest.Platforms = make([]string, 0, len(targets))
	for _, t := range targets {
		manifest.Platforms = append(manifest.Platforms, string(t))
	}
	manifest.Template = strings.TrimSpace(cfg.Template)
	manifest.PackageManager = strings.TrimSpace(cfg.PackageManager)
	manifest.Specs.Repo = strings.TrimSpace(cfg.SpecsRepo)

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("init: encode manifest: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(root, manifestFileName), string(data)+"\n"); err != nil {
		return err
	}

	if !cfg.NoGit {
		initRepository(ctx, root)
	}

	fmt.Fprintf(os.Stdout, "Initialized cuppa project in %s\n", root)
	return nil
}

// initRepository runs git init; a failure is reported as a warning because
// the scaffold is complete without it.
func initRepository(ctx context.Context, root string) {
	git := exec.CommandContext(ctx, "git", "init")
	git.Dir = root
	if out, err := git.CombinedOutput(); err != nil {
		slog.Warn("git init failed, continuing without a repository",
			"error", err, "output", strings.TrimSpace(string(out)))
		return
	}
	slog.Debug("initialized git repository", "path", root)
}
