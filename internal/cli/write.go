package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"log/slog"
)

// plannedFile is one output artifact: a path relative to the output root plus
// its full content.
type plannedFile struct {
	RelPath string
	Content string
}

// writeOutputs places the planned files under outDir. Dry runs print the plan
// and write nothing. Existing files are skipped with a warning unless
// overwrite is set; a failed write aborts, leaving earlier files in place.
func writeOutputs(outDir string, files []plannedFile, overwrite, dryRun bool) (int, error) {
	absOut := outDir
	if ap, err := filepath.Abs(outDir); err == nil {
		absOut = ap
	}

	if dryRun {
		printPlan(absOut, files)
		return len(files), nil
	}

	written := 0
	for _, f := range files {
		path := filepath.Join(absOut, filepath.FromSlash(f.RelPath))
		if _, err := os.Stat(path); err == nil && !overwrite {
			slog.Warn("skipping existing file (use --overwrite to replace)", "path", path)
			continue
		}
		if err := writeFileAtomic(path, f.Content); err != nil {
			return written, err
		}
		slog.Debug("wrote file", "path", path)
		written++
	}
	return written, nil
}

// writeFileAtomic creates parents on demand and writes via temp + rename so a
// failed write never leaves a half-written artifact behind.
func writeFileAtomic(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("place %s: %w", path, err)
	}
	return nil
}

func printPlan(outDir string, files []plannedFile) {
	fmt.Fprintf(os.Stdout, "Planned writes to %s (%d files):\n", outDir, len(files))
	for _, f := range files {
		fmt.Fprintf(os.Stdout, "- %s\n", f.RelPath)
	}
}
