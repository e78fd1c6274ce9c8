package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory and removes
// files from an earlier run that are no longer generated. It creates the
// directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	stale, err := staleFiles(files, outputDir)
	if err != nil {
		return err
	}

	for _, name := range stale {
		if err := os.Remove(filepath.Join(outputDir, name)); err != nil {
			return fmt.Errorf("removing stale file %s: %w", name, err)
		}
	}

	return nil
}

// Diff lists the files in outputDir that differ from files: missing,
// changed, or generated earlier and no longer produced. Names are sorted.
func Diff(files []GeneratedFile, outputDir string) ([]string, error) {
	var out []string

	for _, file := range files {
		current, err := os.ReadFile(filepath.Join(outputDir, file.Filename))
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading file %s: %w", file.Filename, err)
		}

		if !bytes.Equal(current, file.Content) {
			out = append(out, file.Filename)
		}
	}

	stale, err := staleFiles(files, outputDir)
	if err != nil {
		return nil, err
	}

	out = append(out, stale...)
	slices.Sort(out)

	return out, nil
}

// staleFiles lists generated files in dir that are not part of files.
func staleFiles(files []GeneratedFile, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	var stale []string

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, FileSuffix) {
			continue
		}

		if slices.ContainsFunc(files, func(f GeneratedFile) bool { return f.Filename == name }) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", name, err)
		}

		if bytes.HasPrefix(data, []byte(Header)) {
			stale = append(stale, name)
		}
	}

	return stale, nil
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go.txt"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
