package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/erraggy/tspgen/internal/fileutil"
)

// versionConstPattern matches the version constant stamped by the version
// serializer, in both generated and hand-maintained version files.
var versionConstPattern = regexp.MustCompile(`moduleVersion\s*=\s*"([^"]+)"`)

// WriteFiles writes all generated files under the given output directory,
// creating directories as needed. Two kinds of existing files survive a
// rerun:
//
//   - *_patch.go files are hand-written extensions and are never
//     overwritten
//   - a version file whose embedded version compares greater than the
//     generated one is kept, so a release bump made in the SDK repo is not
//     silently reverted
func (r *GenerateResult) WriteFiles(outputDir string) error {
	if err := os.MkdirAll(outputDir, fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, file := range r.Files {
		clean := filepath.Clean(file.Name)
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf("invalid file name %q: must stay inside the output directory", file.Name)
		}
		target := filepath.Join(outputDir, clean)

		if skip, err := preserveExisting(target, file); err != nil {
			return err
		} else if skip {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), fileutil.DirReadableByAll); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", file.Name, err)
		}
		if err := os.WriteFile(target, file.Content, fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("failed to write file %s: %w", file.Name, err)
		}
	}
	return nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// preserveExisting reports whether the file already on disk at target should
// be kept instead of the generated one.
func preserveExisting(target string, file GeneratedFile) (bool, error) {
	existing, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect existing %s: %w", target, err)
	}

	if strings.HasSuffix(file.Name, "_patch.go") {
		return true, nil
	}

	if filepath.Base(file.Name) == "version.go" {
		existingVersion := extractVersion(existing)
		generatedVersion := extractVersion(file.Content)
		if existingVersion != "" && generatedVersion != "" &&
			semver.Compare("v"+existingVersion, "v"+generatedVersion) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// extractVersion pulls the module version constant out of a version file.
func extractVersion(src []byte) string {
	m := versionConstPattern.FindSubmatch(src)
	if m == nil {
		return ""
	}
	return string(m[1])
}
