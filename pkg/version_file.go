package convver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNoVersionFound is returned when a file holds no recognizable version declaration.
var ErrNoVersionFound = errors.New("no version found")

// VersionPattern represents a pattern for finding the main version of a project in a file.
// The first capture group must hold the version.
type VersionPattern struct {
	Pattern *regexp.Regexp
	Name    string
}

// MainVersionPatterns are tried line by line in order. They only match
// declarations that are typically the primary version of a project, not
// dependency versions or other references.
var MainVersionPatterns = []VersionPattern{
	{
		Pattern: regexp.MustCompile(`^\s*(?:var\s+|const\s+)?Version\s*=\s*"v?(\d+\.\d+\.\d+)"`),
		Name:    "Go version variable",
	},
	{
		Pattern: regexp.MustCompile(`^\s*"version"\s*:\s*"v?(\d+\.\d+\.\d+)"`),
		Name:    "root JSON version field",
	},
	{
		Pattern: regexp.MustCompile(`^\s*version\s*=\s*"v?(\d+\.\d+\.\d+)"`),
		Name:    "root TOML version field",
	},
	{
		Pattern: regexp.MustCompile(`(?i)^\s*VERSION\s*[:=]\s*["']?v?(\d+\.\d+\.\d+)["']?\s*$`),
		Name:    "root VERSION assignment",
	},
}

// bareVersion matches a VERSION file that holds nothing but the version.
var bareVersion = regexp.MustCompile(`^\s*v?(\d+\.\d+\.\d+)\s*$`)

// VersionMatch represents a version declaration found in a file.
type VersionMatch struct {
	Line    int
	Version SemanticVersion
	Pattern string
}

// FindMainVersion scans content for the primary version declaration.
// JSON files only consider top-level fields (indent of two or less).
func FindMainVersion(name string, content []byte) (*VersionMatch, error) {
	lines := strings.Split(string(content), "\n")
	isJSON := strings.HasSuffix(name, ".json")

	for lineNum, line := range lines {
		line = strings.TrimRight(line, "\r")
		if isJSON {
			leading := len(line) - len(strings.TrimLeft(line, " \t"))
			if leading > 2 {
				continue
			}
		}
		for _, vp := range MainVersionPatterns {
			m := vp.Pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			v, err := ParseSemanticVersion(m[1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNum+1, err)
			}
			return &VersionMatch{Line: lineNum + 1, Version: v, Pattern: vp.Name}, nil
		}
	}

	// A VERSION file may contain only the version itself.
	if strings.EqualFold(filepath.Base(name), "VERSION") {
		for lineNum, line := range lines {
			if m := bareVersion.FindStringSubmatch(line); m != nil {
				v, err := ParseSemanticVersion(m[1])
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w", name, lineNum+1, err)
				}
				return &VersionMatch{Line: lineNum + 1, Version: v, Pattern: "bare version"}, nil
			}
		}
	}

	return nil, fmt.Errorf("%s: %w", name, ErrNoVersionFound)
}

// ReadVersionFromFile reads the main version declared in filePath. The file
// is never modified.
func ReadVersionFromFile(filePath string) (SemanticVersion, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("reading file %s: %w", filePath, err)
	}
	match, err := FindMainVersion(filePath, data)
	if err != nil {
		return SemanticVersion{}, err
	}
	return match.Version, nil
}
