package convver

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion is returned when a version string or component is not
// a plain MAJOR.MINOR.PATCH triple.
var ErrInvalidVersion = errors.New("invalid semantic version")

// InitialVersion is produced when no version has been released yet.
var InitialVersion = SemanticVersion{Major: 0, Minor: 1, Patch: 0}

// SemanticVersion is an immutable major.minor.patch triple. Every bump
// returns a new value.
type SemanticVersion struct {
	Major int
	Minor int
	Patch int
}

// NewSemanticVersion builds a version, rejecting negative components and
// components that could not be bumped without overflowing.
func NewSemanticVersion(major, minor, patch int) (SemanticVersion, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return SemanticVersion{}, fmt.Errorf("%w: components must be non-negative, got %d.%d.%d",
			ErrInvalidVersion, major, minor, patch)
	}
	if major == math.MaxInt || minor == math.MaxInt || patch == math.MaxInt {
		return SemanticVersion{}, fmt.Errorf("%w: components must be below %d, got %d.%d.%d",
			ErrInvalidVersion, math.MaxInt, major, minor, patch)
	}
	return SemanticVersion{Major: major, Minor: minor, Patch: patch}, nil
}

// ParseSemanticVersion parses "1.2.3" or "v1.2.3". Shorthand forms such as
// "v1.2" and pre-release or build suffixes are rejected.
func ParseSemanticVersion(s string) (SemanticVersion, error) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return SemanticVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	if semver.Prerelease(v) != "" || semver.Build(v) != "" {
		return SemanticVersion{}, fmt.Errorf("%w: %q carries a pre-release or build suffix", ErrInvalidVersion, s)
	}
	if semver.Canonical(v) != v {
		return SemanticVersion{}, fmt.Errorf("%w: %q must have major, minor and patch", ErrInvalidVersion, s)
	}

	parts := strings.Split(strings.TrimPrefix(v, "v"), ".")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return SemanticVersion{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
		nums[i] = n
	}
	return NewSemanticVersion(nums[0], nums[1], nums[2])
}

// String renders the version as MAJOR.MINOR.PATCH.
func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag renders the version with a tag prefix, e.g. Tag("v") gives "v1.2.3".
func (v SemanticVersion) Tag(prefix string) string {
	return prefix + v.String()
}

// Compare returns -1, 0 or +1 ordering v and o lexicographically on
// (major, minor, patch).
func (v SemanticVersion) Compare(o SemanticVersion) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, o.Patch)
}

// Bump returns the version raised by level. None returns v unchanged.
func (v SemanticVersion) Bump(level ChangeLevel) SemanticVersion {
	switch level {
	case Major:
		return SemanticVersion{Major: v.Major + 1}
	case Minor:
		return SemanticVersion{Major: v.Major, Minor: v.Minor + 1}
	case Patch:
		return SemanticVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}
