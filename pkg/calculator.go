package convver

import "log/slog"

// VersionMeta holds metadata about a version calculation.
type VersionMeta struct {
	OldVersion string `yaml:"oldVersion,omitempty"` // Empty when nothing has been released yet.
	NewVersion string `yaml:"newVersion"`
	BumpType   string `yaml:"bumpType"` // "initial", "major", "minor", "patch" or "none".
	Commits    int    `yaml:"commits"`  // Number of commit messages considered.
}

// BumpTypeInitial is reported when no prior version exists.
const BumpTypeInitial = "initial"

// VersionCalculator decides the next version from the commits made since the
// last release. It holds no state and is safe for concurrent use.
type VersionCalculator struct{}

// NewVersionCalculator returns a VersionCalculator.
func NewVersionCalculator() *VersionCalculator {
	return &VersionCalculator{}
}

// DetermineChangeLevel folds the signals of every commit and returns the
// single highest level. Order of commits does not matter.
func (c *VersionCalculator) DetermineChangeLevel(commits []string) ChangeLevel {
	var batch Signals
	for _, msg := range commits {
		s := ClassifyCommit(msg)
		slog.Debug("classified commit", "message", msg, "change", s.Level())
		batch = batch.Or(s)
	}
	return batch.Level()
}

// CalculateNextVersion returns the version that follows lastVersion given the
// commits since it was released. A nil lastVersion yields InitialVersion
// without looking at the commits.
func (c *VersionCalculator) CalculateNextVersion(commits []string, lastVersion *SemanticVersion) SemanticVersion {
	if lastVersion == nil {
		return InitialVersion
	}
	level := c.DetermineChangeLevel(commits)
	next := lastVersion.Bump(level)
	slog.Debug("calculated next version",
		"last", lastVersion.String(),
		"next", next.String(),
		"change", level,
		"commits", len(commits))
	return next
}

// Calculate is CalculateNextVersion with the decision reported alongside the result.
func (c *VersionCalculator) Calculate(commits []string, lastVersion *SemanticVersion) VersionMeta {
	meta := VersionMeta{Commits: len(commits)}
	if lastVersion == nil {
		meta.NewVersion = InitialVersion.String()
		meta.BumpType = BumpTypeInitial
		return meta
	}
	level := c.DetermineChangeLevel(commits)
	meta.OldVersion = lastVersion.String()
	meta.NewVersion = lastVersion.Bump(level).String()
	meta.BumpType = level.String()
	return meta
}

// CalculateNextVersion is a convenience wrapper around a zero VersionCalculator.
func CalculateNextVersion(commits []string, lastVersion *SemanticVersion) SemanticVersion {
	return NewVersionCalculator().CalculateNextVersion(commits, lastVersion)
}
