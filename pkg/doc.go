// Package convver calculates the next semantic version of a project from the
// Conventional Commit messages written since its last release.
//
// It provides functionalities for:
//   - Parsing a commit message against the Conventional Commits grammar
//     (type(scope)!: description) and classifying it as a major, minor or patch change.
//   - Folding the classification of a batch of commits into a single bump decision
//     and applying it to the last released version (0.1.0 when nothing was released yet).
//   - Parsing and rendering MAJOR.MINOR.PATCH versions.
//   - Reading the last released version from a project file (version.go, package.json,
//     Cargo.toml, VERSION) and typed lookups in a YAML properties file.
//
// Commit types and their effect:
//
//	feat                                          minor
//	fix, build, ci, docs, pref, refactor,
//	style, test                                   patch
//	"!" before the colon, or "BREAKING CHANGE"    major
//	anywhere in the message
//
// The highest level found in a batch wins; the order of commits is irrelevant.
//
// Usage Example:
//
//	import (
//	    "fmt"
//	    convver "github.com/bcomnes/convver/pkg"
//	)
//
//	func main() {
//	    last := convver.SemanticVersion{Major: 1, Minor: 4, Patch: 2}
//	    next := convver.CalculateNextVersion([]string{"feat(api): add search"}, &last)
//	    fmt.Println(next) // 1.5.0
//	}
package convver
