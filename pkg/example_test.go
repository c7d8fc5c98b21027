package convver

import (
	"fmt"
	"strings"
)

// ExampleCalculateNextVersion shows a batch of commits since 1.4.2 where the
// feature outranks the fixes.
func ExampleCalculateNextVersion() {
	last := SemanticVersion{Major: 1, Minor: 4, Patch: 2}
	commits := []string{
		"fix(parser): handle empty scope",
		"feat(cli): add --output yaml",
		"docs: typo",
	}

	next := CalculateNextVersion(commits, &last)
	fmt.Println(next)

	// Output:
	// 1.5.0
}

// ExampleCalculateNextVersion_firstRelease shows that without a prior release
// the commits are not inspected.
func ExampleCalculateNextVersion_firstRelease() {
	next := CalculateNextVersion([]string{"feat!: rewrite everything"}, nil)
	fmt.Println(next)

	// Output:
	// 0.1.0
}

func ExampleParseCommit() {
	c := ParseCommit("fix(scope_1)!: something")
	fmt.Printf("type=%s scope=%s breaking=%t description=%q level=%s\n",
		c.Type, c.Scope, c.Breaking, c.Description, c.Signals().Level())

	// Output:
	// type=fix scope=scope_1 breaking=true description="something" level=major
}

func ExampleVersionCalculator_Calculate() {
	commits, _ := ReadCommits(strings.NewReader("chore: deps\nci: cache modules\n"), SeparatorLine)
	last, _ := ParseSemanticVersion("v2.3.4")

	meta := NewVersionCalculator().Calculate(commits, &last)
	fmt.Printf("%s -> %s (%s, %d commits)\n", meta.OldVersion, meta.NewVersion, meta.BumpType, meta.Commits)

	// Output:
	// 2.3.4 -> 2.3.5 (patch, 2 commits)
}
