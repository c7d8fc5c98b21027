package convver

import "fmt"

// ChangeLevel is the semantic weight of a change. Levels are ordered so that
// a larger value always wins when several commits are folded together.
type ChangeLevel int

const (
	None ChangeLevel = iota
	Patch
	Minor
	Major
)

var changeLevelNames = map[ChangeLevel]string{
	None:  "none",
	Patch: "patch",
	Minor: "minor",
	Major: "major",
}

func (l ChangeLevel) String() string {
	if name, ok := changeLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("ChangeLevel(%d)", int(l))
}
