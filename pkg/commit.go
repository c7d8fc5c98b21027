package convver

import (
	"regexp"
	"strings"
)

// lineChar is any character except a line terminator (\n, \r, NEL, LS, PS).
const lineChar = `[^\n\r\x{85}\x{2028}\x{2029}]`

// commitPattern matches the whole message:
//
//	<type>[(<scope>)][!]: <description>
//
// Groups: 1 type, 2 parenthesised scope, 3 scope, 4 breaking marker, 5 description.
// The description needs a non-whitespace character, vertical tab counting as whitespace.
var commitPattern = regexp.MustCompile(
	`^(\w{0,15})(\(?(` + lineChar + `{0,40})\))?(!?):(` + lineChar + `[^\s\v]` + lineChar + `*)$`)

// breakingChangeMarker flags a major change anywhere in a message, matched or not.
const breakingChangeMarker = "BREAKING CHANGE"

// featureType is the only commit type that raises the minor version.
const featureType = "feat"

// patchTypes are the commit types that raise the patch version.
var patchTypes = map[string]struct{}{
	"fix":      {},
	"build":    {},
	"ci":       {},
	"docs":     {},
	"pref":     {},
	"refactor": {},
	"style":    {},
	"test":     {},
}

// CommitMessage is the result of parsing a single commit message.
// When Matched is false only Raw is set.
type CommitMessage struct {
	Raw         string
	Matched     bool
	Type        string
	Scope       string
	HasScope    bool
	Breaking    bool // "!" immediately before the colon
	Description string
}

// Signals records which version fields a commit asks to raise.
type Signals struct {
	Major bool
	Minor bool
	Patch bool
}

// Level returns the highest level signalled, or None.
func (s Signals) Level() ChangeLevel {
	switch {
	case s.Major:
		return Major
	case s.Minor:
		return Minor
	case s.Patch:
		return Patch
	default:
		return None
	}
}

// Or merges two signal sets field by field.
func (s Signals) Or(o Signals) Signals {
	return Signals{
		Major: s.Major || o.Major,
		Minor: s.Minor || o.Minor,
		Patch: s.Patch || o.Patch,
	}
}

// ParseCommit parses msg against the Conventional Commits grammar. It never
// fails; a message that does not match yields a CommitMessage with Matched unset.
func ParseCommit(msg string) CommitMessage {
	c := CommitMessage{Raw: msg}
	m := commitPattern.FindStringSubmatch(msg)
	if m == nil {
		return c
	}
	c.Matched = true
	c.Type = m[1]
	c.HasScope = m[2] != ""
	c.Scope = m[3]
	c.Breaking = m[4] == "!"
	c.Description = strings.TrimPrefix(m[5], " ")
	return c
}

// Signals reports the change signals carried by the parsed commit.
func (c CommitMessage) Signals() Signals {
	var s Signals
	s.Major = (c.Matched && c.Breaking) || strings.Contains(c.Raw, breakingChangeMarker)
	if c.Matched {
		s.Minor = c.Type == featureType
		_, s.Patch = patchTypes[c.Type]
	}
	return s
}

// ClassifyCommit parses msg once and returns its change signals.
func ClassifyCommit(msg string) Signals {
	return ParseCommit(msg).Signals()
}

// IsPatchType reports whether typ is one of the commit types that raise the patch version.
func IsPatchType(typ string) bool {
	_, ok := patchTypes[typ]
	return ok
}
