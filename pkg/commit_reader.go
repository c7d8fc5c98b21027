package convver

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Separator selects how a stream of commit messages is split.
type Separator string

const (
	// SeparatorLine treats every line as one message, e.g. `git log --format=%s`.
	SeparatorLine Separator = "line"
	// SeparatorNUL splits on NUL bytes, e.g. `git log -z --format=%B`.
	SeparatorNUL Separator = "nul"
	// SeparatorBlank splits on runs of blank lines.
	SeparatorBlank Separator = "blank"
)

// ParseSeparator validates a separator name.
func ParseSeparator(s string) (Separator, error) {
	switch sep := Separator(s); sep {
	case SeparatorLine, SeparatorNUL, SeparatorBlank:
		return sep, nil
	default:
		return "", fmt.Errorf("unknown separator %q (expected line, nul or blank)", s)
	}
}

// ReadCommits splits r into commit messages. Empty messages are dropped.
func ReadCommits(r io.Reader, sep Separator) ([]string, error) {
	switch sep {
	case SeparatorLine:
		return scanCommits(r, bufio.ScanLines, func(s string) string { return s })
	case SeparatorNUL:
		return scanCommits(r, scanNUL, func(s string) string { return strings.Trim(s, "\r\n") })
	case SeparatorBlank:
		return readBlankSeparated(r)
	default:
		return nil, fmt.Errorf("unknown separator %q", sep)
	}
}

func scanCommits(r io.Reader, split bufio.SplitFunc, clean func(string) string) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(split)
	var commits []string
	for sc.Scan() {
		msg := clean(sc.Text())
		if strings.TrimSpace(msg) == "" {
			continue
		}
		commits = append(commits, msg)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading commits: %w", err)
	}
	return commits, nil
}

func scanNUL(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func readBlankSeparated(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var commits, cur []string
	flush := func() {
		if len(cur) > 0 {
			commits = append(commits, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading commits: %w", err)
	}
	flush()
	return commits, nil
}
