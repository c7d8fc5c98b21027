package convver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMainVersion(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected SemanticVersion
		line     int
	}{
		{
			name: "version.go",
			file: "version.go",
			content: `package version

var (
	Version = "1.2.3"
)
`,
			expected: SemanticVersion{1, 2, 3},
			line:     4,
		},
		{
			name:     "single line const",
			file:     "version.go",
			content:  "package main\n\nconst Version = \"v0.9.12\"\n",
			expected: SemanticVersion{0, 9, 12},
			line:     3,
		},
		{
			name: "package.json with nested dependency versions",
			file: "package.json",
			content: `{
  "name": "my-app",
  "dependencies": {
      "version": "9.9.9"
  },
  "version": "2.0.1"
}`,
			expected: SemanticVersion{2, 0, 1},
			line:     6,
		},
		{
			name: "Cargo.toml",
			file: "Cargo.toml",
			content: `[package]
name = "my-extension"
version = "0.5.0"

[dependencies]
some-lib = "1.0"`,
			expected: SemanticVersion{0, 5, 0},
			line:     3,
		},
		{
			name:     "VERSION assignment",
			file:     "build.env",
			content:  "NAME=app\nVERSION=v4.5.6\n",
			expected: SemanticVersion{4, 5, 6},
			line:     2,
		},
		{
			name:     "bare VERSION file",
			file:     "VERSION",
			content:  "\n3.1.4\n",
			expected: SemanticVersion{3, 1, 4},
			line:     2,
		},
		{
			name:     "windows line endings",
			file:     "VERSION",
			content:  "version = \"1.0.0\"\r\n",
			expected: SemanticVersion{1, 0, 0},
			line:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FindMainVersion(tt.file, []byte(tt.content))
			require.NoError(t, err)
			require.NotNil(t, m)
			assert.Equal(t, tt.expected, m.Version)
			assert.Equal(t, tt.line, m.Line)
			assert.NotEmpty(t, m.Pattern)
		})
	}
}

func TestFindMainVersionNotFound(t *testing.T) {
	tests := map[string]string{
		"README.md":    "# Project\n\nSee the changelog for v1.2.3\n",
		"package.json": "{\n  \"name\": \"x\"\n}",
		"version.go":   "package version\n\nvar Version = \"dev\"\n",
	}
	for file, content := range tests {
		t.Run(file, func(t *testing.T) {
			_, err := FindMainVersion(file, []byte(content))
			assert.ErrorIs(t, err, ErrNoVersionFound)
		})
	}
}

func TestReadVersionFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	content := "{\n  \"version\": \"v1.7.0\"\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v, err := ReadVersionFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, SemanticVersion{1, 7, 0}, v)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(after), "file must not be modified")

	_, err = ReadVersionFromFile(filepath.Join(dir, "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
