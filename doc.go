// Package main implements the convver CLI tool.
//
// The convver tool prints the next semantic version of a project from the
// Conventional Commit messages written since its last release. It reads the
// messages from a file or stdin, takes the last released version from a flag,
// a project file or a YAML properties file, and writes the result to stdout.
// It never touches git and never writes files; feed it the output of git log
// and use the printed version however your release process needs.
//
// Command Usage:
//
//	convver [flags] [commits-file]
//	convver version
//
// Flags:
//
//	-l, --last-version:  Last released version (1.2.3 or v1.2.3). Without any last
//	                     version the result is always 0.1.0.
//	--version-file:      Read the last released version from a file such as version.go,
//	                     package.json, Cargo.toml or VERSION.
//	-p, --properties:    YAML properties file. Recognized keys are lastVersion,
//	                     tagPrefix and versionFile; flags take precedence.
//	--tag-prefix:        Prefix stripped from the last version and prepended by
//	                     --output tag. (Defaults to "v")
//	--separator:         line (default), nul or blank.
//	-o, --output:        version (default), tag, summary or yaml.
//	--log-level:         debug, info, warn (default) or error. Logs go to stderr.
//
// Examples:
//
//	# One subject per line since the last tag (e.g. 1.2.3 → 1.3.0 with a feat commit)
//	git log --format=%s v1.2.3..HEAD | convver --last-version v1.2.3
//
//	# Take the last version from package.json and print a summary
//	convver --version-file package.json -o summary commits.txt
//
//	# NUL-separated input; a message is only matched when it is a single line,
//	# though "BREAKING CHANGE" is found anywhere in it
//	git log -z --format=%s v1.2.3..HEAD | convver -l 1.2.3 --separator nul
//
// For the library API, see the documentation in the "pkg" package.
package main
