package target

import (
	"github.com/vercel-labs/web-interface-guidelines/internal/fs"
)

// Format selects how the command document is materialized for a target.
type Format int

const (
	// FormatCommand writes the document unchanged as a command file.
	FormatCommand Format = iota
	// FormatSkill writes a SKILL.md with rewritten front matter.
	FormatSkill
	// FormatRules appends the document to a shared rules file,
	// guarded by a sentinel marker.
	FormatRules
	// FormatTOML writes the document as a TOML command file.
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatCommand:
		return "command"
	case FormatSkill:
		return "skill"
	case FormatRules:
		return "rules"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Target describes one supported coding-agent tool: how to detect it
// and where its copy of the guidelines goes.
type Target struct {
	// Name is the short identifier (e.g. "claude").
	Name string
	// DisplayName is the human-facing tool name (e.g. "Claude Code").
	DisplayName string
	// InstallURL points at the tool's own installation instructions,
	// shown when no supported tool is found.
	InstallURL string
	// Format selects the content transform for this target.
	Format Format

	// homeDirs are directory names under the user's home whose
	// presence marks the tool as installed (e.g. ".claude").
	homeDirs []string
	// commands are executable names whose presence on PATH marks the
	// tool as installed.
	commands []string
	// destPath resolves the destination file for this target.
	destPath func(fsys fs.System) (string, error)
}

// Detected reports whether the tool is present on this machine. Home
// directory predicates and PATH predicates are independent; either one
// matching is enough.
func (t *Target) Detected(fsys fs.System) bool {
	if home, err := fsys.UserHomeDir(); err == nil {
		for _, dir := range t.homeDirs {
			if fsys.IsDir(fsys.Join(home, dir)) {
				return true
			}
		}
	}
	for _, cmd := range t.commands {
		if _, err := fsys.LookPath(cmd); err == nil {
			return true
		}
	}
	return false
}

// DestPath returns the file the guidelines are installed to for this
// target.
func (t *Target) DestPath(fsys fs.System) (string, error) {
	return t.destPath(fsys)
}
