package target

import (
	"fmt"

	"github.com/vercel-labs/web-interface-guidelines/internal/fs"
)

const (
	// CommandName is the installed command's base name.
	CommandName = "web-interface-guidelines"
	// Marker guards the rules-file target against duplicate installs.
	Marker = "<!-- web-interface-guidelines -->"
)

// homeCommandPath resolves <home>/<dir>/commands/<CommandName><ext>.
func homeCommandPath(dir, ext string) func(fs.System) (string, error) {
	return func(fsys fs.System) (string, error) {
		home, err := fsys.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return fsys.Join(home, dir, "commands", CommandName+ext), nil
	}
}

// ampSkillPath resolves the Amp skills directory: $AMP_SKILLS_DIR when
// set, otherwise $XDG_CONFIG_HOME/amp/skills, otherwise
// ~/.config/amp/skills.
func ampSkillPath(fsys fs.System) (string, error) {
	skillsDir := fsys.Getenv("AMP_SKILLS_DIR")
	if skillsDir == "" {
		configHome := fsys.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, err := fsys.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configHome = fsys.Join(home, ".config")
		}
		skillsDir = fsys.Join(configHome, "amp", "skills")
	}
	return fsys.Join(skillsDir, CommandName, "SKILL.md"), nil
}

// codexRulesPath resolves the shared Codex rules file.
func codexRulesPath(fsys fs.System) (string, error) {
	home, err := fsys.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return fsys.Join(home, ".codex", "AGENTS.md"), nil
}

// Defaults returns the supported targets in their fixed processing
// order. The order is part of the tool's console-output contract.
func Defaults() []*Target {
	return []*Target{
		{
			Name:        "claude",
			DisplayName: "Claude Code",
			InstallURL:  "https://claude.com/claude-code",
			Format:      FormatCommand,
			homeDirs:    []string{".claude"},
			destPath:    homeCommandPath(".claude", ".md"),
		},
		{
			Name:        "cursor",
			DisplayName: "Cursor",
			InstallURL:  "https://cursor.com",
			Format:      FormatCommand,
			homeDirs:    []string{".cursor"},
			destPath:    homeCommandPath(".cursor", ".md"),
		},
		{
			Name:        "amp",
			DisplayName: "Amp",
			InstallURL:  "https://ampcode.com",
			Format:      FormatSkill,
			commands:    []string{"amp"},
			destPath:    ampSkillPath,
		},
		{
			Name:        "codex",
			DisplayName: "Codex",
			InstallURL:  "https://developers.openai.com/codex",
			Format:      FormatRules,
			homeDirs:    []string{".codex"},
			commands:    []string{"codex"},
			destPath:    codexRulesPath,
		},
		{
			Name:        "gemini",
			DisplayName: "Gemini CLI",
			InstallURL:  "https://github.com/google-gemini/gemini-cli",
			Format:      FormatTOML,
			homeDirs:    []string{".gemini"},
			destPath:    homeCommandPath(".gemini", ".toml"),
		},
	}
}
