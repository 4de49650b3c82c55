package installer

import (
	"fmt"
	"strings"

	"github.com/vercel-labs/web-interface-guidelines/internal/content"
	"github.com/vercel-labs/web-interface-guidelines/internal/target"
)

// UninstallResult is the outcome of removing the guidelines from one
// target.
type UninstallResult struct {
	Target  *target.Target
	Removed bool
	Path    string
	Error   error
}

// Uninstall removes the installed guidelines from every target where
// they are present. Command and skill files are deleted (the skill's
// directory with them); the rules-file target has its marker block
// stripped instead, so unrelated rules in the shared file survive.
func (i *Installer) Uninstall() []UninstallResult {
	results := make([]UninstallResult, 0, len(i.targets))
	for _, t := range i.targets {
		result := UninstallResult{Target: t}

		dest, err := t.DestPath(i.fs)
		if err != nil {
			result.Error = err
			results = append(results, result)
			continue
		}
		result.Path = dest

		installed, err := i.isInstalled(t, dest)
		if err != nil {
			result.Error = err
			results = append(results, result)
			continue
		}
		if !installed {
			results = append(results, result)
			continue
		}

		if err := i.uninstallTarget(t, dest); err != nil {
			result.Error = err
		} else {
			result.Removed = true
		}
		results = append(results, result)
	}
	return results
}

func (i *Installer) uninstallTarget(t *target.Target, dest string) error {
	switch t.Format {
	case target.FormatSkill:
		// Remove the whole skill directory, not just SKILL.md.
		if err := i.fs.RemoveAll(i.fs.Dir(dest)); err != nil {
			return fmt.Errorf("failed to remove %s: %w", i.fs.Dir(dest), err)
		}
		return nil
	case target.FormatRules:
		data, err := i.fs.ReadFile(dest)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", dest, err)
		}
		stripped := content.StripMarkerBlock(data, target.Marker)
		if len(strings.TrimSpace(string(stripped))) == 0 {
			if err := i.fs.Remove(dest); err != nil {
				return fmt.Errorf("failed to remove %s: %w", dest, err)
			}
			return nil
		}
		return i.writeAtomic(dest, stripped)
	default:
		if err := i.fs.Remove(dest); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dest, err)
		}
		return nil
	}
}
