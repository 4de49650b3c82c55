package installer

import (
	"fmt"

	"github.com/vercel-labs/web-interface-guidelines/internal/content"
	"github.com/vercel-labs/web-interface-guidelines/internal/target"
)

// StatusResult describes one target's state on this machine.
type StatusResult struct {
	Target    *target.Target
	Detected  bool
	Installed bool
	Path      string
	Error     error
}

// Status reports, per target, whether the tool is present and whether
// the guidelines are installed. It performs no writes.
func (i *Installer) Status() []StatusResult {
	results := make([]StatusResult, 0, len(i.targets))
	for _, t := range i.targets {
		result := StatusResult{Target: t}

		result.Detected = t.Detected(i.fs)

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
		}
		result.Installed = installed
		results = append(results, result)
	}
	return results
}

// isInstalled reports whether the guidelines are present at dest. For
// the rules-file target, presence means the sentinel marker appears in
// the shared file; a bare AGENTS.md without it does not count.
func (i *Installer) isInstalled(t *target.Target, dest string) (bool, error) {
	if !i.fs.Exists(dest) {
		return false, nil
	}
	if t.Format != target.FormatRules {
		return true, nil
	}
	data, err := i.fs.ReadFile(dest)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", dest, err)
	}
	return content.ContainsMarker(data, target.Marker), nil
}
