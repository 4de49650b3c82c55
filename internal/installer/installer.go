package installer

import (
	"context"
	"fmt"

	"github.com/vercel-labs/web-interface-guidelines/internal/content"
	"github.com/vercel-labs/web-interface-guidelines/internal/fs"
	"github.com/vercel-labs/web-interface-guidelines/internal/logging"
	"github.com/vercel-labs/web-interface-guidelines/internal/target"
)

// Action is the outcome of processing a single target.
type Action string

const (
	// ActionInstalled means the guidelines were written to the target.
	ActionInstalled Action = "installed"
	// ActionAlreadyInstalled means the rules file already carries the
	// sentinel marker; nothing was rewritten.
	ActionAlreadyInstalled Action = "already-installed"
	// ActionSkipped means the tool was not detected on this machine.
	ActionSkipped Action = "skipped"
	// ActionError means the install for this target failed.
	ActionError Action = "error"
)

// Result is the outcome of processing one target.
type Result struct {
	Target *target.Target
	Action Action
	Path   string
	Error  error
}

// Source provides the command document. It is fetched at most once per
// run and reused across targets.
type Source interface {
	Fetch(ctx context.Context) (*content.Document, error)
}

// Options control a Run.
type Options struct {
	// DryRun reports what would be installed without fetching or
	// writing anything.
	DryRun bool
}

// Installer materializes the guidelines into every detected target.
type Installer struct {
	fs      fs.System
	source  Source
	targets []*target.Target

	doc    *content.Document
	docErr error
}

// New creates an Installer over the given targets, in order.
func New(fsys fs.System, source Source, targets []*target.Target) *Installer {
	return &Installer{fs: fsys, source: source, targets: targets}
}

// Run processes every target in order. Per-target failures are
// isolated: a failing target is recorded and processing continues.
func (i *Installer) Run(ctx context.Context, opts Options) []Result {
	logger := logging.GetLogger("installer")

	results := make([]Result, 0, len(i.targets))
	for _, t := range i.targets {
		result := i.runTarget(ctx, t, opts)
		logger.Debug().
			Str("target", t.Name).
			Str("action", string(result.Action)).
			Str("path", result.Path).
			Err(result.Error).
			Msg("processed target")
		results = append(results, result)
	}
	return results
}

func (i *Installer) runTarget(ctx context.Context, t *target.Target, opts Options) Result {
	result := Result{Target: t}

	if !t.Detected(i.fs) {
		result.Action = ActionSkipped
		return result
	}

	dest, err := t.DestPath(i.fs)
	if err != nil {
		result.Action = ActionError
		result.Error = err
		return result
	}
	result.Path = dest

	if t.Format == target.FormatRules && i.fs.Exists(dest) {
		existing, err := i.fs.ReadFile(dest)
		if err != nil {
			result.Action = ActionError
			result.Error = fmt.Errorf("failed to read %s: %w", dest, err)
			return result
		}
		if content.ContainsMarker(existing, target.Marker) {
			result.Action = ActionAlreadyInstalled
			return result
		}
	}

	if opts.DryRun {
		result.Action = ActionInstalled
		return result
	}

	doc, err := i.document(ctx)
	if err != nil {
		result.Action = ActionError
		result.Error = err
		return result
	}

	data, err := i.render(t, dest, doc)
	if err != nil {
		result.Action = ActionError
		result.Error = err
		return result
	}

	if err := i.writeAtomic(dest, data); err != nil {
		result.Action = ActionError
		result.Error = err
		return result
	}

	result.Action = ActionInstalled
	return result
}

// document fetches the command document once and caches the outcome,
// error included, for the rest of the run.
func (i *Installer) document(ctx context.Context) (*content.Document, error) {
	if i.doc == nil && i.docErr == nil {
		i.doc, i.docErr = i.source.Fetch(ctx)
	}
	return i.doc, i.docErr
}

func (i *Installer) render(t *target.Target, dest string, doc *content.Document) ([]byte, error) {
	switch t.Format {
	case target.FormatCommand:
		return []byte(doc.Raw), nil
	case target.FormatSkill:
		return content.Skill(doc, target.CommandName), nil
	case target.FormatTOML:
		return content.CommandTOML(doc)
	case target.FormatRules:
		var existing []byte
		if i.fs.Exists(dest) {
			data, err := i.fs.ReadFile(dest)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", dest, err)
			}
			existing = data
		}
		return content.AppendBlock(existing, target.Marker, doc), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", t.Format)
	}
}

// writeAtomic writes the full content to a temporary file next to the
// destination and renames it into place, so a failure never leaves a
// half-written file.
func (i *Installer) writeAtomic(dest string, data []byte) error {
	dir := i.fs.Dir(dest)
	if err := i.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp := dest + ".tmp"
	if err := i.fs.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := i.fs.Rename(tmp, dest); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", tmp, err)
	}
	return nil
}

// Installed counts the results that left the target with the
// guidelines in place.
func Installed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Action == ActionInstalled || r.Action == ActionAlreadyInstalled {
			n++
		}
	}
	return n
}
