package installer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/vercel-labs/web-interface-guidelines/internal/fs"
	"github.com/vercel-labs/web-interface-guidelines/internal/installer"
	"github.com/vercel-labs/web-interface-guidelines/internal/target"
)

func TestStatus(t *testing.T) {
	mock := fs.NewMock()
	mock.Dirs["/home/test/.claude"] = true
	mock.Dirs["/home/test/.cursor"] = true
	mock.Files["/home/test/.claude/commands/web-interface-guidelines.md"] = []byte("doc")

	results := newInstaller(mock, nil).Status()

	byName := make(map[string]installer.StatusResult)
	for _, r := range results {
		byName[r.Target.Name] = r
	}

	if r := byName["claude"]; !r.Detected || !r.Installed {
		t.Errorf("claude = detected %v installed %v, want both true", r.Detected, r.Installed)
	}
	if r := byName["cursor"]; !r.Detected || r.Installed {
		t.Errorf("cursor = detected %v installed %v, want detected only", r.Detected, r.Installed)
	}
	if r := byName["gemini"]; r.Detected || r.Installed {
		t.Errorf("gemini = detected %v installed %v, want neither", r.Detected, r.Installed)
	}
}

func TestStatusRulesFileWithoutMarker(t *testing.T) {
	mock := fs.NewMock()
	mock.Dirs["/home/test/.codex"] = true
	mock.Files["/home/test/.codex/AGENTS.md"] = []byte("user rules, not ours\n")

	results := newInstaller(mock, nil).Status()

	for _, r := range results {
		if r.Target.Name != "codex" {
			continue
		}
		if !r.Detected {
			t.Error("codex should be detected")
		}
		if r.Installed {
			t.Error("a rules file without the marker does not count as installed")
		}
	}
}

func TestUninstallRemovesInstalledFiles(t *testing.T) {
	mock := fs.NewMock()
	mock.Dirs["/home/test/.claude"] = true
	mock.Commands["amp"] = "/usr/local/bin/amp"

	inst := newInstaller(mock, newStubSource())
	inst.Run(context.Background(), installer.Options{})

	results := newInstaller(mock, nil).Uninstall()

	removed := 0
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("%s: unexpected error %v", r.Target.Name, r.Error)
		}
		if r.Removed {
			removed++
		}
	}
	if removed != 2 {
		t.Errorf("removed %d targets, want 2", removed)
	}

	if mock.Exists("/home/test/.claude/commands/web-interface-guidelines.md") {
		t.Error("claude command file should be removed")
	}
	if mock.Exists("/home/test/.config/amp/skills/web-interface-guidelines") {
		t.Error("amp skill directory should be removed")
	}
}

func TestUninstallStripsRulesBlock(t *testing.T) {
	mock := fs.NewMock()
	mock.Dirs["/home/test/.codex"] = true
	mock.Files["/home/test/.codex/AGENTS.md"] = []byte("user rules\n")

	newInstaller(mock, newStubSource()).Run(context.Background(), installer.Options{})

	data, _ := mock.ReadFile("/home/test/.codex/AGENTS.md")
	if !strings.Contains(string(data), target.Marker) {
		t.Fatal("precondition: marker installed")
	}

	newInstaller(mock, nil).Uninstall()

	after, err := mock.ReadFile("/home/test/.codex/AGENTS.md")
	if err != nil {
		t.Fatal("rules file with prior content should survive uninstall")
	}
	if string(after) != "user rules\n" {
		t.Errorf("rules file = %q, want only the user's own rules", after)
	}
}

func TestUninstallRemovesEmptyRulesFile(t *testing.T) {
	mock := fs.NewMock()
	mock.Dirs["/home/test/.codex"] = true

	newInstaller(mock, newStubSource()).Run(context.Background(), installer.Options{})
	newInstaller(mock, nil).Uninstall()

	if mock.Exists("/home/test/.codex/AGENTS.md") {
		t.Error("a rules file holding only our block should be removed entirely")
	}
}

func TestUninstallNothingInstalled(t *testing.T) {
	mock := fs.NewMock()
	mock.Dirs["/home/test/.claude"] = true

	results := newInstaller(mock, nil).Uninstall()

	for _, r := range results {
		if r.Removed {
			t.Errorf("%s: nothing was installed, nothing should be removed", r.Target.Name)
		}
		if r.Error != nil {
			t.Errorf("%s: unexpected error %v", r.Target.Name, r.Error)
		}
	}
}
