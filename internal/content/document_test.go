package content

import (
	"testing"
)

const sampleDoc = `---
description: Example text
argument-hint: <url>
---

# Guidelines

Body text.
`

func TestParse(t *testing.T) {
	doc := Parse([]byte(sampleDoc))

	if doc.Raw != sampleDoc {
		t.Error("Parse() should keep the raw content unchanged")
	}
	if doc.FrontMatter != "description: Example text\nargument-hint: <url>" {
		t.Errorf("Parse() FrontMatter = %q", doc.FrontMatter)
	}
	if doc.Body != "\n# Guidelines\n\nBody text.\n" {
		t.Errorf("Parse() Body = %q", doc.Body)
	}
}

func TestParseCRLF(t *testing.T) {
	raw := "---\r\ndescription: Example text\r\n---\r\nBody\r\n"
	doc := Parse([]byte(raw))

	if doc.Raw != raw {
		t.Error("Parse() should keep the raw content unchanged, CRs included")
	}
	if doc.FrontMatter != "description: Example text" {
		t.Errorf("Parse() FrontMatter = %q, want CRs stripped", doc.FrontMatter)
	}
	if doc.Body != "Body\n" {
		t.Errorf("Parse() Body = %q", doc.Body)
	}
}

func TestParseNoFrontMatter(t *testing.T) {
	for name, raw := range map[string]string{
		"plain":            "# Just a heading\n\nText.\n",
		"single separator": "---\ndescription: unterminated\n",
		"empty":            "",
	} {
		doc := Parse([]byte(raw))
		if doc.HasFrontMatter() {
			t.Errorf("%s: Parse() should yield no front matter", name)
		}
		if doc.Body != raw {
			t.Errorf("%s: Parse() Body = %q, want whole content", name, doc.Body)
		}
	}
}

func TestParseIgnoresTextBeforeFirstSeparator(t *testing.T) {
	doc := Parse([]byte("preamble\n---\ndescription: d\n---\nbody\n"))

	if doc.FrontMatter != "description: d" {
		t.Errorf("Parse() FrontMatter = %q", doc.FrontMatter)
	}
	if doc.Body != "body\n" {
		t.Errorf("Parse() Body = %q", doc.Body)
	}
}

func TestMeta(t *testing.T) {
	doc := Parse([]byte(sampleDoc))

	meta, err := doc.Meta()
	if err != nil {
		t.Fatalf("Meta() error = %v", err)
	}
	if meta.Description != "Example text" {
		t.Errorf("Meta() Description = %q, want %q", meta.Description, "Example text")
	}
	if meta.ArgumentHint != "<url>" {
		t.Errorf("Meta() ArgumentHint = %q, want %q", meta.ArgumentHint, "<url>")
	}
}

func TestMetaTrimsDescription(t *testing.T) {
	doc := Parse([]byte("---\ndescription: '  padded  '\n---\nbody\n"))

	meta, err := doc.Meta()
	if err != nil {
		t.Fatalf("Meta() error = %v", err)
	}
	if meta.Description != "padded" {
		t.Errorf("Meta() Description = %q, want whitespace trimmed", meta.Description)
	}
}
