package content

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// separator is a standalone front-matter delimiter line.
const separator = "---"

// Document is a fetched guidelines document. Raw holds the exact bytes
// as fetched; FrontMatter and Body are derived from a CR-normalized
// view so CRLF content parses the same as LF content.
type Document struct {
	Raw         string
	FrontMatter string
	Body        string
}

// FrontMatter is the YAML metadata block of a command document.
type FrontMatter struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	ArgumentHint string `yaml:"argument-hint"`
}

// Parse splits raw content into front matter and body.
//
// The front matter is the text between the first and second standalone
// "---" lines; the body is everything after the second. Content with
// fewer than two separator lines has no front matter and the whole
// text becomes the body.
func Parse(raw []byte) *Document {
	doc := &Document{Raw: string(raw)}

	normalized := strings.ReplaceAll(doc.Raw, "\r", "")
	lines := strings.Split(normalized, "\n")

	first, second := -1, -1
	for i, line := range lines {
		if line != separator {
			continue
		}
		if first == -1 {
			first = i
			continue
		}
		second = i
		break
	}

	if first == -1 || second == -1 {
		doc.Body = normalized
		return doc
	}

	doc.FrontMatter = strings.Join(lines[first+1:second], "\n")
	doc.Body = strings.Join(lines[second+1:], "\n")
	return doc
}

// Meta decodes the front matter into its typed form.
func (d *Document) Meta() (*FrontMatter, error) {
	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(d.FrontMatter), &fm); err != nil {
		return nil, err
	}
	fm.Description = strings.TrimSpace(fm.Description)
	return &fm, nil
}

// HasFrontMatter reports whether the document carried a front-matter block.
func (d *Document) HasFrontMatter() bool {
	return d.FrontMatter != ""
}
