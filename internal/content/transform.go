package content

import (
	"fmt"
	"strings"
)

// Skill renders the document as a SKILL.md file. The front matter
// gains a name field as its first entry and loses any argument-hint
// entry; every other front-matter line is preserved verbatim.
func Skill(d *Document, name string) []byte {
	var fmLines []string
	for _, line := range strings.Split(d.FrontMatter, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "name:") || strings.HasPrefix(trimmed, "argument-hint:") {
			continue
		}
		fmLines = append(fmLines, line)
	}

	var b strings.Builder
	b.WriteString(separator + "\n")
	b.WriteString("name: " + name + "\n")
	for _, line := range fmLines {
		b.WriteString(line + "\n")
	}
	b.WriteString(separator + "\n")
	b.WriteString(d.Body)
	return []byte(b.String())
}

// CommandTOML renders the document as a TOML command file: the front
// matter's description becomes a description key, the body becomes a
// multi-line prompt string. Backslashes in the body are doubled so the
// text survives TOML basic-string unescaping.
func CommandTOML(d *Document) ([]byte, error) {
	meta, err := d.Meta()
	if err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}

	desc := strings.ReplaceAll(meta.Description, `\`, `\\`)
	desc = strings.ReplaceAll(desc, `"`, `\"`)

	body := strings.ReplaceAll(d.Body, `\`, `\\`)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	var b strings.Builder
	b.WriteString(`description = "` + desc + `"` + "\n")
	b.WriteString("\n")
	b.WriteString(`prompt = """` + "\n")
	b.WriteString(body)
	b.WriteString(`"""` + "\n")
	return []byte(b.String()), nil
}

// AppendBlock builds the content of a shared rules file after
// installation: the prior content (if any), one blank separator line,
// the sentinel marker, a blank line, and the document.
func AppendBlock(existing []byte, marker string, d *Document) []byte {
	var b strings.Builder
	if len(existing) > 0 {
		b.Write(existing)
		if !strings.HasSuffix(string(existing), "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(marker + "\n\n")
	b.WriteString(d.Raw)
	return []byte(b.String())
}

// ContainsMarker reports whether the sentinel marker appears on its own
// line in data.
func ContainsMarker(data []byte, marker string) bool {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimRight(line, "\r") == marker {
			return true
		}
	}
	return false
}

// StripMarkerBlock removes the installed block from a shared rules
// file: everything from the sentinel marker line to the end of the
// file, plus any blank lines immediately before the marker. The block
// is written last by AppendBlock, so truncating at the marker removes
// exactly what was installed unless the user appended below it.
func StripMarkerBlock(data []byte, marker string) []byte {
	lines := strings.Split(string(data), "\n")
	idx := -1
	for i, line := range lines {
		if strings.TrimRight(line, "\r") == marker {
			idx = i
			break
		}
	}
	if idx == -1 {
		return data
	}

	for idx > 0 && strings.TrimSpace(lines[idx-1]) == "" {
		idx--
	}
	if idx == 0 {
		return nil
	}
	return []byte(strings.Join(lines[:idx], "\n") + "\n")
}
