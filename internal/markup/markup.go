// Package markup renders raw topic content to HTML and maintains the
// wiki-link syntax: [[Topic Name]] or [[Topic Name|label]]. It is the
// in-repo implementation of the Renderer port; the topic service treats
// any renderer as replaceable.
package markup

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// wikiLinkRE matches the opening of a wiki link and captures the target
// name and the terminator (either the closing brackets or the label
// separator). Matching is done on raw content, so it also catches links
// inside constructs a richer renderer might suppress; for rename
// rewriting that is the safe direction.
var wikiLinkRE = regexp.MustCompile(`\[\[([^\]|]+)(\]\]|\|)`)

// inlineLinkRE matches a complete wiki link, with or without a label.
var inlineLinkRE = regexp.MustCompile(`\[\[([^\]|]+)(?:\|([^\]]*))?\]\]`)

// Renderer turns raw content into HTML plus the ordered set of topic
// names the content references.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render produces HTML-escaped, paragraph-wrapped output with wiki links
// turned into anchors, and returns the referenced names in order of first
// appearance (display case of the first occurrence wins).
func (r *Renderer) Render(raw string) (string, []string, error) {
	refs := ExtractRefs(raw)

	var out strings.Builder
	for _, para := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		out.WriteString("<p>")
		out.WriteString(renderInline(para))
		out.WriteString("</p>\n")
	}

	return out.String(), refs, nil
}

// RewriteLinks retargets wiki links from oldName to newName. Method form
// of the package function, for callers holding a Renderer.
func (r *Renderer) RewriteLinks(raw, oldName, newName string) (string, bool) {
	return RewriteLinks(raw, oldName, newName)
}

// ExtractRefs returns the names referenced by raw content, ordered by
// first appearance. Duplicate references (case-insensitive) collapse to
// the first-seen display form.
func ExtractRefs(raw string) []string {
	var refs []string
	seen := make(map[string]struct{})
	for _, m := range wikiLinkRE.FindAllStringSubmatch(raw, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		key := domain.NormalizeName(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		refs = append(refs, name)
	}
	return refs
}

// RewriteLinks replaces every wiki link targeting oldName
// (case-insensitive) with a link to newName, preserving labels and the
// rest of the content byte-for-byte. It reports whether anything changed,
// so a cascade re-run over an already-updated topic is a no-op.
func RewriteLinks(raw, oldName, newName string) (string, bool) {
	oldKey := domain.NormalizeName(oldName)
	changed := false
	out := wikiLinkRE.ReplaceAllStringFunc(raw, func(m string) string {
		sub := wikiLinkRE.FindStringSubmatch(m)
		if domain.NormalizeName(sub[1]) != oldKey {
			return m
		}
		changed = true
		return "[[" + newName + sub[2]
	})
	return out, changed
}

// renderInline escapes a paragraph and replaces wiki links with anchors.
// Plain and labeled links are handled in one left-to-right scan, so the
// two forms can interleave freely within a paragraph.
func renderInline(para string) string {
	var out strings.Builder
	last := 0
	for _, loc := range inlineLinkRE.FindAllStringSubmatchIndex(para, -1) {
		out.WriteString(html.EscapeString(para[last:loc[0]]))
		name := strings.TrimSpace(para[loc[2]:loc[3]])
		label := name
		if loc[4] >= 0 {
			if l := strings.TrimSpace(para[loc[4]:loc[5]]); l != "" {
				label = l
			}
		}
		out.WriteString(anchor(name, label))
		last = loc[1]
	}
	out.WriteString(html.EscapeString(para[last:]))
	return out.String()
}

func anchor(name, label string) string {
	return fmt.Sprintf(`<a href="/wiki/topic/%s">%s</a>`,
		html.EscapeString(domain.NormalizeName(name)), html.EscapeString(label))
}
