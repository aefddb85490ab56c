// Package diff implements the Differ port on top of diff-match-patch.
package diff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Engine produces line-oriented unified-style diffs between two content
// snapshots.
type Engine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// New creates an Engine.
func New() *Engine {
	return &Engine{dmp: diffmatchpatch.New()}
}

// Diff returns a human-readable diff of the two texts. Insertions are
// prefixed with "+", deletions with "-", unchanged spans pass through.
func (e *Engine) Diff(oldText, newText string) (string, error) {
	diffs := e.dmp.DiffMain(oldText, newText, true)
	diffs = e.dmp.DiffCleanupSemantic(diffs)

	var out []byte
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			out = append(out, '+')
			out = append(out, d.Text...)
		case diffmatchpatch.DiffDelete:
			out = append(out, '-')
			out = append(out, d.Text...)
		default:
			out = append(out, d.Text...)
		}
	}
	return string(out), nil
}
