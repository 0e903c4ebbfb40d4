package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."

	// DefaultContext is the number of unchanged lines kept around each hunk.
	DefaultContext = 3
)

// GenerateUnifiedDiff compares two texts line by line in unified format.
// Returns an empty string if the content is identical.
// Truncates diffs exceeding 10,000 lines with a truncation marker.
func GenerateUnifiedDiff(before, after, beforeLabel, afterLabel string, context int) (string, error) {
	if before == after {
		return "", nil
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(terminate(before)),
		B:        difflib.SplitLines(terminate(after)),
		FromFile: beforeLabel,
		ToFile:   afterLabel,
		Context:  max(context, 0),
	})
	if err != nil {
		return "", err
	}
	return truncate(out), nil
}

// GenerateWordDiff marks changed spans inline, git word-diff style:
// [-removed-]{+added+}. Returns an empty string if the content is identical.
func GenerateWordDiff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		}
	}
	return truncate(terminate(buf.String()))
}

func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func truncate(result string) string {
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}
	return result
}
