package diff

import (
	"strings"
	"testing"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	content := "line1\nline2\nline3\n"

	result, err := GenerateUnifiedDiff(content, content, "before", "after", DefaultContext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	before := "line1\nline2\nline3"
	after := "line1\nmodified\nline3"

	result, err := GenerateUnifiedDiff(before, after, "before.yaml", "after.yaml", DefaultContext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "--- before.yaml") || !strings.Contains(result, "+++ after.yaml") {
		t.Errorf("Diff should contain unified diff headers, got: %s", result)
	}
	if !strings.Contains(result, "-line2\n") {
		t.Error("Diff should show removed line with - prefix")
	}
	if !strings.Contains(result, "+modified\n") {
		t.Error("Diff should show added line with + prefix")
	}
	if !strings.Contains(result, " line3\n") {
		t.Error("Diff should keep the unterminated last line as context")
	}
}

func TestGenerateUnifiedDiff_ContextWindow(t *testing.T) {
	before := "a\nb\nc\nd\ne\nf\ng\n"
	after := "a\nb\nc\nD\ne\nf\ng\n"

	result, err := GenerateUnifiedDiff(before, after, "x", "y", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(result, " b\n") {
		t.Errorf("Context of one line should drop b, got: %s", result)
	}
	if !strings.Contains(result, " c\n") || !strings.Contains(result, " e\n") {
		t.Errorf("Context of one line should keep c and e, got: %s", result)
	}

	negative, err := GenerateUnifiedDiff(before, after, "x", "y", -4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(negative, " c\n") {
		t.Errorf("Negative context should clamp to zero, got: %s", negative)
	}
}

func TestGenerateUnifiedDiff_TruncatesLargeDiffs(t *testing.T) {
	var before, after strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		before.WriteString("old\n")
		after.WriteString("new\n")
	}

	result, err := GenerateUnifiedDiff(before.String(), after.String(), "a", "b", DefaultContext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(result, truncateMessage+"\n") {
		t.Error("Large diffs should end with the truncation marker")
	}
}

func TestGenerateWordDiff(t *testing.T) {
	if got := GenerateWordDiff("same", "same"); got != "" {
		t.Errorf("Expected empty word diff for identical content, got: %q", got)
	}

	result := GenerateWordDiff(`backgroundColor: "red",`, `backgroundColor: "blue",`)
	if !strings.HasPrefix(result, `backgroundColor: "`) {
		t.Errorf("Unchanged prefix should be kept verbatim, got: %q", result)
	}
	if !strings.Contains(result, "[-") || !strings.Contains(result, "{+") {
		t.Errorf("Word diff should mark removed and added spans, got: %q", result)
	}
	if !strings.HasSuffix(result, "\",\n") {
		t.Errorf("Unchanged suffix should be kept and terminated, got: %q", result)
	}
}
