package stdin

import (
	"strings"
	"testing"
)

func TestReadFrom(t *testing.T) {
	content := "display report line 1\ndisplay report line 2\n"
	got, err := ReadFrom(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestReadFromCapsAtMaxInputSize(t *testing.T) {
	big := strings.Repeat("x", MaxInputSize+500)
	got, err := ReadFrom(strings.NewReader(big))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if len(got) != MaxInputSize {
		t.Errorf("len = %d, want %d", len(got), MaxInputSize)
	}
}

func TestTruncate(t *testing.T) {
	short := "fits fine"
	if got := Truncate(short, 100); got != short {
		t.Errorf("short content should pass through, got %q", got)
	}

	long := strings.Repeat("line of output\n", 10000)
	got := Truncate(long, 1000)
	if len(got) >= len(long) {
		t.Error("long content should shrink")
	}
	if !strings.Contains(got, "omitted") {
		t.Error("truncated content should carry the omission marker")
	}
}
