// Package stdin provides utilities for handling piped input
package stdin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxInputSize is the maximum size of input to process (100KB)
const MaxInputSize = 100 * 1024

// headSize and tailSize control how much is kept from each end when truncating.
const (
	headSize = 40 * 1024
	tailSize = 40 * 1024
)

// IsPiped returns true if stdin has piped input
func IsPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// Read reads all content from stdin up to MaxInputSize
func Read() (string, error) {
	return ReadFrom(os.Stdin)
}

// ReadFrom reads all content from the given reader up to MaxInputSize
func ReadFrom(r io.Reader) (string, error) {
	var sb strings.Builder
	reader := bufio.NewReader(r)
	buf := make([]byte, 4096)
	totalRead := 0

	for totalRead < MaxInputSize {
		n, err := reader.Read(buf)
		if n > 0 {
			if totalRead+n > MaxInputSize {
				n = MaxInputSize - totalRead
			}
			sb.Write(buf[:n])
			totalRead += n
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return sb.String(), err
		}
	}

	return sb.String(), nil
}

// Truncate shortens content to fit within maxSize, keeping the head and the
// tail and inserting a marker for the omitted middle.
func Truncate(content string, maxSize int) string {
	if len(content) <= maxSize {
		return content
	}

	head := headSize
	tail := tailSize
	if maxSize < head+tail {
		head = maxSize / 2
		tail = maxSize - head
	}

	headPart := content[:head]
	tailPart := content[len(content)-tail:]

	// Prefer breaking at newlines for cleaner output
	if idx := strings.LastIndex(headPart, "\n"); idx > head/2 {
		headPart = content[:idx+1]
	}
	if idx := strings.Index(tailPart, "\n"); idx > 0 && idx < tail/2 {
		tailPart = content[len(content)-tail+idx+1:]
	}

	omitted := len(content) - len(headPart) - len(tailPart)
	marker := fmt.Sprintf("\n[... %d bytes omitted ...]\n", omitted)
	return headPart + marker + tailPart
}
