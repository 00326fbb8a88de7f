package host

import (
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource reads a hierarchy dump from a file. The path "-" reads stdin,
// so dumps can be piped straight from a test-run log.
type FileSource struct {
	Path string
}

func (s FileSource) FetchDump(_ context.Context) (string, error) {
	if s.Path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read dump from stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read dump: %w", err)
	}
	return string(b), nil
}
