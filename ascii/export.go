package ascii

import (
	"bufio"
	"fmt"
	"os"
)

// ExportFrames writes the decoded frame texts to path, each preceded by a
// "--- FRAME n ---" header and followed by a blank line. Fails with
// [ErrExportFailed] on any write error (permission denied, disk full).
func (s *Service) ExportFrames(path string, frames []string) error {
	f, err := os.Create(path) //nolint:gosec // Export path is a user-provided CLI argument.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	w := bufio.NewWriter(f)

	for i, frame := range frames {
		_, err = fmt.Fprintf(w, "--- FRAME %d ---\n%s\n", i, frame)
		if err != nil {
			_ = f.Close()

			return fmt.Errorf("%w: %w", ErrExportFailed, err)
		}
	}

	err = w.Flush()
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	return nil
}
