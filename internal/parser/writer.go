package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// OutputPath returns the path the translated dump is written to.
func OutputPath(inputPath string) string {
	return inputPath + OutputSuffix
}

// Write emits one `<index>,"<text>"` line per index, in ascending index order.
func Write(w io.Writer, lines map[int]string) error {
	indices := make([]int, 0, len(lines))
	for idx := range lines {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	bw := bufio.NewWriter(w)
	for _, idx := range indices {
		if _, err := fmt.Fprintf(bw, "%d,\"%s\"\n", idx, lines[idx]); err != nil {
			return fmt.Errorf("write line %d: %w", idx, err)
		}
	}
	return bw.Flush()
}

// WriteFile writes the completed lines to path, replacing any existing file.
func WriteFile(path string, lines map[int]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := Write(f, lines); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
