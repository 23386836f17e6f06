// Command subcat reads each file named on the command line in order and
// writes their contents to standard output, separated by single zero
// bytes, with no trailing separator. This is the canonical way to
// prepare document-mode input for subfreq (spec §6, "Concatenation
// utility").
//
// Usage:
//
//	subcat FILE... > corpus
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

func run(paths []string, out io.Writer) error {
	w := bufio.NewWriterSize(out, 256*1024)
	defer w.Flush()

	for i, path := range paths {
		if i > 0 {
			if _, err := w.Write([]byte{0}); err != nil {
				return fmt.Errorf("subcat: writing separator: %w", err)
			}
		}

		if err := copyFile(w, path); err != nil {
			return err
		}
	}

	return w.Flush()
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("subcat: opening %q: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("subcat: reading %q: %w", path, err)
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s FILE...\n", os.Args[0])
		os.Exit(64) // EX_USAGE
	}

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
