package commands

import (
	"bufio"
	"io"
	"strings"
)

// readLines collects non-empty trimmed lines from r until EOF. Commands
// that accept candidates as arguments fall back to this for stdin input.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
