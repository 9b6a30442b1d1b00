// Package utils holds small runtime helpers shared across the app.
package utils

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// CheckStdin reports whether data is being piped into the process.
func CheckStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// ReadStdin reads newline-separated domains from stdin, skipping blanks.
func ReadStdin() ([]string, error) {
	var domains []string
	reader := bufio.NewReader(os.Stdin)

	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			domains = append(domains, line)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return domains, nil
}
