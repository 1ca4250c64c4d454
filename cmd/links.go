package cmd

import (
	"bufio"
	"os"
	"strings"
)

// readLinks loads the newline-delimited list of site URLs. Blank lines and
// lines starting with # are skipped. A missing file is fatal to the run.
func readLinks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LinksFileNotFoundError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	var links []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		links = append(links, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return links, nil
}
