package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWordList reads a one-word-per-line list file into a lowercase set.
// Blank lines and lines starting with # are skipped.
func LoadWordList(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return words, nil
}

// LoadOptionalWordList is LoadWordList but a missing file yields an empty
// set. Used for the curated proper-noun list, which not every corpus
// version ships.
func LoadOptionalWordList(path string) (map[string]bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return make(map[string]bool), nil
	}
	return LoadWordList(path)
}
