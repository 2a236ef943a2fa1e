package xmlcat

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// DefaultIDSeed is the ID counter start used when no existing database
// provides one. New entries get seed+1, seed+2, ...
const DefaultIDSeed = 1100000

var (
	idRe = regexp.MustCompile(`id="(\d+)"`)
	// \b keeps <NetworkPipes> from being counted as an entry.
	entryRe = regexp.MustCompile(`<NetworkPipe\b`)
)

// LastID scans a database file for id="N" attributes and returns the
// last one, so new entries continue the existing numbering. A missing
// file or a file without IDs yields the seed.
func LastID(path string, seed int) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return seed
	}
	matches := idRe.FindAllStringSubmatch(string(data), -1)
	if len(matches) == 0 {
		return seed
	}
	last, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return seed
	}
	return last
}

// CountEntries returns the number of NetworkPipe elements in a document.
func CountEntries(doc string) int {
	return len(entryRe.FindAllString(doc, -1))
}

// Merge inserts a serialized entry chunk into the database at dbPath,
// immediately before the closing </NetworkPipes> tag, and writes the
// result to outPath. The original file is left untouched.
func Merge(dbPath, outPath, chunk string) error {
	data, err := os.ReadFile(dbPath)
	if err != nil {
		return fmt.Errorf("read database: %w", err)
	}

	content := string(data)
	at := strings.LastIndex(content, docFooterTag)
	if at < 0 {
		return fmt.Errorf("database %s: closing %s tag not found", dbPath, docFooterTag)
	}

	updated := content[:at] + chunk + content[at:]
	if err := os.WriteFile(outPath, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write merged database: %w", err)
	}
	return nil
}

const docFooterTag = "</NetworkPipes>"
