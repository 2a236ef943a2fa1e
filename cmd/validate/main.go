// Command validate cross-checks a generated pipe database XML against
// its source workbook: entry count vs. usable rows, ID continuity, and
// presence of the mandatory parameters on every entry.
//
// Usage:
//
//	go run ./cmd/validate -xlsx data/mock/catalog.xlsx -xml data/mock/catalog.xml
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/couchcryptid/pipe-catalog-etl/internal/xlsx"
	"github.com/couchcryptid/pipe-catalog-etl/internal/xmlcat"
)

var (
	idRe    = regexp.MustCompile(`<NetworkPipe id="(\d+)"`)
	paramRe = regexp.MustCompile(`<IBK:Parameter name="DiameterOutside"`)
)

func main() {
	xlsxPath := flag.String("xlsx", "", "source workbook")
	xmlPath := flag.String("xml", "", "generated database XML")
	sheet := flag.String("sheet", "", "worksheet name (default: first sheet)")
	flag.Parse()

	if *xlsxPath == "" || *xmlPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*xlsxPath, *xmlPath, *sheet); err != nil {
		fmt.Fprintln(os.Stderr, "FAIL:", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}

func run(xlsxPath, xmlPath, sheet string) error {
	rows, err := xlsx.Read(xlsxPath, sheet)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(xmlPath)
	if err != nil {
		return err
	}
	doc := string(data)

	entries := xmlcat.CountEntries(doc)
	fmt.Printf("%s: %d rows, %s: %d entries\n", xlsxPath, len(rows), xmlPath, entries)
	if entries > len(rows) {
		return fmt.Errorf("more entries (%d) than source rows (%d)", entries, len(rows))
	}
	if entries == 0 {
		return fmt.Errorf("no entries in %s", xmlPath)
	}

	ids := idRe.FindAllStringSubmatch(doc, -1)
	if len(ids) != entries {
		return fmt.Errorf("found %d id attributes for %d entries", len(ids), entries)
	}
	prev := 0
	for i, m := range ids {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("entry %d: bad id %q", i, m[1])
		}
		if i > 0 && id != prev+1 {
			return fmt.Errorf("id gap: %d follows %d", id, prev)
		}
		prev = id
	}

	if got := len(paramRe.FindAllString(doc, -1)); got != entries {
		return fmt.Errorf("%d entries but %d DiameterOutside parameters", entries, got)
	}

	return nil
}
