// Command genmock writes a small manufacturer-style catalog workbook for
// local testing and demos. The rows follow the template conventions
// documented in internal/domain: a title line, the German header row,
// and diameter blocks that restart where the twin-pipe section begins.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/catalog.xlsx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const sheet = "Einzel- o Doppelrohr mit U-Wert"

var headers = []interface{}{
	"Produkt", "Hersteller", "Material Rohrwand", "Einzel- oder Doppelrohr",
	"Außendurchmesser [mm]", "Wandstärke [mm]", "Rohrrauigkeit [mm]",
	"Dichte Rohrwand [kg/m3]", "Wärmekapazität Rohrwand [J/kgK]",
	"U-Wert [W/mK]", "Außendurchmesser gesamt mit Isolierung und Schutzschicht [mm]",
	"Abstand Vor- und Rücklauf [mm]", "PN [bar]",
	"Wärmeleitfähigkeit Dämmung [W/mK]", "Schutzschichtdicke [mm]",
}

// Single-pipe block ramps up in diameter, then the twin-pipe block
// restarts at the smallest DN.
var rows = [][]interface{}{
	{"26.9 x 2.6", "Logstor-Dänemark", "Stahl", "Einzelrohr", 26.9, 2.6, 0.01, 7900, 480, 0.23, 90, nil, 25, 0.027, 3},
	{"33.7 x 3.2", "Logstor-Dänemark", "Stahl", "Einzelrohr", 33.7, 3.2, 0.01, 7900, 480, 0.24, 110, nil, 25, 0.027, 3},
	{"42.4 x 3.2", "Logstor-Dänemark", "Stahl", "Einzelrohr", 42.4, 3.2, 0.01, 7900, 480, 0.26, 110, nil, 25, 0.027, 3},
	{"48.3 x 3.2", "Logstor-Dänemark", "Stahl", "Einzelrohr", 48.3, 3.2, 0.01, 7900, 480, 0.27, 125, nil, 25, 0.027, 3},
	{"26.9 x 2.6 Twin", "Logstor-Dänemark", "Stahl", "Doppelrohr", 26.9, 2.6, 0.01, 7900, 480, 0.19, 125, 20, 25, 0.027, 3},
	{"33.7 x 3.2 Twin", "Logstor-Dänemark", "Stahl", "Doppelrohr", 33.7, 3.2, 0.01, 7900, 480, 0.2, 140, 25, 25, 0.027, 3},
	{"CuFlex Isoflex 28/110", "Logstor-Dänemark", "Kunststoff", "Einzelrohr", 28, 2.5, 0.007, nil, nil, 0.25, 110, nil, 16, 0.027, 3},
	{"PertFlextra 32/110", "Logstor-Dänemark", "Kunststoff (PE-X)", "Einzelrohr", 32, 2.9, 0.007, nil, nil, 0.26, 110, nil, 10, 0.027, 3},
}

func main() {
	out := flag.String("out", "data/mock/catalog.xlsx", "output workbook path")
	flag.Parse()

	if err := run(*out); err != nil {
		log.Fatal(err)
	}
}

func run(out string) error {
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet so the catalog sheet is the workbook's
	// first; readers that fall back to the first sheet then find data.
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", "VICUS Rohrkatalog Vorlage (Mock)"); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A2", &headers); err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}

	if err := f.SaveAs(out); err != nil {
		return err
	}

	fmt.Printf("wrote %s: %d catalog rows\n", out, len(rows))
	return nil
}
