// Package xlsx reads manufacturer catalog workbooks into domain rows.
package xlsx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/pipe-catalog-etl/internal/domain"
)

// headerRowIndex is the zero-based row holding the German column headers.
// Manufacturer templates put a title line above it.
const headerRowIndex = 1

// Column headers as they appear in the manufacturer templates.
const (
	colProduct            = "Produkt"
	colManufacturer       = "Hersteller"
	colWallMaterial       = "Material Rohrwand"
	colLayout             = "Einzel- oder Doppelrohr"
	colOuterDiameter      = "Außendurchmesser [mm]"
	colWallThickness      = "Wandstärke [mm]"
	colRoughness          = "Rohrrauigkeit [mm]"
	colDensity            = "Dichte Rohrwand [kg/m3]"
	colHeatCapacity       = "Wärmekapazität Rohrwand [J/kgK]"
	colUValue             = "U-Wert [W/mK]"
	colTotalOuterDiameter = "Außendurchmesser gesamt mit Isolierung und Schutzschicht [mm]"
	colSpacing            = "Abstand Vor- und Rücklauf [mm]"
	colNominalPressure    = "PN [bar]"
	colInsulationLambda   = "Wärmeleitfähigkeit Dämmung [W/mK]"
	colOuterLayer         = "Schutzschichtdicke [mm]"
)

// Read opens the workbook and parses the given sheet into catalog rows.
// Rows missing both a product and an outer diameter are dropped, matching
// the templates' trailing note lines. Unparseable numeric cells are
// treated as absent rather than failing the file.
func Read(path, sheet string) ([]domain.CatalogRow, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer file.Close()

	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	cells, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(cells) <= headerRowIndex {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	columns := indexHeaders(cells[headerRowIndex])
	if _, ok := columns[colOuterDiameter]; !ok {
		return nil, fmt.Errorf("sheet %q: header row missing %q", sheet, colOuterDiameter)
	}

	var rows []domain.CatalogRow
	for _, raw := range cells[headerRowIndex+1:] {
		row := parseRow(raw, columns)
		if row.Product == "" && row.OuterDiameter == nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// indexHeaders maps header text to its column index.
func indexHeaders(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h != "" {
			columns[h] = i
		}
	}
	return columns
}

func parseRow(raw []string, columns map[string]int) domain.CatalogRow {
	get := func(col string) string {
		i, ok := columns[col]
		if !ok || i >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[i])
	}
	num := func(col string) *float64 {
		s := get(col)
		if s == "" {
			return nil
		}
		// Templates edited in German locales sometimes carry decimal commas.
		s = strings.ReplaceAll(s, ",", ".")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &v
	}

	return domain.CatalogRow{
		Product:      get(colProduct),
		Manufacturer: get(colManufacturer),
		WallMaterial: get(colWallMaterial),
		LayoutType:   get(colLayout),

		OuterDiameter:      num(colOuterDiameter),
		WallThickness:      num(colWallThickness),
		Roughness:          num(colRoughness),
		Density:            num(colDensity),
		HeatCapacity:       num(colHeatCapacity),
		UValue:             num(colUValue),
		TotalOuterDiameter: num(colTotalOuterDiameter),
		Spacing:            num(colSpacing),
		NominalPressure:    num(colNominalPressure),

		InsulationConductivity: num(colInsulationLambda),
		OuterLayerThickness:    num(colOuterLayer),
	}
}
