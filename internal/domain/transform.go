package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/pipe-catalog-etl/internal/colormap"
	"github.com/couchcryptid/pipe-catalog-etl/internal/thermal"
)

// DetectWallMaterial derives the wall material constants from the raw
// material cell and the product name. "kunststoff" anywhere in the
// material marks plastic; an "isoflex" product forces steel regardless.
func DetectWallMaterial(material, product string) WallMaterial {
	isPlastic := strings.Contains(strings.ToLower(material), "kunststoff")
	if strings.Contains(strings.ToLower(product), "isoflex") {
		isPlastic = false
	}
	if isPlastic {
		return plasticWall
	}
	return steelWall
}

// NormalizeManufacturer reduces a raw manufacturer cell to its canonical
// catalog form: the part before the first "-", upper-cased.
// "Logstor-Dänemark" -> "LOGSTOR".
func NormalizeManufacturer(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	name, _, _ := strings.Cut(raw, "-")
	return strings.ToUpper(name)
}

// ParseLayout maps the spreadsheet layout cell to a catalog layout value.
// Anything that is not explicitly a single pipe counts as a twin pipe,
// matching the catalog's historical behavior.
func ParseLayout(raw string) string {
	if strings.Contains(raw, "Einzelrohr") {
		return LayoutSingle
	}
	return LayoutTwin
}

// FormatValue renders a numeric catalog value the way the established
// database does: integer-valued floats without a trailing ".0".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildPipe maps one catalog row to a NetworkPipe entry with the given
// ID and display color. Absent optional values produce no parameter.
func BuildPipe(row CatalogRow, id int, color, manufacturerFallback string) NetworkPipe {
	mat := DetectWallMaterial(row.WallMaterial, row.Product)

	pipe := NetworkPipe{
		ID:               id,
		Color:            color,
		CategoryName:     mat.CategoryName,
		ProductName:      strings.TrimSpace(row.Product),
		ManufacturerName: NormalizeManufacturer(row.Manufacturer, manufacturerFallback),
		FixedUValueGiven: row.UValue != nil,
		PipeLayout:       ParseLayout(row.LayoutType),
		MaterialStandard: mat.Standard,
	}

	pipe.addParam("DiameterOutside", "mm", row.OuterDiameter)
	pipe.addParam("ThicknessWall", "mm", row.WallThickness)
	pipe.addParam("RoughnessWall", "mm", row.Roughness)
	pipe.addParamValue("DensityWall", "kg/m3", orDefault(row.Density, mat.Density))
	pipe.addParamValue("HeatCapacityWall", "J/kgK", orDefault(row.HeatCapacity, mat.HeatCapacity))
	pipe.addParamValue("ThermalConductivityWall", "W/mK", mat.Conductivity)
	pipe.addParam("FixedUValue", "W/mK", row.UValue)
	pipe.addParam("FixedTotalOuterDiameter", "mm", row.TotalOuterDiameter)
	pipe.addParam("PipeSpacing", "mm", row.Spacing)

	if row.NominalPressure != nil {
		pipe.NominalPressure = FormatValue(*row.NominalPressure)
	}

	return pipe
}

// SolveInsulation enriches a pipe with a numerically solved insulation
// thickness. It is a no-op when the row lacks a target U-value or an
// insulation conductivity. A zero-thickness result (bare wall already
// sufficient) writes nothing, per the catalog's omit-zero convention.
func SolveInsulation(pipe *NetworkPipe, row CatalogRow, maxThickness float64) error {
	if row.UValue == nil || row.InsulationConductivity == nil {
		return nil
	}
	if row.OuterDiameter == nil || row.WallThickness == nil {
		return fmt.Errorf("row %q: insulation solving needs outer diameter and wall thickness", row.Product)
	}

	mat := DetectWallMaterial(row.WallMaterial, row.Product)
	da := *row.OuterDiameter / 1000 // mm -> m
	di := da - 2*(*row.WallThickness)/1000

	var jacket float64
	if row.OuterLayerThickness != nil {
		jacket = *row.OuterLayerThickness / 1000
	}

	thickness, err := thermal.Solve(thermal.Spec{
		TargetUValue:        *row.UValue,
		LambdaInsulation:    *row.InsulationConductivity,
		LambdaWall:          mat.Conductivity,
		InnerDiameter:       di,
		OuterDiameter:       da,
		OuterLayerThickness: jacket,
		MaxThickness:        maxThickness,
	})
	if err != nil {
		return fmt.Errorf("row %q: %w", row.Product, err)
	}
	if thickness == 0 {
		return nil
	}

	pipe.addParamValue("ThicknessInsulation", "mm", thickness*1000)
	pipe.addParamValue("ThermalConductivityInsulation", "W/mK", *row.InsulationConductivity)
	return nil
}

// AssignColors computes one display color per row. Rows are grouped into
// diameter blocks (a block ends where the outer diameter decreases); the
// color index resets at each block boundary and sweeps the turbo ramp
// across the block.
func AssignColors(rows []CatalogRow) []string {
	if len(rows) == 0 {
		return nil
	}

	blockSizes := diameterBlockSizes(rows)

	colors := make([]string, len(rows))
	prev := -1.0
	idx := 0
	for i, row := range rows {
		da := diameterOrZero(row)
		if da < prev {
			idx = 0
		}
		prev = da
		colors[i] = colormap.TurboHex(float64(idx) / float64(blockSizes[i]))
		idx++
	}
	return colors
}

// diameterBlockSizes returns, for every row, the length of the diameter
// block it belongs to.
func diameterBlockSizes(rows []CatalogRow) []int {
	sizes := make([]int, len(rows))
	start := 0
	prev := diameterOrZero(rows[0])
	for i := 1; i < len(rows); i++ {
		cur := diameterOrZero(rows[i])
		if cur < prev {
			fill(sizes, start, i, i-start)
			start = i
		}
		prev = cur
	}
	fill(sizes, start, len(rows), len(rows)-start)
	return sizes
}

func fill(s []int, from, to, v int) {
	for i := from; i < to; i++ {
		s[i] = v
	}
}

func diameterOrZero(row CatalogRow) float64 {
	if row.OuterDiameter == nil {
		return 0
	}
	return *row.OuterDiameter
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func (p *NetworkPipe) addParam(name, unit string, v *float64) {
	if v == nil {
		return
	}
	p.addParamValue(name, unit, *v)
}

func (p *NetworkPipe) addParamValue(name, unit string, v float64) {
	p.Parameters = append(p.Parameters, Parameter{Name: name, Unit: unit, Value: FormatValue(v)})
}
