package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/pipe-catalog-etl/internal/thermal"
)

func f(v float64) *float64 { return &v }

func steelRow() CatalogRow {
	return CatalogRow{
		Product:            "88.9 x 3.2",
		Manufacturer:       "Logstor-Dänemark",
		WallMaterial:       "Stahl",
		LayoutType:         "Einzelrohr",
		OuterDiameter:      f(88.9),
		WallThickness:      f(3.2),
		Roughness:          f(0.01),
		UValue:             f(0.32),
		TotalOuterDiameter: f(160),
		NominalPressure:    f(25),
	}
}

func TestDetectWallMaterial(t *testing.T) {
	tests := []struct {
		name     string
		material string
		product  string
		want     string
	}{
		{"steel", "Stahl", "DN80", "EnStandard"},
		{"empty defaults to steel", "", "DN80", "EnStandard"},
		{"plastic", "Kunststoff (PE-X)", "FlexPipe", "PlasticPipe"},
		{"plastic lowercase", "kunststoff", "FlexPipe", "PlasticPipe"},
		{"isoflex forces steel", "Kunststoff", "CuFlex Isoflex 28/110", "EnStandard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectWallMaterial(tt.material, tt.product)
			assert.Equal(t, tt.want, got.Standard)
		})
	}
}

func TestDetectWallMaterial_Constants(t *testing.T) {
	steel := DetectWallMaterial("Stahl", "")
	assert.Equal(t, 50.0, steel.Conductivity)
	assert.Equal(t, 7900.0, steel.Density)
	assert.Equal(t, 480.0, steel.HeatCapacity)

	plastic := DetectWallMaterial("Kunststoff", "")
	assert.Equal(t, 0.4, plastic.Conductivity)
	assert.Equal(t, 960.0, plastic.Density)
	assert.Equal(t, 1900.0, plastic.HeatCapacity)
}

func TestNormalizeManufacturer(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback string
		want     string
	}{
		{"plain", "Isoplus", "", "ISOPLUS"},
		{"suffix stripped", "Logstor-Dänemark", "", "LOGSTOR"},
		{"already upper", "LOGSTOR", "", "LOGSTOR"},
		{"blank uses fallback", "", "Isoplus", "ISOPLUS"},
		{"whitespace uses fallback", "   ", "LOGSTOR", "LOGSTOR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeManufacturer(tt.raw, tt.fallback))
		})
	}
}

func TestParseLayout(t *testing.T) {
	assert.Equal(t, LayoutSingle, ParseLayout("Einzelrohr"))
	assert.Equal(t, LayoutSingle, ParseLayout("Stahl-Einzelrohr, starr"))
	assert.Equal(t, LayoutTwin, ParseLayout("Doppelrohr"))
	assert.Equal(t, LayoutTwin, ParseLayout(""))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{2.0, "2"},
		{1.25, "1.25"},
		{88.9, "88.9"},
		{7900, "7900"},
		{0.027, "0.027"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}

func TestBuildPipe(t *testing.T) {
	pipe := BuildPipe(steelRow(), 1100501, "#30123b", "LOGSTOR")

	assert.Equal(t, 1100501, pipe.ID)
	assert.Equal(t, "#30123b", pipe.Color)
	assert.Equal(t, "DE: Stahl KMR | EN: Steel bonded pipe", pipe.CategoryName)
	assert.Equal(t, "88.9 x 3.2", pipe.ProductName)
	assert.Equal(t, "LOGSTOR", pipe.ManufacturerName)
	assert.Equal(t, LayoutSingle, pipe.PipeLayout)
	assert.Equal(t, "EnStandard", pipe.MaterialStandard)
	assert.Equal(t, "25", pipe.NominalPressure)
	assert.True(t, pipe.FixedUValueGiven)

	byName := map[string]Parameter{}
	for _, p := range pipe.Parameters {
		byName[p.Name] = p
	}

	assert.Equal(t, Parameter{"DiameterOutside", "mm", "88.9"}, byName["DiameterOutside"])
	assert.Equal(t, Parameter{"ThicknessWall", "mm", "3.2"}, byName["ThicknessWall"])
	assert.Equal(t, Parameter{"FixedUValue", "W/mK", "0.32"}, byName["FixedUValue"])
	assert.Equal(t, Parameter{"DensityWall", "kg/m3", "7900"}, byName["DensityWall"])
	assert.Equal(t, Parameter{"ThermalConductivityWall", "W/mK", "50"}, byName["ThermalConductivityWall"])
	assert.Equal(t, Parameter{"FixedTotalOuterDiameter", "mm", "160"}, byName["FixedTotalOuterDiameter"])
}

func TestBuildPipe_OmitsAbsentFields(t *testing.T) {
	row := CatalogRow{
		Product:       "minimal",
		OuterDiameter: f(40),
	}

	pipe := BuildPipe(row, 1, "#000000", "ISOPLUS")

	names := make([]string, 0, len(pipe.Parameters))
	for _, p := range pipe.Parameters {
		names = append(names, p.Name)
	}

	assert.NotContains(t, names, "FixedUValue")
	assert.NotContains(t, names, "PipeSpacing")
	assert.NotContains(t, names, "RoughnessWall")
	assert.Empty(t, pipe.NominalPressure)
	assert.False(t, pipe.FixedUValueGiven)
	// Material constants are always present.
	assert.Contains(t, names, "DensityWall")
	assert.Contains(t, names, "HeatCapacityWall")
}

func TestBuildPipe_RowDensityWinsOverMaterialDefault(t *testing.T) {
	row := steelRow()
	row.Density = f(7850)

	pipe := BuildPipe(row, 1, "#000000", "")
	for _, p := range pipe.Parameters {
		if p.Name == "DensityWall" {
			assert.Equal(t, "7850", p.Value)
			return
		}
	}
	t.Fatal("DensityWall parameter missing")
}

func TestSolveInsulation(t *testing.T) {
	row := steelRow()
	row.UValue = f(0.3)
	row.InsulationConductivity = f(0.027)
	row.OuterDiameter = f(88)
	row.WallThickness = f(4)
	row.OuterLayerThickness = f(3)

	pipe := BuildPipe(row, 1, "#000000", "")
	require.NoError(t, SolveInsulation(&pipe, row, 1.0))

	var thickness, lambda *Parameter
	for i := range pipe.Parameters {
		switch pipe.Parameters[i].Name {
		case "ThicknessInsulation":
			thickness = &pipe.Parameters[i]
		case "ThermalConductivityInsulation":
			lambda = &pipe.Parameters[i]
		}
	}

	require.NotNil(t, thickness, "solved thickness must be written")
	require.NotNil(t, lambda)
	assert.Equal(t, "mm", thickness.Unit)
	assert.Equal(t, "0.027", lambda.Value)
}

func TestSolveInsulation_NoUValue(t *testing.T) {
	row := steelRow()
	row.UValue = nil
	row.InsulationConductivity = f(0.027)

	pipe := BuildPipe(row, 1, "#000000", "")
	before := len(pipe.Parameters)

	require.NoError(t, SolveInsulation(&pipe, row, 1.0))
	assert.Len(t, pipe.Parameters, before)
}

func TestSolveInsulation_BareWallSufficient(t *testing.T) {
	// Plastic wall, loose target: no insulation required, fields omitted.
	row := CatalogRow{
		Product:                "PE 110",
		WallMaterial:           "Kunststoff",
		OuterDiameter:          f(110),
		WallThickness:          f(10),
		UValue:                 f(50),
		InsulationConductivity: f(0.027),
	}

	pipe := BuildPipe(row, 1, "#000000", "")
	require.NoError(t, SolveInsulation(&pipe, row, 1.0))

	for _, p := range pipe.Parameters {
		assert.NotEqual(t, "ThicknessInsulation", p.Name)
		assert.NotEqual(t, "ThermalConductivityInsulation", p.Name)
	}
}

func TestSolveInsulation_PropagatesSolverFailure(t *testing.T) {
	row := steelRow()
	row.UValue = f(1e-9)
	row.InsulationConductivity = f(0.027)
	row.WallThickness = f(4)

	pipe := BuildPipe(row, 1, "#000000", "")
	err := SolveInsulation(&pipe, row, 1.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, thermal.ErrTargetUnattainable)
	assert.Contains(t, err.Error(), row.Product)
}

func TestSolveInsulation_MissingGeometry(t *testing.T) {
	row := steelRow()
	row.UValue = f(0.3)
	row.InsulationConductivity = f(0.027)
	row.WallThickness = nil

	pipe := BuildPipe(row, 1, "#000000", "")
	assert.Error(t, SolveInsulation(&pipe, row, 1.0))
}

func TestAssignColors(t *testing.T) {
	rows := []CatalogRow{
		{OuterDiameter: f(26.9)},
		{OuterDiameter: f(33.7)},
		{OuterDiameter: f(42.4)},
		{OuterDiameter: f(26.9)}, // diameter drops: new block
		{OuterDiameter: f(33.7)},
	}

	colors := AssignColors(rows)
	require.Len(t, colors, 5)

	// Block boundaries reset the ramp, so the first rows of both blocks
	// share a color index but block sizes differ (3 vs 2).
	assert.NotEqual(t, colors[0], colors[1])
	assert.NotEqual(t, colors[1], colors[2])
	assert.NotEqual(t, colors[3], colors[4])

	for _, c := range colors {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, c)
	}
}

func TestAssignColors_SingleBlockRampsMonotonically(t *testing.T) {
	rows := []CatalogRow{
		{OuterDiameter: f(20)},
		{OuterDiameter: f(25)},
		{OuterDiameter: f(32)},
		{OuterDiameter: f(40)},
	}

	colors := AssignColors(rows)
	seen := map[string]bool{}
	for _, c := range colors {
		assert.False(t, seen[c], "colors within one block must be distinct")
		seen[c] = true
	}
}

func TestAssignColors_Empty(t *testing.T) {
	assert.Nil(t, AssignColors(nil))
}
