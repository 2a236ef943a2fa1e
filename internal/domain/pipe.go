package domain

// CatalogRow is one parsed spreadsheet row, a single pipe product
// variant. Numeric fields are pointers because blank cells mean "not
// applicable", which is distinct from zero.
type CatalogRow struct {
	Product      string
	Manufacturer string
	WallMaterial string // raw "Material Rohrwand" cell
	LayoutType   string // raw "Einzel- oder Doppelrohr" cell

	OuterDiameter      *float64 // mm
	WallThickness      *float64 // mm
	Roughness          *float64 // mm
	Density            *float64 // kg/m3
	HeatCapacity       *float64 // J/kgK
	UValue             *float64 // W/mK
	TotalOuterDiameter *float64 // mm, casing incl. insulation and jacket
	Spacing            *float64 // mm, twin-pipe only
	NominalPressure    *float64 // bar

	InsulationConductivity *float64 // W/mK
	OuterLayerThickness    *float64 // mm, protective jacket
}

// Parameter is one IBK:Parameter element: a named, unit-tagged value.
type Parameter struct {
	Name  string
	Unit  string
	Value string
}

// Pipe layout values as written to the catalog.
const (
	LayoutSingle = "SinglePipe"
	LayoutTwin   = "TwinPipe"
)

// NetworkPipe is one catalog entry in the simulation tool's pipe
// database. Parameters keep their insertion order because the database
// format is order-sensitive for human diffing.
type NetworkPipe struct {
	ID               int
	Color            string // "#rrggbb"
	CategoryName     string
	ProductName      string
	ManufacturerName string

	Parameters []Parameter

	NominalPressure  string // empty = omitted
	FixedUValueGiven bool
	PipeLayout       string // LayoutSingle or LayoutTwin
	MaterialStandard string
}

// WallMaterial bundles the derived material constants for a service-pipe
// wall together with its catalog labels.
type WallMaterial struct {
	Conductivity float64 // W/mK
	Density      float64 // kg/m3
	HeatCapacity float64 // J/kgK
	Standard     string
	CategoryName string
}

var (
	steelWall = WallMaterial{
		Conductivity: 50,
		Density:      7900,
		HeatCapacity: 480,
		Standard:     "EnStandard",
		CategoryName: "DE: Stahl KMR | EN: Steel bonded pipe",
	}
	plasticWall = WallMaterial{
		Conductivity: 0.4,
		Density:      960,
		HeatCapacity: 1900,
		Standard:     "PlasticPipe",
		CategoryName: "DE: PE isoliert | EN: PE insulated",
	}
)
