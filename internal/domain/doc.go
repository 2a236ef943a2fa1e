// Package domain models manufacturer pipe-catalog data for district-heating
// networks.
//
// # Data Source
//
// Catalog rows come from manufacturer spreadsheet templates (Isoplus,
// LOGSTOR and similar). The workbooks carry a title row followed by a
// German header row; the columns relevant here:
//
//	Produkt                                    product variant name
//	Hersteller                                 manufacturer, may carry a "-suffix"
//	Material Rohrwand                          wall material, free text
//	Einzel- oder Doppelrohr                    pipe layout
//	Außendurchmesser [mm]                      outer diameter of the service pipe
//	Wandstärke [mm]                            wall thickness
//	Rohrrauigkeit [mm]                         hydraulic roughness
//	Dichte Rohrwand [kg/m3]                    wall density
//	Wärmekapazität Rohrwand [J/kgK]            wall heat capacity
//	U-Wert [W/mK]                              overall heat-transfer coefficient
//	Außendurchmesser gesamt mit Isolierung
//	und Schutzschicht [mm]                     casing outer diameter
//	Abstand Vor- und Rücklauf [mm]             twin-pipe spacing
//	PN [bar]                                   nominal pressure class
//	Wärmeleitfähigkeit Dämmung [W/mK]          insulation conductivity
//	Schutzschichtdicke [mm]                    protective jacket thickness
//
// Blank cells mean "not applicable" and are represented as nil pointers;
// the catalog convention is to omit the corresponding XML parameter
// rather than write a zero.
//
// # Wall Material Detection
//
// A wall material containing "kunststoff" marks a plastic service pipe
// (PE, λ=0.4 W/mK, ρ=960 kg/m3, cp=1900 J/kgK, standard PlasticPipe).
// Everything else is treated as steel (λ=50, ρ=7900, cp=480, standard
// EnStandard). Products named "isoflex" are flexible steel pipes whose
// material column is unreliable, so the product name forces steel.
//
// # Display Colors
//
// Catalogs list variants in blocks of ascending outer diameter; a new
// block starts when the diameter decreases (for example where the
// twin-pipe section restarts at the smallest DN). Each block is colored
// along the turbo ramp so the variants of one block stay visually
// distinct in the network editor.
//
// # Insulation Enrichment
//
// When a row carries both a target U-value and an insulation
// conductivity, the required insulation thickness is solved numerically
// from the concentric-cylinder conduction model (see internal/thermal)
// and written as ThicknessInsulation [mm] together with
// ThermalConductivityInsulation [W/mK]. A zero result means the bare
// wall already meets the target; both parameters are then omitted.
package domain
