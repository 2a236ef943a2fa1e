package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/pipe-catalog-etl/internal/xlsx"
)

func TestRun_FixtureRoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, run(out))

	// The catalog sheet must be the workbook's first sheet, so reading
	// without a sheet name (as cmd/validate does) works.
	fromDefault, err := xlsx.Read(out, "")
	require.NoError(t, err)
	require.Len(t, fromDefault, len(rows))

	fromNamed, err := xlsx.Read(out, sheet)
	require.NoError(t, err)
	assert.Equal(t, fromDefault, fromNamed)

	first := fromDefault[0]
	assert.Equal(t, "26.9 x 2.6", first.Product)
	assert.Equal(t, "Logstor-Dänemark", first.Manufacturer)
	require.NotNil(t, first.OuterDiameter)
	assert.Equal(t, 26.9, *first.OuterDiameter)
	require.NotNil(t, first.InsulationConductivity)
	assert.Equal(t, 0.027, *first.InsulationConductivity)

	// The twin-pipe block restarts at the smallest DN.
	twin := fromDefault[4]
	assert.Equal(t, "Doppelrohr", twin.LayoutType)
	require.NotNil(t, twin.Spacing)
	assert.Equal(t, 20.0, *twin.Spacing)
}
