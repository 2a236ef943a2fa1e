package colormap

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestTurbo_Endpoints(t *testing.T) {
	// turbo runs dark blue -> cyan -> green -> yellow -> red.
	r0, g0, b0 := Turbo(0.1)
	assert.Greater(t, b0, r0, "early ramp is blue-dominant")
	assert.Greater(t, b0, g0)

	r1, g1, b1 := Turbo(1)
	assert.Greater(t, r1, b1, "end of the ramp is red-dominant")
	assert.Greater(t, r1, g1)
}

func TestTurbo_Midpoint(t *testing.T) {
	// The middle of the ramp is green/yellow.
	r, g, b := Turbo(0.5)
	assert.Greater(t, g, r)
	assert.Greater(t, g, b)
	assert.Greater(t, g, 0.7)
}

func TestTurbo_ClampsInput(t *testing.T) {
	r, g, b := Turbo(-3)
	r0, g0, b0 := Turbo(0)
	assert.Equal(t, [3]float64{r0, g0, b0}, [3]float64{r, g, b})

	r, g, b = Turbo(7)
	r1, g1, b1 := Turbo(1)
	assert.Equal(t, [3]float64{r1, g1, b1}, [3]float64{r, g, b})
}

func TestHex(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    string
	}{
		{"black", 0, 0, 0, "#000000"},
		{"white", 1, 1, 1, "#ffffff"},
		{"pure red", 1, 0, 0, "#ff0000"},
		{"mid grey", 0.5, 0.5, 0.5, "#808080"},
		{"out of range clamped", 1.5, -1, 0, "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hex(tt.r, tt.g, tt.b))
		})
	}
}

func TestTurboHex_Format(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.999, 1} {
		assert.Regexp(t, hexRe, TurboHex(x))
	}
}

func TestTurboHex_DistinctAcrossRamp(t *testing.T) {
	// Adjacent block indices must map to visibly distinct colors.
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		c := TurboHex(float64(i) / 8)
		assert.False(t, seen[c], "duplicate color %s at index %d", c, i)
		seen[c] = true
	}
}
