package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

//stackingEfficiencyPoints is the calibrated gain combining efficiency of a
//co-phased stack keyed by spacing in wavelengths. Close spacing couples the
//antennas and wastes the array gain; the sweet spot sits at 0.6 to 0.8
//wavelengths.
var stackingEfficiencyPoints = []calPoint{
	{0.1, 0.60}, {0.5, 0.85}, {0.6, 0.95}, {0.8, 0.95},
	{1.0, 0.88}, {2.0, 0.82},
}

//StackingReport summarizes the behavior of a co-phased array
type StackingReport struct {
	layout        byte
	axis          byte
	count         int
	spacing       unit.Distance
	efficiency    float64
	gainIncrease  float64
	stackedGain   float64
	hBeamwidthDeg float64
	vBeamwidthDeg float64
}

//Layout returns the stack layout
func (v StackingReport) Layout() byte {
	return v.layout
}

//Axis returns the stacking axis of a line layout
func (v StackingReport) Axis() byte {
	return v.axis
}

//Count returns the number of antennas actually combined
func (v StackingReport) Count() int {
	return v.count
}

//Spacing returns the spacing between adjacent antennas
func (v StackingReport) Spacing() unit.Distance {
	return v.spacing
}

//Efficiency returns the gain combining efficiency
func (v StackingReport) Efficiency() float64 {
	return v.efficiency
}

//GainIncrease returns the gain increase in dB over a single antenna
func (v StackingReport) GainIncrease() float64 {
	return v.gainIncrease
}

//StackedGain returns the total gain in dBi of the stack
func (v StackingReport) StackedGain() float64 {
	return v.stackedGain
}

//HorizontalBeamwidth returns the stacked beamwidth in the element plane in degrees
func (v StackingReport) HorizontalBeamwidth() float64 {
	return v.hBeamwidthDeg
}

//VerticalBeamwidth returns the stacked beamwidth perpendicular to the elements in degrees
func (v StackingReport) VerticalBeamwidth() float64 {
	return v.vBeamwidthDeg
}

//stackingEfficiency returns the gain combining efficiency for the spacing
//given in wavelengths
func stackingEfficiency(spacingWavelengths float64) float64 {
	return interpolatePoints(stackingEfficiencyPoints, spacingWavelengths)
}

//stackGain combines the base gain of one antenna into the stack gain.
//
//The theoretical array gain of n co-phased antennas is 10*log10(n); the
//spacing dependent efficiency scales how much of it is realized.
func stackGain(baseGain float64, count int, spacingWavelengths float64) (float64, float64) {
	if count < 2 {
		return baseGain, 0
	}
	increase := 10 * math.Log10(float64(count)) * stackingEfficiency(spacingWavelengths)
	stacked := baseGain + increase
	if stacked > cMaximumGain {
		stacked = cMaximumGain
	}
	return stacked, increase
}

//stackedBeamwidth narrows a single antenna beamwidth by the stack factor
func stackedBeamwidth(baseDeg float64, count int, spacingWavelengths float64) float64 {
	if count < 2 {
		return baseDeg
	}
	correction := spacingWavelengths / 0.7
	if correction < 0.8 {
		correction = 0.8
	}
	if correction > 1.2 {
		correction = 1.2
	}
	return baseDeg / (math.Sqrt(float64(count)) * correction)
}

//arrayFactorPattern recomputes a far field table for a stack of count
//antennas by multiplying each sample by the uniform linear array factor and
//renormalizing the peak back to 100.
//
//For a vertical stacking axis the array factor runs over the elevation
//projection sin(theta); for a horizontal axis over cos(theta).
func arrayFactorPattern(basePattern []PatternPoint, count int, spacingWavelengths float64,
	axis byte) []PatternPoint {
	if count < 2 || len(basePattern) == 0 {
		return basePattern
	}

	n := float64(count)
	result := make([]PatternPoint, len(basePattern))
	peak := 0.0
	for i, p := range basePattern {
		theta := p.angleDeg * math.Pi / 180
		projection := math.Cos(theta)
		if axis == StackAxisVertical {
			projection = math.Sin(theta)
		}
		psi := 2 * math.Pi * spacingWavelengths * projection

		factor := 1.0
		den := n * math.Sin(psi/2)
		if math.Abs(den) > 1e-9 {
			factor = math.Abs(math.Sin(n*psi/2) / den)
		}

		result[i] = PatternPoint{angleDeg: p.angleDeg, magnitude: p.magnitude * factor}
		if result[i].magnitude > peak {
			peak = result[i].magnitude
		}
	}

	if peak > 0 {
		for i := range result {
			result[i].magnitude = result[i].magnitude * 100 / peak
		}
	}
	return result
}

//computeStackingReport evaluates a stack of identical antennas.
//
//A quad layout is two line stacks composed orthogonally: a vertical pair of
//horizontal pairs, always four antennas regardless of the configured count.
func computeStackingReport(stacking StackingConfig, baseGain float64,
	baseHBeamwidth, baseVBeamwidth float64, wavelengthIn float64) StackingReport {
	spacingWl := 0.0
	if wavelengthIn > 0 {
		spacingWl = stacking.Spacing().In(unit.DistanceInch) / wavelengthIn
	}

	if stacking.Layout() == LayoutQuad {
		pairGain, pairIncrease := stackGain(baseGain, 2, spacingWl)
		quadGain, quadIncrease := stackGain(pairGain, 2, spacingWl)
		return StackingReport{
			layout:        LayoutQuad,
			axis:          stacking.Axis(),
			count:         4,
			spacing:       stacking.Spacing(),
			efficiency:    stackingEfficiency(spacingWl),
			gainIncrease:  pairIncrease + quadIncrease,
			stackedGain:   quadGain,
			hBeamwidthDeg: stackedBeamwidth(baseHBeamwidth, 2, spacingWl),
			vBeamwidthDeg: stackedBeamwidth(baseVBeamwidth, 2, spacingWl),
		}
	}

	count := stacking.Count()
	if count < 2 {
		count = 2
	}
	stacked, increase := stackGain(baseGain, count, spacingWl)
	hBeam := baseHBeamwidth
	vBeam := baseVBeamwidth
	if stacking.Axis() == StackAxisHorizontal {
		hBeam = stackedBeamwidth(baseHBeamwidth, count, spacingWl)
	} else {
		vBeam = stackedBeamwidth(baseVBeamwidth, count, spacingWl)
	}
	return StackingReport{
		layout:        LayoutLine,
		axis:          stacking.Axis(),
		count:         count,
		spacing:       stacking.Spacing(),
		efficiency:    stackingEfficiency(spacingWl),
		gainIncrease:  increase,
		stackedGain:   stacked,
		hBeamwidthDeg: hBeam,
		vBeamwidthDeg: vBeam,
	}
}
