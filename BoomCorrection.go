package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

const cMountMultiplierBonded float64 = 1.0
const cMountMultiplierInsulated float64 = 0.55
const cBoomCorrectionLinear float64 = 12.5975
const cBoomCorrectionQuadratic float64 = 114.5
const cBoomCorrectionMaximum float64 = 0.5
const cDiameterRatioCap float64 = 5.0

//BoomCorrection describes the mutual coupling correction for elements
//mounted through or near a conductive boom.
//
//The boom adds parasitic capacitance that makes the elements electrically
//longer, so the physical lengths must be shortened and small penalties show
//up in gain, front-to-back ratio, feedpoint impedance, bandwidth and
//standing wave ratio.
type BoomCorrection struct {
	enabled           bool
	correctionPerSide float64
	gainAdj           float64
	fbAdj             float64
	impedanceShift    float64
	swrFactor         float64
	bandwidthMult     float64
	correctedLengths  []unit.Distance
}

//Enabled returns whether the boom requires any correction at all
func (v BoomCorrection) Enabled() bool {
	return v.enabled
}

//CorrectionPerSide returns the shortening in inches applied to each element half
func (v BoomCorrection) CorrectionPerSide() float64 {
	return v.correctionPerSide
}

//GainAdjustment returns the gain penalty in dB
func (v BoomCorrection) GainAdjustment() float64 {
	return v.gainAdj
}

//FrontToBackAdjustment returns the front-to-back ratio penalty in dB
func (v BoomCorrection) FrontToBackAdjustment() float64 {
	return v.fbAdj
}

//ImpedanceShift returns the feedpoint impedance shift in ohms
func (v BoomCorrection) ImpedanceShift() float64 {
	return v.impedanceShift
}

//SwrFactor returns the multiplicative penalty on the standing wave ratio
func (v BoomCorrection) SwrFactor() float64 {
	return v.swrFactor
}

//BandwidthMultiplier returns the multiplicative penalty on the usable bandwidth
func (v BoomCorrection) BandwidthMultiplier() float64 {
	return v.bandwidthMult
}

//CorrectedLengths returns the element lengths after shortening, in the
//order the elements were given
func (v BoomCorrection) CorrectedLengths() []unit.Distance {
	return v.correctedLengths
}

//mountMultiplier scales the correction by how the elements are attached to the boom
func mountMultiplier(mountClass byte) float64 {
	switch mountClass {
	case MountBonded:
		return cMountMultiplierBonded
	case MountInsulated:
		return cMountMultiplierInsulated
	default:
		return 0
	}
}

//computeBoomCorrection computes the correction for the given geometry.
//
//The correction fraction follows the empirical DL6WU style curve in
//boom-diameter-to-wavelength, scaled by the mount class. A non-conductive
//boom needs no correction and the result is reported as disabled with the
//element lengths unchanged.
func computeBoomCorrection(elements []Element, boomDiameterIn, wavelengthIn float64,
	mountClass byte) BoomCorrection {
	unchanged := make([]unit.Distance, len(elements))
	for i, e := range elements {
		unchanged[i] = e.Length()
	}
	disabled := BoomCorrection{
		enabled:          false,
		swrFactor:        1.0,
		bandwidthMult:    1.0,
		correctedLengths: unchanged,
	}

	mult := mountMultiplier(mountClass)
	if mult == 0 || boomDiameterIn <= 0 || wavelengthIn <= 0 {
		return disabled
	}

	ratio := boomDiameterIn / wavelengthIn
	c := cBoomCorrectionLinear*ratio - cBoomCorrectionQuadratic*ratio*ratio
	if c < 0 {
		c = 0
	}
	if c > cBoomCorrectionMaximum {
		c = cBoomCorrectionMaximum
	}
	c *= mult
	if c == 0 {
		return disabled
	}

	//the correction scales with how dominant the boom is next to the
	//element tube; a thin element near a fat boom is disturbed the most
	var maxPerSide float64
	corrected := make([]unit.Distance, len(elements))
	for i, e := range elements {
		diameterRatio := cDiameterRatioCap
		ed := e.Diameter().In(unit.DistanceInch)
		if ed > 0 {
			diameterRatio = math.Min(boomDiameterIn/ed, cDiameterRatioCap)
		}
		total := 2 * c * boomDiameterIn * diameterRatio
		perSide := total / 2
		if perSide > maxPerSide {
			maxPerSide = perSide
		}
		newLength := e.Length().In(unit.DistanceInch) - total
		if newLength < 0 {
			newLength = 0
		}
		corrected[i] = unit.MustCreateDistance(newLength, unit.DistanceInch)
	}

	magnitude := c / 0.25

	gainAdj := -0.15 * magnitude
	if gainAdj < -0.3 {
		gainAdj = -0.3
	}
	fbAdj := -0.8 * magnitude
	if fbAdj < -1.5 {
		fbAdj = -1.5
	}
	impedanceShift := -5 * magnitude
	if impedanceShift < -10 {
		impedanceShift = -10
	}
	bandwidthMult := 1 - 0.03*magnitude
	if bandwidthMult < 0.92 {
		bandwidthMult = 0.92
	}
	swrFactor := 1 + 0.04*magnitude
	if swrFactor > 1.10 {
		swrFactor = 1.10
	}

	return BoomCorrection{
		enabled:           true,
		correctionPerSide: maxPerSide,
		gainAdj:           gainAdj,
		fbAdj:             fbAdj,
		impedanceShift:    impedanceShift,
		swrFactor:         swrFactor,
		bandwidthMult:     bandwidthMult,
		correctedLengths:  corrected,
	}
}
