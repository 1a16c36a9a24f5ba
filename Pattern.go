package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

//cPatternPoints is the number of azimuth samples of the far field table,
//one every five degrees over the full circle
const cPatternPoints int = 73

//cSwrCurvePoints is the number of samples of the SWR over frequency curve
const cSwrCurvePoints int = 61

const cSwrCurveSpan float64 = 0.02
const cNoReflectorFbLoss float64 = 8.0

//PatternPoint is one sample of the normalized far field magnitude table
type PatternPoint struct {
	angleDeg  float64
	magnitude float64
}

//AngleDeg returns the azimuth angle in degrees, zero pointing at boresight
func (v PatternPoint) AngleDeg() float64 {
	return v.angleDeg
}

//Magnitude returns the field magnitude normalized to 100 at the pattern peak
func (v PatternPoint) Magnitude() float64 {
	return v.magnitude
}

//SwrPoint is one sample of the SWR over frequency curve
type SwrPoint struct {
	frequency unit.Frequency
	swr       float64
}

//Frequency returns the frequency of the sample
func (v SwrPoint) Frequency() unit.Frequency {
	return v.frequency
}

//Swr returns the standing wave ratio at the sample frequency
func (v SwrPoint) Swr() float64 {
	return v.swr
}

//frontToBackRatio estimates the front-to-back ratio in dB.
//
//Each parasitic element sharpens the rejection; without a reflector the
//rear lobe opens up by roughly 8dB on top of the lost element.
func frontToBackRatio(elementCount int, hasReflector bool, boomFbAdj float64) float64 {
	fb := 9.0 + 3.2*float64(elementCount)
	if fb > 32 {
		fb = 32
	}
	if !hasReflector {
		fb -= cNoReflectorFbLoss
	}
	fb += boomFbAdj
	if fb < 0 {
		fb = 0
	}
	return fb
}

//frontToSideRatio estimates the front-to-side ratio in dB from the
//front-to-back ratio; side rejection of a Yagi is always deeper
func frontToSideRatio(fbDb float64) float64 {
	fs := fbDb + 8
	if fs > 40 {
		fs = 40
	}
	return fs
}

//horizontalBeamwidth estimates the -3dB beamwidth in the element plane
func horizontalBeamwidth(elementCount int) float64 {
	bw := 66.0 - 3.0*float64(elementCount-2)
	if bw < 28 {
		bw = 28
	}
	return bw
}

//verticalBeamwidth estimates the -3dB beamwidth perpendicular to the elements
func verticalBeamwidth(elementCount int) float64 {
	bw := horizontalBeamwidth(elementCount) * 1.25
	if bw > 120 {
		bw = 120
	}
	return bw
}

//wrapAngle wraps an azimuth to the -180..180 range around boresight
func wrapAngle(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg < -180 {
		deg += 360
	}
	return deg
}

//generatePattern builds the 73 point normalized far field magnitude table.
//
//The main lobe is parabolic in dB; the sides are floored at the
//front-to-side rejection and the rear at the front-to-back rejection.
func generatePattern(fbDb, fsDb, beamwidthDeg float64) []PatternPoint {
	points := make([]PatternPoint, cPatternPoints)
	for i := 0; i < cPatternPoints; i++ {
		azimuth := float64(i) * 5
		a := math.Abs(wrapAngle(azimuth))

		attenuation := 12 * (a / beamwidthDeg) * (a / beamwidthDeg)
		switch {
		case a > 120:
			if attenuation > fbDb {
				attenuation = fbDb
			}
		case a > 60:
			if attenuation > fsDb {
				attenuation = fsDb
			}
		}

		points[i] = PatternPoint{
			angleDeg:  azimuth,
			magnitude: 100 * math.Pow(10, -attenuation/20),
		}
	}
	return points
}

//takeoffAngle returns the elevation of the lowest radiation lobe in degrees.
//
//The first ground reflection lobe of a horizontal antenna peaks where the
//direct and reflected waves add, at arcsin of a quarter wavelength over the
//height. Very low antennas fire straight up.
func takeoffAngle(heightWavelengths float64) float64 {
	if heightWavelengths <= 0.25 {
		return 90
	}
	return math.Asin(1/(4*heightWavelengths)) * 180 / math.Pi
}

//takeoffRating maps a takeoff angle to the qualitative rating shown to the user
func takeoffRating(angleDeg float64) string {
	switch {
	case angleDeg < 10:
		return "Excellent for DX"
	case angleDeg < 18:
		return "Very good"
	case angleDeg < 26:
		return "Good"
	case angleDeg < 35:
		return "Fair"
	default:
		return "Poor, mostly local"
	}
}

//swrCurve samples the SWR over a +-2 percent band around the center
//frequency. The curve bottoms out at the matched SWR at the resonant
//frequency; a higher loaded Q or a bandwidth penalty steepens the walls.
func swrCurve(matchedSwr float64, resonant unit.Frequency, center unit.Frequency,
	loadedQ, bandwidthMult float64) []SwrPoint {
	centerMHz := center.In(unit.FrequencyMHz)
	resonantMHz := resonant.In(unit.FrequencyMHz)

	low := centerMHz * (1 - cSwrCurveSpan)
	high := centerMHz * (1 + cSwrCurveSpan)
	if resonantMHz < low {
		resonantMHz = low
	}
	if resonantMHz > high {
		resonantMHz = high
	}

	curvature := swrCurvature(loadedQ, bandwidthMult)
	step := (high - low) / float64(cSwrCurvePoints-1)
	points := make([]SwrPoint, cSwrCurvePoints)
	for i := 0; i < cSwrCurvePoints; i++ {
		f := low + float64(i)*step
		x := (f - resonantMHz) / (centerMHz * 0.01)
		points[i] = SwrPoint{
			frequency: unit.MustCreateFrequency(f, unit.FrequencyMHz),
			swr:       clampSwr(matchedSwr + curvature*x*x),
		}
	}
	return points
}

//swrCurvature returns the parabolic steepness of the SWR curve per
//1-percent-of-center frequency offset
func swrCurvature(loadedQ, bandwidthMult float64) float64 {
	if bandwidthMult <= 0 {
		bandwidthMult = 1
	}
	return (0.08 + 0.02*loadedQ) / bandwidthMult
}

//swrBandwidth returns the width of the band, centered on resonance, where
//the SWR stays at or below the threshold
func swrBandwidth(matchedSwr, threshold float64, center unit.Frequency,
	loadedQ, bandwidthMult float64) unit.Frequency {
	if matchedSwr >= threshold {
		return unit.MustCreateFrequency(0, unit.FrequencyMHz)
	}
	curvature := swrCurvature(loadedQ, bandwidthMult)
	halfWidthPct := math.Sqrt((threshold - matchedSwr) / curvature)
	widthMHz := 2 * halfWidthPct * center.In(unit.FrequencyMHz) * 0.01
	return unit.MustCreateFrequency(widthMHz, unit.FrequencyMHz)
}

//gainBandwidth returns the -3dB gain bandwidth estimated from the loaded Q
func gainBandwidth(center unit.Frequency, loadedQ, bandwidthMult float64) unit.Frequency {
	q := loadedQ
	if q < 8 {
		q = 8
	}
	return unit.MustCreateFrequency(center.In(unit.FrequencyMHz)/q*bandwidthMult, unit.FrequencyMHz)
}
