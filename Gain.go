package go_yagicalc

import "math"

const cNoReflectorPenalty float64 = -1.5
const cBoomDoublingGain float64 = 2.5
const cTaperGainBonus float64 = 0.25
const cCoronaGainAdjustment float64 = -0.1
const cDualActiveBonus float64 = 1.0
const cSlantPolarizationLoss float64 = 3.0
const cGainPerExtraElement float64 = 0.3
const cMaximumGain float64 = 45.0

//groundGainHorizontalPoints is the calibrated ground reflection bonus for a
//horizontally polarized antenna, keyed by height in wavelengths. The curve
//oscillates with maxima near multiples of a half wavelength.
var groundGainHorizontalPoints = []calPoint{
	{0.0, 0.0}, {0.25, 2.2}, {0.5, 5.2}, {0.75, 4.3}, {1.0, 6.0},
	{1.25, 4.6}, {1.5, 5.8}, {1.75, 4.9}, {2.0, 5.7}, {2.5, 5.5},
	{3.0, 5.5}, {5.0, 5.3},
}

//groundGainVerticalPoints is the calibrated ground reflection bonus for a
//vertically polarized antenna. Vertical polarization is far less height
//sensitive and saturates below 3dB.
var groundGainVerticalPoints = []calPoint{
	{0.0, 0.0}, {0.25, 1.3}, {0.5, 1.9}, {1.0, 2.5}, {1.5, 2.7},
	{2.0, 2.8}, {5.0, 2.8},
}

//FreeSpaceGain returns the free space gain in dBi of a well tuned antenna
//with the given number of elements.
//
//Within the calibrated range of 2 to 20 elements the value is interpolated
//from the calibration table; above 20 elements each extra element is worth
//a fixed diminishing-returns increment.
func (v Calibration) FreeSpaceGain(elementCount int) float64 {
	last := v.gainPoints[len(v.gainPoints)-1]
	if float64(elementCount) > last.key {
		return last.value + cGainPerExtraElement*(float64(elementCount)-last.key)
	}
	return interpolatePoints(v.gainPoints, float64(elementCount))
}

//StandardBoomLength returns the boom length in inches that the free space
//gain table assumes for the given number of elements, scaled from the
//reference wavelength to the actual one.
func (v Calibration) StandardBoomLength(elementCount int, wavelengthIn float64) float64 {
	scale := wavelengthIn / v.referenceWavelength
	last := v.boomPoints[len(v.boomPoints)-1]
	if float64(elementCount) > last.key {
		step := last.value - v.boomPoints[len(v.boomPoints)-2].value
		return (last.value + step/2*(float64(elementCount)-last.key)) * scale
	}
	return interpolatePoints(v.boomPoints, float64(elementCount)) * scale
}

//boomAdjustment returns the gain adjustment in dB for a boom that is longer
//or shorter than the standard one. Doubling the boom is worth 2.5dB
//regardless of element count.
func boomAdjustment(actualBoomIn, standardBoomIn float64) float64 {
	if actualBoomIn <= 0 || standardBoomIn <= 0 {
		return 0
	}
	adj := cBoomDoublingGain * math.Log2(actualBoomIn/standardBoomIn)
	if adj > 6 {
		adj = 6
	}
	if adj < -6 {
		adj = -6
	}
	return adj
}

//groundGain returns the ground reflection bonus in dB for the mounting
//height given in wavelengths
func groundGain(heightWavelengths float64, polarization byte) float64 {
	switch polarization {
	case PolarizationVertical:
		return interpolatePoints(groundGainVerticalPoints, heightWavelengths)
	case PolarizationSlant45:
		return interpolatePoints(groundGainHorizontalPoints, heightWavelengths) - cSlantPolarizationLoss
	default:
		return interpolatePoints(groundGainHorizontalPoints, heightWavelengths)
	}
}

//round2 rounds to two decimals. Every term of the gain breakdown is rounded
//before summation so the itemized figures add up exactly to the final one.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

//GainBreakdown itemizes every term that contributes to the final gain figure
type GainBreakdown struct {
	baseLookup   float64
	boomAdj      float64
	reflectorAdj float64
	taperBonus   float64
	coronaAdj    float64
	groundBonus  float64
	mountAdj     float64
	dualBonus    float64
	final        float64
}

//createGainBreakdown rounds each term to two decimals, sums them in the
//calibrated order and clamps the total to the physically sane maximum
func createGainBreakdown(baseLookup, boomAdj, reflectorAdj, taperBonus, coronaAdj,
	groundBonus, mountAdj, dualBonus float64) GainBreakdown {
	b := GainBreakdown{
		baseLookup:   round2(baseLookup),
		boomAdj:      round2(boomAdj),
		reflectorAdj: round2(reflectorAdj),
		taperBonus:   round2(taperBonus),
		coronaAdj:    round2(coronaAdj),
		groundBonus:  round2(groundBonus),
		mountAdj:     round2(mountAdj),
		dualBonus:    round2(dualBonus),
	}
	total := b.baseLookup + b.boomAdj + b.reflectorAdj + b.taperBonus +
		b.coronaAdj + b.groundBonus + b.mountAdj + b.dualBonus
	if total > cMaximumGain {
		total = cMaximumGain
	}
	b.final = round2(total)
	return b
}

//BaseLookup returns the free space gain table value
func (v GainBreakdown) BaseLookup() float64 {
	return v.baseLookup
}

//BoomAdjustment returns the adjustment for the actual boom length
func (v GainBreakdown) BoomAdjustment() float64 {
	return v.boomAdj
}

//ReflectorAdjustment returns the penalty for a missing reflector
func (v GainBreakdown) ReflectorAdjustment() float64 {
	return v.reflectorAdj
}

//TaperBonus returns the bonus for tapered elements
func (v GainBreakdown) TaperBonus() float64 {
	return v.taperBonus
}

//CoronaAdjustment returns the adjustment for corona balls on the tips
func (v GainBreakdown) CoronaAdjustment() float64 {
	return v.coronaAdj
}

//GroundBonus returns the ground reflection bonus for the mounting height
func (v GainBreakdown) GroundBonus() float64 {
	return v.groundBonus
}

//MountAdjustment returns the adjustment for the boom mounting class
func (v GainBreakdown) MountAdjustment() float64 {
	return v.mountAdj
}

//DualBonus returns the bonus for a dual polarization antenna with both sets driven
func (v GainBreakdown) DualBonus() float64 {
	return v.dualBonus
}

//Final returns the total gain in dBi
func (v GainBreakdown) Final() float64 {
	return v.final
}
