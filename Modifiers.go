package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

const cTaperBandwidthFactor float64 = 1.04
const cCoronaBandwidthFactor float64 = 1.02
const cCoronaSwrFactor float64 = 0.99

//TaperReport summarizes the effect of telescoping tapered elements
type TaperReport struct {
	equivalentDiameter unit.Distance
	tipDiameter        unit.Distance
	gainBonus          float64
	swrFactor          float64
	bandwidthMult      float64
}

//EquivalentDiameter returns the uniform tube diameter that is electrically
//equivalent to the tapered element
func (v TaperReport) EquivalentDiameter() unit.Distance {
	return v.equivalentDiameter
}

//TipDiameter returns the diameter of the outermost tube section
func (v TaperReport) TipDiameter() unit.Distance {
	return v.tipDiameter
}

//GainBonus returns the gain bonus in dB
func (v TaperReport) GainBonus() float64 {
	return v.gainBonus
}

//SwrFactor returns the multiplicative effect on the standing wave ratio
func (v TaperReport) SwrFactor() float64 {
	return v.swrFactor
}

//BandwidthMultiplier returns the multiplicative effect on the usable bandwidth
func (v TaperReport) BandwidthMultiplier() float64 {
	return v.bandwidthMult
}

//computeTaperReport summarizes a taper description.
//
//The equivalent diameter is the length weighted average of the section
//mean diameters, which is the usual single-tube approximation for a
//stepped element.
func computeTaperReport(taper TaperConfig) TaperReport {
	var totalLength, weighted float64
	var tip float64
	for _, s := range taper.Sections() {
		l := s.Length().In(unit.DistanceInch)
		mean := (s.StartDiameter().In(unit.DistanceInch) + s.EndDiameter().In(unit.DistanceInch)) / 2
		totalLength += l
		weighted += l * mean
		tip = s.EndDiameter().In(unit.DistanceInch)
	}
	equivalent := 0.0
	if totalLength > 0 {
		equivalent = weighted / totalLength
	}
	return TaperReport{
		equivalentDiameter: unit.MustCreateDistance(equivalent, unit.DistanceInch),
		tipDiameter:        unit.MustCreateDistance(tip, unit.DistanceInch),
		gainBonus:          cTaperGainBonus,
		swrFactor:          cTaperSwrFactor,
		bandwidthMult:      cTaperBandwidthFactor,
	}
}

//CoronaReport summarizes the effect of corona balls on the element tips
type CoronaReport struct {
	ballDiameter   unit.Distance
	onsetKilovolts float64
	gainAdj        float64
	swrFactor      float64
	bandwidthMult  float64
}

//BallDiameter returns the corona ball diameter
func (v CoronaReport) BallDiameter() unit.Distance {
	return v.ballDiameter
}

//OnsetKilovolts returns the estimated corona onset voltage at the tip
func (v CoronaReport) OnsetKilovolts() float64 {
	return v.onsetKilovolts
}

//GainAdjustment returns the gain adjustment in dB
func (v CoronaReport) GainAdjustment() float64 {
	return v.gainAdj
}

//SwrFactor returns the multiplicative effect on the standing wave ratio
func (v CoronaReport) SwrFactor() float64 {
	return v.swrFactor
}

//BandwidthMultiplier returns the multiplicative effect on the usable bandwidth
func (v CoronaReport) BandwidthMultiplier() float64 {
	return v.bandwidthMult
}

//computeCoronaReport summarizes a corona ball fit.
//
//The onset voltage follows Peek's law for a sphere in air; a bigger ball
//spreads the tip field and raises the onset voltage.
func computeCoronaReport(corona CoronaConfig) CoronaReport {
	radiusCm := corona.BallDiameter().In(unit.DistanceCentimeter) / 2
	onset := 0.0
	if radiusCm > 0 {
		onset = 21.1 * radiusCm * (1 + 0.308/math.Sqrt(radiusCm))
	}
	return CoronaReport{
		ballDiameter:   corona.BallDiameter(),
		onsetKilovolts: onset,
		gainAdj:        cCoronaGainAdjustment,
		swrFactor:      cCoronaSwrFactor,
		bandwidthMult:  cCoronaBandwidthFactor,
	}
}

//GroundRadialReport summarizes the ground system below the antenna
type GroundRadialReport struct {
	radialType    byte
	count         int
	efficiencyPct float64
}

//RadialType returns whether the radials are elevated or buried
func (v GroundRadialReport) RadialType() byte {
	return v.radialType
}

//Count returns the number of radials
func (v GroundRadialReport) Count() int {
	return v.count
}

//EfficiencyPct returns the estimated ground system efficiency in percent
func (v GroundRadialReport) EfficiencyPct() float64 {
	return v.efficiencyPct
}

//soilQuality maps the soil class to a 0..1 conductivity factor
func soilQuality(soil byte) float64 {
	switch soil {
	case SoilWet:
		return 1.0
	case SoilDry:
		return 0.7
	default:
		return 0.85
	}
}

//computeGroundRadialReport estimates the ground system efficiency.
//
//Returns diminish quickly past a few dozen radials; elevated radials beat
//buried ones of the same count, and heavy wire is worth a little over
//thin wire.
func computeGroundRadialReport(radials GroundRadialConfig) GroundRadialReport {
	count := radials.Count()
	if count < 0 {
		count = 0
	}
	saturation := float64(count) / (float64(count) + 10)

	base := 55.0
	if radials.RadialType() == RadialsElevated {
		base = 65.0
	}

	wireBonus := 0.0
	if radials.WireGauge() > 0 && radials.WireGauge() <= 12 {
		wireBonus = 3.0
	}

	efficiency := (base + 30*saturation + wireBonus) * soilQuality(radials.Soil())
	if efficiency > 100 {
		efficiency = 100
	}
	return GroundRadialReport{
		radialType:    radials.RadialType(),
		count:         count,
		efficiencyPct: efficiency,
	}
}
