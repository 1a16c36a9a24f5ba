package go_yagicalc

import "github.com/tommyfalls2011/go_yagicalc/bmath/unit"

//PerformanceResult is the immutable outcome of one antenna evaluation.
//
//Every figure is pre-clamped to its physically sane range, so callers can
//serialize the result as is.
type PerformanceResult struct {
	gain           GainBreakdown
	swr            float64
	matching       MatchReport
	fbRatio        float64
	fsRatio        float64
	hBeamwidth     unit.Angular
	vBeamwidth     unit.Angular
	bandwidth3Db   unit.Frequency
	bandwidthSwr15 unit.Frequency
	bandwidthSwr2  unit.Frequency
	pattern        []PatternPoint
	swrCurve       []SwrPoint
	takeoff        unit.Angular
	takeoffRating  string
	efficiencyPct  float64
	boomCorrection BoomCorrection
	windLoad       WindLoadReport

	hasStacking bool
	stacking    StackingReport
	hasTaper    bool
	taper       TaperReport
	hasCorona   bool
	corona      CoronaReport
	hasRadials  bool
	radials     GroundRadialReport
}

//Gain returns the itemized gain breakdown
func (v PerformanceResult) Gain() GainBreakdown {
	return v.gain
}

//Swr returns the standing wave ratio at the feedline after matching
func (v PerformanceResult) Swr() float64 {
	return v.swr
}

//Matching returns the matching network design detail
func (v PerformanceResult) Matching() MatchReport {
	return v.matching
}

//FrontToBackRatio returns the front-to-back ratio in dB
func (v PerformanceResult) FrontToBackRatio() float64 {
	return v.fbRatio
}

//FrontToSideRatio returns the front-to-side ratio in dB
func (v PerformanceResult) FrontToSideRatio() float64 {
	return v.fsRatio
}

//HorizontalBeamwidth returns the -3dB beamwidth in the element plane
func (v PerformanceResult) HorizontalBeamwidth() unit.Angular {
	return v.hBeamwidth
}

//VerticalBeamwidth returns the -3dB beamwidth perpendicular to the elements
func (v PerformanceResult) VerticalBeamwidth() unit.Angular {
	return v.vBeamwidth
}

//GainBandwidth returns the -3dB gain bandwidth
func (v PerformanceResult) GainBandwidth() unit.Frequency {
	return v.bandwidth3Db
}

//Swr15Bandwidth returns the bandwidth inside which the SWR stays below 1.5
func (v PerformanceResult) Swr15Bandwidth() unit.Frequency {
	return v.bandwidthSwr15
}

//Swr2Bandwidth returns the bandwidth inside which the SWR stays below 2.0
func (v PerformanceResult) Swr2Bandwidth() unit.Frequency {
	return v.bandwidthSwr2
}

//Pattern returns the 73 point normalized far field magnitude table
func (v PerformanceResult) Pattern() []PatternPoint {
	return v.pattern
}

//SwrCurve returns the 61 point SWR over frequency curve
func (v PerformanceResult) SwrCurve() []SwrPoint {
	return v.swrCurve
}

//TakeoffAngle returns the elevation of the lowest radiation lobe
func (v PerformanceResult) TakeoffAngle() unit.Angular {
	return v.takeoff
}

//TakeoffRating returns the qualitative rating of the takeoff angle
func (v PerformanceResult) TakeoffRating() string {
	return v.takeoffRating
}

//EfficiencyPct returns the estimated radiation efficiency in percent
func (v PerformanceResult) EfficiencyPct() float64 {
	return v.efficiencyPct
}

//BoomCorrection returns the conductive boom correction detail
func (v PerformanceResult) BoomCorrection() BoomCorrection {
	return v.boomCorrection
}

//WindLoad returns the structural wind load report
func (v PerformanceResult) WindLoad() WindLoadReport {
	return v.windLoad
}

//HasStacking returns whether the result describes a co-phased stack
func (v PerformanceResult) HasStacking() bool {
	return v.hasStacking
}

//Stacking returns the stacking report
func (v PerformanceResult) Stacking() StackingReport {
	return v.stacking
}

//HasTaper returns whether tapered elements were evaluated
func (v PerformanceResult) HasTaper() bool {
	return v.hasTaper
}

//Taper returns the taper report
func (v PerformanceResult) Taper() TaperReport {
	return v.taper
}

//HasCorona returns whether corona balls were evaluated
func (v PerformanceResult) HasCorona() bool {
	return v.hasCorona
}

//Corona returns the corona ball report
func (v PerformanceResult) Corona() CoronaReport {
	return v.corona
}

//HasGroundRadials returns whether a ground radial system was evaluated
func (v PerformanceResult) HasGroundRadials() bool {
	return v.hasRadials
}

//GroundRadials returns the ground radial report
func (v PerformanceResult) GroundRadials() GroundRadialReport {
	return v.radials
}
