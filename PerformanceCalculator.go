package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

//PerformanceCalculator evaluates antenna configurations against a
//calibration table set.
//
//The calculator is stateless apart from its immutable calibration, so one
//instance may be shared by concurrent callers.
type PerformanceCalculator struct {
	calibration Calibration
}

//CreatePerformanceCalculator creates a calculator with the default calibration
func CreatePerformanceCalculator() PerformanceCalculator {
	return PerformanceCalculator{calibration: CreateDefaultCalibration()}
}

//CreatePerformanceCalculatorWithCalibration creates a calculator with the
//calibration tables supplied by the caller
func CreatePerformanceCalculatorWithCalibration(calibration Calibration) PerformanceCalculator {
	return PerformanceCalculator{calibration: calibration}
}

//Calibration returns the calibration the calculator evaluates against
func (v PerformanceCalculator) Calibration() Calibration {
	return v.calibration
}

//Evaluate computes the complete performance picture of the configuration.
//
//The evaluation is a pure function of the configuration and the
//calibration: no state is kept and no I/O happens, so results for the same
//input are bit for bit identical.
func (v PerformanceCalculator) Evaluate(config AntennaConfig) PerformanceResult {
	elements := config.Elements()
	elementCount := len(elements)
	wavelengthIn := unit.WavelengthOf(config.Frequency()).In(unit.DistanceInch)
	heightWl := 0.0
	if wavelengthIn > 0 {
		heightWl = config.Height().In(unit.DistanceInch) / wavelengthIn
	}

	_, hasReflector := findReflector(elements)
	directors := findDirectors(elements)

	boomLengthIn := boomLengthOf(elements)
	boomDiameterIn := config.BoomDiameter().In(unit.DistanceInch)
	boomCorr := computeBoomCorrection(elements, boomDiameterIn, wavelengthIn, config.BoomMount())

	//gain breakdown, every term rounded before the sum
	reflectorAdj := 0.0
	if !hasReflector {
		reflectorAdj = cNoReflectorPenalty
	}
	taperBonus := 0.0
	var taperReport TaperReport
	if config.HasTaper() {
		taperReport = computeTaperReport(config.Taper())
		taperBonus = taperReport.GainBonus()
	}
	coronaAdj := 0.0
	var coronaReport CoronaReport
	if config.HasCorona() {
		coronaReport = computeCoronaReport(config.Corona())
		coronaAdj = coronaReport.GainAdjustment()
	}
	dualBonus := 0.0
	if config.Polarization() == PolarizationDual {
		dualBonus = cDualActiveBonus
	}
	breakdown := createGainBreakdown(
		v.calibration.FreeSpaceGain(elementCount),
		boomAdjustment(boomLengthIn, v.calibration.StandardBoomLength(elementCount, wavelengthIn)),
		reflectorAdj,
		taperBonus,
		coronaAdj,
		groundGain(heightWl, config.Polarization()),
		boomCorr.GainAdjustment(),
		dualBonus)

	//standing wave ratio of the bare feedpoint, then through the match
	rawSwr := swrFromGeometry(elements, wavelengthIn, config.HasTaper(), heightWl)
	rawSwr = clampSwr(rawSwr * boomCorr.SwrFactor())
	if config.HasCorona() {
		rawSwr = clampSwr(rawSwr * coronaReport.SwrFactor())
	}

	feedpointR := feedpointResistance(hasReflector, len(directors)) + boomCorr.ImpedanceShift()
	if feedpointR < cMinimumFeedpointR {
		feedpointR = cMinimumFeedpointR
	}
	halfElementIn := cIdealDrivenFraction * wavelengthIn / 2
	if driven, ok := findDriven(elements); ok {
		halfElementIn = driven.Length().In(unit.DistanceInch) / 2
	}
	match := designMatch(config.FeedType(), rawSwr, feedpointR,
		v.calibration.GammaHardwareFor(elementCount), halfElementIn,
		config.Frequency(), wavelengthIn)

	fb := frontToBackRatio(elementCount, hasReflector, boomCorr.FrontToBackAdjustment())
	fs := frontToSideRatio(fb)
	hBeam := horizontalBeamwidth(elementCount)
	vBeam := verticalBeamwidth(elementCount)
	pattern := generatePattern(fb, fs, hBeam)

	finalGain := breakdown.Final()
	var stackingReport StackingReport
	if config.HasStacking() {
		stackingReport = computeStackingReport(config.Stacking(), finalGain, hBeam, vBeam, wavelengthIn)
		hBeam = stackingReport.HorizontalBeamwidth()
		vBeam = stackingReport.VerticalBeamwidth()
		spacingWl := 0.0
		if wavelengthIn > 0 {
			spacingWl = config.Stacking().Spacing().In(unit.DistanceInch) / wavelengthIn
		}
		if config.Stacking().Layout() == LayoutQuad {
			pattern = arrayFactorPattern(pattern, 2, spacingWl, StackAxisVertical)
			pattern = arrayFactorPattern(pattern, 2, spacingWl, StackAxisHorizontal)
		} else {
			pattern = arrayFactorPattern(pattern, stackingReport.Count(), spacingWl, config.Stacking().Axis())
		}
	}

	bandwidthMult := match.BandwidthMultiplier() * boomCorr.BandwidthMultiplier()
	if config.HasTaper() {
		bandwidthMult *= taperReport.BandwidthMultiplier()
	}
	if config.HasCorona() {
		bandwidthMult *= coronaReport.BandwidthMultiplier()
	}

	var radialReport GroundRadialReport
	if config.HasGroundRadials() {
		radialReport = computeGroundRadialReport(config.GroundRadials())
	}

	takeoff := takeoffAngle(heightWl)

	windMultiplier := 1.0
	if config.Polarization() == PolarizationDual {
		windMultiplier *= 2
	}
	if config.HasStacking() {
		count := config.Stacking().Count()
		if config.Stacking().Layout() == LayoutQuad {
			count = 4
		}
		if count > 1 {
			windMultiplier *= float64(count)
		}
	}

	result := PerformanceResult{
		gain:           breakdown,
		swr:            match.MatchedSwr(),
		matching:       match,
		fbRatio:        fb,
		fsRatio:        fs,
		hBeamwidth:     unit.MustCreateAngular(hBeam, unit.AngularDegree),
		vBeamwidth:     unit.MustCreateAngular(vBeam, unit.AngularDegree),
		bandwidth3Db:   gainBandwidth(config.Frequency(), match.LoadedQ(), bandwidthMult),
		bandwidthSwr15: swrBandwidth(match.MatchedSwr(), 1.5, config.Frequency(), match.LoadedQ(), bandwidthMult),
		bandwidthSwr2:  swrBandwidth(match.MatchedSwr(), 2.0, config.Frequency(), match.LoadedQ(), bandwidthMult),
		pattern:        pattern,
		swrCurve: swrCurve(match.MatchedSwr(), match.ResonantFrequency(), config.Frequency(),
			match.LoadedQ(), bandwidthMult),
		takeoff:        unit.MustCreateAngular(takeoff, unit.AngularDegree),
		takeoffRating:  takeoffRating(takeoff),
		efficiencyPct:  radiationEfficiency(heightWl, config.HasGroundRadials(), radialReport),
		boomCorrection: boomCorr,
		windLoad:       computeWindLoad(elements, boomDiameterIn, boomLengthIn, windMultiplier),
		hasStacking:    config.HasStacking(),
		stacking:       stackingReport,
		hasTaper:       config.HasTaper(),
		taper:          taperReport,
		hasCorona:      config.HasCorona(),
		corona:         coronaReport,
		hasRadials:     config.HasGroundRadials(),
		radials:        radialReport,
	}
	return result
}

//radiationEfficiency estimates how much of the fed power is radiated.
//
//Low antennas lose power into the ground; a radial system claws part of
//that back. The figure is clamped to the documented sane range.
func radiationEfficiency(heightWl float64, hasRadials bool, radials GroundRadialReport) float64 {
	efficiency := 100 * (0.55 + 0.45*math.Min(heightWl, 1.0))
	if hasRadials {
		efficiency += (radials.EfficiencyPct() - 60) * 0.2
	}
	if efficiency < 0 {
		efficiency = 0
	}
	if efficiency > 200 {
		efficiency = 200
	}
	return efficiency
}

//MatchingDesign designs a matching network for a feedpoint without running
//a full antenna evaluation. The standalone gamma and hairpin designer
//tools feed this entry point directly.
func (v PerformanceCalculator) MatchingDesign(feedType byte, feedpointR float64,
	frequency unit.Frequency, hw GammaHardware) MatchReport {
	wavelengthIn := unit.WavelengthOf(frequency).In(unit.DistanceInch)
	originalSwr := cMaximumSwr
	if feedpointR > 0 {
		originalSwr = clampSwr(math.Max(cFeedlineImpedance/feedpointR, feedpointR/cFeedlineImpedance))
	}
	halfElementIn := cIdealDrivenFraction * wavelengthIn / 2
	return designMatch(feedType, originalSwr, feedpointR, hw, halfElementIn, frequency, wavelengthIn)
}
