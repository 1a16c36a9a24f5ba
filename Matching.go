package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

const cHalfWaveDipoleR float64 = 73.0
const cFeedlineImpedance float64 = 50.0
const cReflectorCouplingDiscount float64 = 0.45
const cMinimumFeedpointR float64 = 8.0
const cGammaBarMinimum float64 = 2.0
const cGammaBarSteps int = 25
const cGammaInsertionSteps int = 21
const cHairpinSpacing float64 = 1.5
const cHairpinRodDiameter float64 = 0.25
const cHairpinLengthStep float64 = 0.25
const cHairpinDeviationPenalty float64 = 8.0
const cCapacitancePerInchFactor float64 = 0.6128
const cMaximumStubReactance float64 = 500.0

//MatchTypeDirect is the report type of a direct feed
const MatchTypeDirect string = "Direct Feed"

//MatchTypeGamma is the report type of a gamma match
const MatchTypeGamma string = "Gamma Match"

//MatchTypeHairpin is the report type of a hairpin match
const MatchTypeHairpin string = "Hairpin Match"

//GammaSweepPoint is one evaluated grid point of the gamma match sweep
type GammaSweepPoint struct {
	barPosition float64
	insertion   float64
	swr         float64
}

//BarPosition returns the shorting bar position in inches from the feedpoint
func (v GammaSweepPoint) BarPosition() float64 {
	return v.barPosition
}

//Insertion returns the rod insertion depth in inches
func (v GammaSweepPoint) Insertion() float64 {
	return v.insertion
}

//Swr returns the standing wave ratio at this grid point
func (v GammaSweepPoint) Swr() float64 {
	return v.swr
}

//MatchReport describes a designed matching network: the achieved match and
//the physical recipe needed to build it
type MatchReport struct {
	matchType         string
	originalSwr       float64
	matchedSwr        float64
	feedpointR        float64
	matchedR          float64
	hardware          GammaHardware
	barPosition       unit.Distance
	insertion         unit.Distance
	requiredReactance float64
	hairpinLength     unit.Distance
	hairpinImpedance  float64
	resonantFrequency unit.Frequency
	loadedQ           float64
	bandwidthMult     float64
	topologyNote      string
	sweep             []GammaSweepPoint
}

//Type returns the matching network type
func (v MatchReport) Type() string {
	return v.matchType
}

//OriginalSwr returns the standing wave ratio before matching
func (v MatchReport) OriginalSwr() float64 {
	return v.originalSwr
}

//MatchedSwr returns the standing wave ratio after matching
func (v MatchReport) MatchedSwr() float64 {
	return v.matchedSwr
}

//FeedpointResistance returns the raw feedpoint resistance in ohms
func (v MatchReport) FeedpointResistance() float64 {
	return v.feedpointR
}

//MatchedResistance returns the stepped-up resistance in ohms
func (v MatchReport) MatchedResistance() float64 {
	return v.matchedR
}

//Hardware returns the gamma hardware the design is based on
func (v MatchReport) Hardware() GammaHardware {
	return v.hardware
}

//BarPosition returns the designed shorting bar position
func (v MatchReport) BarPosition() unit.Distance {
	return v.barPosition
}

//Insertion returns the designed rod insertion depth
func (v MatchReport) Insertion() unit.Distance {
	return v.insertion
}

//RequiredReactance returns the stub reactance in ohms the capacitor must cancel
func (v MatchReport) RequiredReactance() float64 {
	return v.requiredReactance
}

//HairpinLength returns the designed hairpin stub length
func (v MatchReport) HairpinLength() unit.Distance {
	return v.hairpinLength
}

//HairpinImpedance returns the characteristic impedance of the hairpin stub
func (v MatchReport) HairpinImpedance() float64 {
	return v.hairpinImpedance
}

//ResonantFrequency returns the frequency the matched system resonates at
func (v MatchReport) ResonantFrequency() unit.Frequency {
	return v.resonantFrequency
}

//LoadedQ returns the loaded Q of the matching network
func (v MatchReport) LoadedQ() float64 {
	return v.loadedQ
}

//BandwidthMultiplier returns the factor the match applies to the usable bandwidth
func (v MatchReport) BandwidthMultiplier() float64 {
	return v.bandwidthMult
}

//TopologyNote carries a recommendation when the requested network cannot
//serve the feedpoint, instead of failing the design
func (v MatchReport) TopologyNote() string {
	return v.topologyNote
}

//Sweep returns the full evaluated grid of the gamma sweep for diagnostics
func (v MatchReport) Sweep() []GammaSweepPoint {
	return v.sweep
}

//feedpointResistance estimates the raw feedpoint resistance of the driven
//element from mutual coupling with the parasitic elements.
//
//The half wave dipole baseline is discounted once for the reflector and
//once per director with diminishing coupling further down the boom.
func feedpointResistance(hasReflector bool, directorCount int) float64 {
	r := cHalfWaveDipoleR
	if hasReflector {
		r *= 1 - cReflectorCouplingDiscount
	}
	for i := 0; i < directorCount; i++ {
		discount := 0.30 - 0.05*float64(i)
		if discount < 0.05 {
			discount = 0.05
		}
		r *= 1 - discount
	}
	if r < cMinimumFeedpointR {
		r = cMinimumFeedpointR
	}
	return r
}

//transmissionLineZ0 returns the characteristic impedance of a two conductor
//line with the given center spacing and conductor diameter, both in inches
func transmissionLineZ0(spacingIn, diameterIn float64) float64 {
	if diameterIn <= 0 || 2*spacingIn <= diameterIn {
		return 200
	}
	return 276 * math.Log10(2*spacingIn/diameterIn)
}

//swrFromImpedance returns the standing wave ratio of the complex impedance
//r+jx against the feedline impedance
func swrFromImpedance(r, x float64) float64 {
	num := math.Sqrt((r-cFeedlineImpedance)*(r-cFeedlineImpedance) + x*x)
	den := math.Sqrt((r+cFeedlineImpedance)*(r+cFeedlineImpedance) + x*x)
	if den <= 0 {
		return cMaximumSwr
	}
	gamma := num / den
	if gamma >= 0.999 {
		return cMaximumSwr
	}
	return (1 + gamma) / (1 - gamma)
}

//gammaCapacitanceReactance returns the series reactance in ohms of the
//capacitor formed by inserting the rod into the teflon lined tube
func gammaCapacitanceReactance(insertionIn float64, hw GammaHardware, freqMHz float64) float64 {
	if insertionIn <= 0 || freqMHz <= 0 {
		return cMaximumStubReactance
	}
	d := hw.rodDiameter.In(unit.DistanceInch)
	dOuter := hw.tubeInnerDiameter.In(unit.DistanceInch)
	if d <= 0 || dOuter <= d {
		return cMaximumStubReactance
	}
	perInch := cCapacitancePerInchFactor * hw.dielectric / math.Log10(dOuter/d)
	capacitance := perInch * insertionIn
	xc := 1e6 / (2 * math.Pi * freqMHz * capacitance)
	if xc > cMaximumStubReactance {
		xc = cMaximumStubReactance
	}
	return xc
}

//gammaStubReactance returns the inductive reactance of the rod/element line
//section between the feedpoint and the shorting bar
func gammaStubReactance(barPositionIn, z0, wavelengthIn float64) float64 {
	if wavelengthIn <= 0 {
		return 0
	}
	beta := 2 * math.Pi / wavelengthIn
	x := z0 * math.Tan(beta*barPositionIn)
	if x > cMaximumStubReactance {
		x = cMaximumStubReactance
	}
	if x < -cMaximumStubReactance {
		x = -cMaximumStubReactance
	}
	return x
}

//gammaStepUp returns the geometric step-up ratio K for the given bar position
func gammaStepUp(barPositionIn, halfElementIn, z0 float64) float64 {
	if halfElementIn <= 0 {
		return 1
	}
	return 1 + (barPositionIn/halfElementIn)*(z0/cHalfWaveDipoleR)
}

//gammaSwrAt evaluates the standing wave ratio of one bar/insertion grid point
func gammaSwrAt(barPositionIn, insertionIn float64, hw GammaHardware,
	halfElementIn, feedpointR, freqMHz, wavelengthIn float64) float64 {
	z0 := transmissionLineZ0(hw.rodSpacing.In(unit.DistanceInch), hw.rodDiameter.In(unit.DistanceInch))
	k := gammaStepUp(barPositionIn, halfElementIn, z0)
	matchedR := feedpointR * k * k
	xStub := gammaStubReactance(barPositionIn, z0, wavelengthIn)
	xCap := gammaCapacitanceReactance(insertionIn, hw, freqMHz)
	return swrFromImpedance(matchedR, xStub-xCap)
}

//designDirect reports a direct feed; the feedpoint is handed to the line as is
func designDirect(originalSwr, feedpointR float64, frequency unit.Frequency) MatchReport {
	return MatchReport{
		matchType:         MatchTypeDirect,
		originalSwr:       originalSwr,
		matchedSwr:        originalSwr,
		feedpointR:        feedpointR,
		matchedR:          feedpointR,
		resonantFrequency: frequency,
		bandwidthMult:     1.0,
	}
}

//designGamma designs a gamma match by sweeping the shorting bar position and
//rod insertion over a bounded grid and keeping the lowest standing wave
//ratio found.
//
//The relationship between the two controls and the resulting match is not
//monotone, so the full grid is evaluated and returned for diagnostics. A
//longer bar lowers the resonant frequency; deeper insertion raises the
//loaded Q and narrows the usable bandwidth.
func designGamma(originalSwr, feedpointR float64, hw GammaHardware,
	halfElementIn float64, frequency unit.Frequency, wavelengthIn float64) MatchReport {
	freqMHz := frequency.In(unit.FrequencyMHz)
	rodLength := hw.rodLength.In(unit.DistanceInch)
	maxInsertion := hw.maxInsertion.In(unit.DistanceInch)

	barStep := (rodLength - cGammaBarMinimum) / float64(cGammaBarSteps-1)
	insertionStep := maxInsertion / float64(cGammaInsertionSteps-1)

	sweep := make([]GammaSweepPoint, 0, cGammaBarSteps*cGammaInsertionSteps)
	bestSwr := math.MaxFloat64
	var bestBar, bestInsertion float64

	for i := 0; i < cGammaBarSteps; i++ {
		bar := cGammaBarMinimum + float64(i)*barStep
		for j := 0; j < cGammaInsertionSteps; j++ {
			insertion := float64(j) * insertionStep
			swr := gammaSwrAt(bar, insertion, hw, halfElementIn, feedpointR, freqMHz, wavelengthIn)
			sweep = append(sweep, GammaSweepPoint{barPosition: bar, insertion: insertion, swr: swr})
			if swr < bestSwr {
				bestSwr = swr
				bestBar = bar
				bestInsertion = insertion
			}
		}
	}

	z0 := transmissionLineZ0(hw.rodSpacing.In(unit.DistanceInch), hw.rodDiameter.In(unit.DistanceInch))
	k := gammaStepUp(bestBar, halfElementIn, z0)
	matchedSwr := clampSwr(math.Min(bestSwr, originalSwr))
	insertionRatio := 0.0
	if maxInsertion > 0 {
		insertionRatio = bestInsertion / maxInsertion
	}

	return MatchReport{
		matchType:         MatchTypeGamma,
		originalSwr:       originalSwr,
		matchedSwr:        matchedSwr,
		feedpointR:        feedpointR,
		matchedR:          feedpointR * k * k,
		hardware:          hw,
		barPosition:       unit.MustCreateDistance(bestBar, unit.DistanceInch),
		insertion:         unit.MustCreateDistance(bestInsertion, unit.DistanceInch),
		requiredReactance: gammaStubReactance(bestBar, z0, wavelengthIn),
		resonantFrequency: unit.MustCreateFrequency(freqMHz*(1-0.004*bestBar/rodLength), unit.FrequencyMHz),
		loadedQ:           8 + 12*insertionRatio,
		bandwidthMult:     0.97 - 0.05*insertionRatio,
		sweep:             sweep,
	}
}

//designHairpin designs a hairpin match: a shorted two wire stub across the
//feedpoint whose inductive reactance resonates with the capacitive reactance
//of a slightly shortened driven element.
//
//A hairpin can only step impedance up, so a feedpoint at or above the line
//impedance is reported with a topology note instead of an error.
func designHairpin(originalSwr, feedpointR float64, frequency unit.Frequency,
	wavelengthIn float64) MatchReport {
	report := MatchReport{
		matchType:         MatchTypeHairpin,
		originalSwr:       originalSwr,
		feedpointR:        feedpointR,
		resonantFrequency: frequency,
		bandwidthMult:     1.0,
	}

	if feedpointR >= cFeedlineImpedance {
		report.matchedSwr = originalSwr
		report.topologyNote = "feedpoint resistance is at or above the line impedance; " +
			"a hairpin cannot step impedance up, use a gamma match instead"
		report.matchedR = feedpointR
		return report
	}

	//a degenerate wavelength or feedpoint cannot size a stub
	if wavelengthIn <= 0 || feedpointR <= 0 {
		report.matchedSwr = clampSwr(originalSwr)
		report.matchedR = feedpointR
		return report
	}

	z0 := transmissionLineZ0(cHairpinSpacing, cHairpinRodDiameter)
	required := math.Sqrt(feedpointR * (cFeedlineImpedance - feedpointR))
	beta := 2 * math.Pi / wavelengthIn
	exactLength := math.Atan(required/z0) / beta

	//the builder cuts the stub to the nearest quarter inch; the residual
	//uncancelled reactance is what degrades the match
	builtLength := math.Round(exactLength/cHairpinLengthStep) * cHairpinLengthStep
	builtReactance := z0 * math.Tan(beta*builtLength)
	deviation := 0.0
	if required > 0 {
		deviation = math.Abs(builtReactance-required) / required
	}

	report.matchedSwr = clampSwr(math.Min(1.0+cHairpinDeviationPenalty*deviation, originalSwr))
	report.matchedR = cFeedlineImpedance
	report.requiredReactance = required
	report.hairpinLength = unit.MustCreateDistance(builtLength, unit.DistanceInch)
	report.hairpinImpedance = z0
	report.loadedQ = math.Sqrt(cFeedlineImpedance/feedpointR - 1)
	return report
}

//designMatch dispatches to the requested matching network design
func designMatch(feedType byte, originalSwr, feedpointR float64, hw GammaHardware,
	halfElementIn float64, frequency unit.Frequency, wavelengthIn float64) MatchReport {
	switch feedType {
	case FeedGamma:
		return designGamma(originalSwr, feedpointR, hw, halfElementIn, frequency, wavelengthIn)
	case FeedHairpin:
		return designHairpin(originalSwr, feedpointR, frequency, wavelengthIn)
	default:
		return designDirect(originalSwr, feedpointR, frequency)
	}
}
