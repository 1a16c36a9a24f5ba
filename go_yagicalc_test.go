package go_yagicalc_test

import (
	"math"
	"testing"

	"github.com/tommyfalls2011/go_yagicalc"
	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

func assertEqual(t *testing.T, a, b, accuracy float64, name string) {
	if math.Abs(a-b) > accuracy {
		t.Errorf("Assertion %s failed (%f/%f)", name, a, b)
	}
}

func threeElementConfig(feedType byte) go_yagicalc.AntennaConfig {
	elements := []go_yagicalc.Element{
		go_yagicalc.CreateElement(go_yagicalc.RoleReflector,
			unit.MustCreateDistance(214.5, unit.DistanceInch),
			unit.MustCreateDistance(0.5, unit.DistanceInch),
			unit.MustCreateDistance(0, unit.DistanceInch)),
		go_yagicalc.CreateElement(go_yagicalc.RoleDriven,
			unit.MustCreateDistance(202.4, unit.DistanceInch),
			unit.MustCreateDistance(0.5, unit.DistanceInch),
			unit.MustCreateDistance(47, unit.DistanceInch)),
		go_yagicalc.CreateElement(go_yagicalc.RoleDirector,
			unit.MustCreateDistance(195.0, unit.DistanceInch),
			unit.MustCreateDistance(0.5, unit.DistanceInch),
			unit.MustCreateDistance(138, unit.DistanceInch)),
	}
	return go_yagicalc.CreateAntennaConfig(elements,
		unit.MustCreateFrequency(27.185, unit.FrequencyMHz),
		unit.MustCreateDistance(54, unit.DistanceFoot),
		unit.MustCreateDistance(2, unit.DistanceInch),
		go_yagicalc.PolarizationHorizontal, feedType, go_yagicalc.MountBonded)
}

func TestThreeElementDirectFeed(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	result := calc.Evaluate(threeElementConfig(go_yagicalc.FeedDirect))

	if result.Gain().Final() <= 5 {
		t.Errorf("3 element gain must exceed 5dBi, got %f", result.Gain().Final())
	}
	if result.Swr() < 1.0 || result.Swr() > 5.0 {
		t.Errorf("SWR out of range: %f", result.Swr())
	}
	if result.FrontToBackRatio() <= 10 {
		t.Errorf("3 element front-to-back must exceed 10dB, got %f", result.FrontToBackRatio())
	}
	if result.Matching().Type() != go_yagicalc.MatchTypeDirect {
		t.Errorf("expected direct feed report, got %s", result.Matching().Type())
	}
	if len(result.Pattern()) != 73 {
		t.Errorf("pattern must have 73 points, got %d", len(result.Pattern()))
	}
	if len(result.SwrCurve()) != 61 {
		t.Errorf("SWR curve must have 61 points, got %d", len(result.SwrCurve()))
	}
}

func TestThreeElementGammaMatch(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	result := calc.Evaluate(threeElementConfig(go_yagicalc.FeedGamma))

	if result.Matching().Type() != go_yagicalc.MatchTypeGamma {
		t.Errorf("expected gamma match report, got %s", result.Matching().Type())
	}
	if result.Swr() > 1.5 {
		t.Errorf("swept gamma match must reach 1.5 or better, got %f", result.Swr())
	}
	if result.Matching().MatchedSwr() > result.Matching().OriginalSwr() {
		t.Errorf("gamma match must not worsen the SWR (%f/%f)",
			result.Matching().MatchedSwr(), result.Matching().OriginalSwr())
	}
	if len(result.Matching().Sweep()) == 0 {
		t.Errorf("gamma report must carry the full sweep grid")
	}
}

func TestGainBreakdownAddsUp(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	result := calc.Evaluate(threeElementConfig(go_yagicalc.FeedDirect))
	b := result.Gain()
	sum := b.BaseLookup() + b.BoomAdjustment() + b.ReflectorAdjustment() + b.TaperBonus() +
		b.CoronaAdjustment() + b.GroundBonus() + b.MountAdjustment() + b.DualBonus()
	assertEqual(t, b.Final(), sum, 0.005, "BreakdownSum")
}

func TestNoReflectorPenalty(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	withReflector := calc.Evaluate(threeElementConfig(go_yagicalc.FeedDirect))

	elements := []go_yagicalc.Element{
		go_yagicalc.CreateElement(go_yagicalc.RoleDriven,
			unit.MustCreateDistance(202.4, unit.DistanceInch),
			unit.MustCreateDistance(0.5, unit.DistanceInch),
			unit.MustCreateDistance(47, unit.DistanceInch)),
		go_yagicalc.CreateElement(go_yagicalc.RoleDirector,
			unit.MustCreateDistance(195.0, unit.DistanceInch),
			unit.MustCreateDistance(0.5, unit.DistanceInch),
			unit.MustCreateDistance(138, unit.DistanceInch)),
	}
	config := go_yagicalc.CreateAntennaConfig(elements,
		unit.MustCreateFrequency(27.185, unit.FrequencyMHz),
		unit.MustCreateDistance(54, unit.DistanceFoot),
		unit.MustCreateDistance(2, unit.DistanceInch),
		go_yagicalc.PolarizationHorizontal, go_yagicalc.FeedDirect, go_yagicalc.MountBonded)
	withoutReflector := calc.Evaluate(config)

	assertEqual(t, withoutReflector.Gain().ReflectorAdjustment(), -1.5, 1e-9, "ReflectorAdj")

	fbLoss := withReflector.FrontToBackRatio() - withoutReflector.FrontToBackRatio()
	if fbLoss < 8 || fbLoss > 12 {
		t.Errorf("removing the reflector must cost 8 to 12dB of front-to-back, got %f", fbLoss)
	}
}

func TestSwrCurveMinimumMatchesScalar(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	for _, feed := range []byte{go_yagicalc.FeedDirect, go_yagicalc.FeedGamma, go_yagicalc.FeedHairpin} {
		result := calc.Evaluate(threeElementConfig(feed))
		minimum := math.MaxFloat64
		for _, p := range result.SwrCurve() {
			if p.Swr() < minimum {
				minimum = p.Swr()
			}
		}
		assertEqual(t, minimum, result.Swr(), 0.05, "CurveMinimum")
	}
}

func TestStackedPairGainIncrease(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	//0.7 wavelengths at 27.185MHz is about 304 inches
	config := threeElementConfig(go_yagicalc.FeedDirect).WithStacking(
		go_yagicalc.CreateStackingConfig(go_yagicalc.StackAxisVertical, go_yagicalc.LayoutLine,
			unit.MustCreateDistance(304, unit.DistanceInch), 2))
	result := calc.Evaluate(config)

	if !result.HasStacking() {
		t.Fatalf("stacking report missing")
	}
	increase := result.Stacking().GainIncrease()
	if increase < 2.5 || increase > 3.5 {
		t.Errorf("a pair at optimum spacing must gain 2.5 to 3.5dB, got %f", increase)
	}
}

func TestBoomDiameterCorrectionOrdering(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	elements := []go_yagicalc.Element{
		go_yagicalc.CreateElement(go_yagicalc.RoleReflector,
			unit.MustCreateDistance(214.5, unit.DistanceInch),
			unit.MustCreateDistance(0.5, unit.DistanceInch),
			unit.MustCreateDistance(0, unit.DistanceInch)),
		go_yagicalc.CreateElement(go_yagicalc.RoleDriven,
			unit.MustCreateDistance(202.4, unit.DistanceInch),
			unit.MustCreateDistance(0.5, unit.DistanceInch),
			unit.MustCreateDistance(87, unit.DistanceInch)),
	}
	thin := go_yagicalc.CreateAntennaConfig(elements,
		unit.MustCreateFrequency(27.185, unit.FrequencyMHz),
		unit.MustCreateDistance(36, unit.DistanceFoot),
		unit.MustCreateDistance(1, unit.DistanceInch),
		go_yagicalc.PolarizationHorizontal, go_yagicalc.FeedDirect, go_yagicalc.MountBonded)
	thick := go_yagicalc.CreateAntennaConfig(elements,
		unit.MustCreateFrequency(27.185, unit.FrequencyMHz),
		unit.MustCreateDistance(36, unit.DistanceFoot),
		unit.MustCreateDistance(3, unit.DistanceInch),
		go_yagicalc.PolarizationHorizontal, go_yagicalc.FeedDirect, go_yagicalc.MountBonded)

	thinResult := calc.Evaluate(thin).BoomCorrection()
	thickResult := calc.Evaluate(thick).BoomCorrection()

	if thickResult.CorrectionPerSide() <= thinResult.CorrectionPerSide() {
		t.Errorf("a thicker boom must need a larger correction (%f/%f)",
			thickResult.CorrectionPerSide(), thinResult.CorrectionPerSide())
	}
	if thickResult.GainAdjustment() >= thinResult.GainAdjustment() {
		t.Errorf("a thicker boom must cost more gain (%f/%f)",
			thickResult.GainAdjustment(), thinResult.GainAdjustment())
	}
}

func TestHairpinTopologyNote(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	//driven plus director without a reflector leaves the feedpoint above
	//50 ohms, which a hairpin cannot step up
	report := calc.MatchingDesign(go_yagicalc.FeedHairpin, 51.1,
		unit.MustCreateFrequency(27.185, unit.FrequencyMHz),
		go_yagicalc.CreateDefaultCalibration().GammaHardwareFor(2))

	if report.Type() != go_yagicalc.MatchTypeHairpin {
		t.Errorf("expected hairpin report, got %s", report.Type())
	}
	if report.TopologyNote() == "" {
		t.Errorf("a hairpin at 51 ohms must carry a topology note")
	}
}

func TestHairpinDegenerateInputs(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	hw := go_yagicalc.CreateDefaultCalibration().GammaHardwareFor(3)

	//a zero frequency has no wavelength to size a stub against
	report := calc.MatchingDesign(go_yagicalc.FeedHairpin, 28.0,
		unit.MustCreateFrequency(0, unit.FrequencyMHz), hw)
	if math.IsNaN(report.MatchedSwr()) {
		t.Errorf("a zero frequency must not produce a NaN SWR")
	}
	if report.MatchedSwr() < 1.0 || report.MatchedSwr() > 5.0 {
		t.Errorf("the degenerate SWR must stay clamped, got %f", report.MatchedSwr())
	}

	//a zero feedpoint resistance cannot be stepped up either
	report = calc.MatchingDesign(go_yagicalc.FeedHairpin, 0,
		unit.MustCreateFrequency(27.185, unit.FrequencyMHz), hw)
	if math.IsNaN(report.MatchedSwr()) {
		t.Errorf("a zero feedpoint resistance must not produce a NaN SWR")
	}
	if report.MatchedSwr() != 5.0 {
		t.Errorf("an unmatched zero ohm feedpoint must report the maximum SWR, got %f",
			report.MatchedSwr())
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	calc := go_yagicalc.CreatePerformanceCalculator()
	config := threeElementConfig(go_yagicalc.FeedGamma)
	a := calc.Evaluate(config)
	b := calc.Evaluate(config)
	assertEqual(t, a.Gain().Final(), b.Gain().Final(), 0, "Gain")
	assertEqual(t, a.Swr(), b.Swr(), 0, "Swr")
	assertEqual(t, a.FrontToBackRatio(), b.FrontToBackRatio(), 0, "FrontToBack")
}
