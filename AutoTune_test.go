package go_yagicalc

import (
	"math"
	"testing"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

func cbBand(t *testing.T) Band {
	band, ok := CreateDefaultCalibration().BandByName("11m")
	if !ok {
		t.Fatalf("default calibration must carry the 11m band")
	}
	return band
}

func TestAutoTuneDrivenLength(t *testing.T) {
	calc := CreatePerformanceCalculator()
	band := cbBand(t)
	wavelength := unit.WavelengthOf(band.Center()).In(unit.DistanceInch)

	direct := calc.AutoTune(3, band, CreateTuneConstraints(FeedDirect, SpacingDefault))
	driven := direct.Elements()[1]
	if driven.Role() != RoleDriven {
		t.Fatalf("the second element must be the driven element")
	}
	expected := cIdealDrivenFraction * wavelength
	if math.Abs(driven.Length().In(unit.DistanceInch)-expected) > 0.01 {
		t.Errorf("direct feed driven element must be the resonant fraction (%f/%f)",
			driven.Length().In(unit.DistanceInch), expected)
	}

	//a gamma fed driven element is cut slightly short
	gamma := calc.AutoTune(3, band, CreateTuneConstraints(FeedGamma, SpacingDefault))
	shortened := gamma.Elements()[1].Length().In(unit.DistanceInch)
	if math.Abs(shortened-expected*cFeedShorteningFactor) > 0.01 {
		t.Errorf("gamma feed must shorten the driven element (%f/%f)",
			shortened, expected*cFeedShorteningFactor)
	}
}

func TestAutoTuneReflectorAndDirectors(t *testing.T) {
	calc := CreatePerformanceCalculator()
	suggestion := calc.AutoTune(5, cbBand(t), CreateTuneConstraints(FeedDirect, SpacingDefault))
	elements := suggestion.Elements()
	if len(elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(elements))
	}

	reflector := elements[0]
	driven := elements[1]
	if reflector.Position().In(unit.DistanceInch) != 0 {
		t.Errorf("the reflector must anchor the boom at zero")
	}
	ratio := reflector.Length().In(unit.DistanceInch) / driven.Length().In(unit.DistanceInch)
	if math.Abs(ratio-cIdealReflectorRatio) > 1e-6 {
		t.Errorf("the reflector must be cut to the ideal ratio, got %f", ratio)
	}

	//directors shrink and spread toward the boom tip
	for i := 2; i < 5; i++ {
		if elements[i].Role() != RoleDirector {
			t.Errorf("element %d must be a director", i)
		}
		if elements[i].Length().In(unit.DistanceInch) >=
			elements[i-1].Length().In(unit.DistanceInch) {
			t.Errorf("director %d must be shorter than the element before it", i)
		}
		if elements[i].Position().In(unit.DistanceInch) <=
			elements[i-1].Position().In(unit.DistanceInch) {
			t.Errorf("director %d must sit further down the boom", i)
		}
	}
}

func TestAutoTuneSpacingPresets(t *testing.T) {
	calc := CreatePerformanceCalculator()
	band := cbBand(t)
	tight := calc.AutoTune(3, band, CreateTuneConstraints(FeedDirect, SpacingClose))
	far := calc.AutoTune(3, band, CreateTuneConstraints(FeedDirect, SpacingFar))
	closeSpacing := tight.Elements()[1].Position().In(unit.DistanceInch)
	farSpacing := far.Elements()[1].Position().In(unit.DistanceInch)
	if farSpacing <= closeSpacing {
		t.Errorf("the far preset must space the reflector wider (%f/%f)",
			farSpacing, closeSpacing)
	}
}

func TestAutoTuneBoomLock(t *testing.T) {
	calc := CreatePerformanceCalculator()
	band := cbBand(t)
	maxBoom := unit.MustCreateDistance(120, unit.DistanceInch)
	constraints := CreateTuneConstraints(FeedDirect, SpacingDefault).WithMaxBoom(maxBoom)
	suggestion := calc.AutoTune(6, band, constraints)

	if suggestion.BoomLength().In(unit.DistanceInch) > 120+1e-6 {
		t.Errorf("a locked boom must not be exceeded, got %f",
			suggestion.BoomLength().In(unit.DistanceInch))
	}
	//the relative ordering survives the rescale
	elements := suggestion.Elements()
	for i := 1; i < len(elements); i++ {
		if elements[i].Position().In(unit.DistanceInch) <=
			elements[i-1].Position().In(unit.DistanceInch) {
			t.Errorf("rescaled positions must stay ordered at element %d", i)
		}
	}
}

func TestAutoTunePinnedPositions(t *testing.T) {
	calc := CreatePerformanceCalculator()
	pinned := []unit.Distance{
		unit.MustCreateDistance(0, unit.DistanceInch),
		unit.MustCreateDistance(50, unit.DistanceInch),
		unit.MustCreateDistance(140, unit.DistanceInch),
	}
	constraints := CreateTuneConstraints(FeedDirect, SpacingDefault).WithPinnedPositions(pinned)
	suggestion := calc.AutoTune(3, cbBand(t), constraints)
	for i, e := range suggestion.Elements() {
		if math.Abs(e.Position().In(unit.DistanceInch)-pinned[i].In(unit.DistanceInch)) > 1e-9 {
			t.Errorf("pinned position %d must be honored, got %f", i,
				e.Position().In(unit.DistanceInch))
		}
	}
}

func TestAutoTunePredictionsPlausible(t *testing.T) {
	calc := CreatePerformanceCalculator()
	suggestion := calc.AutoTune(4, cbBand(t), CreateTuneConstraints(FeedDirect, SpacingDefault))
	if suggestion.PredictedGain() < 5 || suggestion.PredictedGain() > 20 {
		t.Errorf("predicted gain implausible: %f", suggestion.PredictedGain())
	}
	if suggestion.PredictedSwr() < 1.0 || suggestion.PredictedSwr() > 5.0 {
		t.Errorf("predicted SWR out of range: %f", suggestion.PredictedSwr())
	}
	//a synthesized geometry resonates well
	if suggestion.PredictedSwr() > 2.0 {
		t.Errorf("a synthesized geometry must predict a reasonable SWR, got %f",
			suggestion.PredictedSwr())
	}
	if suggestion.PredictedFrontToBack() <= 0 {
		t.Errorf("predicted front-to-back must be positive")
	}
}

func TestAutoTuneMinimumElementCount(t *testing.T) {
	calc := CreatePerformanceCalculator()
	suggestion := calc.AutoTune(1, cbBand(t), CreateTuneConstraints(FeedDirect, SpacingDefault))
	if len(suggestion.Elements()) != 2 {
		t.Errorf("a count below two must be raised to a two element beam, got %d",
			len(suggestion.Elements()))
	}
}
