package go_yagicalc

import (
	"testing"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

func heightTestConfig() AntennaConfig {
	elements := []Element{
		CreateElement(RoleReflector, inches(214.5), inches(0.5), inches(0)),
		CreateElement(RoleDriven, inches(202.4), inches(0.5), inches(47)),
		CreateElement(RoleDirector, inches(195.0), inches(0.5), inches(138)),
	}
	return CreateAntennaConfig(elements,
		unit.MustCreateFrequency(27.185, unit.FrequencyMHz),
		unit.MustCreateDistance(36, unit.DistanceFoot),
		unit.MustCreateDistance(2, unit.DistanceInch),
		PolarizationHorizontal, FeedDirect, MountBonded)
}

func TestOptimizeHeightTrace(t *testing.T) {
	calc := CreatePerformanceCalculator()
	sweep := calc.OptimizeHeight(heightTestConfig(),
		unit.MustCreateDistance(20, unit.DistanceFoot),
		unit.MustCreateDistance(60, unit.DistanceFoot), 5)

	if len(sweep.Trace()) != 9 {
		t.Fatalf("20 to 60 feet in 5 foot steps is 9 candidates, got %d", len(sweep.Trace()))
	}
	best := sweep.Best()
	for _, c := range sweep.Trace() {
		if c.Score() > best.Score() {
			t.Errorf("the best candidate must carry the top score (%f/%f)",
				c.Score(), best.Score())
		}
	}
	bestFt := best.Height().In(unit.DistanceFoot)
	if bestFt < 20 || bestFt > 60 {
		t.Errorf("the best height must stay inside the sweep bounds, got %f", bestFt)
	}
}

func TestOptimizeHeightPrefersUsefulHeight(t *testing.T) {
	calc := CreatePerformanceCalculator()
	sweep := calc.OptimizeHeight(heightTestConfig(),
		unit.MustCreateDistance(5, unit.DistanceFoot),
		unit.MustCreateDistance(70, unit.DistanceFoot), 1)

	//a rooftop height beats a fencepost
	if sweep.Best().Height().In(unit.DistanceFoot) < 20 {
		t.Errorf("the optimizer must not settle at a very low height, got %f",
			sweep.Best().Height().In(unit.DistanceFoot))
	}
}

func TestOptimizeHeightDegenerateRange(t *testing.T) {
	calc := CreatePerformanceCalculator()
	sweep := calc.OptimizeHeight(heightTestConfig(),
		unit.MustCreateDistance(40, unit.DistanceFoot),
		unit.MustCreateDistance(30, unit.DistanceFoot), 1)
	if len(sweep.Trace()) != 1 {
		t.Errorf("an inverted range must collapse to the minimum height, got %d candidates",
			len(sweep.Trace()))
	}
	if sweep.Best().Height().In(unit.DistanceFoot) != 40 {
		t.Errorf("the collapsed sweep must sit at the minimum height")
	}
	//the candidate carries the full evaluation
	if len(sweep.Best().Result().Pattern()) != cPatternPoints {
		t.Errorf("each candidate must carry a complete evaluation")
	}
}

func TestScoreHeightBlendsTowardTakeoff(t *testing.T) {
	calc := CreatePerformanceCalculator()
	config := heightTestConfig()
	low := calc.Evaluate(config.WithHeight(unit.MustCreateDistance(10, unit.DistanceFoot)))
	high := calc.Evaluate(config.WithHeight(unit.MustCreateDistance(60, unit.DistanceFoot)))

	boomLengthIn := boomLengthOf(config.Elements())
	lowScore := scoreHeight(low, config.WithHeight(unit.MustCreateDistance(10, unit.DistanceFoot)),
		10*12/434.17, boomLengthIn, 3)
	highScore := scoreHeight(high, config.WithHeight(unit.MustCreateDistance(60, unit.DistanceFoot)),
		60*12/434.17, boomLengthIn, 3)
	if highScore <= lowScore {
		t.Errorf("more height must score better for a DX beam (%f/%f)", highScore, lowScore)
	}
}
