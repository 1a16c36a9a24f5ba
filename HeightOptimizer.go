package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

//HeightCandidate is one evaluated mounting height of the sweep
type HeightCandidate struct {
	height unit.Distance
	score  float64
	result PerformanceResult
}

//Height returns the candidate mounting height
func (v HeightCandidate) Height() unit.Distance {
	return v.height
}

//Score returns the weighted score of the candidate
func (v HeightCandidate) Score() float64 {
	return v.score
}

//Result returns the full evaluation at this height
func (v HeightCandidate) Result() PerformanceResult {
	return v.result
}

//HeightSweepResult is the outcome of a mounting height sweep
type HeightSweepResult struct {
	best  HeightCandidate
	trace []HeightCandidate
}

//Best returns the candidate with the highest score
func (v HeightSweepResult) Best() HeightCandidate {
	return v.best
}

//Trace returns every evaluated candidate in sweep order
func (v HeightSweepResult) Trace() []HeightCandidate {
	return v.trace
}

//OptimizeHeight sweeps mounting heights between min and max in steps of
//whole feet, evaluates the full calculator at each height and scores the
//candidates. The best candidate and the complete trace are returned.
func (v PerformanceCalculator) OptimizeHeight(config AntennaConfig,
	minHeight, maxHeight unit.Distance, stepFeet int) HeightSweepResult {
	if stepFeet < 1 {
		stepFeet = 1
	}
	minFt := int(math.Ceil(minHeight.In(unit.DistanceFoot)))
	maxFt := int(math.Floor(maxHeight.In(unit.DistanceFoot)))
	if maxFt < minFt {
		maxFt = minFt
	}

	wavelengthIn := unit.WavelengthOf(config.Frequency()).In(unit.DistanceInch)
	boomLengthIn := boomLengthOf(config.Elements())
	elementCount := len(config.Elements())

	var trace []HeightCandidate
	var best HeightCandidate
	bestScore := math.Inf(-1)

	for ft := minFt; ft <= maxFt; ft += stepFeet {
		height := unit.MustCreateDistance(float64(ft), unit.DistanceFoot)
		result := v.Evaluate(config.WithHeight(height))

		heightWl := 0.0
		if wavelengthIn > 0 {
			heightWl = height.In(unit.DistanceInch) / wavelengthIn
		}
		score := scoreHeight(result, config, heightWl, boomLengthIn, elementCount)

		candidate := HeightCandidate{height: height, score: score, result: result}
		trace = append(trace, candidate)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	return HeightSweepResult{best: best, trace: trace}
}

//scoreHeight computes the height-adaptive weighted score of one candidate.
//
//Below half a wavelength the ground absorbs power and efficiency and SWR
//dominate the score; above one wavelength the takeoff angle is what the
//extra height is for. The weights blend linearly in between. Secondary
//terms reward a mounting height proportionate to the boom and an
//element-count-appropriate height band; a radial system shifts the sweet
//spot down over wet ground and up over dry ground.
func scoreHeight(result PerformanceResult, config AntennaConfig, heightWl float64,
	boomLengthIn float64, elementCount int) float64 {
	t := (heightWl - 0.5) / 0.5
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	wEfficiency := 0.35*(1-t) + 0.10*t
	wSwr := 0.35*(1-t) + 0.15*t
	wTakeoff := 0.10*(1-t) + 0.55*t

	efficiencyScore := math.Min(result.EfficiencyPct(), 100)
	swrScore := (cMaximumSwr - result.Swr()) / (cMaximumSwr - cMinimumSwr) * 100

	takeoff := result.TakeoffAngle().In(unit.AngularDegree)
	takeoffScore := 100 - (takeoff-8)*3
	if takeoffScore < 0 {
		takeoffScore = 0
	}
	if takeoffScore > 100 {
		takeoffScore = 100
	}

	boomScore := 100.0
	if boomLengthIn > 0 {
		heightIn := config.Height().In(unit.DistanceInch)
		ratio := heightIn / boomLengthIn
		//a long boom wants proportionally more height under it
		if ratio < 1.5 {
			boomScore = ratio / 1.5 * 100
		}
	}

	idealWl := 0.75 + 0.05*float64(elementCount)
	if idealWl > 2.0 {
		idealWl = 2.0
	}
	radialBonus := 0.0
	if config.HasGroundRadials() {
		radialBonus = 3
		idealWl += 0.85 - soilQuality(config.GroundRadials().Soil())
	}
	bandScore := 100 - math.Abs(heightWl-idealWl)*60
	if bandScore < 0 {
		bandScore = 0
	}

	return wEfficiency*efficiencyScore + wSwr*swrScore + wTakeoff*takeoffScore +
		0.10*boomScore + 0.10*bandScore + radialBonus
}
