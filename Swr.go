package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

const cIdealDrivenFraction float64 = 0.473
const cIdealReflectorRatio float64 = 1.05
const cDirectorTaperStep float64 = 0.98
const cIdealReflectorSpacing float64 = 0.2
const cTaperSwrFactor float64 = 0.92
const cNoDrivenFallbackSwr float64 = 2.0
const cMinimumSwr float64 = 1.0
const cMaximumSwr float64 = 5.0

//clampSwr keeps a standing wave ratio inside the physically reported range.
//A value that is not a number degrades to the maximum.
func clampSwr(swr float64) float64 {
	if math.IsNaN(swr) || swr > cMaximumSwr {
		return cMaximumSwr
	}
	if swr < cMinimumSwr {
		return cMinimumSwr
	}
	return swr
}

//baseSwrFromDeviation maps the fractional deviation of the driven element
//from its resonant length to a standing wave ratio.
//
//The curve is piecewise linear with five tiers: tolerance is tight near
//resonance and the penalty turns steep beyond 8 percent deviation.
func baseSwrFromDeviation(deviation float64) float64 {
	switch {
	case deviation <= 0.01:
		return 1.0 + deviation*10
	case deviation <= 0.02:
		return 1.1 + (deviation-0.01)*15
	case deviation <= 0.04:
		return 1.25 + (deviation-0.02)*20
	case deviation <= 0.08:
		return 1.65 + (deviation-0.04)*25
	default:
		return 2.65 + (deviation-0.08)*45
	}
}

//heightSwrFactor penalizes mounting heights where the reflected ground wave
//disturbs the feedpoint. The factor is best near multiples of a half
//wavelength, worst near odd quarter wavelength heights, and heights below a
//quarter wavelength carry an extra penalty.
func heightSwrFactor(heightWavelengths float64) float64 {
	s := math.Sin(2 * math.Pi * heightWavelengths)
	factor := 1 + 0.12*s*s
	if heightWavelengths < 0.25 {
		factor += 0.2 * (0.25 - heightWavelengths) / 0.25
	}
	return factor
}

//swrFromGeometry estimates the feedpoint standing wave ratio of the bare
//antenna (before any matching network) from how far the element lengths and
//spacings deviate from the calibrated ideals.
//
//A configuration without a driven element cannot be evaluated and degrades
//to a fixed fallback value instead of failing.
func swrFromGeometry(elements []Element, wavelengthIn float64, taperEnabled bool,
	heightWavelengths float64) float64 {
	driven, ok := findDriven(elements)
	if !ok || wavelengthIn <= 0 {
		return cNoDrivenFallbackSwr
	}

	drivenLen := driven.Length().In(unit.DistanceInch)
	idealDriven := cIdealDrivenFraction * wavelengthIn
	deviation := math.Abs(drivenLen-idealDriven) / idealDriven
	swr := baseSwrFromDeviation(deviation)

	if reflector, hasReflector := findReflector(elements); hasReflector {
		idealReflector := cIdealReflectorRatio * drivenLen
		if idealReflector > 0 {
			rdev := math.Abs(reflector.Length().In(unit.DistanceInch)-idealReflector) / idealReflector
			swr *= 1 + math.Min(rdev*2.0, 0.5)
		}

		spacing := math.Abs(driven.Position().In(unit.DistanceInch) - reflector.Position().In(unit.DistanceInch))
		idealSpacing := cIdealReflectorSpacing * wavelengthIn
		sdev := math.Abs(spacing-idealSpacing) / idealSpacing
		swr *= 1 + math.Min(sdev*1.2, 0.6)
	}

	expected := drivenLen
	for _, director := range findDirectors(elements) {
		expected *= cDirectorTaperStep
		if expected <= 0 {
			break
		}
		ddev := math.Abs(director.Length().In(unit.DistanceInch)-expected) / expected
		swr *= 1 + math.Min(ddev*1.5, 0.4)
	}

	swr *= heightSwrFactor(heightWavelengths)

	if taperEnabled {
		swr *= cTaperSwrFactor
	}

	return clampSwr(swr)
}
