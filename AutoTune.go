package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

//SpacingDefault places the reflector at 0.18 wavelengths from the driven element
const SpacingDefault byte = 0

//SpacingClose places the reflector at 0.15 wavelengths for a short boom
const SpacingClose byte = 1

//SpacingFar places the reflector at 0.22 wavelengths for maximum gain
const SpacingFar byte = 2

const cFeedShorteningFactor float64 = 0.965
const cFirstDirectorSpacing float64 = 0.13
const cDirectorSpacingGrowth float64 = 0.035
const cMaximumDirectorSpacing float64 = 0.35

//TuneConstraints carries the optional hard constraints of a geometry synthesis
type TuneConstraints struct {
	feedType        byte
	spacingPreset   byte
	hasMaxBoom      bool
	maxBoom         unit.Distance
	hasPinned       bool
	pinnedPositions []unit.Distance
}

//CreateTuneConstraints creates unconstrained synthesis settings for the given feed
func CreateTuneConstraints(feedType byte, spacingPreset byte) TuneConstraints {
	return TuneConstraints{feedType: feedType, spacingPreset: spacingPreset}
}

//WithMaxBoom returns a copy of the constraints with a boom length lock.
//The synthesized layout is rescaled to fit within the given boom.
func (v TuneConstraints) WithMaxBoom(maxBoom unit.Distance) TuneConstraints {
	v.hasMaxBoom = true
	v.maxBoom = maxBoom
	return v
}

//WithPinnedPositions returns a copy of the constraints with a spacing lock.
//Elements are pinned to the given absolute positions, in element order, and
//only the lengths are solved.
func (v TuneConstraints) WithPinnedPositions(positions []unit.Distance) TuneConstraints {
	v.hasPinned = true
	v.pinnedPositions = positions
	return v
}

//FeedType returns the feed the geometry is cut for
func (v TuneConstraints) FeedType() byte {
	return v.feedType
}

//SpacingPreset returns the reflector spacing preset
func (v TuneConstraints) SpacingPreset() byte {
	return v.spacingPreset
}

//GeometrySuggestion is the synthesized element layout with its predicted figures
type GeometrySuggestion struct {
	elements      []Element
	boomLength    unit.Distance
	predictedGain float64
	predictedSwr  float64
	predictedFb   float64
}

//Elements returns the synthesized elements, reflector first
func (v GeometrySuggestion) Elements() []Element {
	return v.elements
}

//BoomLength returns the boom length the layout spans
func (v GeometrySuggestion) BoomLength() unit.Distance {
	return v.boomLength
}

//PredictedGain returns the free space gain prediction in dBi
func (v GeometrySuggestion) PredictedGain() float64 {
	return v.predictedGain
}

//PredictedSwr returns the standing wave ratio prediction
func (v GeometrySuggestion) PredictedSwr() float64 {
	return v.predictedSwr
}

//PredictedFrontToBack returns the front-to-back ratio prediction in dB
func (v GeometrySuggestion) PredictedFrontToBack() float64 {
	return v.predictedFb
}

//reflectorSpacingFraction maps the preset to a fraction of a wavelength
func reflectorSpacingFraction(preset byte) float64 {
	switch preset {
	case SpacingClose:
		return 0.15
	case SpacingFar:
		return 0.22
	default:
		return 0.18
	}
}

//AutoTune synthesizes a plausible element geometry for the element count
//and band, honoring the optional boom and spacing locks.
//
//The driven element is cut to the resonant fraction of a wavelength,
//slightly short when a gamma or hairpin feed will load it. Directors start
//tight behind the driven element and widen toward the boom tip, each two
//percent shorter than the one before. The predicted figures reuse the same
//gain and SWR models as Evaluate so the prediction is consistent with a
//full evaluation of the suggested geometry.
func (v PerformanceCalculator) AutoTune(elementCount int, band Band,
	constraints TuneConstraints) GeometrySuggestion {
	if elementCount < 2 {
		elementCount = 2
	}
	wavelengthIn := unit.WavelengthOf(band.Center()).In(unit.DistanceInch)

	drivenLen := cIdealDrivenFraction * wavelengthIn
	if constraints.feedType == FeedGamma || constraints.feedType == FeedHairpin {
		drivenLen *= cFeedShorteningFactor
	}
	diameter := math.Max(0.25, 0.5*wavelengthIn/434.17)

	reflSpacing := reflectorSpacingFraction(constraints.spacingPreset) * wavelengthIn

	positions := make([]float64, elementCount)
	lengths := make([]float64, elementCount)
	roles := make([]byte, elementCount)

	roles[0] = RoleReflector
	positions[0] = 0
	lengths[0] = cIdealReflectorRatio * drivenLen

	roles[1] = RoleDriven
	positions[1] = reflSpacing
	lengths[1] = drivenLen

	length := drivenLen
	position := reflSpacing
	for i := 2; i < elementCount; i++ {
		spacing := cFirstDirectorSpacing + cDirectorSpacingGrowth*float64(i-1)
		if spacing > cMaximumDirectorSpacing {
			spacing = cMaximumDirectorSpacing
		}
		position += spacing * wavelengthIn
		length *= cDirectorTaperStep
		roles[i] = RoleDirector
		positions[i] = position
		lengths[i] = length
	}

	if constraints.hasMaxBoom {
		maxBoomIn := constraints.maxBoom.In(unit.DistanceInch)
		boom := positions[elementCount-1]
		if boom > maxBoomIn && boom > 0 {
			scale := maxBoomIn / boom
			for i := range positions {
				positions[i] *= scale
			}
		}
	}

	if constraints.hasPinned {
		for i := 0; i < elementCount && i < len(constraints.pinnedPositions); i++ {
			positions[i] = constraints.pinnedPositions[i].In(unit.DistanceInch)
		}
	}

	elements := make([]Element, elementCount)
	for i := 0; i < elementCount; i++ {
		elements[i] = CreateElement(roles[i],
			unit.MustCreateDistance(lengths[i], unit.DistanceInch),
			unit.MustCreateDistance(diameter, unit.DistanceInch),
			unit.MustCreateDistance(positions[i], unit.DistanceInch))
	}

	boomLengthIn := boomLengthOf(elements)
	//height is unknown at synthesis time; a half wavelength is the neutral
	//point of the height penalty
	predictedSwr := swrFromGeometry(elements, wavelengthIn, false, 0.5)
	predictedGain := round2(v.calibration.FreeSpaceGain(elementCount) +
		boomAdjustment(boomLengthIn, v.calibration.StandardBoomLength(elementCount, wavelengthIn)))

	return GeometrySuggestion{
		elements:      elements,
		boomLength:    unit.MustCreateDistance(boomLengthIn, unit.DistanceInch),
		predictedGain: predictedGain,
		predictedSwr:  predictedSwr,
		predictedFb:   frontToBackRatio(elementCount, true, 0),
	}
}
