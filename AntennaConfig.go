package go_yagicalc

import "github.com/tommyfalls2011/go_yagicalc/bmath/unit"

//PolarizationHorizontal mounts the elements parallel to the ground
const PolarizationHorizontal byte = 1

//PolarizationVertical mounts the elements perpendicular to the ground
const PolarizationVertical byte = 2

//PolarizationSlant45 mounts the elements at a 45 degree slant
const PolarizationSlant45 byte = 3

//PolarizationDual feeds two crossed sets of elements at once
const PolarizationDual byte = 4

//FeedDirect connects the feedline straight to the driven element
const FeedDirect byte = 1

//FeedGamma matches the feedpoint with a gamma rod and series capacitor
const FeedGamma byte = 2

//FeedHairpin matches the feedpoint with a shorted hairpin stub
const FeedHairpin byte = 3

//MountBonded bolts the elements straight through a conductive boom
const MountBonded byte = 1

//MountInsulated mounts the elements on insulators above a conductive boom
const MountInsulated byte = 2

//MountNonConductive mounts the elements on a non-conductive boom
const MountNonConductive byte = 3

//RadialsElevated is a ground radial system raised above the soil
const RadialsElevated byte = 1

//RadialsBuried is a ground radial system laid in or on the soil
const RadialsBuried byte = 2

//SoilDry describes poorly conducting ground below the antenna
const SoilDry byte = 1

//SoilNormal describes average ground below the antenna
const SoilNormal byte = 2

//SoilWet describes highly conducting ground below the antenna
const SoilWet byte = 3

//StackAxisVertical stacks antennas one above the other
const StackAxisVertical byte = 1

//StackAxisHorizontal stacks antennas side by side
const StackAxisHorizontal byte = 2

//LayoutLine arranges the stacked antennas along a single axis
const LayoutLine byte = 1

//LayoutQuad arranges four antennas in a two by two square
const LayoutQuad byte = 2

//TaperSection describes one telescoping tube section of a tapered element half
type TaperSection struct {
	length        unit.Distance
	startDiameter unit.Distance
	endDiameter   unit.Distance
}

//CreateTaperSection creates a tube section of a tapered element
func CreateTaperSection(length unit.Distance, startDiameter unit.Distance, endDiameter unit.Distance) TaperSection {
	return TaperSection{length: length, startDiameter: startDiameter, endDiameter: endDiameter}
}

//Length returns the length of the tube section
func (v TaperSection) Length() unit.Distance {
	return v.length
}

//StartDiameter returns the diameter at the boom end of the section
func (v TaperSection) StartDiameter() unit.Distance {
	return v.startDiameter
}

//EndDiameter returns the diameter at the tip end of the section
func (v TaperSection) EndDiameter() unit.Distance {
	return v.endDiameter
}

//TaperConfig describes element halves built from telescoping tube sections,
//ordered from the boom outwards
type TaperConfig struct {
	sections []TaperSection
}

//CreateTaperConfig creates a taper description from the ordered tube sections
func CreateTaperConfig(sections ...TaperSection) TaperConfig {
	return TaperConfig{sections: sections}
}

//Sections returns the tube sections ordered from the boom outwards
func (v TaperConfig) Sections() []TaperSection {
	return v.sections
}

//CoronaConfig describes corona balls fitted to the element tips
type CoronaConfig struct {
	ballDiameter unit.Distance
}

//CreateCoronaConfig creates a corona ball description
func CreateCoronaConfig(ballDiameter unit.Distance) CoronaConfig {
	return CoronaConfig{ballDiameter: ballDiameter}
}

//BallDiameter returns the diameter of the corona balls
func (v CoronaConfig) BallDiameter() unit.Distance {
	return v.ballDiameter
}

//GroundRadialConfig describes a ground radial system below the antenna
type GroundRadialConfig struct {
	radialType byte
	wireGauge  int
	count      int
	soil       byte
}

//CreateGroundRadialConfig creates a ground radial system description.
//
//radialType must be RadialsElevated or RadialsBuried, wireGauge is the AWG
//wire size and soil one of the Soil* constants.
func CreateGroundRadialConfig(radialType byte, wireGauge int, count int, soil byte) GroundRadialConfig {
	return GroundRadialConfig{radialType: radialType, wireGauge: wireGauge, count: count, soil: soil}
}

//RadialType returns whether the radials are elevated or buried
func (v GroundRadialConfig) RadialType() byte {
	return v.radialType
}

//WireGauge returns the AWG wire size of the radials
func (v GroundRadialConfig) WireGauge() int {
	return v.wireGauge
}

//Count returns the number of radials
func (v GroundRadialConfig) Count() int {
	return v.count
}

//Soil returns the soil quality below the antenna
func (v GroundRadialConfig) Soil() byte {
	return v.soil
}

//StackingConfig describes a co-phased array of identical antennas
type StackingConfig struct {
	axis    byte
	layout  byte
	spacing unit.Distance
	count   int
}

//CreateStackingConfig creates a stacking description.
//
//A LayoutQuad stack always consists of exactly four antennas; the count
//is forced to 4 during evaluation regardless of the value given here.
func CreateStackingConfig(axis byte, layout byte, spacing unit.Distance, count int) StackingConfig {
	return StackingConfig{axis: axis, layout: layout, spacing: spacing, count: count}
}

//Axis returns the stacking axis
func (v StackingConfig) Axis() byte {
	return v.axis
}

//Layout returns the stack layout (LayoutLine or LayoutQuad)
func (v StackingConfig) Layout() byte {
	return v.layout
}

//Spacing returns the distance between adjacent antennas
func (v StackingConfig) Spacing() unit.Distance {
	return v.spacing
}

//Count returns the number of antennas in the stack
func (v StackingConfig) Count() int {
	return v.count
}

//AntennaConfig describes the complete antenna to be evaluated.
//
//The configuration is immutable; the With* methods return modified copies
//so a base configuration can be shared between evaluations.
type AntennaConfig struct {
	elements     []Element
	frequency    unit.Frequency
	height       unit.Distance
	boomDiameter unit.Distance
	polarization byte
	feedType     byte
	boomMount    byte

	hasTaper     bool
	taper        TaperConfig
	hasCorona    bool
	corona       CoronaConfig
	hasRadials   bool
	groundRadial GroundRadialConfig
	hasStacking  bool
	stacking     StackingConfig
}

//CreateAntennaConfig creates a plain antenna configuration without optional modifiers
func CreateAntennaConfig(elements []Element, frequency unit.Frequency, height unit.Distance,
	boomDiameter unit.Distance, polarization byte, feedType byte, boomMount byte) AntennaConfig {
	return AntennaConfig{
		elements:     elements,
		frequency:    frequency,
		height:       height,
		boomDiameter: boomDiameter,
		polarization: polarization,
		feedType:     feedType,
		boomMount:    boomMount,
	}
}

//WithTaper returns a copy of the configuration with tapered elements enabled
func (v AntennaConfig) WithTaper(taper TaperConfig) AntennaConfig {
	v.hasTaper = true
	v.taper = taper
	return v
}

//WithCorona returns a copy of the configuration with corona balls enabled
func (v AntennaConfig) WithCorona(corona CoronaConfig) AntennaConfig {
	v.hasCorona = true
	v.corona = corona
	return v
}

//WithGroundRadials returns a copy of the configuration with a ground radial system
func (v AntennaConfig) WithGroundRadials(radials GroundRadialConfig) AntennaConfig {
	v.hasRadials = true
	v.groundRadial = radials
	return v
}

//WithStacking returns a copy of the configuration describing a co-phased stack
func (v AntennaConfig) WithStacking(stacking StackingConfig) AntennaConfig {
	v.hasStacking = true
	v.stacking = stacking
	return v
}

//WithHeight returns a copy of the configuration at a different mounting height
func (v AntennaConfig) WithHeight(height unit.Distance) AntennaConfig {
	v.height = height
	return v
}

//Elements returns the antenna elements
func (v AntennaConfig) Elements() []Element {
	return v.elements
}

//Frequency returns the operating frequency
func (v AntennaConfig) Frequency() unit.Frequency {
	return v.frequency
}

//Height returns the mounting height above ground
func (v AntennaConfig) Height() unit.Distance {
	return v.height
}

//BoomDiameter returns the boom tube diameter
func (v AntennaConfig) BoomDiameter() unit.Distance {
	return v.boomDiameter
}

//Polarization returns the mounting polarization
func (v AntennaConfig) Polarization() byte {
	return v.polarization
}

//FeedType returns the feed system type
func (v AntennaConfig) FeedType() byte {
	return v.feedType
}

//BoomMount returns how the elements are mounted to the boom
func (v AntennaConfig) BoomMount() byte {
	return v.boomMount
}

//HasTaper returns the flag indicating whether the elements are tapered
func (v AntennaConfig) HasTaper() bool {
	return v.hasTaper
}

//Taper returns the taper description
func (v AntennaConfig) Taper() TaperConfig {
	return v.taper
}

//HasCorona returns the flag indicating whether corona balls are fitted
func (v AntennaConfig) HasCorona() bool {
	return v.hasCorona
}

//Corona returns the corona ball description
func (v AntennaConfig) Corona() CoronaConfig {
	return v.corona
}

//HasGroundRadials returns the flag indicating whether a radial system is present
func (v AntennaConfig) HasGroundRadials() bool {
	return v.hasRadials
}

//GroundRadials returns the ground radial system description
func (v AntennaConfig) GroundRadials() GroundRadialConfig {
	return v.groundRadial
}

//HasStacking returns the flag indicating whether the antenna is part of a stack
func (v AntennaConfig) HasStacking() bool {
	return v.hasStacking
}

//Stacking returns the stack description
func (v AntennaConfig) Stacking() StackingConfig {
	return v.stacking
}
