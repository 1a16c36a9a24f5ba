package go_yagicalc

import (
	"math"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

const cAirPressureFactor float64 = 0.00256
const cDragCoefficient float64 = 1.2
const cAluminumDensity float64 = 0.098
const cTubeWallThickness float64 = 0.058
const cHardwareAreaSqFt float64 = 0.75
const cHardwareMassLb float64 = 5.0
const cTrussBoomThreshold float64 = 144.0
const cTrussWireDiameter float64 = 0.125
const cTrussWireMassPerFoot float64 = 0.04
const cSurvivalForceLimit float64 = 200.0
const cSurvivalTorqueLimit float64 = 400.0
const cMaximumTestSpeed int = 120

//windTestSpeeds are the wind speeds in mph the load report is tabulated at
var windTestSpeeds = []int{50, 70, 80, 90, 100, 120}

//WindSpeedLoad is the force and torque the structure sees at one wind speed
type WindSpeedLoad struct {
	speed  unit.Velocity
	force  float64
	torque float64
}

//Speed returns the test wind speed
func (v WindSpeedLoad) Speed() unit.Velocity {
	return v.speed
}

//Force returns the wind force on the structure in pounds
func (v WindSpeedLoad) Force() float64 {
	return v.force
}

//Torque returns the mast torque in foot pounds
func (v WindSpeedLoad) Torque() float64 {
	return v.torque
}

//WindLoadReport summarizes the structural loading of the antenna
type WindLoadReport struct {
	frontalArea   float64
	mass          unit.Weight
	hasTruss      bool
	loads         []WindSpeedLoad
	survivalSpeed unit.Velocity
}

//FrontalAreaSqFt returns the projected frontal area in square feet
func (v WindLoadReport) FrontalAreaSqFt() float64 {
	return v.frontalArea
}

//Mass returns the estimated structure mass
func (v WindLoadReport) Mass() unit.Weight {
	return v.mass
}

//HasTruss returns whether the boom needs a support truss
func (v WindLoadReport) HasTruss() bool {
	return v.hasTruss
}

//Loads returns the force and torque at each test wind speed
func (v WindLoadReport) Loads() []WindSpeedLoad {
	return v.loads
}

//SurvivalSpeed returns the highest wind speed the structure survives
func (v WindLoadReport) SurvivalSpeed() unit.Velocity {
	return v.survivalSpeed
}

//tubeMass returns the mass in pounds of an aluminum tube of the given
//outer diameter, wall thickness and length, all in inches
func tubeMass(diameterIn, lengthIn float64) float64 {
	wall := cTubeWallThickness
	if wall > diameterIn/2 {
		wall = diameterIn / 2
	}
	//thin wall approximation of the annular cross section
	crossSection := math.Pi * diameterIn * wall
	return crossSection * lengthIn * cAluminumDensity
}

//windForce returns the drag force in pounds on the given area at the given speed
func windForce(mph float64, areaSqFt float64) float64 {
	return cAirPressureFactor * mph * mph * cDragCoefficient * areaSqFt
}

//computeWindLoad estimates the EIA/TIA-222 style structural loading.
//
//Elements and boom project as length times diameter rectangles; a fixed
//allowance covers clamps and feed hardware, and booms past twelve feet get
//a support truss that adds wire area and mass. The multiplier accounts for
//dual polarization (2x) and stacked antennas (count x) and is applied
//before the per-speed loop.
func computeWindLoad(elements []Element, boomDiameterIn, boomLengthIn float64,
	multiplier float64) WindLoadReport {
	if multiplier < 1 {
		multiplier = 1
	}

	var areaSqIn, massLb float64
	for _, e := range elements {
		l := e.Length().In(unit.DistanceInch)
		d := e.Diameter().In(unit.DistanceInch)
		areaSqIn += l * d
		massLb += tubeMass(d, l)
	}
	areaSqIn += boomLengthIn * boomDiameterIn
	massLb += tubeMass(boomDiameterIn, boomLengthIn)

	areaSqFt := areaSqIn/144 + cHardwareAreaSqFt
	massLb += cHardwareMassLb

	hasTruss := boomLengthIn > cTrussBoomThreshold
	if hasTruss {
		areaSqFt += boomLengthIn * cTrussWireDiameter / 144
		massLb += boomLengthIn / 12 * cTrussWireMassPerFoot
	}

	areaSqFt *= multiplier
	massLb *= multiplier

	boomFt := boomLengthIn / 12
	loads := make([]WindSpeedLoad, len(windTestSpeeds))
	for i, mph := range windTestSpeeds {
		force := windForce(float64(mph), areaSqFt)
		loads[i] = WindSpeedLoad{
			speed:  unit.MustCreateVelocity(float64(mph), unit.VelocityMPH),
			force:  force,
			torque: force * boomFt / 2,
		}
	}

	survival := 0
	for mph := cMaximumTestSpeed; mph > 0; mph-- {
		force := windForce(float64(mph), areaSqFt)
		if force <= cSurvivalForceLimit && force*boomFt/2 <= cSurvivalTorqueLimit {
			survival = mph
			break
		}
	}

	return WindLoadReport{
		frontalArea:   areaSqFt,
		mass:          unit.MustCreateWeight(massLb, unit.WeightPound),
		hasTruss:      hasTruss,
		loads:         loads,
		survivalSpeed: unit.MustCreateVelocity(float64(survival), unit.VelocityMPH),
	}
}
