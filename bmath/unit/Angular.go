package unit

import (
	"fmt"
	"math"
)

//AngularRadian is the value indicating that the angular value is set in radians
const AngularRadian byte = 0

//AngularDegree is the value indicating that the angular value is set in degrees
const AngularDegree byte = 1

//AngularMRad is the value indicating that the angular value is set in milliradians
const AngularMRad byte = 2

//Angular structure keeps information about angular units.
//
//Beamwidths and takeoff angles are kept in this type.
type Angular struct {
	value        float64
	defaultUnits byte
}

func angularToDefault(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value / 180 * math.Pi, nil
	case AngularMRad:
		return value / 1000, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

func angularFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value * 180 / math.Pi, nil
	case AngularMRad:
		return value * 1000, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

//CreateAngular creates an angular value.
//
//units are measurement unit and may be any value from
//unit.Angular* constants.
func CreateAngular(value float64, units byte) (Angular, error) {
	v, err := angularToDefault(value, units)
	if err != nil {
		return Angular{}, err
	}
	return Angular{value: v, defaultUnits: units}, nil
}

//MustCreateAngular creates the angular value but panics instead of returning a error
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the angle in the specified units.
//
//The method returns a error in case the unit is not supported.
func (v Angular) Value(units byte) (float64, error) {
	return angularFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Angular) Convert(units byte) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Angular) In(units byte) float64 {
	x, e := angularFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Angular) String() string {
	x, e := angularFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case AngularRadian:
		unitName = "rad"
		accuracy = 6
	case AngularDegree:
		unitName = "°"
		accuracy = 4
	case AngularMRad:
		unitName = "mrad"
		accuracy = 2
	default:
		unitName = "?"
		accuracy = 6
	}
	format := fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Angular) Units() byte {
	return v.defaultUnits
}
