package unit

import "fmt"

//WeightOunce is the value indicating that the weight value is set in ounces
const WeightOunce byte = 50

//WeightGram is the value indicating that the weight value is set in grams
const WeightGram byte = 51

//WeightPound is the value indicating that the weight value is set in pounds
const WeightPound byte = 52

//WeightKilogram is the value indicating that the weight value is set in kilograms
const WeightKilogram byte = 53

//Weight structure keeps a weight value.
//
//Structure masses for the wind load calculation are kept in this type.
//Internally the value is kept in pounds.
type Weight struct {
	value        float64
	defaultUnits byte
}

func weightToDefault(value float64, units byte) (float64, error) {
	switch units {
	case WeightPound:
		return value, nil
	case WeightOunce:
		return value / 16, nil
	case WeightGram:
		return value / 453.59237, nil
	case WeightKilogram:
		return value / 0.45359237, nil
	default:
		return 0, fmt.Errorf("Weight: unit %d is not supported", units)
	}
}

func weightFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case WeightPound:
		return value, nil
	case WeightOunce:
		return value * 16, nil
	case WeightGram:
		return value * 453.59237, nil
	case WeightKilogram:
		return value * 0.45359237, nil
	default:
		return 0, fmt.Errorf("Weight: unit %d is not supported", units)
	}
}

//CreateWeight creates a weight value.
//
//units are measurement unit and may be any value from
//unit.Weight* constants.
func CreateWeight(value float64, units byte) (Weight, error) {
	v, err := weightToDefault(value, units)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, defaultUnits: units}, nil
}

//MustCreateWeight creates the weight value but panics instead of returning a error
func MustCreateWeight(value float64, units byte) Weight {
	v, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the weight in the specified units.
//
//The method returns a error in case the unit is not supported.
func (v Weight) Value(units byte) (float64, error) {
	return weightFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Weight) Convert(units byte) Weight {
	return Weight{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Weight) In(units byte) float64 {
	x, e := weightFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Weight) String() string {
	x, e := weightFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case WeightPound:
		unitName = "lb"
		accuracy = 1
	case WeightOunce:
		unitName = "oz"
		accuracy = 1
	case WeightGram:
		unitName = "g"
		accuracy = 0
	case WeightKilogram:
		unitName = "kg"
		accuracy = 2
	default:
		unitName = "?"
		accuracy = 6
	}
	format := fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Weight) Units() byte {
	return v.defaultUnits
}
