package unit

import "fmt"

//FrequencyHz is the value indicating that the frequency value is set in hertz
const FrequencyHz byte = 70

//FrequencyKHz is the value indicating that the frequency value is set in kilohertz
const FrequencyKHz byte = 71

//FrequencyMHz is the value indicating that the frequency value is set in megahertz
const FrequencyMHz byte = 72

//FrequencyGHz is the value indicating that the frequency value is set in gigahertz
const FrequencyGHz byte = 73

//cSpeedOfLightInchMHz is the speed of light expressed in inch-megahertz,
//so that wavelength in inches = cSpeedOfLightInchMHz / frequency in MHz
const cSpeedOfLightInchMHz float64 = 11802.85

//Frequency structure keeps a radio frequency value.
//
//Internally the value is kept in megahertz.
type Frequency struct {
	value        float64
	defaultUnits byte
}

func frequencyToDefault(value float64, units byte) (float64, error) {
	switch units {
	case FrequencyHz:
		return value / 1000000, nil
	case FrequencyKHz:
		return value / 1000, nil
	case FrequencyMHz:
		return value, nil
	case FrequencyGHz:
		return value * 1000, nil
	default:
		return 0, fmt.Errorf("Frequency: unit %d is not supported", units)
	}
}

func frequencyFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case FrequencyHz:
		return value * 1000000, nil
	case FrequencyKHz:
		return value * 1000, nil
	case FrequencyMHz:
		return value, nil
	case FrequencyGHz:
		return value / 1000, nil
	default:
		return 0, fmt.Errorf("Frequency: unit %d is not supported", units)
	}
}

//CreateFrequency creates a frequency value.
//
//units are measurement unit and may be any value from
//unit.Frequency* constants.
func CreateFrequency(value float64, units byte) (Frequency, error) {
	v, err := frequencyToDefault(value, units)
	if err != nil {
		return Frequency{}, err
	}
	return Frequency{value: v, defaultUnits: units}, nil
}

//MustCreateFrequency creates the frequency value but panics instead of returning a error
func MustCreateFrequency(value float64, units byte) Frequency {
	v, err := CreateFrequency(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the frequency in the specified units.
//
//The method returns a error in case the unit is not supported.
func (v Frequency) Value(units byte) (float64, error) {
	return frequencyFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Frequency) Convert(units byte) Frequency {
	return Frequency{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Frequency) In(units byte) float64 {
	x, e := frequencyFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Frequency) String() string {
	x, e := frequencyFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case FrequencyHz:
		unitName = "Hz"
		accuracy = 0
	case FrequencyKHz:
		unitName = "kHz"
		accuracy = 1
	case FrequencyMHz:
		unitName = "MHz"
		accuracy = 3
	case FrequencyGHz:
		unitName = "GHz"
		accuracy = 4
	default:
		unitName = "?"
		accuracy = 6
	}
	format := fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Frequency) Units() byte {
	return v.defaultUnits
}

//WavelengthOf returns the free-space wavelength of the frequency as a distance
func WavelengthOf(f Frequency) Distance {
	mhz := f.In(FrequencyMHz)
	if mhz <= 0 {
		return MustCreateDistance(0, DistanceInch)
	}
	return MustCreateDistance(cSpeedOfLightInchMHz/mhz, DistanceInch)
}
