package go_yagicalc

import "github.com/tommyfalls2011/go_yagicalc/bmath/unit"

//Band describes a frequency band the engine has calibration data for
type Band struct {
	name           string
	center         unit.Frequency
	lower          unit.Frequency
	upper          unit.Frequency
	channelSpacing unit.Frequency
}

//CreateBand creates a band definition
func CreateBand(name string, center unit.Frequency, lower unit.Frequency, upper unit.Frequency,
	channelSpacing unit.Frequency) Band {
	return Band{name: name, center: center, lower: lower, upper: upper, channelSpacing: channelSpacing}
}

//Name returns the band name
func (v Band) Name() string {
	return v.name
}

//Center returns the band center frequency
func (v Band) Center() unit.Frequency {
	return v.center
}

//Lower returns the lower band edge
func (v Band) Lower() unit.Frequency {
	return v.lower
}

//Upper returns the upper band edge
func (v Band) Upper() unit.Frequency {
	return v.upper
}

//ChannelSpacing returns the channel raster of the band
func (v Band) ChannelSpacing() unit.Frequency {
	return v.channelSpacing
}

//Contains indicates whether the band contains the given frequency
func (v Band) Contains(f unit.Frequency) bool {
	mhz := f.In(unit.FrequencyMHz)
	return mhz >= v.lower.In(unit.FrequencyMHz) && mhz <= v.upper.In(unit.FrequencyMHz)
}

//GammaHardware describes the physical parts of a gamma matching section.
//
//The rod runs parallel to the driven element at the given spacing; the
//sliding tube with its teflon sleeve forms the series capacitor.
type GammaHardware struct {
	rodLength         unit.Distance
	rodDiameter       unit.Distance
	rodSpacing        unit.Distance
	tubeLength        unit.Distance
	tubeInnerDiameter unit.Distance
	teflonLength      unit.Distance
	maxInsertion      unit.Distance
	dielectric        float64
}

//CreateGammaHardware creates a gamma hardware description
func CreateGammaHardware(rodLength, rodDiameter, rodSpacing, tubeLength, tubeInnerDiameter,
	teflonLength, maxInsertion unit.Distance, dielectric float64) GammaHardware {
	return GammaHardware{
		rodLength:         rodLength,
		rodDiameter:       rodDiameter,
		rodSpacing:        rodSpacing,
		tubeLength:        tubeLength,
		tubeInnerDiameter: tubeInnerDiameter,
		teflonLength:      teflonLength,
		maxInsertion:      maxInsertion,
		dielectric:        dielectric,
	}
}

//RodLength returns the gamma rod length
func (v GammaHardware) RodLength() unit.Distance {
	return v.rodLength
}

//RodDiameter returns the gamma rod diameter
func (v GammaHardware) RodDiameter() unit.Distance {
	return v.rodDiameter
}

//RodSpacing returns the center-to-center spacing between rod and element
func (v GammaHardware) RodSpacing() unit.Distance {
	return v.rodSpacing
}

//TubeLength returns the length of the sliding capacitor tube
func (v GammaHardware) TubeLength() unit.Distance {
	return v.tubeLength
}

//TubeInnerDiameter returns the inner diameter of the capacitor tube
func (v GammaHardware) TubeInnerDiameter() unit.Distance {
	return v.tubeInnerDiameter
}

//TeflonLength returns the length of the teflon sleeve
func (v GammaHardware) TeflonLength() unit.Distance {
	return v.teflonLength
}

//MaxInsertion returns the deepest usable rod insertion into the tube
func (v GammaHardware) MaxInsertion() unit.Distance {
	return v.maxInsertion
}

//Dielectric returns the relative dielectric constant of the sleeve
func (v GammaHardware) Dielectric() float64 {
	return v.dielectric
}

//calPoint is one key/value pair of a piecewise-linear calibration curve
type calPoint struct {
	key   float64
	value float64
}

//interpolatePoints evaluates a piecewise-linear curve at x.
//Outside the covered range the nearest endpoint value is returned.
func interpolatePoints(points []calPoint, x float64) float64 {
	if len(points) == 0 {
		return 0
	}
	if x <= points[0].key {
		return points[0].value
	}
	last := len(points) - 1
	if x >= points[last].key {
		return points[last].value
	}
	for i := 1; i <= last; i++ {
		if x <= points[i].key {
			span := points[i].key - points[i-1].key
			if span <= 0 {
				return points[i].value
			}
			t := (x - points[i-1].key) / span
			return points[i-1].value + t*(points[i].value-points[i-1].value)
		}
	}
	return points[last].value
}

//Calibration carries the lookup tables the engine is calibrated with.
//
//The tables are configuration data, not physics: they were fitted against
//reference antennas and can be replaced wholesale by the caller. A
//Calibration value is immutable once created.
type Calibration struct {
	gainPoints          []calPoint
	boomPoints          []calPoint
	referenceWavelength float64
	bands               []Band
}

//CreateDefaultCalibration creates the calibration the engine ships with.
//
//The gain and boom tables are referenced to the 11 meter band
//(27.185MHz, one wavelength is about 434 inches).
func CreateDefaultCalibration() Calibration {
	return Calibration{
		gainPoints: []calPoint{
			{2, 6.5}, {3, 8.5}, {4, 9.5}, {5, 10.5}, {6, 11.5},
			{7, 12.2}, {8, 12.8}, {9, 13.4}, {10, 14.0}, {12, 14.9},
			{14, 15.6}, {16, 16.2}, {18, 16.8}, {20, 17.3},
		},
		boomPoints: []calPoint{
			{2, 87}, {3, 138}, {4, 200}, {5, 270}, {6, 350},
			{7, 430}, {8, 510}, {9, 590}, {10, 670}, {12, 830},
			{14, 990}, {16, 1150}, {18, 1310}, {20, 1470},
		},
		referenceWavelength: 434.17,
		bands: []Band{
			CreateBand("11m",
				unit.MustCreateFrequency(27.185, unit.FrequencyMHz),
				unit.MustCreateFrequency(26.965, unit.FrequencyMHz),
				unit.MustCreateFrequency(27.405, unit.FrequencyMHz),
				unit.MustCreateFrequency(10, unit.FrequencyKHz)),
			CreateBand("10m",
				unit.MustCreateFrequency(28.4, unit.FrequencyMHz),
				unit.MustCreateFrequency(28.0, unit.FrequencyMHz),
				unit.MustCreateFrequency(29.7, unit.FrequencyMHz),
				unit.MustCreateFrequency(10, unit.FrequencyKHz)),
			CreateBand("15m",
				unit.MustCreateFrequency(21.225, unit.FrequencyMHz),
				unit.MustCreateFrequency(21.0, unit.FrequencyMHz),
				unit.MustCreateFrequency(21.45, unit.FrequencyMHz),
				unit.MustCreateFrequency(10, unit.FrequencyKHz)),
			CreateBand("20m",
				unit.MustCreateFrequency(14.175, unit.FrequencyMHz),
				unit.MustCreateFrequency(14.0, unit.FrequencyMHz),
				unit.MustCreateFrequency(14.35, unit.FrequencyMHz),
				unit.MustCreateFrequency(10, unit.FrequencyKHz)),
			CreateBand("6m",
				unit.MustCreateFrequency(50.15, unit.FrequencyMHz),
				unit.MustCreateFrequency(50.0, unit.FrequencyMHz),
				unit.MustCreateFrequency(54.0, unit.FrequencyMHz),
				unit.MustCreateFrequency(20, unit.FrequencyKHz)),
			CreateBand("2m",
				unit.MustCreateFrequency(146.0, unit.FrequencyMHz),
				unit.MustCreateFrequency(144.0, unit.FrequencyMHz),
				unit.MustCreateFrequency(148.0, unit.FrequencyMHz),
				unit.MustCreateFrequency(20, unit.FrequencyKHz)),
		},
	}
}

//Bands returns the bands the calibration knows about
func (v Calibration) Bands() []Band {
	return v.bands
}

//BandByName returns the band with the given name and a flag telling whether it exists
func (v Calibration) BandByName(name string) (Band, bool) {
	for _, b := range v.bands {
		if b.name == name {
			return b, true
		}
	}
	return Band{}, false
}

//GammaHardwareFor returns the standard gamma match hardware for an antenna
//with the given number of elements.
//
//A two element antenna uses a short rod because its feedpoint resistance is
//already close to the feedline impedance; larger antennas need the longer
//rod and deeper capacitor travel.
func (v Calibration) GammaHardwareFor(elementCount int) GammaHardware {
	if elementCount <= 2 {
		return CreateGammaHardware(
			unit.MustCreateDistance(24, unit.DistanceInch),
			unit.MustCreateDistance(0.375, unit.DistanceInch),
			unit.MustCreateDistance(4, unit.DistanceInch),
			unit.MustCreateDistance(12, unit.DistanceInch),
			unit.MustCreateDistance(0.5, unit.DistanceInch),
			unit.MustCreateDistance(12, unit.DistanceInch),
			unit.MustCreateDistance(10, unit.DistanceInch),
			2.1)
	}
	return CreateGammaHardware(
		unit.MustCreateDistance(36, unit.DistanceInch),
		unit.MustCreateDistance(0.375, unit.DistanceInch),
		unit.MustCreateDistance(4, unit.DistanceInch),
		unit.MustCreateDistance(18, unit.DistanceInch),
		unit.MustCreateDistance(0.5, unit.DistanceInch),
		unit.MustCreateDistance(18, unit.DistanceInch),
		unit.MustCreateDistance(14, unit.DistanceInch),
		2.1)
}
