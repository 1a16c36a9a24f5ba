package go_yagicalc

import (
	"math"
	"testing"

	"github.com/tommyfalls2011/go_yagicalc/bmath/unit"
)

func TestFeedpointResistance(t *testing.T) {
	//a lone dipole sits at the half wave baseline
	if math.Abs(feedpointResistance(false, 0)-73.0) > 1e-9 {
		t.Errorf("a dipole feedpoint must be 73 ohms")
	}
	//the reflector discounts the baseline by about 45 percent
	if math.Abs(feedpointResistance(true, 0)-40.15) > 0.01 {
		t.Errorf("reflector coupling must discount to about 40 ohms, got %f",
			feedpointResistance(true, 0))
	}
	//every director lowers it further, but never below the floor
	previous := feedpointResistance(true, 0)
	for d := 1; d <= 18; d++ {
		r := feedpointResistance(true, d)
		if r > previous {
			t.Errorf("feedpoint resistance must not rise with directors (%f/%f)", r, previous)
		}
		if r < cMinimumFeedpointR {
			t.Errorf("feedpoint resistance must floor at %f, got %f", cMinimumFeedpointR, r)
		}
		previous = r
	}
}

func TestTransmissionLineZ0(t *testing.T) {
	z0 := transmissionLineZ0(4, 0.375)
	if math.Abs(z0-276*math.Log10(2*4/0.375)) > 1e-9 {
		t.Errorf("two wire line impedance formula broken, got %f", z0)
	}
	//degenerate geometry falls back instead of producing a negative impedance
	if transmissionLineZ0(0.1, 0.375) != 200 {
		t.Errorf("degenerate line geometry must fall back to the default impedance")
	}
}

func TestGammaSweepImproves(t *testing.T) {
	hw := CreateDefaultCalibration().GammaHardwareFor(3)
	frequency := unit.MustCreateFrequency(27.185, unit.FrequencyMHz)
	wavelength := unit.WavelengthOf(frequency).In(unit.DistanceInch)

	report := designGamma(2.5, 28.1, hw, 101.2, frequency, wavelength)

	if report.MatchedSwr() > report.OriginalSwr() {
		t.Errorf("a swept gamma match must not worsen a sub-50-ohm feedpoint (%f/%f)",
			report.MatchedSwr(), report.OriginalSwr())
	}
	if report.MatchedSwr() > 1.5 {
		t.Errorf("the sweep must find a match at 1.5 or better, got %f", report.MatchedSwr())
	}
	if len(report.Sweep()) != cGammaBarSteps*cGammaInsertionSteps {
		t.Errorf("the full grid must be reported, got %d points", len(report.Sweep()))
	}
	//a longer bar pulls the resonant frequency down
	if report.ResonantFrequency().In(unit.FrequencyMHz) > frequency.In(unit.FrequencyMHz) {
		t.Errorf("the matched system must resonate at or below the design frequency")
	}
	if report.BandwidthMultiplier() > 1.0 {
		t.Errorf("a gamma match narrows the bandwidth, multiplier %f", report.BandwidthMultiplier())
	}
}

func TestGammaSweepGridIsBounded(t *testing.T) {
	hw := CreateDefaultCalibration().GammaHardwareFor(3)
	frequency := unit.MustCreateFrequency(27.185, unit.FrequencyMHz)
	wavelength := unit.WavelengthOf(frequency).In(unit.DistanceInch)
	report := designGamma(2.0, 28.1, hw, 101.2, frequency, wavelength)

	rodLength := hw.RodLength().In(unit.DistanceInch)
	maxInsertion := hw.MaxInsertion().In(unit.DistanceInch)
	for _, p := range report.Sweep() {
		if p.BarPosition() < cGammaBarMinimum || p.BarPosition() > rodLength+1e-9 {
			t.Fatalf("bar position %f outside the sweep bounds", p.BarPosition())
		}
		if p.Insertion() < 0 || p.Insertion() > maxInsertion+1e-9 {
			t.Fatalf("insertion %f outside the sweep bounds", p.Insertion())
		}
	}
}

func TestGammaCapacitanceReactance(t *testing.T) {
	hw := CreateDefaultCalibration().GammaHardwareFor(3)
	shallow := gammaCapacitanceReactance(2, hw, 27.185)
	deep := gammaCapacitanceReactance(12, hw, 27.185)
	if deep >= shallow {
		t.Errorf("deeper insertion means more capacitance and less reactance (%f/%f)", deep, shallow)
	}
	if gammaCapacitanceReactance(0, hw, 27.185) != cMaximumStubReactance {
		t.Errorf("zero insertion must report the open circuit ceiling")
	}
}

func TestHairpinDesign(t *testing.T) {
	frequency := unit.MustCreateFrequency(27.185, unit.FrequencyMHz)
	wavelength := unit.WavelengthOf(frequency).In(unit.DistanceInch)

	report := designHairpin(2.2, 28.1, frequency, wavelength)

	if report.TopologyNote() != "" {
		t.Errorf("a sub-50-ohm feedpoint must not carry a topology note")
	}
	if report.HairpinLength().In(unit.DistanceInch) <= 0 {
		t.Errorf("the designed hairpin must have a positive length")
	}
	if report.MatchedSwr() > report.OriginalSwr() {
		t.Errorf("the hairpin must not worsen the SWR (%f/%f)",
			report.MatchedSwr(), report.OriginalSwr())
	}
	expected := math.Sqrt(28.1 * (50 - 28.1))
	if math.Abs(report.RequiredReactance()-expected) > 1e-9 {
		t.Errorf("required reactance formula broken (%f/%f)", report.RequiredReactance(), expected)
	}
	if math.Abs(report.BandwidthMultiplier()-1.0) > 1e-9 {
		t.Errorf("a hairpin is broadband, multiplier must stay 1.0")
	}
}

func TestHairpinAboveLineImpedance(t *testing.T) {
	frequency := unit.MustCreateFrequency(27.185, unit.FrequencyMHz)
	wavelength := unit.WavelengthOf(frequency).In(unit.DistanceInch)
	report := designHairpin(1.1, 51.1, frequency, wavelength)
	if report.TopologyNote() == "" {
		t.Errorf("a feedpoint at or above 50 ohms must recommend a different topology")
	}
	if report.MatchedSwr() != report.OriginalSwr() {
		t.Errorf("an unusable hairpin must pass the SWR through unchanged")
	}
}

func TestDirectFeedPassthrough(t *testing.T) {
	frequency := unit.MustCreateFrequency(27.185, unit.FrequencyMHz)
	report := designDirect(1.9, 28.1, frequency)
	if report.MatchedSwr() != 1.9 || report.OriginalSwr() != 1.9 {
		t.Errorf("a direct feed must pass the SWR through unchanged")
	}
	if report.BandwidthMultiplier() != 1.0 {
		t.Errorf("a direct feed must not touch the bandwidth")
	}
}

func TestSwrFromImpedance(t *testing.T) {
	if math.Abs(swrFromImpedance(50, 0)-1.0) > 1e-9 {
		t.Errorf("a perfect 50 ohm load must read 1.0")
	}
	if math.Abs(swrFromImpedance(100, 0)-2.0) > 1e-9 {
		t.Errorf("a 100 ohm resistive load must read 2.0")
	}
	if swrFromImpedance(50, 50) <= swrFromImpedance(50, 10) {
		t.Errorf("more reactance must read a worse SWR")
	}
}
