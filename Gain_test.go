package go_yagicalc

import (
	"math"
	"testing"
)

func TestFreeSpaceGainNonDecreasing(t *testing.T) {
	cal := CreateDefaultCalibration()
	previous := 0.0
	for n := 2; n <= 24; n++ {
		gain := cal.FreeSpaceGain(n)
		if gain < previous {
			t.Errorf("free space gain must be non-decreasing, dropped at %d elements (%f/%f)",
				n, gain, previous)
		}
		previous = gain
	}
}

func TestFreeSpaceGainExtrapolation(t *testing.T) {
	cal := CreateDefaultCalibration()
	at20 := cal.FreeSpaceGain(20)
	at22 := cal.FreeSpaceGain(22)
	if math.Abs(at22-at20-0.6) > 1e-9 {
		t.Errorf("above 20 elements each element is worth 0.3dB, got %f", at22-at20)
	}
}

func TestBoomAdjustmentDoubling(t *testing.T) {
	for _, standard := range []float64{87, 138, 670} {
		doubled := boomAdjustment(2*standard, standard)
		if math.Abs(doubled-2.5) > 0.5 {
			t.Errorf("doubling the boom must be worth about 2.5dB, got %f", doubled)
		}
		halved := boomAdjustment(standard/2, standard)
		if math.Abs(halved+2.5) > 0.5 {
			t.Errorf("halving the boom must cost about 2.5dB, got %f", halved)
		}
	}
	if boomAdjustment(0, 138) != 0 {
		t.Errorf("degenerate boom length must not adjust the gain")
	}
}

func TestStandardBoomLengthScalesWithWavelength(t *testing.T) {
	cal := CreateDefaultCalibration()
	reference := cal.StandardBoomLength(3, 434.17)
	doubled := cal.StandardBoomLength(3, 868.34)
	if math.Abs(doubled-2*reference) > 0.01 {
		t.Errorf("standard boom must scale linearly with wavelength (%f/%f)", doubled, reference)
	}
}

func TestGroundGainCurves(t *testing.T) {
	//horizontal polarization peaks near one wavelength
	if math.Abs(groundGain(1.0, PolarizationHorizontal)-6.0) > 0.01 {
		t.Errorf("horizontal ground gain at one wavelength must be near 6dB")
	}
	//vertical polarization saturates below 3dB
	for _, h := range []float64{0.5, 1.0, 2.0, 4.0} {
		g := groundGain(h, PolarizationVertical)
		if g > 2.8 {
			t.Errorf("vertical ground gain must saturate below 2.8dB, got %f at %f", g, h)
		}
	}
	//a 45 degree slant sits 3dB under horizontal
	diff := groundGain(1.0, PolarizationHorizontal) - groundGain(1.0, PolarizationSlant45)
	if math.Abs(diff-3.0) > 1e-9 {
		t.Errorf("slant polarization must be 3dB below horizontal, got %f", diff)
	}
}

func TestGainBreakdownRounding(t *testing.T) {
	b := createGainBreakdown(8.504, 1.237, -1.5, 0.25, -0.1, 5.763, -0.033, 0)
	sum := b.BaseLookup() + b.BoomAdjustment() + b.ReflectorAdjustment() + b.TaperBonus() +
		b.CoronaAdjustment() + b.GroundBonus() + b.MountAdjustment() + b.DualBonus()
	if math.Abs(b.Final()-sum) > 0.005 {
		t.Errorf("rounded terms must add up to the final figure (%f/%f)", b.Final(), sum)
	}
	if b.BaseLookup() != 8.5 {
		t.Errorf("terms must be rounded to two decimals before summation, got %f", b.BaseLookup())
	}
}

func TestGainBreakdownClamp(t *testing.T) {
	b := createGainBreakdown(40, 6, 0, 0, 0, 6, 0, 1)
	if b.Final() > cMaximumGain {
		t.Errorf("final gain must clamp at %f, got %f", cMaximumGain, b.Final())
	}
}
