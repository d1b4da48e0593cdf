package protocol

// Timing characteristics of the firmware's software SPI engine. The base
// half period is a fixed hardware cost; each tick of the half-period
// parameter stretches it by one timer step.
const (
	baseHalfPeriodNs = 740.0
	halfPeriodStepNs = 62.0
)

// MaxFrequencyHz is the fastest SCLK the bit-bang engine can produce
// (half-period parameter of zero).
const MaxFrequencyHz = 1e9 / (2 * baseHalfPeriodNs)

// HalfPeriodTicks maps a desired SCLK frequency to the discrete half-period
// tick count for BitBangConfig. ok is false when the frequency is at or
// above the engine maximum; ticks is then 0 and the caller decides whether
// running at full speed is acceptable. The tick count is truncated toward
// zero, so the achieved frequency is always at or above the requested one.
// There is no lower frequency bound: very slow clocks floor to very large
// tick counts.
func HalfPeriodTicks(freqHz float64) (ticks uint32, ok bool) {
	if freqHz >= MaxFrequencyHz {
		return 0, false
	}
	halfPeriodNs := (1e9 / freqHz) / 2
	return uint32((halfPeriodNs - baseHalfPeriodNs) / halfPeriodStepNs), true
}
