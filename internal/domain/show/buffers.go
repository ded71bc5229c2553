package show

// BufferPolicy bounds the minutes a show may reserve on top of the movie runtime.
type BufferPolicy struct {
	IntervalMin int
	IntervalMax int
	CleanupMin  int
	CleanupMax  int
}

func DefaultBufferPolicy() BufferPolicy {
	return BufferPolicy{
		IntervalMin: 0,
		IntervalMax: 30,
		CleanupMin:  10,
		CleanupMax:  30,
	}
}

func (p BufferPolicy) Validate(intervalMinutes, cleanupMinutes int) error {
	if intervalMinutes < p.IntervalMin || intervalMinutes > p.IntervalMax {
		return ErrIntervalOutOfRange
	}
	if cleanupMinutes < p.CleanupMin || cleanupMinutes > p.CleanupMax {
		return ErrCleanupOutOfRange
	}
	return nil
}
