package structs

// Housekeeping is a simple telemetry frame used to exercise wiregen
// output: one field of each width class, one excluded diagnostic field.
type Housekeeping struct {
	Temp  int16
	Volts float32
	Seq   uint64
	Mode  byte
	Count int32

	// Local bookkeeping, never sent.
	Dirty bool `wire:"-"`
}
