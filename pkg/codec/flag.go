package codec

// Flag names one bit of a byte field. Inverted flags read true when the bit is clear.
type Flag struct {
	Name     string
	Field    Field
	Bit      uint8
	Inverted bool
}

func (fl Flag) mask() uint8 {
	return 1 << (fl.Bit & 7)
}
