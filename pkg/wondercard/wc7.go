package wondercard

import (
	"time"

	"github.com/ssargent/wondercard/pkg/codec"
)

// Format is the game generation of this record layout
const Format = 7

// WC7 is a generation 7 gift record. It owns a bare Size-byte buffer; the
// restriction fields are captured once, when a wrapped record is decoded.
type WC7 struct {
	buf *codec.Buffer

	// RestrictVersion is a bitmask over the supported versions, 0 permits all
	RestrictVersion uint8
	// RestrictLanguage is the language the card was distributed for, 0 for none
	RestrictLanguage uint8
}

// Option configures Decode
type Option func(*decodeOptions)

type decodeOptions struct {
	now func() time.Time
}

// WithClock sets the clock used to date wrapped records
func WithClock(now func() time.Time) Option {
	return func(o *decodeOptions) {
		o.now = now
	}
}

// New returns an empty bare record
func New() *WC7 {
	return &WC7{buf: codec.NewBuffer(Size)}
}

// Decode builds a record from raw bytes. Input of exactly SizeFull bytes is
// unwrapped: the restriction bytes are captured, the trailing Size bytes become
// the record and its date is set to today. Any other length is treated as a
// bare record, padded or cut to Size, with no restrictions.
func Decode(raw []byte, opts ...Option) *WC7 {
	o := decodeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if len(raw) != SizeFull {
		return &WC7{buf: codec.FromBytes(raw, Size)}
	}

	w := &WC7{
		buf:              codec.FromBytes(raw[SizeFull-Size:], Size),
		RestrictVersion:  raw[offsetRestrictVersion],
		RestrictLanguage: raw[offsetRestrictLanguage],
	}
	w.SetDate(o.now())
	return w
}

// Bytes returns a copy of the bare record
func (w *WC7) Bytes() []byte {
	return w.buf.Bytes()
}

// Wrap returns the record in its SizeFull distribution form, carrying the
// restriction bytes.
func (w *WC7) Wrap() []byte {
	out := make([]byte, SizeFull)
	out[offsetRestrictVersion] = w.RestrictVersion
	out[offsetRestrictLanguage] = w.RestrictLanguage
	copy(out[SizeFull-Size:], w.buf.Bytes())
	return out
}

func (w *WC7) CardID() int      { return int(w.buf.U16(fCardID)) }
func (w *WC7) SetCardID(id int) { w.buf.SetU16(fCardID, uint16(id)) }

// Title returns the card title, at most 36 characters
func (w *WC7) Title() string { return w.buf.String(fTitle) }

// SetTitle writes the card title. Titles over 36 characters are rejected.
func (w *WC7) SetTitle(title string) error { return w.buf.SetString(fTitle, title) }

func (w *WC7) RawDate() uint32       { return w.buf.U32(fDate) }
func (w *WC7) SetRawDate(raw uint32) { w.buf.SetU32(fDate, raw) }

// Date returns the card date, or false when it is unset or not a real day
func (w *WC7) Date() (time.Time, bool) {
	return codec.DecodeDate(w.RawDate())
}

// SetDate stores the calendar day of t. Years the packed form cannot carry
// store the absent date.
func (w *WC7) SetDate(t time.Time) {
	w.SetRawDate(codec.EncodeDate(t))
}

// ClearDate zeroes the year, month and day
func (w *WC7) ClearDate() {
	w.SetRawDate(0)
}

func (w *WC7) CardLocation() int       { return int(w.buf.U8(fCardLocation)) }
func (w *WC7) SetCardLocation(loc int) { w.buf.SetU8(fCardLocation, uint8(loc)) }

func (w *WC7) CardType() CardType            { return CardType(w.buf.U8(fCardType)) }
func (w *WC7) SetCardType(t CardType)        { w.buf.SetU8(fCardType, uint8(t)) }
func (w *WC7) CardFlags() uint8              { return w.buf.U8(fCardFlags) }
func (w *WC7) SetCardFlags(flags uint8)      { w.buf.SetU8(fCardFlags, flags) }
func (w *WC7) Flag(fl codec.Flag) bool       { return w.buf.Flag(fl) }
func (w *WC7) SetFlag(fl codec.Flag, v bool) { w.buf.SetFlag(fl, v) }

func (w *WC7) GiftRepeatable() bool     { return w.buf.Flag(FlagRepeatable) }
func (w *WC7) SetGiftRepeatable(v bool) { w.buf.SetFlag(FlagRepeatable, v) }
func (w *WC7) GiftUsed() bool           { return w.buf.Flag(FlagUsed) }
func (w *WC7) SetGiftUsed(v bool)       { w.buf.SetFlag(FlagUsed, v) }
func (w *WC7) GiftOncePerDay() bool     { return w.buf.Flag(FlagOncePerDay) }
func (w *WC7) SetGiftOncePerDay(v bool) { w.buf.SetFlag(FlagOncePerDay, v) }
func (w *WC7) MultiObtain() bool        { return w.buf.Bool(fMultiObtain) }
func (w *WC7) SetMultiObtain(v bool)    { w.buf.SetBool(fMultiObtain, v) }

// IsPokemon reports whether the card carries a creature
func (w *WC7) IsPokemon() bool { return w.CardType() == CardPokemon }

// IsShiny reports whether the creature on the card is always generated shiny
func (w *WC7) IsShiny() bool {
	return w.IsPokemon() && w.Creature().PIDType() == ShinyAlways
}

// Creature returns the creature view of the record. The view is only
// meaningful when the card type is CardPokemon.
func (w *WC7) Creature() Creature {
	return Creature{card: w}
}

// Content returns the view selected by the card type. Unknown card types
// return nil.
func (w *WC7) Content() Content {
	switch w.CardType() {
	case CardPokemon:
		return Creature{card: w}
	case CardItem:
		return ItemGift{card: w}
	case CardBean:
		return BeanGift{card: w}
	case CardBP:
		return BPGift{card: w}
	default:
		return nil
	}
}
