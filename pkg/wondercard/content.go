package wondercard

import "fmt"

// CardType selects how the shared offsets of a card are interpreted
type CardType uint8

const (
	CardPokemon CardType = 0
	CardItem    CardType = 1
	CardBean    CardType = 2
	CardBP      CardType = 3
)

func (t CardType) String() string {
	switch t {
	case CardPokemon:
		return "pokemon"
	case CardItem:
		return "item"
	case CardBean:
		return "bean"
	case CardBP:
		return "bp"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Content is one interpretation of a card's payload. It is implemented by
// Creature, ItemGift, BeanGift and BPGift.
type Content interface {
	Type() CardType
}

// ItemGift views a card as up to MaxItems item and quantity pairs
type ItemGift struct {
	card *WC7
}

func (ItemGift) Type() CardType { return CardItem }

// Item returns the item id in slot i, or 0 for an invalid slot
func (g ItemGift) Item(i int) int {
	if i < 0 || i >= MaxItems {
		return 0
	}
	return int(g.card.buf.U16(itemField(i)))
}

// SetItem writes the item id in slot i
func (g ItemGift) SetItem(i, item int) error {
	if i < 0 || i >= MaxItems {
		return fmt.Errorf("item slot %d out of range [0,%d)", i, MaxItems)
	}
	g.card.buf.SetU16(itemField(i), uint16(item))
	return nil
}

// Quantity returns the quantity in slot i, or 0 for an invalid slot
func (g ItemGift) Quantity(i int) int {
	if i < 0 || i >= MaxItems {
		return 0
	}
	return int(g.card.buf.U16(quantityField(i)))
}

// SetQuantity writes the quantity in slot i
func (g ItemGift) SetQuantity(i, quantity int) error {
	if i < 0 || i >= MaxItems {
		return fmt.Errorf("item slot %d out of range [0,%d)", i, MaxItems)
	}
	g.card.buf.SetU16(quantityField(i), uint16(quantity))
	return nil
}

// ItemStack is one item slot of an item card
type ItemStack struct {
	Item     int `json:"item"`
	Quantity int `json:"quantity"`
}

// Stacks returns the non-empty item slots in order
func (g ItemGift) Stacks() []ItemStack {
	var out []ItemStack
	for i := 0; i < MaxItems; i++ {
		if item := g.Item(i); item != 0 {
			out = append(out, ItemStack{Item: item, Quantity: g.Quantity(i)})
		}
	}
	return out
}

// BeanGift views a card as a bundle of Poké Beans
type BeanGift struct {
	card *WC7
}

func (BeanGift) Type() CardType { return CardBean }

func (g BeanGift) Bean() int              { return int(g.card.buf.U16(fItemID)) }
func (g BeanGift) SetBean(bean int)       { g.card.buf.SetU16(fItemID, uint16(bean)) }
func (g BeanGift) Quantity() int          { return int(g.card.buf.U16(fQuantity)) }
func (g BeanGift) SetQuantity(amount int) { g.card.buf.SetU16(fQuantity, uint16(amount)) }

// BPGift views a card as an amount of Battle Points
type BPGift struct {
	card *WC7
}

func (BPGift) Type() CardType { return CardBP }

func (g BPGift) BP() int                { return int(g.card.buf.U16(fItemID)) }
func (g BPGift) SetBP(bp int)           { g.card.buf.SetU16(fItemID, uint16(bp)) }
func (g BPGift) Quantity() int          { return int(g.card.buf.U16(fQuantity)) }
func (g BPGift) SetQuantity(amount int) { g.card.buf.SetU16(fQuantity, uint16(amount)) }
