package wondercard

// Summary is a flat, JSON friendly description of a card
type Summary struct {
	CardID           int              `json:"card_id"`
	Title            string           `json:"title"`
	Date             string           `json:"date,omitempty"`
	CardType         string           `json:"card_type"`
	Repeatable       bool             `json:"repeatable"`
	Used             bool             `json:"used"`
	OncePerDay       bool             `json:"once_per_day"`
	MultiObtain      bool             `json:"multi_obtain"`
	RestrictVersion  uint8            `json:"restrict_version"`
	RestrictLanguage uint8            `json:"restrict_language"`
	EligibleVersions []int            `json:"eligible_versions"`
	Creature         *CreatureSummary `json:"creature,omitempty"`
	Items            []ItemStack      `json:"items,omitempty"`
	Bean             *AmountSummary   `json:"bean,omitempty"`
	BP               *AmountSummary   `json:"bp,omitempty"`
}

// CreatureSummary lists the creature fields of a card
type CreatureSummary struct {
	Species     int      `json:"species"`
	Form        int      `json:"form"`
	Level       int      `json:"level"`
	MetLevel    int      `json:"met_level"`
	Nickname    string   `json:"nickname,omitempty"`
	OTName      string   `json:"ot_name,omitempty"`
	TID         int      `json:"tid"`
	SID         int      `json:"sid"`
	OriginGame  int      `json:"origin_game"`
	Language    int      `json:"language"`
	Ball        int      `json:"ball"`
	HeldItem    int      `json:"held_item"`
	Nature      int      `json:"nature"`
	Gender      int      `json:"gender"`
	AbilityType int      `json:"ability_type"`
	PIDType     string   `json:"pid_type"`
	PID         uint32   `json:"pid"`
	IsEgg       bool     `json:"is_egg"`
	Moves       [4]int   `json:"moves"`
	IVs         [6]int   `json:"ivs"`
	Ribbons     []string `json:"ribbons,omitempty"`
}

// AmountSummary is the payload of bean and BP cards
type AmountSummary struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// Summarize describes w
func Summarize(w *WC7) Summary {
	s := Summary{
		CardID:           w.CardID(),
		Title:            w.Title(),
		CardType:         w.CardType().String(),
		Repeatable:       w.GiftRepeatable(),
		Used:             w.GiftUsed(),
		OncePerDay:       w.GiftOncePerDay(),
		MultiObtain:      w.MultiObtain(),
		RestrictVersion:  w.RestrictVersion,
		RestrictLanguage: w.RestrictLanguage,
		EligibleVersions: w.EligibleVersions(),
	}
	if d, ok := w.Date(); ok {
		s.Date = d.Format("2006-01-02")
	}

	switch c := w.Content().(type) {
	case Creature:
		cs := &CreatureSummary{
			Species:     c.Species(),
			Form:        c.Form(),
			Level:       c.Level(),
			MetLevel:    c.MetLevel(),
			Nickname:    c.Nickname(),
			OTName:      c.OTName(),
			TID:         c.TID(),
			SID:         c.SID(),
			OriginGame:  c.OriginGame(),
			Language:    c.Language(),
			Ball:        c.Ball(),
			HeldItem:    c.HeldItem(),
			Nature:      c.Nature(),
			Gender:      c.Gender(),
			AbilityType: c.AbilityType(),
			PIDType:     c.PIDType().String(),
			PID:         c.PID(),
			IsEgg:       c.IsEgg(),
			Moves:       c.Moves(),
			IVs:         c.IVs(),
		}
		for _, r := range c.Ribbons().List() {
			cs.Ribbons = append(cs.Ribbons, r.String())
		}
		s.Creature = cs
	case ItemGift:
		s.Items = c.Stacks()
	case BeanGift:
		s.Bean = &AmountSummary{ID: c.Bean(), Quantity: c.Quantity()}
	case BPGift:
		s.BP = &AmountSummary{ID: c.BP(), Quantity: c.Quantity()}
	}
	return s
}
