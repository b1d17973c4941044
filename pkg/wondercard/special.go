package wondercard

import "github.com/ssargent/wondercard/pkg/pk7"

// Identifiers of the Ash-Greninja distribution
const (
	AshGreninjaCardID  = 2046
	ashGreninjaTrainer = 0x79F57B49
)

// IsAshGreninja reports whether pk was generated from the Ash-Greninja card,
// which is identified by its card id and the fixed trainer ids it carries.
func (w *WC7) IsAshGreninja(pk *pk7.PK7) bool {
	if w.CardID() != AshGreninjaCardID || pk == nil {
		return false
	}
	return uint32(pk.SID)<<16|uint32(pk.TID) == ashGreninjaTrainer
}
