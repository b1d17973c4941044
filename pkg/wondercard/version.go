package wondercard

// Game versions able to receive generation 7 cards. The restriction mask
// holds one bit per version, starting at VersionSun.
const (
	VersionSun       = 30
	VersionMoon      = 31
	VersionUltraSun  = 32
	VersionUltraMoon = 33

	MinVersion = VersionSun
	MaxVersion = VersionUltraMoon
)

// SupportedVersions lists the receivable versions in mask order
func SupportedVersions() []int {
	out := make([]int, 0, MaxVersion-MinVersion+1)
	for v := MinVersion; v <= MaxVersion; v++ {
		out = append(out, v)
	}
	return out
}

// CanBeReceivedByVersion reports whether a game of version v may redeem the card
func (w *WC7) CanBeReceivedByVersion(v int) bool {
	if v < MinVersion || v > MaxVersion {
		return false
	}
	if w.RestrictVersion == 0 {
		return true
	}
	return (w.RestrictVersion>>(v-MinVersion))&1 != 0
}

// EligibleVersions returns the supported versions that pass the restriction mask
func (w *WC7) EligibleVersions() []int {
	var out []int
	for _, v := range SupportedVersions() {
		if w.CanBeReceivedByVersion(v) {
			out = append(out, v)
		}
	}
	return out
}
