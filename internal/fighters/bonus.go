package fighters

// Sub-role bonus weights. Any sub-role not listed here uses DefaultSubroleBonus.
var subroleBonusTable = map[string]int{
	"Paladin":     1,
	"BruiserTank": 1,
	"Defender":    1,
	"Skirmisher":  1,
	"SpiritGuide": 1,
	"Trickster":   1,
	"Healer":      1,
	"Caster":      1,
}

const (
	DefaultSubroleBonus = 1
	EmptySubroleBonus   = 0
)

// SubroleBonus returns the value bonus for a sub-role name.
func SubroleBonus(subRole string) int {
	if subRole == "" {
		return EmptySubroleBonus
	}
	if b, ok := subroleBonusTable[subRole]; ok {
		return b
	}
	return DefaultSubroleBonus
}
