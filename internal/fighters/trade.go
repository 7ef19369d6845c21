package fighters

import (
	"fmt"

	"github.com/aurceive/fighter-tools/internal/domain"
)

// Fair trade window for the value ratio a/b.
const (
	MinTradeRatio = 0.75
	MaxTradeRatio = 1.25
)

// CompareForTrade checks whether two fighters could be swapped: same role, and values
// within the fair ratio window. Stats should already be back-filled.
func CompareForTrade(fighters []*domain.Fighter, idA, idB string) (domain.TradeCheck, error) {
	a := find(fighters, idA)
	if a == nil {
		return domain.TradeCheck{}, fmt.Errorf("unknown fighter id %q", idA)
	}
	b := find(fighters, idB)
	if b == nil {
		return domain.TradeCheck{}, fmt.Errorf("unknown fighter id %q", idB)
	}
	if idA == idB {
		return domain.TradeCheck{}, fmt.Errorf("cannot trade fighter %q for itself", idA)
	}

	check := domain.TradeCheck{
		A:          domain.ValueRow{ID: a.ID, Fighter: a, Bonus: SubroleBonus(a.SubRole), Value: Value(a)},
		B:          domain.ValueRow{ID: b.ID, Fighter: b, Bonus: SubroleBonus(b.SubRole), Value: Value(b)},
		RoleLocked: a.Role == b.Role,
	}
	if check.B.Value == 0 {
		// A zero-valued fighter only trades evenly with another zero.
		check.FairValue = check.A.Value == 0
		if check.FairValue {
			check.Ratio = 1
		}
		return check, nil
	}
	check.Ratio = float64(check.A.Value) / float64(check.B.Value)
	check.FairValue = check.Ratio >= MinTradeRatio && check.Ratio <= MaxTradeRatio
	return check, nil
}

func find(fighters []*domain.Fighter, id string) *domain.Fighter {
	for _, f := range fighters {
		if f.ID == id {
			return f
		}
	}
	return nil
}
