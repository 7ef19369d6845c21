package fighters

import (
	"sort"

	"github.com/aurceive/fighter-tools/internal/domain"
)

// ApplySubroleStats fills role, attack, defense and speed from each fighter's sub-role template.
// Stats the fighter already has are never overwritten; an unknown sub-role fills zeros.
// Fighters are modified in place and the same slice is returned.
func ApplySubroleStats(fighters []*domain.Fighter, subroles *domain.SubroleTable) []*domain.Fighter {
	for _, f := range fighters {
		tmpl, _ := subroles.Lookup(f.SubRole)

		if f.Role == "" {
			f.Role = tmpl.RoleName()
		}
		if f.Attack == nil {
			f.Attack = domain.Int(domain.Stat(tmpl.Attack))
		}
		if f.Defense == nil {
			f.Defense = domain.Int(domain.Stat(tmpl.Defense))
		}
		if f.Speed == nil {
			f.Speed = domain.Int(domain.Stat(tmpl.Speed))
		}
	}
	return fighters
}

// Value computes attack + defense + speed + sub-role bonus. Missing stats count as 0.
func Value(f *domain.Fighter) int {
	return domain.Stat(f.Attack) + domain.Stat(f.Defense) + domain.Stat(f.Speed) + SubroleBonus(f.SubRole)
}

// BuildValueTable scores every fighter and sorts by value desc, then by id.
func BuildValueTable(fighters []*domain.Fighter) []domain.ValueRow {
	rows := make([]domain.ValueRow, 0, len(fighters))
	for _, f := range fighters {
		rows = append(rows, domain.ValueRow{
			ID:      f.ID,
			Fighter: f,
			Bonus:   SubroleBonus(f.SubRole),
			Value:   Value(f),
		})
	}
	SortRows(rows)
	return rows
}

func SortRows(rows []domain.ValueRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].ID < rows[j].ID
	})
}
