package fighters_test

import (
	"math/rand"
	"testing"

	"github.com/aurceive/fighter-tools/internal/domain"
	"github.com/aurceive/fighter-tools/internal/fighters"
)

func str(s string) *string { return &s }

func testSubroles() *domain.SubroleTable {
	t := domain.NewSubroleTable()
	t.Put(domain.Subrole{Name: "Paladin", Attack: domain.Int(4), Defense: domain.Int(4), Speed: domain.Int(2), Precision: domain.Int(2), HP: domain.Int(8), Role: str("Tank")})
	t.Put(domain.Subrole{Name: "Healer", Attack: domain.Int(2), Defense: domain.Int(3), Speed: domain.Int(3), Roles: []string{"Support"}})
	return t
}

func TestSubroleBonus(t *testing.T) {
	if got := fighters.SubroleBonus(""); got != 0 {
		t.Fatalf("expected 0 for empty sub-role, got %d", got)
	}
	if got := fighters.SubroleBonus("Paladin"); got != 1 {
		t.Fatalf("expected 1 for Paladin, got %d", got)
	}
	if got := fighters.SubroleBonus("Necromancer"); got != fighters.DefaultSubroleBonus {
		t.Fatalf("expected default bonus for unknown sub-role, got %d", got)
	}
}

func TestApplySubroleStats_FillsOnlyMissing(t *testing.T) {
	fs := []*domain.Fighter{
		{ID: "a", SubRole: "Paladin", Attack: domain.Int(6)},
		{ID: "b", SubRole: "Paladin", Role: "DPS", Defense: domain.Int(0)},
	}
	fighters.ApplySubroleStats(fs, testSubroles())

	a := fs[0]
	if *a.Attack != 6 {
		t.Fatalf("expected explicit attack 6 to be kept, got %d", *a.Attack)
	}
	if *a.Defense != 4 || *a.Speed != 2 {
		t.Fatalf("expected defense=4 speed=2 from template, got %d %d", *a.Defense, *a.Speed)
	}
	if a.Role != "Tank" {
		t.Fatalf("expected role Tank from template, got %q", a.Role)
	}

	b := fs[1]
	if *b.Defense != 0 {
		t.Fatalf("expected explicit zero defense to be kept, got %d", *b.Defense)
	}
	if b.Role != "DPS" {
		t.Fatalf("expected explicit role to be kept, got %q", b.Role)
	}
}

func TestApplySubroleStats_UnknownTemplateGivesZeros(t *testing.T) {
	fs := []*domain.Fighter{{ID: "x", SubRole: "Ghost"}, {ID: "y"}}
	fighters.ApplySubroleStats(fs, testSubroles())
	for _, f := range fs {
		if f.Attack == nil || f.Defense == nil || f.Speed == nil {
			t.Fatalf("expected all stats to be set for %s", f.ID)
		}
		if *f.Attack != 0 || *f.Defense != 0 || *f.Speed != 0 || f.Role != "" {
			t.Fatalf("expected zero stats and empty role for %s, got %+v", f.ID, f)
		}
	}
}

func TestApplySubroleStats_RolesOnlyTemplateLeavesRoleEmpty(t *testing.T) {
	fs := []*domain.Fighter{{ID: "h", SubRole: "Healer"}}
	fighters.ApplySubroleStats(fs, testSubroles())
	if fs[0].Role != "" {
		t.Fatalf("expected empty role, got %q", fs[0].Role)
	}
	if got := fighters.Value(fs[0]); got != 2+3+3+1 {
		t.Fatalf("expected value 9, got %d", got)
	}
}

func TestValue_IsPureAndDefaultsMissing(t *testing.T) {
	f := &domain.Fighter{ID: "a", SubRole: "Caster", Attack: domain.Int(3)}
	first := fighters.Value(f)
	second := fighters.Value(f)
	if first != second {
		t.Fatalf("expected identical results, got %d and %d", first, second)
	}
	if first != 4 {
		t.Fatalf("expected 3+0+0+1=4, got %d", first)
	}
	if f.Defense != nil || f.Speed != nil {
		t.Fatalf("expected Value not to modify the fighter")
	}
}

func TestBuildValueTable_SortsByValueThenID(t *testing.T) {
	fs := []*domain.Fighter{
		{ID: "c", Attack: domain.Int(5)},
		{ID: "b", Attack: domain.Int(4), SubRole: "Paladin"},
		{ID: "a", Attack: domain.Int(5)},
		{ID: "d", Attack: domain.Int(9)},
	}
	rows := fighters.BuildValueTable(fs)
	want := []string{"d", "a", "b", "c"}
	for i := range want {
		if rows[i].ID != want[i] {
			t.Fatalf("expected rows[%d]=%q, got %q", i, want[i], rows[i].ID)
		}
	}
	if rows[2].Bonus != 1 || rows[2].Value != 5 {
		t.Fatalf("expected b bonus=1 value=5, got %+v", rows[2])
	}
}

func TestBuildValueTable_IndependentOfInputOrder(t *testing.T) {
	base := []*domain.Fighter{
		{ID: "f1", Attack: domain.Int(3), SubRole: "Healer"},
		{ID: "f2", Attack: domain.Int(4)},
		{ID: "f3", Attack: domain.Int(2), Speed: domain.Int(2)},
		{ID: "f4", Defense: domain.Int(4)},
		{ID: "f5", Attack: domain.Int(1)},
	}
	want := fighters.BuildValueTable(base)

	r := rand.New(rand.NewSource(7))
	for n := 0; n < 20; n++ {
		shuffled := append([]*domain.Fighter(nil), base...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := fighters.BuildValueTable(shuffled)
		for i := range want {
			if got[i].ID != want[i].ID {
				t.Fatalf("run %d: expected rows[%d]=%q, got %q", n, i, want[i].ID, got[i].ID)
			}
		}
	}
}

func TestCompareForTrade(t *testing.T) {
	fs := []*domain.Fighter{
		{ID: "a", Role: "Tank", Attack: domain.Int(4), Defense: domain.Int(4), Speed: domain.Int(2), SubRole: "Paladin"},
		{ID: "b", Role: "Tank", Attack: domain.Int(3), Defense: domain.Int(4), Speed: domain.Int(2), SubRole: "Defender"},
		{ID: "c", Role: "DPS", Attack: domain.Int(6), Defense: domain.Int(2), Speed: domain.Int(3)},
		{ID: "d", Role: "Tank", Attack: domain.Int(1)},
	}

	check, err := fighters.CompareForTrade(fs, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !check.Approved() {
		t.Fatalf("expected a<->b to be approved, got %+v", check)
	}
	if check.A.Value != 11 || check.B.Value != 10 {
		t.Fatalf("expected values 11 and 10, got %d and %d", check.A.Value, check.B.Value)
	}

	check, err = fighters.CompareForTrade(fs, "a", "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.RoleLocked || check.Approved() {
		t.Fatalf("expected role mismatch to block the trade")
	}

	check, err = fighters.CompareForTrade(fs, "a", "d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.FairValue {
		t.Fatalf("expected ratio %.2f to be unfair", check.Ratio)
	}

	if _, err := fighters.CompareForTrade(fs, "a", "missing"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
	if _, err := fighters.CompareForTrade(fs, "a", "a"); err == nil {
		t.Fatalf("expected error for self trade")
	}
}
