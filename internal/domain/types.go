package domain

// Fighter is a single entry from fighters.json.
//
// Stats are pointers so that an absent field can be told apart from an explicit zero;
// back-fill only ever fills nil stats.
type Fighter struct {
	ID      string
	Name    string
	Role    string
	SubRole string
	Attack  *int
	Defense *int
	Speed   *int
}

// Stat returns the value of a possibly absent stat, 0 when absent.
func Stat(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// Subrole is a stat template from subroles.json.
type Subrole struct {
	Name      string
	Attack    *int
	Defense   *int
	Speed     *int
	Precision *int
	HP        *int
	// Role is nil when the entry has no "role" field.
	Role *string
	// Roles is nil when the entry has no "roles" field; an explicit empty list is non-nil.
	Roles []string
	// Invalid maps a field name to why its value could not be read; such fields stay unset.
	Invalid map[string]string
}

func (s *Subrole) MarkInvalid(field, reason string) {
	if s.Invalid == nil {
		s.Invalid = make(map[string]string)
	}
	s.Invalid[field] = reason
}

// IsInvalid reports whether field was present but unreadable.
func (s Subrole) IsInvalid(field string) bool {
	_, ok := s.Invalid[field]
	return ok
}

// RoleName returns the single role of the template, "" when absent.
func (s Subrole) RoleName() string {
	if s.Role == nil {
		return ""
	}
	return *s.Role
}

// SubroleTable keeps subrole templates in file order.
type SubroleTable struct {
	names  []string
	byName map[string]Subrole
}

func NewSubroleTable() *SubroleTable {
	return &SubroleTable{byName: make(map[string]Subrole)}
}

// Put inserts or replaces a template. A replaced template keeps its original position.
func (t *SubroleTable) Put(s Subrole) {
	if _, ok := t.byName[s.Name]; !ok {
		t.names = append(t.names, s.Name)
	}
	t.byName[s.Name] = s
}

func (t *SubroleTable) Lookup(name string) (Subrole, bool) {
	if t == nil {
		return Subrole{}, false
	}
	s, ok := t.byName[name]
	return s, ok
}

// Names returns template names in file order.
func (t *SubroleTable) Names() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}

func (t *SubroleTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// ValueRow is one line of the fighter value table.
type ValueRow struct {
	ID      string
	Fighter *Fighter
	Bonus   int
	Value   int
}

// ValidationReport holds findings in the order they were produced.
type ValidationReport struct {
	Checked  int
	Errors   []string
	Warnings []string
}

// OK reports whether validation passed. Warnings never fail a report.
func (r ValidationReport) OK() bool {
	return len(r.Errors) == 0
}

// TradeCheck is the outcome of comparing two fighters for a trade.
type TradeCheck struct {
	A, B       ValueRow
	Ratio      float64
	RoleLocked bool
	FairValue  bool
}

// Approved reports whether the trade passes both role-lock and value-range checks.
func (c TradeCheck) Approved() bool {
	return c.RoleLocked && c.FairValue
}
