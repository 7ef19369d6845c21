package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aurceive/fighter-tools/internal/domain"

	"github.com/tidwall/gjson"
)

const (
	FightersFile = "fighters.json"
	SubrolesFile = "subroles.json"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrNotObject = errors.New("must contain a JSON object at the top level")
)

type entry struct {
	Key    string
	Fields map[string]any
}

// readObject loads a JSON file whose top-level value must be an object of objects.
// Entries come back in file order; a repeated key keeps its first position and its last value.
func readObject(path string) ([]entry, error) {
	name := filepath.Base(path)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s %w in %s (expected file at %s)", name, ErrNotFound, filepath.Dir(path), path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("parse %s: invalid JSON", name)
	}
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return nil, fmt.Errorf("%s %w", name, ErrNotObject)
	}

	var out []entry
	pos := make(map[string]int)
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if !value.IsObject() {
			decodeErr = fmt.Errorf("%s: entry %q must be a JSON object", name, k)
			return false
		}
		fields, err := decodeFields(value.Raw)
		if err != nil {
			decodeErr = fmt.Errorf("%s: entry %q: %w", name, k, err)
			return false
		}
		if i, ok := pos[k]; ok {
			out[i].Fields = fields
			return true
		}
		pos[k] = len(out)
		out = append(out, entry{Key: k, Fields: fields})
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return out, nil
}

func decodeFields(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// LoadFighters reads fighters.json-shaped data. Fighters are returned in file order.
func LoadFighters(path string) ([]*domain.Fighter, error) {
	entries, err := readObject(path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)

	fighters := make([]*domain.Fighter, 0, len(entries))
	for _, e := range entries {
		f := &domain.Fighter{
			ID:      e.Key,
			Name:    textOf(e.Fields["name"]),
			Role:    textOf(e.Fields["role"]),
			SubRole: textOf(e.Fields["subRole"]),
		}
		stats := []struct {
			field string
			dst   **int
		}{
			{"attack", &f.Attack},
			{"defense", &f.Defense},
			{"speed", &f.Speed},
		}
		for _, s := range stats {
			v, ok, err := optionalInt(e.Fields, s.field)
			if err != nil {
				return nil, fmt.Errorf("%s: fighter %q: %s: %w", name, e.Key, s.field, err)
			}
			if ok {
				*s.dst = domain.Int(v)
			}
		}
		fighters = append(fighters, f)
	}
	return fighters, nil
}

// LoadSubroles reads subroles.json-shaped data. A field that cannot be coerced does not fail
// the load: it is left unset and recorded in Subrole.Invalid, so each tool decides what it needs.
func LoadSubroles(path string) (*domain.SubroleTable, error) {
	entries, err := readObject(path)
	if err != nil {
		return nil, err
	}

	table := domain.NewSubroleTable()
	for _, e := range entries {
		s := domain.Subrole{Name: e.Key}
		stats := []struct {
			field string
			dst   **int
		}{
			{"attack", &s.Attack},
			{"defense", &s.Defense},
			{"speed", &s.Speed},
			{"precision", &s.Precision},
			{"hp", &s.HP},
		}
		for _, st := range stats {
			v, ok, err := optionalInt(e.Fields, st.field)
			if err != nil {
				s.MarkInvalid(st.field, err.Error())
				continue
			}
			if ok {
				*st.dst = domain.Int(v)
			}
		}
		if v, ok := e.Fields["role"]; ok && v != nil {
			role := textOf(v)
			s.Role = &role
		}
		if v, ok := e.Fields["roles"]; ok && v != nil {
			roles, err := stringList(v)
			if err != nil {
				s.MarkInvalid("roles", err.Error())
			} else {
				s.Roles = roles
			}
		}
		table.Put(s)
	}
	return table, nil
}
