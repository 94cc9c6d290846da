package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/openbim/propkit/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

const (
	metaKeySchema = "schema"
	metaKeyNextID = "next_id"
)

// refKey marks an entity reference in the JSON attribute encoding.
const refKey = "$ref"

// Write persists the whole model to a SQLite file in one transaction,
// replacing any previous contents of the file.
func Write(m *Model, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entities`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM meta`); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?), (?, ?)`,
		metaKeySchema, m.schema, metaKeyNextID, strconv.FormatInt(m.nextID, 10)); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO entities (id, type, attrs) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, id := range m.sortedIDs() {
		e := m.entities[id]
		attrs, err := encodeAttrs(e.attrs)
		if err != nil {
			return fmt.Errorf("entity #%d: %w", id, err)
		}
		if _, err := stmt.Exec(e.id, e.etype, attrs); err != nil {
			return fmt.Errorf("entity #%d: %w", id, err)
		}
	}

	return tx.Commit()
}

// Load reads a model from a SQLite file. References are resolved in a
// second pass once every entity exists.
func Load(path string) (*Model, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("model file %s: %w", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	m := NewModel("")
	if err := loadMeta(db, m); err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, type, attrs FROM entities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("read entities: %w", err)
	}
	defer rows.Close()

	raw := make(map[int64]map[string]any)
	for rows.Next() {
		var (
			id    int64
			etype string
			attrs string
		)
		if err := rows.Scan(&id, &etype, &attrs); err != nil {
			return nil, err
		}
		decoded, err := decodeAttrs(attrs)
		if err != nil {
			return nil, fmt.Errorf("entity #%d: %w", id, err)
		}
		m.entities[id] = &entity{id: id, etype: etype, attrs: make(map[string]any)}
		raw[id] = decoded
		if id > m.nextID {
			m.nextID = id
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for id, attrs := range raw {
		e := m.entities[id]
		for name, v := range attrs {
			resolved, err := resolveRefs(m, v)
			if err != nil {
				return nil, fmt.Errorf("entity #%d attribute %s: %w", id, name, err)
			}
			e.attrs[name] = resolved
		}
	}

	m.resetModified()
	return m, nil
}

func loadMeta(db *sql.DB, m *Model) error {
	rows, err := db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return fmt.Errorf("read meta: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		switch key {
		case metaKeySchema:
			m.schema = value
		case metaKeyNextID:
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				m.nextID = n
			}
		}
	}
	return rows.Err()
}

// encodeAttrs renders an attribute map as JSON. Entity references become
// {"$ref": id} objects, lists of references become arrays of them.
func encodeAttrs(attrs map[string]any) (string, error) {
	out := make(map[string]any, len(attrs))
	for name, v := range attrs {
		enc, err := encodeValue(v)
		if err != nil {
			return "", fmt.Errorf("attribute %s: %w", name, err)
		}
		out[name] = enc
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func encodeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case types.Entity:
		return map[string]any{refKey: val.ID()}, nil
	case []types.Entity:
		list := make([]any, len(val))
		for i, e := range val {
			if e == nil {
				return nil, fmt.Errorf("nil entity in list")
			}
			list[i] = map[string]any{refKey: e.ID()}
		}
		return list, nil
	case bool, string, int64, float64, int, int32, float32:
		return val, nil
	}
	return nil, fmt.Errorf("unsupported attribute value %T", v)
}

// decodeAttrs parses the JSON attribute encoding, keeping references as
// placeholder maps for the resolve pass. Numbers decode to int64 when they
// carry no fraction or exponent, float64 otherwise.
func decodeAttrs(data string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	for name, v := range out {
		out[name] = decodeNumbers(v)
	}
	return out, nil
}

func decodeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		s := val.String()
		if !strings.ContainsAny(s, ".eE") {
			if n, err := val.Int64(); err == nil {
				return n
			}
		}
		f, _ := val.Float64()
		return f
	case []any:
		for i, item := range val {
			val[i] = decodeNumbers(item)
		}
		return val
	case map[string]any:
		for k, item := range val {
			val[k] = decodeNumbers(item)
		}
		return val
	}
	return v
}

// resolveRefs replaces {"$ref": id} placeholders with live entities.
func resolveRefs(m *Model, v any) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		id, ok := refID(val)
		if !ok {
			return nil, fmt.Errorf("unexpected object value")
		}
		target, found := m.entities[id]
		if !found {
			return nil, fmt.Errorf("dangling reference to #%d", id)
		}
		return types.Entity(target), nil
	case []any:
		list := make([]types.Entity, 0, len(val))
		for _, item := range val {
			resolved, err := resolveRefs(m, item)
			if err != nil {
				return nil, err
			}
			e, ok := resolved.(types.Entity)
			if !ok {
				return nil, fmt.Errorf("non-reference in entity list")
			}
			list = append(list, e)
		}
		return list, nil
	}
	return v, nil
}

func refID(obj map[string]any) (int64, bool) {
	if len(obj) != 1 {
		return 0, false
	}
	v, ok := obj[refKey]
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	return n, ok
}
