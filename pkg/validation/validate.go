package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validate проверяет присутствующее значение, декодированное из JSON.
func (s *Schema) Validate(v any) error {
	return NewError(s.Check(v, true, ""))
}

// ValidateArg проверяет значение, которое может отсутствовать (например, параметр запроса).
func (s *Schema) ValidateArg(v any, present bool) error {
	return NewError(s.Check(v, present, ""))
}

// Check возвращает все нарушения схемы, найденные в значении; path добавляется к путям нарушений.
func (s *Schema) Check(v any, present bool, path string) []Issue {
	var issues []Issue
	s.check(v, present, path, &issues)
	return issues
}

func (s *Schema) check(v any, present bool, path string, issues *[]Issue) {
	if !present {
		if s.optional || s.kind == KindVoid {
			return
		}
		addIssue(issues, path, "required")
		return
	}

	if v == nil {
		if s.nullable || s.kind == KindAny || s.kind == KindVoid {
			return
		}
		addIssue(issues, path, "expected %s, received null", s.kind)
		return
	}

	switch s.kind {
	case KindAny, KindVoid:
		return
	case KindString:
		s.checkString(v, path, issues)
	case KindNumber, KindInteger:
		s.checkNumber(v, path, issues)
	case KindBoolean:
		if _, ok := v.(bool); !ok {
			addIssue(issues, path, "expected boolean, received %s", typeName(v))
		}
	case KindObject:
		s.checkObject(v, path, issues)
	case KindArray:
		s.checkArray(v, path, issues)
	}
}

func (s *Schema) checkString(v any, path string, issues *[]Issue) {
	str, ok := v.(string)
	if !ok {
		addIssue(issues, path, "expected string, received %s", typeName(v))
		return
	}

	if len(s.enum) > 0 {
		for _, e := range s.enum {
			if e == str {
				return
			}
		}
		addIssue(issues, path, "expected one of [%s], received %q", strings.Join(s.enum, ", "), str)
		return
	}

	if !checkFormat(s.format, str) {
		addIssue(issues, path, "invalid %s: %q", s.format, str)
	}
}

func (s *Schema) checkNumber(v any, path string, issues *[]Issue) {
	f, ok := toFloat(v)
	if !ok {
		addIssue(issues, path, "expected %s, received %s", s.kind, typeName(v))
		return
	}
	if s.kind == KindInteger && (math.IsInf(f, 0) || f != math.Trunc(f)) {
		addIssue(issues, path, "expected integer, received %v", v)
	}
}

func (s *Schema) checkObject(v any, path string, issues *[]Issue) {
	m, ok := v.(map[string]any)
	if !ok {
		addIssue(issues, path, "expected object, received %s", typeName(v))
		return
	}

	for _, p := range s.props {
		val, present := m[p.Name]
		p.Schema.check(val, present, joinPath(path, p.Name), issues)
	}

	if !s.strict {
		return
	}
	for key := range m {
		if _, declared := s.Property(key); !declared {
			addIssue(issues, joinPath(path, key), "unrecognized key")
		}
	}
}

func (s *Schema) checkArray(v any, path string, issues *[]Issue) {
	items, ok := v.([]any)
	if !ok {
		addIssue(issues, path, "expected array, received %s", typeName(v))
		return
	}
	if s.items == nil {
		return
	}
	for i, item := range items {
		s.items.check(item, true, path+"["+strconv.Itoa(i)+"]", issues)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func addIssue(issues *[]Issue, path, format string, args ...any) {
	*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Normalize переводит произвольное Go-значение в дерево JSON (map[string]any, []any, json.Number, string, bool, nil),
// с которым работают схемы.
func Normalize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return out, nil
}
