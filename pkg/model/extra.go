package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

var knownFieldsCache sync.Map

// knownFields возвращает множество JSON-имён полей структуры.
func knownFields(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFieldsCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" || !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fields[name] = struct{}{}
	}

	knownFieldsCache.Store(t, fields)
	return fields
}

// unmarshalWithExtra декодирует объявленные поля в dst, а остальные складывает в extra.
func unmarshalWithExtra(data []byte, dst any, extra *map[string]any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	known := knownFields(reflect.TypeOf(dst).Elem())
	for k, v := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		if *extra == nil {
			*extra = make(map[string]any)
		}
		(*extra)[k] = v
	}

	return nil
}

// marshalWithExtra кодирует src и добавляет к нему сохранённые неизвестные поля.
func marshalWithExtra(src any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(src)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
