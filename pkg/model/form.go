package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mmeshcher/rewardful-client/pkg/validation"
)

// ErrUnsupportedFormValue возвращается, если тело запроса нельзя представить как плоскую форму.
var ErrUnsupportedFormValue = errors.New("unsupported form value")

// EncodeForm кодирует объект в application/x-www-form-urlencoded.
// Поддерживаются только скалярные поля; null кодируется пустым значением.
func EncodeForm(body any) (url.Values, error) {
	tree, err := validation.Normalize(body)
	if err != nil {
		return nil, err
	}

	obj, ok := tree.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body must be an object, got %T", ErrUnsupportedFormValue, tree)
	}

	values := make(url.Values, len(obj))
	for key, v := range obj {
		switch val := v.(type) {
		case nil:
			values.Set(key, "")
		case string:
			values.Set(key, val)
		case json.Number:
			values.Set(key, val.String())
		case bool:
			values.Set(key, strconv.FormatBool(val))
		default:
			return nil, fmt.Errorf("%w: field %q is %T", ErrUnsupportedFormValue, key, v)
		}
	}

	return values, nil
}

// DecodeForm восстанавливает типизированный объект из формы по схеме тела запроса.
// Поля, не описанные в схеме, остаются строками.
func DecodeForm(values url.Values, schema *validation.Schema) (map[string]any, error) {
	out := make(map[string]any, len(values))
	for key := range values {
		raw := values.Get(key)

		prop, ok := schema.Property(key)
		if !ok {
			out[key] = raw
			continue
		}

		if raw == "" && prop.IsNullable() {
			out[key] = nil
			continue
		}

		switch prop.Kind() {
		case validation.KindInteger, validation.KindNumber:
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("field %q: invalid number %q", key, raw)
			}
			out[key] = json.Number(raw)
		case validation.KindBoolean:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("field %q: invalid boolean %q", key, raw)
			}
			out[key] = b
		default:
			out[key] = raw
		}
	}

	return out, nil
}
