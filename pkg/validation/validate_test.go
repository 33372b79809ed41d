package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		value  any
		valid  bool
	}{
		{name: "uuid ok", schema: UUID(), value: "7da3be64-90d2-48cf-abad-2aeb173ee24a", valid: true},
		{name: "uuid upper case", schema: UUID(), value: "7DA3BE64-90D2-48CF-ABAD-2AEB173EE24A", valid: true},
		{name: "uuid without dashes", schema: UUID(), value: "7da3be6490d248cfabad2aeb173ee24a", valid: false},
		{name: "uuid garbage", schema: UUID(), value: "not-a-uuid", valid: false},
		{name: "email ok", schema: Email(), value: "jane.smith@example.com", valid: true},
		{name: "email bad", schema: Email(), value: "jane.smith", valid: false},
		{name: "url ok", schema: URL(), value: "http://www.example.com/?via=adam", valid: true},
		{name: "url bad", schema: URL(), value: "www example", valid: false},
		{name: "datetime zulu", schema: DateTime(), value: "2023-01-01T12:00:00Z", valid: true},
		{name: "datetime millis", schema: DateTime(), value: "2022-10-12T14:54:52.148Z", valid: true},
		{name: "datetime offset", schema: DateTime(), value: "2022-10-12T14:54:52+02:00", valid: true},
		{name: "datetime date only", schema: DateTime(), value: "2022-10-12", valid: false},
		{name: "int from json number", schema: Int(), value: json.Number("42"), valid: true},
		{name: "int rejects fraction", schema: Int(), value: json.Number("4.2"), valid: false},
		{name: "int from go int", schema: Int(), value: 7, valid: true},
		{name: "number accepts fraction", schema: Number(), value: json.Number("4.2"), valid: true},
		{name: "number rejects string", schema: Number(), value: "1", valid: false},
		{name: "bool ok", schema: Bool(), value: true, valid: true},
		{name: "bool rejects string", schema: Bool(), value: "true", valid: false},
		{name: "enum member", schema: Enum("active", "inactive"), value: "active", valid: true},
		{name: "enum non member", schema: Enum("active", "inactive"), value: "archived", valid: false},
		{name: "literal", schema: Literal("sale"), value: "sale", valid: true},
		{name: "null rejected by default", schema: String(), value: nil, valid: false},
		{name: "null accepted when nullable", schema: String().Nullable(), value: nil, valid: true},
		{name: "any accepts null", schema: Any(), value: nil, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestNullableOptionalNullish(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		value   any
		present bool
		valid   bool
	}{
		{name: "nullable absent", schema: String().Nullable(), present: false, valid: false},
		{name: "nullable null", schema: String().Nullable(), value: nil, present: true, valid: true},
		{name: "optional absent", schema: String().Optional(), present: false, valid: true},
		{name: "optional null", schema: String().Optional(), value: nil, present: true, valid: false},
		{name: "nullish absent", schema: String().Nullish(), present: false, valid: true},
		{name: "nullish null", schema: String().Nullish(), value: nil, present: true, valid: true},
		{name: "nullish value", schema: String().Nullish(), value: "cus_X", present: true, valid: true},
		{name: "required absent", schema: String(), present: false, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.ValidateArg(tt.value, tt.present)
			assert.Equal(t, tt.valid, err == nil, "err = %v", err)
		})
	}
}

func TestObjectPassthroughAndPaths(t *testing.T) {
	link := Object(
		Prop("id", UUID()),
		Prop("visitors", Int()),
	)
	schema := Object(
		Prop("id", UUID()),
		Prop("state", Enum("active", "inactive")),
		Prop("links", Array(link).Optional()),
	)

	t.Run("unknown fields kept", func(t *testing.T) {
		v := decode(t, `{"id":"7da3be64-90d2-48cf-abad-2aeb173ee24a","state":"active","new_field":42}`)

		require.NoError(t, schema.Validate(v))
		assert.Equal(t, json.Number("42"), v.(map[string]any)["new_field"])
	})

	t.Run("nested issue paths", func(t *testing.T) {
		v := decode(t, `{"id":"7da3be64-90d2-48cf-abad-2aeb173ee24a","state":"archived","links":[{"id":"x","visitors":1}]}`)

		err := schema.Validate(v)
		require.Error(t, err)

		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))

		paths := make([]string, 0, len(schemaErr.Issues))
		for _, i := range schemaErr.Issues {
			paths = append(paths, i.Path)
		}
		assert.ElementsMatch(t, []string{"state", "links[0].id"}, paths)
		assert.Contains(t, err.Error(), `received "archived"`)
	})

	t.Run("strict rejects unknown", func(t *testing.T) {
		v := decode(t, `{"id":"7da3be64-90d2-48cf-abad-2aeb173ee24a","state":"active","extra":1}`)

		err := schema.Strict().Validate(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extra: unrecognized key")
	})

	t.Run("wrong container type", func(t *testing.T) {
		assert.Error(t, schema.Validate([]any{}))
		assert.Error(t, Array(Int()).Validate(map[string]any{}))
	})
}

func TestModifiersDoNotMutate(t *testing.T) {
	base := Object(Prop("name", String()))

	partial := base.Partial()
	extended := base.Extend(Prop("url", URL()))

	assert.Error(t, base.Validate(map[string]any{}))
	assert.NoError(t, partial.Validate(map[string]any{}))
	assert.Len(t, base.Properties(), 1)
	assert.Len(t, extended.Properties(), 2)

	named := base.Named("Campaign").Describe("campaign")
	assert.Empty(t, base.Name())
	assert.Equal(t, "Campaign", named.Name())
	assert.Equal(t, "campaign", named.Description())
}
