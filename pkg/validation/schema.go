// Package validation содержит декларативные схемы для структурной проверки JSON-значений.
package validation

// Kind описывает базовый тип значения, ожидаемый схемой.
type Kind int

const (
	KindAny Kind = iota
	KindVoid
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindObject
	KindArray
)

// String возвращает имя типа в терминах JSON Schema.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "any"
	}
}

// Format уточняет допустимое содержимое строкового значения.
type Format string

const (
	FormatNone     Format = ""
	FormatUUID     Format = "uuid"
	FormatEmail    Format = "email"
	FormatURL      Format = "uri"
	FormatDateTime Format = "date-time"
)

// Property описывает одно объявленное поле объекта.
type Property struct {
	Name   string
	Schema *Schema
}

// Prop создаёт описание поля объекта.
func Prop(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

// Schema: неизменяемое описание формы значения.
// Модификаторы возвращают копию, поэтому одну схему можно безопасно переиспользовать в разных сущностях.
type Schema struct {
	kind        Kind
	format      Format
	enum        []string
	props       []Property
	items       *Schema
	nullable    bool
	optional    bool
	strict      bool
	name        string
	description string
	example     any
}

// Any принимает любое значение.
func Any() *Schema { return &Schema{kind: KindAny} }

// Void используется там, где тело ответа не описано и не проверяется.
func Void() *Schema { return &Schema{kind: KindVoid} }

// String принимает любую строку.
func String() *Schema { return &Schema{kind: KindString} }

// UUID принимает строку в каноническом виде UUID.
func UUID() *Schema { return &Schema{kind: KindString, format: FormatUUID} }

// Email принимает строку с адресом электронной почты.
func Email() *Schema { return &Schema{kind: KindString, format: FormatEmail} }

// URL принимает абсолютный URL.
func URL() *Schema { return &Schema{kind: KindString, format: FormatURL} }

// DateTime принимает отметку времени ISO-8601 с указанием зоны (Z или смещение).
func DateTime() *Schema { return &Schema{kind: KindString, format: FormatDateTime} }

// Number принимает любое число.
func Number() *Schema { return &Schema{kind: KindNumber} }

// Int принимает только целые числа.
func Int() *Schema { return &Schema{kind: KindInteger} }

// Bool принимает true или false.
func Bool() *Schema { return &Schema{kind: KindBoolean} }

// Enum принимает строку из фиксированного набора значений.
func Enum(values ...string) *Schema {
	return &Schema{kind: KindString, enum: append([]string(nil), values...)}
}

// Literal принимает ровно одно строковое значение.
func Literal(value string) *Schema { return Enum(value) }

// Object описывает объект с перечисленными полями. Неизвестные поля сохраняются.
func Object(props ...Property) *Schema {
	return &Schema{kind: KindObject, props: append([]Property(nil), props...)}
}

// Array описывает массив элементов одной схемы.
func Array(item *Schema) *Schema { return &Schema{kind: KindArray, items: item} }

func (s *Schema) clone() *Schema {
	c := *s
	return &c
}

// Nullable разрешает явное значение null (но не отсутствие поля).
func (s *Schema) Nullable() *Schema {
	c := s.clone()
	c.nullable = true
	return c
}

// Optional разрешает отсутствие поля (но не null).
func (s *Schema) Optional() *Schema {
	c := s.clone()
	c.optional = true
	return c
}

// Nullish разрешает и отсутствие поля, и null.
func (s *Schema) Nullish() *Schema {
	c := s.clone()
	c.nullable = true
	c.optional = true
	return c
}

// Partial делает все поля объекта необязательными.
func (s *Schema) Partial() *Schema {
	c := s.clone()
	c.props = make([]Property, len(s.props))
	for i, p := range s.props {
		c.props[i] = Property{Name: p.Name, Schema: p.Schema.Optional()}
	}
	return c
}

// Extend возвращает объект с добавленными или заменёнными полями.
func (s *Schema) Extend(props ...Property) *Schema {
	c := s.clone()
	c.props = append([]Property(nil), s.props...)
	for _, p := range props {
		replaced := false
		for i := range c.props {
			if c.props[i].Name == p.Name {
				c.props[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			c.props = append(c.props, p)
		}
	}
	return c
}

// Strict запрещает поля, не объявленные в схеме.
func (s *Schema) Strict() *Schema {
	c := s.clone()
	c.strict = true
	return c
}

// Named задаёт имя схемы для раздела components/schemas документа OpenAPI.
func (s *Schema) Named(name string) *Schema {
	c := s.clone()
	c.name = name
	return c
}

// Describe задаёт описание для документации.
func (s *Schema) Describe(text string) *Schema {
	c := s.clone()
	c.description = text
	return c
}

// Example задаёт пример значения для документации.
func (s *Schema) Example(v any) *Schema {
	c := s.clone()
	c.example = v
	return c
}

func (s *Schema) Kind() Kind { return s.kind }
func (s *Schema) Format() Format { return s.format }
func (s *Schema) EnumValues() []string { return s.enum }
func (s *Schema) Properties() []Property { return s.props }
func (s *Schema) Items() *Schema { return s.items }
func (s *Schema) IsNullable() bool { return s.nullable }
func (s *Schema) IsOptional() bool { return s.optional }
func (s *Schema) IsStrict() bool { return s.strict }
func (s *Schema) Name() string { return s.name }
func (s *Schema) Description() string { return s.description }
func (s *Schema) ExampleValue() any { return s.example }

// Property возвращает схему объявленного поля объекта.
func (s *Schema) Property(name string) (*Schema, bool) {
	for _, p := range s.props {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}
