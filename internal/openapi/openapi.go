// Package openapi строит документ OpenAPI 3.0 по описаниям эндпоинтов клиента.
package openapi

import (
	"bytes"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/validation"
)

const (
	// Version: версия формата документа.
	Version = "3.0.0"

	securitySchemeName = "basicAuth"
	schemaRefPrefix    = "#/components/schemas/"
)

// Document: корень документа OpenAPI.
type Document struct {
	OpenAPI    string                `yaml:"openapi"`
	Info       Info                  `yaml:"info"`
	Servers    []Server              `yaml:"servers"`
	Security   []map[string][]string `yaml:"security"`
	Tags       []Tag                 `yaml:"tags,omitempty"`
	Paths      map[string]PathItem   `yaml:"paths"`
	Components Components            `yaml:"components"`
}

// Info: сведения об API.
type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// Server: адрес сервера API.
type Server struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
}

// Tag группирует операции.
type Tag struct {
	Name string `yaml:"name"`
}

// PathItem сопоставляет HTTP-методу в нижнем регистре его операцию.
type PathItem map[string]*Operation

// Operation: одна операция API.
type Operation struct {
	OperationID string              `yaml:"operationId"`
	Summary     string              `yaml:"summary,omitempty"`
	Description string              `yaml:"description,omitempty"`
	Tags        []string            `yaml:"tags,omitempty"`
	Parameters  []Parameter         `yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `yaml:"requestBody,omitempty"`
	Responses   map[string]Response `yaml:"responses"`
}

// Parameter: параметр пути или строки запроса.
type Parameter struct {
	Name        string  `yaml:"name"`
	In          string  `yaml:"in"`
	Description string  `yaml:"description,omitempty"`
	Required    bool    `yaml:"required"`
	Style       string  `yaml:"style,omitempty"`
	Explode     *bool   `yaml:"explode,omitempty"`
	Schema      *Schema `yaml:"schema"`
}

// RequestBody: тело запроса.
type RequestBody struct {
	Required bool                 `yaml:"required"`
	Content  map[string]MediaType `yaml:"content"`
}

// MediaType связывает тип содержимого со схемой.
type MediaType struct {
	Schema *Schema `yaml:"schema"`
}

// Response: описание ответа.
type Response struct {
	Description string               `yaml:"description"`
	Content     map[string]MediaType `yaml:"content,omitempty"`
}

// Schema: схема значения в терминах OpenAPI 3.0.
type Schema struct {
	Ref                  string             `yaml:"$ref,omitempty"`
	AllOf                []*Schema          `yaml:"allOf,omitempty"`
	Type                 string             `yaml:"type,omitempty"`
	Format               string             `yaml:"format,omitempty"`
	Enum                 []string           `yaml:"enum,omitempty"`
	Nullable             bool               `yaml:"nullable,omitempty"`
	Description          string             `yaml:"description,omitempty"`
	Example              any                `yaml:"example,omitempty"`
	Properties           map[string]*Schema `yaml:"properties,omitempty"`
	Required             []string           `yaml:"required,omitempty"`
	Items                *Schema            `yaml:"items,omitempty"`
	AdditionalProperties *bool              `yaml:"additionalProperties,omitempty"`
}

// Components: переиспользуемые схемы и схемы авторизации.
type Components struct {
	Schemas         map[string]*Schema        `yaml:"schemas,omitempty"`
	SecuritySchemes map[string]SecurityScheme `yaml:"securitySchemes"`
}

// SecurityScheme описывает способ авторизации.
type SecurityScheme struct {
	Type        string `yaml:"type"`
	Scheme      string `yaml:"scheme"`
	Description string `yaml:"description,omitempty"`
}

var pathParam = regexp.MustCompile(`:(\w+)`)

// Build собирает документ по описаниям эндпоинтов. Именованные схемы выносятся в components/schemas.
func Build(defs []endpoint.Definition, serverURL string) (*Document, error) {
	b := &builder{schemas: make(map[string]*Schema)}

	doc := &Document{
		OpenAPI: Version,
		Info: Info{
			Title:       "Rewardful API",
			Version:     "1.0.0",
			Description: "Affiliate management API. Authenticate with the API secret as the Basic auth username and an empty password.",
		},
		Servers:  []Server{{URL: serverURL}},
		Security: []map[string][]string{{securitySchemeName: {}}},
		Paths:    make(map[string]PathItem),
		Components: Components{
			Schemas: b.schemas,
			SecuritySchemes: map[string]SecurityScheme{
				securitySchemeName: {
					Type:        "http",
					Scheme:      "basic",
					Description: "API secret as username, empty password.",
				},
			},
		},
	}

	seenOps := make(map[string]bool, len(defs))
	seenTags := make(map[string]bool)
	for _, d := range defs {
		if seenOps[d.Alias] {
			return nil, fmt.Errorf("duplicate operation %s", d.Alias)
		}
		seenOps[d.Alias] = true

		if d.Tag != "" && !seenTags[d.Tag] {
			seenTags[d.Tag] = true
			doc.Tags = append(doc.Tags, Tag{Name: d.Tag})
		}

		path := pathParam.ReplaceAllString(d.Path, "{$1}")
		item, ok := doc.Paths[path]
		if !ok {
			item = make(PathItem)
			doc.Paths[path] = item
		}

		method := strings.ToLower(d.Method)
		if _, exists := item[method]; exists {
			return nil, fmt.Errorf("duplicate %s %s", d.Method, path)
		}
		item[method] = b.operation(d)
	}

	return doc, nil
}

// Marshal кодирует документ в YAML.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	return buf.Bytes(), nil
}

type builder struct {
	schemas map[string]*Schema
}

func (b *builder) operation(d endpoint.Definition) *Operation {
	op := &Operation{
		OperationID: d.Alias,
		Summary:     d.Summary,
		Description: d.Description,
		Responses:   make(map[string]Response),
	}
	if d.Tag != "" {
		op.Tags = []string{d.Tag}
	}

	for _, p := range d.Parameters {
		if p.Location == endpoint.LocationBody {
			op.RequestBody = &RequestBody{
				Required: !p.Schema.IsOptional(),
				Content: map[string]MediaType{
					d.RequestFormat.ContentType(): {Schema: b.schema(p.Schema)},
				},
			}
			continue
		}
		op.Parameters = append(op.Parameters, b.parameter(p))
	}

	success := Response{Description: "Successful response"}
	if d.Response != nil && d.Response.Kind() != validation.KindVoid {
		success.Content = jsonContent(b.schema(d.Response))
	}
	op.Responses[strconv.Itoa(d.SuccessStatus)] = success

	for _, e := range d.Errors {
		desc := e.Description
		if desc == "" {
			desc = http.StatusText(e.Status)
		}
		resp := Response{Description: desc}
		if e.Schema != nil && e.Schema.Kind() != validation.KindVoid {
			resp.Content = jsonContent(b.schema(e.Schema))
		}
		op.Responses[strconv.Itoa(e.Status)] = resp
	}

	return op
}

func (b *builder) parameter(p endpoint.Parameter) Parameter {
	out := Parameter{
		Name:        p.Name,
		In:          p.Location.String(),
		Description: p.Description,
		Required:    p.Location == endpoint.LocationPath || !p.Schema.IsOptional(),
		Schema:      b.schema(p.Schema),
	}
	if out.Description == "" {
		out.Description = p.Schema.Description()
	}

	if p.Schema.Kind() == validation.KindArray {
		explode := p.Style != endpoint.StyleComma
		out.Style = "form"
		out.Explode = &explode
		if p.Style == endpoint.StyleBrackets {
			out.Name = p.Name + "[]"
		}
	}
	return out
}

// schema переводит схему в OpenAPI. Именованная схема регистрируется один раз и далее подставляется ссылкой.
func (b *builder) schema(s *validation.Schema) *Schema {
	if s == nil {
		return nil
	}

	name := s.Name()
	if name == "" {
		return b.inline(s, s.IsNullable())
	}

	if _, ok := b.schemas[name]; !ok {
		b.schemas[name] = &Schema{}
		*b.schemas[name] = *b.inline(s, false)
	}

	ref := &Schema{Ref: schemaRefPrefix + name}
	if s.IsNullable() {
		return &Schema{AllOf: []*Schema{ref}, Nullable: true}
	}
	return ref
}

func (b *builder) inline(s *validation.Schema, nullable bool) *Schema {
	out := &Schema{
		Format:      string(s.Format()),
		Enum:        s.EnumValues(),
		Nullable:    nullable,
		Description: s.Description(),
		Example:     s.ExampleValue(),
	}

	switch s.Kind() {
	case validation.KindAny, validation.KindVoid:
	case validation.KindObject:
		out.Type = "object"
		out.Properties = make(map[string]*Schema, len(s.Properties()))
		for _, p := range s.Properties() {
			out.Properties[p.Name] = b.schema(p.Schema)
			if !p.Schema.IsOptional() {
				out.Required = append(out.Required, p.Name)
			}
		}
		if s.IsStrict() {
			no := false
			out.AdditionalProperties = &no
		}
	case validation.KindArray:
		out.Type = "array"
		out.Items = b.schema(s.Items())
		if out.Items == nil {
			out.Items = &Schema{}
		}
	default:
		out.Type = s.Kind().String()
	}

	return out
}

func jsonContent(s *Schema) map[string]MediaType {
	return map[string]MediaType{"application/json": {Schema: s}}
}
