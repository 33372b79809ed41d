// Package endpoint описывает эндпоинты API Rewardful как данные: метод, путь, параметры и схемы ответов.
// Диспетчер в пакете rewardful и генератор OpenAPI читают эти описания и не зависят друг от друга.
package endpoint

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/mmeshcher/rewardful-client/pkg/model"
	"github.com/mmeshcher/rewardful-client/pkg/validation"
)

// Location определяет, где передаётся параметр.
type Location int

const (
	LocationPath Location = iota
	LocationQuery
	LocationBody
)

func (l Location) String() string {
	switch l {
	case LocationPath:
		return "path"
	case LocationQuery:
		return "query"
	case LocationBody:
		return "body"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// Style задаёт кодирование массива в строке запроса.
type Style int

const (
	// StyleForm: key=value; массив повторяет ключ: key=a&key=b.
	StyleForm Style = iota
	// StyleBrackets: key[]=a&key[]=b, как ожидает API для фильтров состояния и expand.
	StyleBrackets
	// StyleComma: key=a,b.
	StyleComma
)

// Encoding: формат тела запроса.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingForm Encoding = "form-url"
)

// ContentType возвращает заголовок Content-Type для формата тела.
func (e Encoding) ContentType() string {
	if e == EncodingJSON {
		return "application/json"
	}
	return "application/x-www-form-urlencoded"
}

// BodyParam: имя параметра, под которым передаётся тело запроса.
const BodyParam = "body"

// Parameter описывает один параметр эндпоинта.
type Parameter struct {
	Name        string
	Location    Location
	Schema      *validation.Schema
	Style       Style
	Description string
}

// ErrorSpec описывает документированный ответ с ошибкой.
type ErrorSpec struct {
	Status      int
	Description string
	Schema      *validation.Schema
}

// Definition: описание одного эндпоинта.
type Definition struct {
	Method        string
	Path          string
	Alias         string
	Tag           string
	Summary       string
	Description   string
	RequestFormat Encoding
	Parameters    []Parameter
	SuccessStatus int
	Response      *validation.Schema
	Errors        []ErrorSpec
}

// Param ищет параметр по имени.
func (d Definition) Param(name string) (Parameter, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// ParamsIn возвращает параметры в указанном месте запроса в порядке объявления.
func (d Definition) ParamsIn(loc Location) []Parameter {
	var out []Parameter
	for _, p := range d.Parameters {
		if p.Location == loc {
			out = append(out, p)
		}
	}
	return out
}

// Body возвращает параметр тела запроса, если он объявлен.
func (d Definition) Body() (Parameter, bool) {
	params := d.ParamsIn(LocationBody)
	if len(params) == 0 {
		return Parameter{}, false
	}
	return params[0], true
}

// ErrorFor возвращает описание ошибки для статуса, если оно задокументировано.
func (d Definition) ErrorFor(status int) (ErrorSpec, bool) {
	for _, e := range d.Errors {
		if e.Status == status {
			return e, true
		}
	}
	return ErrorSpec{}, false
}

// PathVars возвращает имена подстановок :name в шаблоне пути.
func (d Definition) PathVars() []string {
	var vars []string
	for _, seg := range strings.Split(d.Path, "/") {
		if strings.HasPrefix(seg, ":") {
			vars = append(vars, seg[1:])
		}
	}
	return vars
}

// Check проверяет согласованность описания: каждая подстановка пути объявлена параметром, тело не больше одного.
func (d Definition) Check() error {
	if d.Alias != Alias(d.Method, d.Path) {
		return fmt.Errorf("%s %s: alias %q, want %q", d.Method, d.Path, d.Alias, Alias(d.Method, d.Path))
	}

	vars := d.PathVars()
	declared := d.ParamsIn(LocationPath)
	if len(vars) != len(declared) {
		return fmt.Errorf("%s: %d path placeholders, %d path parameters", d.Alias, len(vars), len(declared))
	}
	for _, name := range vars {
		p, ok := d.Param(name)
		if !ok || p.Location != LocationPath {
			return fmt.Errorf("%s: path placeholder %q has no path parameter", d.Alias, name)
		}
	}

	if len(d.ParamsIn(LocationBody)) > 1 {
		return fmt.Errorf("%s: more than one body parameter", d.Alias)
	}
	if d.Response == nil {
		return fmt.Errorf("%s: no response schema", d.Alias)
	}
	return nil
}

var nonWord = regexp.MustCompile(`\W`)

// Alias строит имя вызова из метода и пути: GET /affiliates/:id → getAffiliatesId,
// GET /affiliates/:id/sso → getAffiliatesIdsso. Заглавными становятся первый сегмент и подстановки.
func Alias(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))

	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range segments {
		switch {
		case strings.HasPrefix(seg, ":"):
			seg = capitalize(seg[1:])
		case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}"):
			seg = capitalize(strings.Trim(seg, "{}"))
		case i == 0:
			seg = capitalize(kebabToCamel(seg))
		default:
			seg = kebabToCamel(seg)
		}
		b.WriteString(nonWord.ReplaceAllString(seg, ""))
	}

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func kebabToCamel(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		parts[i] = capitalize(parts[i])
	}
	return strings.Join(parts, "")
}

// Общие параметры и ошибки.
var (
	idParam = Parameter{Name: "id", Location: LocationPath, Schema: model.IDParam}

	affiliateIDQuery = Parameter{Name: "affiliate_id", Location: LocationQuery, Schema: model.AffiliateIDQuery}
	pageQuery        = Parameter{Name: "page", Location: LocationQuery, Schema: model.PageQuery}
	limitQuery       = Parameter{Name: "limit", Location: LocationQuery, Schema: model.LimitQuery}
)

func body(schema *validation.Schema) Parameter {
	return Parameter{Name: BodyParam, Location: LocationBody, Schema: schema}
}

func badRequest() ErrorSpec {
	return ErrorSpec{Status: http.StatusBadRequest, Description: "Bad Request - Invalid input data", Schema: model.ErrorResponseSchema}
}

func unauthorized() ErrorSpec {
	return ErrorSpec{Status: http.StatusUnauthorized, Description: "Unauthorized - Invalid API key or permissions", Schema: model.ErrorResponseSchema}
}

func notFound(resource string) ErrorSpec {
	return ErrorSpec{Status: http.StatusNotFound, Description: resource + " not found", Schema: model.ErrorResponseSchema}
}

// bodiless снимает описание тела с ошибок: API не обещает для них ErrorResponse.
func bodiless(errs ...ErrorSpec) []ErrorSpec {
	for i := range errs {
		errs[i].Schema = validation.Void()
	}
	return errs
}

var registry = func() []Definition {
	var defs []Definition
	for _, group := range [][]Definition{
		affiliates(),
		campaigns(),
		commissions(),
		payouts(),
		referrals(),
		affiliateCoupons(),
		affiliateLinks(),
	} {
		for _, d := range group {
			if d.Alias == "" {
				d.Alias = Alias(d.Method, d.Path)
			}
			if d.SuccessStatus == 0 {
				d.SuccessStatus = http.StatusOK
			}
			if d.RequestFormat == "" {
				d.RequestFormat = EncodingJSON
			}
			defs = append(defs, d)
		}
	}
	return defs
}()

// All возвращает копию всех описаний в порядке объявления.
func All() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// Lookup ищет описание по имени вызова.
func Lookup(alias string) (Definition, bool) {
	for _, d := range registry {
		if d.Alias == alias {
			return d, true
		}
	}
	return Definition{}, false
}
