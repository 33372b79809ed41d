package rewardful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
	"github.com/mmeshcher/rewardful-client/pkg/model"
	"github.com/mmeshcher/rewardful-client/pkg/validation"
)

// Args: аргументы вызова: значения подстановок пути, параметры строки запроса и тело.
type Args struct {
	Path  map[string]any
	Query map[string]any
	Body  any
}

type response struct {
	status int
	raw    []byte
	tree   any
}

// Call выполняет эндпоинт по имени вызова и возвращает проверенное тело ответа в виде дерева JSON
// (map[string]any, []any, json.Number, string, bool). Поля, не описанные схемой, сохраняются.
func (c *Client) Call(ctx context.Context, alias string, args Args) (any, error) {
	resp, err := c.call(ctx, alias, args)
	if err != nil {
		return nil, err
	}
	return resp.tree, nil
}

// invoke выполняет вызов и декодирует проверенное тело в out.
func (c *Client) invoke(ctx context.Context, alias string, args Args, out any) error {
	resp, err := c.call(ctx, alias, args)
	if err != nil {
		return err
	}
	if out == nil || len(resp.raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", alias, err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, alias string, args Args) (*response, error) {
	def, ok := c.endpoints[alias]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, alias)
	}

	req, err := c.buildRequest(ctx, def, args)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(alias, 0, start, err)
		c.logger.Debug("rewardful request failed",
			zap.String("alias", alias), zap.String("method", def.Method), zap.String("path", req.URL.Path), zap.Error(err))
		return nil, fmt.Errorf("%s: do request: %w", alias, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(alias, resp.StatusCode, start, err)
		return nil, fmt.Errorf("%s: read response: %w", alias, err)
	}

	c.logger.Debug("rewardful request",
		zap.String("alias", alias),
		zap.String("method", def.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	result, err := c.handleResponse(def, resp.StatusCode, raw)
	c.observe(alias, resp.StatusCode, start, err)
	return result, err
}

func (c *Client) observe(alias string, status int, start time.Time, err error) {
	if c.observer != nil {
		c.observer.ObserveCall(alias, status, time.Since(start), err)
	}
}

func (c *Client) handleResponse(def endpoint.Definition, status int, raw []byte) (*response, error) {
	if status >= 200 && status < 300 {
		tree, present, err := decodeTree(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: decode response: %w", def.Alias, err)
		}
		if err := def.Response.ValidateArg(tree, present); err != nil {
			return nil, fmt.Errorf("%s: invalid response: %w", def.Alias, err)
		}
		return &response{status: status, raw: raw, tree: tree}, nil
	}

	spec, declared := def.ErrorFor(status)
	if !declared {
		c.logger.Warn("undeclared response status", zap.String("alias", def.Alias), zap.Int("status", status))
		return nil, &HTTPError{Status: status, Body: raw}
	}

	bodiless := spec.Schema.Kind() == validation.KindVoid
	tree, present, err := decodeTree(raw)
	if err != nil {
		if !bodiless {
			return nil, &HTTPError{Status: status, Body: raw, Err: err}
		}
		tree, present = nil, false
	}
	if err := spec.Schema.ValidateArg(tree, present); err != nil {
		return nil, &HTTPError{Status: status, Body: raw, Err: err}
	}

	apiErr := &APIError{Status: status, Body: raw}
	if obj, ok := tree.(map[string]any); ok {
		apiErr.Message, _ = obj["error"].(string)
	}
	return nil, apiErr
}

func decodeTree(raw []byte) (any, bool, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, true, err
	}
	return tree, true, nil
}

// buildRequest проверяет аргументы по схемам и собирает HTTP-запрос. Ошибка проверки возвращается до обращения к сети.
func (c *Client) buildRequest(ctx context.Context, def endpoint.Definition, args Args) (*http.Request, error) {
	pathArgs, queryArgs, body, err := normalizeArgs(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", def.Alias, err)
	}

	if err := checkArgs(def, pathArgs, queryArgs, body, args.Body != nil); err != nil {
		return nil, fmt.Errorf("%s: %w", def.Alias, err)
	}

	target := c.baseURL + expandPath(def.Path, pathArgs)
	if q := encodeQuery(def, queryArgs); q != "" {
		target += "?" + q
	}

	var (
		reader      io.Reader
		contentType = endpoint.EncodingForm.ContentType()
	)
	if args.Body != nil {
		switch def.RequestFormat {
		case endpoint.EncodingJSON:
			data, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("%s: encode body: %w", def.Alias, err)
			}
			reader = bytes.NewReader(data)
			contentType = endpoint.EncodingJSON.ContentType()
		default:
			values, err := model.EncodeForm(body)
			if err != nil {
				return nil, fmt.Errorf("%s: encode body: %w", def.Alias, err)
			}
			reader = strings.NewReader(values.Encode())
		}
	}

	req, err := http.NewRequestWithContext(ctx, def.Method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", def.Alias, err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func normalizeArgs(args Args) (map[string]any, map[string]any, any, error) {
	pathArgs, err := normalizeMap(args.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("path parameters: %w", err)
	}
	queryArgs, err := normalizeMap(args.Query)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("query parameters: %w", err)
	}
	body, err := validation.Normalize(args.Body)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("body: %w", err)
	}
	return pathArgs, queryArgs, body, nil
}

func normalizeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		n, err := validation.Normalize(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = n
	}
	return out, nil
}

func checkArgs(def endpoint.Definition, pathArgs, queryArgs map[string]any, body any, hasBody bool) error {
	var issues []validation.Issue

	for _, p := range def.Parameters {
		switch p.Location {
		case endpoint.LocationPath:
			v, present := pathArgs[p.Name]
			issues = append(issues, p.Schema.Check(v, present, p.Name)...)
			if present {
				if _, ok := v.(string); !ok && v != nil {
					issues = append(issues, validation.Issue{Path: p.Name, Message: "path parameter must be a string"})
				}
			}
		case endpoint.LocationQuery:
			v, present := queryArgs[p.Name]
			issues = append(issues, p.Schema.Check(v, present, p.Name)...)
		case endpoint.LocationBody:
			issues = append(issues, p.Schema.Check(body, hasBody, endpoint.BodyParam)...)
		}
	}

	issues = append(issues, undeclared(def, endpoint.LocationPath, pathArgs)...)
	issues = append(issues, undeclared(def, endpoint.LocationQuery, queryArgs)...)
	if _, ok := def.Body(); !ok && hasBody {
		issues = append(issues, validation.Issue{Path: endpoint.BodyParam, Message: "endpoint takes no request body"})
	}

	return validation.NewError(issues)
}

func undeclared(def endpoint.Definition, loc endpoint.Location, args map[string]any) []validation.Issue {
	var issues []validation.Issue
	for _, name := range sortedKeys(args) {
		if p, ok := def.Param(name); !ok || p.Location != loc {
			issues = append(issues, validation.Issue{Path: name, Message: "unrecognized " + loc.String() + " parameter"})
		}
	}
	return issues
}

func expandPath(tmpl string, args map[string]any) string {
	segments := strings.Split(tmpl, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if v, ok := args[seg[1:]].(string); ok {
			segments[i] = url.PathEscape(v)
		}
	}
	return strings.Join(segments, "/")
}

// encodeQuery кодирует параметры в порядке объявления; массивы кодируются по стилю параметра.
func encodeQuery(def endpoint.Definition, args map[string]any) string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}

	for _, p := range def.ParamsIn(endpoint.LocationQuery) {
		v, ok := args[p.Name]
		if !ok || v == nil {
			continue
		}

		items, isArray := v.([]any)
		if !isArray {
			add(p.Name, scalarString(v))
			continue
		}

		switch p.Style {
		case endpoint.StyleBrackets:
			for _, item := range items {
				add(p.Name+"[]", scalarString(item))
			}
		case endpoint.StyleComma:
			values := make([]string, 0, len(items))
			for _, item := range items {
				values = append(values, scalarString(item))
			}
			add(p.Name, strings.Join(values, ","))
		default:
			for _, item := range items {
				add(p.Name, scalarString(item))
			}
		}
	}

	return strings.Join(parts, "&")
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
