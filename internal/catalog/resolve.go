package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/yosida95/uritemplate/v3"

	apperrors "github.com/olgasafonova/reddit-mcp-server/internal/errors"
)

// Form and JSON content types used for request bodies.
const (
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"
)

// Request is a descriptor resolved against concrete arguments, ready to be sent.
type Request struct {
	Method      string
	Path        string // expanded and escaped
	Query       url.Values
	Body        []byte
	ContentType string
}

// URITemplate converts the :name placeholders of a descriptor path into an
// RFC 6570 template. Reserved params use {+name} so slashes survive expansion.
func URITemplate(d *Descriptor) string {
	return placeholderRe.ReplaceAllStringFunc(d.Path, func(m string) string {
		name := m[1:]
		if p, ok := d.Param(name); ok && p.Reserved {
			return "{+" + name + "}"
		}
		return "{" + name + "}"
	})
}

// Resolve validates args against the descriptor and builds the outgoing request.
// Missing required parameters and unknown argument names fail with a
// ValidationError before anything is sent.
func Resolve(d *Descriptor, args map[string]any) (Request, error) {
	if err := checkArgs(d, args); err != nil {
		return Request{}, err
	}

	path, err := expandPath(d, args)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		Method: d.Method,
		Path:   path,
		Query:  url.Values{},
	}

	form := url.Values{}
	jsonBody := make(map[string]any)
	for _, p := range d.Params {
		v, ok := args[p.Name]
		if !ok || v == nil || p.In == InPath {
			continue
		}
		if p.In == InBody && d.Body == BodyJSON {
			jsonBody[p.Name] = v
			continue
		}
		s, err := scalarString(v)
		if err != nil {
			return Request{}, apperrors.NewValidationError(p.Name, "", err.Error())
		}
		if p.In == InQuery {
			req.Query.Set(p.Name, s)
		} else {
			form.Set(p.Name, s)
		}
	}

	if hasBodyParams(d) {
		switch d.Body {
		case BodyJSON:
			body, err := json.Marshal(jsonBody)
			if err != nil {
				return Request{}, fmt.Errorf("encode %s body: %w", d.Name, err)
			}
			req.Body = body
			req.ContentType = ContentTypeJSON
		default:
			req.Body = []byte(form.Encode())
			req.ContentType = ContentTypeForm
		}
	}

	return req, nil
}

func checkArgs(d *Descriptor, args map[string]any) error {
	var unknown []string
	for name := range args {
		if _, ok := d.Param(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return apperrors.NewValidationError(unknown[0], "",
			fmt.Sprintf("unknown parameter for %s (accepted: %s)", d.Name, strings.Join(paramNames(d), ", ")))
	}

	for _, p := range d.Params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if p.Required {
				return apperrors.NewValidationError(p.Name, "", "is required")
			}
			continue
		}
		if s, isString := v.(string); isString && p.Required && strings.TrimSpace(s) == "" {
			return apperrors.NewValidationError(p.Name, "", "must not be empty")
		}
		if err := checkType(p, v); err != nil {
			return err
		}
	}
	return nil
}

// checkType rejects values that cannot be read as the parameter's advertised
// type. Strings are accepted when they parse.
func checkType(p Param, v any) error {
	var ok bool
	switch p.Type {
	case TypeInteger:
		ok = isInteger(v)
	case TypeNumber:
		ok = isNumber(v)
	case TypeBoolean:
		switch x := v.(type) {
		case bool:
			ok = true
		case string:
			_, err := strconv.ParseBool(strings.TrimSpace(x))
			ok = err == nil
		}
	default:
		return nil
	}
	if ok {
		return nil
	}
	value, _ := scalarString(v)
	return apperrors.NewValidationError(p.Name, value, "must be "+article(p.Type)+" "+string(p.Type))
}

func isInteger(v any) bool {
	switch x := v.(type) {
	case int, int32, int64, uint, uint64:
		return true
	case float64:
		return x == math.Trunc(x) && !math.IsInf(x, 0)
	case float32:
		return float64(x) == math.Trunc(float64(x)) && !math.IsInf(float64(x), 0)
	case json.Number:
		_, err := x.Int64()
		return err == nil
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return err == nil
	}
	return false
}

func isNumber(v any) bool {
	switch x := v.(type) {
	case int, int32, int64, uint, uint64, float32, float64:
		return true
	case json.Number:
		_, err := x.Float64()
		return err == nil
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return err == nil
	}
	return false
}

func article(t ParamType) string {
	if t == TypeInteger {
		return "an"
	}
	return "a"
}

func expandPath(d *Descriptor, args map[string]any) (string, error) {
	names := d.PathParams()
	if len(names) == 0 {
		return d.Path, nil
	}

	tmpl, err := uritemplate.New(URITemplate(d))
	if err != nil {
		return "", fmt.Errorf("compile template for %s: %w", d.Name, err)
	}

	values := uritemplate.Values{}
	for _, name := range names {
		s, err := scalarString(args[name])
		if err != nil {
			return "", apperrors.NewValidationError(name, "", err.Error())
		}
		p, _ := d.Param(name)
		if err := checkPathValue(p, s); err != nil {
			return "", err
		}
		values.Set(name, uritemplate.String(s))
	}

	path, err := tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("expand template for %s: %w", d.Name, err)
	}
	return path, nil
}

// checkPathValue keeps a path value inside its own segment(s).
func checkPathValue(p Param, s string) error {
	if s == "." || s == ".." {
		return apperrors.NewValidationError(p.Name, s, "is not a valid path segment")
	}
	if !p.Reserved {
		return nil
	}
	if strings.ContainsAny(s, "?#") {
		return apperrors.NewValidationError(p.Name, s, "must not contain ? or #")
	}
	for _, seg := range strings.Split(s, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return apperrors.NewValidationError(p.Name, s, "contains an empty or relative path segment")
		}
	}
	return nil
}

// scalarString renders an argument the way Reddit expects it on the wire.
func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		return x.String(), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	default:
		return "", fmt.Errorf("must be a string, number or boolean, got %T", v)
	}
}

func paramNames(d *Descriptor) []string {
	names := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
