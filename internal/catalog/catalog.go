// Package catalog holds the static table of Reddit tools. Each descriptor maps one
// tool name onto one REST endpoint template and documents its parameters.
package catalog

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
)

// ParamType is the JSON type advertised for a parameter in the tool input schema.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
)

// Location says where a parameter is placed on the outgoing request.
type Location string

const (
	InPath  Location = "path"
	InQuery Location = "query"
	InBody  Location = "body"
)

// BodyEncoding selects how body parameters are serialized.
type BodyEncoding string

const (
	BodyForm BodyEncoding = "form"
	BodyJSON BodyEncoding = "json"
)

// Param describes a single tool parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	In          Location

	// Reserved allows a path parameter to span several path segments
	// (multireddit paths such as user/spez/m/cats).
	Reserved bool
}

// Descriptor is a tool definition: name, endpoint template and parameters.
type Descriptor struct {
	// Name is the MCP tool name (e.g., "r_subreddit_hot")
	Name string

	// Method is the HTTP method used against the endpoint
	Method string

	// Path is the endpoint template; placeholders are written as :name
	Path string

	// Description is the tool description shown to agents
	Description string

	// Category is the API area the endpoint belongs to (listings, users, ...)
	Category string

	Params []Param

	// Body defaults to form encoding when a descriptor has body params
	Body BodyEncoding
}

// ReadOnly reports whether the endpoint only reads Reddit state.
func (d *Descriptor) ReadOnly() bool {
	return d.Method == http.MethodGet
}

// Destructive reports whether the endpoint removes or overwrites data.
func (d *Descriptor) Destructive() bool {
	return d.Method == http.MethodDelete
}

// Param returns the named parameter.
func (d *Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// PathParams returns the placeholder names in template order.
func (d *Descriptor) PathParams() []string {
	return placeholders(d.Path)
}

// Endpoint renders the descriptor as "METHOD /path" for logs and docs.
func (d *Descriptor) Endpoint() string {
	return d.Method + " " + d.Path
}

var (
	index  map[string]*Descriptor
	sorted []string
)

func init() {
	index = make(map[string]*Descriptor, len(descriptors))
	for i := range descriptors {
		d := &descriptors[i]
		if d.Body == "" && hasBodyParams(d) {
			d.Body = BodyForm
		}
		index[d.Name] = d
		sorted = append(sorted, d.Name)
	}
	sort.Strings(sorted)
}

// All returns every descriptor in catalog order.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (*Descriptor, bool) {
	d, ok := index[name]
	return d, ok
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) *Descriptor {
	d, ok := index[name]
	if !ok {
		panic("catalog: unknown tool " + name)
	}
	return d
}

// Names returns all tool names sorted alphabetically.
func Names() []string {
	out := make([]string, len(sorted))
	copy(out, sorted)
	return out
}

// Categories returns the distinct categories in sorted order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range descriptors {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	sort.Strings(out)
	return out
}

var (
	placeholderRe = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)
	toolNameRe    = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

func placeholders(path string) []string {
	matches := placeholderRe.FindAllStringSubmatch(path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

func hasBodyParams(d *Descriptor) bool {
	for _, p := range d.Params {
		if p.In == InBody {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of a descriptor table:
// unique well-formed names, one endpoint per name, and path placeholders
// that match required path parameters one to one.
func Validate(descs []Descriptor) error {
	var problems []string
	seen := make(map[string]string, len(descs))

	for _, d := range descs {
		if !toolNameRe.MatchString(d.Name) {
			problems = append(problems, fmt.Sprintf("%q: invalid tool name", d.Name))
		}
		if prev, dup := seen[d.Name]; dup {
			problems = append(problems, fmt.Sprintf("%q: duplicate tool (endpoints %s and %s)", d.Name, prev, d.Endpoint()))
		}
		seen[d.Name] = d.Endpoint()

		switch d.Method {
		case http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodPut:
		default:
			problems = append(problems, fmt.Sprintf("%q: unsupported method %q", d.Name, d.Method))
		}
		if !strings.HasPrefix(d.Path, "/") {
			problems = append(problems, fmt.Sprintf("%q: path %q must start with /", d.Name, d.Path))
		}
		if d.Description == "" {
			problems = append(problems, fmt.Sprintf("%q: missing description", d.Name))
		}

		params := make(map[string]Param, len(d.Params))
		for _, p := range d.Params {
			if _, dup := params[p.Name]; dup {
				problems = append(problems, fmt.Sprintf("%q: duplicate parameter %q", d.Name, p.Name))
			}
			params[p.Name] = p
			if p.In == InBody && d.Method == http.MethodGet {
				problems = append(problems, fmt.Sprintf("%q: body parameter %q on GET", d.Name, p.Name))
			}
		}

		inTemplate := make(map[string]bool)
		for _, name := range placeholders(d.Path) {
			if inTemplate[name] {
				problems = append(problems, fmt.Sprintf("%q: placeholder :%s appears twice", d.Name, name))
			}
			inTemplate[name] = true
			p, ok := params[name]
			switch {
			case !ok:
				problems = append(problems, fmt.Sprintf("%q: placeholder :%s has no parameter", d.Name, name))
			case p.In != InPath:
				problems = append(problems, fmt.Sprintf("%q: placeholder :%s is declared in %s", d.Name, name, p.In))
			case !p.Required:
				problems = append(problems, fmt.Sprintf("%q: placeholder :%s must be required", d.Name, name))
			}
		}
		for _, p := range d.Params {
			if p.In == InPath && !inTemplate[p.Name] {
				problems = append(problems, fmt.Sprintf("%q: path parameter %q not in template %s", d.Name, p.Name, d.Path))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("catalog has %d problem(s):\n  %s", len(problems), strings.Join(problems, "\n  "))
	}
	return nil
}
