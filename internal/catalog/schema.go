package catalog

import "github.com/google/jsonschema-go/jsonschema"

// InputSchema builds the MCP input schema for a descriptor: an object whose
// properties are the descriptor params, with required params listed.
func InputSchema(d *Descriptor) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(d.Params)),
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
	for _, p := range d.Params {
		schema.Properties[p.Name] = &jsonschema.Schema{
			Type:        string(p.Type),
			Description: p.Description,
		}
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return schema
}
