package evals

import (
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

// Catalog maps tool names to their MCP input schemas.
type Catalog map[string]*jsonschema.Schema

// CheckAgainstCatalog reports suite entries that drift from the served tools:
// unknown tool names, expected args the tool does not accept, and argument
// tests that leave out a required parameter.
func CheckAgainstCatalog(cat Catalog, ts *ToolSelectionSuite, cp *ConfusionPairSuite, as *ArgumentSuite) []string {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	known := func(where, tool string) (*jsonschema.Schema, bool) {
		schema, ok := cat[tool]
		if !ok {
			report("%s: unknown tool %q", where, tool)
		}
		return schema, ok
	}

	checkArgNames := func(where string, schema *jsonschema.Schema, names []string) {
		for _, name := range names {
			if _, ok := schema.Properties[name]; !ok {
				report("%s: tool does not accept argument %q", where, name)
			}
		}
	}

	if ts != nil {
		for _, test := range ts.Tests {
			where := "tool_selection/" + test.ID
			if schema, ok := known(where, test.ExpectedTool); ok {
				checkArgNames(where, schema, sortedKeys(test.ExpectedArgs))
			}
			for _, tool := range test.NotTools {
				known(where+" not_tools", tool)
			}
		}
	}

	if cp != nil {
		for _, pair := range cp.Pairs {
			where := "confusion_pairs/" + pair.ID
			for _, tool := range pair.Tools {
				known(where, tool)
			}
			for _, test := range pair.Tests {
				if !containsString(pair.Tools, test.Expected) {
					report("%s: expected tool %q is not one of %v", where, test.Expected, pair.Tools)
				}
			}
		}
	}

	if as != nil {
		for _, test := range as.Tests {
			where := "argument_correctness/" + test.ID
			schema, ok := known(where, test.Tool)
			if !ok {
				continue
			}
			checkArgNames(where, schema, test.RequiredArgs)
			checkArgNames(where, schema, sortedKeys(test.ExpectedArgs))
			for _, req := range schema.Required {
				if !containsString(test.RequiredArgs, req) {
					report("%s: required parameter %q missing from required_args", where, req)
				}
			}
		}
	}

	sort.Strings(problems)
	return problems
}
