// Command catalog prints the tools the server registers.
//
// Usage:
//
//	go run ./cmd/catalog -format markdown > TOOLS.md
//	go run ./cmd/catalog -format json -category listings
//	go run ./cmd/catalog -check
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
	"github.com/olgasafonova/reddit-mcp-server/tools"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
		os.Exit(1)
	}
}

// toolEntry is one row of the listing.
type toolEntry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Endpoint    string `json:"endpoint"`
	ReadOnly    bool   `json:"read_only"`
	Destructive bool   `json:"destructive"`
	Description string `json:"description"`
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	format := fs.String("format", "markdown", "Output format: markdown or json")
	category := fs.String("category", "", "Only list tools in this category")
	check := fs.Bool("check", false, "Validate the catalog and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *check {
		if err := catalog.Validate(catalog.All()); err != nil {
			return err
		}
		fmt.Fprintf(out, "catalog OK: %d tools in %d categories\n", len(catalog.Names()), len(catalog.Categories()))
		return nil
	}

	specs := tools.AllTools()
	if *category != "" {
		specs = tools.ToolsByCategory(*category)
	}

	var entries []toolEntry
	for _, spec := range specs {
		entries = append(entries, toolEntry{
			Name:        spec.Name,
			Category:    spec.Category,
			Endpoint:    spec.Endpoint,
			ReadOnly:    spec.ReadOnly,
			Destructive: spec.Destructive,
			Description: firstLine(spec.Description),
		})
	}
	if len(entries) == 0 {
		return fmt.Errorf("no tools in category %q (have %s)", *category, strings.Join(catalog.Categories(), ", "))
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "markdown":
		writeMarkdown(out, entries)
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func writeMarkdown(out io.Writer, entries []toolEntry) {
	fmt.Fprintln(out, "| Tool | Endpoint | Access | Description |")
	fmt.Fprintln(out, "|------|----------|--------|-------------|")
	for _, e := range entries {
		access := "write"
		switch {
		case e.ReadOnly:
			access = "read"
		case e.Destructive:
			access = "destructive"
		}
		fmt.Fprintf(out, "| `%s` | `%s` | %s | %s |\n", e.Name, e.Endpoint, access, strings.ReplaceAll(e.Description, "|", `\|`))
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
