// tablecheck validates affect tables against their status tables and can
// export TSV tables as YAML.
//
// Usage:
//
//	go run ./cmd/tablecheck -yaml tables/affects.yaml
//	go run ./cmd/tablecheck -tsv tables/tsv -export tables/affects.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/udisondev/affectd/internal/data"
)

func main() {
	yamlPath := flag.String("yaml", "", "YAML table file")
	tsvDir := flag.String("tsv", "", "directory with TSV tables")
	prefix := flag.String("resist-prefix", data.DefaultResistPrefix, "stat prefix of damage-type resistances")
	export := flag.String("export", "", "write the loaded tables as YAML to this path")
	flag.Parse()

	tables, err := load(*yamlPath, *tsvDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	issues, err := check(os.Stdout, tables, *prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *export != "" {
		if err := exportYAML(*export, tables); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("exported:  %s\n", *export)
	}

	if issues > 0 {
		os.Exit(2)
	}
}

func load(yamlPath, tsvDir string) (*data.Tables, error) {
	switch {
	case yamlPath != "" && tsvDir != "":
		return nil, errors.New("use either -yaml or -tsv")
	case yamlPath != "":
		return data.LoadYAMLTables(yamlPath)
	case tsvDir != "":
		return data.LoadTSVTables(tsvDir)
	default:
		return nil, errors.New("one of -yaml or -tsv is required")
	}
}

// check bootstraps tables, prints a summary and every issue to w and
// returns the number of issues.
func check(w io.Writer, tables *data.Tables, prefix string) (int, error) {
	repos, err := data.Bootstrap(tables, prefix)
	if err != nil {
		return 0, fmt.Errorf("bootstrapping tables: %w", err)
	}

	issues := data.Validate(repos)

	fmt.Fprintf(w, "affects:   %d\n", repos.Affects.Len())
	fmt.Fprintf(w, "modifiers: %d\n", len(tables.Modifiers))
	fmt.Fprintf(w, "cc rows:   %d\n", len(tables.CrowdControls))
	fmt.Fprintf(w, "issues:    %d\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
	return len(issues), nil
}

func exportYAML(path string, tables *data.Tables) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := data.WriteYAMLTables(f, tables); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
