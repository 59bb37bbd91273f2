// Command visa-attrgen generates Go attribute descriptor declarations
// from a YAML attribute table. It keeps hand-maintained descriptor files
// out of sync-prone editing when the attribute vocabulary grows.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	attrsPath := flag.String("attrs", "", "Path to the attribute table YAML")
	output := flag.String("output", "", "Output path for the generated Go file")
	pkg := flag.String("package", "attributes", "Package name for the generated file")
	flag.Parse()

	if *attrsPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: visa-attrgen -attrs <table.yaml> -output <file.go> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*attrsPath, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(attrsPath, output, pkg string) error {
	table, err := LoadTable(attrsPath)
	if err != nil {
		return fmt.Errorf("loading attribute table: %w", err)
	}

	code, err := Generate(pkg, table)
	if err != nil {
		return fmt.Errorf("generating descriptors: %w", err)
	}

	if err := writeFormatted(output, code); err != nil {
		return err
	}
	fmt.Printf("generated %s (%d attributes)\n", output, len(table.Attributes))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
