// Package main is the quarry-schema inspector: it parses a directory of
// record-type definitions, compiles them, and prints what each one binds.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/quarrydb/quarry/core/record"
	"github.com/quarrydb/quarry/core/schema"
	"github.com/rs/zerolog"
)

func main() {
	dir := flag.String("dir", "records", "Directory containing record definition YAML files")
	verbose := flag.Bool("verbose", false, "Log finalization events")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	defs, err := schema.ParseDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse definitions: %v\n", err)
		os.Exit(1)
	}

	reg := record.NewRegistry(record.Config{Logger: logger})

	for _, def := range defs {
		t, err := reg.Register(def)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register: %v\n", err)
			os.Exit(1)
		}
		printType(t)
	}

	if len(defs) == 0 {
		fmt.Fprintf(os.Stderr, "no record definitions in %s\n", *dir)
		os.Exit(1)
	}
}

func printType(t *record.Type) {
	fmt.Printf("%s (table %s, primary key %s %s)\n",
		t.Name(), t.Table(), t.PrimaryKeyName(), t.PrimaryKeyType())

	for _, col := range t.Columns() {
		var notes []string
		if col.Nilable {
			notes = append(notes, "nilable")
		}
		if col.Autogenerated {
			notes = append(notes, "autogenerated")
		}
		suffix := ""
		if len(notes) > 0 {
			suffix = " (" + strings.Join(notes, ", ") + ")"
		}
		fmt.Printf("  %-20s %s%s\n", col.Name, col.Type, suffix)
	}

	for _, a := range t.Associations() {
		fmt.Printf("  -> %s %s via %s", a.Kind, a.Target, a.ForeignKey)
		if a.Through != "" {
			fmt.Printf(" through %s", a.Through)
		}
		fmt.Println()
	}
}
