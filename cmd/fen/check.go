package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/driver"
	"fen/internal/project"
	"fen/internal/source"
)

// checkCmd runs the declare/resolve pipeline over a whole project and
// prints short-form diagnostics. Parsing is an upstream phase, so units
// enter the pipeline with empty programs; manifest, layout and file
// loading problems still surface here, and the export cache is refreshed
// for every readable unit.
var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Declare and resolve a project, printing diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		manifestPath, err := project.FindManifest(dir)
		if err != nil {
			return err
		}
		manifest, err := project.LoadManifest(manifestPath)
		if err != nil {
			return err
		}

		root := filepath.Join(filepath.Dir(manifestPath), manifest.Package.Root)
		files, err := driver.ListSourceFiles(root)
		if err != nil {
			return err
		}

		fs := source.NewFileSet()
		interner := source.NewInterner()
		bag := diag.NewBag(manifest.Resolver.MaxDiagnostics)
		units := make([]driver.Unit, 0, len(files))
		for _, file := range files {
			id, err := fs.Load(file)
			if err != nil {
				// Keep the path addressable so the diagnostic renders.
				id = fs.AddVirtual(file, nil)
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError,
					source.Span{File: id}, fmt.Sprintf("cannot load file: %v", err)).
					Emit()
				continue
			}
			path, err := driver.UnitPath(interner, root, file)
			if err != nil {
				return err
			}
			parts := make([]string, len(path))
			for i, sym := range path {
				parts[i] = interner.MustLookup(sym)
			}
			units = append(units, driver.Unit{
				Name:    strings.Join(parts, "."),
				Path:    path,
				Program: &ast.Program{},
				Digest:  project.HashBytes(fs.Get(id).Content),
			})
		}

		cache, err := driver.OpenExportCache(cacheApp)
		if err != nil {
			cache = nil
		}
		_, declareBag, results, err := driver.ResolveUnits(cmd.Context(), interner, units, driver.Options{
			MaxDiagnostics: manifest.Resolver.MaxDiagnostics,
			Jobs:           manifest.Resolver.Jobs,
			Dedup:          manifest.Resolver.Dedup,
			Cache:          cache,
		})
		if err != nil {
			return err
		}

		bag.Merge(declareBag)
		for _, res := range results {
			bag.Merge(res.Bag)
		}
		if manifest.Resolver.Dedup {
			bag.Dedup()
		}
		bag.Sort()

		out := cmd.OutOrStdout()
		quiet, _ := cmd.Flags().GetBool("quiet")
		if rendered := diag.FormatShort(bag.Items(), fs, !quiet); rendered != "" {
			fmt.Fprintln(out, rendered)
		}
		if !quiet {
			fmt.Fprintf(out, "checked %d units in package %s\n", len(units), manifest.Package.Name)
		}
		if bag.HasErrors() {
			cmd.SilenceUsage = true
			return fmt.Errorf("check failed with %d diagnostics", bag.Len())
		}
		return nil
	},
}
