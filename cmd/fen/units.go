package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fen/internal/driver"
	"fen/internal/project"
	"fen/internal/source"
)

// unitsCmd previews the project layout: the manifest the driver would
// pick up and the compilation units it would hand to the resolver.
// Parsing lives upstream, so the units are listed, not resolved.
var unitsCmd = &cobra.Command{
	Use:   "units [dir]",
	Short: "List the compilation units of a project",
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

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "package %s (%d units)\n", manifest.Package.Name, len(files))
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			return nil
		}
		interner := source.NewInterner()
		for _, file := range files {
			path, err := driver.UnitPath(interner, root, file)
			if err != nil {
				return err
			}
			parts := make([]string, len(path))
			for i, sym := range path {
				parts[i] = interner.MustLookup(sym)
			}
			fmt.Fprintf(out, "  %s\t%s\n", strings.Join(parts, "."), file)
		}
		return nil
	},
}
