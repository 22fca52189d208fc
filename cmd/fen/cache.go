package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fen/internal/driver"
)

const cacheApp = "fen"

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk export cache",
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache location",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenExportCache(cacheApp)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cache.Dir())
		return nil
	},
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop every cached export payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenExportCache(cacheApp)
		if err != nil {
			return err
		}
		return cache.DropAll()
	},
}

func init() {
	cacheCmd.AddCommand(cacheDirCmd)
	cacheCmd.AddCommand(cacheCleanCmd)
}
