package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NogradThGin/xsatmgr"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of xsatmgr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("xsatmgr version %s\n", xsatmgr.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
