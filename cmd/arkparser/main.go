package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	mapName   string
	jsonPretty bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "arkparser",
		Short: "An ARK: Survival save-file parser",
		Long:  "Decodes ARK: Survival Evolved and Ascended profile, tribe, cloud-inventory, and world-save files",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Long:  "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print("You are using version 0.1.0")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps a save file's decoded structure",
		Long:  "Decodes the file at path and prints the requested sections as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDump,
	}

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Exports a world save to ASV-style JSON documents",
		Long:  "Decodes a world-save file and writes tamed/wild/structure export documents",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExport,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(exportCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	dumpCmd.Flags().BoolVarP(&dumpObjects, "objects", "", false, "Dump every decoded game object")
	dumpCmd.Flags().BoolVarP(&dumpMain, "main", "", true, "Dump the file's main object")
	dumpCmd.Flags().BoolVarP(&dumpErrors, "errors", "", false, "Dump per-object parse errors (world saves only)")

	exportCmd.Flags().StringVarP(&mapName, "map", "", "", "Map name for GPS coordinate conversion (e.g. TheIsland)")
	exportCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write export documents into")
	exportCmd.Flags().BoolVarP(&jsonPretty, "pretty", "", true, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
