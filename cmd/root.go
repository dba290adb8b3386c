package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oorlogsbronnen",
	Short: "Oorlogsbronnen - search tools for the Dutch WW2 archive network",
	Long: `Oorlogsbronnen provides access to the Netwerk Oorlogsbronnen archive,
a network of Dutch WW2 collections (people, photographs, articles, videos,
objects, places and other works). Searches fan out across content categories
and results are normalized into a single report.

It can run as a standalone CLI or as an MCP (Model Context Protocol) server
exposing the archive search as a tool for MCP-compatible clients.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(mcpServerCmd)
}
