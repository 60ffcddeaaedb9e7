package main

import (
	"os"

	"github.com/spf13/cobra"
)

var Root = &cobra.Command{
	Use:   "eowire",
	Short: "EO protocol wire codec tools",
}

func main() {
	if err := Root.Execute(); err != nil {
		os.Exit(1)
	}
}
