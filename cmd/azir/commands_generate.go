package main

import (
	"fmt"

	"github.com/Azir-11/azir-theme/internal/build"
	"github.com/Azir-11/azir-theme/internal/log"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) {
	fs, cfg := loadConfig()

	results, err := build.New(fs, cfg).Themes(cmd.Context())
	if err != nil {
		log.Fatalf("Error generating themes: %v", err)
	}

	fmt.Print(themeSummary(results))
}
