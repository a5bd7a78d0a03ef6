package main

import (
	"fmt"

	"github.com/Azir-11/azir-theme/internal/build"
	"github.com/Azir-11/azir-theme/internal/log"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Write the color token preview page",
	Long:  "Render every color token of the light and dark sources into a searchable HTML page",
	Args:  cobra.NoArgs,
	Run:   runPreview,
}

func runPreview(cmd *cobra.Command, args []string) {
	fs, cfg := loadConfig()

	res, err := build.New(fs, cfg).Preview(cmd.Context())
	if err != nil {
		log.Fatalf("Error generating preview: %v", err)
	}

	fmt.Print(previewSummary(res))
}
