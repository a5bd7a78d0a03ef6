package main

import (
	"os"

	"github.com/Azir-11/azir-theme/internal/config"
	"github.com/Azir-11/azir-theme/internal/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "azir",
	Short: "Generate editor color themes from design tokens",
	Long:  "Generate VS Code and Zed color themes for every light, dark and high contrast variant from CSS design token sources",
	Args:  cobra.NoArgs,
	Run:   runGenerate,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

// loadConfig reads azir.yaml from the working directory and applies its log level.
func loadConfig() (afero.Fs, config.Config) {
	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, config.FileName)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)
	return fs, cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
