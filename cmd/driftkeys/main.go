// Package main is the entry point for the DriftKeys CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftkeys/driftkeys/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "driftkeys",
		Short:   "DriftKeys — a keyboard that sorts itself by recency",
		Version: version,
	}

	root.AddCommand(
		runCmd(),
		initCmd(),
		layoutsCmd(),
		statsCmd(),
	)

	return root
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the keyboard UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			layout, _ := cmd.Flags().GetString("layout")
			demoText, _ := cmd.Flags().GetString("demo")
			return executeRun(cfgPath, layout, demoText)
		},
	}
	cmd.Flags().String("config", "", "path to driftkeys.toml (default: search upward)")
	cmd.Flags().String("layout", "", "override the configured layout")
	cmd.Flags().String("demo", "", "text for the scripted typist to type")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create driftkeys.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

func layoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the builtin keyboard layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatLayouts())
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the most recent session trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			file, _ := cmd.Flags().GetString("file")
			out, err := executeStats(cfgPath, file)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().String("config", "", "path to driftkeys.toml (default: search upward)")
	cmd.Flags().String("file", "", "trace file to summarize (default: most recent)")
	return cmd
}
