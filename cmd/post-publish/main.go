// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the post-publish CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/post-publish/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the post-publish CLI.
var rootCmd = &cobra.Command{
	Use:   "post-publish",
	Short: "Publish tool to generate upload content for blog posts",
	Long: `post-publish converts the local media links of a markdown post into
blog asset references and gathers the referenced files into a publish
directory, together with a metadata database, a zip archive for bulk upload,
and the rewritten post.

Posts are read from post/ and written to publish/<post name>/ by default.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./post-publish.yaml or ~/.config/post-publish/post-publish.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("post-publish")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "post-publish"))
		}
	}

	viper.SetEnvPrefix("POST_PUBLISH")
	viper.AutomaticEnv()

	viper.SetDefault("output_dir", types.DefaultOutputDir)
	viper.SetDefault("post_dir", types.DefaultPostDir)
	viper.SetDefault("keep_suffix", types.DefaultKeepSuffix)
	viper.SetDefault("list_format", string(types.ListText))
	viper.SetDefault("video_extensions", types.DefaultVideoExtensions)
	viper.SetDefault("file_extensions", types.DefaultFileExtensions)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags binds each named flag of cmd to its config key, so a flag set
// on the command line overrides environment and config file values.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			return fmt.Errorf("unknown flag %q", flag)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// cleanConfig reads the shared cleaning settings.
func cleanConfig() types.CleanConfig {
	return types.CleanConfig{
		OutputDir:  viper.GetString("output_dir"),
		KeepSuffix: viper.GetString("keep_suffix"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
