package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/post-publish/internal/publish"
	"github.com/pdiddy/post-publish/pkg/types"
)

var createCmd = &cobra.Command{
	Use:   "create FILENAME",
	Short: "Convert a post's media links to assets and gather its media",
	Long: `Create reads post/FILENAME, replaces every local image reference with an
asset identifier, and writes publish/<name>/ containing post.md, the copied
media under media/ with an __assets.db metadata database, and
bulk_assets.zip. The output directory is cleaned first.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().String("asset-tag", "", "tag to prefix asset slugs and filenames with")
	createCmd.Flags().String("output-dir", types.DefaultOutputDir, "output directory to use")
	createCmd.Flags().String("post-dir", types.DefaultPostDir, "directory post files are read from")
	createCmd.Flags().String("media-root", "", "directory relative media links are resolved against (default: current directory)")
	createCmd.Flags().String("post-image", "", "image for post thumbnail")
	createCmd.Flags().Bool("output-list", false, "write a listing with asset information")
	createCmd.Flags().String("list-format", string(types.ListText), "listing format: text, yaml, or json")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	err := bindFlags(cmd, map[string]string{
		"asset-tag":   "asset_tag",
		"output-dir":  "output_dir",
		"post-dir":    "post_dir",
		"media-root":  "media_root",
		"list-format": "list_format",
	})
	if err != nil {
		return err
	}

	postImage, _ := cmd.Flags().GetString("post-image")
	outputList, _ := cmd.Flags().GetBool("output-list")

	cfg := types.PublishConfig{
		CleanConfig: cleanConfig(),
		Media: types.MediaConfig{
			Root:            viper.GetString("media_root"),
			VideoExtensions: viper.GetStringSlice("video_extensions"),
			FileExtensions:  viper.GetStringSlice("file_extensions"),
		},
		PostDir:    viper.GetString("post_dir"),
		AssetTag:   viper.GetString("asset_tag"),
		PostImage:  postImage,
		OutputList: outputList,
		ListFormat: types.ListFormat(viper.GetString("list_format")),
	}

	res, err := publish.Create(context.Background(), cfg, args[0], os.Stdout)
	if err != nil {
		return fmt.Errorf("create %s: %w", args[0], err)
	}
	fmt.Fprintf(os.Stdout, "\nPublished %d asset(s) to %s\n", len(res.Assets), res.OutputDir)
	return nil
}
