package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/post-publish/internal/publish"
	"github.com/pdiddy/post-publish/pkg/types"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the output directory of all files",
	Long: `Clean removes every file and subdirectory under the output directory,
keeping .gitkeep files at its top level. With --filename only the publish
directory of that post is cleaned.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, map[string]string{"output-dir": "output_dir"}); err != nil {
			return err
		}
		filename, _ := cmd.Flags().GetString("filename")
		return publish.Clean(cleanConfig(), filename, os.Stdout)
	},
}

func init() {
	cleanCmd.Flags().String("output-dir", types.DefaultOutputDir, "output directory to use")
	cleanCmd.Flags().String("filename", "", "post file to clear the publish directory for")

	rootCmd.AddCommand(cleanCmd)
}
