// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ListFormat selects the layout of the optional asset listing.
type ListFormat string

const (
	ListText ListFormat = "text"
	ListYAML ListFormat = "yaml"
	ListJSON ListFormat = "json"
)

// MediaConfig holds the settings used to classify and copy media files.
type MediaConfig struct {
	// Root is the directory relative references are resolved against
	// (default: the current working directory).
	Root string `json:"media_root" yaml:"media_root"`

	// VideoExtensions lists extensions (without dot) treated as video (default mp4, ogg).
	VideoExtensions []string `json:"video_extensions" yaml:"video_extensions"`

	// FileExtensions lists extensions (without dot) treated as downloadable files (default pdf).
	FileExtensions []string `json:"file_extensions" yaml:"file_extensions"`
}

// CleanConfig holds the settings for output directory cleaning.
type CleanConfig struct {
	// OutputDir is the publish root (default "publish").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// KeepSuffix marks files that survive cleaning (default ".gitkeep").
	KeepSuffix string `json:"keep_suffix" yaml:"keep_suffix"`
}

// PublishConfig groups all settings for one create run.
type PublishConfig struct {
	CleanConfig `yaml:",inline"`
	Media       MediaConfig `json:"media" yaml:"media"`

	// PostDir is the directory post files are read from (default "post").
	PostDir string `json:"post_dir" yaml:"post_dir"`

	// AssetTag namespaces every slug and filename of the run. Empty means no tag.
	AssetTag string `json:"asset_tag" yaml:"asset_tag"`

	// PostImage is an optional thumbnail copied to the output root.
	PostImage string `json:"post_image" yaml:"post_image"`

	// OutputList enables the asset listing.
	OutputList bool `json:"output_list" yaml:"output_list"`

	// ListFormat selects the listing layout (default text).
	ListFormat ListFormat `json:"list_format" yaml:"list_format"`
}

// Default values shared by the CLI and the library.
const (
	DefaultOutputDir  = "publish"
	DefaultPostDir    = "post"
	DefaultKeepSuffix = ".gitkeep"
)

// DefaultVideoExtensions and DefaultFileExtensions are the classification
// tables used when configuration leaves them empty.
var (
	DefaultVideoExtensions = []string{"mp4", "ogg"}
	DefaultFileExtensions  = []string{"pdf"}
)

// WithDefaults returns a copy of c with empty fields filled in.
func (c PublishConfig) WithDefaults() PublishConfig {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.KeepSuffix == "" {
		c.KeepSuffix = DefaultKeepSuffix
	}
	if c.PostDir == "" {
		c.PostDir = DefaultPostDir
	}
	if c.ListFormat == "" {
		c.ListFormat = ListText
	}
	if len(c.Media.VideoExtensions) == 0 {
		c.Media.VideoExtensions = DefaultVideoExtensions
	}
	if len(c.Media.FileExtensions) == 0 {
		c.Media.FileExtensions = DefaultFileExtensions
	}
	return c
}

// Validate reports settings that would only fail late in a run.
func (c PublishConfig) Validate() error {
	switch c.ListFormat {
	case "", ListText, ListYAML, ListJSON:
	default:
		return fmt.Errorf("unsupported list format %q: use text, yaml, or json", c.ListFormat)
	}
	return nil
}
