// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Link is one markdown image reference found in a post line.
type Link struct {
	// Name is the display text between the brackets.
	Name string `json:"name" yaml:"name"`

	// Path is the reference target as written in the post (e.g. "./media/cat.jpg").
	Path string `json:"path" yaml:"path"`

	// Description is the quoted title text, when present.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// HasDescription distinguishes an absent description from an empty one.
	HasDescription bool `json:"-" yaml:"-"`
}

// AssetType classifies a copied media file.
type AssetType string

const (
	AssetImage AssetType = "image"
	AssetVideo AssetType = "video"
	AssetFile  AssetType = "file"
)

// LinkEntry is the first-seen metadata recorded for one reference path.
type LinkEntry struct {
	Name           string
	Slug           string
	Description    string
	HasDescription bool
}

// Asset holds the metadata recorded for one published media file.
type Asset struct {
	// Filename is the lower-cased, optionally tag-prefixed name in media/.
	Filename string `json:"filename" yaml:"filename"`

	Type        AssetType `json:"type" yaml:"type"`
	Title       string    `json:"title" yaml:"title"`
	Slug        string    `json:"slug" yaml:"slug"`
	Description *string   `json:"description" yaml:"description"`
	Tag         *string   `json:"tag" yaml:"tag"`

	// VideoWidth and VideoHeight are set for video assets only.
	VideoWidth  int `json:"video_width,omitempty" yaml:"video_width,omitempty"`
	VideoHeight int `json:"video_height,omitempty" yaml:"video_height,omitempty"`

	// ImageWidth and ImageHeight are set for images whose format can be decoded.
	ImageWidth  int `json:"image_width,omitempty" yaml:"image_width,omitempty"`
	ImageHeight int `json:"image_height,omitempty" yaml:"image_height,omitempty"`

	// Source is the resolved absolute path the file was copied from.
	Source string `json:"-" yaml:"-"`
}
