// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/post-publish/pkg/types"
)

// ListingName returns the listing filename for format.
func ListingName(format types.ListFormat) string {
	switch format {
	case types.ListYAML:
		return "asset_listing.yaml"
	case types.ListJSON:
		return "asset_listing.json"
	default:
		return "asset_listing.txt"
	}
}

// WriteListing renders assets to w in the requested format.
func WriteListing(w io.Writer, assets []types.Asset, format types.ListFormat) error {
	switch format {
	case types.ListText, "":
		return writeText(w, assets)
	case types.ListYAML:
		data, err := yaml.Marshal(assets)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case types.ListJSON:
		data, err := json.MarshalIndent(assets, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("unsupported listing format %q: use text, yaml, or json", format)
	}
}

// writeText writes one block per asset: the filename, then "key: value"
// lines, then a blank line.
func writeText(w io.Writer, assets []types.Asset) error {
	for _, a := range assets {
		if _, err := fmt.Fprintf(w, "%s\n", a.Filename); err != nil {
			return err
		}
		for _, f := range fields(a) {
			if _, err := fmt.Fprintf(w, "%s: %s\n", f[0], f[1]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func fields(a types.Asset) [][2]string {
	out := [][2]string{
		{"type", string(a.Type)},
		{"title", a.Title},
		{"slug", a.Slug},
		{"description", deref(a.Description)},
		{"tag", deref(a.Tag)},
	}
	if a.Type == types.AssetVideo {
		out = append(out,
			[2]string{"video_width", strconv.Itoa(a.VideoWidth)},
			[2]string{"video_height", strconv.Itoa(a.VideoHeight)})
	}
	if a.ImageWidth > 0 {
		out = append(out,
			[2]string{"image_width", strconv.Itoa(a.ImageWidth)},
			[2]string{"image_height", strconv.Itoa(a.ImageHeight)})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
