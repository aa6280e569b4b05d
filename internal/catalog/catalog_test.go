// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/post-publish/pkg/types"
)

func strPtr(s string) *string { return &s }

func sampleAssets() []types.Asset {
	return []types.Asset{
		{
			Filename: "blog-cat.jpg", Type: types.AssetImage,
			Title: "Cat", Slug: "blog_cat", Description: strPtr("A cat"), Tag: strPtr("blog"),
			ImageWidth: 800, ImageHeight: 600,
		},
		{
			Filename: "blog-clip.mp4", Type: types.AssetVideo,
			Title: "Clip", Slug: "blog_clip", Tag: strPtr("blog"),
			VideoWidth: 1280, VideoHeight: 720,
		},
		{
			Filename: "talk.pdf", Type: types.AssetFile,
			Title: "Talk", Slug: "talk",
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "media", DBFile)
	ctx := context.Background()

	require.NoError(t, SaveFile(ctx, path, sampleAssets()))

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleAssets(), got)
}

func TestStoreSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFile)
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Save(ctx, sampleAssets()))
	require.NoError(t, s.Save(ctx, sampleAssets()[:1]))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "blog-cat.jpg", got[0].Filename)
	assert.Equal(t, path, s.Path())
}

func TestWriteListingText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteListing(&b, sampleAssets(), types.ListText))

	want := strings.Join([]string{
		"blog-cat.jpg",
		"type: image",
		"title: Cat",
		"slug: blog_cat",
		"description: A cat",
		"tag: blog",
		"image_width: 800",
		"image_height: 600",
		"",
		"blog-clip.mp4",
		"type: video",
		"title: Clip",
		"slug: blog_clip",
		"description: ",
		"tag: blog",
		"video_width: 1280",
		"video_height: 720",
		"",
		"talk.pdf",
		"type: file",
		"title: Talk",
		"slug: talk",
		"description: ",
		"tag: ",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, b.String())
}

func TestWriteListingYAML(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteListing(&b, sampleAssets(), types.ListYAML))

	var got []types.Asset
	require.NoError(t, yaml.Unmarshal([]byte(b.String()), &got))
	assert.Equal(t, sampleAssets(), got)
}

func TestWriteListingJSON(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteListing(&b, sampleAssets(), types.ListJSON))

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(b.String()), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "video", got[1]["type"])
	assert.EqualValues(t, 1280, got[1]["video_width"])
	assert.Nil(t, got[2]["tag"])
}

func TestWriteListingUnknownFormat(t *testing.T) {
	var b strings.Builder
	err := WriteListing(&b, sampleAssets(), types.ListFormat("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestListingName(t *testing.T) {
	assert.Equal(t, "asset_listing.txt", ListingName(types.ListText))
	assert.Equal(t, "asset_listing.yaml", ListingName(types.ListYAML))
	assert.Equal(t, "asset_listing.json", ListingName(types.ListJSON))
}
