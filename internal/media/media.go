// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package media resolves, classifies, copies, and probes the files a post
// references.
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/post-publish/pkg/types"
)

// ErrDuplicateTarget is returned when two different source files map to the
// same name inside the media directory.
var ErrDuplicateTarget = errors.New("duplicate media filename")

// Resolve returns the absolute, normalized location of ref. Relative
// references are resolved against root; an empty root means the current
// working directory.
func Resolve(root, ref string) (string, error) {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref), nil
	}
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(filepath.Join(root, filepath.FromSlash(ref)))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", ref, err)
	}
	return abs, nil
}

// TargetName returns the filename ref is published under: its base name,
// prefixed with "<tag>-" when tag is set, lower-cased.
func TargetName(ref, tag string) string {
	name := ref
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if tag != "" {
		name = tag + "-" + name
	}
	return strings.ToLower(name)
}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Classify returns the asset type for name based on its extension.
func Classify(name string, cfg types.MediaConfig) types.AssetType {
	ext := Extension(name)
	if containsFold(cfg.VideoExtensions, ext) {
		return types.AssetVideo
	}
	if containsFold(cfg.FileExtensions, ext) {
		return types.AssetFile
	}
	return types.AssetImage
}

func containsFold(list []string, ext string) bool {
	for _, e := range list {
		if strings.EqualFold(strings.TrimPrefix(e, "."), ext) {
			return true
		}
	}
	return false
}

// CopyFile copies src to dst, carrying over the permission bits and the
// modification time.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if info.IsDir() {
		return fmt.Errorf("copying %s: is a directory", src)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("setting times on %s: %w", dst, err)
	}
	return nil
}

// Copier publishes every referenced file into a media directory.
type Copier struct {
	Config   types.MediaConfig
	Tag      string
	MediaDir string
}

// CopyAll copies each path in table into the media directory and returns the
// resulting asset records in first-seen order. A missing source aborts the
// run. The same source reached through different spellings is copied once.
func (c Copier) CopyAll(table *types.LinkTable) ([]types.Asset, error) {
	var tag *string
	if c.Tag != "" {
		t := c.Tag
		tag = &t
	}

	var assets []types.Asset
	seen := make(map[string]string) // target filename -> source

	for _, ref := range table.Paths() {
		entry, _ := table.Get(ref)

		src, err := Resolve(c.Config.Root, ref)
		if err != nil {
			return assets, err
		}
		name := TargetName(ref, c.Tag)

		if prev, ok := seen[name]; ok {
			if prev == src {
				continue
			}
			return assets, fmt.Errorf("%w: %s from %s and %s", ErrDuplicateTarget, name, prev, src)
		}
		seen[name] = src

		dst := filepath.Join(c.MediaDir, name)
		if err := CopyFile(src, dst); err != nil {
			return assets, err
		}

		asset := types.Asset{
			Filename: name,
			Type:     Classify(name, c.Config),
			Title:    entry.Name,
			Slug:     entry.Slug,
			Tag:      tag,
			Source:   src,
		}
		if entry.HasDescription {
			d := entry.Description
			asset.Description = &d
		}

		switch asset.Type {
		case types.AssetVideo:
			w, h, err := ProbeVideo(dst)
			if err != nil {
				return assets, fmt.Errorf("probing %s: %w", name, err)
			}
			asset.VideoWidth, asset.VideoHeight = w, h
		case types.AssetImage:
			if w, h, ok := ProbeImage(dst); ok {
				asset.ImageWidth, asset.ImageHeight = w, h
			}
		}

		assets = append(assets, asset)
	}

	return assets, nil
}
