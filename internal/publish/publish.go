// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish runs the clean and create operations that turn a markdown
// post into an upload-ready publish directory.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/post-publish/internal/bundle"
	"github.com/pdiddy/post-publish/internal/catalog"
	"github.com/pdiddy/post-publish/internal/clean"
	"github.com/pdiddy/post-publish/internal/media"
	"github.com/pdiddy/post-publish/internal/rewrite"
	"github.com/pdiddy/post-publish/pkg/types"
)

const (
	// mediaDir is the subdirectory of the output holding copied media.
	mediaDir = "media"
	// postFile is the rewritten post written at the output root.
	postFile = "post.md"
)

// ErrPostNotFound is returned when the input post does not exist or is not
// a regular file.
var ErrPostNotFound = errors.New("invalid input filename given")

// ErrEmptyOutputName is returned when a post filename yields no output
// directory name, such as ".md".
var ErrEmptyOutputName = errors.New("filename gives an empty output directory name")

// Result describes a finished create run.
type Result struct {
	OutputDir string
	Assets    []types.Asset
	Lines     int
	Rewritten int
}

// OutputName derives the per-post directory name from a post filename: the
// final extension is dropped and remaining dots become underscores.
func OutputName(filename string) string {
	base := filepath.Base(filename)
	parts := strings.Split(base, ".")
	if len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, "_")
}

// OutputDir returns the directory a post is published into. It never
// resolves to outputRoot itself.
func OutputDir(outputRoot, filename string) (string, error) {
	name := OutputName(filename)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyOutputName, filename)
	}
	return filepath.Join(outputRoot, name), nil
}

// progress prints "[INFO] step... DONE" lines, or ERROR with the cause.
type progress struct {
	w io.Writer
}

func (p progress) run(step string, fn func() error) error {
	fmt.Fprintf(p.w, "[INFO] %s... ", step)
	if err := fn(); err != nil {
		fmt.Fprintf(p.w, "ERROR\n  %v\n", err)
		return err
	}
	fmt.Fprintln(p.w, "DONE")
	return nil
}

// Clean empties outputRoot, or the post directory for filename when it is
// not empty.
func Clean(cfg types.CleanConfig, filename string, w io.Writer) error {
	dir := cfg.OutputDir
	if filename != "" {
		d, err := OutputDir(cfg.OutputDir, filename)
		if err != nil {
			return err
		}
		dir = d
	}
	return cleanDir(progress{w}, dir, cfg.KeepSuffix)
}

func cleanDir(p progress, dir, keepSuffix string) error {
	return p.run("Cleaning output directory", func() error {
		if _, err := clean.Dir(dir, keepSuffix); err != nil {
			return fmt.Errorf("cleaning %s: %w", dir, err)
		}
		return nil
	})
}

// Create publishes the post named filename from cfg.PostDir. The whole post
// is parsed before the output directory is cleaned, and media is copied
// only after cleaning. A failure aborts the run and may leave a partially
// populated output directory.
func Create(ctx context.Context, cfg types.PublishConfig, filename string, w io.Writer) (Result, error) {
	cfg = cfg.WithDefaults()
	p := progress{w}
	var res Result
	if err := cfg.Validate(); err != nil {
		return res, err
	}
	outDir, err := OutputDir(cfg.OutputDir, filename)
	if err != nil {
		return res, err
	}
	res.OutputDir = outDir

	postPath := filepath.Join(cfg.PostDir, filename)
	var text *os.File
	err = p.run("Loading post file contents", func() error {
		info, err := os.Stat(postPath)
		if err != nil || !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrPostNotFound, postPath)
		}
		f, err := os.Open(postPath)
		if err != nil {
			return fmt.Errorf("opening post: %w", err)
		}
		text = f
		return nil
	})
	if err != nil {
		return res, err
	}
	defer text.Close()

	if _, err := os.Stat(res.OutputDir); err != nil {
		err := p.run(fmt.Sprintf("Creating new output directory %s", res.OutputDir), func() error {
			return os.MkdirAll(res.OutputDir, 0o755)
		})
		if err != nil {
			return res, fmt.Errorf("creating output directory: %w", err)
		}
	}

	var rewritten rewrite.Result
	err = p.run("Processing post file", func() error {
		r, err := rewrite.Rewriter{Tag: cfg.AssetTag}.Rewrite(text)
		if err != nil {
			return err
		}
		rewritten = r
		return nil
	})
	if err != nil {
		return res, err
	}
	res.Lines = len(rewritten.Lines)
	res.Rewritten = rewritten.Rewritten

	if err := cleanDir(p, res.OutputDir, cfg.KeepSuffix); err != nil {
		return res, err
	}

	if cfg.PostImage != "" {
		err := p.run("Copying post image to output", func() error {
			src, err := media.Resolve("", cfg.PostImage)
			if err != nil {
				return err
			}
			return media.CopyFile(src, filepath.Join(res.OutputDir, filepath.Base(src)))
		})
		if err != nil {
			return res, err
		}
	}

	mediaPath := filepath.Join(res.OutputDir, mediaDir)
	err = p.run("Copying posts media files to output", func() error {
		if err := os.MkdirAll(mediaPath, 0o755); err != nil {
			return fmt.Errorf("creating media directory: %w", err)
		}
		copier := media.Copier{Config: cfg.Media, Tag: cfg.AssetTag, MediaDir: mediaPath}
		assets, err := copier.CopyAll(rewritten.Links)
		res.Assets = assets
		if err != nil {
			return err
		}
		return catalog.SaveFile(ctx, filepath.Join(mediaPath, catalog.DBFile), assets)
	})
	if err != nil {
		return res, err
	}

	err = p.run("Creating bulk assets zip archive", func() error {
		_, err := bundle.Zip(mediaPath, filepath.Join(res.OutputDir, bundle.ArchiveName))
		return err
	})
	if err != nil {
		return res, err
	}

	if cfg.OutputList {
		err := p.run("Writing listing of assets", func() error {
			return writeListing(filepath.Join(mediaPath, catalog.ListingName(cfg.ListFormat)), res.Assets, cfg.ListFormat)
		})
		if err != nil {
			return res, err
		}
	}

	err = p.run("Writing converted post markdown", func() error {
		return writeFile(filepath.Join(res.OutputDir, postFile), rewritten.WriteTo)
	})
	if err != nil {
		return res, err
	}

	return res, nil
}

func writeListing(path string, assets []types.Asset, format types.ListFormat) error {
	return writeFile(path, func(w io.Writer) (int64, error) {
		return 0, catalog.WriteListing(w, assets, format)
	})
}

func writeFile(path string, write func(io.Writer) (int64, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
