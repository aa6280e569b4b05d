// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite replaces local media references in a post with asset
// identifiers and collects the reference table used to copy the media.
package rewrite

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/post-publish/internal/links"
	"github.com/pdiddy/post-publish/pkg/types"
)

// Rewriter converts post text for one asset tag.
type Rewriter struct {
	// Tag is the asset tag applied to every slug. Empty means untagged.
	Tag string
}

// Result holds the rewritten post and the references it contained.
type Result struct {
	// Lines are the output lines including their original line terminators.
	Lines []string

	// Links maps each local reference path to its first-seen entry.
	Links *types.LinkTable

	// Rewritten counts the lines that were modified.
	Rewritten int
}

// Rewrite processes r line by line. Every local reference has its target
// path replaced with the asset identifier; everything else in the line,
// including the name and description, is kept. A path seen before reuses
// the slug recorded for its first occurrence.
func (rw Rewriter) Rewrite(r io.Reader) (Result, error) {
	res := Result{Links: types.NewLinkTable()}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			out := rw.RewriteLine(line, res.Links)
			if out != line {
				res.Rewritten++
			}
			res.Lines = append(res.Lines, out)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("reading post: %w", err)
		}
	}
	return res, nil
}

// RewriteLine rewrites a single line, recording new references in table.
// Lines without references are returned unchanged. A nil table is treated as
// empty and nothing is recorded.
func (rw Rewriter) RewriteLine(line string, table *types.LinkTable) string {
	found := links.Find(line)
	if found == nil {
		return line
	}
	if table == nil {
		table = types.NewLinkTable()
	}

	ids := make([]string, len(found))
	for i, m := range found {
		if !links.IsLocal(m.Path) {
			continue
		}
		entry, ok := table.Get(m.Path)
		if !ok {
			entry = types.LinkEntry{
				Name:           m.Name,
				Slug:           links.Slug(m.Name, rw.Tag),
				Description:    m.Description,
				HasDescription: m.HasDescription,
			}
			table.Add(m.Path, entry)
		}
		ids[i] = links.AssetScheme + entry.Slug
	}

	// Splice from the right so earlier spans stay valid.
	out := line
	for i := len(found) - 1; i >= 0; i-- {
		if ids[i] == "" {
			continue
		}
		m := found[i]
		out = out[:m.PathStart] + ids[i] + out[m.PathEnd:]
	}
	return out
}

// WriteTo writes the rewritten post to w.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range r.Lines {
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
