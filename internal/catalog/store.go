// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists the asset metadata of a published post and
// renders it as a listing.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/post-publish/pkg/types"
)

// DBFile is the name of the metadata database inside the media directory.
const DBFile = "__assets.db"

// Store manages the asset metadata SQLite database of one publish run.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the metadata database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS assets (
		filename TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT,
		tag TEXT,
		video_width INTEGER,
		video_height INTEGER,
		image_width INTEGER,
		image_height INTEGER
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save replaces the stored mapping with assets, keeping their order.
func (s *Store) Save(ctx context.Context, assets []types.Asset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM assets`); err != nil {
		return fmt.Errorf("clearing assets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO assets (filename, position, type, title, slug, description, tag,
			video_width, video_height, image_width, image_height)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range assets {
		_, err := stmt.ExecContext(ctx,
			a.Filename, i, string(a.Type), a.Title, a.Slug,
			nullString(a.Description), nullString(a.Tag),
			nullInt(a.VideoWidth), nullInt(a.VideoHeight),
			nullInt(a.ImageWidth), nullInt(a.ImageHeight),
		)
		if err != nil {
			return fmt.Errorf("inserting asset %s: %w", a.Filename, err)
		}
	}

	return tx.Commit()
}

// Load returns the stored mapping in saved order.
func (s *Store) Load(ctx context.Context) ([]types.Asset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT filename, type, title, slug, description, tag,
			video_width, video_height, image_width, image_height
		 FROM assets ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying assets: %w", err)
	}
	defer rows.Close()

	var assets []types.Asset
	for rows.Next() {
		var (
			a              types.Asset
			assetType      string
			desc, tag      sql.NullString
			vw, vh, iw, ih sql.NullInt64
		)
		if err := rows.Scan(&a.Filename, &assetType, &a.Title, &a.Slug, &desc, &tag, &vw, &vh, &iw, &ih); err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}
		a.Type = types.AssetType(assetType)
		if desc.Valid {
			a.Description = &desc.String
		}
		if tag.Valid {
			a.Tag = &tag.String
		}
		a.VideoWidth, a.VideoHeight = int(vw.Int64), int(vh.Int64)
		a.ImageWidth, a.ImageHeight = int(iw.Int64), int(ih.Int64)
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// SaveFile writes assets to a fresh database at path and closes it.
func SaveFile(ctx context.Context, path string, assets []types.Asset) error {
	s, err := Open(path)
	if err != nil {
		return err
	}
	if err := s.Save(ctx, assets); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}
