// Copyright Science Live Hub, 2026. All rights reserved.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// QueryOptions holds parameters for ledger queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over labels.
	Query string

	// Type filters by nanopublication type.
	Type string

	// Network filters by publication network ("test" or "production").
	Network string

	// PublishedOnly restricts results to published entries.
	PublishedOnly bool

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// List queries the ledger with optional full-text search and structured
// filters. Full-text queries are ranked by relevance; structured-only
// queries are sorted newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT n.record_id, n.type, n.label, n.source_config, n.path,
				n.placeholder_uri, n.published_uri, n.network,
				n.generated_at, n.published_at, n.run_id
			FROM nanopubs_fts
			JOIN nanopubs n ON n.rowid = nanopubs_fts.rowid
			WHERE nanopubs_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT n.record_id, n.type, n.label, n.source_config, n.path,
				n.placeholder_uri, n.published_uri, n.network,
				n.generated_at, n.published_at, n.run_id
			FROM nanopubs n
			WHERE 1=1`)
	}

	if opts.Type != "" {
		qb.WriteString(` AND n.type = ?`)
		args = append(args, opts.Type)
	}

	if opts.Network != "" {
		qb.WriteString(` AND n.network = ?`)
		args = append(args, opts.Network)
	}

	if opts.PublishedOnly {
		qb.WriteString(` AND n.published_uri IS NOT NULL`)
	}

	if useFTS {
		qb.WriteString(` ORDER BY nanopubs_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY n.generated_at DESC`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e            Entry
			sourceConfig sql.NullString
			publishedURI sql.NullString
			network      sql.NullString
			generatedAt  sql.NullString
			publishedAt  sql.NullString
			runID        sql.NullString
		)

		if err := rows.Scan(
			&e.RecordID, &e.Type, &e.Label, &sourceConfig, &e.Path,
			&e.PlaceholderURI, &publishedURI, &network,
			&generatedAt, &publishedAt, &runID,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		e.SourceConfig = sourceConfig.String
		e.PublishedURI = publishedURI.String
		e.Network = network.String
		e.RunID = runID.String
		e.GeneratedAt = parseTime(generatedAt)
		e.PublishedAt = parseTime(publishedAt)

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Lookup returns the entry for one output path, or nil when the path has
// never been recorded.
func (s *Store) Lookup(ctx context.Context, path string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT record_id, type, label, source_config, path,
			placeholder_uri, published_uri, network,
			generated_at, published_at, run_id
		FROM nanopubs WHERE path = ?`, path)

	var (
		e            Entry
		sourceConfig sql.NullString
		publishedURI sql.NullString
		network      sql.NullString
		generatedAt  sql.NullString
		publishedAt  sql.NullString
		runID        sql.NullString
	)
	err := row.Scan(
		&e.RecordID, &e.Type, &e.Label, &sourceConfig, &e.Path,
		&e.PlaceholderURI, &publishedURI, &network,
		&generatedAt, &publishedAt, &runID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up %s: %w", path, err)
	}

	e.SourceConfig = sourceConfig.String
	e.PublishedURI = publishedURI.String
	e.Network = network.String
	e.RunID = runID.String
	e.GeneratedAt = parseTime(generatedAt)
	e.PublishedAt = parseTime(publishedAt)
	return &e, nil
}

func parseTime(v sql.NullString) time.Time {
	if !v.Valid || v.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, v.String)
	if err != nil {
		return time.Time{}
	}
	return t
}
