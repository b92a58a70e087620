// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for corpus queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over the triplet columns.
	Query string

	// Transition filters by exact canonical transition text.
	Transition string

	// RunID filters by extraction run.
	RunID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Transition == "" && q.RunID == ""
}

// QueryResult is a stored triplet with its run provenance.
type QueryResult struct {
	ParagraphA string `json:"paragraph_a" yaml:"paragraph_a"`
	Transition string `json:"transition" yaml:"transition"`
	ParagraphB string `json:"paragraph_b" yaml:"paragraph_b"`
	RunID      string `json:"run_id" yaml:"run_id"`
	Document   string `json:"document" yaml:"document"`
	Position   int    `json:"position" yaml:"position"`
}

// Retrieve queries the corpus with optional full-text search and structured
// filters. Full-text queries are ranked by relevance; structured-only queries
// come back in run order, then extraction position.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
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
			`SELECT t.paragraph_a, t.transition, t.paragraph_b, t.run_id, r.document, t.pos
			FROM triplets_fts
			JOIN triplets t ON t.rowid = triplets_fts.rowid
			LEFT JOIN runs r ON t.run_id = r.id
			WHERE triplets_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT t.paragraph_a, t.transition, t.paragraph_b, t.run_id, r.document, t.pos
			FROM triplets t
			LEFT JOIN runs r ON t.run_id = r.id
			WHERE 1=1`)
	}

	if opts.Transition != "" {
		qb.WriteString(` AND t.transition = ?`)
		args = append(args, opts.Transition)
	}

	if opts.RunID != "" {
		qb.WriteString(` AND t.run_id = ?`)
		args = append(args, opts.RunID)
	}

	if useFTS {
		qb.WriteString(` ORDER BY triplets_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY t.run_id, t.pos`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying corpus: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var qr QueryResult
		if err := rows.Scan(
			&qr.ParagraphA, &qr.Transition, &qr.ParagraphB,
			&qr.RunID, &qr.Document, &qr.Position,
		); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, qr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}

	return results, nil
}
