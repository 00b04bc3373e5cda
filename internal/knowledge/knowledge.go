// Package knowledge provides the reply exemplar store searched during
// grounded response generation. Exemplars are past replies ingested
// from the editorial mailbox; retrieval is PostgreSQL full-text search
// ranked by relevance.
package knowledge

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kaymen99/publishing-gmail-automation/pkg/repository"
)

// System is the retrieval contract the workflow consumes.
type System interface {
	// Search returns up to k exemplar reply fragments relevant to
	// query, most relevant first.
	Search(ctx context.Context, query string, k int) ([]string, error)
}

// Exemplar is a stored reply fragment with its originating inquiry.
type Exemplar struct {
	ID      uuid.UUID `json:"id"`
	Inquiry string    `json:"inquiry"`
	Reply   string    `json:"reply"`
}

// Store implements System over the exemplars table and additionally
// supports ingestion.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With("system", "knowledge"),
	}
}

const searchQuery = `
	SELECT reply
	FROM exemplars
	WHERE search @@ plainto_tsquery('english', $1)
	ORDER BY ts_rank(search, plainto_tsquery('english', $1)) DESC
	LIMIT $2`

func (s *Store) Search(ctx context.Context, query string, k int) ([]string, error) {
	replies, err := repository.QueryMany(ctx, s.db, searchQuery,
		[]any{query, k},
		func(row repository.Scanner) (string, error) {
			var reply string
			err := row.Scan(&reply)
			return reply, err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	s.logger.DebugContext(ctx, "exemplar search", "query", query, "hits", len(replies))
	return replies, nil
}

const insertQuery = `
	INSERT INTO exemplars (id, inquiry, reply)
	VALUES ($1, $2, $3)
	RETURNING id, inquiry, reply`

// Add ingests a reply exemplar and returns the stored record.
func (s *Store) Add(ctx context.Context, inquiry, reply string) (Exemplar, error) {
	exemplar, err := repository.QueryOne(ctx, s.db, insertQuery,
		[]any{uuid.New(), inquiry, reply},
		scanExemplar,
	)
	if err != nil {
		return Exemplar{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return exemplar, nil
}

const listQuery = `
	SELECT id, inquiry, reply
	FROM exemplars
	ORDER BY inquiry, id`

// List returns every stored exemplar.
func (s *Store) List(ctx context.Context) ([]Exemplar, error) {
	return repository.QueryMany(ctx, s.db, listQuery, nil, scanExemplar)
}

const deleteQuery = `
	DELETE FROM exemplars
	WHERE id = $1`

// Remove deletes a stored exemplar. Returns ErrNotFound if no
// exemplar has the given id.
func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(ctx, s.db, deleteQuery, id)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func scanExemplar(row repository.Scanner) (Exemplar, error) {
	var e Exemplar
	err := row.Scan(&e.ID, &e.Inquiry, &e.Reply)
	return e, err
}
