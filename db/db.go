package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"transparency/internal/catalog"
	"transparency/internal/config"
	"transparency/models"
)

// Table names
const (
	TableCandidates   = "candidates"
	TableCommissions  = "commissions"
	TableInstitutions = "institutions"
	TableNews         = "news_articles"
)

// Tables lists every collection table in seeding order.
var Tables = []string{TableCandidates, TableCommissions, TableInstitutions, TableNews}

// Storage keeps each collection as JSONB documents keyed by record id. The position column
// preserves the collection order the site presents by default.
type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Open connects to Postgres with the pool limits from cfg.
func Open(cfg config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if cfg.MaxConnections > 0 {
		db.SetMaxOpenConns(cfg.MaxConnections)
	}
	if cfg.MaxIdle > 0 {
		db.SetMaxIdleConns(cfg.MaxIdle)
	}
	return db, nil
}

type record struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

func selectAll[T any](ctx context.Context, db *sqlx.DB, table string) ([]T, error) {
	var rows []record
	query := fmt.Sprintf(`SELECT id, data FROM %s ORDER BY position, id`, table)
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		var v T
		if err := json.Unmarshal(r.Data, &v); err != nil {
			return nil, fmt.Errorf("decode %s %q: %w", table, r.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Storage) GetCandidates(ctx context.Context) ([]models.Candidate, error) {
	return selectAll[models.Candidate](ctx, s.db, TableCandidates)
}

func (s *Storage) GetCommissions(ctx context.Context) ([]models.Commission, error) {
	return selectAll[models.Commission](ctx, s.db, TableCommissions)
}

func (s *Storage) GetInstitutions(ctx context.Context) ([]models.Institution, error) {
	return selectAll[models.Institution](ctx, s.db, TableInstitutions)
}

func (s *Storage) GetNewsArticles(ctx context.Context) ([]models.NewsArticle, error) {
	return selectAll[models.NewsArticle](ctx, s.db, TableNews)
}

func upsert[T any](ctx context.Context, tx *sqlx.Tx, table string, records []T, id func(T) string) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, position, data)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE
        SET position = EXCLUDED.position, data = EXCLUDED.data, updated_at = NOW()`, table)
	for i, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode %s %q: %w", table, id(r), err)
		}
		if _, err := tx.ExecContext(ctx, query, id(r), i, data); err != nil {
			return fmt.Errorf("upsert %s %q: %w", table, id(r), err)
		}
	}
	return nil
}

// Seed writes a whole catalog document in one transaction. With replace set, rows not present
// in doc are removed first.
func (s *Storage) Seed(ctx context.Context, doc catalog.Document, replace bool) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	if replace {
		for _, table := range Tables {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
	}

	if err := upsert(ctx, tx, TableCandidates, doc.Candidates, func(r models.Candidate) string { return r.ID }); err != nil {
		return err
	}
	if err := upsert(ctx, tx, TableCommissions, doc.Commissions, func(r models.Commission) string { return r.ID }); err != nil {
		return err
	}
	if err := upsert(ctx, tx, TableInstitutions, doc.Institutions, func(r models.Institution) string { return r.ID }); err != nil {
		return err
	}
	if err := upsert(ctx, tx, TableNews, doc.News, func(r models.NewsArticle) string { return r.ID }); err != nil {
		return err
	}
	return tx.Commit()
}

// Counts returns the number of stored rows per table.
func (s *Storage) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(Tables))
	for _, table := range Tables {
		var n int
		if err := s.db.GetContext(ctx, &n, fmt.Sprintf(`SELECT COUNT(1) FROM %s`, table)); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
