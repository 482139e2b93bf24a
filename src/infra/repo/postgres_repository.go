package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokesapi/src/core/domain"
	"jokesapi/src/infra/db"
)

// pgJokeBody is the JSONB document stored per joke.
type pgJokeBody struct {
	Type      int    `json:"type"`
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

// PostgresRepository implements ports.JokeRepository with one JSONB
// document per row.
type PostgresRepository struct {
	store        *db.Postgres
	pool         *pgxpool.Pool
	queryTimeout time.Duration
	log          *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, queryTimeout time.Duration, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		store:        pg,
		pool:         pg.Pool,
		queryTimeout: queryTimeout,
		log:          log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.store.Health(ctx)
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]domain.Joke, error) {
	const q = `
		SELECT id::text, version, doc
		FROM jokes
		ORDER BY created_at, id
	`
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	return r.query(ctx, "find all", q)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) ([]domain.Joke, error) {
	const q = `
		SELECT id::text, version, doc
		FROM jokes
		WHERE id = $1
	`
	jokeID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	return r.query(ctx, "find by id", q, jokeID)
}

func (r *PostgresRepository) FindOneByType(ctx context.Context, jokeType int) (*domain.Joke, error) {
	const q = `
		SELECT id::text, version, doc
		FROM jokes
		WHERE (doc ->> 'type')::int = $1
		ORDER BY created_at, id
		LIMIT 1
	`
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	j, err := scanJoke(r.pool.QueryRow(ctx, q, jokeType))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.classify("find one by type", err)
	}
	return j, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, fields domain.JokeFields) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (id, doc)
		VALUES ($1, $2)
		RETURNING id::text, version, doc
	`
	if err := validateNew(fields); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	body := pgJokeBody{
		Type:      *fields.Type,
		Setup:     *fields.Setup,
		Punchline: *fields.Punchline,
	}
	j, err := scanJoke(r.pool.QueryRow(ctx, q, uuid.New(), body))
	if err != nil {
		return nil, r.classify("insert", err)
	}
	return j, nil
}

func (r *PostgresRepository) UpdateByID(ctx context.Context, id string, fields domain.JokeFields) (*domain.Joke, error) {
	const q = `
		UPDATE jokes
		SET doc = doc || $2::jsonb, version = version + 1
		WHERE id = $1
		RETURNING id::text, version, doc
	`
	jokeID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	if err := validatePatch(fields); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	j, err := scanJoke(r.pool.QueryRow(ctx, q, jokeID, patchDocument(fields)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.classify("update", err)
	}
	return j, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM jokes WHERE id = $1`

	jokeID, err := parseUUID(id)
	if err != nil {
		return false, err
	}

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	res, err := r.pool.Exec(ctx, q, jokeID)
	if err != nil {
		return false, r.classify("delete", err)
	}
	return res.RowsAffected() > 0, nil
}

func (r *PostgresRepository) query(ctx context.Context, op, q string, args ...any) ([]domain.Joke, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, r.classify(op, err)
	}
	defer rows.Close()

	jokes := []domain.Joke{}
	for rows.Next() {
		j, err := scanJoke(rows)
		if err != nil {
			return nil, r.classify(op, err)
		}
		jokes = append(jokes, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify(op, err)
	}
	return jokes, nil
}

func (r *PostgresRepository) classify(op string, err error) error {
	r.log.Error("postgres "+op+" failed", "error", err)
	return classifyPgError(op, err)
}

func scanJoke(row pgx.Row) (*domain.Joke, error) {
	var (
		j    domain.Joke
		body pgJokeBody
	)
	if err := row.Scan(&j.ID, &j.Version, &body); err != nil {
		return nil, err
	}
	j.Type = body.Type
	j.Setup = body.Setup
	j.Punchline = body.Punchline
	return &j, nil
}

func classifyPgError(op string, err error) *domain.StoreError {
	var (
		pgErr      *pgconn.PgError
		connectErr *pgconn.ConnectError
	)
	switch {
	case errors.As(err, &connectErr),
		pgconn.Timeout(err),
		errors.Is(err, context.DeadlineExceeded):
		return domain.NewUnavailableError(err)
	case errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08"):
		return domain.NewUnavailableError(err)
	case errors.As(err, &pgErr) && (strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")):
		return &domain.StoreError{
			Base:    domain.ErrInvalidInput,
			Message: pgErr.Message,
			Field:   pgErr.ColumnName,
			Err:     err,
		}
	default:
		return domain.NewStoreError(op, err)
	}
}

func parseUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &domain.StoreError{
			Base:    domain.ErrInvalidInput,
			Message: fmt.Sprintf("Cast to UUID failed for value %q at path \"_id\"", id),
			Field:   "_id",
			Err:     err,
		}
	}
	return u, nil
}

// patchDocument holds only the present fields, so jsonb || keeps the rest.
func patchDocument(f domain.JokeFields) map[string]any {
	doc := map[string]any{}
	if f.Type != nil {
		doc["type"] = *f.Type
	}
	if f.Setup != nil {
		doc["setup"] = *f.Setup
	}
	if f.Punchline != nil {
		doc["punchline"] = *f.Punchline
	}
	return doc
}
