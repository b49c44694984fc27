package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/models"
)

type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (q *queueRepository) Enqueue(ctx context.Context, target string, options models.RequestOptions) (int64, error) {
	log := logger.FromContext(ctx)

	headers, err := encodeHeaders(options.Headers)
	if err != nil {
		return 0, fmt.Errorf("enqueue request: encode headers: %w", err)
	}

	result, err := q.DB.ExecContext(ctx, enqueueRequest,
		target,
		options.Method,
		headers,
		[]byte(options.Body),
		time.Now(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("target", target).
			Msg("failed to insert queued request")
		return 0, fmt.Errorf("enqueue request: %w", errors.Join(ErrStorage, err))
	}

	sequence, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("enqueue request: read assigned sequence: %w", errors.Join(ErrStorage, err))
	}

	return sequence, nil
}

func (q *queueRepository) PeekNext(ctx context.Context) (models.QueuedRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPendingRequests(1).ToSql()
	if err != nil {
		return models.QueuedRequest{}, fmt.Errorf("build peek query: %w", err)
	}

	row := q.DB.QueryRowContext(ctx, query, args...)
	request, err := scanQueuedRequest(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.QueuedRequest{}, ErrQueueEmpty
	}
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.PeekNext").
			Msg("failed to scan queued request row")
		return models.QueuedRequest{}, fmt.Errorf("peek next request: %w", errors.Join(ErrStorage, err))
	}

	return request, nil
}

func (q *queueRepository) Dequeue(ctx context.Context, sequence int64) error {
	log := logger.FromContext(ctx)

	if _, err := q.DB.ExecContext(ctx, dequeueRequest, sequence); err != nil {
		log.Err(err).
			Str("func", "queueRepository.Dequeue").
			Int64("sequence", sequence).
			Msg("failed to delete queued request")
		return fmt.Errorf("dequeue request %d: %w", sequence, errors.Join(ErrStorage, err))
	}

	return nil
}

func (q *queueRepository) HasPending(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPendingCount().ToSql()
	if err != nil {
		return false, fmt.Errorf("build pending count query: %w", err)
	}

	var count int64
	if err = q.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "queueRepository.HasPending").
			Msg("failed to count queued requests")
		return false, fmt.Errorf("count pending requests: %w", errors.Join(ErrStorage, err))
	}

	return count > 0, nil
}

func (q *queueRepository) ListPending(ctx context.Context) ([]models.QueuedRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPendingRequests(0).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending list query: %w", err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ListPending").
			Msg("failed to query pending requests")
		return nil, fmt.Errorf("list pending requests: %w", errors.Join(ErrStorage, err))
	}
	defer rows.Close()

	var requests []models.QueuedRequest
	for rows.Next() {
		request, err := scanQueuedRequest(rows.Scan)
		if err != nil {
			log.Err(err).
				Str("func", "queueRepository.ListPending").
				Msg("failed to scan queued request rows")
			return nil, fmt.Errorf("scan pending request: %w", errors.Join(ErrStorage, err))
		}
		requests = append(requests, request)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending requests: %w", errors.Join(ErrStorage, err))
	}

	return requests, nil
}

func scanQueuedRequest(scan func(dest ...any) error) (models.QueuedRequest, error) {
	var (
		request models.QueuedRequest
		headers sql.NullString
		body    []byte
	)

	if err := scan(
		&request.Sequence,
		&request.Target,
		&request.Options.Method,
		&headers,
		&body,
		&request.AddedAt,
	); err != nil {
		return models.QueuedRequest{}, err
	}

	if headers.Valid && headers.String != "" {
		if err := json.Unmarshal([]byte(headers.String), &request.Options.Headers); err != nil {
			return models.QueuedRequest{}, fmt.Errorf("decode request headers: %w", err)
		}
	}
	if len(body) > 0 {
		request.Options.Body = json.RawMessage(body)
	}

	return request, nil
}

func encodeHeaders(headers map[string]string) (sql.NullString, error) {
	if len(headers) == 0 {
		return sql.NullString{}, nil
	}

	encoded, err := json.Marshal(headers)
	if err != nil {
		return sql.NullString{}, err
	}

	return sql.NullString{String: string(encoded), Valid: true}, nil
}
