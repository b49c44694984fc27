package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	upsertObject = `INSERT INTO objects (id, type, payload, added_at, origin)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			payload = excluded.payload,
			added_at = excluded.added_at,
			origin = excluded.origin;`

	deleteObject = `DELETE FROM objects WHERE id = ?;`

	enqueueRequest = `INSERT INTO request_queue (target, method, headers, body, added_at)
		VALUES (?, ?, ?, ?, ?);`

	dequeueRequest = `DELETE FROM request_queue WHERE sequence = ?;`
)

var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var objectColumns = []string{"id", "type", "payload", "added_at", "origin"}

var queueColumns = []string{"sequence", "target", "method", "headers", "body", "added_at"}

// selectObject builds the lookup query for a single cached object.
func selectObject(id string) sq.SelectBuilder {
	return queryBuilder.
		Select(objectColumns...).
		From("objects").
		Where(sq.Eq{"id": id})
}

// selectPendingRequests builds the queue read in replay order: earliest
// AddedAt first, sequence as the tie-break. A zero limit means no limit.
func selectPendingRequests(limit uint64) sq.SelectBuilder {
	builder := queryBuilder.
		Select(queueColumns...).
		From("request_queue").
		OrderBy("added_at ASC", "sequence ASC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder
}

// selectPendingCount builds the queue emptiness check.
func selectPendingCount() sq.SelectBuilder {
	return queryBuilder.
		Select("COUNT(*)").
		From("request_queue")
}
