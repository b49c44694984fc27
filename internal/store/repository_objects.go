package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-local-sync/internal/bus"
	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/models"
)

type objectRepository struct {
	*DB
	events *bus.Bus
	logger *logger.Logger
}

func NewObjectRepository(db *DB, events *bus.Bus, logger *logger.Logger) ObjectRepository {
	return &objectRepository{
		DB:     db,
		events: events,
		logger: logger,
	}
}

func (o *objectRepository) PutObject(ctx context.Context, obj models.Object) (models.Object, error) {
	log := logger.FromContext(ctx)

	payload, err := canonicalizePayload(obj.Payload)
	if err != nil {
		log.Err(err).
			Str("func", "objectRepository.PutObject").
			Str("id", obj.ID).
			Msg("object payload failed canonical round trip")
		return models.Object{}, fmt.Errorf("put object %s: %w", obj.ID, errors.Join(ErrSerialization, err))
	}

	obj.Payload = payload
	obj.AddedAt = time.Now()
	if obj.Origin == "" {
		obj.Origin = models.OriginClient
	}

	_, err = o.DB.ExecContext(ctx, upsertObject,
		obj.ID,
		obj.Type,
		string(obj.Payload),
		obj.AddedAt,
		string(obj.Origin),
	)
	if err != nil {
		log.Err(err).
			Str("func", "objectRepository.PutObject").
			Str("id", obj.ID).
			Msg("failed to execute upsert for object")
		return models.Object{}, fmt.Errorf("put object %s: %w", obj.ID, errors.Join(ErrStorage, err))
	}

	stored := obj
	o.events.Publish(bus.Event{
		Signal:   bus.SignalObjectChanged,
		ObjectID: stored.ID,
		Object:   &stored,
	})

	return stored, nil
}

func (o *objectRepository) GetObject(ctx context.Context, id string) (models.Object, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectObject(id).ToSql()
	if err != nil {
		return models.Object{}, fmt.Errorf("build object query: %w", err)
	}

	var (
		obj     models.Object
		payload string
		origin  string
	)
	row := o.DB.QueryRowContext(ctx, query, args...)
	err = row.Scan(&obj.ID, &obj.Type, &payload, &obj.AddedAt, &origin)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Object{}, fmt.Errorf("get object %s: %w", id, ErrObjectNotFound)
	}
	if err != nil {
		log.Err(err).
			Str("func", "objectRepository.GetObject").
			Str("id", id).
			Msg("failed to scan object row")
		return models.Object{}, fmt.Errorf("get object %s: %w", id, errors.Join(ErrStorage, err))
	}

	obj.Payload = json.RawMessage(payload)
	obj.Origin = models.Origin(origin)

	return obj, nil
}

func (o *objectRepository) RemoveObject(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	// observers see the removal before the record disappears, mirroring
	// the change event order of PutObject
	o.events.Publish(bus.Event{
		Signal:   bus.SignalObjectChanged,
		ObjectID: id,
		Object:   nil,
	})

	if _, err := o.DB.ExecContext(ctx, deleteObject, id); err != nil {
		log.Err(err).
			Str("func", "objectRepository.RemoveObject").
			Str("id", id).
			Msg("failed to delete object")
		return fmt.Errorf("remove object %s: %w", id, errors.Join(ErrStorage, err))
	}

	return nil
}

// canonicalizePayload runs the payload through a full JSON decode/encode
// cycle. The round trip both validates that the value is representable and
// produces a canonical copy that shares no memory with the caller.
func canonicalizePayload(payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 {
		return json.RawMessage("null"), nil
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return nil, err
	}

	canonical, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return canonical, nil
}
