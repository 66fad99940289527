package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

// Key prefix keeps document keys out of the way of other users of the same
// Redis database.
const redisKeyPrefix = "doc:"

// RedisStore keeps each document as a JSON string under doc:{collection}:{id}.
// The membership query maps onto a single MGET, so one chunk is still one
// round trip.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(collection, id string) string {
	return redisKeyPrefix + collection + ":" + id
}

func (s *RedisStore) CreateDoc(ctx context.Context, collection string, fields Fields) (string, error) {
	id := uuid.NewString()
	if err := s.SetDoc(ctx, collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) SetDoc(ctx context.Context, collection, id string, fields Fields) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(collection, id), payload, 0).Err(); err != nil {
		return redisErr("set document", err)
	}
	return nil
}

func (s *RedisStore) GetDoc(ctx context.Context, collection, id string) (Fields, error) {
	payload, err := s.client.Get(ctx, redisKey(collection, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, redisErr("get document", err)
	}
	var fields Fields
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return fields, nil
}

func (s *RedisStore) UpdateDoc(ctx context.Context, collection, id string, partial Fields) error {
	// Read-merge-write under optimistic locking; a concurrent writer aborts
	// the transaction and we retry.
	key := redisKey(collection, id)
	merge := func(tx *redis.Tx) error {
		payload, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return redisErr("get document", err)
		}
		var fields Fields
		if err := json.Unmarshal(payload, &fields); err != nil {
			return fmt.Errorf("unmarshal document: %w", err)
		}
		for k, v := range partial {
			fields[k] = v
		}
		merged, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("marshal document: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, merged, 0)
			return nil
		})
		return err
	}

	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		err := s.client.Watch(ctx, merge, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return dErrors.New(dErrors.CodeUnavailable, "update document: too many write conflicts")
}

func (s *RedisStore) DeleteDoc(ctx context.Context, collection, id string) error {
	deleted, err := s.client.Del(ctx, redisKey(collection, id)).Result()
	if err != nil {
		return redisErr("delete document", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) QueryMembership(ctx context.Context, collection string, ids []string) ([]Doc, error) {
	if len(ids) > MaxBatch {
		return nil, ErrBatchTooLarge
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisKey(collection, id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, redisErr("membership query", err)
	}
	var docs []Doc
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// nil entry: id has no document, skip it.
			continue
		}
		var fields Fields
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, fmt.Errorf("unmarshal document %s: %w", ids[i], err)
		}
		docs = append(docs, Doc{ID: ids[i], Fields: fields})
	}
	return docs, nil
}

func redisErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, op+" timed out")
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, op+" failed")
}
