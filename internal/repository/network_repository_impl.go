package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefixes for the hospital network
	RedisTransferKeyPrefix = "transfer:"
	RedisMessageKeyPrefix  = "message:"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second

	scanBatchSize = 500
)

type networkRepository struct {
	redisClient *redis.Client
}

func NewNetworkRepository(redisClient *redis.Client) domainRepo.NetworkRepository {
	return &networkRepository{redisClient: redisClient}
}

func (r *networkRepository) SaveTransfer(ctx context.Context, transfer *entity.Transfer) error {
	return r.set(ctx, RedisTransferKeyPrefix+transfer.ID, transfer)
}

func (r *networkRepository) FindTransfer(ctx context.Context, id string) (*entity.Transfer, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := r.redisClient.Get(ctx, RedisTransferKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var transfer entity.Transfer
	if err := json.Unmarshal(raw, &transfer); err != nil {
		return nil, fmt.Errorf("decode transfer %s: %w", id, err)
	}
	return &transfer, nil
}

func (r *networkRepository) FindTransfers(ctx context.Context) ([]entity.Transfer, error) {
	values, err := r.getByPrefix(ctx, RedisTransferKeyPrefix)
	if err != nil {
		return nil, err
	}

	transfers := make([]entity.Transfer, 0, len(values))
	for _, raw := range values {
		var transfer entity.Transfer
		if err := json.Unmarshal(raw, &transfer); err != nil {
			return nil, fmt.Errorf("decode transfer: %w", err)
		}
		transfers = append(transfers, transfer)
	}
	sort.Slice(transfers, func(i, j int) bool {
		return transfers[i].Timestamp.Before(transfers[j].Timestamp)
	})
	return transfers, nil
}

func (r *networkRepository) SaveMessage(ctx context.Context, message *entity.Message) error {
	return r.set(ctx, RedisMessageKeyPrefix+message.ID, message)
}

func (r *networkRepository) FindMessages(ctx context.Context) ([]entity.Message, error) {
	values, err := r.getByPrefix(ctx, RedisMessageKeyPrefix)
	if err != nil {
		return nil, err
	}

	messages := make([]entity.Message, 0, len(values))
	for _, raw := range values {
		var message entity.Message
		if err := json.Unmarshal(raw, &message); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (r *networkRepository) set(ctx context.Context, key string, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, key, raw, 0).Err()
}

// getByPrefix walks the keyspace with SCAN and fetches each batch of values
// in one pipeline round trip.
func (r *networkRepository) getByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	var values [][]byte
	var cursor uint64
	seen := make(map[string]struct{})
	for {
		keys, next, err := r.redisClient.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", prefix, err)
		}

		fresh := keys[:0]
		for _, key := range keys {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				fresh = append(fresh, key)
			}
		}
		keys = fresh

		if len(keys) > 0 {
			pipe := r.redisClient.Pipeline()
			cmds := make([]*redis.StringCmd, len(keys))
			for i, key := range keys {
				cmds[i] = pipe.Get(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
				return nil, fmt.Errorf("fetch %s: %w", prefix, err)
			}
			for _, cmd := range cmds {
				raw, err := cmd.Bytes()
				if err == redis.Nil {
					continue
				}
				if err != nil {
					return nil, err
				}
				values = append(values, raw)
			}
		}

		cursor = next
		if cursor == 0 {
			return values, nil
		}
	}
}
