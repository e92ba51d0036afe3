package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// ShopStatusRepositoryImpl implements domain.ShopStatusRepository on a
// single Redis key shared by every session. Writes are last-writer-wins and
// readers always observe the latest admin write.
type ShopStatusRepositoryImpl struct {
	client *redis.Client
	key    string
}

// NewShopStatusRepository creates a new shop status repository
func NewShopStatusRepository(client *redis.Client) domain.ShopStatusRepository {
	return &ShopStatusRepositoryImpl{
		client: client,
		key:    "shop:open",
	}
}

// IsOpen implements domain.ShopStatusRepository. The shop defaults to open
// when the flag has never been set.
func (r *ShopStatusRepositoryImpl) IsOpen(ctx context.Context) (bool, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == redis.Nil {
			return true, nil
		}
		return false, err
	}
	return val == "1", nil
}

// SetOpen implements domain.ShopStatusRepository
func (r *ShopStatusRepositoryImpl) SetOpen(ctx context.Context, open bool) error {
	val := "0"
	if open {
		val = "1"
	}
	return r.client.Set(ctx, r.key, val, 0).Err()
}
