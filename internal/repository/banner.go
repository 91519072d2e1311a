package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"storefront-backend/internal/model"
)

const bannerHashKey = "storefront:banners"

// BannerRepository keeps promotional banners in redis, keyed by slot.
type BannerRepository interface {
	Put(ctx context.Context, banner *model.Banner) error
	Get(ctx context.Context, slot string) (*model.Banner, error)
	Delete(ctx context.Context, slot string) error
	List(ctx context.Context) ([]*model.Banner, error)
}

type bannerRepoImpl struct {
	rdb *redis.Client
}

func NewBannerRepository(rdb *redis.Client) BannerRepository {
	return &bannerRepoImpl{
		rdb: rdb,
	}
}

func (r *bannerRepoImpl) Put(ctx context.Context, banner *model.Banner) error {
	payload, err := json.Marshal(banner)
	if err != nil {
		return err
	}

	return r.rdb.HSet(ctx, bannerHashKey, banner.Slot, payload).Err()
}

func (r *bannerRepoImpl) Get(ctx context.Context, slot string) (*model.Banner, error) {
	payload, err := r.rdb.HGet(ctx, bannerHashKey, slot).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	var banner model.Banner
	if err := json.Unmarshal([]byte(payload), &banner); err != nil {
		return nil, err
	}

	return &banner, nil
}

func (r *bannerRepoImpl) Delete(ctx context.Context, slot string) error {
	deleted, err := r.rdb.HDel(ctx, bannerHashKey, slot).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *bannerRepoImpl) List(ctx context.Context) ([]*model.Banner, error) {
	entries, err := r.rdb.HGetAll(ctx, bannerHashKey).Result()
	if err != nil {
		return nil, err
	}

	banners := make([]*model.Banner, 0, len(entries))
	for _, payload := range entries {
		var banner model.Banner
		if err := json.Unmarshal([]byte(payload), &banner); err != nil {
			return nil, err
		}
		banners = append(banners, &banner)
	}

	return banners, nil
}
