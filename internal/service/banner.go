package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

var ErrBannerNotFound = errors.New("banner not found")

type BannerService interface {
	Put(ctx context.Context, slot string, req *dto.BannerRequest) (*model.Banner, error)
	Delete(ctx context.Context, slot string) error
	List(ctx context.Context) ([]*model.Banner, error)
}

type bannerServiceImpl struct {
	bannerRepo repository.BannerRepository
}

func NewBannerService(bannerRepo repository.BannerRepository) BannerService {
	return &bannerServiceImpl{
		bannerRepo: bannerRepo,
	}
}

func (s *bannerServiceImpl) Put(ctx context.Context, slot string, req *dto.BannerRequest) (*model.Banner, error) {
	if slot == "" || req.ImageURL == "" {
		return nil, fmt.Errorf("slot and image_url are required")
	}

	banner := &model.Banner{
		Slot:      slot,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.bannerRepo.Put(ctx, banner); err != nil {
		return nil, fmt.Errorf("store banner: %w", err)
	}

	return banner, nil
}

func (s *bannerServiceImpl) Delete(ctx context.Context, slot string) error {
	err := s.bannerRepo.Delete(ctx, slot)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBannerNotFound
	}
	return err
}

func (s *bannerServiceImpl) List(ctx context.Context) ([]*model.Banner, error) {
	return s.bannerRepo.List(ctx)
}
