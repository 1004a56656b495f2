package repository

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type PostRepo interface {
	// ListPosts 按已校验过的过滤条件返回 owner 名下的帖子
	ListPosts(ctx context.Context, ownerID uint64, query *dto.PostQueryDTO) ([]*model.Post, error)
	// ListAllPosts 返回 owner 的全量帖子，供聚合使用
	ListAllPosts(ctx context.Context, ownerID uint64) ([]*model.Post, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// ownedBy 基础会话：scope 级与显式条件各带一次 user_id 过滤，双层缺一不可
func (s *PostRepoImpl) ownedBy(ctx context.Context, ownerID uint64) *gorm.DB {
	return s.db.WithContext(ctx).
		Scopes(model.OwnedBy(ownerID)).
		Where("user_id = ?", ownerID)
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, ownerID uint64, query *dto.PostQueryDTO) ([]*model.Post, error) {
	tx := s.ownedBy(ctx, ownerID)

	if query.Platform != nil {
		tx = tx.Where("platform = ?", *query.Platform)
	}
	if query.MediaType != nil {
		tx = tx.Where("media_type = ?", *query.MediaType)
	}
	if query.StartDate != nil {
		tx = tx.Where("posted_at >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		tx = tx.Where("posted_at <= ?", *query.EndDate)
	}
	if query.Search != nil {
		tx = tx.Where("caption LIKE ?", "%"+*query.Search+"%")
	}

	// 排序字段与方向均来自白名单，可安全拼接
	posts := make([]*model.Post, 0)
	result := tx.Order(fmt.Sprintf("%s %s", query.SortField, query.SortOrder)).Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) ListAllPosts(ctx context.Context, ownerID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.ownedBy(ctx, ownerID).Order("posted_at DESC").Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}
