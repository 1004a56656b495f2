package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type PostService interface {
	// ListPosts 返回当前用户名下、按已校验条件过滤排序后的帖子
	ListPosts(ctx context.Context, userID uint64, query *dto.PostQueryDTO) ([]*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context, userID uint64, query *dto.PostQueryDTO) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		d := &dto.PostDTO{}
		if err = copier.Copy(d, p); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}
