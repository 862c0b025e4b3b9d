package service

import (
	"context"

	"managedb/internal/models"
	"managedb/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, userID, title, content string) (*models.Post, error)
	UpdatePosts(ctx context.Context, userID string, patch models.PostPatch) error
	DeletePosts(ctx context.Context, userID string) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) CreatePost(ctx context.Context, userID, title, content string) (*models.Post, error) {
	post := &models.Post{
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	err := p.postRepo.Insert(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePosts(ctx context.Context, userID string, patch models.PostPatch) error {
	err := p.postRepo.UpdateByUserID(ctx, userID, patch)
	if err != nil {
		return err
	}

	return nil
}

func (p *postService) DeletePosts(ctx context.Context, userID string) error {
	err := p.postRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return nil
}
