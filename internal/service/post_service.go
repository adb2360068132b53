package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

// PostPage is one screen of posts.
type PostPage struct {
	Posts      []model.Post
	Pagination model.Pagination
}

// PostService handles the post management screen.
type PostService interface {
	List(ctx context.Context, page int, status string) (*PostPage, error)
	Search(ctx context.Context, term string) (*PostPage, error)
	Create(ctx context.Context, act ActionContext, post *model.Post) (*model.Post, error)
	UpdateStatus(ctx context.Context, act ActionContext, id uint, status string) (*model.Post, error)
	Delete(ctx context.Context, act ActionContext, id uint) error
	Count(ctx context.Context) (int64, error)
}

type postService struct {
	repos *repository.Repositories
}

// NewPostService creates a new post service.
func NewPostService(repos *repository.Repositories) PostService {
	return &postService{repos: repos}
}

// List returns one page of posts, optionally filtered by status.
func (s *postService) List(ctx context.Context, page int, status string) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if status != "" && !model.ValidPostStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}
	total, err := s.repos.Posts.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	posts, err := s.repos.Posts.List(ctx, status, (page-1)*listPageLimit, listPageLimit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return &PostPage{
		Posts:      posts,
		Pagination: model.NewPagination(total, page, listPageLimit),
	}, nil
}

// Search returns up to searchResultCap matches on title, excerpt, or author
// as a single page reporting totalPages=1.
func (s *postService) Search(ctx context.Context, term string) (*PostPage, error) {
	posts, err := s.repos.Posts.Search(ctx, term, searchResultCap)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return &PostPage{
		Posts:      posts,
		Pagination: model.SearchPagination(len(posts)),
	}, nil
}

// Create inserts a post and its audit entry in one transaction.
func (s *postService) Create(ctx context.Context, act ActionContext, post *model.Post) (*model.Post, error) {
	if post.Status == "" {
		post.Status = model.PostStatusDraft
	}
	if !model.ValidPostStatus(post.Status) {
		return nil, apperrors.ErrInvalidStatus
	}
	if post.Date.IsZero() {
		post.Date = time.Now()
	}

	err := s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Posts.Create(ctx, post); err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		return recordAudit(ctx, tx.AuditLogs, act, model.ActionCreate, model.ResourcePost, &post.ID,
			map[string]any{"title": post.Title, "author": post.Author, "status": post.Status})
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateStatus moves a post between publication states and records the
// update in the same transaction.
func (s *postService) UpdateStatus(ctx context.Context, act ActionContext, id uint, status string) (*model.Post, error) {
	if !model.ValidPostStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}
	var out *model.Post
	err := s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		post, err := tx.Posts.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPostNotFound
			}
			return fmt.Errorf("find post: %w", err)
		}
		post.Status = status
		if err := tx.Posts.Update(ctx, post); err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if err := recordAudit(ctx, tx.AuditLogs, act, model.ActionUpdate, model.ResourcePost, &id,
			map[string]any{"status": status}); err != nil {
			return err
		}
		out = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a post and records the deletion in one transaction.
func (s *postService) Delete(ctx context.Context, act ActionContext, id uint) error {
	return s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Posts.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPostNotFound
			}
			return fmt.Errorf("find post: %w", err)
		}
		if err := tx.Posts.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return recordAudit(ctx, tx.AuditLogs, act, model.ActionDelete, model.ResourcePost, &id,
			map[string]any{})
	})
}

// Count returns the total number of posts for the dashboard.
func (s *postService) Count(ctx context.Context) (int64, error) {
	return s.repos.Posts.Count(ctx, "")
}
