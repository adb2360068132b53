package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"adminpanel/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, status string, offset, limit int) ([]model.Post, error)
	Count(ctx context.Context, status string) (int64, error)
	Search(ctx context.Context, term string, limit int) ([]model.Post, error)
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update updates an existing post.
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// FindByID finds a post by ID.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns a page of posts, newest publication date first, optionally
// filtered by status.
func (r *postRepository) List(ctx context.Context, status string, offset, limit int) ([]model.Post, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var posts []model.Post
	if err := q.Order("date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the number of posts, optionally filtered by status.
func (r *postRepository) Count(ctx context.Context, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Post{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Search returns up to limit posts whose title, excerpt, or author contains
// term, case-insensitively.
func (r *postRepository) Search(ctx context.Context, term string, limit int) ([]model.Post, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var posts []model.Post
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(author) LIKE ?",
			pattern, pattern, pattern).
		Order("date DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post row.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}
