package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/inkpress/internal/content/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertPost(ctx context.Context, conn *gorm.DB, post *domain.Post) error {
	return conn.WithContext(ctx).Create(post).Error
}

func (r *repo) FindPostByID(ctx context.Context, conn *gorm.DB, id string) (*domain.Post, error) {
	var post domain.Post
	err := conn.WithContext(ctx).Where("id = ?", id).Take(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *repo) FindPostBySlug(ctx context.Context, conn *gorm.DB, slug, postType string) (*domain.Post, error) {
	var post domain.Post
	err := conn.WithContext(ctx).
		Where("slug = ? AND type = ?", slug, postType).
		Take(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *repo) UpdatePost(ctx context.Context, conn *gorm.DB, id string, fields map[string]any) error {
	return conn.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) DeletePost(ctx context.Context, conn *gorm.DB, id string) error {
	return conn.WithContext(ctx).Where("id = ?", id).Delete(&domain.Post{}).Error
}

func (r *repo) UpsertPostsMeta(ctx context.Context, conn *gorm.DB, meta *domain.PostsMeta) error {
	var existing domain.PostsMeta
	err := conn.WithContext(ctx).
		Where("post_id = ?", meta.PostID).
		Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return conn.WithContext(ctx).Create(meta).Error
	}
	if err != nil {
		return err
	}

	meta.ID = existing.ID
	return conn.WithContext(ctx).Save(meta).Error
}

func (r *repo) FindPostsMeta(ctx context.Context, conn *gorm.DB, postID string) (*domain.PostsMeta, error) {
	var meta domain.PostsMeta
	err := conn.WithContext(ctx).Where("post_id = ?", postID).Take(&meta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meta, nil
}

func (r *repo) InsertTag(ctx context.Context, conn *gorm.DB, tag *domain.Tag) error {
	return conn.WithContext(ctx).Create(tag).Error
}

func (r *repo) FindTagBySlug(ctx context.Context, conn *gorm.DB, slug string) (*domain.Tag, error) {
	var tag domain.Tag
	err := conn.WithContext(ctx).Where("slug = ?", slug).Take(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// ReplacePostTags swaps the tag set for a post in one transaction, keeping
// the caller-provided sort_order.
func (r *repo) ReplacePostTags(ctx context.Context, conn *gorm.DB, postID string, tags []domain.PostsTag) error {
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&domain.PostsTag{}).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		return tx.Create(&tags).Error
	})
}

func (r *repo) TagsForPost(ctx context.Context, conn *gorm.DB, postID string) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := conn.WithContext(ctx).
		Joins("JOIN posts_tags ON posts_tags.tag_id = tags.id").
		Where("posts_tags.post_id = ?", postID).
		Order("posts_tags.sort_order").
		Find(&tags).Error
	return tags, err
}

func (r *repo) ReplacePostAuthors(ctx context.Context, conn *gorm.DB, postID string, authors []domain.PostsAuthor) error {
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&domain.PostsAuthor{}).Error; err != nil {
			return err
		}
		if len(authors) == 0 {
			return nil
		}
		return tx.Create(&authors).Error
	})
}

func (r *repo) InsertSnippet(ctx context.Context, conn *gorm.DB, snippet *domain.Snippet) error {
	return conn.WithContext(ctx).Create(snippet).Error
}

func (r *repo) AddRevision(ctx context.Context, conn *gorm.DB, rev *domain.MobiledocRevision) error {
	return conn.WithContext(ctx).Create(rev).Error
}

func (r *repo) RevisionsForPost(ctx context.Context, conn *gorm.DB, postID string) ([]domain.MobiledocRevision, error) {
	var revs []domain.MobiledocRevision
	err := conn.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at").
		Find(&revs).Error
	return revs, err
}
