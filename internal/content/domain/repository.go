package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository persists content entities. The session handle is passed per
// call so callers can route work through whichever session they acquired.
type Repository interface {
	InsertPost(ctx context.Context, conn *gorm.DB, post *Post) error
	FindPostByID(ctx context.Context, conn *gorm.DB, id string) (*Post, error)
	FindPostBySlug(ctx context.Context, conn *gorm.DB, slug, postType string) (*Post, error)
	UpdatePost(ctx context.Context, conn *gorm.DB, id string, fields map[string]any) error
	DeletePost(ctx context.Context, conn *gorm.DB, id string) error

	UpsertPostsMeta(ctx context.Context, conn *gorm.DB, meta *PostsMeta) error
	FindPostsMeta(ctx context.Context, conn *gorm.DB, postID string) (*PostsMeta, error)

	InsertTag(ctx context.Context, conn *gorm.DB, tag *Tag) error
	FindTagBySlug(ctx context.Context, conn *gorm.DB, slug string) (*Tag, error)
	ReplacePostTags(ctx context.Context, conn *gorm.DB, postID string, tags []PostsTag) error
	TagsForPost(ctx context.Context, conn *gorm.DB, postID string) ([]Tag, error)

	ReplacePostAuthors(ctx context.Context, conn *gorm.DB, postID string, authors []PostsAuthor) error

	InsertSnippet(ctx context.Context, conn *gorm.DB, snippet *Snippet) error

	// AddRevision appends a content snapshot; revisions are never updated
	// or deleted.
	AddRevision(ctx context.Context, conn *gorm.DB, rev *MobiledocRevision) error
	RevisionsForPost(ctx context.Context, conn *gorm.DB, postID string) ([]MobiledocRevision, error)
}
