// Package domain contains persistence models for posts, tags and their
// junctions. Identifiers are 24-character opaque strings assigned by the
// writer; created_at is always set by the caller.
package domain

import (
	"time"
)

// PostStatus represents the publishing lifecycle of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusSent      PostStatus = "sent"
)

// Visibility controls which audience may read a piece of content.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityMembers Visibility = "members"
	VisibilityPaid    Visibility = "paid"
)

// Post is the central content entity. Slug is unique per type, not globally:
// a page and a post may share a slug.
type Post struct {
	ID                   string     `gorm:"primaryKey;size:24"`
	UUID                 string     `gorm:"column:uuid;size:36;not null"`
	Title                string     `gorm:"size:2000;not null"`
	Slug                 string     `gorm:"size:191;not null;uniqueIndex:posts_slug_type_unique,priority:1"`
	Mobiledoc            *string    `gorm:"type:longtext"`
	HTML                 *string    `gorm:"column:html;type:longtext"`
	CommentID            *string    `gorm:"column:comment_id;size:50"`
	Plaintext            *string    `gorm:"type:longtext"`
	FeatureImage         *string    `gorm:"size:2000"`
	Featured             bool       `gorm:"not null;default:0"`
	Type                 string     `gorm:"size:50;not null;default:'post';uniqueIndex:posts_slug_type_unique,priority:2"`
	Status               PostStatus `gorm:"size:50;not null;default:'draft'"`
	Locale               *string    `gorm:"size:6"`
	Visibility           Visibility `gorm:"size:50;not null;default:'public'"`
	EmailRecipientFilter string     `gorm:"size:50;not null;default:'none'"`
	AuthorID             string     `gorm:"column:author_id;size:24;not null"`
	CreatedAt            time.Time  `gorm:"not null"`
	CreatedBy            string     `gorm:"size:24;not null"`
	UpdatedAt            *time.Time `gorm:""`
	UpdatedBy            *string    `gorm:"size:24"`
	PublishedAt          *time.Time `gorm:""`
	PublishedBy          *string    `gorm:"size:24"`
	CustomExcerpt        *string    `gorm:"size:2000"`
	CodeinjectionHead    *string    `gorm:"type:text"`
	CodeinjectionFoot    *string    `gorm:"type:text"`
	CustomTemplate       *string    `gorm:"size:100"`
	CanonicalURL         *string    `gorm:"column:canonical_url;type:text"`
}

// TableName sets the database table name.
func (Post) TableName() string { return "posts" }

// PostsMeta is a strict one-to-one extension of Post.
type PostsMeta struct {
	ID                  string  `gorm:"primaryKey;size:24"`
	PostID              string  `gorm:"column:post_id;size:24;not null;uniqueIndex"`
	OgImage             *string `gorm:"column:og_image;size:2000"`
	OgTitle             *string `gorm:"column:og_title;size:300"`
	OgDescription       *string `gorm:"column:og_description;size:500"`
	TwitterImage        *string `gorm:"size:2000"`
	TwitterTitle        *string `gorm:"size:300"`
	TwitterDescription  *string `gorm:"size:500"`
	MetaTitle           *string `gorm:"size:2000"`
	MetaDescription     *string `gorm:"size:2000"`
	EmailSubject        *string `gorm:"size:300"`
	Frontmatter         *string `gorm:"type:text"`
	FeatureImageAlt     *string `gorm:"size:191"`
	FeatureImageCaption *string `gorm:"type:text"`
	EmailOnly           bool    `gorm:"not null;default:0"`
}

// TableName sets the database table name.
func (PostsMeta) TableName() string { return "posts_meta" }

// Tag categorises posts. Slug is globally unique.
type Tag struct {
	ID                 string     `gorm:"primaryKey;size:24"`
	Name               string     `gorm:"size:191;not null"`
	Slug               string     `gorm:"size:191;not null;uniqueIndex"`
	Description        *string    `gorm:"type:text"`
	FeatureImage       *string    `gorm:"size:2000"`
	ParentID           *string    `gorm:"column:parent_id;size:191"`
	Visibility         Visibility `gorm:"size:50;not null;default:'public'"`
	OgImage            *string    `gorm:"column:og_image;size:2000"`
	OgTitle            *string    `gorm:"column:og_title;size:300"`
	OgDescription      *string    `gorm:"column:og_description;size:500"`
	TwitterImage       *string    `gorm:"size:2000"`
	TwitterTitle       *string    `gorm:"size:300"`
	TwitterDescription *string    `gorm:"size:500"`
	MetaTitle          *string    `gorm:"size:2000"`
	MetaDescription    *string    `gorm:"size:2000"`
	CodeinjectionHead  *string    `gorm:"type:text"`
	CodeinjectionFoot  *string    `gorm:"type:text"`
	CanonicalURL       *string    `gorm:"column:canonical_url;size:2000"`
	AccentColor        *string    `gorm:"size:50"`
	CreatedAt          time.Time  `gorm:"not null"`
	CreatedBy          string     `gorm:"size:24;not null"`
	UpdatedAt          *time.Time `gorm:""`
	UpdatedBy          *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (Tag) TableName() string { return "tags" }

// PostsTag orders tags within a post.
type PostsTag struct {
	ID        string `gorm:"primaryKey;size:24"`
	PostID    string `gorm:"column:post_id;size:24;not null;index"`
	TagID     string `gorm:"column:tag_id;size:24;not null;index"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName sets the database table name.
func (PostsTag) TableName() string { return "posts_tags" }

// PostsAuthor orders co-authors within a post.
type PostsAuthor struct {
	ID        string `gorm:"primaryKey;size:24"`
	PostID    string `gorm:"column:post_id;size:24;not null;index"`
	AuthorID  string `gorm:"column:author_id;size:24;not null;index"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName sets the database table name.
func (PostsAuthor) TableName() string { return "posts_authors" }

// Snippet is a reusable content fragment.
type Snippet struct {
	ID        string     `gorm:"primaryKey;size:24"`
	Name      string     `gorm:"size:191;not null;uniqueIndex"`
	Mobiledoc string     `gorm:"type:longtext;not null"`
	CreatedAt time.Time  `gorm:"not null"`
	CreatedBy string     `gorm:"size:24;not null"`
	UpdatedAt *time.Time `gorm:""`
	UpdatedBy *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (Snippet) TableName() string { return "snippets" }

// MobiledocRevision is an append-only snapshot log of post content. Rows are
// inserted and never updated in place.
type MobiledocRevision struct {
	ID          string    `gorm:"primaryKey;size:24"`
	PostID      string    `gorm:"column:post_id;size:24;not null;index"`
	Mobiledoc   *string   `gorm:"type:longtext"`
	CreatedAtTS int64     `gorm:"column:created_at_ts;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (MobiledocRevision) TableName() string { return "mobiledoc_revisions" }
