package repository

import (
	"context"

	"boardapi/internal/model"
	"boardapi/internal/paging"
)

// PostRepository defines data access for board posts using SQL queries only.
// No business logic here, only persistence.
type PostRepository interface {
	// Count returns the number of posts matching criteria, or all posts when criteria is nil.
	// It always hits the store.
	Count(ctx context.Context, criteria *model.SearchCriteria) (int, error)

	// FetchRange returns the posts matching criteria whose rank in the filtered
	// newest-first ordering falls inside w. Ranks past the end yield fewer (or no) rows.
	FetchRange(ctx context.Context, criteria *model.SearchCriteria, w paging.Window) ([]model.Post, error)

	// Create inserts a new top level post. The stored post starts its own reply group.
	Create(ctx context.Context, post *model.Post) (*model.Post, error)

	// CreateReply inserts reply directly below parent in parent's reply group.
	CreateReply(ctx context.Context, parent *model.Post, reply *model.Post) (*model.Post, error)

	// FindByID returns the post with the given ID. found is false when no such post exists.
	FindByID(ctx context.Context, id int64) (post *model.Post, found bool, err error)

	// IncrementHit adds one to the post's hit count.
	IncrementHit(ctx context.Context, id int64) error

	// Update rewrites the title and contents of a post.
	Update(ctx context.Context, post *model.Post) error

	// Delete removes a post by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}
