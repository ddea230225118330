package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"boardapi/internal/model"
	"boardapi/internal/paging"
	"boardapi/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

const listColumns = `id, author, title, contents, hit_count, group_id, step_level, indent_level, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListed(s rowScanner, p *model.Post) error {
	return s.Scan(
		&p.ID,
		&p.Author,
		&p.Title,
		&p.Contents,
		&p.HitCount,
		&p.GroupID,
		&p.StepLevel,
		&p.IndentLevel,
		&p.CreatedAt,
	)
}

// Count returns the number of posts matching criteria.
func (r *PostPostgres) Count(ctx context.Context, criteria *model.SearchCriteria) (int, error) {
	where, args, err := wherePredicate(criteria, 1)
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// FetchRange ranks the filtered posts newest first and returns ranks w.Start..w.End.
func (r *PostPostgres) FetchRange(ctx context.Context, criteria *model.SearchCriteria, w paging.Window) ([]model.Post, error) {
	where, args, err := wherePredicate(criteria, 1)
	if err != nil {
		return nil, err
	}
	n := len(args)
	q := fmt.Sprintf(`
		SELECT %[1]s
		FROM (
			SELECT %[1]s, ROW_NUMBER() OVER (ORDER BY id DESC) AS rn
			FROM posts%[2]s
		) ranked
		WHERE rn BETWEEN $%[3]d AND $%[4]d
		ORDER BY rn
	`, listColumns, where, n+1, n+2)
	args = append(args, w.Start, w.End)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0, max(w.End-w.Start+1, 0))
	for rows.Next() {
		var p model.Post
		if err := scanListed(rows, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a top level post and points its group at itself.
func (r *PostPostgres) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	const qInsert = `
		INSERT INTO posts (author, title, contents, password_hash, hit_count, group_id, step_level, indent_level, created_at)
		VALUES ($1, $2, $3, $4, 0, 0, 0, 0, $5)
		RETURNING id
	`
	out := *post
	if err := tx.QueryRowContext(ctx, qInsert,
		post.Author,
		post.Title,
		post.Contents,
		post.PasswordHash,
		post.CreatedAt,
	).Scan(&out.ID); err != nil {
		return nil, err
	}

	const qGroup = `UPDATE posts SET group_id = id WHERE id = $1`
	if _, err := tx.ExecContext(ctx, qGroup, out.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	out.GroupID = out.ID
	out.HitCount, out.StepLevel, out.IndentLevel = 0, 0, 0
	return &out, nil
}

// CreateReply makes room below parent inside its group and inserts reply there.
func (r *PostPostgres) CreateReply(ctx context.Context, parent *model.Post, reply *model.Post) (*model.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	const qShift = `UPDATE posts SET step_level = step_level + 1 WHERE group_id = $1 AND step_level > $2`
	if _, err := tx.ExecContext(ctx, qShift, parent.GroupID, parent.StepLevel); err != nil {
		return nil, err
	}

	out := *reply
	out.GroupID = parent.GroupID
	out.StepLevel = parent.StepLevel + 1
	out.IndentLevel = parent.IndentLevel + 1
	out.HitCount = 0

	const qInsert = `
		INSERT INTO posts (author, title, contents, password_hash, hit_count, group_id, step_level, indent_level, created_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, qInsert,
		out.Author,
		out.Title,
		out.Contents,
		out.PasswordHash,
		out.GroupID,
		out.StepLevel,
		out.IndentLevel,
		out.CreatedAt,
	).Scan(&out.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single post, including its password hash.
func (r *PostPostgres) FindByID(ctx context.Context, id int64) (*model.Post, bool, error) {
	const q = `
		SELECT id, author, title, contents, hit_count, group_id, step_level, indent_level, created_at, password_hash
		FROM posts
		WHERE id = $1
	`
	var p model.Post
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID,
		&p.Author,
		&p.Title,
		&p.Contents,
		&p.HitCount,
		&p.GroupID,
		&p.StepLevel,
		&p.IndentLevel,
		&p.CreatedAt,
		&p.PasswordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

// IncrementHit bumps the hit counter of a post.
func (r *PostPostgres) IncrementHit(ctx context.Context, id int64) error {
	const q = `UPDATE posts SET hit_count = hit_count + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// Update rewrites a post's author, title and contents.
func (r *PostPostgres) Update(ctx context.Context, post *model.Post) error {
	const q = `UPDATE posts SET author = $1, title = $2, contents = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, q, post.Author, post.Title, post.Contents, post.ID)
	return err
}

// Delete removes a post by ID. It does not return an error if the row does not exist.
func (r *PostPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
