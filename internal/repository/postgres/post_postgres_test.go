package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"boardapi/internal/model"
	"boardapi/internal/paging"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postColumns = []string{"id", "author", "title", "contents", "hit_count", "group_id", "step_level", "indent_level", "created_at"}

func newRepo(t *testing.T) (*PostPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostPostgres(db), mock
}

func TestPostPostgres_Count(t *testing.T) {
	ctx := context.Background()

	t.Run("unfiltered", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM posts$`).
			WithArgs().
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

		total, err := repo.Count(ctx, nil)

		assert.NoError(t, err)
		assert.Equal(t, 23, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered by title", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts WHERE title ILIKE \$1`).
			WithArgs("%go%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		total, err := repo.Count(ctx, &model.SearchCriteria{Column: model.SearchByTitle, Term: "go"})

		assert.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wildcards in term are escaped", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts WHERE contents ILIKE \$1`).
			WithArgs(`%50\%\_off%`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := repo.Count(ctx, &model.SearchCriteria{Column: model.SearchByContents, Term: "50%_off"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown column is refused before querying", func(t *testing.T) {
		repo, mock := newRepo(t)

		_, err := repo.Count(ctx, &model.SearchCriteria{Column: "password_hash", Term: "x"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("connection refused"))

		_, err := repo.Count(ctx, nil)

		assert.EqualError(t, err, "connection refused")
	})
}

func TestPostPostgres_FetchRange(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("unfiltered window", func(t *testing.T) {
		repo, mock := newRepo(t)
		rows := sqlmock.NewRows(postColumns).
			AddRow(90, "kim", "t90", "c90", 3, 90, 0, 0, now).
			AddRow(89, "lee", "t89", "c89", 0, 80, 1, 1, now)

		mock.ExpectQuery(`ROW_NUMBER\(\) OVER \(ORDER BY id DESC\) AS rn FROM posts \) ranked WHERE rn BETWEEN \$1 AND \$2 ORDER BY rn`).
			WithArgs(11, 20).
			WillReturnRows(rows)

		items, err := repo.FetchRange(ctx, nil, paging.NewWindow(2, 10))

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(90), items[0].ID)
		assert.Equal(t, 3, items[0].HitCount)
		assert.Equal(t, int64(80), items[1].GroupID)
		assert.Equal(t, 1, items[1].IndentLevel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rank is computed after the filter", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`FROM posts WHERE author ILIKE \$1 \) ranked WHERE rn BETWEEN \$2 AND \$3`).
			WithArgs("%kim%", 1, 5).
			WillReturnRows(sqlmock.NewRows(postColumns).AddRow(7, "kim", "t", "c", 0, 7, 0, 0, now))

		items, err := repo.FetchRange(ctx, &model.SearchCriteria{Column: model.SearchByAuthor, Term: "kim"}, paging.NewWindow(1, 5))

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("past the end returns empty slice", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`ranked WHERE rn BETWEEN`).
			WithArgs(991, 1000).
			WillReturnRows(sqlmock.NewRows(postColumns))

		items, err := repo.FetchRange(ctx, nil, paging.NewWindow(100, 10))

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`ranked`).
			WillReturnRows(sqlmock.NewRows(postColumns).AddRow("not-a-number", "a", "t", "c", 0, 1, 0, 0, now))

		_, err := repo.FetchRange(ctx, nil, paging.NewWindow(1, 10))

		assert.Error(t, err)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`ranked`).WillReturnError(errors.New("timeout"))

		_, err := repo.FetchRange(ctx, nil, paging.NewWindow(1, 10))

		assert.EqualError(t, err, "timeout")
	})
}

func TestPostPostgres_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	post := &model.Post{Author: "kim", Title: "hello", Contents: "world", PasswordHash: "hash", CreatedAt: now}

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO posts").
			WithArgs("kim", "hello", "world", "hash", now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectExec("UPDATE posts SET group_id = id WHERE id = ?").
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		got, err := repo.Create(ctx, post)

		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
		assert.Equal(t, int64(42), got.GroupID)
		assert.Zero(t, got.StepLevel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("group update fails", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO posts").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectExec("UPDATE posts SET group_id").WillReturnError(errors.New("db fail"))
		mock.ExpectRollback()

		got, err := repo.Create(ctx, post)

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostPostgres_CreateReply(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	parent := &model.Post{ID: 10, GroupID: 10, StepLevel: 2, IndentLevel: 1}
	reply := &model.Post{Author: "lee", Title: "re: hello", Contents: "hi", PasswordHash: "hash", CreatedAt: now}

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE posts SET step_level = step_level \+ 1 WHERE group_id = \$1 AND step_level > \$2`).
			WithArgs(int64(10), 2).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectQuery("INSERT INTO posts").
			WithArgs("lee", "re: hello", "hi", "hash", int64(10), 3, 2, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))
		mock.ExpectCommit()

		got, err := repo.CreateReply(ctx, parent, reply)

		require.NoError(t, err)
		assert.Equal(t, int64(55), got.ID)
		assert.Equal(t, int64(10), got.GroupID)
		assert.Equal(t, 3, got.StepLevel)
		assert.Equal(t, 2, got.IndentLevel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("shift fails", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE posts SET step_level").WillReturnError(errors.New("db fail"))
		mock.ExpectRollback()

		_, err := repo.CreateReply(ctx, parent, reply)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostPostgres_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)
		rows := sqlmock.NewRows(append(append([]string{}, postColumns...), "password_hash")).
			AddRow(7, "kim", "t", "c", 1, 7, 0, 0, time.Now(), "hash")
		mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = ?").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		post, found, err := repo.FindByID(ctx, 7)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(7), post.ID)
		assert.Equal(t, "hash", post.PasswordHash)
	})

	t.Run("not found is not an error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = ?").
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		post, found, err := repo.FindByID(ctx, 8)

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, post)
	})

	t.Run("store error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = ?").
			WillReturnError(errors.New("db fail"))

		_, found, err := repo.FindByID(ctx, 9)

		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestPostPostgres_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("increment hit", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(`UPDATE posts SET hit_count = hit_count \+ 1 WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.IncrementHit(ctx, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(`UPDATE posts SET author = \$1, title = \$2, contents = \$3 WHERE id = \$4`).
			WithArgs("lee", "new title", "new body", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &model.Post{ID: 3, Author: "lee", Title: "new title", Contents: "new body"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec("DELETE FROM posts WHERE id = ?").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
