package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"boardapi/internal/model"
	"boardapi/internal/paging"
	"boardapi/internal/pkg/logctx"
	"boardapi/internal/repository"
	"boardapi/internal/search"
)

var (
	ErrInvalidID        = errors.New("invalid post id")
	ErrNotFound         = errors.New("post not found")
	ErrValidation       = errors.New("validation failed")
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrStoreUnavailable wraps any failure of the listing count or range queries.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidPage is returned by List when the requested page is not a positive integer.
	ErrInvalidPage = paging.ErrInvalidPage
)

var tracer = otel.Tracer("boardapi/internal/service")

// ListRequest carries the raw listing parameters as received from the client.
type ListRequest struct {
	SearchColumn string
	SearchWord   string
	NowPage      string
}

// PageResult is one assembled listing page. It is built fresh for every request.
type PageResult struct {
	Rows        []model.NumberedPost  `json:"rows"`
	TotalCount  int                   `json:"total_count"`
	TotalPages  int                   `json:"total_pages"`
	CurrentPage int                   `json:"current_page"`
	PageSize    int                   `json:"page_size"`
	Search      *model.SearchCriteria `json:"search,omitempty"`
	Navigation  paging.Navigation     `json:"navigation"`
}

// WriteInput is the payload for new posts and replies.
type WriteInput struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
	Password string `json:"password"`
}

// ModifyInput is the payload for editing a post. A blank Author keeps the current one.
type ModifyInput struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
	Password string `json:"password"`
}

// BoardService defines the use cases of the discussion board.
type BoardService interface {
	// List returns one page of posts, newest first, optionally filtered by a search.
	List(ctx context.Context, req ListRequest) (*PageResult, error)

	// Get returns a post and counts the view.
	Get(ctx context.Context, id int64) (*model.Post, error)

	// Write stores a new top level post.
	Write(ctx context.Context, in WriteInput) (*model.Post, error)

	// Reply stores a reply to the post with parentID.
	Reply(ctx context.Context, parentID int64, in WriteInput) (*model.Post, error)

	// Modify edits a post after checking its password.
	Modify(ctx context.Context, id int64, in ModifyInput) (*model.Post, error)

	// Delete removes a post after checking its password.
	Delete(ctx context.Context, id int64, password string) error
}

// Options configure a BoardService.
type Options struct {
	PageSize   int
	BlockSize  int
	BcryptCost int
	Metrics    *Metrics
}

type boardService struct {
	repo       repository.PostRepository
	pageSize   int
	blockSize  int
	bcryptCost int
	metrics    *Metrics
	now        func() time.Time
}

// NewBoardService constructs a BoardService. Non-positive sizes fall back to 10.
func NewBoardService(repo repository.PostRepository, opts Options) BoardService {
	s := &boardService{
		repo:       repo,
		pageSize:   opts.PageSize,
		blockSize:  opts.BlockSize,
		bcryptCost: opts.BcryptCost,
		metrics:    opts.Metrics,
		now:        func() time.Time { return time.Now().UTC() },
	}
	if s.pageSize <= 0 {
		s.pageSize = 10
	}
	if s.blockSize <= 0 {
		s.blockSize = 10
	}
	if s.bcryptCost == 0 {
		s.bcryptCost = bcrypt.DefaultCost
	}
	return s
}

func (s *boardService) List(ctx context.Context, req ListRequest) (res *PageResult, err error) {
	const op = "service.board.List"
	start := time.Now()
	defer func() { s.metrics.observeListing(res, err, time.Since(start)) }()

	page, err := paging.ResolvePage(req.NowPage)
	if err != nil {
		return nil, fmt.Errorf("%s: now page %q: %w", op, req.NowPage, err)
	}
	if page > paging.MaxPage(s.pageSize) {
		return nil, fmt.Errorf("%s: now page %d out of range: %w", op, page, ErrInvalidPage)
	}
	criteria := search.Normalize(req.SearchColumn, req.SearchWord)

	ctx, span := tracer.Start(ctx, "BoardService.List", trace.WithAttributes(
		attribute.Int("board.page", page),
		attribute.Bool("board.filtered", criteria != nil),
	))
	defer span.End()

	lg := logctx.From(ctx)

	total, err := s.repo.Count(ctx, criteria)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count failed")
		lg.Error("list_posts_count_failed", slog.String("op", op), slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: count: %w: %w", op, ErrStoreUnavailable, err)
	}

	totalPages := paging.TotalPages(total, s.pageSize)
	window := paging.NewWindow(page, s.pageSize)

	rows, err := s.repo.FetchRange(ctx, criteria, window)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		lg.Error("list_posts_fetch_failed", slog.String("op", op), slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: fetch range: %w: %w", op, ErrStoreUnavailable, err)
	}

	res = &PageResult{
		Rows:        paging.Annotate(rows, total, page, s.pageSize),
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    s.pageSize,
		Search:      criteria,
		Navigation:  paging.NewNavigation(totalPages, s.blockSize, page),
	}

	span.SetAttributes(attribute.Int("board.total_count", total), attribute.Int("board.rows", len(res.Rows)))
	lg.Info("list_posts_ok",
		slog.String("op", op),
		slog.Int("page", page),
		slog.Int("total_count", total),
		slog.Int("rows", len(res.Rows)),
		slog.Bool("filtered", criteria != nil),
	)
	return res, nil
}

func (s *boardService) Get(ctx context.Context, id int64) (*model.Post, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if err := s.repo.IncrementHit(ctx, id); err != nil {
		return nil, fmt.Errorf("increment hit: %w", err)
	}
	post, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *boardService) Write(ctx context.Context, in WriteInput) (*model.Post, error) {
	post, err := s.newPost(in)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	logctx.From(ctx).Info("post_written", slog.Int64("post_id", stored.ID))
	return stored, nil
}

func (s *boardService) Reply(ctx context.Context, parentID int64, in WriteInput) (*model.Post, error) {
	if parentID <= 0 {
		return nil, ErrInvalidID
	}
	reply, err := s.newPost(in)
	if err != nil {
		return nil, err
	}
	parent, err := s.find(ctx, parentID)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.CreateReply(ctx, parent, reply)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	logctx.From(ctx).Info("post_replied",
		slog.Int64("post_id", stored.ID),
		slog.Int64("parent_id", parentID),
		slog.Int("indent_level", stored.IndentLevel),
	)
	return stored, nil
}

func (s *boardService) Modify(ctx context.Context, id int64, in ModifyInput) (*model.Post, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Contents = strings.TrimSpace(in.Contents)
	if in.Title == "" || in.Contents == "" {
		return nil, fmt.Errorf("%w: title and contents are required", ErrValidation)
	}

	post, err := s.authorize(ctx, id, in.Password)
	if err != nil {
		return nil, err
	}
	if author := strings.TrimSpace(in.Author); author != "" {
		post.Author = author
	}
	post.Title = in.Title
	post.Contents = in.Contents
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("db update failed: %w", err)
	}
	return post, nil
}

func (s *boardService) Delete(ctx context.Context, id int64, password string) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if _, err := s.authorize(ctx, id, password); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("db delete failed: %w", err)
	}
	logctx.From(ctx).Info("post_deleted", slog.Int64("post_id", id))
	return nil
}

// newPost validates in and hashes its password.
func (s *boardService) newPost(in WriteInput) (*model.Post, error) {
	p := &model.Post{
		Author:   strings.TrimSpace(in.Author),
		Title:    strings.TrimSpace(in.Title),
		Contents: strings.TrimSpace(in.Contents),
	}
	if p.Author == "" || p.Title == "" || p.Contents == "" {
		return nil, fmt.Errorf("%w: author, title and contents are required", ErrValidation)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	p.PasswordHash = string(hash)
	p.CreatedAt = s.now()
	return p, nil
}

func (s *boardService) find(ctx context.Context, id int64) (*model.Post, error) {
	post, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return post, nil
}

// authorize loads a post and checks password against its stored hash.
func (s *boardService) authorize(ctx context.Context, id int64, password string) (*model.Post, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(post.PasswordHash), []byte(password)); err != nil {
		logctx.From(ctx).Warn("post_password_mismatch", slog.Int64("post_id", id))
		return nil, ErrPasswordMismatch
	}
	return post, nil
}
