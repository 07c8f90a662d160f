package app

import (
	"context"
	"log"
	"strings"
	"time"

	"blogit/internal/model"
	"blogit/internal/repository"
)

// BlogService owns the blog lifecycle state machine:
//
//	create -> ACTIVE -trash-> TRASHED -recover-> ACTIVE
//	                  TRASHED -purge-> removed (terminal)
//
// Every operation is scoped to (blog id, owner id); a blog owned by someone
// else is indistinguishable from one that does not exist. Trashing a trashed
// blog is an error while recovering an active one is an idempotent no-op;
// the asymmetry is deliberate.
type BlogService struct {
	blogRepo  *repository.BlogRepository
	publisher EventPublisher
	listCache ListCache
}

// EventPublisher emits lifecycle events for the audit trail. Publish
// failures never affect the triggering request.
type EventPublisher interface {
	Publish(ctx context.Context, event model.AuditEvent) error
}

// ListCache is the per-owner active list cache. The service works with a nil
// cache; correctness never depends on it.
type ListCache interface {
	GetActive(ctx context.Context, ownerID uint) ([]model.Blog, bool, error)
	SetActive(ctx context.Context, ownerID uint, blogs []model.Blog) error
	Invalidate(ctx context.Context, ownerID uint) error
}

type CreateBlogInput struct {
	OwnerID          uint
	Title            string
	Synopsis         string
	Content          string
	FeaturedImageURL string
}

type UpdateBlogInput struct {
	OwnerID          uint
	BlogID           uint
	Title            string
	Synopsis         string
	Content          string
	FeaturedImageURL string
}

// RecoverResult distinguishes an actual restore from the idempotent case
// where the blog was already active.
type RecoverResult struct {
	Blog            *model.Blog
	AlreadyRestored bool
}

func NewBlogService(blogRepo *repository.BlogRepository, publisher EventPublisher, listCache ListCache) *BlogService {
	return &BlogService{
		blogRepo:  blogRepo,
		publisher: publisher,
		listCache: listCache,
	}
}

func (s *BlogService) Create(input CreateBlogInput) (*model.Blog, error) {
	if input.OwnerID == 0 {
		return nil, ErrInvalidInput
	}

	title := strings.TrimSpace(input.Title)
	synopsis := strings.TrimSpace(input.Synopsis)
	content := strings.TrimSpace(input.Content)
	imageURL := strings.TrimSpace(input.FeaturedImageURL)

	if title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if synopsis == "" {
		return nil, &ValidationError{Field: "synopsis"}
	}
	if content == "" {
		return nil, &ValidationError{Field: "content"}
	}
	if imageURL == "" {
		return nil, &ValidationError{Field: "featured image"}
	}

	blog := &model.Blog{
		Title:            title,
		Synopsis:         synopsis,
		Content:          content,
		FeaturedImageURL: imageURL,
		UserID:           input.OwnerID,
	}
	if err := s.blogRepo.Create(blog); err != nil {
		return nil, err
	}

	s.invalidateList(input.OwnerID)
	s.publishEvent(blog.ID, input.OwnerID, model.ActionCreated)
	return blog, nil
}

// List returns the owner's active blogs, newest first.
func (s *BlogService) List(ownerID uint) ([]model.Blog, error) {
	if ownerID == 0 {
		return nil, ErrInvalidInput
	}

	ctx := context.Background()
	if s.listCache != nil {
		if cached, hit, err := s.listCache.GetActive(ctx, ownerID); err == nil && hit {
			return cached, nil
		}
	}

	blogs, err := s.blogRepo.ListActiveByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if s.listCache != nil {
		_ = s.listCache.SetActive(ctx, ownerID, blogs)
	}
	return blogs, nil
}

// ListTrashed returns the owner's trashed blogs, newest first.
func (s *BlogService) ListTrashed(ownerID uint) ([]model.Blog, error) {
	if ownerID == 0 {
		return nil, ErrInvalidInput
	}
	return s.blogRepo.ListTrashedByOwner(ownerID)
}

func (s *BlogService) Get(ownerID, blogID uint) (*model.Blog, error) {
	if ownerID == 0 || blogID == 0 {
		return nil, ErrInvalidInput
	}
	blog, err := s.blogRepo.GetActiveByIDAndOwner(blogID, ownerID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

// Update applies only the non-empty fields of the input; an empty string is
// indistinguishable from "no change" and cannot clear a field. Trashed blogs
// remain updatable and keep their lifecycle state.
func (s *BlogService) Update(input UpdateBlogInput) (*model.Blog, error) {
	if input.OwnerID == 0 || input.BlogID == 0 {
		return nil, ErrInvalidInput
	}

	existing, err := s.blogRepo.GetByIDAndOwner(input.BlogID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBlogNotFound
	}

	fields := map[string]interface{}{}
	if v := strings.TrimSpace(input.Title); v != "" {
		fields["title"] = v
	}
	if v := strings.TrimSpace(input.Synopsis); v != "" {
		fields["synopsis"] = v
	}
	if v := strings.TrimSpace(input.Content); v != "" {
		fields["content"] = v
	}
	if v := strings.TrimSpace(input.FeaturedImageURL); v != "" {
		fields["featured_image_url"] = v
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.blogRepo.UpdateFields(input.BlogID, input.OwnerID, fields); err != nil {
		return nil, err
	}
	s.invalidateList(input.OwnerID)

	updated, err := s.blogRepo.GetByIDAndOwner(input.BlogID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBlogNotFound
	}
	return updated, nil
}

// Trash moves an active blog to the trash. A repeated call is rejected with
// ErrAlreadyInTrash, not accepted silently.
func (s *BlogService) Trash(ownerID, blogID uint) error {
	if ownerID == 0 || blogID == 0 {
		return ErrInvalidInput
	}

	flipped, err := s.blogRepo.MarkTrashed(blogID, ownerID)
	if err != nil {
		return err
	}
	if !flipped {
		existing, err := s.blogRepo.GetByIDAndOwner(blogID, ownerID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrBlogNotFound
		}
		return ErrAlreadyInTrash
	}

	s.invalidateList(ownerID)
	s.publishEvent(blogID, ownerID, model.ActionTrashed)
	return nil
}

// Recover restores a trashed blog. Recovering an already-active blog
// succeeds as a no-op.
func (s *BlogService) Recover(ownerID, blogID uint) (*RecoverResult, error) {
	if ownerID == 0 || blogID == 0 {
		return nil, ErrInvalidInput
	}

	flipped, err := s.blogRepo.MarkRestored(blogID, ownerID)
	if err != nil {
		return nil, err
	}
	if !flipped {
		existing, err := s.blogRepo.GetByIDAndOwner(blogID, ownerID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrBlogNotFound
		}
		return &RecoverResult{Blog: existing, AlreadyRestored: true}, nil
	}

	s.invalidateList(ownerID)
	s.publishEvent(blogID, ownerID, model.ActionRecovered)

	blog, err := s.blogRepo.GetByIDAndOwner(blogID, ownerID)
	if err != nil {
		return nil, err
	}
	return &RecoverResult{Blog: blog}, nil
}

// Purge removes the row permanently. There is no undo.
func (s *BlogService) Purge(ownerID, blogID uint) error {
	if ownerID == 0 || blogID == 0 {
		return ErrInvalidInput
	}

	deleted, err := s.blogRepo.Delete(blogID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBlogNotFound
	}

	s.invalidateList(ownerID)
	s.publishEvent(blogID, ownerID, model.ActionPurged)
	return nil
}

func (s *BlogService) invalidateList(ownerID uint) {
	if s.listCache == nil {
		return
	}
	if err := s.listCache.Invalidate(context.Background(), ownerID); err != nil {
		log.Printf("invalidate blog list cache failed: %v", err)
	}
}

func (s *BlogService) publishEvent(blogID, ownerID uint, action string) {
	if s.publisher == nil {
		return
	}
	event := model.AuditEvent{
		BlogID:    blogID,
		UserID:    ownerID,
		Action:    action,
		CreatedAt: time.Now(),
	}
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		log.Printf("publish lifecycle event failed: %v", err)
	}
}
