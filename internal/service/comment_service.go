package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/metrics"
)

// Moderation actions recorded in metrics.
const (
	moderationApprove = "approve"
	moderationReject  = "reject"
	moderationDelete  = "delete"
)

// CommentService is the in-process comment moderation queue.
type CommentService struct {
	mu       sync.RWMutex
	comments map[int64]domain.Comment
	nextID   int64
}

var _ CommentServiceInterface = (*CommentService)(nil)

// NewCommentService creates a queue holding the given comments. Ids are
// assigned in order starting at 1.
func NewCommentService(initial []domain.Comment) *CommentService {
	s := &CommentService{comments: make(map[int64]domain.Comment), nextID: 1}
	for _, c := range initial {
		c.ID = s.nextID
		s.comments[c.ID] = c
		s.nextID++
	}
	return s
}

// DemoComments returns the sample moderation queue relative to now.
func DemoComments(now time.Time) []domain.Comment {
	const day = 24 * time.Hour
	return []domain.Comment{
		{
			Author:        "John Smith",
			Email:         "john.smith@example.com",
			Content:       "Great article! I found the information about custom enclosures particularly helpful for our upcoming project.",
			BlogPostID:    1,
			BlogPostTitle: "Industry Trends: The Future of Industrial Enclosures",
			Status:        domain.CommentStatusApproved,
			CreatedAt:     now.Add(-2 * day),
		},
		{
			Author:        "Sarah Johnson",
			Email:         "sarah.j@example.com",
			Content:       "I have a question about the waterproof ratings. Do your NEMA 4X enclosures also meet IP66 standards?",
			BlogPostID:    3,
			BlogPostTitle: "Understanding NEMA Ratings for Electrical Enclosures",
			Status:        domain.CommentStatusPending,
			CreatedAt:     now.Add(-day / 2),
		},
		{
			Author:        "Bob Williams",
			Email:         "bob.williams@example.com",
			Content:       "This post doesn't mention anything about costs. What's the typical price range for custom enclosures?",
			BlogPostID:    1,
			BlogPostTitle: "Industry Trends: The Future of Industrial Enclosures",
			Status:        domain.CommentStatusApproved,
			CreatedAt:     now.Add(-5 * day),
		},
		{
			Author:        "Marketing Bot",
			Email:         "spam@example.com",
			Content:       "Check out our amazing deals on discount products! Click here to save big now! www.spam-link.com",
			BlogPostID:    2,
			BlogPostTitle: "5 Benefits of Custom Enclosure Solutions",
			Status:        domain.CommentStatusSpam,
			CreatedAt:     now.Add(-day),
		},
	}
}

// List returns comments in id order.
func (s *CommentService) List(ctx context.Context) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.comments))
	for id := range s.comments {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]domain.Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.comments[id])
	}
	return out, nil
}

func (s *CommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Approve marks a comment approved.
func (s *CommentService) Approve(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.setStatus(ctx, id, domain.CommentStatusApproved, moderationApprove)
}

// Reject marks a comment as spam.
func (s *CommentService) Reject(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.setStatus(ctx, id, domain.CommentStatusSpam, moderationReject)
}

func (s *CommentService) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return false, nil
	}
	delete(s.comments, id)
	metrics.ObserveModeration(moderationDelete)
	return true, nil
}

func (s *CommentService) setStatus(ctx context.Context, id int64, status domain.CommentStatus, action string) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	s.comments[id] = c

	metrics.ObserveModeration(action)
	componentLogger(ctx, "comments").Info("Comment moderated",
		slog.Int64("id", id),
		slog.String("status", string(status)))
	return &c, nil
}
