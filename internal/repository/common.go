package repository

import (
	"errors"
	"sort"
	"time"

	"github.com/rdevrajsinh/totalenc/internal/domain"
)

// Backend names.
const (
	BackendMemory   = "memory"
	BackendObject   = "object"
	BackendPostgres = "postgres"
)

var (
	// ErrDuplicateSlug is returned when a blog post, product or service
	// slug is already taken.
	ErrDuplicateSlug = errors.New("slug already exists")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// Clock returns the current time. Stores take one so tests can pin it.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// Option configures the in-process stores.
type Option func(*options)

type options struct {
	clock Clock
	seed  bool
}

// WithClock overrides the time source.
func WithClock(clock Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithSeedData controls whether NewMemoryStore loads the demo dataset. It is
// loaded by default. Other stores seed through SeedIfEmpty.
func WithSeedData(seed bool) Option {
	return func(o *options) { o.seed = seed }
}

func buildOptions(opts []Option) options {
	o := options{clock: systemClock, seed: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// nextUpdatedAt returns now, or one microsecond past prev when the clock has
// not moved. Microseconds match the precision Postgres keeps.
func nextUpdatedAt(now, prev time.Time) time.Time {
	now = now.Truncate(time.Microsecond)
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}

// sortBlogPosts orders posts by publishDate descending, ties by id.
func sortBlogPosts(posts []domain.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].PublishDate.Equal(posts[j].PublishDate) {
			return posts[i].PublishDate.After(posts[j].PublishDate)
		}
		return posts[i].ID < posts[j].ID
	})
}

// sortContactMessages orders messages by createdAt descending, ties by id.
func sortContactMessages(msgs []domain.ContactMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if !msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
		}
		return msgs[i].ID < msgs[j].ID
	})
}

// sortByOrder orders services by Order ascending, ties by id.
func sortByOrder(services []domain.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].Order != services[j].Order {
			return services[i].Order < services[j].Order
		}
		return services[i].ID < services[j].ID
	})
}

// filterByParent selects services whose parent matches parentID (nil selects
// main services) and orders them.
func filterByParent(all []domain.Service, parentID *int64) []domain.Service {
	out := []domain.Service{}
	for _, s := range all {
		switch {
		case parentID == nil && s.ParentID == nil:
			out = append(out, s)
		case parentID != nil && s.ParentID != nil && *s.ParentID == *parentID:
			out = append(out, s)
		}
	}
	sortByOrder(out)
	return out
}

// buildHierarchy attaches direct children to each main service.
func buildHierarchy(all []domain.Service) []domain.ServiceNode {
	mains := filterByParent(all, nil)
	nodes := make([]domain.ServiceNode, 0, len(mains))
	for _, m := range mains {
		id := m.ID
		nodes = append(nodes, domain.ServiceNode{
			Service:  m,
			Children: filterByParent(all, &id),
		})
	}
	return nodes
}

// resolveRelated maps ids to services in the listed order, dropping ids that
// lookup cannot find.
func resolveRelated(ids []int64, lookup func(int64) (domain.Service, bool)) []domain.Service {
	out := make([]domain.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := lookup(id); ok {
			out = append(out, s)
		}
	}
	return out
}

func featuredProducts(all []domain.Product) []domain.Product {
	out := []domain.Product{}
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func featuredServices(all []domain.Service) []domain.Service {
	out := []domain.Service{}
	for _, s := range all {
		if s.Featured {
			out = append(out, s)
		}
	}
	return out
}
