package repository

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/logger"
)

// parentRef keys the children index. Main services sit under the root
// entry, which no id aliases.
type parentRef struct {
	id   int64
	root bool
}

var rootParent = parentRef{root: true}

// MemoryStore keeps every entity in process. All state is lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	clock Clock

	users    map[int64]domain.User
	blogs    map[int64]domain.BlogPost
	products map[int64]domain.Product
	services map[int64]domain.Service
	contacts map[int64]domain.ContactMessage

	// children maps a parent (rootParent for main services) to child ids
	// in insertion order.
	children map[parentRef][]int64

	nextUserID    int64
	nextBlogID    int64
	nextProductID int64
	nextServiceID int64
	nextContactID int64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store, seeded unless
// WithSeedData(false) is passed.
func NewMemoryStore(opts ...Option) *MemoryStore {
	cfg := buildOptions(opts)

	s := &MemoryStore{
		clock:         cfg.clock,
		users:         make(map[int64]domain.User),
		blogs:         make(map[int64]domain.BlogPost),
		products:      make(map[int64]domain.Product),
		services:      make(map[int64]domain.Service),
		contacts:      make(map[int64]domain.ContactMessage),
		children:      make(map[parentRef][]int64),
		nextUserID:    1,
		nextBlogID:    1,
		nextProductID: 1,
		nextServiceID: 1,
		nextContactID: 1,
	}

	if cfg.seed {
		if err := Seed(context.Background(), s); err != nil {
			logger.Error("Failed to seed memory store", slog.String("error", err.Error()))
		}
	}
	return s
}

// Backend implements Store.
func (s *MemoryStore) Backend() string { return BackendMemory }

// Ping implements Store.
func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

// Users

// ListUsers implements UserRepository.
func (s *MemoryStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.users, func(u domain.User) domain.User { return u }), nil
}

// GetUser implements UserRepository.
func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByUsername implements UserRepository.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser implements UserRepository.
func (s *MemoryStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == in.Username {
			return nil, ErrDuplicateUsername
		}
	}

	u := in.Build(s.nextUserID)
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}

// Blog posts

// ListBlogPosts implements BlogRepository.
func (s *MemoryStore) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := sortedValues(s.blogs, cloneBlogPost)
	sortBlogPosts(posts)
	return posts, nil
}

// GetBlogPost implements BlogRepository.
func (s *MemoryStore) GetBlogPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	p = cloneBlogPost(p)
	return &p, nil
}

// GetBlogPostBySlug implements BlogRepository.
func (s *MemoryStore) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.blogs {
		if p.Slug == slug {
			p = cloneBlogPost(p)
			return &p, nil
		}
	}
	return nil, nil
}

// CreateBlogPost implements BlogRepository.
func (s *MemoryStore) CreateBlogPost(ctx context.Context, in domain.NewBlogPost) (*domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blogSlugTaken(in.Slug, 0) {
		return nil, ErrDuplicateSlug
	}

	p := cloneBlogPost(in.Build(s.nextBlogID, s.now()))
	s.nextBlogID++
	s.blogs[p.ID] = p
	out := cloneBlogPost(p)
	return &out, nil
}

// UpdateBlogPost implements BlogRepository.
func (s *MemoryStore) UpdateBlogPost(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	if patch.Slug != nil && s.blogSlugTaken(*patch.Slug, id) {
		return nil, ErrDuplicateSlug
	}

	patch.Apply(&p)
	p.UpdatedAt = nextUpdatedAt(s.now(), p.UpdatedAt)
	p = cloneBlogPost(p)
	s.blogs[id] = p
	out := cloneBlogPost(p)
	return &out, nil
}

// DeleteBlogPost implements BlogRepository.
func (s *MemoryStore) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogs[id]; !ok {
		return false, nil
	}
	delete(s.blogs, id)
	return true, nil
}

func (s *MemoryStore) blogSlugTaken(slug string, exceptID int64) bool {
	for id, p := range s.blogs {
		if id != exceptID && p.Slug == slug {
			return true
		}
	}
	return false
}

// Products

// ListProducts implements ProductRepository.
func (s *MemoryStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.products, cloneProduct), nil
}

// ListFeaturedProducts implements ProductRepository.
func (s *MemoryStore) ListFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return featuredProducts(sortedValues(s.products, cloneProduct)), nil
}

// GetProduct implements ProductRepository.
func (s *MemoryStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	p = cloneProduct(p)
	return &p, nil
}

// GetProductBySlug implements ProductRepository.
func (s *MemoryStore) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Slug == slug {
			p = cloneProduct(p)
			return &p, nil
		}
	}
	return nil, nil
}

// CreateProduct implements ProductRepository.
func (s *MemoryStore) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.productSlugTaken(in.Slug, 0) {
		return nil, ErrDuplicateSlug
	}

	p := cloneProduct(in.Build(s.nextProductID, s.now()))
	s.nextProductID++
	s.products[p.ID] = p
	out := cloneProduct(p)
	return &out, nil
}

// UpdateProduct implements ProductRepository.
func (s *MemoryStore) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	if patch.Slug != nil && s.productSlugTaken(*patch.Slug, id) {
		return nil, ErrDuplicateSlug
	}

	patch.Apply(&p)
	p = cloneProduct(p)
	s.products[id] = p
	out := cloneProduct(p)
	return &out, nil
}

// DeleteProduct implements ProductRepository.
func (s *MemoryStore) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

func (s *MemoryStore) productSlugTaken(slug string, exceptID int64) bool {
	for id, p := range s.products {
		if id != exceptID && p.Slug == slug {
			return true
		}
	}
	return false
}

// Services

// ListServices implements ServiceRepository.
func (s *MemoryStore) ListServices(ctx context.Context) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.services, cloneService), nil
}

// ListFeaturedServices implements ServiceRepository.
func (s *MemoryStore) ListFeaturedServices(ctx context.Context) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return featuredServices(sortedValues(s.services, cloneService)), nil
}

// ListServicesByParent implements ServiceRepository using the children index.
func (s *MemoryStore) ListServicesByParent(ctx context.Context, parentID *int64) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.childrenOf(parentKey(parentID)), nil
}

// ServiceHierarchy implements ServiceRepository.
func (s *MemoryStore) ServiceHierarchy(ctx context.Context) ([]domain.ServiceNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mains := s.childrenOf(rootParent)
	nodes := make([]domain.ServiceNode, 0, len(mains))
	for _, m := range mains {
		nodes = append(nodes, domain.ServiceNode{
			Service:  m,
			Children: s.childrenOf(parentRef{id: m.ID}),
		})
	}
	return nodes, nil
}

// RelatedServices implements ServiceRepository.
func (s *MemoryStore) RelatedServices(ctx context.Context, id int64) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return []domain.Service{}, nil
	}
	return resolveRelated(svc.RelatedServices, func(rid int64) (domain.Service, bool) {
		r, ok := s.services[rid]
		return cloneService(r), ok
	}), nil
}

// GetService implements ServiceRepository.
func (s *MemoryStore) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, nil
	}
	svc = cloneService(svc)
	return &svc, nil
}

// GetServiceBySlug implements ServiceRepository.
func (s *MemoryStore) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.Slug == slug {
			svc = cloneService(svc)
			return &svc, nil
		}
	}
	return nil, nil
}

// CreateService implements ServiceRepository.
func (s *MemoryStore) CreateService(ctx context.Context, in domain.NewService) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.serviceSlugTaken(in.Slug, 0) {
		return nil, ErrDuplicateSlug
	}

	svc := cloneService(in.Build(s.nextServiceID, s.now()))
	s.nextServiceID++
	s.services[svc.ID] = svc
	key := parentKey(svc.ParentID)
	s.children[key] = append(s.children[key], svc.ID)

	out := cloneService(svc)
	return &out, nil
}

// UpdateService implements ServiceRepository. A changed parentId moves the
// service between index entries.
func (s *MemoryStore) UpdateService(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, nil
	}
	if patch.Slug != nil && s.serviceSlugTaken(*patch.Slug, id) {
		return nil, ErrDuplicateSlug
	}

	oldKey := parentKey(svc.ParentID)
	patch.Apply(&svc)
	svc = cloneService(svc)
	s.services[id] = svc

	if newKey := parentKey(svc.ParentID); newKey != oldKey {
		s.unindexChild(oldKey, id)
		s.children[newKey] = append(s.children[newKey], id)
	}

	out := cloneService(svc)
	return &out, nil
}

// DeleteService implements ServiceRepository. Children are left in place.
func (s *MemoryStore) DeleteService(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok {
		return false, nil
	}
	delete(s.services, id)
	s.unindexChild(parentKey(svc.ParentID), id)
	return true, nil
}

func (s *MemoryStore) serviceSlugTaken(slug string, exceptID int64) bool {
	for id, svc := range s.services {
		if id != exceptID && svc.Slug == slug {
			return true
		}
	}
	return false
}

// childrenOf must be called with the lock held.
func (s *MemoryStore) childrenOf(key parentRef) []domain.Service {
	ids := s.children[key]
	out := make([]domain.Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := s.services[id]; ok {
			out = append(out, cloneService(svc))
		}
	}
	sortByOrder(out)
	return out
}

func (s *MemoryStore) unindexChild(key parentRef, id int64) {
	ids := s.children[key]
	if i := slices.Index(ids, id); i >= 0 {
		s.children[key] = slices.Delete(ids, i, i+1)
	}
	if len(s.children[key]) == 0 {
		delete(s.children, key)
	}
}

func parentKey(parentID *int64) parentRef {
	if parentID == nil {
		return rootParent
	}
	return parentRef{id: *parentID}
}

// Contact messages

// ListContactMessages implements ContactRepository.
func (s *MemoryStore) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := sortedValues(s.contacts, func(m domain.ContactMessage) domain.ContactMessage { return m })
	sortContactMessages(msgs)
	return msgs, nil
}

// GetContactMessage implements ContactRepository.
func (s *MemoryStore) GetContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.contacts[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// CreateContactMessage implements ContactRepository.
func (s *MemoryStore) CreateContactMessage(ctx context.Context, in domain.NewContactMessage) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := in.Build(s.nextContactID, s.now())
	s.nextContactID++
	s.contacts[m.ID] = m
	return &m, nil
}

// UpdateContactMessage implements ContactRepository.
func (s *MemoryStore) UpdateContactMessage(ctx context.Context, id int64, patch domain.ContactMessagePatch) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.contacts[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&m)
	s.contacts[id] = m
	return &m, nil
}

// DeleteContactMessage implements ContactRepository.
func (s *MemoryStore) DeleteContactMessage(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[id]; !ok {
		return false, nil
	}
	delete(s.contacts, id)
	return true, nil
}

// sortedValues returns copies of the map values in id order.
func sortedValues[T any](m map[int64]T, clone func(T) T) []T {
	ids := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(m[id]))
	}
	return out
}

func cloneBlogPost(p domain.BlogPost) domain.BlogPost {
	p.Images = slices.Clone(p.Images)
	p.Categories = slices.Clone(p.Categories)
	p.Tags = slices.Clone(p.Tags)
	return p
}

func cloneProduct(p domain.Product) domain.Product {
	return p
}

func cloneService(s domain.Service) domain.Service {
	s.Features = slices.Clone(s.Features)
	s.Benefits = slices.Clone(s.Benefits)
	s.Applications = slices.Clone(s.Applications)
	s.RelatedServices = slices.Clone(s.RelatedServices)
	s.Specifications = maps.Clone(s.Specifications)
	if s.ParentID != nil {
		pid := *s.ParentID
		s.ParentID = &pid
	}
	return s
}
