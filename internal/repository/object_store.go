package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/infrastructure/objectstore"
)

// Object collections. Each row lives at "<collection>/<id>.json".
const (
	usersCollection    = "users"
	blogsCollection    = "blogs"
	productsCollection = "products"
	servicesCollection = "services"
	contactsCollection = "contact_messages"

	countersKey = "counters.json"
)

// ObjectStore keeps one JSON document per row in an objectstore.Bucket and
// the id counters in counters.json. Listing enumerates a collection prefix
// and fetches every object.
type ObjectStore struct {
	bucket objectstore.Bucket
	clock  Clock

	// mu serialises writers so counter bumps and uniqueness checks are
	// atomic with the write that follows them.
	mu sync.RWMutex
}

var _ Store = (*ObjectStore)(nil)

// NewObjectStore wraps bucket. The store takes ownership and closes it.
func NewObjectStore(bucket objectstore.Bucket, opts ...Option) *ObjectStore {
	cfg := buildOptions(opts)
	return &ObjectStore{bucket: bucket, clock: cfg.clock}
}

// Backend implements Store.
func (s *ObjectStore) Backend() string { return BackendObject }

// Driver names the bucket implementation.
func (s *ObjectStore) Driver() string { return s.bucket.Driver() }

// Ping implements Store.
func (s *ObjectStore) Ping(ctx context.Context) error { return s.bucket.Ping(ctx) }

// Close implements Store.
func (s *ObjectStore) Close() error { return s.bucket.Close() }

func (s *ObjectStore) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

func objectKey(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10) + ".json"
}

// getObject decodes the object at key. A missing object yields (nil, nil).
func getObject[T any](ctx context.Context, b objectstore.Bucket, key string) (*T, error) {
	data, err := b.Get(ctx, key)
	if err != nil {
		if errors.Is(err, objectstore.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode object %s: %w", key, err)
	}
	return &v, nil
}

func putObject(ctx context.Context, b objectstore.Bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode object %s: %w", key, err)
	}
	if err := b.Put(ctx, key, data); err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// deleteObject reports whether the object existed.
func deleteObject(ctx context.Context, b objectstore.Bucket, key string) (bool, error) {
	if err := b.Delete(ctx, key); err != nil {
		if errors.Is(err, objectstore.ErrObjectNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete object %s: %w", key, err)
	}
	return true, nil
}

// listObjects fetches every object of a collection, ordered by id.
func listObjects[T any](ctx context.Context, b objectstore.Bucket, collection string, idOf func(T) int64) ([]T, error) {
	keys, err := b.List(ctx, collection+"/")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	out := make([]T, 0, len(keys))
	for _, key := range keys {
		v, err := getObject[T](ctx, b, key)
		if err != nil {
			return nil, err
		}
		// deleted between List and Get
		if v == nil {
			continue
		}
		out = append(out, *v)
	}

	sort.SliceStable(out, func(i, j int) bool { return idOf(out[i]) < idOf(out[j]) })
	return out, nil
}

// nextID bumps and persists the counter for collection. Callers hold mu.
func (s *ObjectStore) nextID(ctx context.Context, collection string) (int64, error) {
	counters, err := getObject[map[string]int64](ctx, s.bucket, countersKey)
	if err != nil {
		return 0, err
	}
	if counters == nil {
		counters = &map[string]int64{}
	}

	id := (*counters)[collection] + 1
	(*counters)[collection] = id
	if err := putObject(ctx, s.bucket, countersKey, *counters); err != nil {
		return 0, err
	}
	return id, nil
}

func userID(u domain.User) int64              { return u.ID }
func blogID(p domain.BlogPost) int64          { return p.ID }
func productID(p domain.Product) int64        { return p.ID }
func serviceID(s domain.Service) int64        { return s.ID }
func contactID(m domain.ContactMessage) int64 { return m.ID }

// storedUser persists the password, which domain.User hides from JSON.
type storedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u storedUser) user() domain.User {
	return domain.User{ID: u.ID, Username: u.Username, Password: u.Password}
}

func storedUserID(u storedUser) int64 { return u.ID }

// Users

// ListUsers implements UserRepository.
func (s *ObjectStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listUsers(ctx)
}

func (s *ObjectStore) listUsers(ctx context.Context) ([]domain.User, error) {
	stored, err := listObjects(ctx, s.bucket, usersCollection, storedUserID)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(stored))
	for _, u := range stored {
		users = append(users, u.user())
	}
	return users, nil
}

// GetUser implements UserRepository.
func (s *ObjectStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, err := getObject[storedUser](ctx, s.bucket, objectKey(usersCollection, id))
	if err != nil || stored == nil {
		return nil, err
	}
	u := stored.user()
	return &u, nil
}

// GetUserByUsername implements UserRepository.
func (s *ObjectStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users, err := s.listUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser implements UserRepository.
func (s *ObjectStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.listUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == in.Username {
			return nil, ErrDuplicateUsername
		}
	}

	id, err := s.nextID(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	u := in.Build(id)
	stored := storedUser{ID: u.ID, Username: u.Username, Password: u.Password}
	if err := putObject(ctx, s.bucket, objectKey(usersCollection, id), stored); err != nil {
		return nil, err
	}
	return &u, nil
}

// Blog posts

// ListBlogPosts implements BlogRepository.
func (s *ObjectStore) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts, err := listObjects(ctx, s.bucket, blogsCollection, blogID)
	if err != nil {
		return nil, err
	}
	sortBlogPosts(posts)
	return posts, nil
}

// GetBlogPost implements BlogRepository.
func (s *ObjectStore) GetBlogPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getObject[domain.BlogPost](ctx, s.bucket, objectKey(blogsCollection, id))
}

// GetBlogPostBySlug implements BlogRepository.
func (s *ObjectStore) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts, err := listObjects(ctx, s.bucket, blogsCollection, blogID)
	if err != nil {
		return nil, err
	}
	return findBySlug(posts, slug, func(p domain.BlogPost) string { return p.Slug }), nil
}

// CreateBlogPost implements BlogRepository.
func (s *ObjectStore) CreateBlogPost(ctx context.Context, in domain.NewBlogPost) (*domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSlug(ctx, blogsCollection, in.Slug, 0); err != nil {
		return nil, err
	}
	id, err := s.nextID(ctx, blogsCollection)
	if err != nil {
		return nil, err
	}
	p := in.Build(id, s.now())
	if err := putObject(ctx, s.bucket, objectKey(blogsCollection, id), p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateBlogPost implements BlogRepository.
func (s *ObjectStore) UpdateBlogPost(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := objectKey(blogsCollection, id)
	p, err := getObject[domain.BlogPost](ctx, s.bucket, key)
	if err != nil || p == nil {
		return nil, err
	}
	if patch.Slug != nil {
		if err := s.checkSlug(ctx, blogsCollection, *patch.Slug, id); err != nil {
			return nil, err
		}
	}

	patch.Apply(p)
	p.UpdatedAt = nextUpdatedAt(s.now(), p.UpdatedAt)
	if err := putObject(ctx, s.bucket, key, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteBlogPost implements BlogRepository.
func (s *ObjectStore) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteObject(ctx, s.bucket, objectKey(blogsCollection, id))
}

// Products

// ListProducts implements ProductRepository.
func (s *ObjectStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listObjects(ctx, s.bucket, productsCollection, productID)
}

// ListFeaturedProducts implements ProductRepository.
func (s *ObjectStore) ListFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all, err := listObjects(ctx, s.bucket, productsCollection, productID)
	if err != nil {
		return nil, err
	}
	return featuredProducts(all), nil
}

// GetProduct implements ProductRepository.
func (s *ObjectStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getObject[domain.Product](ctx, s.bucket, objectKey(productsCollection, id))
}

// GetProductBySlug implements ProductRepository.
func (s *ObjectStore) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all, err := listObjects(ctx, s.bucket, productsCollection, productID)
	if err != nil {
		return nil, err
	}
	return findBySlug(all, slug, func(p domain.Product) string { return p.Slug }), nil
}

// CreateProduct implements ProductRepository.
func (s *ObjectStore) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSlug(ctx, productsCollection, in.Slug, 0); err != nil {
		return nil, err
	}
	id, err := s.nextID(ctx, productsCollection)
	if err != nil {
		return nil, err
	}
	p := in.Build(id, s.now())
	if err := putObject(ctx, s.bucket, objectKey(productsCollection, id), p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct implements ProductRepository.
func (s *ObjectStore) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := objectKey(productsCollection, id)
	p, err := getObject[domain.Product](ctx, s.bucket, key)
	if err != nil || p == nil {
		return nil, err
	}
	if patch.Slug != nil {
		if err := s.checkSlug(ctx, productsCollection, *patch.Slug, id); err != nil {
			return nil, err
		}
	}

	patch.Apply(p)
	if err := putObject(ctx, s.bucket, key, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct implements ProductRepository.
func (s *ObjectStore) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteObject(ctx, s.bucket, objectKey(productsCollection, id))
}

// Services

// ListServices implements ServiceRepository.
func (s *ObjectStore) ListServices(ctx context.Context) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listObjects(ctx, s.bucket, servicesCollection, serviceID)
}

// ListFeaturedServices implements ServiceRepository.
func (s *ObjectStore) ListFeaturedServices(ctx context.Context) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all, err := listObjects(ctx, s.bucket, servicesCollection, serviceID)
	if err != nil {
		return nil, err
	}
	return featuredServices(all), nil
}

// ListServicesByParent implements ServiceRepository.
func (s *ObjectStore) ListServicesByParent(ctx context.Context, parentID *int64) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all, err := listObjects(ctx, s.bucket, servicesCollection, serviceID)
	if err != nil {
		return nil, err
	}
	return filterByParent(all, parentID), nil
}

// ServiceHierarchy implements ServiceRepository.
func (s *ObjectStore) ServiceHierarchy(ctx context.Context) ([]domain.ServiceNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all, err := listObjects(ctx, s.bucket, servicesCollection, serviceID)
	if err != nil {
		return nil, err
	}
	return buildHierarchy(all), nil
}

// RelatedServices implements ServiceRepository.
func (s *ObjectStore) RelatedServices(ctx context.Context, id int64) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, err := getObject[domain.Service](ctx, s.bucket, objectKey(servicesCollection, id))
	if err != nil {
		return nil, err
	}
	if svc == nil || len(svc.RelatedServices) == 0 {
		return []domain.Service{}, nil
	}

	var lookupErr error
	related := resolveRelated(svc.RelatedServices, func(rid int64) (domain.Service, bool) {
		if lookupErr != nil {
			return domain.Service{}, false
		}
		r, err := getObject[domain.Service](ctx, s.bucket, objectKey(servicesCollection, rid))
		if err != nil {
			lookupErr = err
			return domain.Service{}, false
		}
		if r == nil {
			return domain.Service{}, false
		}
		return *r, true
	})
	if lookupErr != nil {
		return nil, lookupErr
	}
	return related, nil
}

// GetService implements ServiceRepository.
func (s *ObjectStore) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getObject[domain.Service](ctx, s.bucket, objectKey(servicesCollection, id))
}

// GetServiceBySlug implements ServiceRepository.
func (s *ObjectStore) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all, err := listObjects(ctx, s.bucket, servicesCollection, serviceID)
	if err != nil {
		return nil, err
	}
	return findBySlug(all, slug, func(svc domain.Service) string { return svc.Slug }), nil
}

// CreateService implements ServiceRepository.
func (s *ObjectStore) CreateService(ctx context.Context, in domain.NewService) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSlug(ctx, servicesCollection, in.Slug, 0); err != nil {
		return nil, err
	}
	id, err := s.nextID(ctx, servicesCollection)
	if err != nil {
		return nil, err
	}
	svc := in.Build(id, s.now())
	if err := putObject(ctx, s.bucket, objectKey(servicesCollection, id), svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateService implements ServiceRepository.
func (s *ObjectStore) UpdateService(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := objectKey(servicesCollection, id)
	svc, err := getObject[domain.Service](ctx, s.bucket, key)
	if err != nil || svc == nil {
		return nil, err
	}
	if patch.Slug != nil {
		if err := s.checkSlug(ctx, servicesCollection, *patch.Slug, id); err != nil {
			return nil, err
		}
	}

	patch.Apply(svc)
	if err := putObject(ctx, s.bucket, key, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService implements ServiceRepository.
func (s *ObjectStore) DeleteService(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteObject(ctx, s.bucket, objectKey(servicesCollection, id))
}

// Contact messages

// ListContactMessages implements ContactRepository.
func (s *ObjectStore) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs, err := listObjects(ctx, s.bucket, contactsCollection, contactID)
	if err != nil {
		return nil, err
	}
	sortContactMessages(msgs)
	return msgs, nil
}

// GetContactMessage implements ContactRepository.
func (s *ObjectStore) GetContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getObject[domain.ContactMessage](ctx, s.bucket, objectKey(contactsCollection, id))
}

// CreateContactMessage implements ContactRepository.
func (s *ObjectStore) CreateContactMessage(ctx context.Context, in domain.NewContactMessage) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID(ctx, contactsCollection)
	if err != nil {
		return nil, err
	}
	m := in.Build(id, s.now())
	if err := putObject(ctx, s.bucket, objectKey(contactsCollection, id), m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateContactMessage implements ContactRepository.
func (s *ObjectStore) UpdateContactMessage(ctx context.Context, id int64, patch domain.ContactMessagePatch) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := objectKey(contactsCollection, id)
	m, err := getObject[domain.ContactMessage](ctx, s.bucket, key)
	if err != nil || m == nil {
		return nil, err
	}
	patch.Apply(m)
	if err := putObject(ctx, s.bucket, key, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteContactMessage implements ContactRepository.
func (s *ObjectStore) DeleteContactMessage(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteObject(ctx, s.bucket, objectKey(contactsCollection, id))
}

// checkSlug returns ErrDuplicateSlug when another row of collection already
// uses slug. Callers hold mu.
func (s *ObjectStore) checkSlug(ctx context.Context, collection, slug string, exceptID int64) error {
	type slugged struct {
		ID   int64  `json:"id"`
		Slug string `json:"slug"`
	}
	rows, err := listObjects(ctx, s.bucket, collection, func(r slugged) int64 { return r.ID })
	if err != nil {
		return err
	}
	for _, r := range rows {
		if r.ID != exceptID && r.Slug == slug {
			return ErrDuplicateSlug
		}
	}
	return nil
}

func findBySlug[T any](rows []T, slug string, slugOf func(T) string) *T {
	for i := range rows {
		if slugOf(rows[i]) == slug {
			return &rows[i]
		}
	}
	return nil
}
