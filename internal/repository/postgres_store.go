package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rdevrajsinh/totalenc/internal/domain"
)

const uniqueViolation = "23505"

const (
	userColumns    = `id, username, password`
	blogColumns    = `id, title, slug, content, excerpt, author, status, publish_date, images, categories, tags, meta_title, meta_description, created_at, updated_at`
	productColumns = `id, name, slug, description, image, category, featured, created_at`
	serviceColumns = `id, name, slug, description, full_description, image, featured, parent_id, sort_order, features, benefits, applications, specifications, related_services, meta_title, meta_description, created_at`
	contactColumns = `id, name, email, phone, message, created_at, read`
)

// PostgresStore implements Store on PostgreSQL. The schema is created by
// database.Migrate; ids come from BIGSERIAL columns and uniqueness from
// UNIQUE constraints.
type PostgresStore struct {
	pool  *pgxpool.Pool
	clock Clock
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a PostgresStore. The store closes pool on Close.
func NewPostgresStore(pool *pgxpool.Pool, opts ...Option) *PostgresStore {
	cfg := buildOptions(opts)
	return &PostgresStore{pool: pool, clock: cfg.clock}
}

// Backend implements Store.
func (s *PostgresStore) Backend() string { return BackendPostgres }

// Ping implements Store.
func (s *PostgresStore) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close implements Store.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

// translateError maps unique violations onto the duplicate sentinels.
func translateError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return ErrDuplicateUsername
		}
		return ErrDuplicateSlug
	}
	return fmt.Errorf("%s: %w", op, err)
}

// queryOne runs query and scans a single row. No rows yields (nil, nil).
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, op string, scan pgx.RowToFunc[T], query string, args ...any) (*T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, op)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err, op)
	}
	return &v, nil
}

// queryAll runs query and scans every row. The result is never nil.
func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, op string, scan pgx.RowToFunc[T], query string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (s *PostgresStore) deleteRow(ctx context.Context, table string, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// setClause accumulates "col = $n" assignments for a partial UPDATE.
type setClause struct {
	sets []string
	args []any
}

func (c *setClause) add(column string, value any) {
	c.args = append(c.args, value)
	c.sets = append(c.sets, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

func (c *setClause) addRaw(expr string, value any) {
	c.args = append(c.args, value)
	c.sets = append(c.sets, fmt.Sprintf(expr, len(c.args)))
}

func (c *setClause) empty() bool { return len(c.sets) == 0 }

// query renders "UPDATE table SET ... WHERE id = $n RETURNING columns".
func (c *setClause) query(table, columns string, id int64) (string, []any) {
	args := append(c.args, id)
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		table, strings.Join(c.sets, ", "), len(args), columns)
	return q, args
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

func scanBlogPost(row pgx.CollectableRow) (domain.BlogPost, error) {
	var p domain.BlogPost
	var status string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Author, &status,
		&p.PublishDate, &p.Images, &p.Categories, &p.Tags, &p.MetaTitle, &p.MetaDescription,
		&p.CreatedAt, &p.UpdatedAt)
	p.Status = domain.BlogStatus(status)
	p.PublishDate = p.PublishDate.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, err
}

func scanProduct(row pgx.CollectableRow) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Image, &p.Category, &p.Featured, &p.CreatedAt)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, err
}

func scanService(row pgx.CollectableRow) (domain.Service, error) {
	var s domain.Service
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.FullDescription, &s.Image,
		&s.Featured, &s.ParentID, &s.Order, &s.Features, &s.Benefits, &s.Applications,
		&s.Specifications, &s.RelatedServices, &s.MetaTitle, &s.MetaDescription, &s.CreatedAt)
	s.CreatedAt = s.CreatedAt.UTC()
	return s, err
}

func scanContactMessage(row pgx.CollectableRow) (domain.ContactMessage, error) {
	var m domain.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt, &m.Read)
	m.CreatedAt = m.CreatedAt.UTC()
	return m, err
}

// Users

// ListUsers implements UserRepository.
func (s *PostgresStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	return queryAll(ctx, s.pool, "list users", scanUser,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
}

// GetUser implements UserRepository.
func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return queryOne(ctx, s.pool, "get user", scanUser,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetUserByUsername implements UserRepository.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return queryOne(ctx, s.pool, "get user by username", scanUser,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// CreateUser implements UserRepository.
func (s *PostgresStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	return queryOne(ctx, s.pool, "create user", scanUser,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING `+userColumns,
		in.Username, in.Password)
}

// Blog posts

// ListBlogPosts implements BlogRepository.
func (s *PostgresStore) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return queryAll(ctx, s.pool, "list blog posts", scanBlogPost,
		`SELECT `+blogColumns+` FROM blog_posts ORDER BY publish_date DESC, id`)
}

// GetBlogPost implements BlogRepository.
func (s *PostgresStore) GetBlogPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	return queryOne(ctx, s.pool, "get blog post", scanBlogPost,
		`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
}

// GetBlogPostBySlug implements BlogRepository.
func (s *PostgresStore) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return queryOne(ctx, s.pool, "get blog post by slug", scanBlogPost,
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug)
}

// CreateBlogPost implements BlogRepository.
func (s *PostgresStore) CreateBlogPost(ctx context.Context, in domain.NewBlogPost) (*domain.BlogPost, error) {
	p := in.Build(0, s.now())
	return queryOne(ctx, s.pool, "create blog post", scanBlogPost, `
		INSERT INTO blog_posts (title, slug, content, excerpt, author, status, publish_date,
			images, categories, tags, meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING `+blogColumns,
		p.Title, p.Slug, p.Content, p.Excerpt, p.Author, string(p.Status), p.PublishDate,
		p.Images, p.Categories, p.Tags, p.MetaTitle, p.MetaDescription, p.CreatedAt)
}

// UpdateBlogPost implements BlogRepository. updated_at always moves forward
// by at least one microsecond.
func (s *PostgresStore) UpdateBlogPost(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	var c setClause
	if patch.Title != nil {
		c.add("title", *patch.Title)
	}
	if patch.Slug != nil {
		c.add("slug", *patch.Slug)
	}
	if patch.Content != nil {
		c.add("content", *patch.Content)
	}
	if patch.Excerpt != nil {
		c.add("excerpt", *patch.Excerpt)
	}
	if patch.Author != nil {
		c.add("author", *patch.Author)
	}
	if patch.Status != nil {
		c.add("status", string(*patch.Status))
	}
	if patch.PublishDate != nil {
		c.add("publish_date", *patch.PublishDate)
	}
	if patch.Images != nil {
		c.add("images", nonNilStrings(*patch.Images))
	}
	if patch.Categories != nil {
		c.add("categories", nonNilStrings(*patch.Categories))
	}
	if patch.Tags != nil {
		c.add("tags", nonNilStrings(*patch.Tags))
	}
	if patch.MetaTitle != nil {
		c.add("meta_title", *patch.MetaTitle)
	}
	if patch.MetaDescription != nil {
		c.add("meta_description", *patch.MetaDescription)
	}
	c.addRaw("updated_at = GREATEST($%d, updated_at + interval '1 microsecond')", s.now())

	q, args := c.query("blog_posts", blogColumns, id)
	return queryOne(ctx, s.pool, "update blog post", scanBlogPost, q, args...)
}

// DeleteBlogPost implements BlogRepository.
func (s *PostgresStore) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	return s.deleteRow(ctx, "blog_posts", id)
}

// Products

// ListProducts implements ProductRepository.
func (s *PostgresStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return queryAll(ctx, s.pool, "list products", scanProduct,
		`SELECT `+productColumns+` FROM products ORDER BY id`)
}

// ListFeaturedProducts implements ProductRepository.
func (s *PostgresStore) ListFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return queryAll(ctx, s.pool, "list featured products", scanProduct,
		`SELECT `+productColumns+` FROM products WHERE featured ORDER BY id`)
}

// GetProduct implements ProductRepository.
func (s *PostgresStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return queryOne(ctx, s.pool, "get product", scanProduct,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetProductBySlug implements ProductRepository.
func (s *PostgresStore) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return queryOne(ctx, s.pool, "get product by slug", scanProduct,
		`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
}

// CreateProduct implements ProductRepository.
func (s *PostgresStore) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	p := in.Build(0, s.now())
	return queryOne(ctx, s.pool, "create product", scanProduct, `
		INSERT INTO products (name, slug, description, image, category, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns,
		p.Name, p.Slug, p.Description, p.Image, p.Category, p.Featured, p.CreatedAt)
}

// UpdateProduct implements ProductRepository.
func (s *PostgresStore) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	var c setClause
	if patch.Name != nil {
		c.add("name", *patch.Name)
	}
	if patch.Slug != nil {
		c.add("slug", *patch.Slug)
	}
	if patch.Description != nil {
		c.add("description", *patch.Description)
	}
	if patch.Image != nil {
		c.add("image", *patch.Image)
	}
	if patch.Category != nil {
		c.add("category", *patch.Category)
	}
	if patch.Featured != nil {
		c.add("featured", *patch.Featured)
	}
	if c.empty() {
		return s.GetProduct(ctx, id)
	}

	q, args := c.query("products", productColumns, id)
	return queryOne(ctx, s.pool, "update product", scanProduct, q, args...)
}

// DeleteProduct implements ProductRepository.
func (s *PostgresStore) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return s.deleteRow(ctx, "products", id)
}

// Services

// ListServices implements ServiceRepository.
func (s *PostgresStore) ListServices(ctx context.Context) ([]domain.Service, error) {
	return queryAll(ctx, s.pool, "list services", scanService,
		`SELECT `+serviceColumns+` FROM services ORDER BY id`)
}

// ListFeaturedServices implements ServiceRepository.
func (s *PostgresStore) ListFeaturedServices(ctx context.Context) ([]domain.Service, error) {
	return queryAll(ctx, s.pool, "list featured services", scanService,
		`SELECT `+serviceColumns+` FROM services WHERE featured ORDER BY id`)
}

// ListServicesByParent implements ServiceRepository.
func (s *PostgresStore) ListServicesByParent(ctx context.Context, parentID *int64) ([]domain.Service, error) {
	if parentID == nil {
		return queryAll(ctx, s.pool, "list main services", scanService,
			`SELECT `+serviceColumns+` FROM services WHERE parent_id IS NULL ORDER BY sort_order, id`)
	}
	return queryAll(ctx, s.pool, "list child services", scanService,
		`SELECT `+serviceColumns+` FROM services WHERE parent_id = $1 ORDER BY sort_order, id`, *parentID)
}

// ServiceHierarchy implements ServiceRepository. Both levels are read in one
// query and grouped in memory.
func (s *PostgresStore) ServiceHierarchy(ctx context.Context) ([]domain.ServiceNode, error) {
	all, err := queryAll(ctx, s.pool, "load service hierarchy", scanService, `
		SELECT `+serviceColumns+` FROM services
		WHERE parent_id IS NULL
		   OR parent_id IN (SELECT id FROM services WHERE parent_id IS NULL)
		ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	return buildHierarchy(all), nil
}

// RelatedServices implements ServiceRepository.
func (s *PostgresStore) RelatedServices(ctx context.Context, id int64) ([]domain.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil || len(svc.RelatedServices) == 0 {
		return []domain.Service{}, nil
	}

	found, err := queryAll(ctx, s.pool, "list related services", scanService,
		`SELECT `+serviceColumns+` FROM services WHERE id = ANY($1)`, svc.RelatedServices)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Service, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}
	return resolveRelated(svc.RelatedServices, func(rid int64) (domain.Service, bool) {
		r, ok := byID[rid]
		return r, ok
	}), nil
}

// GetService implements ServiceRepository.
func (s *PostgresStore) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return queryOne(ctx, s.pool, "get service", scanService,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
}

// GetServiceBySlug implements ServiceRepository.
func (s *PostgresStore) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	return queryOne(ctx, s.pool, "get service by slug", scanService,
		`SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug)
}

// CreateService implements ServiceRepository.
func (s *PostgresStore) CreateService(ctx context.Context, in domain.NewService) (*domain.Service, error) {
	svc := in.Build(0, s.now())
	return queryOne(ctx, s.pool, "create service", scanService, `
		INSERT INTO services (name, slug, description, full_description, image, featured,
			parent_id, sort_order, features, benefits, applications, specifications,
			related_services, meta_title, meta_description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+serviceColumns,
		svc.Name, svc.Slug, svc.Description, svc.FullDescription, svc.Image, svc.Featured,
		svc.ParentID, svc.Order, svc.Features, svc.Benefits, svc.Applications, svc.Specifications,
		svc.RelatedServices, svc.MetaTitle, svc.MetaDescription, svc.CreatedAt)
}

// UpdateService implements ServiceRepository.
func (s *PostgresStore) UpdateService(ctx context.Context, id int64, patch domain.ServicePatch) (*domain.Service, error) {
	var c setClause
	if patch.Name != nil {
		c.add("name", *patch.Name)
	}
	if patch.Slug != nil {
		c.add("slug", *patch.Slug)
	}
	if patch.Description != nil {
		c.add("description", *patch.Description)
	}
	if patch.FullDescription != nil {
		c.add("full_description", *patch.FullDescription)
	}
	if patch.Image != nil {
		c.add("image", *patch.Image)
	}
	if patch.Featured != nil {
		c.add("featured", *patch.Featured)
	}
	if patch.ParentID.Set {
		c.add("parent_id", patch.ParentID.Value)
	}
	if patch.Order != nil {
		c.add("sort_order", *patch.Order)
	}
	if patch.Features != nil {
		c.add("features", nonNilStrings(*patch.Features))
	}
	if patch.Benefits != nil {
		c.add("benefits", nonNilStrings(*patch.Benefits))
	}
	if patch.Applications != nil {
		c.add("applications", nonNilStrings(*patch.Applications))
	}
	if patch.Specifications != nil {
		specs := *patch.Specifications
		if specs == nil {
			specs = map[string]string{}
		}
		c.add("specifications", specs)
	}
	if patch.RelatedServices != nil {
		related := *patch.RelatedServices
		if related == nil {
			related = []int64{}
		}
		c.add("related_services", related)
	}
	if patch.MetaTitle != nil {
		c.add("meta_title", *patch.MetaTitle)
	}
	if patch.MetaDescription != nil {
		c.add("meta_description", *patch.MetaDescription)
	}
	if c.empty() {
		return s.GetService(ctx, id)
	}

	q, args := c.query("services", serviceColumns, id)
	return queryOne(ctx, s.pool, "update service", scanService, q, args...)
}

// DeleteService implements ServiceRepository. Children keep their parent_id.
func (s *PostgresStore) DeleteService(ctx context.Context, id int64) (bool, error) {
	return s.deleteRow(ctx, "services", id)
}

// Contact messages

// ListContactMessages implements ContactRepository.
func (s *PostgresStore) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return queryAll(ctx, s.pool, "list contact messages", scanContactMessage,
		`SELECT `+contactColumns+` FROM contact_messages ORDER BY created_at DESC, id`)
}

// GetContactMessage implements ContactRepository.
func (s *PostgresStore) GetContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	return queryOne(ctx, s.pool, "get contact message", scanContactMessage,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id)
}

// CreateContactMessage implements ContactRepository.
func (s *PostgresStore) CreateContactMessage(ctx context.Context, in domain.NewContactMessage) (*domain.ContactMessage, error) {
	m := in.Build(0, s.now())
	return queryOne(ctx, s.pool, "create contact message", scanContactMessage, `
		INSERT INTO contact_messages (name, email, phone, message, created_at, read)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING `+contactColumns,
		m.Name, m.Email, m.Phone, m.Message, m.CreatedAt)
}

// UpdateContactMessage implements ContactRepository.
func (s *PostgresStore) UpdateContactMessage(ctx context.Context, id int64, patch domain.ContactMessagePatch) (*domain.ContactMessage, error) {
	if patch.Read == nil {
		return s.GetContactMessage(ctx, id)
	}
	return queryOne(ctx, s.pool, "update contact message", scanContactMessage,
		`UPDATE contact_messages SET read = $1 WHERE id = $2 RETURNING `+contactColumns,
		*patch.Read, id)
}

// DeleteContactMessage implements ContactRepository.
func (s *PostgresStore) DeleteContactMessage(ctx context.Context, id int64) (bool, error) {
	return s.deleteRow(ctx, "contact_messages", id)
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
