package domain

import "time"

// BlogStatus represents the publication state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusScheduled BlogStatus = "scheduled"
)

// DefaultAuthor is used when a post is created without an author.
const DefaultAuthor = "Admin"

// ValidBlogStatuses contains all valid blog post statuses.
var ValidBlogStatuses = []BlogStatus{BlogStatusDraft, BlogStatusPublished, BlogStatusScheduled}

// IsValidBlogStatus checks if a status is valid.
func IsValidBlogStatus(status BlogStatus) bool {
	for _, s := range ValidBlogStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// BlogPost represents a blog post entity.
type BlogPost struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	Author          string     `json:"author"`
	Status          BlogStatus `json:"status"`
	PublishDate     time.Time  `json:"publishDate"`
	Images          []string   `json:"images"`
	Categories      []string   `json:"categories"`
	Tags            []string   `json:"tags"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// NewBlogPost holds the fields accepted when creating a blog post.
// Pointer fields are optional and fall back to their defaults.
type NewBlogPost struct {
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Content         string      `json:"content"`
	Excerpt         *string     `json:"excerpt"`
	Author          *string     `json:"author"`
	Status          *BlogStatus `json:"status"`
	PublishDate     *time.Time  `json:"publishDate"`
	Images          []string    `json:"images"`
	Categories      []string    `json:"categories"`
	Tags            []string    `json:"tags"`
	MetaTitle       *string     `json:"metaTitle"`
	MetaDescription *string     `json:"metaDescription"`
}

// Build materialises the post with defaults applied. createdAt and
// updatedAt are both set to now.
func (n NewBlogPost) Build(id int64, now time.Time) BlogPost {
	post := BlogPost{
		ID:              id,
		Title:           n.Title,
		Slug:            n.Slug,
		Content:         n.Content,
		Excerpt:         n.Excerpt,
		Author:          DefaultAuthor,
		Status:          BlogStatusDraft,
		PublishDate:     now,
		Images:          nonNil(n.Images),
		Categories:      nonNil(n.Categories),
		Tags:            nonNil(n.Tags),
		MetaTitle:       n.MetaTitle,
		MetaDescription: n.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if n.Author != nil {
		post.Author = *n.Author
	}
	if n.Status != nil {
		post.Status = *n.Status
	}
	if n.PublishDate != nil {
		post.PublishDate = *n.PublishDate
	}
	return post
}

// BlogPostPatch is a partial update. Nil fields are left untouched.
type BlogPostPatch struct {
	Title           *string     `json:"title"`
	Slug            *string     `json:"slug"`
	Content         *string     `json:"content"`
	Excerpt         *string     `json:"excerpt"`
	Author          *string     `json:"author"`
	Status          *BlogStatus `json:"status"`
	PublishDate     *time.Time  `json:"publishDate"`
	Images          *[]string   `json:"images"`
	Categories      *[]string   `json:"categories"`
	Tags            *[]string   `json:"tags"`
	MetaTitle       *string     `json:"metaTitle"`
	MetaDescription *string     `json:"metaDescription"`
}

// Apply merges the patch into post. updatedAt is not touched here; the
// store owns the clock.
func (p BlogPostPatch) Apply(post *BlogPost) {
	setIf(&post.Title, p.Title)
	setIf(&post.Slug, p.Slug)
	setIf(&post.Content, p.Content)
	if p.Excerpt != nil {
		post.Excerpt = p.Excerpt
	}
	setIf(&post.Author, p.Author)
	setIf(&post.Status, p.Status)
	setIf(&post.PublishDate, p.PublishDate)
	if p.Images != nil {
		post.Images = nonNil(*p.Images)
	}
	if p.Categories != nil {
		post.Categories = nonNil(*p.Categories)
	}
	if p.Tags != nil {
		post.Tags = nonNil(*p.Tags)
	}
	if p.MetaTitle != nil {
		post.MetaTitle = p.MetaTitle
	}
	if p.MetaDescription != nil {
		post.MetaDescription = p.MetaDescription
	}
}

// CategoryCount is a blog category name with the number of posts using it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
