package domain

import "time"

// HeroSlide is a banner on the public landing page.
type HeroSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

type HeroSlideList struct {
	Slides     []HeroSlide `json:"slides"`
	Pagination Pagination  `json:"pagination"`
}

type HeroSlideInput struct {
	Title    string `validate:"required"`
	Subtitle string
	LinkURL  string `validate:"omitempty,url"`
	Order    int    `validate:"gte=0"`
	IsActive bool
	Image    *Upload
}

// Blog is a published article.
type Blog struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Status      BlogStatus `json:"status"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

type BlogList struct {
	Blogs      []Blog     `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

type BlogInput struct {
	Title   string     `validate:"required"`
	Excerpt string
	Content string     `validate:"required"`
	Tags    []string
	Status  BlogStatus `validate:"omitempty,oneof=draft published"`
	Cover   *Upload
}
