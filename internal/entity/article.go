package entity

import "time"

type Article struct {
	ID            string    `db:"id"`
	Title         string    `db:"title"`
	Slug          string    `db:"slug"`
	Excerpt       string    `db:"excerpt"`
	Content       string    `db:"content"`
	ImageURL      string    `db:"image_url"`
	Author        string    `db:"author"`
	CategoryID    string    `db:"category_id"`
	PublishedDate string    `db:"published_date"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`

	// Filled by the LEFT JOIN against categories; nil when category_id is
	// unset or dangling.
	Category *Category
}

type Category struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

type Comment struct {
	ID        string    `db:"id"`
	ArticleID string    `db:"article_id"`
	UserID    string    `db:"user_id"`
	Username  string    `db:"username"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
