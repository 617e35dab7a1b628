package posts

type Post struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Category    string   `json:"category"` // category name, not a foreign key
	Comments    []string `json:"comments"` // comment ids, oldest first
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}
