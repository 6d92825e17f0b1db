package entity

const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// BlogPost content is raw HTML produced by the admin's rich-text editor and
// rendered directly by the storefront; it is trusted input by contract.
type BlogPost struct {
	ID            ID     `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	Category      string `json:"category"`
	FeaturedImage string `json:"featured_image_path"`
	PostDate      string `json:"post_date"`
	Status        string `json:"status"`
}

func (b BlogPost) Published() bool {
	return b.Status == BlogPublished
}
