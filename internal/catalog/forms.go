package catalog

import (
	"net/url"
	"time"

	"heritageloom/internal/domain/entity"
)

// Form payloads carry the editable field set for one resource. The schema
// tags double as wire field names and as the names validation errors report,
// so "title is required" matches what the backend and the admin UI both call
// the field. Fields() always emits every key, empty optionals included: the
// backend expects the full column set on create and update alike.

type ProductForm struct {
	Title       string `schema:"title" validate:"required"`
	RefNumber   string `schema:"ref_number" validate:"required"`
	ProductType string `schema:"product_type" validate:"required"`
	PriceText   string `schema:"price_text"`
	Description string `schema:"description"`
	SizeFeet    string `schema:"size_feet"`
	SizeCms     string `schema:"size_cms"`
	Material    string `schema:"material"`
	Colour      string `schema:"colour"`
	StockStatus string `schema:"stock_status" validate:"omitempty,oneof=1 0"`
}

func NewProductForm() ProductForm {
	return ProductForm{StockStatus: entity.StockIn}
}

func ProductFormOf(p entity.Product) ProductForm {
	return ProductForm{
		Title:       p.Title,
		RefNumber:   p.RefNumber,
		ProductType: p.ProductType,
		PriceText:   p.PriceText,
		Description: p.Description,
		SizeFeet:    p.SizeFeet,
		SizeCms:     p.SizeCms,
		Material:    p.Material,
		Colour:      p.Colour,
		StockStatus: p.StockStatus,
	}
}

func (f ProductForm) Fields() url.Values {
	return url.Values{
		"title":        {f.Title},
		"ref_number":   {f.RefNumber},
		"product_type": {f.ProductType},
		"price_text":   {f.PriceText},
		"description":  {f.Description},
		"size_feet":    {f.SizeFeet},
		"size_cms":     {f.SizeCms},
		"material":     {f.Material},
		"colour":       {f.Colour},
		"stock_status": {f.StockStatus},
	}
}

type BlogForm struct {
	Title    string `schema:"title" validate:"required"`
	Slug     string `schema:"slug"`
	Content  string `schema:"content" validate:"required"`
	Category string `schema:"category"`
	PostDate string `schema:"post_date"`
	Status   string `schema:"status" validate:"omitempty,oneof=draft published"`
}

func NewBlogForm() BlogForm {
	return BlogForm{
		PostDate: time.Now().Format("2006-01-02"),
		Status:   entity.BlogDraft,
	}
}

func BlogFormOf(b entity.BlogPost) BlogForm {
	return BlogForm{
		Title:    b.Title,
		Slug:     b.Slug,
		Content:  b.Content,
		Category: b.Category,
		PostDate: b.PostDate,
		Status:   b.Status,
	}
}

func (f BlogForm) Fields() url.Values {
	return url.Values{
		"title":     {f.Title},
		"slug":      {f.Slug},
		"content":   {f.Content},
		"category":  {f.Category},
		"post_date": {f.PostDate},
		"status":    {f.Status},
	}
}

type ServiceForm struct {
	Title       string `schema:"title" validate:"required"`
	Type        string `schema:"type" validate:"required,oneof=carpet shawl"`
	LinkTo      string `schema:"link_to" validate:"required"`
	Description string `schema:"description"`
	Video       string `schema:"video"`
	Points      string `schema:"points"`
}

func ServiceFormOf(s entity.Service) ServiceForm {
	return ServiceForm{
		Title:       s.Title,
		Type:        s.Type,
		LinkTo:      s.LinkTo,
		Description: s.Description,
		Video:       s.Video,
		Points:      s.Points,
	}
}

func (f ServiceForm) Fields() url.Values {
	return url.Values{
		"title":       {f.Title},
		"type":        {f.Type},
		"link_to":     {f.LinkTo},
		"description": {f.Description},
		"video":       {f.Video},
		"points":      {f.Points},
	}
}

type InquiryForm struct {
	Name        string `schema:"name" validate:"required"`
	Phone       string `schema:"phone" validate:"required"`
	Email       string `schema:"email" validate:"omitempty,email"`
	ItemType    string `schema:"item_type" validate:"required"`
	Description string `schema:"description"`
}

func (f InquiryForm) Fields() url.Values {
	return url.Values{
		"name":        {f.Name},
		"phone":       {f.Phone},
		"email":       {f.Email},
		"item_type":   {f.ItemType},
		"description": {f.Description},
	}
}
