// Package catalog binds the generic rest client to the storefront's three
// managed resources plus the sell/exchange inquiry flow. Paths here mirror
// the backend's routes exactly, quirks included: products and blogs follow a
// plural-list/singular-item convention while services use verb suffixes.
package catalog

import (
	"net/url"

	"heritageloom/internal/domain/entity"
	"heritageloom/internal/rest"
)

// Blog status transitions, issued via Client.Action.
const (
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
)

func Products() rest.Endpoint[entity.Product] {
	return rest.Endpoint[entity.Product]{
		Name:      "product",
		ListPath:  "/products",
		ItemPath:  func(id entity.ID) string { return "/product/" + id.String() },
		Multipart: true,
	}
}

func Blogs() rest.Endpoint[entity.BlogPost] {
	return rest.Endpoint[entity.BlogPost]{
		Name:      "blog",
		ListPath:  "/blogs",
		ItemPath:  func(id entity.ID) string { return "/blog/" + id.String() },
		Paginated: true,
		Multipart: true,
	}
}

func Services() rest.Endpoint[entity.Service] {
	return rest.Endpoint[entity.Service]{
		Name:       "service",
		ListPath:   "/services",
		ItemPath:   func(id entity.ID) string { return "/services/" + id.String() },
		CreatePath: "/services/create",
		UpdatePath: func(id entity.ID) string { return "/services/update/" + id.String() },
		DeletePath: func(id entity.ID) string { return "/services/delete/" + id.String() },
		Multipart:  true,
	}
}

func Inquiries() rest.Endpoint[entity.Inquiry] {
	return rest.Endpoint[entity.Inquiry]{
		Name:      "inquiry",
		ListPath:  "/inquiries",
		ItemPath:  func(id entity.ID) string { return "/inquiry/" + id.String() },
		Multipart: true,
	}
}

// TypeFilter builds the ?type= query both products and services accept.
// An empty value lists everything.
func TypeFilter(value string) url.Values {
	filters := url.Values{}
	if value != "" {
		filters.Set("type", value)
	}
	return filters
}

