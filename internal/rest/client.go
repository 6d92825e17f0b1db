package rest

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"

	"heritageloom/internal/domain/entity"
	"heritageloom/pkg/errors"
)

// overrideField simulates HTTP verbs the backend cannot take natively. The
// PHP side does not accept multipart PUT, so every update goes out as a
// multipart POST carrying _method=PUT. This is a backend contract, not a
// workaround to remove.
const overrideField = "_method"

// ListResult is a normalized list response. Page is nil for endpoints that
// do not paginate.
type ListResult[T any] struct {
	Items []T
	Page  *entity.PageInfo
}

// Client executes CRUD operations for one endpoint. Expected failures come
// back as *errors.AppError values (TRANSPORT_ERROR, NOT_FOUND, DECODE_ERROR);
// the client never panics on backend misbehavior.
type Client[T any] struct {
	transport *Transport
	endpoint  Endpoint[T]
}

func NewClient[T any](transport *Transport, endpoint Endpoint[T]) *Client[T] {
	return &Client[T]{transport: transport, endpoint: endpoint}
}

func (c *Client[T]) Endpoint() Endpoint[T] {
	return c.endpoint
}

// List fetches the collection, with filters appended as query parameters.
// Zero results is a success with an empty slice, never an error.
func (c *Client[T]) List(ctx context.Context, filters url.Values) (ListResult[T], error) {
	raw, err := c.transport.RequestJSON(ctx, http.MethodGet, c.endpoint.ListPath, filters, nil)
	if err != nil {
		return ListResult[T]{}, err
	}
	items, page := DecodeList[T](raw)
	return ListResult[T]{Items: items, Page: page}, nil
}

func (c *Client[T]) Get(ctx context.Context, id entity.ID) (T, error) {
	raw, err := c.transport.RequestJSON(ctx, http.MethodGet, c.endpoint.ItemPath(id), nil, nil)
	if err != nil {
		var zero T
		return zero, c.mapNotFound(err)
	}
	return DecodeItem[T](raw, c.endpoint.Name)
}

// Create submits a new record. Multipart endpoints always encode form data,
// with or without attachments, so text-only and file-bearing creates share
// one code path. A 2xx response with no decodable body still counts as
// success: several backend actions answer with empty or non-JSON bodies.
func (c *Client[T]) Create(ctx context.Context, fields url.Values, files []File) (T, error) {
	var zero T
	raw, err := c.submit(ctx, c.endpoint.createPath(), fields, files)
	if err != nil {
		return zero, err
	}
	if len(raw) == 0 {
		return zero, nil
	}
	item, err := DecodeItem[T](raw, c.endpoint.Name)
	if err != nil {
		// creation succeeded even if the echo of the record is unreadable
		return zero, nil
	}
	return item, nil
}

// Update replaces the full record via multipart POST with a _method=PUT
// override field.
func (c *Client[T]) Update(ctx context.Context, id entity.ID, fields url.Values, files []File) (T, error) {
	var zero T
	withOverride := cloneValues(fields)
	withOverride.Set(overrideField, http.MethodPut)

	raw, err := c.transport.RequestForm(ctx, http.MethodPost, c.endpoint.updatePath(id), withOverride, files)
	if err != nil {
		return zero, c.mapNotFound(err)
	}
	if len(raw) == 0 {
		return zero, nil
	}
	item, err := DecodeItem[T](raw, c.endpoint.Name)
	if err != nil {
		return zero, nil
	}
	return item, nil
}

// Remove deletes by id. A 404 surfaces as NOT_FOUND so callers can treat an
// already-deleted record as gone rather than as a hard failure.
func (c *Client[T]) Remove(ctx context.Context, id entity.ID) error {
	var err error
	if c.endpoint.DeleteViaOverride {
		fields := url.Values{}
		fields.Set(overrideField, http.MethodDelete)
		_, err = c.transport.RequestForm(ctx, http.MethodPost, c.endpoint.deletePath(id), fields, nil)
	} else {
		_, err = c.transport.RequestJSON(ctx, http.MethodDelete, c.endpoint.deletePath(id), nil, nil)
	}
	if err != nil {
		return c.mapNotFound(err)
	}
	return nil
}

// Action runs a resource-specific transition (publish, unpublish) as a POST
// to {itemPath}/{action} with no body, returning the updated record when the
// backend echoes one.
func (c *Client[T]) Action(ctx context.Context, id entity.ID, action string) (T, error) {
	var zero T
	raw, err := c.transport.RequestJSON(ctx, http.MethodPost, c.endpoint.ItemPath(id)+"/"+action, nil, nil)
	if err != nil {
		return zero, c.mapNotFound(err)
	}
	if len(raw) == 0 {
		return zero, nil
	}
	item, err := DecodeItem[T](raw, c.endpoint.Name)
	if err != nil {
		return zero, nil
	}
	return item, nil
}

func (c *Client[T]) submit(ctx context.Context, path string, fields url.Values, files []File) (raw []byte, err error) {
	if c.endpoint.Multipart {
		return c.transport.RequestForm(ctx, http.MethodPost, path, fields, files)
	}
	body := make(map[string]string, len(fields))
	for key := range fields {
		body[key] = fields.Get(key)
	}
	return c.transport.RequestJSON(ctx, http.MethodPost, path, nil, body)
}

func (c *Client[T]) mapNotFound(err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Code == "TRANSPORT_ERROR" && appErr.Status == http.StatusNotFound {
		return errors.NotFound(c.endpoint.Name, appErr)
	}
	return err
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for key, values := range v {
		out[key] = append([]string(nil), values...)
	}
	return out
}
