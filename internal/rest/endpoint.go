package rest

import (
	"encoding/json"

	"heritageloom/internal/domain/entity"
	"heritageloom/pkg/errors"
)

// Endpoint describes one server resource: its paths and the subset of
// operations it supports. It carries no connection state; the same value can
// back any number of clients.
type Endpoint[T any] struct {
	// Name appears in error messages ("product not found").
	Name string

	ListPath   string
	ItemPath   func(id entity.ID) string
	CreatePath string
	UpdatePath func(id entity.ID) string
	DeletePath func(id entity.ID) string

	// Paginated endpoints return a PageInfo envelope next to their data.
	Paginated bool

	// Multipart creates/updates encode every scalar field plus attachments
	// as form data; non-multipart ones send plain JSON.
	Multipart bool

	// DeleteViaOverride issues deletes as POST with a _method=DELETE field
	// instead of a native DELETE, for backends that require it.
	DeleteViaOverride bool
}

func (e Endpoint[T]) createPath() string {
	if e.CreatePath != "" {
		return e.CreatePath
	}
	return e.ListPath
}

func (e Endpoint[T]) updatePath(id entity.ID) string {
	if e.UpdatePath != nil {
		return e.UpdatePath(id)
	}
	return e.ItemPath(id)
}

func (e Endpoint[T]) deletePath(id entity.ID) string {
	if e.DeletePath != nil {
		return e.DeletePath(id)
	}
	return e.ItemPath(id)
}

// listEnvelope covers both wrapped list shapes the backend uses:
// {status:"success", data:[...]} and {data:[...]} with no status.
type listEnvelope struct {
	Status     string           `json:"status"`
	Data       json.RawMessage  `json:"data"`
	Pagination *entity.PageInfo `json:"pagination"`
}

// DecodeList normalizes the three observed list response shapes (bare array,
// {status,data}, {data}) into a plain slice. Any unrecognized shape decodes
// to an empty slice: a malformed list never takes down the page rendering it.
func DecodeList[T any](raw json.RawMessage) ([]T, *entity.PageInfo) {
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	var envelope listEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Data) == 0 {
		return []T{}, nil
	}
	if envelope.Status != "" && envelope.Status != "success" {
		return []T{}, nil
	}
	if err := json.Unmarshal(envelope.Data, &items); err != nil || items == nil {
		return []T{}, envelope.Pagination
	}
	return items, envelope.Pagination
}

// DecodeItem extracts a single record, unwrapping a {status,data} or {data}
// envelope when present. Unlike lists, a single-item shape mismatch is a
// hard DECODE_ERROR: callers asked for a specific record and got garbage.
func DecodeItem[T any](raw json.RawMessage, name string) (T, error) {
	var item T
	if len(raw) == 0 {
		return item, errors.Decode("empty response for "+name, nil)
	}

	var envelope listEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &item); err == nil {
			return item, nil
		}
	}

	if err := json.Unmarshal(raw, &item); err != nil {
		return item, errors.Decode("unexpected response shape for "+name, err)
	}
	return item, nil
}
