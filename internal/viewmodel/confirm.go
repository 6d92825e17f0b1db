package viewmodel

import (
	"context"

	"heritageloom/internal/domain/entity"
	"heritageloom/internal/rest"
	"heritageloom/pkg/errors"
	"heritageloom/pkg/logger"
)

// DeleteConfirmation is the explicit yes/no gate in front of a delete. It
// lives outside the form lifecycle on purpose: destroying a record is never
// bundled into a submit.
type DeleteConfirmation[T any] struct {
	client  *rest.Client[T]
	id      entity.ID
	confirm func() bool
}

func NewDeleteConfirmation[T any](client *rest.Client[T], id entity.ID, confirm func() bool) *DeleteConfirmation[T] {
	return &DeleteConfirmation[T]{client: client, id: id, confirm: confirm}
}

// Execute asks for confirmation and deletes. Declining returns (false, nil).
// A record already deleted server-side counts as done: the next refetch
// will not contain it either way.
func (d *DeleteConfirmation[T]) Execute(ctx context.Context) (bool, error) {
	if d.confirm != nil && !d.confirm() {
		return false, nil
	}
	if err := d.client.Remove(ctx, d.id); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Info("%s %s already deleted", d.client.Endpoint().Name, d.id)
			return true, nil
		}
		return false, err
	}
	return true, nil
}
