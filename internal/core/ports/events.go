package ports

import (
	"context"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/google/uuid"
)

// CatalogSubscriber reacts to catalog mutations. Implementations must never
// propagate errors back to the dispatcher: cache degradation is preferable to
// blocking the write path that triggered the event.
type CatalogSubscriber interface {
	OnCatalogMutated(ctx context.Context, entity catalog.Entity, id uuid.UUID)
}

// CatalogDispatcher fans catalog lifecycle events out to subscribers.
type CatalogDispatcher interface {
	Subscribe(sub CatalogSubscriber)
	Dispatch(ctx context.Context, kind catalog.EventKind, entity catalog.Entity, id uuid.UUID)
}
