package events

import (
	"context"
	"sync"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Dispatcher is a synchronous in-process fan-out of catalog lifecycle events.
// Subscribers run inline on the write path, so they are required (by the
// CatalogSubscriber contract) to absorb their own failures.
type Dispatcher struct {
	mu     sync.RWMutex
	subs   []ports.CatalogSubscriber
	logger *logrus.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Subscribe registers a subscriber for all catalog events.
func (d *Dispatcher) Subscribe(sub ports.CatalogSubscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, sub)
}

// Dispatch notifies every subscriber of a catalog mutation.
func (d *Dispatcher) Dispatch(ctx context.Context, kind catalog.EventKind, entity catalog.Entity, id uuid.UUID) {
	d.mu.RLock()
	subs := make([]ports.CatalogSubscriber, len(d.subs))
	copy(subs, d.subs)
	d.mu.RUnlock()

	if d.logger != nil {
		d.logger.WithFields(logrus.Fields{"kind": kind, "entity": entity, "id": id}).Debug("dispatching catalog event")
	}
	for _, sub := range subs {
		sub.OnCatalogMutated(ctx, entity, id)
	}
}

var _ ports.CatalogDispatcher = (*Dispatcher)(nil)
