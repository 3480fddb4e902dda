package events_test

import (
	"context"
	"testing"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/infrastructure/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	entities []catalog.Entity
	ids      []uuid.UUID
}

func (s *recordingSubscriber) OnCatalogMutated(_ context.Context, entity catalog.Entity, id uuid.UUID) {
	s.entities = append(s.entities, entity)
	s.ids = append(s.ids, id)
}

func TestDispatch_FansOutToAllSubscribers(t *testing.T) {
	d := events.NewDispatcher(nil)
	first := &recordingSubscriber{}
	second := &recordingSubscriber{}
	d.Subscribe(first)
	d.Subscribe(second)

	id := uuid.New()
	d.Dispatch(context.Background(), catalog.EventUpdated, catalog.EntityProduct, id)

	require.Equal(t, []catalog.Entity{catalog.EntityProduct}, first.entities)
	require.Equal(t, []uuid.UUID{id}, first.ids)
	require.Equal(t, []catalog.Entity{catalog.EntityProduct}, second.entities)
}

func TestDispatch_NoSubscribers(t *testing.T) {
	d := events.NewDispatcher(nil)
	// Must not panic with an empty subscriber list.
	d.Dispatch(context.Background(), catalog.EventDeleted, catalog.EntityCategory, uuid.New())
}
