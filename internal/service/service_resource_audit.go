package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/resource"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
)

// ResourceAuditService logs every successful write of the wrapped Mutator.
// Only the names of recognized fields are logged, never values. When the request carries
// session claims the caller's user id is logged as "actor".
type ResourceAuditService struct {
	inner resource.Mutator
}

func NewResourceAuditService() MutatorWrapper {
	return &ResourceAuditService{}
}

func (a *ResourceAuditService) Wrap(inner resource.Mutator) resource.Mutator {
	a.inner = inner
	return a
}

func (a *ResourceAuditService) Entity() string {
	return a.inner.Entity()
}

func (a *ResourceAuditService) Fields() []string {
	return a.inner.Fields()
}

func (a *ResourceAuditService) List(ctx context.Context) ([]resource.Record, error) {
	return a.inner.List(ctx)
}

func (a *ResourceAuditService) Get(ctx context.Context, id int64) (resource.Record, error) {
	return a.inner.Get(ctx, id)
}

func (a *ResourceAuditService) Create(ctx context.Context, payload map[string]any) (resource.Record, error) {
	rec, err := a.inner.Create(ctx, payload)
	if err == nil {
		a.event(ctx).
			Any("id", rec["id"]).
			Strs("fields", a.writtenFields(payload)).
			Msg("record created")
	}
	return rec, err
}

func (a *ResourceAuditService) Update(ctx context.Context, id int64, payload map[string]any) (resource.Record, error) {
	rec, err := a.inner.Update(ctx, id, payload)
	if err == nil {
		a.event(ctx).
			Int64("id", id).
			Strs("fields", a.writtenFields(payload)).
			Msg("record updated")
	}
	return rec, err
}

func (a *ResourceAuditService) Remove(ctx context.Context, id int64) error {
	err := a.inner.Remove(ctx, id)
	if err == nil {
		a.event(ctx).
			Int64("id", id).
			Msg("record deleted")
	}
	return err
}

func (a *ResourceAuditService) event(ctx context.Context) *zerolog.Event {
	event := logger.FromContext(ctx).Info().Str("entity", a.inner.Entity())
	if claims, ok := utils.GetClaimsFromContext(ctx); ok {
		event = event.Str("actor", claims.Subject)
	}
	return event
}

// writtenFields returns the payload keys the inner Mutator recognizes.
// Unknown keys are caller-controlled and never reach the log.
func (a *ResourceAuditService) writtenFields(payload map[string]any) []string {
	names := make([]string, 0, len(payload))
	for _, name := range a.inner.Fields() {
		if _, ok := payload[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
