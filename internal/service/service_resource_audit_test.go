package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/mock"
	"github.com/MKhiriev/go-catalog-admin/internal/resource"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
	"github.com/MKhiriev/go-catalog-admin/models"
)

func newAuditedMutator(t *testing.T) (resource.Mutator, *mock.MockMutator, context.Context, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockMutator(ctrl)
	inner.EXPECT().Entity().Return("user").AnyTimes()
	inner.EXPECT().Fields().Return([]string{"name", "email", "password", "role", "active"}).AnyTimes()

	var buf bytes.Buffer
	ctx := logger.NewWriterLogger(&buf, "test").Into(context.Background())

	return NewResourceAuditService().Wrap(inner), inner, ctx, &buf
}

func TestResourceAudit_CreateLogsFieldNamesOnly(t *testing.T) {
	audited, inner, ctx, buf := newAuditedMutator(t)
	payload := map[string]any{"email": "ann@example.com", "password": "secret1"}

	inner.EXPECT().Create(ctx, payload).Return(resource.Record{"id": int64(3)}, nil)

	rec, err := audited.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec["id"])

	out := buf.String()
	assert.Contains(t, out, `"message":"record created"`)
	assert.Contains(t, out, `"fields":["email","password"]`)
	assert.NotContains(t, out, "secret1")
	assert.NotContains(t, out, "ann@example.com")
}

func TestResourceAudit_UnknownKeysAreNotLogged(t *testing.T) {
	audited, inner, ctx, buf := newAuditedMutator(t)
	payload := map[string]any{"role": "admin", "<script>": 1, "secret1_token": "x"}

	inner.EXPECT().Update(ctx, int64(2), payload).Return(resource.Record{"role": "admin"}, nil)

	_, err := audited.Update(ctx, 2, payload)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"record updated"`)
	assert.Contains(t, out, `"fields":["role"]`)
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "secret1_token")
}

func TestResourceAudit_FailuresAreNotAudited(t *testing.T) {
	audited, inner, ctx, buf := newAuditedMutator(t)

	inner.EXPECT().Update(ctx, int64(1), gomock.Any()).Return(nil, resource.ErrNotFound)
	inner.EXPECT().Remove(ctx, int64(1)).Return(resource.ErrNotFound)

	_, err := audited.Update(ctx, 1, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.ErrorIs(t, audited.Remove(ctx, 1), resource.ErrNotFound)

	assert.Empty(t, buf.String())
}

func TestResourceAudit_ReadsPassThrough(t *testing.T) {
	audited, inner, ctx, buf := newAuditedMutator(t)

	inner.EXPECT().List(ctx).Return([]resource.Record{{"id": int64(1)}}, nil)
	inner.EXPECT().Get(ctx, int64(1)).Return(resource.Record{"id": int64(1)}, nil)

	records, err := audited.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = audited.Get(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "user", audited.Entity())
	assert.Empty(t, buf.String())
}

func TestResourceAudit_RemoveLogsID(t *testing.T) {
	audited, inner, ctx, buf := newAuditedMutator(t)
	inner.EXPECT().Remove(ctx, int64(9)).Return(nil)

	require.NoError(t, audited.Remove(ctx, 9))
	assert.Contains(t, buf.String(), `"id":9`)
	assert.Contains(t, buf.String(), `"entity":"user"`)
}

func TestResourceAudit_LogsActorFromClaims(t *testing.T) {
	audited, inner, ctx, buf := newAuditedMutator(t)
	claims := models.Claims{Email: "ops@example.com", Role: "admin"}
	claims.Subject = "9"
	ctx = utils.WithClaims(ctx, claims)

	inner.EXPECT().Remove(ctx, int64(4)).Return(nil)

	require.NoError(t, audited.Remove(ctx, 4))

	out := buf.String()
	assert.Contains(t, out, `"actor":"9"`)
	assert.NotContains(t, out, "ops@example.com")
}
