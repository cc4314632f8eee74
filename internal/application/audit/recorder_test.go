package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Juridico-api/internal/application/audit"
	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/internal/testutil/memstore"
	"github.com/jhoicas/Juridico-api/pkg/logger"
)

var fixed = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRecord_Create(t *testing.T) {
	db := memstore.New()
	rec := audit.NewRecorder(nil).WithClock(func() time.Time { return fixed })

	err := rec.Created(context.Background(), db.Store().Audit(), entity.EntityOffices, 3, "ANA",
		map[string]any{"nome": "ESCRITÓRIO CENTRAL"})
	require.NoError(t, err)

	recs := db.AuditRecords()
	require.Len(t, recs, 1)
	r := recs[0]
	assert.Equal(t, entity.EntityOffices, r.Entidade)
	assert.Equal(t, int64(3), r.EntidadeID)
	assert.Equal(t, entity.ActionCreate, r.Acao)
	assert.Equal(t, "ANA", r.Quem)
	assert.Equal(t, fixed, r.Quando)
	assert.JSONEq(t, `{"before":{},"after":{"nome":"ESCRITÓRIO CENTRAL"}}`, r.Diff)
}

func TestRecord_DeleteDiffSinAfter(t *testing.T) {
	db := memstore.New()
	rec := audit.NewRecorder(nil)
	require.NoError(t, rec.Deleted(context.Background(), db.Store().Audit(), entity.EntityClients, 9, "dev",
		map[string]any{"nome": "JOÃO"}))

	var diff map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(db.AuditRecords()[0].Diff), &diff))
	assert.Equal(t, "JOÃO", diff["before"]["nome"])
	assert.Empty(t, diff["after"])
}

func TestRecord_Validaciones(t *testing.T) {
	db := memstore.New()
	rec := audit.NewRecorder(nil)
	ctx := context.Background()

	err := rec.Record(ctx, db.Store().Audit(), audit.Entry{Entity: "X", EntityID: 1, Action: "purge", Actor: "a"})
	assert.Error(t, err)
	err = rec.Record(ctx, db.Store().Audit(), audit.Entry{Entity: "X", EntityID: 1, Action: entity.ActionCreate})
	assert.Error(t, err)
	assert.Empty(t, db.AuditRecords())
}

func TestRecord_FalloRevierteMutacion(t *testing.T) {
	db := memstore.New()
	var buf bytes.Buffer
	rec := audit.NewRecorder(nil).WithLogger(logger.New(logger.Config{Level: "warn", Output: &buf}))
	ctx := context.Background()
	db.FailAudit(assert.AnError)

	err := db.Run(ctx, func(s repository.Store) error {
		o := &entity.Office{Nome: "X"}
		if err := s.Offices().Create(ctx, o); err != nil {
			return err
		}
		return rec.Created(ctx, s.Audit(), entity.EntityOffices, o.ID, "dev", o.Snapshot())
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, buf.String(), "auditoría no registrada")

	list, err := db.Store().Offices().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecord_Metricas(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := audit.NewRecorder(reg)
	db := memstore.New()
	ctx := context.Background()
	require.NoError(t, rec.Updated(ctx, db.Store().Audit(), entity.EntityCases, 1, "dev", nil, map[string]any{"status": "ATIVO"}))
	require.NoError(t, rec.Updated(ctx, db.Store().Audit(), entity.EntityCases, 1, "dev", nil, map[string]any{"status": "ARQUIVADO"}))

	n, err := testutil.GatherAndCount(reg, "juridico_audit_records_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBuildDiff_ClavesSiemprePresentes(t *testing.T) {
	s, err := audit.BuildDiff(nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"before":{},"after":{}}`, s)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, audit.MaxList, audit.ClampLimit(0))
	assert.Equal(t, audit.MaxList, audit.ClampLimit(-5))
	assert.Equal(t, audit.MaxList, audit.ClampLimit(10_000))
	assert.Equal(t, 50, audit.ClampLimit(50))
}
