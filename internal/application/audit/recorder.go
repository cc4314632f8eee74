// Package audit registra el diff antes/después de cada mutación en la tabla de
// auditoría. El registro se escribe con el repositorio de la misma transacción
// que la mutación: si falla, la mutación entera se revierte.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Juridico-api/internal/domain/entity"
	"github.com/jhoicas/Juridico-api/internal/domain/repository"
	"github.com/jhoicas/Juridico-api/pkg/logger"
)

// MaxList tope de registros devueltos por un listado.
const MaxList = 200

// Entry datos de una mutación a registrar.
type Entry struct {
	Entity   string
	EntityID int64
	Action   string // entity.ActionCreate | ActionUpdate | ActionDelete
	Actor    string
	Before   map[string]any // vacío en create
	After    map[string]any // vacío en delete
}

// Recorder serializa el diff y anexa el registro.
type Recorder struct {
	now     func() time.Time
	records *prometheus.CounterVec
	log     *logger.Logger
}

// NewRecorder construye el recorder. Con reg != nil expone el contador
// juridico_audit_records_total{entity,action}.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{now: time.Now, log: logger.Nop()}
	if reg != nil {
		r.records = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "juridico_audit_records_total",
			Help: "Registros de auditoría escritos por entidad y acción.",
		}, []string{"entity", "action"})
		reg.MustRegister(r.records)
	}
	return r
}

// WithClock reemplaza el reloj (tests).
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

// WithLogger registra en warn los fallos al anexar.
func (r *Recorder) WithLogger(log *logger.Logger) *Recorder {
	if log != nil {
		r.log = log
	}
	return r
}

// Record valida la entrada, arma el payload y lo anexa con repo.
func (r *Recorder) Record(ctx context.Context, repo repository.AuditRepository, e Entry) error {
	switch e.Action {
	case entity.ActionCreate, entity.ActionUpdate, entity.ActionDelete:
	default:
		return fmt.Errorf("audit: acción desconocida %q", e.Action)
	}
	if e.Actor == "" {
		return fmt.Errorf("audit: actor vacío para %s/%d", e.Entity, e.EntityID)
	}
	diff, err := BuildDiff(e.Before, e.After)
	if err != nil {
		return fmt.Errorf("audit: serializar diff %s/%d: %w", e.Entity, e.EntityID, err)
	}
	rec := &entity.AuditRecord{
		Entidade:   e.Entity,
		EntidadeID: e.EntityID,
		Acao:       e.Action,
		Quem:       e.Actor,
		Quando:     r.now().UTC(),
		Diff:       diff,
	}
	if err := repo.Append(ctx, rec); err != nil {
		r.log.Warn().Err(err).Str("entidade", e.Entity).Int64("entidade_id", e.EntityID).Str("acao", e.Action).Msg("auditoría no registrada; se revierte la mutación")
		return fmt.Errorf("audit: anexar %s/%d: %w", e.Entity, e.EntityID, err)
	}
	if r.records != nil {
		r.records.WithLabelValues(e.Entity, e.Action).Inc()
	}
	return nil
}

// Created atajo para una creación.
func (r *Recorder) Created(ctx context.Context, repo repository.AuditRepository, ent string, id int64, actor string, after map[string]any) error {
	return r.Record(ctx, repo, Entry{Entity: ent, EntityID: id, Action: entity.ActionCreate, Actor: actor, After: after})
}

// Updated atajo para una actualización parcial.
func (r *Recorder) Updated(ctx context.Context, repo repository.AuditRepository, ent string, id int64, actor string, before, after map[string]any) error {
	return r.Record(ctx, repo, Entry{Entity: ent, EntityID: id, Action: entity.ActionUpdate, Actor: actor, Before: before, After: after})
}

// Deleted atajo para un borrado.
func (r *Recorder) Deleted(ctx context.Context, repo repository.AuditRepository, ent string, id int64, actor string, before map[string]any) error {
	return r.Record(ctx, repo, Entry{Entity: ent, EntityID: id, Action: entity.ActionDelete, Actor: actor, Before: before})
}

// BuildDiff serializa {"before":..., "after":...}; ambas claves siempre presentes.
func BuildDiff(before, after map[string]any) (string, error) {
	if before == nil {
		before = map[string]any{}
	}
	if after == nil {
		after = map[string]any{}
	}
	b, err := json.Marshal(struct {
		Before map[string]any `json:"before"`
		After  map[string]any `json:"after"`
	}{before, after})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ClampLimit normaliza el límite de un listado a (0, MaxList].
func ClampLimit(limit int) int {
	if limit <= 0 || limit > MaxList {
		return MaxList
	}
	return limit
}
