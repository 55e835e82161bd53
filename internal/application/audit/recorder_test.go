package audit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
	"github.com/epicontrol/epi-api/pkg/logger"
)

type fakeAuditRepo struct {
	created    []*entity.AuditLog
	createErr  error
	lastFilter repository.AuditLogFilter
}

func (r *fakeAuditRepo) Create(log *entity.AuditLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, log)
	return nil
}

func (r *fakeAuditRepo) List(filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	r.lastFilter = filter
	return nil, nil
}

func (r *fakeAuditRepo) DistinctActions() ([]string, error)  { return []string{"registrou retirada"}, nil }
func (r *fakeAuditRepo) DistinctEntities() ([]string, error) { return []string{"retirada"}, nil }

func TestRecord_GravaEntradaComSnapshot(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, logger.Nop())

	rec.Record(audit.Actor{UserID: "u1", Email: "op@example.com"}, "registrou retirada", "retirada", map[string]any{"quantity": 2})

	require.Len(t, repo.created, 1)
	entry := repo.created[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, "op@example.com", entry.UserEmail)
	assert.Equal(t, "registrou retirada", entry.Action)
	assert.Equal(t, "retirada", entry.Entity)
	assert.Equal(t, 2, entry.Details["quantity"])
	assert.False(t, entry.CreatedAt.IsZero())
}

// Sem ator autenticado a entrada é descartada, sem erro.
func TestRecord_SemAtorEhNoOp(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, logger.Nop())

	rec.Record(audit.Actor{}, "registrou retirada", "retirada", nil)

	assert.Empty(t, repo.created)
}

// Falha de escrita na trilha é engolida: o chamador nunca vê o erro.
func TestRecord_FalhaDeEscritaEhEngolida(t *testing.T) {
	repo := &fakeAuditRepo{createErr: errors.New("conexão caiu")}
	rec := audit.NewRecorder(repo, logger.Nop())

	assert.NotPanics(t, func() {
		rec.Record(audit.Actor{UserID: "u1"}, "registrou devolucao", "devolucao", nil)
	})
}

func TestListLogs_AplicaTetoDe500(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, logger.Nop())

	cases := []struct {
		in   int
		want int
	}{
		{0, 500},
		{-10, 500},
		{501, 500},
		{10000, 500},
		{50, 50},
		{500, 500},
	}
	for _, tc := range cases {
		_, err := rec.ListLogs(repository.AuditLogFilter{Limit: tc.in})
		require.NoError(t, err)
		assert.Equal(t, tc.want, repo.lastFilter.Limit, "limit pedido: %d", tc.in)
	}
}
