package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/application/ledger"
	"github.com/epicontrol/epi-api/internal/domain"
	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
	"github.com/epicontrol/epi-api/internal/domain/stock"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ─────────────────────────────────────────────────────────────────────────────

// fakeStore simula o banco: o mutex faz o papel da atomicidade do UPDATE
// condicional, inclusive sob chamadas concorrentes.
type fakeStore struct {
	mu          sync.Mutex
	products    map[string]*entity.Product
	employees   map[string]*entity.Employee
	users       map[string]*entity.User
	withdrawals []*entity.Withdrawal
	returns     []*entity.Return
	movements   []*entity.StockMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  map[string]*entity.Product{},
		employees: map[string]*entity.Employee{},
		users:     map[string]*entity.User{},
	}
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error              { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) ListByCategory(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(string) error { return nil }

func (r *fakeProductRepo) DecrementStock(productID string, qty int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok || p.StockAvailable < qty {
		return false, nil
	}
	p.StockAvailable -= qty
	return true, nil
}

func (r *fakeProductRepo) IncrementStock(productID string, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockAvailable += qty
	return nil
}

type fakeEmployeeRepo struct{ s *fakeStore }

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { r.s.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.s.employees[id], nil
}
func (r *fakeEmployeeRepo) GetByRegistration(string) (*entity.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) Update(*entity.Employee) error                      { return nil }
func (r *fakeEmployeeRepo) List(int, int) ([]*entity.Employee, error)          { return nil, nil }
func (r *fakeEmployeeRepo) Delete(string) error                                { return nil }

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(u *entity.User) error             { r.s.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.s.users[id], nil }
func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(*entity.User) error               { return nil }
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error)   { return nil, nil }

type fakeWithdrawalRepo struct{ s *fakeStore }

func (r *fakeWithdrawalRepo) Create(w *entity.Withdrawal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.withdrawals = append(r.s.withdrawals, w)
	return nil
}
func (r *fakeWithdrawalRepo) GetByID(string) (*entity.Withdrawal, error) { return nil, nil }
func (r *fakeWithdrawalRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Withdrawal, error) {
	return nil, nil
}
func (r *fakeWithdrawalRepo) ListByEmployee(string, int, int) ([]*entity.Withdrawal, error) {
	return nil, nil
}
func (r *fakeWithdrawalRepo) ListByProduct(string, int, int) ([]*entity.Withdrawal, error) {
	return nil, nil
}

type fakeReturnRepo struct{ s *fakeStore }

func (r *fakeReturnRepo) Create(ret *entity.Return) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.returns = append(r.s.returns, ret)
	return nil
}
func (r *fakeReturnRepo) GetByID(string) (*entity.Return, error) { return nil, nil }
func (r *fakeReturnRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Return, error) {
	return nil, nil
}
func (r *fakeReturnRepo) ListByEmployee(string, int, int) ([]*entity.Return, error) {
	return nil, nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

// fakeTxRunner executa a função diretamente sobre os fakes: a atomicidade
// que a transação real daria vem do mutex do fakeStore.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.WithdrawalRepository,
	repository.ReturnRepository,
	repository.StockMovementRepository,
) error) error {
	return fn(&fakeProductRepo{t.s}, &fakeWithdrawalRepo{t.s}, &fakeReturnRepo{t.s}, &fakeMovementRepo{t.s})
}

type auditEntry struct {
	actor   audit.Actor
	action  string
	entity  string
	details map[string]any
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (a *fakeAudit) Record(actor audit.Actor, action, entityLabel string, details map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, auditEntry{actor, action, entityLabel, details})
}

// ─────────────────────────────────────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────────────────────────────────────

const (
	productID  = "prod-1"
	employeeID = "emp-1"
	actorID    = "user-1"
)

var actor = audit.Actor{UserID: actorID, Email: "almoxarife@example.com"}

func newFixture(stockAvailable, minStock int) (*ledger.UseCase, *fakeStore, *fakeAudit) {
	s := newFakeStore()
	s.products[productID] = &entity.Product{
		ID: productID, Name: "Luva nitrílica", StockAvailable: stockAvailable, MinStock: minStock, Unit: "par",
	}
	s.employees[employeeID] = &entity.Employee{
		ID: employeeID, FullName: "Maria Souza", Registration: "M-001", Status: entity.EmployeeActive,
	}
	s.users[actorID] = &entity.User{
		ID: actorID, Email: "almoxarife@example.com", Role: entity.RoleOperator, Status: entity.UserActive,
	}
	rec := &fakeAudit{}
	uc := ledger.NewUseCase(&fakeTxRunner{s}, &fakeProductRepo{s}, &fakeEmployeeRepo{s}, &fakeUserRepo{s}, rec)
	return uc, s, rec
}

// ─────────────────────────────────────────────────────────────────────────────
// RecordWithdrawal
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordWithdrawal_Sucesso(t *testing.T) {
	uc, s, rec := newFixture(10, 5)

	w, err := uc.RecordWithdrawal(context.Background(), ledger.WithdrawalInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   6,
		Reason:     entity.ReasonWorkUse,
		Actor:      actor,
	})
	require.NoError(t, err)
	require.NotNil(t, w)

	assert.Equal(t, 4, s.products[productID].StockAvailable)
	require.Len(t, s.withdrawals, 1)
	assert.Equal(t, 6, s.withdrawals[0].Quantity)
	assert.Equal(t, actorID, s.withdrawals[0].CreatedBy)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, "registrou retirada", rec.entries[0].action)
	assert.Equal(t, "retirada", rec.entries[0].entity)
	assert.Equal(t, "Luva nitrílica", rec.entries[0].details["product"])
	assert.Equal(t, "Maria Souza", rec.entries[0].details["employee"])
}

func TestRecordWithdrawal_EstoqueInsuficiente(t *testing.T) {
	uc, s, rec := newFixture(5, 5)

	_, err := uc.RecordWithdrawal(context.Background(), ledger.WithdrawalInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   6,
		Reason:     entity.ReasonWorkUse,
		Actor:      actor,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rejeição total: nada persiste, nada é auditado.
	assert.Equal(t, 5, s.products[productID].StockAvailable)
	assert.Empty(t, s.withdrawals)
	assert.Empty(t, rec.entries)
}

func TestRecordWithdrawal_ProdutoInexistente(t *testing.T) {
	uc, _, _ := newFixture(10, 5)

	_, err := uc.RecordWithdrawal(context.Background(), ledger.WithdrawalInput{
		ProductID:  "nao-existe",
		EmployeeID: employeeID,
		Quantity:   1,
		Reason:     entity.ReasonWorkUse,
		Actor:      actor,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordWithdrawal_FuncionarioInativo(t *testing.T) {
	uc, s, _ := newFixture(10, 5)
	s.employees[employeeID].Status = entity.EmployeeInactive

	_, err := uc.RecordWithdrawal(context.Background(), ledger.WithdrawalInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   1,
		Reason:     entity.ReasonWorkUse,
		Actor:      actor,
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeInactive)
	assert.Equal(t, 10, s.products[productID].StockAvailable)
}

func TestRecordWithdrawal_EntradaInvalida(t *testing.T) {
	uc, _, _ := newFixture(10, 5)

	cases := []ledger.WithdrawalInput{
		{ProductID: "", EmployeeID: employeeID, Quantity: 1, Reason: entity.ReasonWorkUse, Actor: actor},
		{ProductID: productID, EmployeeID: "", Quantity: 1, Reason: entity.ReasonWorkUse, Actor: actor},
		{ProductID: productID, EmployeeID: employeeID, Quantity: 0, Reason: entity.ReasonWorkUse, Actor: actor},
		{ProductID: productID, EmployeeID: employeeID, Quantity: -3, Reason: entity.ReasonWorkUse, Actor: actor},
		{ProductID: productID, EmployeeID: employeeID, Quantity: 1, Reason: "motivo_livre", Actor: actor},
	}
	for _, in := range cases {
		_, err := uc.RecordWithdrawal(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Cada chamada é um evento novo: repetir a mesma retirada decrementa de novo.
func TestRecordWithdrawal_NaoIdempotente(t *testing.T) {
	uc, s, _ := newFixture(10, 5)

	in := ledger.WithdrawalInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   3,
		Reason:     entity.ReasonTraining,
		Actor:      actor,
	}
	w1, err := uc.RecordWithdrawal(context.Background(), in)
	require.NoError(t, err)
	w2, err := uc.RecordWithdrawal(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, w1.ID, w2.ID)
	assert.Len(t, s.withdrawals, 2)
	assert.Equal(t, 4, s.products[productID].StockAvailable)
}

// Duas retiradas concorrentes pela última unidade: exatamente uma vence.
func TestRecordWithdrawal_ConcorrenciaUltimaUnidade(t *testing.T) {
	uc, s, _ := newFixture(1, 1)

	in := ledger.WithdrawalInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   1,
		Reason:     entity.ReasonWorkUse,
		Actor:      actor,
	}
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordWithdrawal(context.Background(), in)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, insufficient int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case err == domain.ErrInsufficientStock:
			insufficient++
		default:
			t.Fatalf("erro inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, 0, s.products[productID].StockAvailable)
	assert.Len(t, s.withdrawals, 1)
}

// ─────────────────────────────────────────────────────────────────────────────
// RecordReturn
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordReturn_Sucesso(t *testing.T) {
	uc, s, rec := newFixture(4, 5)

	ret, err := uc.RecordReturn(context.Background(), ledger.ReturnInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   2,
		Condition:  entity.ConditionGood,
		Actor:      actor,
	})
	require.NoError(t, err)
	require.NotNil(t, ret)

	assert.Equal(t, 6, s.products[productID].StockAvailable)
	require.Len(t, s.returns, 1)
	assert.Equal(t, entity.ConditionGood, s.returns[0].Condition)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, "registrou devolucao", rec.entries[0].action)
}

func TestRecordReturn_CondicaoInvalida(t *testing.T) {
	uc, _, _ := newFixture(10, 5)

	_, err := uc.RecordReturn(context.Background(), ledger.ReturnInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   1,
		Condition:  "quase_novo",
		Actor:      actor,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Devolução sem retirada prévia é aceita: o saldo em posse só é derivado
// retrospectivamente em relatório, nunca verificado na escrita.
func TestRecordReturn_SemRetiradaPrevia(t *testing.T) {
	uc, s, _ := newFixture(10, 5)

	_, err := uc.RecordReturn(context.Background(), ledger.ReturnInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   50,
		Condition:  entity.ConditionWornOut,
		Actor:      actor,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, s.products[productID].StockAvailable)
}

func TestRecordReturn_FuncionarioInativo(t *testing.T) {
	uc, s, _ := newFixture(10, 5)
	s.employees[employeeID].Status = entity.EmployeeInactive

	_, err := uc.RecordReturn(context.Background(), ledger.ReturnInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   1,
		Condition:  entity.ConditionGood,
		Actor:      actor,
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeInactive)
}

// ─────────────────────────────────────────────────────────────────────────────
// RecordStockEntry
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordStockEntry_Sucesso(t *testing.T) {
	uc, s, rec := newFixture(3, 5)

	m, err := uc.RecordStockEntry(context.Background(), ledger.EntryInput{
		ProductID: productID,
		Quantity:  20,
		Notes:     "reposição do fornecedor",
		Actor:     actor,
	})
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, entity.MovementIn, m.Type)
	assert.Equal(t, actorID, m.UserID)
	assert.Equal(t, 23, s.products[productID].StockAvailable)
	require.Len(t, s.movements, 1)

	// Entradas diretas não geram trilha de auditoria.
	assert.Empty(t, rec.entries)
}

func TestRecordStockEntry_SemOperador(t *testing.T) {
	uc, _, _ := newFixture(3, 5)

	_, err := uc.RecordStockEntry(context.Background(), ledger.EntryInput{
		ProductID: productID,
		Quantity:  20,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─────────────────────────────────────────────────────────────────────────────
// Fluxo completo retirada/devolução com status derivado
// ─────────────────────────────────────────────────────────────────────────────

func TestFluxoRetiradaDevolucao_StatusDerivado(t *testing.T) {
	uc, s, _ := newFixture(10, 5)
	classify := func() stock.Status {
		return stock.Classify(s.products[productID].StockAvailable, s.products[productID].MinStock)
	}
	assert.Equal(t, stock.StatusNormal, classify())

	_, err := uc.RecordWithdrawal(context.Background(), ledger.WithdrawalInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   6,
		Reason:     entity.ReasonWorkUse,
		Actor:      actor,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, s.products[productID].StockAvailable)
	assert.Equal(t, stock.StatusLow, classify())

	_, err = uc.RecordReturn(context.Background(), ledger.ReturnInput{
		ProductID:  productID,
		EmployeeID: employeeID,
		Quantity:   2,
		Condition:  entity.ConditionGood,
		Actor:      actor,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, s.products[productID].StockAvailable)
	assert.Equal(t, stock.StatusAttention, classify())
}
