package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/application/dto"
	"github.com/epicontrol/epi-api/internal/domain"
	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de funcionários da empresa (destinatários de retiradas).
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	audit *audit.Recorder
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, auditRecorder *audit.Recorder) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, audit: auditRecorder}
}

// Create cadastra um funcionário. Matrícula duplicada devolve domain.ErrDuplicate.
func (uc *EmployeeUseCase) Create(actor audit.Actor, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FullName == "" || in.Registration == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.EmployeeActive
	}
	if status != entity.EmployeeActive && status != entity.EmployeeInactive {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Registration: in.Registration,
		Department:   in.Department,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	uc.audit.Record(actor, "cadastrou funcionario", "funcionario", map[string]any{"employee": employee.FullName})
	return toEmployeeResponse(employee), nil
}

// Update edita um funcionário existente (inclusive ativação/inativação).
func (uc *EmployeeUseCase) Update(actor audit.Actor, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FullName == "" || in.Registration == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != "" && in.Status != entity.EmployeeActive && in.Status != entity.EmployeeInactive {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	employee.FullName = in.FullName
	employee.Registration = in.Registration
	employee.Department = in.Department
	if in.Status != "" {
		employee.Status = in.Status
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	uc.audit.Record(actor, "editou funcionario", "funcionario", map[string]any{"employee": employee.FullName})
	return toEmployeeResponse(employee), nil
}

// GetByID devolve um funcionário.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// List lista funcionários com paginação.
func (uc *EmployeeUseCase) List(page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.DefaultPage()
	employees, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		Registration: e.Registration,
		Department:   e.Department,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
	}
}
