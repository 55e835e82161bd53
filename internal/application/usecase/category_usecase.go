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

// CategoryUseCase CRUD de categorias de EPIs.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	audit *audit.Recorder
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, auditRecorder *audit.Recorder) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, audit: auditRecorder}
}

// Create cadastra uma categoria.
func (uc *CategoryUseCase) Create(actor audit.Actor, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	uc.audit.Record(actor, "cadastrou categoria", "categoria", map[string]any{"category": category.Name})
	return toCategoryResponse(category), nil
}

// Update edita uma categoria existente.
func (uc *CategoryUseCase) Update(actor audit.Actor, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	uc.audit.Record(actor, "editou categoria", "categoria", map[string]any{"category": category.Name})
	return toCategoryResponse(category), nil
}

// List lista todas as categorias.
func (uc *CategoryUseCase) List() ([]*dto.CategoryResponse, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Delete remove uma categoria. Se ainda houver produtos nela, a FK do
// banco devolve domain.ErrInUse e a remoção é recusada com mensagem clara.
func (uc *CategoryUseCase) Delete(actor audit.Actor, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actor, "removeu categoria", "categoria", map[string]any{"category": category.Name})
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
