package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/epicontrol/epi-api/internal/application/audit"
	"github.com/epicontrol/epi-api/internal/application/dto"
	"github.com/epicontrol/epi-api/internal/domain"
	"github.com/epicontrol/epi-api/internal/domain/entity"
	"github.com/epicontrol/epi-api/internal/domain/repository"
	"github.com/epicontrol/epi-api/internal/domain/stock"
)

// ProductUseCase CRUD de produtos do catálogo de EPIs.
// Edições nunca tocam o estoque disponível: isso é exclusivo do razão.
type ProductUseCase struct {
	repo  repository.ProductRepository
	audit *audit.Recorder
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, auditRecorder *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, audit: auditRecorder}
}

// Create cadastra um produto. InitialStock só vale aqui.
func (uc *ProductUseCase) Create(actor audit.Actor, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Unit == "" || in.MinStock < 0 || in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Code:           in.Code,
		Name:           in.Name,
		Description:    in.Description,
		StockAvailable: in.InitialStock,
		MinStock:       in.MinStock,
		Unit:           in.Unit,
		CANumber:       in.CANumber,
		Size:           in.Size,
		CategoryID:     in.CategoryID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.audit.Record(actor, "cadastrou produto", "produto", map[string]any{"product": product.Name})
	return toProductResponse(product), nil
}

// Update edita os campos do catálogo de um produto existente.
func (uc *ProductUseCase) Update(actor audit.Actor, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Unit == "" || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Code = in.Code
	product.Name = in.Name
	product.Description = in.Description
	product.MinStock = in.MinStock
	product.Unit = in.Unit
	product.CANumber = in.CANumber
	product.Size = in.Size
	product.CategoryID = in.CategoryID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.audit.Record(actor, "editou produto", "produto", map[string]any{"product": product.Name})
	return toProductResponse(product), nil
}

// GetByID devolve um produto com o status derivado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete remove um produto sem histórico. Com retiradas/devoluções
// referenciando-o, a FK devolve domain.ErrInUse.
func (uc *ProductUseCase) Delete(actor audit.Actor, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actor, "removeu produto", "produto", map[string]any{"product": product.Name})
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Code:           p.Code,
		Name:           p.Name,
		Description:    p.Description,
		StockAvailable: p.StockAvailable,
		MinStock:       p.MinStock,
		Unit:           p.Unit,
		CANumber:       p.CANumber,
		Size:           p.Size,
		CategoryID:     p.CategoryID,
		StockStatus:    string(stock.Classify(p.StockAvailable, p.MinStock)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
