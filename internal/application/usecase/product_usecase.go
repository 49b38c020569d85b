package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/escritoriopro/backoffice-api/internal/application/audit"
	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase CRUD de produtos. Estoque só muda por aqui na criação e na
// edição administrativa; a baixa de venda passa pelo consumo transacional.
type ProductUseCase struct {
	repo  repository.ProductRepository
	audit audit.Recorder
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recorder audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, audit: recorder}
}

// ProductInput dados de criação/edição de produto.
type ProductInput struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
	Status   string
}

func (in *ProductInput) validate() error {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// normalizeStatus qualquer valor diferente de inactive vira active.
func normalizeStatus(s string) string {
	if s == entity.ProductStatusInactive {
		return entity.ProductStatusInactive
	}
	return entity.ProductStatusActive
}

// Create cadastra um produto.
func (uc *ProductUseCase) Create(ctx context.Context, actorID int64, in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Price:    in.Price,
		Stock:    in.Stock,
		Status:   normalizeStatus(in.Status),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("cadastrar produto: %w", err)
	}
	uc.audit.Record(ctx, actorID, "PRODUCT_CREATED", fmt.Sprintf("Produto %s criado", product.Name))
	return product, nil
}

// Update atualiza um produto existente.
func (uc *ProductUseCase) Update(ctx context.Context, actorID, id int64, in ProductInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	product := &entity.Product{
		ID:       id,
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Price:    in.Price,
		Stock:    in.Stock,
		Status:   normalizeStatus(in.Status),
	}
	ok, err := uc.repo.Update(ctx, product)
	if err != nil {
		return fmt.Errorf("atualizar produto: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.audit.Record(ctx, actorID, "PRODUCT_UPDATED", fmt.Sprintf("Produto ID %d atualizado", id))
	return nil
}

// GetByID devolve um produto ou ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista todos os produtos em ordem alfabética.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.List(ctx)
}

// Delete exclui um produto.
func (uc *ProductUseCase) Delete(ctx context.Context, actorID, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("excluir produto: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.audit.Record(ctx, actorID, "PRODUCT_DELETED", fmt.Sprintf("Produto ID %d excluido", id))
	return nil
}
