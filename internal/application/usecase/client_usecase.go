package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/escritoriopro/backoffice-api/internal/application/audit"
	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// ClientUseCase cadastro de clientes.
type ClientUseCase struct {
	repo  repository.ClientRepository
	audit audit.Recorder
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository, recorder audit.Recorder) *ClientUseCase {
	return &ClientUseCase{repo: repo, audit: recorder}
}

// ClientInput dados de criação de cliente.
type ClientInput struct {
	Name     string
	Type     string // PF, PJ
	Document string
	Email    string
	Phone    string
	Address  string
}

// Create cadastra um cliente. Documento é único: duplicado vira ErrDuplicate.
func (uc *ClientUseCase) Create(ctx context.Context, actorID int64, in ClientInput) (*entity.Client, error) {
	name := strings.TrimSpace(in.Name)
	document := strings.TrimSpace(in.Document)
	if len(name) < 2 || document == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.ClientTypePF && in.Type != entity.ClientTypePJ {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByDocument(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("validar documento: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	client := &entity.Client{
		Name:     name,
		Type:     in.Type,
		Document: document,
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
		Status:   "active",
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("cadastrar cliente: %w", err)
	}

	uc.audit.Record(ctx, actorID, "CLIENT_CREATED", fmt.Sprintf("Cliente %s criado", client.Name))
	return client, nil
}

// GetByID devolve um cliente ou ErrNotFound.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

// List lista clientes com paginação.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.List(ctx, limit, offset)
}
