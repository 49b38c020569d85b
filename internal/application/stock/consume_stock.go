package stock

import (
	"context"
	"fmt"

	"github.com/escritoriopro/backoffice-api/internal/application/audit"
	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
	"github.com/google/uuid"
)

// ConsumeItem item de consumo vindo do PDV.
type ConsumeItem struct {
	ProductID int64
	Quantity  int
}

// Receipt é o comprovante por produto devolvido ao PDV: o que foi consumido
// e quanto restou. A ordem espelha a ordem dos itens de entrada após o merge.
type Receipt struct {
	ProductID int64
	Name      string
	Consumed  int
	Remaining int
}

// ConsumeUseCase executa a baixa atômica de estoque de uma venda: valida
// todos os produtos envolvidos (existência, status ativo, disponibilidade) e
// só então aplica os decrementos, tudo dentro de uma única transação com
// bloqueio de linha.
type ConsumeUseCase struct {
	txRunner TxRunner
	audit    audit.Recorder
}

// NewConsumeUseCase constrói o caso de uso.
func NewConsumeUseCase(txRunner TxRunner, recorder audit.Recorder) *ConsumeUseCase {
	return &ConsumeUseCase{txRunner: txRunner, audit: recorder}
}

// Execute consome estoque para os itens informados. Itens com o mesmo
// produto são somados antes da validação. Qualquer violação (produto
// inexistente, inativo ou sem saldo) aborta a operação inteira sem escrever
// nada.
func (uc *ConsumeUseCase) Execute(ctx context.Context, actorID int64, items []ConsumeItem) ([]Receipt, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	merged := mergeItems(items)
	receipts := make([]Receipt, 0, len(merged))

	err := uc.txRunner.RunProducts(ctx, func(productRepo repository.ProductRepository) error {
		// Fase 1: carrega e bloqueia todas as linhas envolvidas, validando
		// em memória antes de qualquer escrita.
		products := make([]*entity.Product, len(merged))
		for i, item := range merged {
			product, err := productRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return fmt.Errorf("validar estoque: %w", err)
			}
			if product == nil {
				return fmt.Errorf("%w: produto %d", domain.ErrNotFound, item.ProductID)
			}
			if product.Status != entity.ProductStatusActive {
				return fmt.Errorf("%w: produto %s esta inativo", domain.ErrProductInactive, product.Name)
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w para %s. Disponivel: %d", domain.ErrInsufficientStock, product.Name, product.Stock)
			}
			products[i] = product
		}

		// Fase 2: aplica os decrementos. O UPDATE recheca stock >= qty;
		// com as linhas bloqueadas acima isso não deve falhar, mas cobre
		// isolamento mais fraco do que o esperado.
		for i, item := range merged {
			ok, err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("baixar estoque: %w", err)
			}
			if !ok {
				return fmt.Errorf("%w para %s. Disponivel: %d", domain.ErrInsufficientStock, products[i].Name, products[i].Stock)
			}
			receipts = append(receipts, Receipt{
				ProductID: item.ProductID,
				Name:      products[i].Name,
				Consumed:  item.Quantity,
				Remaining: products[i].Stock - item.Quantity,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	saleID := uuid.New().String()
	uc.audit.Record(ctx, actorID, "PRODUCT_STOCK_CONSUMED",
		fmt.Sprintf("venda %s: consumo de estoque em %d produto(s)", saleID, len(merged)))

	return receipts, nil
}

// mergeItems soma quantidades de itens repetidos preservando a ordem da
// primeira ocorrência de cada produto.
func mergeItems(items []ConsumeItem) []ConsumeItem {
	index := make(map[int64]int, len(items))
	merged := make([]ConsumeItem, 0, len(items))
	for _, item := range items {
		if pos, ok := index[item.ProductID]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
