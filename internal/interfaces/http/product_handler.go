package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/escritoriopro/backoffice-api/internal/application/dto"
	"github.com/escritoriopro/backoffice-api/internal/application/stock"
	"github.com/escritoriopro/backoffice-api/internal/application/usecase"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// ProductHandler rotas de produtos e da baixa de estoque do PDV.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	consume *stock.ConsumeUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase, consume *stock.ConsumeUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, consume: consume}
}

// Create cadastra um produto (POST /api/products).
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
	}

	product, err := h.uc.Create(c.Context(), GetUserID(c), usecase.ProductInput{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		Status:   in.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// GetByID devolve um produto (GET /api/products/:id).
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalido"})
	}

	product, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// Update edita um produto (PUT /api/products/:id).
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalido"})
	}

	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
	}

	err = h.uc.Update(c.Context(), GetUserID(c), id, usecase.ProductInput{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		Status:   in.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Produto atualizado"})
}

// List lista produtos (GET /api/products).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}
	return c.JSON(out)
}

// Delete exclui um produto (DELETE /api/products/:id, admin).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalido"})
	}

	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Produto excluido"})
}

// Consume baixa estoque de uma venda (POST /api/products/consume).
// Tudo-ou-nada: qualquer item inválido aborta a venda inteira.
func (h *ProductHandler) Consume(c *fiber.Ctx) error {
	var in dto.ConsumeStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
	}

	items := make([]stock.ConsumeItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, stock.ConsumeItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	receipts, err := h.consume.Execute(c.Context(), GetUserID(c), items)
	if err != nil {
		return respondError(c, err)
	}

	products := make([]dto.ConsumeReceiptItem, 0, len(receipts))
	for _, receipt := range receipts {
		products = append(products, dto.ConsumeReceiptItem{
			ID:        receipt.ProductID,
			Name:      receipt.Name,
			Consumed:  receipt.Consumed,
			Remaining: receipt.Remaining,
		})
	}
	return c.JSON(dto.ConsumeStockResponse{
		Message:  "Estoque atualizado com sucesso",
		Products: products,
	})
}

func toProductResponse(product *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Stock:     product.Stock,
		Status:    product.Status,
		CreatedAt: product.CreatedAt.Format(time.RFC3339),
	}
}
