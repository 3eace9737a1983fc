package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chemasport/catalogo-api/internal/application/audit"
	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/domain"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/inventory"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
)

// RegisterSaleUseCase registra una venta descontando el stock de la talla
// vendida dentro de una transacción con bloqueo de fila (SELECT FOR UPDATE).
// Dos ventas concurrentes de la última unidad no pueden ambas tener éxito.
type RegisterSaleUseCase struct {
	txRunner TxRunner
	audit    *audit.Recorder
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(txRunner TxRunner, recorder *audit.Recorder) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{txRunner: txRunner, audit: recorder}
}

// RegisterSale valida la entrada, bloquea el producto, verifica stock de la
// talla, descuenta y persiste la venta. Stock insuficiente retorna
// domain.ErrInsufficientStock sin modificar nada.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, in dto.RegisterSaleRequest, actor string) (*dto.SaleResponse, error) {
	if in.ProductID == "" {
		return nil, domain.NewValidationError("productId", "requerido")
	}
	if !inventory.IsValidSize(in.Talla) {
		return nil, domain.NewValidationError("talla", "talla inválida: "+in.Talla)
	}
	if in.Cantidad < entity.MinSaleQty || in.Cantidad > entity.MaxSaleQty {
		return nil, domain.NewValidationError("cantidad",
			fmt.Sprintf("debe estar entre %d y %d", entity.MinSaleQty, entity.MaxSaleQty))
	}

	now := time.Now()
	var sale *entity.Sale

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductLockRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		available := product.Stock.Qty(in.Talla)
		if available < in.Cantidad {
			return domain.ErrInsufficientStock
		}
		product.Stock[in.Talla] = available - in.Cantidad
		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}

		precio := decimal.NewFromInt(product.Price)
		sale = &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Item:      product.Label(),
			Talla:     in.Talla,
			Cantidad:  in.Cantidad,
			Precio:    precio,
			Total:     precio.Mul(decimal.NewFromInt(int64(in.Cantidad))),
			Jugador:   in.Jugador,
			Equipo:    in.Equipo,
			Fecha:     now,
			CreatedBy: actor,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(actor, entity.ActionSale, sale.Item,
		fmt.Sprintf("talla %s x%d, total %s", sale.Talla, sale.Cantidad, sale.Total.String()))

	out := dto.ToSaleResponse(sale)
	return &out, nil
}
