package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-control/internal/application/dto"
	"github.com/tu-usuario/inventario-control/internal/domain"
	"github.com/tu-usuario/inventario-control/internal/domain/entity"
	"github.com/tu-usuario/inventario-control/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock NO se toca por acá:
// solo muta vía el protocolo de movimientos de inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto con la factory del dominio (valida invariantes iniciales).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product, err := entity.NewProduct(in.Code, in.Name, in.Description, in.Unit, in.CurrentStock, in.MinStock, in.MaxStock)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los datos descriptivos y los límites min/max de un producto.
// No acepta CurrentStock: cualquier cambio de stock va por movimientos.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.MaxStock < in.MinStock {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "max_stock", Message: "el stock máximo debe ser mayor o igual al mínimo", Value: in.MaxStock},
		}}
	}
	product.Name = in.Name
	product.Description = in.Description
	product.MinStock = in.MinStock
	product.MaxStock = in.MaxStock
	product.Unit = in.Unit
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, onlyActive bool, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.ProductResponse, len(list))
	for i, p := range list {
		items[i] = toProductResponse(p)
	}
	return items, nil
}

// ListLowStock lista los productos activos cuyo stock está por debajo del mínimo.
func (uc *ProductUseCase) ListLowStock(ctx context.Context, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, true, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	var items []*dto.ProductResponse
	for _, p := range list {
		if p.IsStockLow() {
			items = append(items, toProductResponse(p))
		}
	}
	return items, nil
}

// statusPageSize tamaño de página al recorrer el catálogo para el resumen.
const statusPageSize = 200

// Status resumen del inventario activo: conteos agregados más las alertas de
// stock bajo (por debajo del mínimo) y stock alto (en o sobre el máximo).
// Recorre el catálogo completo por páginas.
func (uc *ProductUseCase) Status(ctx context.Context) (*dto.InventoryStatusResponse, error) {
	resp := &dto.InventoryStatusResponse{
		LowStockProducts:  []*dto.ProductResponse{},
		HighStockProducts: []*dto.ProductResponse{},
	}
	for offset := 0; ; offset += statusPageSize {
		batch, err := uc.repo.List(ctx, true, statusPageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, p := range batch {
			resp.TotalProducts++
			resp.TotalStock += p.CurrentStock
			switch {
			case p.IsStockLow():
				resp.LowStockCount++
				resp.LowStockProducts = append(resp.LowStockProducts, toProductResponse(p))
			case p.MaxStock > 0 && p.CurrentStock >= p.MaxStock:
				resp.HighStockCount++
				resp.HighStockProducts = append(resp.HighStockProducts, toProductResponse(p))
			}
		}
		if len(batch) < statusPageSize {
			return resp, nil
		}
	}
}

// Deactivate desactiva un producto (borrado lógico; los movimientos que lo referencian se conservan).
func (uc *ProductUseCase) Deactivate(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return &domain.ProductNotFoundError{ID: id}
	}
	return uc.repo.Deactivate(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Code:            p.Code,
		Name:            p.Name,
		Description:     p.Description,
		CurrentStock:    p.CurrentStock,
		MinStock:        p.MinStock,
		MaxStock:        p.MaxStock,
		Unit:            p.Unit,
		Version:         p.Version,
		IsActive:        p.IsActive,
		IsStockLow:      p.IsStockLow(),
		StockPercentage: p.StockPercentage(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
