package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-control/internal/application/auth"
	"github.com/tu-usuario/inventario-control/internal/application/inventory"
	"github.com/tu-usuario/inventario-control/internal/application/usecase"
	"github.com/tu-usuario/inventario-control/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQueries  *inventory.MovementQueryUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; el alta de usuarios exige un token admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: lectura para cualquier usuario autenticado,
	// escritura solo manager+, desactivación solo admin.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleManager), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleManager), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Deactivate)

	// Inventory movements: registrar exige operator+, consultar basta autenticado.
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQueries)
	invGroup.Get("/status", productHandler.InventoryStatus)
	invGroup.Post("/movements", RequireRole(entity.RoleOperator), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/:id", inventoryHandler.GetMovement)
	invGroup.Get("/products/:id/movements", inventoryHandler.ListProductMovements)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", authHandler.ListUsers)
}
