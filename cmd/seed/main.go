// seed crea el esquema de la base de datos y la puebla con datos de demostración:
// productos de ejemplo y un usuario por cada rol (admin, manager, operator, viewer).
//
// Uso: go run ./cmd/seed
// Es idempotente: los INSERT usan ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tu-usuario/inventario-control/internal/infrastructure/postgres"
	"github.com/tu-usuario/inventario-control/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            BIGSERIAL PRIMARY KEY,
	code          VARCHAR(50)  NOT NULL UNIQUE,
	name          VARCHAR(200) NOT NULL,
	description   TEXT         NOT NULL DEFAULT '',
	current_stock BIGINT       NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
	min_stock     BIGINT       NOT NULL DEFAULT 0,
	max_stock     BIGINT       NOT NULL DEFAULT 0,
	unit          VARCHAR(20)  NOT NULL,
	version       BIGINT       NOT NULL DEFAULT 0,
	is_active     BOOLEAN      NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      VARCHAR(50)  NOT NULL UNIQUE,
	full_name     VARCHAR(200) NOT NULL DEFAULT '',
	email         VARCHAR(200) NOT NULL UNIQUE,
	password_hash VARCHAR(100) NOT NULL,
	role          VARCHAR(20)  NOT NULL,
	is_active     BOOLEAN      NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS inventory_movements (
	id             BIGSERIAL PRIMARY KEY,
	transaction_id UUID        NOT NULL,
	product_id     BIGINT      NOT NULL REFERENCES products(id),
	quantity       BIGINT      NOT NULL CHECK (quantity > 0),
	movement_type  VARCHAR(3)  NOT NULL CHECK (movement_type IN ('IN', 'OUT')),
	reason         TEXT        NOT NULL,
	previous_stock BIGINT      NOT NULL,
	new_stock      BIGINT      NOT NULL,
	user_id        BIGINT      NOT NULL REFERENCES users(id),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_movements_product_created
	ON inventory_movements (product_id, created_at);
CREATE INDEX IF NOT EXISTS idx_movements_transaction
	ON inventory_movements (transaction_id);
`

type seedProduct struct {
	code, name, description, unit    string
	currentStock, minStock, maxStock int64
}

type seedUser struct {
	username, fullName, email, password, role string
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema creado / verificado")

	products := []seedProduct{
		{"LAP001", "Laptop Dell Inspiron 15", "Laptop para uso de oficina", "unidad", 25, 3, 50},
		{"MOU001", "Mouse Logitech M185", "Mouse inalámbrico", "unidad", 120, 20, 300},
		{"TEC001", "Teclado Logitech K120", "Teclado USB en español", "unidad", 80, 15, 200},
		{"MON001", "Monitor LG 24\"", "Monitor IPS Full HD", "unidad", 12, 5, 40},
		{"CAB001", "Cable HDMI 2m", "Cable HDMI 2.0", "unidad", 200, 50, 0},
	}
	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (code, name, description, current_stock, min_stock, max_stock, unit)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (code) DO NOTHING`,
			p.code, p.name, p.description, p.currentStock, p.minStock, p.maxStock, p.unit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar producto %s: %v\n", p.code, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Productos de demostración: %d\n", len(products))

	users := []seedUser{
		{"admin", "Administrador", "admin@example.com", "admin123", "admin"},
		{"gerente", "Gerente de Inventario", "gerente@example.com", "gerente123", "manager"},
		{"operador", "Operador de Bodega", "operador@example.com", "operador123", "operator"},
		{"consulta", "Usuario de Consulta", "consulta@example.com", "consulta123", "viewer"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash de contraseña para %s: %v\n", u.username, err)
			os.Exit(1)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO users (username, full_name, email, password_hash, role)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (username) DO NOTHING`,
			u.username, u.fullName, u.email, string(hash), u.role)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar usuario %s: %v\n", u.username, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Usuarios de demostración: %d\n", len(users))
}
