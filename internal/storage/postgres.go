package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/EdM0807/sistema-meseros/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListMesas() ([]domain.MesaConActivos, error) {
	rows, err := r.DB.Query(`
		SELECT m.id, m.nombre, m.estado, m.capacidad, COALESCE(m.ubicacion, ''),
		       (SELECT COUNT(*) FROM pedidos p
		        WHERE p.mesa_id = m.id AND p.estado NOT IN ($1, $2)) AS pedidos_activos
		FROM mesas m
		ORDER BY m.nombre`, domain.PedidoEntregado, domain.PedidoCancelado)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mesas []domain.MesaConActivos
	for rows.Next() {
		var m domain.MesaConActivos
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Estado, &m.Capacidad, &m.Ubicacion, &m.PedidosActivos); err != nil {
			continue
		}
		mesas = append(mesas, m)
	}
	return mesas, rows.Err()
}

func (r *PostgresRepository) ListMesasLibres() ([]domain.Mesa, error) {
	rows, err := r.DB.Query(`
		SELECT m.id, m.nombre, m.estado, m.capacidad, COALESCE(m.ubicacion, '')
		FROM mesas m
		WHERE m.estado = $1
		AND m.id NOT IN (
			SELECT mesa_id FROM pedidos WHERE estado NOT IN ($2, $3)
		)
		ORDER BY m.nombre`, domain.MesaLibre, domain.PedidoEntregado, domain.PedidoCancelado)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mesas []domain.Mesa
	for rows.Next() {
		var m domain.Mesa
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Estado, &m.Capacidad, &m.Ubicacion); err != nil {
			continue
		}
		mesas = append(mesas, m)
	}
	return mesas, rows.Err()
}

func (r *PostgresRepository) ListCategorias() ([]domain.Categoria, error) {
	rows, err := r.DB.Query(`
		SELECT id, nombre, COALESCE(icono, ''), COALESCE(color, ''), activo
		FROM categorias
		WHERE activo = true
		ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categorias []domain.Categoria
	for rows.Next() {
		var c domain.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Icono, &c.Color, &c.Activo); err != nil {
			continue
		}
		categorias = append(categorias, c)
	}
	return categorias, rows.Err()
}

func (r *PostgresRepository) ListProductos() ([]domain.Producto, error) {
	return r.queryProductos(`
		SELECT id, nombre, COALESCE(descripcion, ''), precio, COALESCE(imagen, ''),
		       categoria_id, activo, COALESCE(complementos, '[]')
		FROM productos
		WHERE activo = true
		ORDER BY nombre`)
}

func (r *PostgresRepository) ListProductosPorCategoria(categoriaID int) ([]domain.Producto, error) {
	return r.queryProductos(`
		SELECT id, nombre, COALESCE(descripcion, ''), precio, COALESCE(imagen, ''),
		       categoria_id, activo, COALESCE(complementos, '[]')
		FROM productos
		WHERE categoria_id = $1 AND activo = true
		ORDER BY nombre`, categoriaID)
}

func (r *PostgresRepository) queryProductos(query string, args ...interface{}) ([]domain.Producto, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var productos []domain.Producto
	for rows.Next() {
		var p domain.Producto
		var complementos string
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Imagen,
			&p.CategoriaID, &p.Activo, &complementos); err != nil {
			continue
		}
		p.Complementos = decodeComplementos(complementos)
		productos = append(productos, p)
	}
	return productos, rows.Err()
}

// CreatePedido inserts the pedido with a provisional total of zero, inserts
// every item accumulating cantidad*precio, then writes the final total.
// Everything runs in one transaction: either the pedido and all its items
// land, or nothing does.
func (r *PostgresRepository) CreatePedido(req *domain.CrearPedidoRequest) (int, float64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	var pedidoID int
	if err := tx.QueryRow(`
		INSERT INTO pedidos (mesa_id, observaciones, total)
		VALUES ($1, $2, 0)
		RETURNING id
	`, req.MesaID, req.Observaciones).Scan(&pedidoID); err != nil {
		return 0, 0, err
	}

	var total float64
	for _, item := range req.Items {
		seleccion := item.Complementos
		if seleccion == nil {
			seleccion = []string{}
		}
		complementos, _ := json.Marshal(seleccion)
		if _, err := tx.Exec(`
			INSERT INTO pedido_items (pedido_id, producto_id, cantidad, precio_unitario, complementos, observaciones)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, pedidoID, item.ProductoID, item.Cantidad, item.Precio, string(complementos), item.Observaciones); err != nil {
			return 0, 0, err
		}
		total += item.Precio * float64(item.Cantidad)
	}

	if _, err := tx.Exec(`UPDATE pedidos SET total = $1 WHERE id = $2`, total, pedidoID); err != nil {
		return 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return pedidoID, total, nil
}

func (r *PostgresRepository) ListPedidosPorMesa(mesaID int) ([]domain.Pedido, error) {
	return r.queryPedidos(`
		SELECT id, mesa_id, estado, total, COALESCE(observaciones, ''), created_at, updated_at
		FROM pedidos
		WHERE mesa_id = $1 AND estado NOT IN ($2, $3)
		ORDER BY created_at DESC`, mesaID, domain.PedidoEntregado, domain.PedidoCancelado)
}

func (r *PostgresRepository) ListPedidosActivos() ([]domain.Pedido, error) {
	return r.queryPedidos(`
		SELECT id, mesa_id, estado, total, COALESCE(observaciones, ''), created_at, updated_at
		FROM pedidos
		WHERE estado NOT IN ($1, $2)
		ORDER BY created_at DESC`, domain.PedidoEntregado, domain.PedidoCancelado)
}

func (r *PostgresRepository) queryPedidos(query string, args ...interface{}) ([]domain.Pedido, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pedidos []domain.Pedido
	for rows.Next() {
		var p domain.Pedido
		if err := rows.Scan(&p.ID, &p.MesaID, &p.Estado, &p.Total, &p.Observaciones,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			continue
		}
		pedidos = append(pedidos, p)
	}
	return pedidos, rows.Err()
}

func (r *PostgresRepository) GetPedido(pedidoID int) (*domain.Pedido, error) {
	var p domain.Pedido
	if err := r.DB.QueryRow(`
		SELECT id, mesa_id, estado, total, COALESCE(observaciones, ''), created_at, updated_at
		FROM pedidos WHERE id = $1
	`, pedidoID).Scan(&p.ID, &p.MesaID, &p.Estado, &p.Total, &p.Observaciones,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT pi.id, pi.pedido_id, pi.producto_id, pr.nombre, pi.cantidad,
		       pi.precio_unitario, COALESCE(pi.complementos, '[]'), COALESCE(pi.observaciones, '')
		FROM pedido_items pi
		JOIN productos pr ON pi.producto_id = pr.id
		WHERE pi.pedido_id = $1
		ORDER BY pi.id`, pedidoID)
	if err != nil {
		return &p, err
	}
	defer rows.Close()

	p.Items = []domain.PedidoItem{}
	for rows.Next() {
		var item domain.PedidoItem
		var complementos string
		if err := rows.Scan(&item.ID, &item.PedidoID, &item.ProductoID, &item.ProductoNombre,
			&item.Cantidad, &item.PrecioUnitario, &complementos, &item.Observaciones); err != nil {
			continue
		}
		item.Complementos = decodeComplementos(complementos)
		p.Items = append(p.Items, item)
	}
	return &p, rows.Err()
}

func decodeComplementos(raw string) []string {
	var complementos []string
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &complementos)
	}
	if complementos == nil {
		complementos = []string{}
	}
	return complementos
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categorias (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			icono TEXT,
			color TEXT,
			activo BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS productos (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			descripcion TEXT,
			precio NUMERIC(10,2) NOT NULL,
			imagen TEXT,
			categoria_id INTEGER NOT NULL REFERENCES categorias(id),
			activo BOOLEAN NOT NULL DEFAULT TRUE,
			complementos TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS mesas (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			estado TEXT NOT NULL DEFAULT 'libre',
			capacidad INTEGER NOT NULL DEFAULT 4,
			ubicacion TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS pedidos (
			id SERIAL PRIMARY KEY,
			mesa_id INTEGER NOT NULL REFERENCES mesas(id),
			estado TEXT NOT NULL DEFAULT 'pendiente',
			total NUMERIC(10,2) NOT NULL DEFAULT 0,
			observaciones TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS pedido_items (
			id SERIAL PRIMARY KEY,
			pedido_id INTEGER NOT NULL REFERENCES pedidos(id),
			producto_id INTEGER NOT NULL REFERENCES productos(id),
			cantidad INTEGER NOT NULL,
			precio_unitario NUMERIC(10,2) NOT NULL,
			complementos TEXT,
			observaciones TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
