package domain

import "time"

// Estados almacenados/derivados de una mesa.
const (
	MesaLibre     = "libre"
	MesaReservada = "reservada"
	MesaOcupada   = "ocupada"
)

// Estados de un pedido. Un pedido entregado o cancelado es terminal y deja
// de contar para la ocupación de su mesa.
const (
	PedidoPendiente = "pendiente"
	PedidoEntregado = "entregado"
	PedidoCancelado = "cancelado"
)

type Mesa struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Estado    string `json:"estado"`
	Capacidad int    `json:"capacidad"`
	Ubicacion string `json:"ubicacion"`
}

// MesaConActivos pairs a mesa row with its count of non-terminal pedidos.
// Estado carries the stored value until the service derives the display one.
type MesaConActivos struct {
	Mesa
	PedidosActivos int `json:"pedidos_activos"`
}

type Categoria struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Icono  string `json:"icono"`
	Color  string `json:"color"`
	Activo bool   `json:"activo"`
}

type Producto struct {
	ID           int      `json:"id"`
	Nombre       string   `json:"nombre"`
	Descripcion  string   `json:"descripcion"`
	Precio       float64  `json:"precio"`
	Imagen       string   `json:"imagen"`
	CategoriaID  int      `json:"categoria_id"`
	Activo       bool     `json:"activo"`
	Complementos []string `json:"complementos"`
}

type Pedido struct {
	ID            int          `json:"id"`
	MesaID        int          `json:"mesa_id"`
	Estado        string       `json:"estado"`
	Total         float64      `json:"total"`
	Observaciones string       `json:"observaciones"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Items         []PedidoItem `json:"items,omitempty"`
}

type PedidoItem struct {
	ID             int      `json:"id"`
	PedidoID       int      `json:"pedido_id"`
	ProductoID     int      `json:"producto_id"`
	ProductoNombre string   `json:"producto_nombre,omitempty"`
	Cantidad       int      `json:"cantidad"`
	PrecioUnitario float64  `json:"precio_unitario"`
	Complementos   []string `json:"complementos"`
	Observaciones  string   `json:"observaciones"`
}

// CrearPedidoRequest is the validated input for POST /api/pedidos.
type CrearPedidoRequest struct {
	MesaID        int               `json:"mesa_id"`
	Items         []CrearPedidoItem `json:"items"`
	Observaciones string            `json:"observaciones"`
}

type CrearPedidoItem struct {
	ProductoID    int      `json:"producto_id"`
	Cantidad      int      `json:"cantidad"`
	Precio        float64  `json:"precio"`
	Complementos  []string `json:"complementos"`
	Observaciones string   `json:"observaciones"`
}

type CrearPedidoResponse struct {
	Success  bool    `json:"success"`
	PedidoID int     `json:"pedido_id"`
	Total    float64 `json:"total"`
}

// PedidoEvent is the payload published to Kafka after an order commits.
type PedidoEvent struct {
	Type      string    `json:"type"`
	PedidoID  int       `json:"pedido_id"`
	MesaID    int       `json:"mesa_id"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// EsTerminal reports whether estado excludes a pedido from table occupancy.
func EsTerminal(estado string) bool {
	return estado == PedidoEntregado || estado == PedidoCancelado
}
