package service

import (
	"context"

	"github.com/EdM0807/sistema-meseros/internal/domain"
)

type MesaRepository interface {
	ListMesas() ([]domain.MesaConActivos, error)
	ListMesasLibres() ([]domain.Mesa, error)
}

type CatalogoRepository interface {
	ListCategorias() ([]domain.Categoria, error)
	ListProductos() ([]domain.Producto, error)
	ListProductosPorCategoria(categoriaID int) ([]domain.Producto, error)
}

type PedidoRepository interface {
	CreatePedido(req *domain.CrearPedidoRequest) (int, float64, error)
	ListPedidosPorMesa(mesaID int) ([]domain.Pedido, error)
	ListPedidosActivos() ([]domain.Pedido, error)
	GetPedido(pedidoID int) (*domain.Pedido, error)
}

type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
}

type PedidoPublisher interface {
	PublishPedido(ctx context.Context, event domain.PedidoEvent) error
}

type MesaServiceInterface interface {
	ListMesas() ([]domain.MesaConActivos, error)
	ListMesasLibres() ([]domain.Mesa, error)
}

type CatalogoServiceInterface interface {
	ListCategorias(ctx context.Context) ([]domain.Categoria, error)
	ListProductos(ctx context.Context) ([]domain.Producto, error)
	ListProductosPorCategoria(ctx context.Context, categoriaID int) ([]domain.Producto, error)
}

type PedidoServiceInterface interface {
	Crear(ctx context.Context, req *domain.CrearPedidoRequest) (*domain.CrearPedidoResponse, error)
	ListPorMesa(mesaID int) ([]domain.Pedido, error)
	ListActivos() ([]domain.Pedido, error)
	Get(pedidoID int) (*domain.Pedido, error)
	CuentaQR(pedidoID int) ([]byte, error)
}

var (
	_ MesaServiceInterface     = (*MesaService)(nil)
	_ CatalogoServiceInterface = (*CatalogoService)(nil)
	_ PedidoServiceInterface   = (*PedidoService)(nil)
)
