package mocks

import (
	"context"
	"testing"

	"github.com/EdM0807/sistema-meseros/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MesaRepository struct {
	mock.Mock
}

func NewMesaRepository(t *testing.T) *MesaRepository {
	m := &MesaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MesaRepository) ListMesas() ([]domain.MesaConActivos, error) {
	args := m.Called()
	var mesas []domain.MesaConActivos
	if args.Get(0) != nil {
		mesas = args.Get(0).([]domain.MesaConActivos)
	}
	return mesas, args.Error(1)
}

func (m *MesaRepository) ListMesasLibres() ([]domain.Mesa, error) {
	args := m.Called()
	var mesas []domain.Mesa
	if args.Get(0) != nil {
		mesas = args.Get(0).([]domain.Mesa)
	}
	return mesas, args.Error(1)
}

type CatalogoRepository struct {
	mock.Mock
}

func NewCatalogoRepository(t *testing.T) *CatalogoRepository {
	m := &CatalogoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogoRepository) ListCategorias() ([]domain.Categoria, error) {
	args := m.Called()
	var categorias []domain.Categoria
	if args.Get(0) != nil {
		categorias = args.Get(0).([]domain.Categoria)
	}
	return categorias, args.Error(1)
}

func (m *CatalogoRepository) ListProductos() ([]domain.Producto, error) {
	args := m.Called()
	var productos []domain.Producto
	if args.Get(0) != nil {
		productos = args.Get(0).([]domain.Producto)
	}
	return productos, args.Error(1)
}

func (m *CatalogoRepository) ListProductosPorCategoria(categoriaID int) ([]domain.Producto, error) {
	args := m.Called(categoriaID)
	var productos []domain.Producto
	if args.Get(0) != nil {
		productos = args.Get(0).([]domain.Producto)
	}
	return productos, args.Error(1)
}

type PedidoRepository struct {
	mock.Mock
}

func NewPedidoRepository(t *testing.T) *PedidoRepository {
	m := &PedidoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PedidoRepository) CreatePedido(req *domain.CrearPedidoRequest) (int, float64, error) {
	args := m.Called(req)
	return args.Int(0), args.Get(1).(float64), args.Error(2)
}

func (m *PedidoRepository) ListPedidosPorMesa(mesaID int) ([]domain.Pedido, error) {
	args := m.Called(mesaID)
	var pedidos []domain.Pedido
	if args.Get(0) != nil {
		pedidos = args.Get(0).([]domain.Pedido)
	}
	return pedidos, args.Error(1)
}

func (m *PedidoRepository) ListPedidosActivos() ([]domain.Pedido, error) {
	args := m.Called()
	var pedidos []domain.Pedido
	if args.Get(0) != nil {
		pedidos = args.Get(0).([]domain.Pedido)
	}
	return pedidos, args.Error(1)
}

func (m *PedidoRepository) GetPedido(pedidoID int) (*domain.Pedido, error) {
	args := m.Called(pedidoID)
	var pedido *domain.Pedido
	if args.Get(0) != nil {
		pedido = args.Get(0).(*domain.Pedido)
	}
	return pedido, args.Error(1)
}

type CatalogCache struct {
	mock.Mock
}

func NewCatalogCache(t *testing.T) *CatalogCache {
	m := &CatalogCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	var payload []byte
	if args.Get(0) != nil {
		payload = args.Get(0).([]byte)
	}
	return payload, args.Error(1)
}

func (m *CatalogCache) Set(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

type PedidoPublisher struct {
	mock.Mock
}

func NewPedidoPublisher(t *testing.T) *PedidoPublisher {
	m := &PedidoPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PedidoPublisher) PublishPedido(ctx context.Context, event domain.PedidoEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
