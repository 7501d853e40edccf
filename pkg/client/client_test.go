package client

import (
	"net/http/httptest"
	"testing"

	httpapi "github.com/EdM0807/sistema-meseros/internal/api/http"
	"github.com/EdM0807/sistema-meseros/internal/domain"
	"github.com/EdM0807/sistema-meseros/internal/mocks"
	"github.com/EdM0807/sistema-meseros/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestServer(t *testing.T) (*Client, *mocks.MesaRepository, *mocks.CatalogoRepository, *mocks.PedidoRepository) {
	t.Helper()

	mesaRepo := mocks.NewMesaRepository(t)
	catalogoRepo := mocks.NewCatalogoRepository(t)
	pedidoRepo := mocks.NewPedidoRepository(t)

	handler := httpapi.NewHandler(
		service.NewMesaService(mesaRepo),
		service.NewCatalogoService(catalogoRepo, nil),
		service.NewPedidoService(pedidoRepo, nil, service.DefaultQRGenerator{}),
	)

	server := httptest.NewServer(httpapi.NewRouter(handler))
	t.Cleanup(server.Close)

	return New(server.URL, server.Client()), mesaRepo, catalogoRepo, pedidoRepo
}

func TestClient_GetMesas(t *testing.T) {
	api, mesaRepo, _, _ := setupTestServer(t)

	mesaRepo.On("ListMesas").Return([]domain.MesaConActivos{
		{Mesa: domain.Mesa{ID: 1, Nombre: "Mesa 1", Estado: domain.MesaLibre, Capacidad: 4}, PedidosActivos: 1},
	}, nil).Once()

	mesas, err := api.GetMesas()
	assert.NoError(t, err)
	assert.Len(t, mesas, 1)
	assert.Equal(t, domain.MesaOcupada, mesas[0].Estado)
}

func TestClient_GetCategorias(t *testing.T) {
	api, _, catalogoRepo, _ := setupTestServer(t)

	catalogoRepo.On("ListCategorias").Return([]domain.Categoria{
		{ID: 1, Nombre: "Bebidas", Icono: "fa-coffee", Activo: true},
	}, nil).Once()

	categorias, err := api.GetCategorias()
	assert.NoError(t, err)
	assert.Len(t, categorias, 1)
	assert.Equal(t, "Bebidas", categorias[0].Nombre)
}

func TestClient_CrearPedido(t *testing.T) {
	api, _, _, pedidoRepo := setupTestServer(t)

	pedidoRepo.On("CreatePedido", mock.AnythingOfType("*domain.CrearPedidoRequest")).
		Return(21, 115.00, nil).Once()

	resp, err := api.CrearPedido(&domain.CrearPedidoRequest{
		MesaID: 1,
		Items: []domain.CrearPedidoItem{
			{ProductoID: 1, Cantidad: 2, Precio: 25.00},
			{ProductoID: 3, Cantidad: 1, Precio: 65.00},
		},
		Observaciones: "sin hielo",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 21, resp.PedidoID)
	assert.Equal(t, 115.00, resp.Total)
}

func TestClient_CrearPedido_ValidationErrorSurfaces(t *testing.T) {
	api, _, _, _ := setupTestServer(t)

	_, err := api.CrearPedido(&domain.CrearPedidoRequest{MesaID: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "items")
}

func TestClient_GetPedidosPorMesa(t *testing.T) {
	api, _, _, pedidoRepo := setupTestServer(t)

	pedidoRepo.On("ListPedidosPorMesa", 4).Return([]domain.Pedido{
		{ID: 9, MesaID: 4, Estado: domain.PedidoPendiente, Total: 115.00},
	}, nil).Once()

	pedidos, err := api.GetPedidosPorMesa(4)
	assert.NoError(t, err)
	assert.Len(t, pedidos, 1)
	assert.Equal(t, 115.00, pedidos[0].Total)
}

func TestClient_GetPedido(t *testing.T) {
	api, _, _, pedidoRepo := setupTestServer(t)

	pedidoRepo.On("GetPedido", 9).Return(&domain.Pedido{
		ID: 9, MesaID: 4, Estado: domain.PedidoPendiente, Total: 115.00,
		Items: []domain.PedidoItem{
			{ID: 1, PedidoID: 9, ProductoID: 1, ProductoNombre: "Limonada", Cantidad: 2, PrecioUnitario: 25.00},
		},
	}, nil).Once()

	pedido, err := api.GetPedido(9)
	assert.NoError(t, err)
	assert.Len(t, pedido.Items, 1)
	assert.Equal(t, "Limonada", pedido.Items[0].ProductoNombre)
}
