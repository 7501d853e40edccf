// Package client is the typed API surface the waiter application talks
// through. All authoritative computation stays server-side; this package
// only moves JSON.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/EdM0807/sistema-meseros/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	client  HTTPClient
}

func New(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, client: httpClient}
}

func (c *Client) request(method, endpoint string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, endpoint, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, endpoint, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) GetMesas() ([]domain.MesaConActivos, error) {
	var mesas []domain.MesaConActivos
	err := c.request(http.MethodGet, "/api/mesas", nil, &mesas)
	return mesas, err
}

func (c *Client) GetMesasLibres() ([]domain.Mesa, error) {
	var mesas []domain.Mesa
	err := c.request(http.MethodGet, "/api/mesas/libres", nil, &mesas)
	return mesas, err
}

func (c *Client) GetCategorias() ([]domain.Categoria, error) {
	var categorias []domain.Categoria
	err := c.request(http.MethodGet, "/api/categorias", nil, &categorias)
	return categorias, err
}

func (c *Client) GetProductos() ([]domain.Producto, error) {
	var productos []domain.Producto
	err := c.request(http.MethodGet, "/api/productos", nil, &productos)
	return productos, err
}

func (c *Client) GetProductosPorCategoria(categoriaID int) ([]domain.Producto, error) {
	var productos []domain.Producto
	err := c.request(http.MethodGet, "/api/productos/categoria/"+strconv.Itoa(categoriaID), nil, &productos)
	return productos, err
}

func (c *Client) CrearPedido(req *domain.CrearPedidoRequest) (*domain.CrearPedidoResponse, error) {
	var resp domain.CrearPedidoResponse
	if err := c.request(http.MethodPost, "/api/pedidos", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetPedidosPorMesa(mesaID int) ([]domain.Pedido, error) {
	var pedidos []domain.Pedido
	err := c.request(http.MethodGet, "/api/pedidos/mesa/"+strconv.Itoa(mesaID), nil, &pedidos)
	return pedidos, err
}

func (c *Client) GetPedidosActivos() ([]domain.Pedido, error) {
	var pedidos []domain.Pedido
	err := c.request(http.MethodGet, "/api/pedidos/activos", nil, &pedidos)
	return pedidos, err
}

func (c *Client) GetPedido(pedidoID int) (*domain.Pedido, error) {
	var pedido domain.Pedido
	if err := c.request(http.MethodGet, "/api/pedidos/"+strconv.Itoa(pedidoID), nil, &pedido); err != nil {
		return nil, err
	}
	return &pedido, nil
}
