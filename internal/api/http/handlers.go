package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/EdM0807/sistema-meseros/internal/domain"
	"github.com/EdM0807/sistema-meseros/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Mesas    service.MesaServiceInterface
	Catalogo service.CatalogoServiceInterface
	Pedidos  service.PedidoServiceInterface
}

func NewHandler(mesaSvc service.MesaServiceInterface, catalogoSvc service.CatalogoServiceInterface, pedidoSvc service.PedidoServiceInterface) *Handler {
	return &Handler{
		Mesas:    mesaSvc,
		Catalogo: catalogoSvc,
		Pedidos:  pedidoSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/mesas", h.getMesas).Methods("GET")
	r.HandleFunc("/api/mesas/libres", h.getMesasLibres).Methods("GET")

	r.HandleFunc("/api/categorias", h.getCategorias).Methods("GET")
	r.HandleFunc("/api/productos", h.getProductos).Methods("GET")
	r.HandleFunc("/api/productos/categoria/{categoriaId}", h.getProductosPorCategoria).Methods("GET")

	r.HandleFunc("/api/pedidos", h.crearPedido).Methods("POST")
	r.HandleFunc("/api/pedidos/activos", h.getPedidosActivos).Methods("GET")
	r.HandleFunc("/api/pedidos/mesa/{mesaId}", h.getPedidosPorMesa).Methods("GET")
	r.HandleFunc("/api/pedidos/{id}", h.getPedido).Methods("GET")
	r.HandleFunc("/api/pedidos/{id}/qr", h.getPedidoQR).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Servidor funcionando correctamente",
	})
}

func (h *Handler) getMesas(w http.ResponseWriter, r *http.Request) {
	mesas, err := h.Mesas.ListMesas()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if mesas == nil {
		mesas = []domain.MesaConActivos{}
	}
	writeJSON(w, http.StatusOK, mesas)
}

func (h *Handler) getMesasLibres(w http.ResponseWriter, r *http.Request) {
	mesas, err := h.Mesas.ListMesasLibres()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if mesas == nil {
		mesas = []domain.Mesa{}
	}
	writeJSON(w, http.StatusOK, mesas)
}

func (h *Handler) getCategorias(w http.ResponseWriter, r *http.Request) {
	categorias, err := h.Catalogo.ListCategorias(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if categorias == nil {
		categorias = []domain.Categoria{}
	}
	writeJSON(w, http.StatusOK, categorias)
}

func (h *Handler) getProductos(w http.ResponseWriter, r *http.Request) {
	productos, err := h.Catalogo.ListProductos(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if productos == nil {
		productos = []domain.Producto{}
	}
	writeJSON(w, http.StatusOK, productos)
}

func (h *Handler) getProductosPorCategoria(w http.ResponseWriter, r *http.Request) {
	categoriaID, _ := strconv.Atoi(mux.Vars(r)["categoriaId"])
	productos, err := h.Catalogo.ListProductosPorCategoria(r.Context(), categoriaID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if productos == nil {
		productos = []domain.Producto{}
	}
	writeJSON(w, http.StatusOK, productos)
}

func (h *Handler) crearPedido(w http.ResponseWriter, r *http.Request) {
	var req domain.CrearPedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.Pedidos.Crear(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrPedidoInvalido) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getPedidosPorMesa(w http.ResponseWriter, r *http.Request) {
	mesaID, _ := strconv.Atoi(mux.Vars(r)["mesaId"])
	pedidos, err := h.Pedidos.ListPorMesa(mesaID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if pedidos == nil {
		pedidos = []domain.Pedido{}
	}
	writeJSON(w, http.StatusOK, pedidos)
}

func (h *Handler) getPedidosActivos(w http.ResponseWriter, r *http.Request) {
	pedidos, err := h.Pedidos.ListActivos()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if pedidos == nil {
		pedidos = []domain.Pedido{}
	}
	writeJSON(w, http.StatusOK, pedidos)
}

func (h *Handler) getPedido(w http.ResponseWriter, r *http.Request) {
	pedidoID, _ := strconv.Atoi(mux.Vars(r)["id"])
	pedido, err := h.Pedidos.Get(pedidoID)
	if err != nil {
		writeError(w, http.StatusNotFound, errors.New("pedido no encontrado"))
		return
	}
	writeJSON(w, http.StatusOK, pedido)
}

func (h *Handler) getPedidoQR(w http.ResponseWriter, r *http.Request) {
	pedidoID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Pedidos.CuentaQR(pedidoID)
	if err != nil {
		writeError(w, http.StatusNotFound, errors.New("pedido no encontrado"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
