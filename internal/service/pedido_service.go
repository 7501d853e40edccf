package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/EdM0807/sistema-meseros/internal/domain"
)

// Validation failures are surfaced as ErrPedidoInvalido so the handler can
// answer 400 instead of folding them into infrastructure errors.
var ErrPedidoInvalido = errors.New("pedido inválido")

type PedidoService struct {
	repo      PedidoRepository
	publisher PedidoPublisher
	qr        QRGenerator
}

func NewPedidoService(repo PedidoRepository, publisher PedidoPublisher, qr QRGenerator) *PedidoService {
	return &PedidoService{repo: repo, publisher: publisher, qr: qr}
}

func validarPedido(req *domain.CrearPedidoRequest) error {
	if req.MesaID <= 0 {
		return fmt.Errorf("%w: mesa_id requerido", ErrPedidoInvalido)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: el pedido no tiene items", ErrPedidoInvalido)
	}
	for i, item := range req.Items {
		if item.ProductoID <= 0 {
			return fmt.Errorf("%w: item %d sin producto", ErrPedidoInvalido, i)
		}
		if item.Cantidad < 1 {
			return fmt.Errorf("%w: cantidad del item %d debe ser positiva", ErrPedidoInvalido, i)
		}
		if item.Precio < 0 {
			return fmt.Errorf("%w: precio del item %d no puede ser negativo", ErrPedidoInvalido, i)
		}
	}
	return nil
}

// Crear validates the request, runs the order-creation transaction and, on
// success, emits a best-effort order_created event.
func (s *PedidoService) Crear(ctx context.Context, req *domain.CrearPedidoRequest) (*domain.CrearPedidoResponse, error) {
	if err := validarPedido(req); err != nil {
		return nil, err
	}

	pedidoID, total, err := s.repo.CreatePedido(req)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.PedidoEvent{
			Type:      "order_created",
			PedidoID:  pedidoID,
			MesaID:    req.MesaID,
			Total:     total,
			Timestamp: time.Now(),
		}
		if err := s.publisher.PublishPedido(ctx, event); err != nil {
			log.Printf("[pedidos] failed to publish event for pedido %d: %v", pedidoID, err)
		}
	}

	return &domain.CrearPedidoResponse{Success: true, PedidoID: pedidoID, Total: total}, nil
}

func (s *PedidoService) ListPorMesa(mesaID int) ([]domain.Pedido, error) {
	return s.repo.ListPedidosPorMesa(mesaID)
}

func (s *PedidoService) ListActivos() ([]domain.Pedido, error) {
	return s.repo.ListPedidosActivos()
}

func (s *PedidoService) Get(pedidoID int) (*domain.Pedido, error) {
	return s.repo.GetPedido(pedidoID)
}

// CuentaQR renders the QR code that points a phone at the pedido's bill.
func (s *PedidoService) CuentaQR(pedidoID int) ([]byte, error) {
	if _, err := s.repo.GetPedido(pedidoID); err != nil {
		return nil, err
	}
	return s.qr.Generate(pedidoID)
}
