package service

import "github.com/EdM0807/sistema-meseros/internal/domain"

type MesaService struct {
	repo MesaRepository
}

func NewMesaService(repo MesaRepository) *MesaService {
	return &MesaService{repo: repo}
}

// DeriveEstado computes the display status of a mesa. Any non-terminal
// pedido makes it ocupada regardless of the stored value; otherwise the
// stored reservada wins, and everything else reads libre.
func DeriveEstado(estadoAlmacenado string, pedidosActivos int) string {
	switch {
	case pedidosActivos > 0:
		return domain.MesaOcupada
	case estadoAlmacenado == domain.MesaReservada:
		return domain.MesaReservada
	default:
		return domain.MesaLibre
	}
}

func (s *MesaService) ListMesas() ([]domain.MesaConActivos, error) {
	mesas, err := s.repo.ListMesas()
	if err != nil {
		return nil, err
	}
	for i := range mesas {
		mesas[i].Estado = DeriveEstado(mesas[i].Estado, mesas[i].PedidosActivos)
	}
	return mesas, nil
}

func (s *MesaService) ListMesasLibres() ([]domain.Mesa, error) {
	return s.repo.ListMesasLibres()
}
