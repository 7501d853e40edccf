package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/EdM0807/sistema-meseros/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupTestRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreatePedido_CommitsItemsAndTotal(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO pedidos").
		WithArgs(1, "sin hielo").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectExec("INSERT INTO pedido_items").
		WithArgs(12, 1, 2, 25.00, `["limón"]`, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO pedido_items").
		WithArgs(12, 3, 1, 65.00, `[]`, "").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("UPDATE pedidos SET total").
		WithArgs(115.00, 12).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, total, err := repo.CreatePedido(&domain.CrearPedidoRequest{
		MesaID: 1,
		Items: []domain.CrearPedidoItem{
			{ProductoID: 1, Cantidad: 2, Precio: 25.00, Complementos: []string{"limón"}},
			{ProductoID: 3, Cantidad: 1, Precio: 65.00},
		},
		Observaciones: "sin hielo",
	})

	assert.NoError(t, err)
	assert.Equal(t, 12, id)
	assert.Equal(t, 115.00, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePedido_ItemFailureRollsBack(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO pedidos").
		WithArgs(1, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(13))
	mock.ExpectExec("INSERT INTO pedido_items").
		WithArgs(13, 99, 1, 10.00, `[]`, "").
		WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	_, _, err := repo.CreatePedido(&domain.CrearPedidoRequest{
		MesaID: 1,
		Items:  []domain.CrearPedidoItem{{ProductoID: 99, Cantidad: 1, Precio: 10.00}},
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePedido_BeginFailure(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, _, err := repo.CreatePedido(&domain.CrearPedidoRequest{
		MesaID: 1,
		Items:  []domain.CrearPedidoItem{{ProductoID: 1, Cantidad: 1, Precio: 10.00}},
	})

	assert.Error(t, err)
}

func TestListMesas_IncludesActiveCounts(t *testing.T) {
	repo, mock := setupTestRepo(t)

	rows := sqlmock.NewRows([]string{"id", "nombre", "estado", "capacidad", "ubicacion", "pedidos_activos"}).
		AddRow(1, "Mesa 1", "libre", 4, "interior", 2).
		AddRow(2, "Mesa 2", "reservada", 2, "terraza", 0)
	mock.ExpectQuery("SELECT m.id, m.nombre, m.estado").
		WithArgs(domain.PedidoEntregado, domain.PedidoCancelado).
		WillReturnRows(rows)

	mesas, err := repo.ListMesas()
	assert.NoError(t, err)
	assert.Len(t, mesas, 2)
	assert.Equal(t, 2, mesas[0].PedidosActivos)
	assert.Equal(t, "libre", mesas[0].Estado)
	assert.Equal(t, 0, mesas[1].PedidosActivos)
}

func TestListMesasLibres(t *testing.T) {
	repo, mock := setupTestRepo(t)

	rows := sqlmock.NewRows([]string{"id", "nombre", "estado", "capacidad", "ubicacion"}).
		AddRow(3, "Mesa 3", "libre", 6, "terraza")
	mock.ExpectQuery("SELECT m.id, m.nombre, m.estado").
		WithArgs(domain.MesaLibre, domain.PedidoEntregado, domain.PedidoCancelado).
		WillReturnRows(rows)

	mesas, err := repo.ListMesasLibres()
	assert.NoError(t, err)
	assert.Len(t, mesas, 1)
	assert.Equal(t, "Mesa 3", mesas[0].Nombre)
}

func TestListProductos_DecodesComplementos(t *testing.T) {
	repo, mock := setupTestRepo(t)

	rows := sqlmock.NewRows([]string{"id", "nombre", "descripcion", "precio", "imagen", "categoria_id", "activo", "complementos"}).
		AddRow(1, "Limonada", "Natural", 25.00, "", 2, true, `["hielo","limón"]`).
		AddRow(2, "Torta", "", 65.00, "", 1, true, `[]`)
	mock.ExpectQuery("SELECT id, nombre").WillReturnRows(rows)

	productos, err := repo.ListProductos()
	assert.NoError(t, err)
	assert.Len(t, productos, 2)
	assert.Equal(t, []string{"hielo", "limón"}, productos[0].Complementos)
	assert.Equal(t, []string{}, productos[1].Complementos)
}

func TestGetPedido_JoinsItems(t *testing.T) {
	repo, mock := setupTestRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, mesa_id, estado").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mesa_id", "estado", "total", "observaciones", "created_at", "updated_at"}).
			AddRow(9, 4, "pendiente", 115.00, "sin hielo", now, now))
	mock.ExpectQuery("SELECT pi.id, pi.pedido_id").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pedido_id", "producto_id", "nombre", "cantidad", "precio_unitario", "complementos", "observaciones"}).
			AddRow(1, 9, 1, "Limonada", 2, 25.00, `["limón"]`, "").
			AddRow(2, 9, 3, "Torta", 1, 65.00, `[]`, ""))

	pedido, err := repo.GetPedido(9)
	assert.NoError(t, err)
	assert.Equal(t, 115.00, pedido.Total)
	assert.Len(t, pedido.Items, 2)
	assert.Equal(t, "Limonada", pedido.Items[0].ProductoNombre)
	assert.Equal(t, []string{"limón"}, pedido.Items[0].Complementos)
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock := setupTestRepo(t)

	for i := 0; i < 5; i++ {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}
