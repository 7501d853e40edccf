package main

import (
	"log"
	"os"
	"time"

	"github.com/EdM0807/sistema-meseros/config"
	httpapi "github.com/EdM0807/sistema-meseros/internal/api/http"
	"github.com/EdM0807/sistema-meseros/internal/service"
	"github.com/EdM0807/sistema-meseros/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	// Redis and Kafka are optional: without them the catalog reads straight
	// from Postgres and no events are emitted.
	var cache service.CatalogCache
	if os.Getenv("REDIS_HOST") != "" {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		cache = storage.NewCatalogCache(rdb, 5*time.Minute)
	}

	var publisher service.PedidoPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("pedidos")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	mesaSvc := service.NewMesaService(repo)
	catalogoSvc := service.NewCatalogoService(repo, cache)
	pedidoSvc := service.NewPedidoService(repo, publisher, service.DefaultQRGenerator{BaseURL: config.BaseURL()})

	handler := httpapi.NewHandler(mesaSvc, catalogoSvc, pedidoSvc)
	httpapi.StartServer(config.ServerAddr(), httpapi.NewRouter(handler))
}
