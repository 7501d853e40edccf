package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/EdM0807/sistema-meseros/internal/domain"
)

// CatalogoService serves the read-only catalog. When a cache is wired in,
// listings are served from it and repopulated on miss; cache failures fall
// through to Postgres.
type CatalogoService struct {
	repo  CatalogoRepository
	cache CatalogCache
}

func NewCatalogoService(repo CatalogoRepository, cache CatalogCache) *CatalogoService {
	return &CatalogoService{repo: repo, cache: cache}
}

func (s *CatalogoService) ListCategorias(ctx context.Context) ([]domain.Categoria, error) {
	var categorias []domain.Categoria
	if s.cachedList(ctx, "catalogo:categorias", &categorias) {
		return categorias, nil
	}
	categorias, err := s.repo.ListCategorias()
	if err != nil {
		return nil, err
	}
	s.storeList(ctx, "catalogo:categorias", categorias)
	return categorias, nil
}

func (s *CatalogoService) ListProductos(ctx context.Context) ([]domain.Producto, error) {
	var productos []domain.Producto
	if s.cachedList(ctx, "catalogo:productos", &productos) {
		return productos, nil
	}
	productos, err := s.repo.ListProductos()
	if err != nil {
		return nil, err
	}
	s.storeList(ctx, "catalogo:productos", productos)
	return productos, nil
}

func (s *CatalogoService) ListProductosPorCategoria(ctx context.Context, categoriaID int) ([]domain.Producto, error) {
	key := "catalogo:productos:" + strconv.Itoa(categoriaID)
	var productos []domain.Producto
	if s.cachedList(ctx, key, &productos) {
		return productos, nil
	}
	productos, err := s.repo.ListProductosPorCategoria(categoriaID)
	if err != nil {
		return nil, err
	}
	s.storeList(ctx, key, productos)
	return productos, nil
}

func (s *CatalogoService) cachedList(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, out) == nil
}

func (s *CatalogoService) storeList(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		log.Printf("[catalogo] failed to cache %s: %v", key, err)
	}
}
