package services

import (
	"github.com/Shivam1-ai/chai-order-ai/entity"
	"github.com/Shivam1-ai/chai-order-ai/repository"
)

// CatalogService fronts the restaurant catalog queries.
type CatalogService struct {
	Repo *repository.RestaurantRepository
}

func NewCatalogService(rr *repository.RestaurantRepository) *CatalogService {
	return &CatalogService{Repo: rr}
}

func (s *CatalogService) List(query, cuisine, sort string) ([]entity.Restaurant, error) {
	return s.Repo.List(query, cuisine, sort)
}

func (s *CatalogService) Detail(id uint) (*entity.Restaurant, error) {
	return s.Repo.GetWithMenu(id)
}
