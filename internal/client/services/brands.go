package services

import "github.com/vibelook/vibelook/internal/client/models"

// BrandService lists the partner brands. The catalog is compiled in; there
// is no backend endpoint behind it.
type BrandService interface {
	List() []models.Brand
}

type brandService struct{}

// NewBrandService constructs a BrandService.
func NewBrandService() BrandService {
	return &brandService{}
}

func (b *brandService) List() []models.Brand {
	return append([]models.Brand{}, models.PartnerBrands...)
}
