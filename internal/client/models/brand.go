package models

// Brand is a partner brand shown in the catalog. The catalog ships with the
// client; there is no backend endpoint for it.
type Brand struct {
	ID          int64
	Name        string
	Logo        string
	Description string
	Rating      float64
	Category    string
	URL         string
}

// PartnerBrands is the static partner catalog.
var PartnerBrands = []Brand{
	{ID: 1, Name: "Zara", Logo: "/resources/brands/zara.png", Description: "Contemporary fashion with European flair", Rating: 4.5, Category: "Fast Fashion", URL: "https://www.zara.com/kz/en/"},
	{ID: 2, Name: "Nike", Logo: "/resources/brands/nike.png", Description: "Athletic wear and streetwear essentials", Rating: 4.8, Category: "Sportswear", URL: "https://www.nike.com/"},
	{ID: 3, Name: "Uniqlo", Logo: "/resources/brands/uniqlo.png", Description: "Quality basics and innovative fabrics", Rating: 4.6, Category: "Basics", URL: "https://www.uniqlo.com/us/en/"},
	{ID: 4, Name: "Adidas", Logo: "/resources/brands/adidas.png", Description: "Sporty classics and modern streetwear", Rating: 4.7, Category: "Sportswear", URL: "https://adidas.kz/ru"},
	{ID: 5, Name: "Patagonia", Logo: "/resources/brands/patagonia.png", Description: "American casual wear for everyone", Rating: 4.2, Category: "Casual", URL: "https://www.patagonia.com/home/"},
	{ID: 6, Name: "Levi's", Logo: "/resources/brands/levis.png", Description: "Iconic denim and timeless styles", Rating: 4.7, Category: "Denim", URL: "https://www.levi.com/US/en_US/"},
}
