package dto

// ProductBody is shared by create and update (multipart or JSON).
type ProductBody struct {
	Name        string `json:"name" form:"name" binding:"required,max=200"`
	Description string `json:"description" form:"description" binding:"max=5000"`
	Category    string `json:"category" form:"category" binding:"max=100"`
	Price       int64  `json:"price" form:"price" binding:"required,gt=0"`
	Stock       int    `json:"stock" form:"stock" binding:"min=0"`
}

type ProductQuery struct {
	PageQuery
	Name     string `form:"name" binding:"max=200"`
	Category string `form:"category" binding:"max=100"`
	SellerID uint   `form:"sellerId"`
	MinPrice int64  `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice int64  `form:"maxPrice" binding:"omitempty,min=0,gtefield=MinPrice"`
}

type CreateProduct struct {
	Name        string
	Description string
	Category    string
	Price       int64
	Stock       int
	Image       string
	SellerID    uint
}

func NewCreateProduct(body ProductBody, sellerID uint, image string) CreateProduct {
	return CreateProduct{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Price:       body.Price,
		Stock:       body.Stock,
		Image:       image,
		SellerID:    sellerID,
	}
}

type UpdateProduct struct {
	ProductID   uint
	Name        string
	Description string
	Category    string
	Price       int64
	Stock       int
	// empty keeps the stored image
	Image string
}

func NewUpdateProduct(body ProductBody, productID uint, image string) UpdateProduct {
	return UpdateProduct{
		ProductID:   productID,
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Price:       body.Price,
		Stock:       body.Stock,
		Image:       image,
	}
}
