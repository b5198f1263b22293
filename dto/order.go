package dto

type OrderBody struct {
	Quantity int    `json:"quantity" binding:"required,min=1,max=100"`
	Address  string `json:"address" binding:"required,max=500"`
}

type MakeOrder struct {
	ProductID uint
	UserID    uint
	Quantity  int
	Address   string
}

func NewMakeOrder(body OrderBody, productID, userID uint) MakeOrder {
	return MakeOrder{
		ProductID: productID,
		UserID:    userID,
		Quantity:  body.Quantity,
		Address:   body.Address,
	}
}
