package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	FullName   string `json:"full_name" form:"full_name" binding:"max=100"`
	Phone      string `json:"phone" form:"phone" binding:"max=20"`
	Address    string `json:"address" form:"address" binding:"max=500"`
	City       string `json:"city" form:"city" binding:"max=100"`
	PostalCode string `json:"postal_code" form:"postal_code" binding:"max=12"`
}

type CreateProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price" binding:"required"`
	Category    string `json:"category" form:"category" binding:"required"`
	SeaterType  string `json:"seater_type" form:"seater_type"`
	ImageURL    string `json:"image_url" form:"image_url"`
	Featured    bool   `json:"featured" form:"featured"`
}

// UpdateProductRequest is a partial update; nil fields are left alone.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
	SeaterType  *string `json:"seater_type"`
	ImageURL    *string `json:"image_url"`
	Featured    *bool   `json:"featured"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"max=9999"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"max=9999"`
}

type CheckoutRequest struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
