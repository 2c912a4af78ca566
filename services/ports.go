package services

import (
	"context"
	"mime/multipart"

	"furniture-shop/cart"
	"furniture-shop/models"
)

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	List(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) (models.Order, error)
}

type UserStore interface {
	Create(ctx context.Context, user models.User, fullName string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	GetProfile(ctx context.Context, userID string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, p models.UserProfile) (models.UserProfile, error)
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
}

// CartStore persists one ledger per browsing session. Loading an unknown
// session yields an empty ledger.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*cart.Ledger, error)
	Save(ctx context.Context, sessionID string, ledger *cart.Ledger) error
	Delete(ctx context.Context, sessionID string) error
}

type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order models.Order, toEmail string) error
}

type ImageUploader interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}
