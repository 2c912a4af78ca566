package repositories

import (
	"context"
	"errors"
	"fmt"

	"furniture-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, description, price_pence, category, seater_type, image_url, featured, created_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var (
		p     models.Product
		pence int64
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &pence, &p.Category, &p.SeaterType, &p.ImageURL, &p.Featured, &p.CreatedAt)
	if err != nil {
		return models.Product{}, err
	}
	p.Price = models.PenceToDecimal(pence)
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}
	return products, nil
}

// List returns the whole catalog, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	return collectProducts(rows)
}

// Featured puts featured products first, then the newest.
func (r *ProductRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY featured DESC, created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	return collectProducts(rows)
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("scanProduct: %w", err)
	}
	return p, nil
}

// Create assigns a fresh id when the product has none.
func (r *ProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO products (id, name, description, price_pence, category, seater_type, image_url, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		p.ID, p.Name, p.Description, models.DecimalToPence(p.Price), p.Category, p.SeaterType, p.ImageURL, p.Featured,
	).Scan(&p.CreatedAt)
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicate
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("pool.QueryRow: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p models.Product) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products SET name = $2, description = $3, price_pence = $4, category = $5,
		       seater_type = $6, image_url = $7, featured = $8
		WHERE id = $1`,
		p.ID, p.Name, p.Description, models.DecimalToPence(p.Price), p.Category, p.SeaterType, p.ImageURL, p.Featured,
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
