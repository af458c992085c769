package repository

import (
	"context"
	"sync"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/ports"
)

// ProductRepositoryImpl implements the ProductRepository interface on top of
// a Collection. Every mutation is a read-modify-write of the whole collection
// guarded by a per-repository mutex, so concurrent updates cannot lose writes.
type ProductRepositoryImpl struct {
	col ports.Collection
	mu  sync.Mutex
}

// NewProductRepository creates a new product repository
func NewProductRepository(col ports.Collection) ports.ProductRepository {
	return &ProductRepositoryImpl{col: col}
}

func (r *ProductRepositoryImpl) List(ctx context.Context) ([]entities.Product, error) {
	products := []entities.Product{}
	if err := r.col.Load(ctx, productsCollection, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create prepends the product so the newest entry lists first.
func (r *ProductRepositoryImpl) Create(ctx context.Context, product entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := []entities.Product{}
	if err := r.col.Load(ctx, productsCollection, &products); err != nil {
		return entities.Product{}, err
	}

	products = append([]entities.Product{product}, products...)

	if err := r.col.Save(ctx, productsCollection, products); err != nil {
		return entities.Product{}, err
	}

	return product, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, id string, update ports.ProductUpdate) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := []entities.Product{}
	if err := r.col.Load(ctx, productsCollection, &products); err != nil {
		return entities.Product{}, err
	}

	for i := range products {
		if products[i].ID == id {
			update.Apply(&products[i])
			if err := r.col.Save(ctx, productsCollection, products); err != nil {
				return entities.Product{}, err
			}
			return products[i], nil
		}
	}

	return entities.Product{}, entities.ErrProductNotFound
}

// Delete filters out the matching id. Deleting a non-existent id is not an
// error.
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := []entities.Product{}
	if err := r.col.Load(ctx, productsCollection, &products); err != nil {
		return err
	}

	filtered := products[:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}

	return r.col.Save(ctx, productsCollection, filtered)
}
