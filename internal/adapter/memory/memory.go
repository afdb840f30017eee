// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

// DB implements the domain repositories in memory.
type DB struct {
	mu         sync.Mutex
	categories []domain.Category
	products   []domain.Product
	images     []domain.ProductImage
	banners    []domain.Banner
	carts      map[string]domain.CartState
	users      []*domain.User
	sessions   map[string]*domain.Session

	userIDCounter int64

	// BannersErr, when set, is returned by ListActiveBanners. Used to
	// exercise the degraded-banners path.
	BannersErr error
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		carts:    make(map[string]domain.CartState),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.CatalogRepository = (*DB)(nil)
var _ domain.CartRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- seed helpers ---

// AddCategory stores a category.
func (db *DB) AddCategory(c domain.Category) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.categories = append(db.categories, c)
}

// AddProduct stores a product.
func (db *DB) AddProduct(p domain.Product) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.products = append(db.products, p)
}

// AddProductImage stores a product image.
func (db *DB) AddProductImage(img domain.ProductImage) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.images = append(db.images, img)
}

// AddBanner stores a banner.
func (db *DB) AddBanner(b domain.Banner) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.banners = append(db.banners, b)
}

// --- CatalogRepository ---

// ListCategories returns categories with counts and newest product, ordered
// by name.
func (db *DB) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.CategorySummary, 0, len(db.categories))
	for _, c := range db.categories {
		summary := domain.CategorySummary{Category: c}
		for i := range db.products {
			p := db.products[i]
			if p.CategoryID != c.ID {
				continue
			}
			summary.ProductCount++
			if summary.FirstProduct == nil || p.CreatedAt.After(summary.FirstProduct.CreatedAt) {
				cp := p
				summary.FirstProduct = &cp
			}
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListActiveBanners returns active banners in sort order, or BannersErr.
func (db *DB) ListActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.BannersErr != nil {
		return nil, db.BannersErr
	}

	out := make([]domain.Banner, 0, len(db.banners))
	for _, b := range db.banners {
		if b.Active {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// GetProduct returns the product with the given id, or nil.
func (db *DB) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.products {
		if db.products[i].ID == id {
			cp := db.products[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// ListProductImages returns a product's images in sort order.
func (db *DB) ListProductImages(ctx context.Context, productID string) ([]domain.ProductImage, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.ProductImage, 0)
	for _, img := range db.images {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// --- CartRepository ---

// GetCart returns the cart for the session; missing carts read as empty.
func (db *DB) GetCart(ctx context.Context, sessionID string) (domain.CartState, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	state := db.carts[sessionID]
	out := make(domain.CartState, len(state))
	copy(out, state)
	return out, nil
}

// SaveCart stores the cart for the session.
func (db *DB) SaveCart(ctx context.Context, sessionID string, state domain.CartState) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cp := make(domain.CartState, len(state))
	copy(cp, state)
	db.carts[sessionID] = cp
	return nil
}

// ClearCart drops the session's cart.
func (db *DB) ClearCart(ctx context.Context, sessionID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.carts, sessionID)
	return nil
}

// --- UserRepository ---

// GetByEmail returns the user with the given email, or nil.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID returns the user with the given id, or nil.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create stores a new user.
func (db *DB) Create(ctx context.Context, email, name, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// --- SessionRepository ---

// SessionRepo implements session operations on the in-memory DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

// GetByToken returns the session for the token, or nil.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Delete drops the session for the token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired drops every expired session.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
