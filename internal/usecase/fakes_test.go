package usecase

import (
	"context"
	"fmt"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
)

// In-memory repositories used across the usecase tests.

type fakeUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, role entity.Role, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, user := range r.users {
		if role == "" || user.Role == role {
			out = append(out, user)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var n int64
	for _, user := range r.users {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	order    []string
	seq      int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.seq++
		product.ID = fmt.Sprintf("product-%d", r.seq)
	}
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter, sortBy, sortOrder string, limit, offset int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, id := range r.order {
		product := r.products[id]
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if filter.CompanyID != "" && product.CompanyID != filter.CompanyID {
			continue
		}
		out = append(out, product)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, int64, error) {
	return r.List(ctx, repository.ProductFilter{CompanyID: companyID}, "", "", limit, offset)
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) IncrementCounter(ctx context.Context, id, field string, delta int) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	switch field {
	case "views":
		product.Views += delta
	case "placements":
		product.Placements += delta
	case "wishlistCount":
		product.WishlistCount += delta
	case "purchases":
		product.Purchases += delta
	default:
		return errors.BadRequest("unknown counter field: "+field, nil)
	}
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		r.seq++
		order.ID = fmt.Sprintf("order-%d", r.seq)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListAll(ctx context.Context, status string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if status == "" || order.OrderStatus == status {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	r.orders[order.ID] = order
	return nil
}

type fakeWishlistRepo struct {
	wishlists map[string]*entity.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: make(map[string]*entity.Wishlist)}
}

func (r *fakeWishlistRepo) Get(ctx context.Context, userID string) (*entity.Wishlist, error) {
	if wishlist, ok := r.wishlists[userID]; ok {
		return wishlist, nil
	}
	return &entity.Wishlist{UserID: userID, Items: []entity.WishlistItem{}}, nil
}

func (r *fakeWishlistRepo) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	wishlist.UpdatedAt = time.Now()
	r.wishlists[wishlist.UserID] = wishlist
	return nil
}

func (r *fakeWishlistRepo) Delete(ctx context.Context, userID string) error {
	delete(r.wishlists, userID)
	return nil
}

type fakeTicketRepo struct {
	tickets map[string]*entity.SupportTicket
	seq     int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*entity.SupportTicket)}
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	if ticket.ID == "" {
		r.seq++
		ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, errors.NotFound("Ticket", nil)
	}
	return ticket, nil
}

func (r *fakeTicketRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.SupportTicket, int64, error) {
	var out []*entity.SupportTicket
	for _, ticket := range r.tickets {
		if ticket.UserID == userID {
			out = append(out, ticket)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeTicketRepo) ListAll(ctx context.Context, status string, limit, offset int) ([]*entity.SupportTicket, int64, error) {
	var out []*entity.SupportTicket
	for _, ticket := range r.tickets {
		if status == "" || ticket.Status == status {
			out = append(out, ticket)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, ticket *entity.SupportTicket) error {
	if _, ok := r.tickets[ticket.ID]; !ok {
		return errors.NotFound("Ticket", nil)
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

type fakeSceneRepo struct {
	scenes map[string]*entity.Scene
	seq    int
}

func newFakeSceneRepo() *fakeSceneRepo {
	return &fakeSceneRepo{scenes: make(map[string]*entity.Scene)}
}

func (r *fakeSceneRepo) Create(ctx context.Context, scene *entity.Scene) error {
	if scene.ID == "" {
		r.seq++
		scene.ID = fmt.Sprintf("scene-%d", r.seq)
	}
	r.scenes[scene.ID] = scene
	return nil
}

func (r *fakeSceneRepo) GetByID(ctx context.Context, id string) (*entity.Scene, error) {
	scene, ok := r.scenes[id]
	if !ok {
		return nil, errors.NotFound("Scene", nil)
	}
	return scene, nil
}

func (r *fakeSceneRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Scene, int64, error) {
	var out []*entity.Scene
	for _, scene := range r.scenes {
		if scene.UserID == userID {
			out = append(out, scene)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeSceneRepo) Update(ctx context.Context, scene *entity.Scene) error {
	if _, ok := r.scenes[scene.ID]; !ok {
		return errors.NotFound("Scene", nil)
	}
	r.scenes[scene.ID] = scene
	return nil
}

func (r *fakeSceneRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.scenes[id]; !ok {
		return errors.NotFound("Scene", nil)
	}
	delete(r.scenes, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	seq        int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) seed(slugs ...string) {
	for _, slug := range slugs {
		r.seq++
		r.categories[fmt.Sprintf("category-%d", r.seq)] = &entity.Category{
			ID:   fmt.Sprintf("category-%d", r.seq),
			Name: slug,
			Slug: slug,
		}
	}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		r.seq++
		category.ID = fmt.Sprintf("category-%d", r.seq)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, category := range r.categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, category := range r.categories {
		out = append(out, category)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return errors.NotFound("Category", nil)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return errors.NotFound("Category", nil)
	}
	delete(r.categories, id)
	return nil
}

// fakeAuthProvider stands in for the Firebase client.
type fakeAuthProvider struct {
	seq          int
	createErr    error
	deletedUIDs  []string
	knownTokens  map[string]string // token -> uid
	passwordSets map[string]string // uid -> new password
}

func newFakeAuthProvider() *fakeAuthProvider {
	return &fakeAuthProvider{
		knownTokens:  make(map[string]string),
		passwordSets: make(map[string]string),
	}
}

func (p *fakeAuthProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if p.createErr != nil {
		return "", p.createErr
	}
	p.seq++
	uid := fmt.Sprintf("uid-%d", p.seq)
	p.knownTokens["token-"+uid] = uid
	return uid, nil
}

func (p *fakeAuthProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, ok := p.knownTokens[token]
	if !ok {
		return "", errors.Unauthorized("invalid token", nil)
	}
	return uid, nil
}

func (p *fakeAuthProvider) DeleteUser(ctx context.Context, uid string) error {
	p.deletedUIDs = append(p.deletedUIDs, uid)
	return nil
}

func (p *fakeAuthProvider) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	p.passwordSets[uid] = newPassword
	return nil
}

func (p *fakeAuthProvider) SignInWithEmailPassword(email, password string) (string, string, error) {
	if p.seq == 0 {
		return "", "", errors.Unauthorized("no such account", nil)
	}
	uid := fmt.Sprintf("uid-%d", p.seq)
	return "token-" + uid, "refresh-" + uid, nil
}

func (p *fakeAuthProvider) RefreshIDToken(refreshToken string) (string, string, error) {
	if p.seq == 0 {
		return "", "", errors.Unauthorized("invalid refresh token", nil)
	}
	uid := fmt.Sprintf("uid-%d", p.seq)
	return "token-" + uid, "refresh-" + uid, nil
}
