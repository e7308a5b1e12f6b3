package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wazihas/boutique/app/models"
	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/pkg/auth"
)

// fakeUserStore is an in-memory UserStore with the same uniqueness
// behavior as the real repository: duplicate email or mobile → ErrDuplicate.
type fakeUserStore struct {
	users map[string]models.User // keyed by hex id
	err   error                  // forced failure for every call when set
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email || (user.Mobile != "" && u.Mobile == user.Mobile) {
			return repositories.ErrDuplicate
		}
	}
	if user.Role == "" {
		user.Role = auth.RoleUser
	}
	user.ID = primitive.NewObjectID()
	f.users[user.ID.Hex()] = *user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserStore) All(_ context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) SetRole(_ context.Context, id string, role auth.Role) (repositories.UpdateCounts, error) {
	if f.err != nil {
		return repositories.UpdateCounts{}, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repositories.UpdateCounts{}, repositories.ErrInvalidID
	}
	u, ok := f.users[id]
	if !ok {
		return repositories.UpdateCounts{}, nil
	}
	counts := repositories.UpdateCounts{MatchedCount: 1}
	if u.Role != role {
		u.Role = role
		f.users[id] = u
		counts.ModifiedCount = 1
	}
	return counts, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repositories.ErrInvalidID
	}
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

func (f *fakeUserStore) RoleByEmail(ctx context.Context, email string) (auth.Role, error) {
	u, err := f.FindByEmail(ctx, email)
	if err == repositories.ErrNotFound {
		return auth.RoleUser, nil
	}
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// fakeProductStore is an in-memory ProductStore.
type fakeProductStore struct {
	products map[string]models.Product
	err      error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[string]models.Product{}}
}

func (f *fakeProductStore) Create(_ context.Context, product *models.Product) error {
	if f.err != nil {
		return f.err
	}
	product.ID = primitive.NewObjectID()
	f.products[product.ID.Hex()] = *product
	return nil
}

func (f *fakeProductStore) All(_ context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Product{}
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductStore) Find(_ context.Context, id string) (models.Product, error) {
	if f.err != nil {
		return models.Product{}, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Product{}, repositories.ErrInvalidID
	}
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, repositories.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductStore) Update(_ context.Context, id string, upd repositories.ProductUpdate) (repositories.UpdateCounts, error) {
	if f.err != nil {
		return repositories.UpdateCounts{}, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repositories.UpdateCounts{}, repositories.ErrInvalidID
	}
	p, ok := f.products[id]
	if !ok {
		return repositories.UpdateCounts{}, nil
	}
	p.Title = upd.Title
	p.Price = upd.Price
	p.Description = upd.Description
	p.Size = upd.Size
	f.products[id] = p
	return repositories.UpdateCounts{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeProductStore) Delete(_ context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repositories.ErrInvalidID
	}
	if _, ok := f.products[id]; !ok {
		return 0, nil
	}
	delete(f.products, id)
	return 1, nil
}

// fakeIngestor returns canned URLs without touching a disk.
type fakeIngestor struct {
	urls map[string]string
	err  error
}

func (f *fakeIngestor) Ingest(_ *http.Request, fields ...string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]string, len(fields))
	for _, field := range fields {
		out[field] = f.urls[field]
	}
	return out, nil
}

// do runs a request through a handler mux and returns the recorder.
func do(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
