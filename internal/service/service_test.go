package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"steelcatalog/internal/database/dbtest"
	"steelcatalog/internal/model"
	"steelcatalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type failingPublisher struct{ calls int }

func (p *failingPublisher) Publish(context.Context, model.CatalogEvent) error {
	p.calls++
	return errors.New("broker down")
}

// failingAudit breaks every write so the surrounding transaction must roll back
type failingAudit struct {
	repository.AuditRepository
}

func (failingAudit) Log(context.Context, *model.AuditLog) error {
	return errors.New("audit table locked")
}

type fixture struct {
	db        *gorm.DB
	products  ProductService
	category  CategoryService
	users     *userService
	publisher *failingPublisher
}

func newFixture(t *testing.T, audit func(repository.AuditRepository) repository.AuditRepository) fixture {
	t.Helper()
	db := dbtest.New(t)
	tm := repository.NewTransactionManager(db)
	auditRepo := repository.NewAuditRepository(db)
	if audit != nil {
		auditRepo = audit(auditRepo)
	}
	pub := &failingPublisher{}
	return fixture{
		db:        db,
		products:  NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db), auditRepo, tm, pub),
		category:  NewCategoryService(repository.NewCategoryRepository(db), auditRepo, tm, pub),
		users:     NewUserService(repository.NewUserRepository(db), auditRepo, tm, pub).(*userService),
		publisher: pub,
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hot Rolled Plates":    "hot-rolled-plates",
		"  MS / ERW  Pipes  ":  "ms-erw-pipes",
		"TMT Bars (Fe-500D)":   "tmt-bars-fe-500d",
		"Stainless--Steel 304": "stainless-steel-304",
	}
	for in, want := range tests {
		got := Slugify(in)
		assert.Equal(t, want, got, in)
		assert.Regexp(t, slugPattern, got)
	}
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.products.CreateProduct(ctx, "admin", ProductRequest{SKU: "K1", Name: "Angle"})
	require.NoError(t, err)
	assert.NotZero(t, res.ProductID)
	assert.Equal(t, 1, f.publisher.calls)
}

func TestAuditFailureRollsBackProduct(t *testing.T) {
	f := newFixture(t, func(r repository.AuditRepository) repository.AuditRepository { return failingAudit{r} })
	ctx := context.Background()

	images := []ImagePayload{{ImagePath: "/x.jpg"}}
	_, err := f.products.CreateProduct(ctx, "admin", ProductRequest{SKU: "K2", Name: "Channel", Images: &images})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)

	var products, imgs int64
	require.NoError(t, f.db.Model(&model.Product{}).Count(&products).Error)
	require.NoError(t, f.db.Model(&model.ProductImage{}).Count(&imgs).Error)
	assert.Zero(t, products)
	assert.Zero(t, imgs)
	assert.Zero(t, f.publisher.calls)
}

func TestUpdateProductKeepsOmittedFlags(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	qty, inactive := 5, false
	created, err := f.products.CreateProduct(ctx, "admin", ProductRequest{SKU: "K3", Name: "Beam", MinimumOrderQty: &qty, IsActive: &inactive})
	require.NoError(t, err)

	updated, err := f.products.UpdateProduct(ctx, "admin", created.ProductID, ProductRequest{SKU: "K3", Name: "I-Beam"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.MinimumOrderQty)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "I-Beam", updated.Name)

	_, err = f.products.CreateProduct(ctx, "admin", ProductRequest{SKU: "K4", Name: "Other"})
	require.NoError(t, err)
	_, err = f.products.UpdateProduct(ctx, "admin", created.ProductID, ProductRequest{SKU: "K4", Name: "Clash"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCategoryServiceConflictsAndNotFound(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	a, err := f.category.CreateCategory(ctx, "admin", CategoryRequest{Name: "Plates"})
	require.NoError(t, err)
	_, err = f.category.CreateCategory(ctx, "admin", CategoryRequest{Name: "Sheets"})
	require.NoError(t, err)

	_, err = f.category.UpdateCategory(ctx, "admin", a.CategoryID, CategoryRequest{Name: "Plates", Slug: "sheets"})
	assert.ErrorIs(t, err, ErrConflict)
	_, err = f.category.UpdateCategory(ctx, "admin", 404, CategoryRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.category.DeleteCategory(ctx, "admin", 404), ErrNotFound)
}

func TestToggleStatusTwiceRestoresOriginal(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	user := &model.User{FirebaseUID: "u1", Email: "u1@steel.example", Role: model.RoleClient, IsActive: true}
	require.NoError(t, f.db.Create(user).Error)

	first, err := f.users.ToggleStatus(ctx, "admin", user.UserID)
	require.NoError(t, err)
	assert.False(t, first.IsActive)
	second, err := f.users.ToggleStatus(ctx, "admin", user.UserID)
	require.NoError(t, err)
	assert.True(t, second.IsActive)

	var stored model.User
	require.NoError(t, f.db.First(&stored, user.UserID).Error)
	assert.True(t, stored.IsActive)

	_, err = f.users.ToggleStatus(ctx, "admin", 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatsUsesCurrentMonth(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.db.Create(&model.User{FirebaseUID: "u1", Email: "u1@steel.example", Role: model.RoleClient, IsActive: true}).Error)

	stats, err := f.users.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.NewThisMonth)

	f.users.now = func() time.Time { return time.Now().UTC().AddDate(0, 2, 0) }
	stats, err = f.users.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.NewThisMonth)
	assert.Equal(t, int64(1), stats.TotalClients)
}

func TestRegisterUserFullName(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.users.RegisterUser(ctx, RegisterUserRequest{FirebaseUID: "r1", Email: "r1@steel.example", FirstName: " Ravi ", LastName: " Kumar "})
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", res.FullName)

	res, err = f.users.RegisterUser(ctx, RegisterUserRequest{FirebaseUID: "r2", Email: "r2@steel.example"})
	require.NoError(t, err)
	assert.Equal(t, "User", res.FullName)
	assert.Nil(t, res.CompanyName)
}

func TestAuthorizeAdmin(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.db.Create(&[]model.User{
		{FirebaseUID: "boss", Email: "b@steel.example", Role: model.RoleAdmin, IsActive: true},
		{FirebaseUID: "gone", Email: "g@steel.example", Role: model.RoleAdmin, IsActive: false},
		{FirebaseUID: "buyer", Email: "c@steel.example", Role: model.RoleClient, IsActive: true},
	}).Error)
	auth := NewAuthService(repository.NewUserRepository(f.db))

	id, err := auth.AuthorizeAdmin(ctx, "boss")
	require.NoError(t, err)
	assert.Equal(t, AdminIdentity{FirebaseUID: "boss", Role: model.RoleAdmin, IsActive: true}, id)

	_, err = auth.AuthorizeAdmin(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = auth.AuthorizeAdmin(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = auth.AuthorizeAdmin(ctx, "gone")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = auth.AuthorizeAdmin(ctx, "buyer")
	assert.ErrorIs(t, err, ErrForbidden)
}
