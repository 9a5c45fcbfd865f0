package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"steelcatalog/internal/database/dbtest"
	"steelcatalog/internal/middleware"
	"steelcatalog/internal/model"
	"steelcatalog/internal/repository"
	"steelcatalog/internal/service"
	"steelcatalog/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

const adminUID = "admin-uid"

var ticketSecret = []byte("test-ticket-secret")

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.CatalogEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event model.CatalogEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.Event)
	}
	return names
}

type testAPI struct {
	router    *gin.Engine
	db        *gorm.DB
	publisher *recordingPublisher
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.New(t)
	publisher := &recordingPublisher{}

	txManager := repository.NewTransactionManager(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	svc := Services{
		Products:   service.NewProductService(productRepo, categoryRepo, auditRepo, txManager, publisher),
		Categories: service.NewCategoryService(categoryRepo, auditRepo, txManager, publisher),
		Users:      service.NewUserService(userRepo, auditRepo, txManager, publisher),
		Auth:       service.NewAuthService(userRepo),
		Audit:      service.NewAuditService(auditRepo),
	}
	router := NewRouter(svc, RouterOptions{TicketSecret: ticketSecret, TicketTTL: time.Minute})

	require.NoError(t, db.Create(&model.User{
		FirebaseUID: adminUID,
		Email:       "admin@steel.example",
		FullName:    "Catalog Admin",
		Role:        model.RoleAdmin,
		IsActive:    true,
	}).Error)

	return &testAPI{router: router, db: db, publisher: publisher}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}, uid string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set(middleware.FirebaseUIDHeader, uid)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) admin(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, method, path, body, adminUID)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *testAPI) seedCategory(t *testing.T, id uint, slug string, active bool) {
	t.Helper()
	require.NoError(t, a.db.Create(&model.Category{CategoryID: id, Name: slug, Slug: slug, IsActive: active}).Error)
}

func TestCreateProductWithCategoryAndImage(t *testing.T) {
	api := newTestAPI(t)
	api.seedCategory(t, 5, "plates", true)

	w := api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{
		"sku":         "X1",
		"name":        "Plate",
		"category_id": 5,
		"images":      []map[string]interface{}{{"image_path": "/a.jpg"}},
		"documents":   []interface{}{},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got := decode[service.ProductResponse](t, w)
	require.NotNil(t, got.Category)
	assert.Equal(t, uint(5), got.Category.CategoryID)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "/a.jpg", got.Images[0].ImagePath)
	assert.Equal(t, model.DefaultImageType, got.Images[0].ImageType)
	assert.Empty(t, got.Documents)
	assert.True(t, got.IsActive)
	assert.Equal(t, 1, got.MinimumOrderQty)
	assert.Nil(t, got.Dimensions)

	assert.Equal(t, []string{model.EventProductCreated}, api.publisher.names())

	var audits int64
	require.NoError(t, api.db.Model(&model.AuditLog{}).Where("action = ? AND actor_uid = ?", model.ActionCreateProduct, adminUID).Count(&audits).Error)
	assert.Equal(t, int64(1), audits)
}

func TestCreateProductOrdersChildren(t *testing.T) {
	api := newTestAPI(t)

	w := api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{
		"sku":            "HR-PL-10",
		"name":           "Hot rolled plate 10mm",
		"grade":          "IS 2062 E250",
		"price_per_unit": "58500.00",
		"dimensions":     map[string]interface{}{"type": "plate", "thickness_mm": 10, "width_mm": 2000, "length_mm": 6300},
		"images": []map[string]interface{}{
			{"image_path": "/b.jpg", "sort_order": 2},
			{"image_path": "/a.jpg", "sort_order": 1},
			{"image_path": "/c.jpg", "sort_order": 3},
		},
		"documents": []map[string]interface{}{
			{"file_path": "/mtr.pdf", "valid_until": "2027-03-31"},
			{"file_path": "/sds.pdf", "document_type": "safety_data_sheet"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got := decode[service.ProductResponse](t, w)
	require.Len(t, got.Images, 3)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg", "/c.jpg"}, []string{got.Images[0].ImagePath, got.Images[1].ImagePath, got.Images[2].ImagePath})
	require.Len(t, got.Documents, 2)
	assert.Equal(t, model.DocTypeMTR, got.Documents[0].DocumentType)
	require.NotNil(t, got.Documents[0].ValidUntil)
	assert.Equal(t, "2027-03-31", *got.Documents[0].ValidUntil)
	assert.Equal(t, 1, got.Documents[1].SortOrder)
	assert.Equal(t, "58500", got.PricePerUnit.String())
	require.NotNil(t, got.Dimensions)
	assert.Equal(t, "plate", got.Dimensions.Type)
	assert.Nil(t, got.Category)
}

func TestCreateProductFailures(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusCreated, api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{"sku": "DUP", "name": "First"}).Code)

	tests := []struct {
		name   string
		body   map[string]interface{}
		status int
	}{
		{"missing sku", map[string]interface{}{"name": "Plate"}, http.StatusBadRequest},
		{"unknown category", map[string]interface{}{"sku": "NEW", "name": "Plate", "category_id": 99}, http.StatusBadRequest},
		{"image without path", map[string]interface{}{"sku": "NEW", "name": "Plate", "images": []map[string]interface{}{{"alt_text": "x"}}}, http.StatusBadRequest},
		{"bad document type", map[string]interface{}{"sku": "NEW", "name": "Plate", "documents": []map[string]interface{}{{"file_path": "/x.pdf", "document_type": "invoice"}}}, http.StatusBadRequest},
		{"negative price", map[string]interface{}{"sku": "NEW", "name": "Plate", "price_per_unit": "-1"}, http.StatusBadRequest},
		{"duplicate sku", map[string]interface{}{"sku": "DUP", "name": "Second"}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.admin(t, http.MethodPost, "/admin/products", tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[map[string]interface{}](t, w)["error"])
		})
	}

	// nothing from the failed attempts was committed
	var count int64
	require.NoError(t, api.db.Model(&model.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Create(&model.User{FirebaseUID: "client-uid", Email: "c@steel.example", Role: model.RoleClient, IsActive: true}).Error)

	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, "/admin/products", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, "/admin/products", nil, "ghost").Code)
	assert.Equal(t, http.StatusForbidden, api.do(t, http.MethodGet, "/admin/users", nil, "client-uid").Code)
	assert.Equal(t, http.StatusOK, api.admin(t, http.MethodGet, "/admin/users", nil).Code)
}

func TestUpdateProduct(t *testing.T) {
	api := newTestAPI(t)
	api.seedCategory(t, 1, "plates", true)
	api.seedCategory(t, 2, "pipes", true)

	created := decode[service.ProductResponse](t, api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{
		"sku": "P1", "name": "Pipe", "category_id": 1,
		"images":    []map[string]interface{}{{"image_path": "/1.jpg"}, {"image_path": "/2.jpg"}},
		"documents": []map[string]interface{}{{"file_path": "/mtr.pdf"}},
	}))
	path := "/admin/products/" + jsonNumber(created.ProductID)

	// children are untouched when the arrays are omitted
	w := api.admin(t, http.MethodPatch, path, map[string]interface{}{"sku": "P1", "name": "Pipe 2in", "category_id": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[service.ProductResponse](t, w)
	assert.Equal(t, "Pipe 2in", got.Name)
	require.NotNil(t, got.Category)
	assert.Equal(t, uint(2), got.Category.CategoryID)
	assert.Len(t, got.Images, 2)
	assert.Len(t, got.Documents, 1)

	// an empty array clears, a missing category_id unlinks
	w = api.admin(t, http.MethodPatch, path, map[string]interface{}{"sku": "P1", "name": "Pipe 2in", "images": []interface{}{}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got = decode[service.ProductResponse](t, w)
	assert.Empty(t, got.Images)
	assert.Len(t, got.Documents, 1)
	assert.Nil(t, got.Category)

	assert.Equal(t, http.StatusNotFound, api.admin(t, http.MethodPatch, "/admin/products/999", map[string]interface{}{"sku": "Z", "name": "Z"}).Code)
	assert.Equal(t, http.StatusBadRequest, api.admin(t, http.MethodPatch, "/admin/products/abc", map[string]interface{}{"sku": "Z", "name": "Z"}).Code)
}

func TestDeleteProductCascades(t *testing.T) {
	api := newTestAPI(t)
	api.seedCategory(t, 3, "coils", true)

	created := decode[service.ProductResponse](t, api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{
		"sku": "C1", "name": "Coil", "category_id": 3,
		"images":    []map[string]interface{}{{"image_path": "/coil.jpg"}},
		"documents": []map[string]interface{}{{"file_path": "/coil-mtr.pdf"}},
	}))
	path := "/admin/products/" + jsonNumber(created.ProductID)

	w := api.admin(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product deleted successfully", decode[map[string]string](t, w)["message"])

	for _, table := range []interface{}{&model.ProductImage{}, &model.ProductDocument{}, &model.ProductCategory{}} {
		var n int64
		require.NoError(t, api.db.Model(table).Count(&n).Error)
		assert.Zero(t, n)
	}
	assert.Equal(t, http.StatusNotFound, api.admin(t, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.admin(t, http.MethodDelete, path, nil).Code)
	assert.Equal(t, []string{model.EventProductCreated, model.EventProductDeleted}, api.publisher.names())
}

func TestPublicListingsShowActiveRowsOnly(t *testing.T) {
	api := newTestAPI(t)
	api.seedCategory(t, 1, "plates", true)
	api.seedCategory(t, 2, "retired", false)

	for _, body := range []map[string]interface{}{
		{"sku": "A", "name": "Active plate", "category_id": 1},
		{"sku": "B", "name": "Hidden plate", "category_id": 1, "is_active": false},
	} {
		require.Equal(t, http.StatusCreated, api.admin(t, http.MethodPost, "/admin/products", body).Code)
	}

	products := decode[[]service.ProductResponse](t, api.do(t, http.MethodGet, "/products", nil, ""))
	require.Len(t, products, 1)
	assert.Equal(t, "A", products[0].SKU)

	categories := decode[[]service.CategoryResponse](t, api.do(t, http.MethodGet, "/categories", nil, ""))
	require.Len(t, categories, 1)
	assert.Equal(t, "plates", categories[0].Slug)
	require.NotNil(t, categories[0].ProductCount)
	assert.Equal(t, int64(2), *categories[0].ProductCount)

	all := decode[[]service.CategoryResponse](t, api.admin(t, http.MethodGet, "/admin/categories", nil))
	assert.Len(t, all, 2)
}

func TestCategoryLifecycle(t *testing.T) {
	api := newTestAPI(t)

	w := api.admin(t, http.MethodPost, "/admin/categories", map[string]interface{}{"name": "Stainless Steel Sheets", "sort_order": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[service.CategoryResponse](t, w)
	assert.Equal(t, "stainless-steel-sheets", created.Slug)
	assert.True(t, created.IsActive)

	assert.Equal(t, http.StatusConflict, api.admin(t, http.MethodPost, "/admin/categories", map[string]interface{}{"name": "Other", "slug": "stainless-steel-sheets"}).Code)
	assert.Equal(t, http.StatusBadRequest, api.admin(t, http.MethodPost, "/admin/categories", map[string]interface{}{"name": "Bad", "slug": "Not A Slug"}).Code)
	assert.Equal(t, http.StatusBadRequest, api.admin(t, http.MethodPost, "/admin/categories", map[string]interface{}{"slug": "no-name"}).Code)

	path := "/admin/categories/" + jsonNumber(created.CategoryID)
	w = api.admin(t, http.MethodPatch, path, map[string]interface{}{"name": "SS Sheets", "slug": "ss-sheets", "is_active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[service.CategoryResponse](t, w)
	assert.Equal(t, "ss-sheets", updated.Slug)
	assert.False(t, updated.IsActive)

	product := decode[service.ProductResponse](t, api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{
		"sku": "SS1", "name": "Sheet", "category_id": created.CategoryID,
	}))

	w = api.admin(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]bool](t, w)["success"])
	assert.Equal(t, http.StatusNotFound, api.admin(t, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.admin(t, http.MethodPatch, path, map[string]interface{}{"name": "x"}).Code)

	// the product survives without its category
	got := decode[service.ProductResponse](t, api.admin(t, http.MethodGet, "/admin/products/"+jsonNumber(product.ProductID), nil))
	assert.Nil(t, got.Category)
}

func TestToggleUserStatus(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Create(&model.User{UserID: 7, FirebaseUID: "buyer-7", Email: "buyer7@steel.example", Role: model.RoleClient, IsActive: true}).Error)

	w := api.admin(t, http.MethodPatch, "/admin/users/7/toggle-status", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true,"isActive":false}`, w.Body.String())

	inactive := decode[[]service.UserResponse](t, api.admin(t, http.MethodGet, "/admin/users?status=inactive", nil))
	require.Len(t, inactive, 1)
	assert.Equal(t, uint(7), inactive[0].UserID)

	w = api.admin(t, http.MethodPatch, "/admin/users/7/toggle-status", nil)
	assert.JSONEq(t, `{"success":true,"isActive":true}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, api.admin(t, http.MethodPatch, "/admin/users/404/toggle-status", nil).Code)
	assert.Equal(t, []string{model.EventUserStatusChanged, model.EventUserStatusChanged}, api.publisher.names())
}

func TestUpdateUserRole(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Create(&model.User{UserID: 9, FirebaseUID: "truck-9", Email: "t9@steel.example", Role: model.RoleClient, IsActive: true}).Error)

	w := api.admin(t, http.MethodPatch, "/admin/users/9/role", map[string]string{"role": model.RoleLogistics})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true,"role":"logistics"}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, api.admin(t, http.MethodPatch, "/admin/users/9/role", map[string]string{"role": "superuser"}).Code)
	assert.Equal(t, http.StatusNotFound, api.admin(t, http.MethodPatch, "/admin/users/99/role", map[string]string{"role": model.RoleAdmin}).Code)

	logistics := decode[[]service.UserResponse](t, api.admin(t, http.MethodGet, "/admin/users?role=logistics", nil))
	require.Len(t, logistics, 1)
	assert.Equal(t, "truck-9", logistics[0].FirebaseUID)
}

func TestListUsersRejectsUnknownSort(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusBadRequest, api.admin(t, http.MethodGet, "/admin/users?sortBy=password", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.admin(t, http.MethodGet, "/admin/users?order=sideways", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.admin(t, http.MethodGet, "/admin/users?status=banned", nil).Code)
	assert.Equal(t, http.StatusOK, api.admin(t, http.MethodGet, "/admin/users?sortBy=email&order=ASC&limit=500", nil).Code)
}

func TestUserStats(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Create(&[]model.User{
		{FirebaseUID: "c1", Email: "c1@steel.example", Role: model.RoleClient, IsActive: true},
		{FirebaseUID: "c2", Email: "c2@steel.example", Role: model.RoleClient, IsActive: false},
		{FirebaseUID: "l1", Email: "l1@steel.example", Role: model.RoleLogistics, IsActive: true},
	}).Error)

	stats := decode[model.UserStats](t, api.admin(t, http.MethodGet, "/admin/users/stats", nil))
	assert.Equal(t, model.UserStats{
		ActiveUsers:    3,
		InactiveUsers:  1,
		NewThisMonth:   4,
		TotalClients:   2,
		TotalLogistics: 1,
		TotalAdmins:    1,
	}, stats)
}

func TestRegisterAndCheckUser(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/users", map[string]string{
		"firebase_uid": "new-buyer",
		"email":        "buyer@steel.example",
		"lastName":     "Sharma",
		"company":      "Sharma Fabricators",
		"gst_number":   "27AAPFU0939F1ZV",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := decode[service.UserResponse](t, w)
	assert.Equal(t, "User Sharma", user.FullName)
	assert.Equal(t, "0000000000", user.Phone)
	assert.Equal(t, model.RoleClient, user.Role)
	assert.True(t, user.IsActive)
	assert.NotNil(t, user.LastLogin)

	assert.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, "/users", map[string]string{"firebase_uid": "new-buyer", "email": "other@steel.example"}, "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodPost, "/users", map[string]string{"email": "x@steel.example"}, "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodPost, "/users", map[string]string{"firebase_uid": "x", "email": "not-an-email"}, "").Code)

	assert.JSONEq(t, `{"found":true}`, api.do(t, http.MethodGet, "/users/check/new-buyer", nil, "").Body.String())
	assert.JSONEq(t, `{"found":false}`, api.do(t, http.MethodGet, "/users/check/nobody", nil, "").Body.String())
}

func TestCheckAdmin(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Create(&model.User{FirebaseUID: "off-admin", Email: "o@steel.example", Role: model.RoleAdmin, IsActive: false}).Error)

	tests := []struct {
		uid  string
		want string
	}{
		{adminUID, `{"isAdmin":true,"isActive":true}`},
		{"off-admin", `{"isAdmin":false,"isActive":false}`},
		{"unknown", `{"isAdmin":false,"isActive":false}`},
	}
	for _, tt := range tests {
		w := api.do(t, http.MethodPost, "/auth/check-admin", map[string]string{"firebaseUid": tt.uid}, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, tt.want, w.Body.String())
	}

	w := api.do(t, http.MethodPost, "/auth/check-admin", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decode[map[string]string](t, w)["error"])
}

func TestExportProducts(t *testing.T) {
	api := newTestAPI(t)
	api.seedCategory(t, 1, "plates", true)
	for _, body := range []map[string]interface{}{
		{"sku": "E1", "name": "Plate", "category_id": 1, "price_per_unit": "100.5"},
		{"sku": "E2", "name": "Old plate", "is_active": false},
	} {
		require.Equal(t, http.StatusCreated, api.admin(t, http.MethodPost, "/admin/products", body).Code)
	}

	w := api.admin(t, http.MethodGet, "/admin/products/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=products.xlsx", w.Header().Get("Content-Disposition"))

	file, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	rows := file.Sheets[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "SKU", rows[0].Cells[1].String())

	skus := []string{rows[1].Cells[1].String(), rows[2].Cells[1].String()}
	assert.ElementsMatch(t, []string{"E1", "E2"}, skus)
}

func TestIssueWsTicket(t *testing.T) {
	api := newTestAPI(t)

	w := api.admin(t, http.MethodGet, "/admin/ws-ticket", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ticket := decode[websocket.Ticket](t, w)

	claims, err := websocket.ParseTicket(ticketSecret, ticket.Token)
	require.NoError(t, err)
	assert.Equal(t, adminUID, claims.Subject)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuditLogsFollowWrites(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusCreated, api.admin(t, http.MethodPost, "/admin/categories", map[string]interface{}{"name": "Bars"}).Code)
	require.Equal(t, http.StatusCreated, api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{"sku": "R1", "name": "Rod"}).Code)

	page := decode[service.AuditLogPage](t, api.admin(t, http.MethodGet, "/admin/audit-logs?entity_type=product", nil))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, model.ActionCreateProduct, page.Items[0].Action)
	assert.Equal(t, adminUID, page.Items[0].ActorUID)

	page = decode[service.AuditLogPage](t, api.admin(t, http.MethodGet, "/admin/audit-logs?limit=1", nil))
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 1)
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func TestCreateProductStoreFailure(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Migrator().DropTable(&model.ProductImage{}))

	w := api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{
		"sku":    "HR-500",
		"name":   "HR Plate",
		"images": []map[string]interface{}{{"image_path": "/a.jpg"}},
	})
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
	body := decode[map[string]string](t, w)
	assert.Equal(t, "Failed to add product", body["error"])
	assert.Contains(t, body["details"], "product_images")

	var count int64
	require.NoError(t, api.db.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, api.publisher.names())
}

func TestReadFailureOmitsDetails(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusCreated, api.admin(t, http.MethodPost, "/admin/products", map[string]interface{}{"sku": "CR-1", "name": "CR Coil"}).Code)
	require.NoError(t, api.db.Migrator().DropTable(&model.ProductCategory{}))

	for _, path := range []string{"/categories", "/products"} {
		w := api.do(t, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusInternalServerError, w.Code, path)
		body := decode[map[string]interface{}](t, w)
		assert.NotEmpty(t, body["error"], path)
		assert.NotContains(t, body, "details", path)
	}

	w := api.admin(t, http.MethodGet, "/admin/categories", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "Failed to fetch categories"}, decode[map[string]interface{}](t, w))
}

func TestRequestBindingRejects(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		field  string
	}{
		{"product without name", http.MethodPost, "/admin/products", map[string]interface{}{"sku": "S1"}, "Name"},
		{"image without path", http.MethodPost, "/admin/products", map[string]interface{}{"sku": "S1", "name": "Plate", "images": []map[string]interface{}{{"alt_text": "x"}}}, "ImagePath"},
		{"unknown document type", http.MethodPost, "/admin/products", map[string]interface{}{"sku": "S1", "name": "Plate", "documents": []map[string]interface{}{{"file_path": "/x.pdf", "document_type": "invoice"}}}, "DocumentType"},
		{"category without name", http.MethodPost, "/admin/categories", map[string]interface{}{"slug": "plates"}, "Name"},
		{"malformed email", http.MethodPost, "/users", map[string]string{"firebase_uid": "x", "email": "not-an-email"}, "Email"},
		{"unknown role", http.MethodPatch, "/admin/users/1/role", map[string]string{"role": "superuser"}, "Role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.admin(t, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			body := decode[map[string]string](t, w)
			assert.Equal(t, "Invalid request payload", body["error"])
			assert.Contains(t, body["details"], tt.field)
		})
	}

	var count int64
	require.NoError(t, api.db.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}
