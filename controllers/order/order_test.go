package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	orderControllers "github.com/JAX838/divine-sounds/controllers/order"
	"github.com/JAX838/divine-sounds/models"
	"github.com/JAX838/divine-sounds/notify"
	"github.com/JAX838/divine-sounds/orders"
	"github.com/JAX838/divine-sounds/routes"
	"github.com/JAX838/divine-sounds/store"
)

const testSecret = "test-secret"

type recordingGateway struct {
	mu    sync.Mutex
	bodys []string
	err   error
}

func (g *recordingGateway) Send(recipients []string, message string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bodys = append(g.bodys, message)
	return g.err
}

func (g *recordingGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.bodys)
}

type apiFixture struct {
	router     *gin.Engine
	catalog    store.CatalogStore
	orders     store.OrderRepository
	gateway    *recordingGateway
	dispatcher *notify.Dispatcher
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Product{},
		&models.ProductSpec{},
		&models.Order{},
		&models.OrderItem{},
	))

	gateway := &recordingGateway{}
	dispatcher := notify.NewDispatcher(gateway)
	catalog := store.NewCatalogStore(db)
	repo := store.NewOrderRepository(db)
	engine := orders.NewEngine(repo, catalog, dispatcher, orders.TransitionFree)

	router := gin.New()
	routes.SetupRoutes(router, routes.Deps{
		DB:        db,
		JWTSecret: testSecret,
		Catalog:   catalog,
		Engine:    engine,
		Feed:      orderControllers.NewFeed(),
	})

	return &apiFixture{
		router:     router,
		catalog:    catalog,
		orders:     repo,
		gateway:    gateway,
		dispatcher: dispatcher,
	}
}

func (f *apiFixture) adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    1,
		"email": "admin@example.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) seedProducts(t *testing.T) (a, b models.Product) {
	t.Helper()
	a = models.Product{Name: "Speaker", Price: 1000, Stock: 10}
	b = models.Product{Name: "Cable", Price: 500, Stock: 10}
	require.NoError(t, f.catalog.CreateProduct(&a))
	require.NoError(t, f.catalog.CreateProduct(&b))
	return a, b
}

func TestPlaceOrderEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	a, b := f.seedProducts(t)

	rec := f.do(t, http.MethodPost, "/api/orders", "", gin.H{
		"customerName": "Jane",
		"phoneNumber":  "0712345678",
		"items": []gin.H{
			// client-supplied prices must be ignored
			{"product": a.ID, "quantity": 2, "price": 1},
			{"product": b.ID, "quantity": 1, "price": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2500.0, resp.Order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, resp.Order.Status)

	f.dispatcher.Wait()
	assert.Equal(t, 1, f.gateway.count())
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	f := newAPIFixture(t)
	a, _ := f.seedProducts(t)

	rec := f.do(t, http.MethodPost, "/api/orders", "", gin.H{
		"customerName": "Jane",
		"phoneNumber":  "0712345678",
		"items": []gin.H{
			{"product": a.ID, "quantity": 1},
			{"product": 999, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	all, err := f.orders.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPlaceOrderSucceedsDespiteGatewayError(t *testing.T) {
	f := newAPIFixture(t)
	f.gateway.err = errors.New("provider down")
	a, _ := f.seedProducts(t)

	rec := f.do(t, http.MethodPost, "/api/orders", "", gin.H{
		"customerName": "Jane",
		"phoneNumber":  "0712345678",
		"items":        []gin.H{{"product": a.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	a, b := f.seedProducts(t)
	token := f.adminToken(t)

	rec := f.do(t, http.MethodPost, "/api/orders", "", gin.H{
		"customerName": "Jane",
		"phoneNumber":  "0712345678",
		"items": []gin.H{
			{"product": a.ID, "quantity": 2},
			{"product": b.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	f.dispatcher.Wait()

	rec = f.do(t, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", created.Order.ID), token,
		gin.H{"status": "Confirmed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.OrderStatusConfirmed, updated.Order.Status)
	assert.Equal(t, 2500.0, updated.Order.TotalAmount)

	f.dispatcher.Wait()
	assert.Equal(t, 2, f.gateway.count())
}

func TestUpdateOrderStatusRejectsBogusValue(t *testing.T) {
	f := newAPIFixture(t)
	a, _ := f.seedProducts(t)
	token := f.adminToken(t)

	rec := f.do(t, http.MethodPost, "/api/orders", "", gin.H{
		"customerName": "Jane",
		"phoneNumber":  "0712345678",
		"items":        []gin.H{{"product": a.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = f.do(t, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", created.Order.ID), token,
		gin.H{"status": "Bogus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	got, err := f.orders.FindByID(created.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestOrderAdminEndpointsRequireToken(t *testing.T) {
	f := newAPIFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, "/api/orders", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, "/api/orders/1", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		f.do(t, http.MethodPatch, "/api/orders/1/status", "", gin.H{"status": "Confirmed"}).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodDelete, "/api/orders/1", "", nil).Code)
}

func TestGetAndDeleteOrderEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	a, _ := f.seedProducts(t)
	token := f.adminToken(t)

	rec := f.do(t, http.MethodPost, "/api/orders", "", gin.H{
		"customerName": "Jane",
		"phoneNumber":  "0712345678",
		"items":        []gin.H{{"product": a.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/orders/%d", created.Order.ID)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, path, token, nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/orders", token, nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodDelete, path, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, path, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, path, token, nil).Code)
}
