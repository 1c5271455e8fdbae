package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Shivam1-ai/chai-order-ai/configs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedCatalog(db))

	cfg := &configs.Config{
		Env: "test", Port: "0",
		JWTSecret: "test-secret", JWTTTL: time.Hour,
		DeliveryFee: 25, EstimatedMinutes: 30,
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg, zap.NewNop().Sugar())
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
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
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w, _ := do(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": email, "password": "secret123",
		"firstName": "Dina", "lastName": "Rao",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, out := do(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := out["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// firstMenuItemID pulls a menu item id off the seeded catalog.
func firstMenuItemID(t *testing.T, r *gin.Engine) float64 {
	t.Helper()
	w, out := do(t, r, http.MethodGet, "/restaurants/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := out["data"].(map[string]any)
	items := data["menuItems"].([]any)
	require.NotEmpty(t, items)
	return items[0].(map[string]any)["ID"].(float64)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w, out := do(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["ok"])
}

func TestCatalogSearchAndSort(t *testing.T) {
	r := newTestRouter(t)

	w, out := do(t, r, http.MethodGet, "/restaurants?q=dosa", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := out["data"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Dosa Corner", items[0].(map[string]any)["name"])

	w, out = do(t, r, http.MethodGet, "/restaurants?sort=rating", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items = out["data"].(map[string]any)["items"].([]any)
	require.NotEmpty(t, items)
	assert.Equal(t, "Biryani House", items[0].(map[string]any)["name"]) // 4.8 tops
}

func TestCartRequiresToken(t *testing.T) {
	r := newTestRouter(t)
	w, _ := do(t, r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "diner@example.com")
	menuID := firstMenuItemID(t, r)

	w, _ := do(t, r, http.MethodPost, "/cart/items", token, gin.H{"menuItemId": menuID})
	require.Equal(t, http.StatusCreated, w.Code)

	w, out := do(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := out["data"].(map[string]any)
	assert.Equal(t, float64(1), view["totalItems"])

	// empty address rejected before any order exists
	w, _ = do(t, r, http.MethodPost, "/checkout", token, gin.H{
		"address": gin.H{"street": "", "area": "", "city": "", "pincode": ""},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, out = do(t, r, http.MethodPost, "/checkout", token, gin.H{
		"address": gin.H{
			"street": "12 MG Road", "area": "Indiranagar",
			"city": "Bengaluru", "pincode": "560038",
		},
		"paymentMethod": "cash",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orders := out["data"].(map[string]any)["orders"].([]any)
	require.Len(t, orders, 1)
	orderID := orders[0].(map[string]any)["id"].(float64)

	// cart cleared
	w, out = do(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), out["data"].(map[string]any)["totalItems"])

	// tracking timeline has the initial event
	path := fmt.Sprintf("/orders/%d/tracking", int(orderID))
	w, out = do(t, r, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	timeline := out["data"].(map[string]any)["timeline"].([]any)
	require.Len(t, timeline, 1)
	assert.Equal(t, "Order Placed", timeline[0].(map[string]any)["status"])

	// another user cannot read it
	other := registerAndLogin(t, r, "other@example.com")
	w, _ = do(t, r, http.MethodGet, path, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "diner@example.com")

	w, _ := do(t, r, http.MethodPost, "/checkout", token, gin.H{
		"address": gin.H{
			"street": "12 MG Road", "area": "Indiranagar",
			"city": "Bengaluru", "pincode": "560038",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpsTrackingNeedsRole(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "diner@example.com")
	menuID := firstMenuItemID(t, r)

	w, _ := do(t, r, http.MethodPost, "/cart/items", token, gin.H{"menuItemId": menuID})
	require.Equal(t, http.StatusCreated, w.Code)
	w, out := do(t, r, http.MethodPost, "/checkout", token, gin.H{
		"address": gin.H{
			"street": "12 MG Road", "area": "Indiranagar",
			"city": "Bengaluru", "pincode": "560038",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orders := out["data"].(map[string]any)["orders"].([]any)
	orderID := int(orders[0].(map[string]any)["id"].(float64))

	// customers cannot push tracking events
	w, _ = do(t, r, http.MethodPost, fmt.Sprintf("/ops/orders/%d/tracking", orderID), token,
		gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
