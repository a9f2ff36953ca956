package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"restaurant-foh-api-server/config"
	"restaurant-foh-api-server/internal/auth"
	"restaurant-foh-api-server/internal/engine"
	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/session"
	"restaurant-foh-api-server/internal/socket"
	"restaurant-foh-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const managerSecret = "5710-5710"

var (
	managerHashOnce sync.Once
	managerHash     string
)

type testEnv struct {
	router      *gin.Engine
	credentials *auth.CredentialService
	lock        session.ManagerLock
	orders      *store.OrderMemory
	menu        *store.MenuMemory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	managerHashOnce.Do(func() {
		var err error
		managerHash, err = auth.HashSecret(managerSecret)
		if err != nil {
			panic(err)
		}
	})

	cfg := config.Config{
		JWT:     config.JWTConfig{Expiration: "1h"},
		Manager: config.ManagerConfig{ID: "MANAGER01", Name: "Boss", SecretHash: managerHash},
	}

	menu := store.NewMenuMemory()
	tables := store.NewTableMemory()
	orders := store.NewOrderMemory()
	staff := store.NewStaffMemory()
	feedback := store.NewFeedbackMemory()
	managers := store.NewManagerMemory()

	credentials := auth.NewCredentialService(staff)
	lock := session.NewMemoryLock()

	router := SetupRouter(
		cfg,
		Stores{Menu: menu, Tables: tables, Feedback: feedback, Managers: managers},
		engine.New(orders),
		credentials,
		lock,
		nil,
		socket.NewHub(),
	)
	return &testEnv{router: router, credentials: credentials, lock: lock, orders: orders, menu: menu}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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
	env.router.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, name, id string, role models.Role) string {
	t.Helper()
	tok, err := auth.GenerateJWT(name, id, role, time.Hour)
	require.NoError(t, err)
	return tok
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestWaiterLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	member, secret, err := env.credentials.AddStaff(context.Background(), models.RoleWaiter, "Ravi")
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"role": "waiter", "id": member.StaffID, "secret": secret,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[map[string]any](t, w)
	assert.NotEmpty(t, resp["token"])

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"role": "waiter", "id": member.StaffID, "secret": "WRONG123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestManagerLoginEnforcesSingleSession(t *testing.T) {
	env := newTestEnv(t)

	login := func(id string) *httptest.ResponseRecorder {
		return env.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"role": "MANAGER", "name": "Boss", "id": id, "secret": managerSecret,
		})
	}

	w := login("MANAGER01")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// A second manager is refused while the first holds the marker.
	w = login("MANAGER02")
	assert.Equal(t, http.StatusConflict, w.Code)

	holder, err := env.lock.Holder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MANAGER01", holder)

	// Re-login of the same manager is fine.
	w = login("MANAGER01")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestManagerLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"role": "MANAGER", "name": "Boss", "id": "BOSS01", "secret": managerSecret,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"role": "MANAGER", "name": "Boss", "id": "MANAGER01", "secret": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestManagerLogoutReleasesLock(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"role": "MANAGER", "name": "Boss", "id": "MANAGER01", "secret": managerSecret,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/logout", token(t, "Boss", "MANAGER01", models.RoleManager), nil)
	require.Equal(t, http.StatusOK, w.Code)

	holder, err := env.lock.Holder(context.Background())
	require.NoError(t, err)
	assert.Empty(t, holder)
}

func TestWaiterLogoutLeavesManagerLock(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.lock.Acquire(context.Background(), "MANAGER01"))

	w := env.do(t, http.MethodPost, "/api/v1/auth/logout", token(t, "Ravi", "WAITER-1", models.RoleWaiter), nil)
	require.Equal(t, http.StatusOK, w.Code)

	holder, err := env.lock.Holder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MANAGER01", holder)
}

func TestReleaseManagerLockRecoversStaleMarker(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.lock.Acquire(context.Background(), "MANAGER01"))

	w := env.do(t, http.MethodPost, "/api/v1/auth/manager/release", "", gin.H{
		"id": "MANAGER02", "secret": managerSecret,
	})
	require.Equal(t, http.StatusOK, w.Code)

	holder, err := env.lock.Holder(context.Background())
	require.NoError(t, err)
	assert.Empty(t, holder)
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/orders", "", gin.H{
		"tableNo": "5",
		"items":   []gin.H{{"name": "Dosa", "price": 120, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[models.Order](t, w)
	assert.Equal(t, 240.0, order.TotalAmount)
	assert.Equal(t, models.StatusPending, order.Status)

	kitchenToken := token(t, "Priya", "KITCHEN-1", models.RoleKitchen)
	waiterToken := token(t, "Ravi", "WAITER-1", models.RoleWaiter)

	w = env.do(t, http.MethodGet, "/api/v1/kitchen/orders", kitchenToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	queue := decode[[]models.Order](t, w)
	require.Len(t, queue, 1)

	w = env.do(t, http.MethodPost, "/api/v1/orders/"+order.OrderID+"/ready", kitchenToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The kitchen cannot complete; that is the waiter's transition.
	w = env.do(t, http.MethodPost, "/api/v1/orders/"+order.OrderID+"/complete", kitchenToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/orders/"+order.OrderID+"/complete", waiterToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Completed orders leave both active views.
	w = env.do(t, http.MethodGet, "/api/v1/kitchen/orders", kitchenToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Order](t, w))

	w = env.do(t, http.MethodGet, "/api/v1/waiter/tables", waiterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]engine.TableOrders](t, w))

	// ...and land in the manager's completed-today aggregate.
	managerToken := token(t, "Boss", "MANAGER01", models.RoleManager)
	w = env.do(t, http.MethodGet, "/api/v1/manager/overview", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[engine.Overview](t, w)
	assert.Equal(t, 240.0, overview.DailyRevenue)
}

func TestInvalidTransitionOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/orders", "", gin.H{
		"tableNo": "5",
		"items":   []gin.H{{"name": "Dosa", "price": 120, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode[models.Order](t, w)

	// Completing a pending order skips a state and is refused.
	w = env.do(t, http.MethodPost, "/api/v1/orders/"+order.OrderID+"/complete",
		token(t, "Ravi", "WAITER-1", models.RoleWaiter), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/orders/missing/ready",
		token(t, "Priya", "KITCHEN-1", models.RoleKitchen), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceOrderValidationOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/orders", "", gin.H{
		"tableNo": "  ",
		"items":   []gin.H{{"name": "Dosa", "price": 120, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/orders", "", gin.H{
		"tableNo": "5",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoleGates(t *testing.T) {
	env := newTestEnv(t)
	waiterToken := token(t, "Ravi", "WAITER-1", models.RoleWaiter)
	kitchenToken := token(t, "Priya", "KITCHEN-1", models.RoleKitchen)

	// Unauthenticated dashboards are refused outright.
	w := env.do(t, http.MethodGet, "/api/v1/kitchen/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Waiters may work the kitchen view.
	w = env.do(t, http.MethodGet, "/api/v1/kitchen/orders", waiterToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Kitchen staff may not open the waiter view.
	w = env.do(t, http.MethodGet, "/api/v1/waiter/tables", kitchenToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Staff cannot reach manager endpoints.
	w = env.do(t, http.MethodGet, "/api/v1/manager/overview", waiterToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A validly signed token with a role outside the model is refused
	// at authentication, before any allow-list runs.
	w = env.do(t, http.MethodGet, "/api/v1/kitchen/orders", token(t, "Eve", "CHEF-1", models.Role("CHEF")), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMenuManagementOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	managerToken := token(t, "Boss", "MANAGER01", models.RoleManager)
	kitchenToken := token(t, "Priya", "KITCHEN-1", models.RoleKitchen)

	w := env.do(t, http.MethodPost, "/api/v1/manager/menu/", managerToken, gin.H{
		"name": "Masala Dosa", "price": 120, "category": "South Indian", "benefits": "Fermented delight",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decode[models.MenuItem](t, w)
	assert.True(t, item.Available)

	// Anyone can browse the menu.
	w = env.do(t, http.MethodGet, "/api/v1/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.MenuItem](t, w), 1)

	// Kitchen may toggle availability but not edit fields.
	w = env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/menu/%s/availability", item.ID.Hex()), kitchenToken, gin.H{"available": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodPut, "/api/v1/manager/menu/"+item.ID.Hex(), kitchenToken, gin.H{
		"name": "Hacked", "price": 1, "category": "X",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/manager/menu/"+item.ID.Hex(), managerToken, gin.H{
		"name": "Masala Dosa", "price": 140, "category": "South Indian",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/manager/menu/"+item.ID.Hex(), managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.MenuItem](t, w))
}

func TestTableManagementOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	managerToken := token(t, "Boss", "MANAGER01", models.RoleManager)

	w := env.do(t, http.MethodPost, "/api/v1/manager/tables/", managerToken, gin.H{"tableNo": 5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate numbers are refused.
	w = env.do(t, http.MethodPost, "/api/v1/manager/tables/", managerToken, gin.H{"tableNo": 5})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Zero and negative numbers never pass validation.
	w = env.do(t, http.MethodPost, "/api/v1/manager/tables/", managerToken, gin.H{"tableNo": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/tables", token(t, "Ravi", "WAITER-1", models.RoleWaiter), nil)
	require.Equal(t, http.StatusOK, w.Code)
	tables := decode[[]models.Table](t, w)
	require.Len(t, tables, 1)

	w = env.do(t, http.MethodDelete, "/api/v1/manager/tables/"+tables[0].ID.Hex(), managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestStaffManagementOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	managerToken := token(t, "Boss", "MANAGER01", models.RoleManager)

	w := env.do(t, http.MethodPost, "/api/v1/manager/staff/", managerToken, gin.H{"role": "WAITER", "name": "Ravi"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	secret, _ := created["secretID"].(string)
	require.Len(t, secret, 8)

	// The roster never echoes secrets back.
	w = env.do(t, http.MethodGet, "/api/v1/manager/staff/?role=WAITER", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), secret)

	w = env.do(t, http.MethodPost, "/api/v1/manager/staff/", managerToken, gin.H{"role": "WAITER", "name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/manager/staff/%s?role=WAITER", created["docId"]), managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestFeedbackOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/feedback", "", gin.H{
		"customerName": "Asha", "tableNo": "5", "message": "Lovely dosa", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/v1/feedback", "", gin.H{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/feedback", "", gin.H{"message": "meh", "rating": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	managerToken := token(t, "Boss", "MANAGER01", models.RoleManager)
	w = env.do(t, http.MethodGet, "/api/v1/manager/feedback", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Feedback](t, w), 1)
}

func TestSessionEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/auth/session", token(t, "Ravi", "WAITER-1", models.RoleWaiter), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]map[string]string](t, w)
	assert.Equal(t, "WAITER-1", resp["user"]["id"])
	assert.Equal(t, string(models.RoleWaiter), resp["user"]["role"])
}
