package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "ruburger/internal/adapters/in/http"
	"ruburger/internal/core/application/usecases/commands"
	"ruburger/internal/core/application/usecases/queries"
	"ruburger/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	manager, err := services.NewOrderManager()
	require.NoError(t, err)

	server := adapter.NewServer(
		commands.NewAddItemCommandHandler(manager),
		commands.NewRemoveLineCommandHandler(manager),
		commands.NewPlaceOrderCommandHandler(manager),
		commands.NewCancelOrderCommandHandler(manager),
		commands.NewExportOrdersCommandHandler(manager),
		queries.NewGetCurrentOrderQueryHandler(manager),
		queries.NewGetPlacedOrdersQueryHandler(manager),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func addBeverage(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/v1/orders/current/items",
		`{"kind":"BEVERAGE","quantity":1,"size":"LARGE","flavor":"COLA"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var added adapter.AddedLine
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	require.NotEmpty(t, added.LineID)
	return added.LineID
}

func TestServer_GetHealth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_AddItem_ReturnsCreatedLine(t *testing.T) {
	e := newTestServer(t)

	lineID := addBeverage(t, e)

	rec := doJSON(e, http.MethodGet, "/api/v1/orders/current", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var draft adapter.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, lineID, draft.Lines[0].ID)
	assert.Equal(t, "$2.99", draft.Subtotal)
	assert.Equal(t, "$3.19", draft.Total)
}

func TestServer_AddItem_InvalidSelection(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown kind", `{"kind":"PIZZA","quantity":1}`},
		{"unknown flavor", `{"kind":"BEVERAGE","quantity":1,"size":"LARGE","flavor":"KVASS"}`},
		{"zero quantity", `{"kind":"BEVERAGE","quantity":0,"size":"LARGE","flavor":"COLA"}`},
		{"combo without base", `{"kind":"COMBO","quantity":1,"flavor":"COLA","sideType":"FRIES"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/api/v1/orders/current/items", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServer_AddItem_Combo(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/orders/current/items",
		`{"kind":"COMBO","quantity":1,"flavor":"COLA","sideType":"FRIES",
		  "base":{"kind":"BURGER","quantity":1,"bread":"BRIOCHE","doublePatty":false}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	current := doJSON(e, http.MethodGet, "/api/v1/orders/current", "")
	require.Equal(t, http.StatusOK, current.Code)

	var draft adapter.Order
	require.NoError(t, json.Unmarshal(current.Body.Bytes(), &draft))
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, "$8.99", draft.Subtotal)
}

func TestServer_RemoveLine(t *testing.T) {
	e := newTestServer(t)

	lineID := addBeverage(t, e)

	rec := doJSON(e, http.MethodDelete, "/api/v1/orders/current/items/"+lineID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	// removing the same line again is still a success
	rec = doJSON(e, http.MethodDelete, "/api/v1/orders/current/items/"+lineID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	current := doJSON(e, http.MethodGet, "/api/v1/orders/current", "")
	var draft adapter.Order
	require.NoError(t, json.Unmarshal(current.Body.Bytes(), &draft))
	assert.Empty(t, draft.Lines)
}

func TestServer_RemoveLine_InvalidID(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodDelete, "/api/v1/orders/current/items/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_PlaceOrder_EmptyDraft(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/orders", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body adapter.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnprocessableEntity, body.Code)
}

func TestServer_PlaceOrder_MovesDraftToHistory(t *testing.T) {
	e := newTestServer(t)

	addBeverage(t, e)

	rec := doJSON(e, http.MethodPost, "/api/v1/orders", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	orders := doJSON(e, http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, orders.Code)

	var placed []adapter.Order
	require.NoError(t, json.Unmarshal(orders.Body.Bytes(), &placed))
	require.Len(t, placed, 1)
	assert.Equal(t, 1, placed[0].Number)
	assert.Equal(t, "Placed", placed[0].Status)

	current := doJSON(e, http.MethodGet, "/api/v1/orders/current", "")
	var draft adapter.Order
	require.NoError(t, json.Unmarshal(current.Body.Bytes(), &draft))
	assert.Equal(t, 2, draft.Number)
	assert.Empty(t, draft.Lines)
}

func TestServer_CancelOrder(t *testing.T) {
	e := newTestServer(t)

	addBeverage(t, e)
	require.Equal(t, http.StatusCreated,
		doJSON(e, http.MethodPost, "/api/v1/orders", "").Code)

	rec := doJSON(e, http.MethodDelete, "/api/v1/orders/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	orders := doJSON(e, http.MethodGet, "/api/v1/orders", "")
	var placed []adapter.Order
	require.NoError(t, json.Unmarshal(orders.Body.Bytes(), &placed))
	assert.Empty(t, placed)
}

func TestServer_CancelOrder_InvalidNumber(t *testing.T) {
	e := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest,
		doJSON(e, http.MethodDelete, "/api/v1/orders/zero", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		doJSON(e, http.MethodDelete, "/api/v1/orders/0", "").Code)
}

func TestServer_ExportOrders(t *testing.T) {
	e := newTestServer(t)

	addBeverage(t, e)
	require.Equal(t, http.StatusCreated,
		doJSON(e, http.MethodPost, "/api/v1/orders", "").Code)

	rec := doJSON(e, http.MethodGet, "/api/v1/orders/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)

	out := rec.Body.String()
	assert.Contains(t, out, "Order #1")
	assert.Contains(t, out, "Total: $3.19")
	assert.Contains(t, out, strings.Repeat("=", 36))
}
