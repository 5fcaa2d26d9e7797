package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-management-service/models"
	"order-management-service/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T, name string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Client{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Object{},
	))

	return routes.SetupRouter(routes.Deps{DB: db})
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func idOf(t *testing.T, body map[string]any) int {
	t.Helper()
	id, ok := body["id"].(float64)
	require.True(t, ok, "response has no id: %v", body)
	return int(id)
}

func TestClientLifecycle(t *testing.T) {
	r := setupTestRouter(t, "client_lifecycle")

	code, body := call(t, r, http.MethodPost, "/incluirCliente", gin.H{"nome": "Novo", "sobrenome": "Cliente", "cpf": "11111111111"})
	require.Equal(t, http.StatusCreated, code)
	id := idOf(t, body)

	code, body = call(t, r, http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Novo", body["nome"])
	assert.Equal(t, "Cliente", body["sobrenome"])
	assert.Equal(t, "11111111111", body["cpf"])

	code, body = call(t, r, http.MethodDelete, fmt.Sprintf("/excluirCliente/%d", id), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Cliente excluído com sucesso", body["message"])

	code, body = call(t, r, http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Cliente não encontrado", body["message"])
}

func TestDuplicateCPF(t *testing.T) {
	r := setupTestRouter(t, "duplicate_cpf")
	payload := gin.H{"nome": "A", "sobrenome": "B", "cpf": "11111111111"}

	code, _ := call(t, r, http.MethodPost, "/incluirCliente", payload)
	assert.Equal(t, http.StatusCreated, code)

	code, body := call(t, r, http.MethodPost, "/incluirCliente", payload)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "CPF já cadastrado", body["message"])
}

func TestUpdateClient_CPFOwnedByAnother(t *testing.T) {
	r := setupTestRouter(t, "update_cpf")

	_, first := call(t, r, http.MethodPost, "/incluirCliente", gin.H{"nome": "A", "sobrenome": "A", "cpf": "1"})
	_, _ = call(t, r, http.MethodPost, "/incluirCliente", gin.H{"nome": "B", "sobrenome": "B", "cpf": "2"})

	path := fmt.Sprintf("/atualizarCliente/%d", idOf(t, first))
	code, body := call(t, r, http.MethodPut, path, gin.H{"nome": "A", "sobrenome": "A", "cpf": "2"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "CPF já está sendo usado por outro cliente", body["message"])

	code, body = call(t, r, http.MethodPut, path, gin.H{"nome": "Ana", "sobrenome": "A", "cpf": "1"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ana", body["nome"])
}

func TestDuplicateProduct(t *testing.T) {
	r := setupTestRouter(t, "duplicate_product")
	payload := gin.H{"descricao": "Produto teste"}

	code, _ := call(t, r, http.MethodPost, "/incluirProduto", payload)
	assert.Equal(t, http.StatusCreated, code)

	code, body := call(t, r, http.MethodPost, "/incluirProduto", payload)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Produto já cadastrado", body["message"])
}

func TestListsAreArrays(t *testing.T) {
	r := setupTestRouter(t, "lists")

	for path, key := range map[string]string{
		"/clientes":      "clientes",
		"/produtos":      "produtos",
		"/Pedidos":       "pedidos",
		"/pedidos":       "pedidos",
		"/itensDoPedido": "itensDoPedido",
		"/objetos":       "objetos",
	} {
		code, body := call(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, code, path)
		list, ok := body[key].([]any)
		assert.True(t, ok, "%s: %q is not an array", path, key)
		assert.Empty(t, list, path)
	}
}

func TestMissingRowsAreNotFound(t *testing.T) {
	r := setupTestRouter(t, "missing_rows")

	cases := []struct {
		method, path, message string
		body                  any
	}{
		{http.MethodGet, "/clientes/999", "Cliente não encontrado", nil},
		{http.MethodDelete, "/excluirCliente/999", "Cliente não encontrado", nil},
		{http.MethodPut, "/atualizarCliente/999", "Cliente não encontrado", gin.H{}},
		{http.MethodGet, "/produtos/999", "Produto não encontrado", nil},
		{http.MethodPut, "/atualizarProduto/999", "Produto não encontrado", gin.H{"descricao": "x"}},
		{http.MethodDelete, "/excluirProduto/999", "Produto não encontrado", nil},
		{http.MethodGet, "/pedidos/999", "Pedido não encontrado", nil},
		{http.MethodPut, "/atualizarPedido/999", "Pedido não encontrado", gin.H{"data": "invalid"}},
		{http.MethodDelete, "/excluirPedido/999", "Pedido não encontrado", nil},
		{http.MethodGet, "/itensDoPedido/999", "Item do Pedido não encontrado", nil},
		{http.MethodPut, "/atualizarItemDoPedido/999", "Item do Pedido não encontrado", gin.H{}},
		{http.MethodDelete, "/excluirItemDoPedido/999", "Item do Pedido não encontrado", nil},
		{http.MethodGet, "/objetos/999", "Objeto não encontrado", nil},
		{http.MethodPut, "/atualizarObjeto/999", "Objeto não encontrado", gin.H{"nome": "x"}},
		{http.MethodDelete, "/excluirObjeto/999", "Objeto não encontrado", nil},
		{http.MethodGet, "/clientes/abc", "Cliente não encontrado", nil},
	}
	for _, tc := range cases {
		code, body := call(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, code, tc.path)
		assert.Equal(t, tc.message, body["message"], tc.path)
	}
}

func TestOrderFlow(t *testing.T) {
	r := setupTestRouter(t, "order_flow")

	_, client := call(t, r, http.MethodPost, "/incluirCliente", gin.H{"nome": "Maria", "sobrenome": "Silva", "cpf": "12345678900"})
	_, product := call(t, r, http.MethodPost, "/incluirProduto", gin.H{"descricao": "Caneta"})
	clientID, productID := idOf(t, client), idOf(t, product)

	code, order := call(t, r, http.MethodPost, "/incluirPedido", gin.H{"data": "2024-07-31T15:45:00Z", "id_cliente": clientID})
	require.Equal(t, http.StatusCreated, code)
	orderID := idOf(t, order)
	assert.Equal(t, float64(clientID), order["id_cliente"])

	code, item := call(t, r, http.MethodPost, "/incluirItemDoPedido", gin.H{"id_pedido": orderID, "id_produto": productID, "qtdade": 2})
	require.Equal(t, http.StatusCreated, code)
	itemID := idOf(t, item)

	code, list := call(t, r, http.MethodGet, "/Pedidos", nil)
	require.Equal(t, http.StatusOK, code)
	pedidos := list["pedidos"].([]any)
	require.Len(t, pedidos, 1)
	entry := pedidos[0].(map[string]any)
	assert.Equal(t, float64(orderID), entry["pedido"].(map[string]any)["id"])
	assert.Equal(t, "Maria", entry["cliente"].(map[string]any)["nome"])

	code, body := call(t, r, http.MethodDelete, fmt.Sprintf("/excluirCliente/%d", clientID), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Cliente possui pedidos vinculados", body["message"])

	code, body = call(t, r, http.MethodDelete, fmt.Sprintf("/excluirPedido/%d", orderID), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Pedido possui itens vinculados", body["message"])

	code, body = call(t, r, http.MethodPut, fmt.Sprintf("/atualizarItemDoPedido/%d", itemID), gin.H{"id_pedido": orderID, "id_produto": productID, "qtdade": 5})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(5), body["qtdade"])

	code, _ = call(t, r, http.MethodDelete, fmt.Sprintf("/excluirItemDoPedido/%d", itemID), nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, r, http.MethodDelete, fmt.Sprintf("/excluirPedido/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, r, http.MethodGet, fmt.Sprintf("/pedidos/%d", orderID), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateOrder_UnknownClient(t *testing.T) {
	r := setupTestRouter(t, "order_unknown_client")

	code, body := call(t, r, http.MethodPost, "/incluirPedido", gin.H{"data": "2024-07-31T15:45:00Z", "id_cliente": 404})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Cliente informado não existe", body["message"])
}

func TestObjectCRUD(t *testing.T) {
	r := setupTestRouter(t, "objects")

	code, obj := call(t, r, http.MethodPost, "/incluirObjeto", gin.H{"nome": "primeiro"})
	require.Equal(t, http.StatusCreated, code)
	path := fmt.Sprintf("/objetos/%d", idOf(t, obj))

	code, obj = call(t, r, http.MethodPut, fmt.Sprintf("/atualizarObjeto/%d", idOf(t, obj)), gin.H{"nome": "segundo"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "segundo", obj["nome"])

	code, obj = call(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "segundo", obj["nome"])

	code, body := call(t, r, http.MethodDelete, fmt.Sprintf("/excluirObjeto/%d", idOf(t, obj)), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Objeto excluído com sucesso", body["message"])
}

func TestFallbackRoutes(t *testing.T) {
	r := setupTestRouter(t, "fallback")

	code, body := call(t, r, http.MethodGet, "/naoExiste", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Endpoint não encontrado.", body["error"])

	code, body = call(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["pong"])

	code, body = call(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	r := setupTestRouter(t, "request_id")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
