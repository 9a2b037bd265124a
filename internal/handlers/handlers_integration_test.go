package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"tienda/internal/database/dbtest"
	"tienda/internal/models"
	"tienda/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

// setupApp builds the full application over a private in-memory database.
func setupApp(t *testing.T, strict bool) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	return server.NewApp(db, nil, server.Options{StrictStatus: strict}), db
}

// doRequest sends body as JSON and returns the status and raw response body.
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

type outcome struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func createCategory(t *testing.T, app *fiber.App, name string) models.Category {
	t.Helper()
	status, raw := doRequest(t, app, http.MethodPost, "/api/categorias", fiber.Map{"nombre": name})
	require.Equal(t, http.StatusOK, status)
	category := decode[models.Category](t, raw)
	require.NotZero(t, category.ID, string(raw))
	return category
}

func createProduct(t *testing.T, app *fiber.App, name string, categoryID uint) models.Product {
	t.Helper()
	status, raw := doRequest(t, app, http.MethodPost, "/api/productos", fiber.Map{
		"nombre":        name,
		"precio":        100.5,
		"cantidadStock": 10,
		"categoria":     fiber.Map{"id": categoryID},
	})
	require.Equal(t, http.StatusOK, status)
	product := decode[models.Product](t, raw)
	require.NotZero(t, product.ID, string(raw))
	return product
}

func createClient(t *testing.T, app *fiber.App, email string) models.Client {
	t.Helper()
	status, raw := doRequest(t, app, http.MethodPost, "/api/clientes", fiber.Map{
		"nombre":   "Ana",
		"apellido": "Pérez",
		"email":    email,
		"telefono": "0991234567",
	})
	require.Equal(t, http.StatusOK, status)
	client := decode[models.Client](t, raw)
	require.NotZero(t, client.ID, string(raw))
	return client
}

func createSale(t *testing.T, app *fiber.App, productID, clientID uint) models.Sale {
	t.Helper()
	status, raw := doRequest(t, app, http.MethodPost, "/api/ventas", fiber.Map{
		"producto": fiber.Map{"id": productID},
		"cliente":  fiber.Map{"id": clientID},
		"cantidad": 2,
		"total":    201,
	})
	require.Equal(t, http.StatusOK, status)
	sale := decode[models.Sale](t, raw)
	require.NotZero(t, sale.ID, string(raw))
	return sale
}

func TestCategoryCRUD(t *testing.T) {
	app, _ := setupApp(t, false)

	created := createCategory(t, app, "Periféricos")

	status, raw := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/categorias/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Periféricos", decode[models.Category](t, raw).Name)

	status, raw = doRequest(t, app, http.MethodGet, "/api/categorias", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.Category](t, raw), 1)

	t.Run("id mismatch is a 200 with a message", func(t *testing.T) {
		status, raw := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/categorias/%d", created.ID),
			fiber.Map{"id": created.ID + 1, "nombre": "Otro"})
		assert.Equal(t, http.StatusOK, status)
		got := decode[outcome](t, raw)
		assert.Equal(t, "IdMismatch", got.Code)
		assert.Equal(t, "El ID de la categoría no coincide", got.Message)
	})

	t.Run("update", func(t *testing.T) {
		status, raw := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/categorias/%d", created.ID),
			fiber.Map{"id": created.ID, "nombre": "Accesorios", "descripcion": "Varios"})
		assert.Equal(t, http.StatusOK, status)
		updated := decode[models.Category](t, raw)
		assert.Equal(t, "Accesorios", updated.Name)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "Varios", *updated.Description)
	})

	t.Run("delete", func(t *testing.T) {
		status, raw := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/categorias/%d", created.ID), nil)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, fmt.Sprintf(`{"message":"Categoría con ID %d ha sido eliminada correctamente","id":%d}`, created.ID, created.ID), string(raw))

		status, raw = doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/categorias/%d", created.ID), nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, outcome{Code: "NotFound", Message: "La categoría no existe"}, decode[outcome](t, raw))
	})

	t.Run("delete unknown id", func(t *testing.T) {
		status, raw := doRequest(t, app, http.MethodDelete, "/api/categorias/999", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "NotFound", decode[outcome](t, raw).Code)
	})
}

func TestCategory_DuplicateName(t *testing.T) {
	app, db := setupApp(t, false)
	createCategory(t, app, "Audio")

	status, raw := doRequest(t, app, http.MethodPost, "/api/categorias", fiber.Map{"nombre": "Audio"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, outcome{Code: "DuplicateName", Message: "Ya existe una categoría con el mismo nombre"}, decode[outcome](t, raw))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStrictStatus(t *testing.T) {
	app, _ := setupApp(t, true)

	status, raw := doRequest(t, app, http.MethodGet, "/api/productos/42", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, outcome{Code: "NotFound", Message: "El producto no existe"}, decode[outcome](t, raw))

	status, raw = doRequest(t, app, http.MethodPost, "/api/categorias", fiber.Map{"nombre": "   "})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "EmptyName", decode[outcome](t, raw).Code)
}

func TestProduct_EmbedsStoredCategory(t *testing.T) {
	app, _ := setupApp(t, false)
	category := createCategory(t, app, "Periféricos")

	product := createProduct(t, app, "Teclado", category.ID)
	require.NotNil(t, product.Category)
	assert.Equal(t, category.ID, product.Category.ID)
	assert.Equal(t, "Periféricos", product.Category.Name)

	status, raw := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/productos/%d", product.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	fetched := decode[models.Product](t, raw)
	assert.Equal(t, "Teclado", fetched.Name)
	assert.True(t, decimal.NewFromFloat(100.5).Equal(fetched.Price), fetched.Price.String())
	assert.Equal(t, 10, fetched.StockQuantity)
	require.NotNil(t, fetched.Category)
	assert.Equal(t, "Periféricos", fetched.Category.Name)
}

func TestProduct_Rejections(t *testing.T) {
	app, db := setupApp(t, false)
	category := createCategory(t, app, "Periféricos")

	tests := []struct {
		name    string
		payload fiber.Map
		want    outcome
	}{
		{
			name:    "price must be positive",
			payload: fiber.Map{"nombre": "Mouse", "precio": 0, "cantidadStock": 1, "categoria": fiber.Map{"id": category.ID}},
			want:    outcome{Code: "InvalidPrice", Message: "El precio debe ser mayor a 0"},
		},
		{
			name:    "field rules run before category resolution",
			payload: fiber.Map{"nombre": "Mouse", "precio": 5, "cantidadStock": -1, "categoria": fiber.Map{"id": 999}},
			want:    outcome{Code: "NegativeStock", Message: "La cantidad en stock no puede ser negativa"},
		},
		{
			name:    "unknown category",
			payload: fiber.Map{"nombre": "Mouse", "precio": 5, "cantidadStock": 1, "categoria": fiber.Map{"id": 999}},
			want:    outcome{Code: "CategoryNotFound", Message: "La categoría no existe"},
		},
		{
			name:    "missing category",
			payload: fiber.Map{"nombre": "Mouse", "precio": 5, "cantidadStock": 1},
			want:    outcome{Code: "CategoryNotFound", Message: "La categoría no existe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := doRequest(t, app, http.MethodPost, "/api/productos", tt.payload)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.want, decode[outcome](t, raw))
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProduct_ConcurrentDuplicateCreate(t *testing.T) {
	app, db := setupApp(t, false)
	category := createCategory(t, app, "Periféricos")

	// A single connection keeps shared-cache SQLite from answering with table locks.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	body, err := json.Marshal(fiber.Map{
		"nombre":        "Monitor",
		"precio":        150,
		"cantidadStock": 3,
		"categoria":     fiber.Map{"id": category.ID},
	})
	require.NoError(t, err)

	type result struct {
		status int
		raw    []byte
		err    error
	}
	results := make([]result, 2)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/productos", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			if err != nil {
				results[i].err = err
				return
			}
			defer resp.Body.Close()
			results[i].status = resp.StatusCode
			results[i].raw, results[i].err = io.ReadAll(resp.Body)
		}(i)
	}
	wg.Wait()

	var created, rejected int
	for _, r := range results {
		require.NoError(t, r.err)
		switch {
		case r.status == http.StatusConflict:
			rejected++
		case r.status == http.StatusOK && decode[outcome](t, r.raw).Code == "DuplicateName":
			rejected++
		case r.status == http.StatusOK && decode[models.Product](t, r.raw).ID != 0:
			created++
		default:
			t.Errorf("unexpected response %d: %s", r.status, r.raw)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, rejected)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Where("nombre = ?", "Monitor").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestClient_Rejections(t *testing.T) {
	app, _ := setupApp(t, false)
	createClient(t, app, "ana@example.com")

	tests := []struct {
		name    string
		payload fiber.Map
		code    string
	}{
		{"digits in first name", fiber.Map{"nombre": "Ana2", "apellido": "Pérez", "email": "a@b.com"}, "FirstNameHasDigits"},
		{"invalid email", fiber.Map{"nombre": "Ana", "apellido": "Pérez", "email": "ana"}, "InvalidEmail"},
		{"invalid phone", fiber.Map{"nombre": "Ana", "apellido": "Pérez", "email": "b@b.com", "telefono": "0812345678"}, "InvalidPhone"},
		{"duplicate email", fiber.Map{"nombre": "Eva", "apellido": "Ruiz", "email": "ana@example.com"}, "DuplicateEmail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := doRequest(t, app, http.MethodPost, "/api/clientes", tt.payload)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.code, decode[outcome](t, raw).Code)
		})
	}
}

func TestSale_CreateReturnsDetail(t *testing.T) {
	app, _ := setupApp(t, false)
	category := createCategory(t, app, "Periféricos")
	product := createProduct(t, app, "Mouse", category.ID)
	client := createClient(t, app, "ana@example.com")

	sale := createSale(t, app, product.ID, client.ID)
	assert.Equal(t, 2, sale.Quantity)
	assert.True(t, decimal.NewFromInt(201).Equal(sale.Total))
	assert.False(t, sale.SaleDate.IsZero())
	require.NotNil(t, sale.Product)
	assert.Equal(t, "Mouse", sale.Product.Name)
	require.NotNil(t, sale.Product.Category)
	assert.Equal(t, "Periféricos", sale.Product.Category.Name)
	require.NotNil(t, sale.Client)
	assert.Equal(t, "ana@example.com", sale.Client.Email)

	status, raw := doRequest(t, app, http.MethodGet, "/api/ventas", nil)
	assert.Equal(t, http.StatusOK, status)
	sales := decode[[]models.Sale](t, raw)
	require.Len(t, sales, 1)
	require.NotNil(t, sales[0].Product)
	assert.NotNil(t, sales[0].Product.Category)

	t.Run("update", func(t *testing.T) {
		status, raw := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/ventas/%d", sale.ID), fiber.Map{
			"id":         sale.ID,
			"producto":   fiber.Map{"id": product.ID},
			"cliente":    fiber.Map{"id": client.ID},
			"cantidad":   3,
			"fechaVenta": "2026-03-01T10:00:00Z",
			"total":      301.5,
		})
		assert.Equal(t, http.StatusOK, status)
		updated := decode[models.Sale](t, raw)
		assert.Equal(t, 3, updated.Quantity)
		assert.True(t, decimal.NewFromFloat(301.5).Equal(updated.Total))
		assert.True(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).Equal(updated.SaleDate))
	})

	t.Run("update without date", func(t *testing.T) {
		status, raw := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/ventas/%d", sale.ID), fiber.Map{
			"id":       sale.ID,
			"producto": fiber.Map{"id": product.ID},
			"cliente":  fiber.Map{"id": client.ID},
			"cantidad": 4,
			"total":    400,
		})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, outcome{Code: "MissingSaleDate", Message: "La fecha de venta es obligatoria"}, decode[outcome](t, raw))

		status, raw = doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/ventas/%d", sale.ID), nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, 3, decode[models.Sale](t, raw).Quantity)
	})

	t.Run("delete", func(t *testing.T) {
		status, raw := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/ventas/%d", sale.ID), nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, fmt.Sprintf("Venta con ID %d ha sido eliminada correctamente", sale.ID), decode[outcome](t, raw).Message)
	})
}

func TestSale_ResolutionPrecedesFieldRules(t *testing.T) {
	app, db := setupApp(t, false)
	client := createClient(t, app, "ana@example.com")

	status, raw := doRequest(t, app, http.MethodPost, "/api/ventas", fiber.Map{
		"producto": fiber.Map{"id": 999},
		"cliente":  fiber.Map{"id": client.ID},
		"cantidad": 0,
		"total":    0,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, outcome{Code: "ProductNotFound", Message: "El producto no existe"}, decode[outcome](t, raw))

	status, raw = doRequest(t, app, http.MethodPost, "/api/ventas", fiber.Map{
		"cliente":  fiber.Map{"id": client.ID},
		"cantidad": 1,
		"total":    1,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "MissingProduct", decode[outcome](t, raw).Code)

	var count int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestClientDelete_CascadesToSales(t *testing.T) {
	app, db := setupApp(t, false)
	category := createCategory(t, app, "Periféricos")
	product := createProduct(t, app, "Mouse", category.ID)
	client := createClient(t, app, "ana@example.com")
	createSale(t, app, product.ID, client.ID)
	createSale(t, app, product.ID, client.ID)

	status, raw := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/clientes/%d", client.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, fmt.Sprintf("Cliente con ID %d ha sido eliminado correctamente", client.ID), decode[outcome](t, raw).Message)

	var count int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCategoryDelete_ReferencedByProduct(t *testing.T) {
	app, db := setupApp(t, false)
	category := createCategory(t, app, "Periféricos")
	createProduct(t, app, "Mouse", category.ID)

	status, _ := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/categorias/%d", category.ID), nil)
	assert.Equal(t, http.StatusConflict, status)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBadRequests(t *testing.T) {
	app, _ := setupApp(t, false)

	status, _ := doRequest(t, app, http.MethodGet, "/api/clientes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/clientes", "{not json")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthAndMetrics(t *testing.T) {
	app, _ := setupApp(t, false)

	status, raw := doRequest(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", decode[map[string]interface{}](t, raw)["status"])

	doRequest(t, app, http.MethodGet, "/api/categorias/7", nil)

	status, raw = doRequest(t, app, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "tienda_http_requests_total")
	assert.Contains(t, string(raw), `tienda_validation_rejections_total{code="NotFound",resource="categorias"} 1`)
}
