package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/inventory"
	"github.com/jhoicas/freight-api/internal/application/logistics"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/repository"
	"github.com/jhoicas/freight-api/internal/domain/fleet"
	"github.com/jhoicas/freight-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/freight-api/internal/infrastructure/manifest"
	"github.com/jhoicas/freight-api/internal/infrastructure/pdf"
	"github.com/jhoicas/freight-api/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/freight-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre un almacén en memoria sembrado.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return buildAppOn(t, kvstore.NewMemoryStore(), true)
}

func buildAppOn(t *testing.T, store repository.KeyValueStore, seeded bool) *fiber.App {
	t.Helper()
	log := zerolog.Nop()
	runner := kvstore.NewStateRunner(store, log, decimal.Zero)
	boot := seed.NewBootstrapper(runner, seed.Fixtures(), log)
	if seeded {
		_, err := boot.BootstrapIfNeeded(context.Background())
		require.NoError(t, err)
	}

	router := fleet.NewRouter(fleet.DefaultDomesticCountry)
	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		ShipmentUC:   logistics.NewShipmentUseCase(runner, router, log),
		ContainerUC:  logistics.NewContainerUseCase(runner, manifest.NewBuilder(), log),
		FleetUC:      logistics.NewFleetUseCase(runner, fleet.NewAssigner(router), log),
		FinancialsUC: logistics.NewFinancialsUseCase(runner, pdf.NewMarotoPDFGenerator(), log),
		SystemUC:     logistics.NewSystemUseCase(boot, log),
		InventoryUC:  inventory.NewInventoryUseCase(runner, log),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createShipment(t *testing.T, app *fiber.App, destination string, kg float64) entity.Shipment {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/shipments", dto.ShipmentRequest{
		Destination: destination, ProductCategory: "Fresh", ContainerType: "Small", WeightKg: kg,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[entity.Shipment](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Catalogos(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/routes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	routes := decode[[]entity.Route](t, resp)
	assert.NotEmpty(t, routes)

	resp = do(t, app, http.MethodGet, "/api/rates", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rates := decode[[]entity.ContainerRate](t, resp)
	assert.Len(t, rates, 3)
}

func TestRouter_RequestID(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/rates", nil)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/rates", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRouter_CrearEnvioYErrores(t *testing.T) {
	app := buildTestApp(t)

	s := createShipment(t, app, "Paris, FR", 700)
	assert.Equal(t, entity.StatusPending, s.Status)

	resp := do(t, app, http.MethodPost, "/api/shipments", dto.ShipmentRequest{
		Destination: "Paris, FR", ProductCategory: "Fresh", ContainerType: "Small", WeightKg: 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/api/shipments", dto.ShipmentRequest{
		Destination: "Paris, FR", ProductCategory: "Fresh", ContainerType: "Small", WeightKg: 5000,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EXCEEDS_CAPACITY", decode[dto.ErrorResponse](t, resp).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/shipments", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/shipments/TW-000000-0000", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/shipments?status=pending", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.ShipmentListResponse](t, resp)
	assert.Equal(t, 1, list.Page.Total)
}

func TestRouter_EstadoSoloAvanza(t *testing.T) {
	app := buildTestApp(t)
	s := createShipment(t, app, "Ankara, TR", 100)

	resp := do(t, app, http.MethodPatch, "/api/shipments/"+s.ShipmentID+"/status", dto.UpdateStatusRequest{Status: "In Transit"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPatch, "/api/shipments/"+s.ShipmentID+"/status", dto.UpdateStatusRequest{Status: "Pending"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_OptimizarYManifiesto(t *testing.T) {
	app := buildTestApp(t)
	createShipment(t, app, "Paris, FR", 700)
	createShipment(t, app, "Paris, FR", 400)

	resp := do(t, app, http.MethodPost, "/api/containers/optimize", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	opt := decode[dto.OptimizeResponse](t, resp)
	require.Len(t, opt.Containers, 2)

	resp = do(t, app, http.MethodGet, "/api/containers/"+opt.Containers[0].ContainerID+"/manifest", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Regexp(t, `^[0-9a-f]{64}$`, resp.Header.Get("X-Manifest-Digest"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<ContainerManifest")

	resp = do(t, app, http.MethodGet, "/api/containers/CT-000000-000/manifest", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/containers/optimize", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.OptimizeResponse](t, resp).NoPending)

	resp = do(t, app, http.MethodPost, "/api/containers/reset", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	reset := decode[dto.ResetContainersResponse](t, resp)
	assert.True(t, reset.Financials.Expenses.IsZero())
	assert.Equal(t, 2, reset.ContainersRemoved)
}

func TestRouter_AsignacionDeFlota(t *testing.T) {
	app := buildTestApp(t)
	a := createShipment(t, app, "Ankara, TR", 100)
	b := createShipment(t, app, "Bursa, TR", 100)

	resp := do(t, app, http.MethodPost, "/api/fleet/estimate", dto.AssignRequest{ShipmentID: a.ShipmentID, VehicleID: "T-01"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	est := decode[dto.EstimateResponse](t, resp)
	assert.True(t, est.Expense.Equal(decimal.NewFromInt(6250)), est.Expense.String())

	resp = do(t, app, http.MethodPost, "/api/fleet/assignments", dto.AssignRequest{ShipmentID: a.ShipmentID, VehicleID: "T-01"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/fleet/assignments", dto.AssignRequest{ShipmentID: b.ShipmentID, VehicleID: "T-01"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "VEHICLE_BUSY", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/api/fleet/assignments", dto.AssignRequest{ShipmentID: b.ShipmentID, VehicleID: "S-01"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WRONG_VEHICLE_TYPE", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodGet, "/api/fleet/assignments", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.AssignmentDTO](t, resp), 1)

	resp = do(t, app, http.MethodGet, "/api/fleet/available", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.AvailableVehiclesResponse](t, resp).Trucks, 2)
}

func TestRouter_InventarioYFinanzas(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/inventory/restock", dto.RestockRequest{Category: "Organic", QuantityKg: 500})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	item := decode[entity.InventoryItem](t, resp)
	assert.Equal(t, 3000.0, item.QuantityKg)
	assert.Equal(t, entity.StockOK, item.Status)

	resp = do(t, app, http.MethodPost, "/api/inventory/restock", dto.RestockRequest{Category: "Unknown", QuantityKg: 5})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/inventory/replenishment", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	createShipment(t, app, "Paris, FR", 700)
	resp = do(t, app, http.MethodGet, "/api/financials", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	sum := decode[dto.FinancialSummaryResponse](t, resp)
	assert.True(t, sum.Financials.Revenue.Equal(decimal.NewFromInt(14000)))

	resp = do(t, app, http.MethodGet, "/api/financials/report.pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRouter_ReinicioDelSistema(t *testing.T) {
	app := buildTestApp(t)
	createShipment(t, app, "Paris, FR", 700)

	resp := do(t, app, http.MethodPost, "/api/system/reset", dto.SystemResetRequest{Confirm: false})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "RESET_NOT_CONFIRMED", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/api/system/reset", dto.SystemResetRequest{Confirm: true})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/shipments", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.ShipmentListResponse](t, resp).Page.Total)
}

// unreachableStore simula un backend caído.
type unreachableStore struct {
	repository.KeyValueStore
}

func (unreachableStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("redis get freight:routes: dial tcp 10.0.0.5:6379: connection refused")
}

func TestRouter_ErrorInternoNoExponeDetalles(t *testing.T) {
	app := buildAppOn(t, unreachableStore{kvstore.NewMemoryStore()}, false)

	resp := do(t, app, http.MethodGet, "/api/routes", nil)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "10.0.0.5")
	assert.NotContains(t, body.Message, "redis")
}

func TestRouter_RegistroIlegibleResponde409(t *testing.T) {
	store := kvstore.NewMemoryStore()
	app := buildAppOn(t, store, true)
	createShipment(t, app, "Ankara, TR", 100)

	raw, _, err := store.Get(context.Background(), repository.KeyShipments)
	require.NoError(t, err)
	raw = bytes.TrimSpace(raw)
	broken := append(raw[:len(raw)-1:len(raw)-1], []byte(`,{"shipment_id":"TW-X","created_at":"2025-03-05"}]`)...)
	require.NoError(t, store.SetMany(context.Background(), map[string][]byte{repository.KeyShipments: broken}))

	resp := do(t, app, http.MethodPost, "/api/shipments", dto.ShipmentRequest{
		Destination: "Ankara, TR", ProductCategory: "Fresh", ContainerType: "Small", WeightKg: 100,
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CORRUPT_STATE", decode[dto.ErrorResponse](t, resp).Code)

	after, _, err := store.Get(context.Background(), repository.KeyShipments)
	require.NoError(t, err)
	assert.Equal(t, string(broken), string(after))
}
