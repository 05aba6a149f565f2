package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freight-api/internal/application/inventory"
	"github.com/jhoicas/freight-api/internal/application/logistics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ShipmentUC   *logistics.ShipmentUseCase
	ContainerUC  *logistics.ContainerUseCase
	FleetUC      *logistics.FleetUseCase
	FinancialsUC *logistics.FinancialsUseCase
	SystemUC     *logistics.SystemUseCase
	InventoryUC  *inventory.InventoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	api.Get("/routes", shipmentHandler.Routes)
	api.Get("/rates", shipmentHandler.Rates)

	// Envíos
	shipments := api.Group("/shipments")
	shipments.Get("/", shipmentHandler.List)
	shipments.Post("/quote", shipmentHandler.Quote)
	shipments.Post("/", shipmentHandler.Create)
	shipments.Get("/:id", shipmentHandler.Track)
	shipments.Patch("/:id/status", shipmentHandler.UpdateStatus)

	// Contenedores
	containers := api.Group("/containers")
	containerHandler := NewContainerHandler(deps.ContainerUC)
	containers.Get("/", containerHandler.List)
	containers.Post("/optimize", containerHandler.Optimize)
	containers.Post("/reset", containerHandler.Reset)
	containers.Get("/:id/manifest", containerHandler.Manifest)

	// Flota
	fleetGroup := api.Group("/fleet")
	fleetHandler := NewFleetHandler(deps.FleetUC)
	fleetGroup.Get("/", fleetHandler.Fleet)
	fleetGroup.Get("/available", fleetHandler.Available)
	fleetGroup.Get("/pending-shipments", fleetHandler.PendingShipments)
	fleetGroup.Get("/assignments", fleetHandler.Assignments)
	fleetGroup.Post("/estimate", fleetHandler.Estimate)
	fleetGroup.Post("/assignments", fleetHandler.Assign)

	// Inventario
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/restock", inventoryHandler.Restock)
	invGroup.Get("/replenishment", inventoryHandler.GetReplenishmentList)

	// Finanzas y sistema
	financialsHandler := NewFinancialsHandler(deps.FinancialsUC, deps.SystemUC)
	api.Get("/financials", financialsHandler.Summary)
	api.Get("/financials/report.pdf", financialsHandler.ReportPDF)
	api.Post("/system/reset", financialsHandler.SystemReset)
}
