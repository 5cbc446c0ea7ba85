package routes

import (
	"kaenpro_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients = "/clients"
	PathDrafts  = "/drafts"
	PathOrders  = "/orders"
)

func addOSRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, draftHandler *handlers.DraftHandler, orderHandler *handlers.OrderHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", catalogHandler.SearchClients)
		clients.GET("/:client_id/vehicles", catalogHandler.ListVehicles)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.CreateDraft)
		drafts.GET("/:draft_id", draftHandler.GetDraft)
		drafts.PATCH("/:draft_id", draftHandler.UpdateFields)
		drafts.DELETE("/:draft_id", draftHandler.Discard)

		drafts.PUT("/:draft_id/client", draftHandler.SelectClient)
		drafts.DELETE("/:draft_id/client", draftHandler.DeselectClient)
		drafts.PUT("/:draft_id/vehicle", draftHandler.SelectVehicle)

		drafts.POST("/:draft_id/items", draftHandler.AddItem)
		drafts.PATCH("/:draft_id/items/:item_id", draftHandler.UpdateItem)
		drafts.DELETE("/:draft_id/items/:item_id", draftHandler.RemoveItem)

		drafts.POST("/:draft_id/suggestion", draftHandler.Suggest)
		drafts.POST("/:draft_id/finalize", draftHandler.Finalize)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.GET("/:order_id/invoice", orderHandler.GetInvoice)
		orders.GET("/:order_id/invoice/export", orderHandler.ExportInvoice)
		orders.POST("/:order_id/payments", orderHandler.CreatePayment)
	}
}
