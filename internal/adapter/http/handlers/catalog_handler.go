package handlers

import (
	"errors"
	"log"
	"net/http"

	"kaenpro_os/internal/adapter/http/dto/response"
	"kaenpro_os/internal/adapter/http/middleware"
	"kaenpro_os/internal/usecase"
	"kaenpro_os/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the client/vehicle lookups used while composing an
// order.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// SearchClients returns the clients matching ?q= by name (accent-insensitive)
// or phone. An empty query returns an empty list.
func (h *CatalogHandler) SearchClients(c *gin.Context) {
	session := middleware.SessionFrom(c)
	query := c.Query("q")

	clients, err := h.usecase.FilterClients(c.Request.Context(), session, query)
	if err != nil {
		log.Printf("[catalog][handler] search-clients failed user=%s err=%v", session.Username, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

// ListVehicles returns the vehicles registered for one client.
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	session := middleware.SessionFrom(c)
	clientID := c.Param("client_id")

	vehicles, err := h.usecase.VehiclesOf(c.Request.Context(), session, clientID)
	if err != nil {
		log.Printf("[catalog][handler] list-vehicles failed user=%s client_id=%s err=%v", session.Username, clientID, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSession):
		return pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Operator session required", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
