package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "kaenpro_os/internal/adapter/http/dto/request"
	response "kaenpro_os/internal/adapter/http/dto/response"
	"kaenpro_os/internal/adapter/http/middleware"
	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase"
	"kaenpro_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler drives the order composition flow: open a draft, pick client
// and vehicle, edit items and values, ask for AI suggestions, finalize.

type DraftHandler struct {
	drafts  *usecase.DraftManager
	catalog usecase.ICatalogUseCase
}

func NewDraftHandler(drafts *usecase.DraftManager, catalog usecase.ICatalogUseCase) *DraftHandler {
	return &DraftHandler{drafts: drafts, catalog: catalog}
}

// CreateDraft opens a new empty draft owned by the operator session.
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	session := middleware.SessionFrom(c)

	id, composer, err := h.drafts.Create(session)
	if err != nil {
		log.Printf("[draft][handler] create failed user=%s err=%v", session.Username, err)
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[draft][handler] create success user=%s draft_id=%s", session.Username, id)

	c.JSON(http.StatusCreated, response.FromDraft(id, composer))
}

// GetDraft returns the current state of a draft.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draftID := c.Param("draft_id")
	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draftID, composer))
}

// SelectClient resolves the client by id from the operator's catalog and
// attaches it to the draft.
func (h *DraftHandler) SelectClient(c *gin.Context) {
	session := middleware.SessionFrom(c)
	draftID := c.Param("draft_id")

	var payload request.SelectClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	client, err := h.findClient(c, session, payload.ClientID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := composer.SelectClient(client); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[draft][handler] select-client draft_id=%s client_id=%s", draftID, client.ID)

	c.JSON(http.StatusOK, response.FromDraft(draftID, composer))
}

// DeselectClient clears the chosen client (and vehicle) and returns the draft
// to client selection.
func (h *DraftHandler) DeselectClient(c *gin.Context) {
	draftID := c.Param("draft_id")
	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := composer.SelectClient(nil); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draftID, composer))
}

// SelectVehicle resolves the vehicle by id and attaches it to the draft. The
// vehicle must belong to the selected client.
func (h *DraftHandler) SelectVehicle(c *gin.Context) {
	session := middleware.SessionFrom(c)
	draftID := c.Param("draft_id")

	var payload request.SelectVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	vehicle, err := h.findVehicle(c, session, payload.VehicleID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := composer.SelectVehicle(vehicle); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[draft][handler] select-vehicle draft_id=%s vehicle_id=%s", draftID, vehicle.ID)

	c.JSON(http.StatusOK, response.FromDraft(draftID, composer))
}

// UpdateFields patches the draft's free-text fields. Absent fields stay
// untouched.
func (h *DraftHandler) UpdateFields(c *gin.Context) {
	draftID := c.Param("draft_id")

	var payload request.DraftFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.applyFields(composer, payload); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draftID, composer))
}

func (h *DraftHandler) applyFields(composer *usecase.OrderComposer, payload request.DraftFieldsRequest) error {
	if payload.Problem != nil {
		if err := composer.SetProblem(*payload.Problem); err != nil {
			return err
		}
	}
	if payload.VehicleKm != nil {
		if err := composer.SetVehicleKm(*payload.VehicleKm); err != nil {
			return err
		}
	}
	if payload.Labor != nil {
		if err := composer.SetLabor(*payload.Labor); err != nil {
			return err
		}
	}
	if payload.Discount != nil {
		if err := composer.SetDiscount(*payload.Discount); err != nil {
			return err
		}
	}
	if payload.PaymentStatus != nil {
		status := entities.PaymentStatus(*payload.PaymentStatus)
		if status != entities.PaymentStatusPendente && status != entities.PaymentStatusPago {
			return errInvalidDraftPayload
		}
		if err := composer.SetPaymentStatus(status); err != nil {
			return err
		}
	}
	return nil
}

// AddItem appends an item row. An empty body appends a blank row the operator
// fills in afterwards.
func (h *DraftHandler) AddItem(c *gin.Context) {
	draftID := c.Param("draft_id")

	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ItemCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	} else if errors.Is(err, io.EOF) {
		item, addErr := composer.AddBlankItem()
		if addErr != nil {
			appErr := mapDraftError(addErr)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusCreated, response.FromOSItem(item))
		return
	}

	kind, err := payload.ResolveKind()
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	quantity := payload.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item, err := composer.AddItem(payload.Description, quantity, payload.UnitPrice, kind)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOSItem(item))
}

// UpdateItem patches one item row. Unknown item ids are a silent no-op, as in
// the composer grid.
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	draftID := c.Param("draft_id")
	itemID := c.Param("item_id")

	var payload request.ItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := composer.UpdateItem(itemID, patch); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draftID, composer))
}

// RemoveItem deletes one item row.
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	draftID := c.Param("draft_id")
	itemID := c.Param("item_id")

	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := composer.RemoveItem(itemID); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draftID, composer))
}

// Suggest asks the AI provider for parts and labor based on the draft's
// problem text and vehicle, and merges the result into the draft. The merge is
// all or nothing.
func (h *DraftHandler) Suggest(c *gin.Context) {
	draftID := c.Param("draft_id")

	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	suggestion, err := composer.ApplySuggestion(c.Request.Context())
	if err != nil {
		log.Printf("[draft][handler] suggest failed draft_id=%s err=%v", draftID, err)
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[draft][handler] suggest success draft_id=%s items=%d labor=%.2f", draftID, len(suggestion.Items), suggestion.Labor)

	c.JSON(http.StatusOK, response.SuggestionAppliedResponse{
		Suggestion: response.FromSuggestion(suggestion),
		Draft:      response.FromDraft(draftID, composer),
	})
}

// Finalize stamps the draft as a numbered order and persists it. A draft can
// finalize once.
func (h *DraftHandler) Finalize(c *gin.Context) {
	draftID := c.Param("draft_id")

	composer, err := h.drafts.Get(draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := composer.Finalize(c.Request.Context())
	if err != nil {
		log.Printf("[draft][handler] finalize failed draft_id=%s err=%v", draftID, err)
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[draft][handler] finalize success draft_id=%s os_number=%s total=%.2f", draftID, order.OSNumber, order.TotalValue)

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// Discard drops the draft. Discarding an unknown draft is a no-op.
func (h *DraftHandler) Discard(c *gin.Context) {
	draftID := c.Param("draft_id")
	h.drafts.Discard(draftID)
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) findClient(c *gin.Context, session entities.UserSession, clientID string) (*entities.Client, error) {
	cat, err := h.catalog.LoadForSession(c.Request.Context(), session)
	if err != nil {
		return nil, err
	}
	for _, client := range cat.Clients {
		if client.ID == clientID {
			cl := client
			return &cl, nil
		}
	}
	return nil, errClientNotFound
}

func (h *DraftHandler) findVehicle(c *gin.Context, session entities.UserSession, vehicleID string) (*entities.Vehicle, error) {
	cat, err := h.catalog.LoadForSession(c.Request.Context(), session)
	if err != nil {
		return nil, err
	}
	for _, vehicle := range cat.Vehicles {
		if vehicle.ID == vehicleID {
			v := vehicle
			return &v, nil
		}
	}
	return nil, errVehicleNotFound
}

var (
	errClientNotFound  = errors.New("client not found")
	errVehicleNotFound = errors.New("vehicle not found")
)

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, errClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, errVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingSession):
		return pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Operator session required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidItemValue), errors.Is(err, usecase.ErrMissingSuggestInput), errors.Is(err, request.ErrInvalidItemKind):
		return pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoClientSelected), errors.Is(err, usecase.ErrVehicleMismatch):
		return pkg.NewDomainErrorSimple("VEHICLE_SELECTION_CONFLICT", "Vehicle does not match the selected client", http.StatusConflict)
	case errors.Is(err, usecase.ErrEditingNotEnabled):
		return pkg.NewDomainErrorSimple("EDITING_NOT_ENABLED", "Select a client and vehicle first", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyFinalized):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_FINALIZED", "Order already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotReady):
		return pkg.NewDomainErrorSimple("ORDER_NOT_READY", "Order is missing client, vehicle or session", http.StatusConflict)
	case errors.Is(err, usecase.ErrSuggestionUnavailable):
		return pkg.NewDomainErrorSimple("SUGGESTION_UNAVAILABLE", "Suggestion provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSuggestionFailed):
		return pkg.NewDomainErrorSimple("SUGGESTION_FAILED", "Suggestion provider returned an unusable answer", http.StatusBadGateway)
	default:
		var appErr *pkg.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
