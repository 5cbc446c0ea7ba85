package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	response "kaenpro_os/internal/adapter/http/dto/response"
	"kaenpro_os/internal/adapter/http/middleware"
	"kaenpro_os/internal/usecase"
	"kaenpro_os/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the persisted (finalized) orders: listing, invoice
// rendering and payment registration.

type OrderHandler struct {
	orders   usecase.IOrdersUseCase
	invoices usecase.IInvoiceUseCase
	payments usecase.IOrderPaymentUseCase
}

func NewOrderHandler(orders usecase.IOrdersUseCase, invoices usecase.IInvoiceUseCase, payments usecase.IOrderPaymentUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, invoices: invoices, payments: payments}
}

// ListOrders returns every persisted order of the operator, oldest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	session := middleware.SessionFrom(c)

	orders, err := h.orders.List(c.Request.Context(), session)
	if err != nil {
		log.Printf("[orders][handler] list failed user=%s err=%v", session.Username, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// GetOrder returns one persisted order by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	session := middleware.SessionFrom(c)
	orderID := c.Param("order_id")

	order, err := h.orders.GetByID(c.Request.Context(), session, orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// GetInvoice returns the invoice document built from a finalized order.
func (h *OrderHandler) GetInvoice(c *gin.Context) {
	session := middleware.SessionFrom(c)
	orderID := c.Param("order_id")

	order, err := h.orders.GetByID(c.Request.Context(), session, orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.invoices.Document(order)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceDocument(doc))
}

// ExportInvoice renders the invoice as a downloadable file. ?format= selects
// png (default) or pdf.
func (h *OrderHandler) ExportInvoice(c *gin.Context) {
	session := middleware.SessionFrom(c)
	orderID := c.Param("order_id")
	format := usecase.ExportFormat(strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", string(usecase.ExportFormatPNG)))))

	order, err := h.orders.GetByID(c.Request.Context(), session, orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, fileName, err := h.invoices.Export(c.Request.Context(), order, format)
	if err != nil {
		log.Printf("[orders][handler] export failed order_id=%s format=%s err=%v", orderID, format, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orders][handler] export success order_id=%s file=%s bytes=%d", orderID, fileName, len(data))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, exportContentType(format), data)
}

// CreatePayment registers a Mercado Pago payment for a finalized order and
// marks it PAGO.
func (h *OrderHandler) CreatePayment(c *gin.Context) {
	session := middleware.SessionFrom(c)
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] create start order_id=%s", orderID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.payments.RegisterPayment(c.Request.Context(), session, orderID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success order_id=%s os_number=%s status=%s", order.ID, order.OSNumber, order.PaymentStatus)

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func exportContentType(format usecase.ExportFormat) string {
	if format == usecase.ExportFormatPDF {
		return "application/pdf"
	}
	return "image/png"
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSession):
		return pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Operator session required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotAvailable), errors.Is(err, usecase.ErrOrderNotFinalized):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FINALIZED", "Order is not finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrExportInFlight):
		return pkg.NewDomainErrorSimple("EXPORT_IN_FLIGHT", "Invoice export already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownExportFormat):
		return pkg.NewDomainErrorSimple("UNKNOWN_EXPORT_FORMAT", "Unknown export format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRendererNotConfigured), errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("DEPENDENCY_NOT_CONFIGURED", "Required dependency not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
