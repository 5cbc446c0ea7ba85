package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrOrderNotFinalized           = errors.New("order not finalized")
	ErrOrderAlreadyPaid            = errors.New("order already paid")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// IOrderPaymentUseCase encapsulates "charge a finalized order and mark it
// PAGO".
//
// The order total in the persisted collection is the source of truth for the
// amount; whatever the caller puts in transaction_amount is overwritten.

type IOrderPaymentUseCase interface {
	RegisterPayment(ctx context.Context, session entities.UserSession, orderID string, payload json.RawMessage) (entities.ServiceOrder, error)
}

type OrderPaymentUseCase struct {
	repo    interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	clock   interfaces.IClock
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, clock interfaces.IClock) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{repo: repo, gateway: gateway, clock: clock}
}

func (u *OrderPaymentUseCase) RegisterPayment(ctx context.Context, session entities.UserSession, orderID string, payload json.RawMessage) (entities.ServiceOrder, error) {
	log.Printf("[payment][usecase] register start order_id=%q payload_len=%d", orderID, len(payload))
	if session.IsZero() {
		return entities.ServiceOrder{}, ErrMissingSession
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload (not-json) order_id=%s", orderID)
		return entities.ServiceOrder{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return entities.ServiceOrder{}, ErrPaymentGatewayNotConfigured
	}

	orders, err := u.repo.LoadOrders(ctx, session.Username)
	if err != nil {
		log.Printf("[payment][usecase] failed loading orders owner=%s err=%v", session.Username, err)
		return entities.ServiceOrder{}, err
	}

	idx := -1
	for i, o := range orders {
		if o.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Printf("[payment][usecase] order not found order_id=%s", orderID)
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	order := orders[idx]
	if order.Status != entities.OSStatusFinalizado {
		log.Printf("[payment][usecase] order not finalized order_id=%s status=%s", orderID, order.Status)
		return entities.ServiceOrder{}, ErrOrderNotFinalized
	}
	if order.PaymentStatus == entities.PaymentStatusPago {
		log.Printf("[payment][usecase] order already paid order_id=%s", orderID)
		return entities.ServiceOrder{}, ErrOrderAlreadyPaid
	}

	// Link the charge to the order; the total from the collection wins.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.ServiceOrder{}, ErrInvalidPaymentPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("OS %s", order.OSNumber)
	}
	reqMap["transaction_amount"] = order.TotalValue
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	log.Printf("[payment][usecase] calling payment gateway order_id=%s amount=%.2f", orderID, order.TotalValue)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[payment][usecase] gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	order.PaymentStatus = entities.PaymentStatusPago
	order.UpdatedAt = u.clock.Now().UTC()
	orders[idx] = order

	if err := u.repo.SyncOrders(ctx, session.Username, orders); err != nil {
		log.Printf("[payment][usecase] orders sync failed owner=%s order_id=%s err=%v", session.Username, orderID, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[payment][usecase] register success order_id=%s payment_status=%s", orderID, order.PaymentStatus)
	return order, nil
}
