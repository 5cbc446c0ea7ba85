package usecase

import (
	"context"
	"errors"
	"strings"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// IOrdersUseCase exposes read access to the operator's persisted orders.

type IOrdersUseCase interface {
	List(ctx context.Context, session entities.UserSession) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, session entities.UserSession, id string) (entities.ServiceOrder, error)
}

type OrdersUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrdersUseCase = (*OrdersUseCase)(nil)

func NewOrdersUseCase(repo interfaces.IOrderRepository) *OrdersUseCase {
	return &OrdersUseCase{repo: repo}
}

func (u *OrdersUseCase) List(ctx context.Context, session entities.UserSession) ([]entities.ServiceOrder, error) {
	if session.IsZero() {
		return nil, ErrMissingSession
	}
	orders, err := u.repo.LoadOrders(ctx, session.Username)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entities.ServiceOrder{}
	}
	return orders, nil
}

func (u *OrdersUseCase) GetByID(ctx context.Context, session entities.UserSession, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	orders, err := u.List(ctx, session)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.ServiceOrder{}, ErrOrderNotFound
}
