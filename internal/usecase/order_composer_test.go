package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"
	mock_interfaces "kaenpro_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return "id-" + string(rune('0'+g.n))
}

func (g *seqIDGenerator) NewItemToken() string {
	g.n++
	return "tok-" + string(rune('0'+g.n))
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var (
	testClient  = entities.Client{ID: "c1", Name: "João Silva", Phone: "11 99999-9999"}
	testVehicle = entities.Vehicle{ID: "v1", ClientID: "c1", Plate: "ABC-1234", Model: "Gol 1.6"}
	testSession = entities.UserSession{Username: "owner", Role: entities.SessionRoleOwner}
)

func newEditingComposer(t *testing.T, orders interfaces.IOrderRepository, suggestions *SuggestionUseCase) *OrderComposer {
	t.Helper()
	c := NewOrderComposer(testSession, orders, suggestions, &seqIDGenerator{}, fixedClock{t: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)})
	if err := c.SelectClient(&testClient); err != nil {
		t.Fatalf("select client: %v", err)
	}
	if err := c.SelectVehicle(&testVehicle); err != nil {
		t.Fatalf("select vehicle: %v", err)
	}
	return c
}

func TestOrderComposer_Selection(t *testing.T) {
	t.Run("starts selecting client", func(t *testing.T) {
		c := NewOrderComposer(testSession, nil, nil, &seqIDGenerator{}, fixedClock{})
		if c.Phase() != PhaseSelectingClient {
			t.Fatalf("expected SELECTING_CLIENT, got %s", c.Phase())
		}
	})

	t.Run("client then vehicle enables editing", func(t *testing.T) {
		c := newEditingComposer(t, nil, nil)
		if c.Phase() != PhaseEditing {
			t.Fatalf("expected EDITING, got %s", c.Phase())
		}
	})

	t.Run("vehicle before client", func(t *testing.T) {
		c := NewOrderComposer(testSession, nil, nil, &seqIDGenerator{}, fixedClock{})
		if err := c.SelectVehicle(&testVehicle); !errors.Is(err, ErrNoClientSelected) {
			t.Fatalf("expected ErrNoClientSelected, got %v", err)
		}
	})

	t.Run("vehicle of another client", func(t *testing.T) {
		c := NewOrderComposer(testSession, nil, nil, &seqIDGenerator{}, fixedClock{})
		if err := c.SelectClient(&testClient); err != nil {
			t.Fatalf("select client: %v", err)
		}
		other := entities.Vehicle{ID: "v9", ClientID: "someone-else", Plate: "XYZ-0000"}
		if err := c.SelectVehicle(&other); !errors.Is(err, ErrVehicleMismatch) {
			t.Fatalf("expected ErrVehicleMismatch, got %v", err)
		}
	})

	t.Run("deselect keeps items but clears vehicle", func(t *testing.T) {
		c := newEditingComposer(t, nil, nil)
		if _, err := c.AddItem("filtro", 1, 30, entities.ItemKindPart); err != nil {
			t.Fatalf("add item: %v", err)
		}

		if err := c.SelectClient(nil); err != nil {
			t.Fatalf("deselect: %v", err)
		}
		if c.Phase() != PhaseSelectingClient {
			t.Fatalf("expected SELECTING_CLIENT, got %s", c.Phase())
		}
		if len(c.Items()) != 1 {
			t.Fatalf("expected item kept, got %+v", c.Items())
		}
		snap := c.Snapshot()
		if snap.ClientID != "" || snap.VehicleID != "" {
			t.Fatalf("expected cleared selection, got %+v", snap)
		}
	})

	t.Run("editing requires vehicle", func(t *testing.T) {
		c := NewOrderComposer(testSession, nil, nil, &seqIDGenerator{}, fixedClock{})
		if err := c.SelectClient(&testClient); err != nil {
			t.Fatalf("select client: %v", err)
		}
		if _, err := c.AddBlankItem(); !errors.Is(err, ErrEditingNotEnabled) {
			t.Fatalf("expected ErrEditingNotEnabled, got %v", err)
		}
		if err := c.SetLabor("100"); !errors.Is(err, ErrEditingNotEnabled) {
			t.Fatalf("expected ErrEditingNotEnabled, got %v", err)
		}
	})
}

func TestOrderComposer_Items(t *testing.T) {
	t.Run("add uppercases and defaults kind", func(t *testing.T) {
		c := newEditingComposer(t, nil, nil)
		it, err := c.AddItem("correia dentada", 1, 95.5, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Description != "CORREIA DENTADA" || it.Kind != entities.ItemKindPart {
			t.Fatalf("unexpected item: %+v", it)
		}
		if it.ID == "" {
			t.Fatalf("expected generated item id")
		}
	})

	t.Run("negative values rejected", func(t *testing.T) {
		c := newEditingComposer(t, nil, nil)
		if _, err := c.AddItem("x", -1, 10, entities.ItemKindPart); !errors.Is(err, ErrInvalidItemValue) {
			t.Fatalf("expected ErrInvalidItemValue, got %v", err)
		}
		if _, err := c.AddItem("x", 1, -10, entities.ItemKindPart); !errors.Is(err, ErrInvalidItemValue) {
			t.Fatalf("expected ErrInvalidItemValue, got %v", err)
		}
	})

	t.Run("update and remove", func(t *testing.T) {
		c := newEditingComposer(t, nil, nil)
		it, _ := c.AddBlankItem()

		if err := c.UpdateItem(it.ID, ItemPatch{Description: strPtr("óleo 5w30"), Quantity: f64Ptr(4), UnitPrice: f64Ptr(42)}); err != nil {
			t.Fatalf("update: %v", err)
		}
		items := c.Items()
		if items[0].Description != "ÓLEO 5W30" || items[0].Quantity != 4 || items[0].UnitPrice != 42 {
			t.Fatalf("unexpected item: %+v", items[0])
		}

		if err := c.RemoveItem(it.ID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if len(c.Items()) != 0 {
			t.Fatalf("expected empty items, got %+v", c.Items())
		}
	})

	t.Run("update unknown id is silent", func(t *testing.T) {
		c := newEditingComposer(t, nil, nil)
		if err := c.UpdateItem("missing", ItemPatch{Description: strPtr("x")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderComposer_Total(t *testing.T) {
	c := newEditingComposer(t, nil, nil)
	if _, err := c.AddItem("pastilha", 2, 25, entities.ItemKindPart); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.SetLabor("50"); err != nil {
		t.Fatalf("labor: %v", err)
	}
	if err := c.SetDiscount("10"); err != nil {
		t.Fatalf("discount: %v", err)
	}

	if got := c.Total(); got != 90 {
		t.Fatalf("expected 90, got %v", got)
	}

	// Garbage input counts as zero, as in the composer fields.
	if err := c.SetDiscount("abc"); err != nil {
		t.Fatalf("discount: %v", err)
	}
	if got := c.Total(); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestOrderComposer_Finalize(t *testing.T) {
	t.Run("guard without vehicle", func(t *testing.T) {
		c := NewOrderComposer(testSession, nil, nil, &seqIDGenerator{}, fixedClock{})
		if err := c.SelectClient(&testClient); err != nil {
			t.Fatalf("select client: %v", err)
		}
		if _, err := c.Finalize(context.Background()); !errors.Is(err, ErrOrderNotReady) {
			t.Fatalf("expected ErrOrderNotReady, got %v", err)
		}
		if c.Phase() == PhaseFinalized {
			t.Fatalf("phase must not advance on guard failure")
		}
	})

	t.Run("guard without session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)

		c := NewOrderComposer(entities.UserSession{}, repo, nil, &seqIDGenerator{}, fixedClock{})
		if err := c.SelectClient(&testClient); err != nil {
			t.Fatalf("select client: %v", err)
		}
		if err := c.SelectVehicle(&testVehicle); err != nil {
			t.Fatalf("select vehicle: %v", err)
		}
		if _, err := c.Finalize(context.Background()); !errors.Is(err, ErrOrderNotReady) {
			t.Fatalf("expected ErrOrderNotReady, got %v", err)
		}
	})

	t.Run("guard without repository", func(t *testing.T) {
		c := newEditingComposer(t, nil, nil)
		if _, err := c.Finalize(context.Background()); !errors.Is(err, ErrOrderNotReady) {
			t.Fatalf("expected ErrOrderNotReady, got %v", err)
		}
	})

	t.Run("success stamps and appends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)

		existing := []entities.ServiceOrder{{ID: "old", OSNumber: "KP-000001"}}
		repo.EXPECT().LoadOrders(gomock.Any(), "owner").Return(existing, nil)
		repo.EXPECT().SyncOrders(gomock.Any(), "owner", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, orders []entities.ServiceOrder) error {
				if len(orders) != 2 {
					t.Fatalf("expected append to keep existing orders, got %d", len(orders))
				}
				if orders[0].ID != "old" {
					t.Fatalf("existing order lost: %+v", orders[0])
				}
				return nil
			},
		)

		c := newEditingComposer(t, repo, nil)
		if _, err := c.AddItem("pastilha", 2, 25, entities.ItemKindPart); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := c.SetLabor("50"); err != nil {
			t.Fatalf("labor: %v", err)
		}
		if err := c.SetDiscount("10"); err != nil {
			t.Fatalf("discount: %v", err)
		}

		order, err := c.Finalize(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.OSStatusFinalizado {
			t.Fatalf("expected FINALIZADO, got %s", order.Status)
		}
		if order.PaymentStatus != entities.PaymentStatusPendente {
			t.Fatalf("expected PENDENTE, got %s", order.PaymentStatus)
		}
		if order.TotalValue != 90 {
			t.Fatalf("expected total 90, got %v", order.TotalValue)
		}
		if order.ID == "" || order.OSNumber == "" || order.CreatedAt.IsZero() {
			t.Fatalf("expected stamped identifiers: %+v", order)
		}
		if order.ClientName != "João Silva" || order.VehiclePlate != "ABC-1234" {
			t.Fatalf("expected denormalized snapshot: %+v", order)
		}
		if c.Phase() != PhaseFinalized {
			t.Fatalf("expected FINALIZED phase, got %s", c.Phase())
		}

		got, ok := c.Finalized()
		if !ok || got.ID != order.ID {
			t.Fatalf("expected finalized order retained")
		}
	})

	t.Run("second finalize does not persist again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().LoadOrders(gomock.Any(), "owner").Return(nil, nil).Times(1)
		repo.EXPECT().SyncOrders(gomock.Any(), "owner", gomock.Any()).Return(nil).Times(1)

		c := newEditingComposer(t, repo, nil)
		if _, err := c.Finalize(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := c.Finalize(context.Background()); !errors.Is(err, ErrOrderAlreadyFinalized) {
			t.Fatalf("expected ErrOrderAlreadyFinalized, got %v", err)
		}
	})

	t.Run("sync failure keeps draft editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().LoadOrders(gomock.Any(), "owner").Return(nil, nil)
		repo.EXPECT().SyncOrders(gomock.Any(), "owner", gomock.Any()).Return(errors.New("dynamo down"))

		c := newEditingComposer(t, repo, nil)
		if _, err := c.Finalize(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
		if c.Phase() != PhaseEditing {
			t.Fatalf("expected EDITING after failed sync, got %s", c.Phase())
		}
		if _, err := c.AddBlankItem(); err != nil {
			t.Fatalf("draft should stay editable: %v", err)
		}
	})

	t.Run("no edits after finalize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo.EXPECT().LoadOrders(gomock.Any(), "owner").Return(nil, nil)
		repo.EXPECT().SyncOrders(gomock.Any(), "owner", gomock.Any()).Return(nil)

		c := newEditingComposer(t, repo, nil)
		if _, err := c.Finalize(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := c.AddBlankItem(); !errors.Is(err, ErrOrderAlreadyFinalized) {
			t.Fatalf("expected ErrOrderAlreadyFinalized, got %v", err)
		}
		if err := c.SelectClient(&testClient); !errors.Is(err, ErrOrderAlreadyFinalized) {
			t.Fatalf("expected ErrOrderAlreadyFinalized, got %v", err)
		}
	})
}

func TestOrderComposer_ApplySuggestion(t *testing.T) {
	t.Run("merges items and replaces labor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockISuggestionProvider(ctrl)
		provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(
			"```json\n{\"items\": [{\"desc\": \"bomba d'água\", \"price\": 180}, {\"desc\": \"aditivo\", \"price\": 35}], \"labor\": 220}\n```", nil)

		c := newEditingComposer(t, nil, NewSuggestionUseCase(provider))
		if err := c.SetProblem("superaquecimento"); err != nil {
			t.Fatalf("problem: %v", err)
		}
		if _, err := c.AddItem("mangueira", 1, 20, entities.ItemKindPart); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := c.SetLabor("999"); err != nil {
			t.Fatalf("labor: %v", err)
		}

		s, err := c.ApplySuggestion(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Items) != 2 || s.Labor != 220 {
			t.Fatalf("unexpected suggestion: %+v", s)
		}

		items := c.Items()
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
		if items[0].Description != "MANGUEIRA" {
			t.Fatalf("existing items must come first: %+v", items)
		}
		if items[1].Description != "BOMBA D'ÁGUA" || items[1].Quantity != 1 || items[1].Kind != entities.ItemKindPart {
			t.Fatalf("unexpected merged item: %+v", items[1])
		}
		if items[1].ID == items[2].ID {
			t.Fatalf("merged items need fresh ids")
		}
		// 20 + 180 + 35 + 220 labor
		if got := c.Total(); got != 455 {
			t.Fatalf("expected 455, got %v", got)
		}
	})

	t.Run("parse failure leaves draft untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockISuggestionProvider(ctrl)
		provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("not json at all", nil)

		c := newEditingComposer(t, nil, NewSuggestionUseCase(provider))
		if err := c.SetProblem("barulho no motor"); err != nil {
			t.Fatalf("problem: %v", err)
		}
		if _, err := c.AddItem("vela", 4, 12, entities.ItemKindPart); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := c.SetLabor("150"); err != nil {
			t.Fatalf("labor: %v", err)
		}
		before := c.Snapshot()

		if _, err := c.ApplySuggestion(context.Background()); !errors.Is(err, ErrSuggestionFailed) {
			t.Fatalf("expected ErrSuggestionFailed, got %v", err)
		}

		after := c.Snapshot()
		if len(after.Items) != len(before.Items) || after.LaborValue != before.LaborValue || after.TotalValue != before.TotalValue {
			t.Fatalf("draft changed on failed suggestion: before=%+v after=%+v", before, after)
		}
	})

	t.Run("no provider configured", func(t *testing.T) {
		c := newEditingComposer(t, nil, nil)
		if err := c.SetProblem("qualquer"); err != nil {
			t.Fatalf("problem: %v", err)
		}
		if _, err := c.ApplySuggestion(context.Background()); !errors.Is(err, ErrSuggestionUnavailable) {
			t.Fatalf("expected ErrSuggestionUnavailable, got %v", err)
		}
	})
}

func TestOSNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{1715342400123, "KP-400123"},
		{123456, "KP-123456"},
		{42, "KP-42"},
	}
	for _, tc := range cases {
		if got := osNumber(tc.in); got != tc.want {
			t.Fatalf("osNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
