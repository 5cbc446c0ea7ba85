package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"
)

var (
	ErrOrderNotReady         = errors.New("order not ready to finalize")
	ErrOrderAlreadyFinalized = errors.New("order already finalized")
	ErrNoClientSelected      = errors.New("no client selected")
	ErrVehicleMismatch       = errors.New("vehicle does not belong to the selected client")
	ErrEditingNotEnabled     = errors.New("select a client and vehicle first")
	ErrInvalidItemValue      = errors.New("invalid item quantity or price")
)

// ComposerPhase is the explicit state of one in-progress draft.

type ComposerPhase string

const (
	PhaseSelectingClient  ComposerPhase = "SELECTING_CLIENT"
	PhaseSelectingVehicle ComposerPhase = "SELECTING_VEHICLE"
	PhaseEditing          ComposerPhase = "EDITING"
	PhaseFinalized        ComposerPhase = "FINALIZED"
)

// OrderComposer owns one draft service order from client selection through
// finalize.
//
// Phases:
//
//	SELECTING_CLIENT -> SELECTING_VEHICLE on SelectClient (resets any vehicle)
//	SELECTING_VEHICLE -> EDITING on SelectVehicle
//	EDITING self-loops on every item/problem/labor/discount mutation
//	EDITING -> FINALIZED on Finalize (one-way; a new order needs a new draft)
//
// Labor and discount are kept as the raw field text and parsed on every
// computation, so an emptied field simply counts as zero. The total is always
// derived, never cached.
//
// The composer serializes its own mutations with a mutex, but callers are
// still expected to disable the finalize trigger while one call is in flight;
// the persisted collection itself has no cross-instance lock.
type OrderComposer struct {
	mu sync.Mutex

	session     entities.UserSession
	orders      interfaces.IOrderRepository
	suggestions *SuggestionUseCase
	ids         interfaces.IIDGenerator
	clock       interfaces.IClock

	phase         ComposerPhase
	client        *entities.Client
	vehicle       *entities.Vehicle
	vehicleKm     string
	problem       string
	items         []entities.OSItem
	labor         string
	discount      string
	paymentStatus entities.PaymentStatus

	finalized *entities.ServiceOrder
}

func NewOrderComposer(
	session entities.UserSession,
	orders interfaces.IOrderRepository,
	suggestions *SuggestionUseCase,
	ids interfaces.IIDGenerator,
	clock interfaces.IClock,
) *OrderComposer {
	return &OrderComposer{
		session:       session,
		orders:        orders,
		suggestions:   suggestions,
		ids:           ids,
		clock:         clock,
		phase:         PhaseSelectingClient,
		items:         []entities.OSItem{},
		labor:         "0",
		discount:      "0",
		paymentStatus: entities.PaymentStatusPendente,
	}
}

func (c *OrderComposer) Phase() ComposerPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// SelectClient picks the order's owner and moves on to vehicle selection. A
// nil client deselects: back to SELECTING_CLIENT with any chosen vehicle
// cleared. Items and problem text survive a reselection, as they do in the
// composer screen.
func (c *OrderComposer) SelectClient(client *entities.Client) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseFinalized {
		return ErrOrderAlreadyFinalized
	}
	if client == nil {
		c.client = nil
		c.vehicle = nil
		c.phase = PhaseSelectingClient
		return nil
	}
	cl := *client
	c.client = &cl
	c.vehicle = nil
	c.phase = PhaseSelectingVehicle
	return nil
}

func (c *OrderComposer) SelectVehicle(vehicle *entities.Vehicle) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseFinalized {
		return ErrOrderAlreadyFinalized
	}
	if c.client == nil {
		return ErrNoClientSelected
	}
	if vehicle == nil || vehicle.ClientID != c.client.ID {
		return ErrVehicleMismatch
	}
	v := *vehicle
	c.vehicle = &v
	c.phase = PhaseEditing
	return nil
}

// AddBlankItem appends an empty manual row the operator fills in afterwards.
func (c *OrderComposer) AddBlankItem() (entities.OSItem, error) {
	return c.AddItem("", 1, 0, entities.ItemKindPart)
}

func (c *OrderComposer) AddItem(description string, quantity, unitPrice float64, kind entities.ItemKind) (entities.OSItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return entities.OSItem{}, err
	}
	if quantity < 0 || unitPrice < 0 {
		return entities.OSItem{}, ErrInvalidItemValue
	}
	if kind == "" {
		kind = entities.ItemKindPart
	}
	it := entities.OSItem{
		ID:          c.ids.NewItemToken(),
		Description: strings.ToUpper(description),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Kind:        kind,
	}
	c.items = appendItem(c.items, it)
	return it, nil
}

// UpdateItem applies a field patch to the matching item. An unknown id is a
// deliberate silent no-op.
func (c *OrderComposer) UpdateItem(id string, patch ItemPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	c.items = patchItem(c.items, id, patch)
	return nil
}

// RemoveItem drops the matching item; an unknown id is a no-op.
func (c *OrderComposer) RemoveItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	c.items = removeItem(c.items, id)
	return nil
}

func (c *OrderComposer) SetProblem(problem string) error {
	return c.edit(func() { c.problem = problem })
}

func (c *OrderComposer) SetVehicleKm(km string) error {
	return c.edit(func() { c.vehicleKm = km })
}

func (c *OrderComposer) SetLabor(raw string) error {
	return c.edit(func() { c.labor = raw })
}

func (c *OrderComposer) SetDiscount(raw string) error {
	return c.edit(func() { c.discount = raw })
}

func (c *OrderComposer) SetPaymentStatus(status entities.PaymentStatus) error {
	return c.edit(func() { c.paymentStatus = status })
}

func (c *OrderComposer) edit(apply func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return err
	}
	apply()
	return nil
}

func (c *OrderComposer) editable() error {
	switch c.phase {
	case PhaseFinalized:
		return ErrOrderAlreadyFinalized
	case PhaseEditing:
		return nil
	default:
		return ErrEditingNotEnabled
	}
}

func (c *OrderComposer) Items() []entities.OSItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.OSItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *OrderComposer) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total()
}

func (c *OrderComposer) total() float64 {
	return ComputeTotal(c.items, ParseAmount(c.labor), ParseAmount(c.discount))
}

// ApplySuggestion runs the AI round trip for the current problem and vehicle
// and merges the result: suggested items are appended after the existing ones
// (quantity 1, PART, fresh ids) and the labor field is replaced. The merge is
// all-or-nothing; any provider or parse failure leaves items and labor
// untouched.
func (c *OrderComposer) ApplySuggestion(ctx context.Context) (entities.Suggestion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.editable(); err != nil {
		return entities.Suggestion{}, err
	}
	if c.suggestions == nil {
		return entities.Suggestion{}, ErrSuggestionUnavailable
	}

	model := ""
	if c.vehicle != nil {
		model = c.vehicle.Model
	}
	s, err := c.suggestions.Suggest(ctx, c.problem, model)
	if err != nil {
		return entities.Suggestion{}, err
	}

	batch := make([]entities.OSItem, 0, len(s.Items))
	for _, sg := range s.Items {
		batch = append(batch, entities.OSItem{
			ID:          c.ids.NewItemToken(),
			Description: strings.ToUpper(sg.Description),
			Quantity:    1,
			UnitPrice:   sg.Price,
			Kind:        entities.ItemKindPart,
		})
	}
	c.items = appendItems(c.items, batch)
	c.labor = strconv.FormatFloat(s.Labor, 'f', -1, 64)
	log.Printf("[composer] suggestion merged items=%d labor=%s", len(batch), c.labor)
	return s, nil
}

// Snapshot returns the current draft as a serializable ServiceOrder value
// with the derived total. Identifiers and timestamps are only stamped by
// Finalize.
func (c *OrderComposer) Snapshot() entities.ServiceOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finalized != nil {
		return *c.finalized
	}
	return c.buildOrder(entities.OSStatusRascunho)
}

func (c *OrderComposer) buildOrder(status entities.OSStatus) entities.ServiceOrder {
	o := entities.ServiceOrder{
		VehicleKm:     c.vehicleKm,
		Problem:       c.problem,
		Items:         append([]entities.OSItem{}, c.items...),
		LaborValue:    ParseAmount(c.labor),
		Discount:      ParseAmount(c.discount),
		TotalValue:    c.total(),
		Status:        status,
		PaymentStatus: c.paymentStatus,
	}
	if c.client != nil {
		o.ClientID = c.client.ID
		o.ClientName = c.client.Name
	}
	if c.vehicle != nil {
		o.VehicleID = c.vehicle.ID
		o.VehiclePlate = c.vehicle.Plate
		o.VehicleModel = c.vehicle.Model
	}
	return o
}

// Finalize locks the draft and persists it.
//
// Guard: a selected client AND vehicle AND an operator session AND a wired
// persistence sync are all required; otherwise nothing happens and
// ErrOrderNotReady is returned. The guard holds even when the caller's UI
// would have disabled the trigger.
//
// On success the order gets a fresh id, an OS number derived from the clock,
// timestamps, FINALIZADO status, and is appended to the full persisted
// collection (read, append, rewrite). A persistence failure surfaces to the
// caller and the in-memory draft is preserved so the operator can retry
// without re-entering anything.
func (c *OrderComposer) Finalize(ctx context.Context) (entities.ServiceOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseFinalized {
		return entities.ServiceOrder{}, ErrOrderAlreadyFinalized
	}
	if c.client == nil || c.vehicle == nil || c.session.IsZero() || c.orders == nil {
		return entities.ServiceOrder{}, ErrOrderNotReady
	}

	now := c.clock.Now().UTC()
	o := c.buildOrder(entities.OSStatusFinalizado)
	o.ID = c.ids.NewID()
	o.OSNumber = osNumber(now.UnixMilli())
	o.CreatedAt = now
	o.UpdatedAt = now

	log.Printf("[composer] finalize start owner=%s os_number=%s total=%.2f", c.session.Username, o.OSNumber, o.TotalValue)
	existing, err := c.orders.LoadOrders(ctx, c.session.Username)
	if err != nil {
		log.Printf("[composer] finalize load failed owner=%s err=%v", c.session.Username, err)
		return entities.ServiceOrder{}, err
	}
	if err := c.orders.SyncOrders(ctx, c.session.Username, append(existing, o)); err != nil {
		log.Printf("[composer] finalize sync failed owner=%s err=%v", c.session.Username, err)
		return entities.ServiceOrder{}, err
	}

	c.phase = PhaseFinalized
	c.finalized = &o
	log.Printf("[composer] finalize success owner=%s order_id=%s os_number=%s", c.session.Username, o.ID, o.OSNumber)
	return o, nil
}

// Finalized returns the persisted order once Finalize succeeded.
func (c *OrderComposer) Finalized() (entities.ServiceOrder, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finalized == nil {
		return entities.ServiceOrder{}, false
	}
	return *c.finalized, true
}

// osNumber derives the human-facing order number from a millisecond
// timestamp: KP- plus its last six digits. Readable, not globally unique
// beyond practical collision odds.
func osNumber(unixMilli int64) string {
	s := strconv.FormatInt(unixMilli, 10)
	if len(s) > 6 {
		s = s[len(s)-6:]
	}
	return fmt.Sprintf("KP-%s", s)
}
