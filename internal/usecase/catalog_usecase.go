package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrMissingSession = errors.New("missing operator session")

// ICatalogUseCase exposes the operator's clients and vehicles to the order
// composer flow.
//
// These operations map to the composer screens:
//   - load once per session => LoadForSession()
//   - owner search box => FilterClients()
//   - vehicle picker => VehiclesOf()

type ICatalogUseCase interface {
	LoadForSession(ctx context.Context, session entities.UserSession) (entities.Catalog, error)
	FilterClients(ctx context.Context, session entities.UserSession, query string) ([]entities.Client, error)
	VehiclesOf(ctx context.Context, session entities.UserSession, clientID string) ([]entities.Vehicle, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) LoadForSession(ctx context.Context, session entities.UserSession) (entities.Catalog, error) {
	if session.IsZero() {
		return entities.Catalog{}, ErrMissingSession
	}
	cat, err := u.repo.LoadCatalog(ctx, session.Username)
	if err != nil {
		return entities.Catalog{}, err
	}
	if cat.Clients == nil {
		cat.Clients = []entities.Client{}
	}
	if cat.Vehicles == nil {
		cat.Vehicles = []entities.Vehicle{}
	}
	return cat, nil
}

func (u *CatalogUseCase) FilterClients(ctx context.Context, session entities.UserSession, query string) ([]entities.Client, error) {
	cat, err := u.LoadForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	return filterClients(cat.Clients, query), nil
}

func (u *CatalogUseCase) VehiclesOf(ctx context.Context, session entities.UserSession, clientID string) ([]entities.Vehicle, error) {
	cat, err := u.LoadForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	return vehiclesOf(cat.Vehicles, clientID), nil
}

// filterClients matches the query against client name (case- and
// accent-insensitive) or phone. An empty query returns nothing; there is no
// browse-all mode.
func filterClients(clients []entities.Client, query string) []entities.Client {
	term := strings.ToLower(foldAccents(strings.TrimSpace(query)))
	if term == "" {
		return []entities.Client{}
	}
	out := []entities.Client{}
	for _, c := range clients {
		name := strings.ToLower(foldAccents(c.Name))
		if strings.Contains(name, term) || strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}

func vehiclesOf(vehicles []entities.Vehicle, clientID string) []entities.Vehicle {
	out := []entities.Vehicle{}
	for _, v := range vehicles {
		if v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out
}

// foldAccents decomposes to NFD and drops combining marks, so "João" matches
// "joao". Transformers carry state; build a fresh chain per call.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
