package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kaenpro_os/internal/adapter/http/handlers/mocks"
	"kaenpro_os/internal/adapter/http/middleware"
	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Session())
	r.GET("/v1/clients", h.SearchClients)
	r.GET("/v1/clients/:client_id/vehicles", h.ListVehicles)
	return r
}

func TestCatalogHandler_SearchClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().FilterClients(gomock.Any(), entities.UserSession{}, "joao").Return(nil, usecase.ErrMissingSession)

		r := newCatalogRouter(NewCatalogHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/v1/clients?q=joao", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		session := entities.UserSession{Username: "owner", Role: entities.SessionRoleOwner}
		uc.EXPECT().FilterClients(gomock.Any(), session, "joao").Return(
			[]entities.Client{{ID: "c1", Name: "João Silva", Phone: "11 99999-8888"}}, nil)

		r := newCatalogRouter(NewCatalogHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/v1/clients?q=joao", nil)
		req.Header.Set("X-Session-User", "owner")
		req.Header.Set("X-Session-Role", "Owner")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0]["name"] != "João Silva" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().FilterClients(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		r := newCatalogRouter(NewCatalogHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/v1/clients?q=x", nil)
		req.Header.Set("X-Session-User", "owner")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListVehicles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	uc.EXPECT().VehiclesOf(gomock.Any(), gomock.Any(), "c1").Return(
		[]entities.Vehicle{{ID: "v1", ClientID: "c1", Plate: "ABC-1234", Model: "Gol 1.6"}}, nil)

	r := newCatalogRouter(NewCatalogHandler(uc))
	req := httptest.NewRequest(http.MethodGet, "/v1/clients/c1/vehicles", nil)
	req.Header.Set("X-Session-User", "owner")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 1 || body[0]["plate"] != "ABC-1234" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
