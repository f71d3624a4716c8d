package http

import (
	"log/slog"
	"net/http"

	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/domain/sidebar"
	"github.com/atlashr/attendance-backend-go/internal/handler/http/response"
)

type SidebarHandler interface {
	GetItems(w http.ResponseWriter, r *http.Request)
}

type sidebarHandlerImpl struct {
	sidebarService sidebar.SidebarService
}

func NewSidebarHandler(sidebarService sidebar.SidebarService) SidebarHandler {
	return &sidebarHandlerImpl{
		sidebarService: sidebarService,
	}
}

// GetItems implements SidebarHandler.
func (h *sidebarHandlerImpl) GetItems(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	items, err := h.sidebarService.GetItems(r.Context(), identity)
	if err != nil {
		slog.Error("Sidebar service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}
