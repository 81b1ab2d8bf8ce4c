package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/flightmenu/menu-ocr-service/internal/ai"
	"github.com/flightmenu/menu-ocr-service/internal/auth"
	"github.com/flightmenu/menu-ocr-service/internal/db"
	"github.com/flightmenu/menu-ocr-service/internal/menu"
	"github.com/flightmenu/menu-ocr-service/internal/models"
	"github.com/flightmenu/menu-ocr-service/internal/storage"
)

// GetMenus returns the authenticated user's parsed menus, paginated.
func (h *Handler) GetMenus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if db.Pool == nil {
		h.sendError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	menus, err := db.GetMenus(ctx, claims.UserID, limit, offset)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, fmt.Sprintf("failed to get menus: %v", err))
		return
	}

	total, err := db.CountMenus(ctx, claims.UserID)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "failed to count menus")
		return
	}

	// Generate presigned URLs for images
	for i := range menus {
		if menus[i].ImageURL != "" && storage.Client != nil {
			if presignedURL, err := storage.GetPresignedURL(ctx, menus[i].ImageURL); err == nil {
				menus[i].ImageURL = presignedURL
			}
		}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"menus":   menus,
		"count":   len(menus),
		"total":   total,
	})
}

// GetMenu returns a single parsed menu
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if db.Pool == nil {
		h.sendError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	menuID := mux.Vars(r)["id"]
	stored, err := db.GetMenuByID(ctx, claims.UserID, menuID)
	if err != nil {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("menu not found: %v", err))
		return
	}

	if stored.ImageURL != "" && storage.Client != nil {
		if presignedURL, err := storage.GetPresignedURL(ctx, stored.ImageURL); err == nil {
			stored.ImageURL = presignedURL
		}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"menu":    stored,
	})
}

// DeleteMenu removes a parsed menu and its stored photo
func (h *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if db.Pool == nil {
		h.sendError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	menuID := mux.Vars(r)["id"]

	// Delete stored photo first (ignore errors)
	if storage.Client != nil {
		if stored, err := db.GetMenuByID(ctx, claims.UserID, menuID); err == nil && stored.ImageURL != "" {
			_ = storage.DeleteImage(ctx, stored.ImageURL)
		}
	}

	if err := db.DeleteMenu(ctx, claims.UserID, menuID); err != nil {
		h.sendError(w, http.StatusInternalServerError, "failed to delete menu")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "menu deleted",
	})
}

// SelectRequest is the body of POST /api/menu/{id}/select
type SelectRequest struct {
	ItemIndex int `json:"itemIndex"`
}

// SelectMenuItem toggles a dish selection. Main courses are exclusive per
// service: selecting one deselects any other selected main with the same
// timing.
func (h *Handler) SelectMenuItem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if db.Pool == nil {
		h.sendError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	menuID := mux.Vars(r)["id"]
	stored, err := db.GetMenuByID(ctx, claims.UserID, menuID)
	if err != nil {
		h.sendError(w, http.StatusNotFound, "menu not found")
		return
	}

	if err := menu.ToggleSelection(stored.Items, req.ItemIndex); err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := db.UpdateMenuItems(ctx, claims.UserID, menuID, stored.Items); err != nil {
		h.sendError(w, http.StatusInternalServerError, "failed to update menu")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"items":   stored.Items,
	})
}

// GetMenuImage streams the stored menu photo through the API, so the mobile
// app can fetch it with its JWT instead of a MinIO credential.
func (h *Handler) GetMenuImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if db.Pool == nil || storage.Client == nil {
		h.sendError(w, http.StatusServiceUnavailable, "storage not available")
		return
	}

	menuID := mux.Vars(r)["id"]
	stored, err := db.GetMenuByID(ctx, claims.UserID, menuID)
	if err != nil || stored.ImageURL == "" {
		h.sendError(w, http.StatusNotFound, "image not found")
		return
	}

	presignedURL, err := storage.GetPresignedURL(ctx, stored.ImageURL)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "failed to resolve image")
		return
	}

	resp, err := http.Get(presignedURL)
	if err != nil {
		h.sendError(w, http.StatusBadGateway, "failed to fetch image")
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", resp.Header.Get("Content-Type"))
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Question string            `json:"question"`
	MenuID   string            `json:"menuId,omitempty"`
	Items    []models.MenuItem `json:"items,omitempty"`
	Provider string            `json:"provider,omitempty"`
	Model    string            `json:"model,omitempty"`
}

// Chat answers a passenger question about a parsed menu. The menu comes
// either inline in the request or from a stored menu by ID.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		h.sendError(w, http.StatusBadRequest, "question is required")
		return
	}

	items := req.Items
	if len(items) == 0 && req.MenuID != "" {
		if db.Pool == nil {
			h.sendError(w, http.StatusServiceUnavailable, "database not available")
			return
		}
		stored, err := db.GetMenuByID(ctx, claims.UserID, req.MenuID)
		if err != nil {
			h.sendError(w, http.StatusNotFound, "menu not found")
			return
		}
		items = stored.Items
	}
	if len(items) == 0 {
		h.sendError(w, http.StatusBadRequest, "no menu items provided (use 'items' or 'menuId')")
		return
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = h.config.AI.DefaultProvider
	}
	provider, err := h.createProvider(providerName, req.Model)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := ai.NewAssistant(provider).Ask(req.Question, items)
	if err != nil {
		h.sendError(w, http.StatusBadGateway, fmt.Sprintf("chat failed: %v", err))
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"answer":  answer,
	})
}
