package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quickbite/auth"
	"quickbite/internal/restaurant-svc/domain"
	"quickbite/internal/restaurant-svc/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface) *Handler {
	return &Handler{Catalog: catalog}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", auth.RequireRole(h.createRestaurant, auth.RoleRestaurant)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", auth.RequireRole(h.updateRestaurant, auth.RoleRestaurant)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/online", auth.RequireRole(h.setOnline, auth.RoleRestaurant)).Methods("PUT")

	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", auth.RequireRole(h.addMenuItem, auth.RoleRestaurant)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}", auth.RequireRole(h.updateMenuItem, auth.RoleRestaurant)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/categories", h.getCategories).Methods("GET")
}

func writeData(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": msg})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrMenuItemNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRestaurantExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidRestaurant),
		errors.Is(err, service.ErrInvalidMenuItem):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ownRestaurant guards writes: a restaurant token may only modify the
// restaurant whose id matches its subject.
func ownRestaurant(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if claims := auth.FromContext(r.Context()); claims == nil || claims.UserID != id {
		writeError(w, http.StatusForbidden, "not your restaurant")
		return 0, false
	}
	return id, true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Keyed by the owner's token subject so ownRestaurant can compare
	// path id against claims directly.
	rest.ID = auth.FromContext(r.Context()).UserID

	if err := h.Catalog.CreateRestaurant(r.Context(), &rest); err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := ownRestaurant(w, r)
	if !ok {
		return
	}

	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rest.ID = id

	if err := h.Catalog.UpdateRestaurant(r.Context(), &rest); err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, rest)
}

func (h *Handler) setOnline(w http.ResponseWriter, r *http.Request) {
	id, ok := ownRestaurant(w, r)
	if !ok {
		return
	}

	var payload struct {
		Online bool `json:"online"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Catalog.SetOnline(r.Context(), id, payload.Online); err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"is_online": payload.Online})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	items, err := h.Catalog.Menu(r.Context(), id, r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, items)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	categories, err := h.Catalog.Categories(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, categories)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := ownRestaurant(w, r)
	if !ok {
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item.RestaurantID = id

	if err := h.Catalog.AddMenuItem(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := ownRestaurant(w, r)
	if !ok {
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item.ID, _ = strconv.Atoi(mux.Vars(r)["itemId"])
	item.RestaurantID = id

	if err := h.Catalog.UpdateMenuItem(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, item)
}
