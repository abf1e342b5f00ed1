package httpapi

import (
	"net/http"

	"github.com/mmynk/nutrilog/internal/models"
)

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Gender string  `json:"gender"`
	Goal   *string `json:"goal"`
}

type logMealRequest struct {
	UserName  string   `json:"userName"`
	MealType  string   `json:"mealType"`
	FoodItems []string `json:"foodItems"`
}

// Pointers tell an absent field (422) from an empty one (400).
type webhookRequest struct {
	UserName *string `json:"userName"`
	Message  *string `json:"message"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := &models.User{
		Name:   req.Name,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
		Gender: models.Gender(req.Gender),
		Goal:   req.Goal,
	}
	if err := h.svc.Register(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "User register successfully!"})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context(), r.PathValue("userName"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) logMeal(w http.ResponseWriter, r *http.Request) {
	var req logMealRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	meal := &models.Meal{
		UserName:  req.UserName,
		MealType:  models.MealType(req.MealType),
		FoodItems: req.FoodItems,
		Source:    models.SourceAPI,
	}
	if err := h.svc.LogMeal(r.Context(), meal); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Meal registered successfully!"})
}

func (h *Handler) mealLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.MealLogs(r.Context(), r.PathValue("userName"), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.DailyStatus(r.Context(), r.PathValue("userName"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserName == nil || req.Message == nil {
		writeDetail(w, http.StatusUnprocessableEntity, "userName and message fields are required")
		return
	}

	res, err := h.svc.Webhook(r.Context(), *req.UserName, *req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListFoods())
}
