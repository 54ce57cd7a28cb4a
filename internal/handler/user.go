package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"tush00nka/bbbab_forums/internal/pkg/httputils"
	"tush00nka/bbbab_forums/internal/service"
)

type UserHandler struct {
	forumService service.ForumQueries
}

func NewUserHandler(forumService service.ForumQueries) *UserHandler {
	return &UserHandler{forumService: forumService}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.listUsers).Methods("GET", "OPTIONS")
	router.HandleFunc("/users/{userId}/forums", h.getUserJoinedForums).Methods("GET", "OPTIONS")
}

// @Summary List users
// @Description All seeded users with the forums they joined
// @ID get-users
// @Produce json
// @Success 200 {object} []model.UserView
// @Router /users [get]
func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.forumService.ListUsers()
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, users)
}

// @Summary Forums of a user
// @ID get-user-joined-forums
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} []model.ForumView
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{userId}/forums [get]
func (h *UserHandler) getUserJoinedForums(w http.ResponseWriter, r *http.Request) {
	forums, err := h.forumService.GetUserJoinedForums(mux.Vars(r)["userId"])
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, forums)
}
