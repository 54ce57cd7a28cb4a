package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"tush00nka/bbbab_forums/internal/pkg/httputils"
	"tush00nka/bbbab_forums/internal/service"
)

type ForumHandler struct {
	forumService service.ForumService
	identity     Identity
}

func NewForumHandler(forumService service.ForumService, identity Identity) *ForumHandler {
	return &ForumHandler{forumService: forumService, identity: identity}
}

// RegisterRoutes mounts forum queries and mutations. mutationMiddleware
// wraps only the routes that change state.
func (h *ForumHandler) RegisterRoutes(router *mux.Router, mutationMiddleware ...mux.MiddlewareFunc) {
	router.HandleFunc("/forums", h.listForums).Methods("GET", "OPTIONS")
	router.HandleFunc("/forums/{forumId}", h.getForum).Methods("GET", "OPTIONS")
	router.HandleFunc("/forums/{forumId}/messages", h.getMessages).Methods("GET", "OPTIONS")

	mutate := func(fn http.HandlerFunc) http.Handler {
		var handler http.Handler = fn
		for i := len(mutationMiddleware) - 1; i >= 0; i-- {
			handler = mutationMiddleware[i].Middleware(handler)
		}
		return handler
	}
	router.Handle("/forums", mutate(h.createForum)).Methods("POST")
	router.Handle("/forums/{forumId}/join", mutate(h.joinForum)).Methods("POST")
	router.Handle("/forums/{forumId}/messages", mutate(h.postMessage)).Methods("POST")
}

// @Summary List forums
// @ID get-forums
// @Produce json
// @Success 200 {object} []model.ForumView
// @Router /forums [get]
func (h *ForumHandler) listForums(w http.ResponseWriter, r *http.Request) {
	forums, err := h.forumService.ListForums()
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, forums)
}

// @Summary Get forum
// @ID get-forum
// @Produce json
// @Param forumId path string true "Forum ID"
// @Success 200 {object} model.ForumView
// @Failure 404 {object} response.ErrorResponse
// @Router /forums/{forumId} [get]
func (h *ForumHandler) getForum(w http.ResponseWriter, r *http.Request) {
	forum, err := h.forumService.GetForum(mux.Vars(r)["forumId"])
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, forum)
}

// @Summary Get messages
// @Description Messages of a forum, most recent first
// @ID get-messages
// @Produce json
// @Param forumId path string true "Forum ID"
// @Success 200 {object} []model.MessageView
// @Failure 404 {object} response.ErrorResponse
// @Router /forums/{forumId}/messages [get]
func (h *ForumHandler) getMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.forumService.GetMessages(mux.Vars(r)["forumId"])
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, messages)
}

// @Summary Create forum
// @ID create-forum
// @Accept json
// @Produce json
// @Param forumData body createForumRequest true "Forum data"
// @Success 201 {object} model.ForumView
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forums [post]
func (h *ForumHandler) createForum(w http.ResponseWriter, r *http.Request) {
	var request createForumRequest
	if err := decodeRequest(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, err.Error())
		return
	}

	forum, err := h.forumService.CreateForum(*request.Name, actingUserID(h.identity, r, request.UserID))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, forum)
}

// @Summary Join forum
// @ID join-forum
// @Accept json
// @Produce json
// @Param forumId path string true "Forum ID"
// @Param joinData body joinForumRequest false "Join data"
// @Success 200 {object} model.ForumAndUser
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /forums/{forumId}/join [post]
func (h *ForumHandler) joinForum(w http.ResponseWriter, r *http.Request) {
	var request joinForumRequest
	if err := decodeRequest(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.forumService.JoinForum(actingUserID(h.identity, r, request.UserID), mux.Vars(r)["forumId"])
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, result)
}

// @Summary Post message
// @ID post-message
// @Accept json
// @Produce json
// @Param forumId path string true "Forum ID"
// @Param messageData body postMessageRequest true "Message data"
// @Success 201 {object} model.MessageView
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forums/{forumId}/messages [post]
func (h *ForumHandler) postMessage(w http.ResponseWriter, r *http.Request) {
	var request postMessageRequest
	if err := decodeRequest(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.forumService.PostMessage(actingUserID(h.identity, r, request.UserID), mux.Vars(r)["forumId"], *request.Text)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, msg)
}
