package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumapi-dev/forumapi/internal/api"
	mw "github.com/forumapi-dev/forumapi/internal/middleware"
	"github.com/forumapi-dev/forumapi/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}

	payload, err := readPayload(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	payload["owner"] = user.UserId

	thread, err := h.threads.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: thread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.threads.GetDetail(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}
