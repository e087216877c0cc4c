package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumapi-dev/forumapi/internal/api"
	mw "github.com/forumapi-dev/forumapi/internal/middleware"
	"github.com/forumapi-dev/forumapi/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
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
	payload["threadId"] = chi.URLParam(r, "threadId")
	payload["commentId"] = chi.URLParam(r, "commentId")
	payload["owner"] = user.UserId

	reply, err := h.replies.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyResponse{AddedReply: reply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}

	err := h.replies.Delete(r.Context(),
		chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), chi.URLParam(r, "replyId"), user.UserId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
