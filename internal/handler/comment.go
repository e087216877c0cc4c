package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumapi-dev/forumapi/internal/api"
	mw "github.com/forumapi-dev/forumapi/internal/middleware"
	"github.com/forumapi-dev/forumapi/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
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
	payload["owner"] = user.UserId

	comment, err := h.comments.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: comment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}

	err := h.comments.Delete(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.UserId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}

	err := h.likes.Toggle(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.UserId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
