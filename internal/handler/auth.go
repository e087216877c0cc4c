package handler

import (
	"net/http"

	"github.com/forumapi-dev/forumapi/internal/api"
	"github.com/forumapi-dev/forumapi/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.users.Register(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, api.AddedUserResponse{AddedUser: user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	tokens, err := h.auth.Login(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, tokens)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body api.RefreshTokenRequest
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodySize), &body); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "harus mengirimkan token refresh")
		return
	}

	accessToken, err := h.auth.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, api.AccessTokenResponse{AccessToken: accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var body api.RefreshTokenRequest
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodySize), &body); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "harus mengirimkan token refresh")
		return
	}

	if err := h.auth.Logout(r.Context(), body.RefreshToken); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
