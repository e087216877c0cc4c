package api

import "github.com/forumapi-dev/forumapi/internal/domain"

// Request DTOs. Entity payloads (users, threads, comments, replies) are
// decoded into domain.Payload and validated by the entity schemas instead.

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Response DTOs, wrapped in the success envelope

type AddedUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type AddedThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type ReadinessResponse struct {
	Storage string `json:"storage"`
}
