package domain

import (
	"encoding/json"
	"regexp"

	"github.com/forumapi-dev/forumapi/internal/errors"
)

const MaxUsernameLen = 50

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var (
	registerUserSchema   = requiredStrings("REGISTER_USER", "username", "password", "fullname")
	registeredUserSchema = requiredStrings("REGISTERED_USER", "id", "username", "fullname")
	userLoginSchema      = requiredStrings("USER_LOGIN", "username", "password")
	newAuthSchema        = requiredStrings("NEW_AUTH", "accessToken", "refreshToken")
)

type RegisterUser struct {
	username string
	password string
	fullname string
}

func NewRegisterUser(p Payload) (RegisterUser, error) {
	if err := registerUserSchema.Validate(p); err != nil {
		return RegisterUser{}, err
	}
	username := p.str("username")
	if len(username) > MaxUsernameLen {
		return RegisterUser{}, &errors.InvariantError{Message: "tidak dapat membuat user baru karena karakter username melebihi batas limit"}
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, &errors.InvariantError{Message: "tidak dapat membuat user baru karena username mengandung karakter terlarang"}
	}
	return RegisterUser{username: username, password: p.str("password"), fullname: p.str("fullname")}, nil
}

func (u RegisterUser) Username() string { return u.username }
func (u RegisterUser) Password() string { return u.password }
func (u RegisterUser) Fullname() string { return u.fullname }

// WithPassword returns a copy whose password is replaced, normally by its hash.
func (u RegisterUser) WithPassword(password string) RegisterUser {
	u.password = password
	return u
}

type RegisteredUser struct {
	id       string
	username string
	fullname string
}

func NewRegisteredUser(p Payload) (RegisteredUser, error) {
	if err := registeredUserSchema.Validate(p); err != nil {
		return RegisteredUser{}, err
	}
	return RegisteredUser{id: p.str("id"), username: p.str("username"), fullname: p.str("fullname")}, nil
}

func (u RegisteredUser) Id() string       { return u.id }
func (u RegisteredUser) Username() string { return u.username }
func (u RegisteredUser) Fullname() string { return u.fullname }

func (u RegisteredUser) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id       string `json:"id"`
		Username string `json:"username"`
		Fullname string `json:"fullname"`
	}{u.id, u.username, u.fullname})
}

type UserLogin struct {
	username string
	password string
}

func NewUserLogin(p Payload) (UserLogin, error) {
	if err := userLoginSchema.Validate(p); err != nil {
		return UserLogin{}, err
	}
	return UserLogin{username: p.str("username"), password: p.str("password")}, nil
}

func (u UserLogin) Username() string { return u.username }
func (u UserLogin) Password() string { return u.password }

// NewAuth is the token pair handed out on login.
type NewAuth struct {
	accessToken  string
	refreshToken string
}

func NewNewAuth(p Payload) (NewAuth, error) {
	if err := newAuthSchema.Validate(p); err != nil {
		return NewAuth{}, err
	}
	return NewAuth{accessToken: p.str("accessToken"), refreshToken: p.str("refreshToken")}, nil
}

func (a NewAuth) AccessToken() string  { return a.accessToken }
func (a NewAuth) RefreshToken() string { return a.refreshToken }

func (a NewAuth) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}{a.accessToken, a.refreshToken})
}
