package types

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type CheckLoginResponse struct {
	LoggedIn bool   `json:"loggedin"`
	Name     string `json:"name"`
}
