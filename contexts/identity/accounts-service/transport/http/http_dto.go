package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SignUpRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Company      string `json:"company,omitempty"`
	Organisation string `json:"organisation,omitempty"`
}

type SignUpResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Token   string `json:"token"`
}

type ProfileResponse struct {
	Message string     `json:"message"`
	Profile ProfileDTO `json:"profile"`
}

type ProfileDTO struct {
	UserID       string   `json:"user_id"`
	Role         string   `json:"role"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Interests    []string `json:"interests,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Organisation string   `json:"organisation,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Topics       []string `json:"topics,omitempty"`
	Company      string   `json:"company,omitempty"`
}

type UpdateProfileRequest struct {
	Name         string   `json:"name"`
	Interests    []string `json:"interests,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Organisation string   `json:"organisation,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Topics       []string `json:"topics,omitempty"`
	Company      string   `json:"company,omitempty"`
}
