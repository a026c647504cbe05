package dto

// Error codes surfaced in the "error" field of a Failure. Clients
// branch on these to direct the user to the right flow.
const (
	CodeUserDoesNotExist            = "USER_DOES_NOT_EXIST"
	CodeInvalidPassword             = "INVALID_PASSWORD"
	CodeUserAlreadyExists           = "USER_ALREADY_EXISTS"
	CodeUserAuthenticatedWithGoogle = "USER_AUTHENTICATED_WITH_GOOGLE"
)

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type GoogleAuthRequest struct {
	AccessToken string `json:"accessToken"`
}

type RecoveryRequest struct {
	Email string `json:"email"`
}

type UserResponse struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

type SignInResponse struct {
	Status bool         `json:"status"`
	Token  string       `json:"token"`
	User   UserResponse `json:"user"`
}

type SignUpResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Failure is the domain-error shape: status=false plus a human message
// and a machine error code.
type Failure struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type StatusResponse struct {
	Status bool `json:"status"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
