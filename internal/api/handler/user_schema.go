package handler

// errorResponse is the standard error envelope returned on 400/500
// responses. Not-found and unauthorized outcomes render plain text instead;
// see the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// userResponse is the external view of an account. The password hash has no
// field here at all, so it cannot leak through serialization.
type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type getUserResponse struct {
	User userResponse `json:"user"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}

type loginResponse struct {
	Token string `json:"token"`
}
