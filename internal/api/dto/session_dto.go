package dto

// LoginRequest is the panel login payload.
type LoginRequest struct {
	Document string `json:"documento"`
	Password string `json:"password"`
}

// ProfileResponse mirrors the persisted session profile.
type ProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Role  string `json:"rol"`
	Email string `json:"email"`
}
