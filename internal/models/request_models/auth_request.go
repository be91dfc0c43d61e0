package request_models

type AdminTokenRequest struct {
	Password string `json:"password" binding:"required"`
}
