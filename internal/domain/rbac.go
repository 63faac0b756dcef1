package domain

// EnforceRequest asks whether a role may perform action on resource.
type EnforceRequest struct {
	Role     Role   `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
