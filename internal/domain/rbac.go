package domain

// EnforceRequest asks whether a role may perform action on resource.
type EnforceRequest struct {
	ProfileID string `json:"profile_id"`
	CompanyID string `json:"company_id" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
