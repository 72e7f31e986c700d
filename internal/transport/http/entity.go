package httpt

// ErrorResponse is the error body for every non-2xx answer.
type ErrorResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// inventoryRequest is the write payload for create and update. Pointer fields
// distinguish absent keys from zero values so required checks fire on both.
type inventoryRequest struct {
	Name                *string `json:"name"                 binding:"required,min=1,max=63"`
	Quantity            *int64  `json:"quantity"             binding:"required,gte=0"`
	RestockLevel        *int64  `json:"restock_level"        binding:"required,gte=0"`
	Condition           *string `json:"condition"            binding:"required"`
	RestockingAvailable *bool   `json:"restocking_available" binding:"required"`
}
