package dto

// StatusRequest describes order-status creation payload.
type StatusRequest struct {
	Name         string `json:"name" binding:"required"`
	Color        string `json:"color"`
	Position     int    `json:"position"`
	IsFinal      bool   `json:"is_final"`
	NotifyClient bool   `json:"notify_client"`
}

// StatusResponse describes an order status.
type StatusResponse struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Color        string `json:"color,omitempty"`
	Position     int    `json:"position"`
	IsInitial    bool   `json:"is_initial"`
	IsFinal      bool   `json:"is_final"`
	NotifyClient bool   `json:"notify_client"`
}
