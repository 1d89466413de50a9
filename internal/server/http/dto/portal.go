package dto

// PortalAccessRequest describes portal access link request payload.
type PortalAccessRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// DeadlineReportResponse summarizes one deadline sweep.
type DeadlineReportResponse struct {
	Milestones           int `json:"milestones"`
	Tasks                int `json:"tasks"`
	NotificationsCreated int `json:"notifications_created"`
}
