package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Clients() ClientRepository
	OrderStatuses() OrderStatusRepository
	Orders() OrderRepository
	Milestones() MilestoneRepository
	Tasks() TaskRepository
	Invoices() InvoiceRepository
	Proposals() ProposalRepository
	Tickets() TicketRepository
	Notifications() NotificationRepository
	TimeEntries() TimeEntryRepository
	Settings() SettingsRepository
}
