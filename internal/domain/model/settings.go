package model

// Counter names understood by the sequence allocator.
const (
	CounterOrders    = "order"
	CounterInvoices  = "invoice"
	CounterProposals = "proposal"
)

// Settings is the singleton row carrying document numbering state. The row id
// is always "default".
type Settings struct {
	ID                 string
	NextOrderNumber    int64
	NextInvoiceNumber  int64
	NextProposalNumber int64
	OrderPrefix        string
	InvoicePrefix      string
	ProposalPrefix     string
}
