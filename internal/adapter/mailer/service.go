package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// OrderStatusEmail is the payload of the "order status changed" message.
type OrderStatusEmail struct {
	ClientName  string
	OrderNumber string
	StatusName  string
	PortalURL   string
}

// InvoiceEmail is the payload of the "invoice sent" message.
type InvoiceEmail struct {
	ClientName    string
	InvoiceNumber string
	Total         float64
	DueDate       string
	PortalURL     string
}

// MilestoneReviewEmail is the payload of the "milestone ready for review" message.
type MilestoneReviewEmail struct {
	ClientName     string
	OrderNumber    string
	MilestoneTitle string
	PortalURL      string
}

// PortalAccessEmail is the payload of the "portal access link" message.
type PortalAccessEmail struct {
	ClientName string
	AccessURL  string
}

// Service renders the four message kinds and hands them to the provider
// client. Every call site treats a returned error as log-and-continue; a
// failed email never rolls back the workflow that triggered it.
type Service struct {
	client    Client
	from      string
	templates *template.Template
}

// NewService parses the embedded templates and wraps the client.
func NewService(client Client, from string) (*Service, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	return &Service{client: client, from: from, templates: templates}, nil
}

// OrderStatusChanged emails the client about an order status transition.
func (s *Service) OrderStatusChanged(ctx context.Context, to string, data OrderStatusEmail) error {
	subject := fmt.Sprintf("Order %s: status changed to %s", data.OrderNumber, data.StatusName)
	return s.send(ctx, to, subject, "order_status_changed.tmpl", data)
}

// InvoiceSent emails the invoice to the client.
func (s *Service) InvoiceSent(ctx context.Context, to string, data InvoiceEmail) error {
	subject := fmt.Sprintf("Invoice %s", data.InvoiceNumber)
	return s.send(ctx, to, subject, "invoice_sent.tmpl", data)
}

// MilestoneReadyForReview asks the client to approve a completed milestone.
func (s *Service) MilestoneReadyForReview(ctx context.Context, to string, data MilestoneReviewEmail) error {
	subject := fmt.Sprintf("Order %s: milestone ready for your review", data.OrderNumber)
	return s.send(ctx, to, subject, "milestone_review.tmpl", data)
}

// PortalAccess emails a portal access link to the client.
func (s *Service) PortalAccess(ctx context.Context, to string, data PortalAccessEmail) error {
	return s.send(ctx, to, "Your client portal access link", "portal_access.tmpl", data)
}

func (s *Service) send(ctx context.Context, to, subject, templateName string, data any) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}
	return s.client.Send(ctx, Message{
		To:      to,
		From:    s.from,
		Subject: subject,
		HTML:    body.String(),
	})
}
