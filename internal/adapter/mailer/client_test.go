package mailer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientRejectsBadURL(t *testing.T) {
	if _, err := NewHTTPClient(":://bad", "key", discardLogger()); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := NewHTTPClient("relative/path", "key", discardLogger()); err == nil {
		t.Fatal("expected error for non-absolute url")
	}
}

func TestHTTPClientSend(t *testing.T) {
	var got Message
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/send" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "api-key", discardLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	msg := Message{To: "client@example.com", From: "noreply@itl.dev", Subject: "hi", HTML: "<p>hi</p>"}
	if err := client.Send(context.Background(), msg); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got != msg {
		t.Fatalf("provider received %+v", got)
	}
	if auth != "Bearer api-key" {
		t.Fatalf("unexpected auth header %q", auth)
	}
}

func TestHTTPClientSendProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "", discardLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if err := client.Send(context.Background(), Message{To: "a@b.c"}); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestNopClientSwallowsMessages(t *testing.T) {
	client := NewNopClient(discardLogger())
	if err := client.Send(context.Background(), Message{To: "a@b.c"}); err != nil {
		t.Fatalf("nop client should never fail: %v", err)
	}
}

func TestServiceRendersTemplates(t *testing.T) {
	var sent []Message
	service, err := NewService(clientFunc(func(ctx context.Context, msg Message) error {
		sent = append(sent, msg)
		return nil
	}), "noreply@itl.dev")
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	err = service.OrderStatusChanged(context.Background(), "client@example.com", OrderStatusEmail{
		ClientName:  "ACME",
		OrderNumber: "ORD-2026-007",
		StatusName:  "In progress",
		PortalURL:   "https://portal.itl.dev",
	})
	if err != nil {
		t.Fatalf("order status email: %v", err)
	}

	err = service.InvoiceSent(context.Background(), "client@example.com", InvoiceEmail{
		ClientName:    "ACME",
		InvoiceNumber: "INV-2026-001",
		Total:         1500,
		DueDate:       "2026-09-30",
		PortalURL:     "https://portal.itl.dev",
	})
	if err != nil {
		t.Fatalf("invoice email: %v", err)
	}

	err = service.MilestoneReadyForReview(context.Background(), "client@example.com", MilestoneReviewEmail{
		ClientName:     "ACME",
		OrderNumber:    "ORD-2026-007",
		MilestoneTitle: "Design handoff",
		PortalURL:      "https://portal.itl.dev",
	})
	if err != nil {
		t.Fatalf("milestone email: %v", err)
	}

	err = service.PortalAccess(context.Background(), "client@example.com", PortalAccessEmail{
		ClientName: "ACME",
		AccessURL:  "https://portal.itl.dev/?token=abc",
	})
	if err != nil {
		t.Fatalf("portal email: %v", err)
	}

	if len(sent) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(sent))
	}
	if !strings.Contains(sent[0].HTML, "ORD-2026-007") || !strings.Contains(sent[0].HTML, "In progress") {
		t.Fatalf("order email body missing fields: %s", sent[0].HTML)
	}
	if !strings.Contains(sent[1].HTML, "1500.00") {
		t.Fatalf("invoice email body missing total: %s", sent[1].HTML)
	}
	if sent[1].Subject != "Invoice INV-2026-001" {
		t.Fatalf("unexpected subject %q", sent[1].Subject)
	}
	if !strings.Contains(sent[3].HTML, "token=abc") {
		t.Fatalf("portal email body missing link: %s", sent[3].HTML)
	}
	for _, msg := range sent {
		if msg.From != "noreply@itl.dev" {
			t.Fatalf("unexpected from address %q", msg.From)
		}
	}
}

type clientFunc func(ctx context.Context, msg Message) error

func (f clientFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }
