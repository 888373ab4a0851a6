package liteview

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davegonzalez/Litview/internal/app/pkg/errorx"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
)

func TestClientSubmit(t *testing.T) {
	var gotAppKey, gotPath string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAppKey = r.Header.Get("appkey")
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(goodReply))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key", "acct-42", logger.NewNop())
	reply, err := client.Submit(context.Background(), sampleOrder())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if gotAppKey != "secret-key" {
		t.Errorf("appkey header = %q, want secret-key", gotAppKey)
	}
	if gotPath != "/order/submit/acct-42" {
		t.Errorf("path = %q, want /order/submit/acct-42", gotPath)
	}
	if !strings.Contains(string(gotBody), "<order_number>LB-482</order_number>") {
		t.Error("submitted body is not the fulfillment document")
	}
	if reply.OrderNumber != "LV123" || reply.ClientOrderNumber != "SQ999" {
		t.Errorf("unexpected reply: %+v", reply)
	}
}

func TestClientSubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid SKU"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key", "acct-42", logger.NewNop())
	_, err := client.Submit(context.Background(), sampleOrder())

	var partnerErr *errorx.PartnerError
	if !errors.As(err, &partnerErr) {
		t.Fatalf("expected PartnerError, got %v", err)
	}
	if partnerErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", partnerErr.StatusCode)
	}
	if partnerErr.Body != "Invalid SKU" {
		t.Errorf("body = %q, want Invalid SKU", partnerErr.Body)
	}
}

func TestClientSubmitMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<toolkit></toolkit>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key", "acct-42", logger.NewNop())
	_, err := client.Submit(context.Background(), sampleOrder())

	if !errors.Is(err, errorx.ErrMalformedReply) {
		t.Fatalf("expected ErrMalformedReply, got %v", err)
	}
}
