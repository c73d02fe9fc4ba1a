package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"wirralclean/internal/models"
)

func TestRelay_Submit(t *testing.T) {
	var got models.Submission
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, but got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" || r.Header.Get("Accept") != "application/json" {
			t.Errorf("Expected JSON headers, but got %v", r.Header)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Expected a JSON body, but got %v", err)
		}
		w.Write([]byte(`{"success":"true","message":"The form was submitted successfully."}`))
	}))
	defer server.Close()

	relay := NewRelay(server.URL, time.Second)
	sub := QuoteSubmission(models.QuoteForm{Name: "Sam", Email: "sam@example.com", Phone: "0151"}, SubjectQuote)
	if err := relay.Submit(context.Background(), sub); err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	if got["name"] != "Sam" || got[FieldSubject] != SubjectQuote {
		t.Errorf("Expected the quote payload, but got %v", got)
	}
}

func TestRelay_SubmitFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"success":"true"}`},
		{"success false", http.StatusOK, `{"success":"false","message":"nope"}`},
		{"missing success", http.StatusOK, `{}`},
		{"not json", http.StatusOK, `<html></html>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			err := NewRelay(server.URL, time.Second).Submit(context.Background(), models.Submission{})
			if err == nil {
				t.Fatal("Expected an error, but got nil")
			}
		})
	}

	t.Run("rejections wrap ErrRelayRejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false}`))
		}))
		defer server.Close()
		err := NewRelay(server.URL, time.Second).Submit(context.Background(), models.Submission{})
		if !errors.Is(err, ErrRelayRejected) {
			t.Errorf("Expected ErrRelayRejected, but got %v", err)
		}
	})
}

func TestRelay_DispatchAndWait(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	relay := NewRelay(server.URL, time.Second)
	relay.Dispatch(models.Submission{"name": "A"})
	relay.Dispatch(models.Submission{"name": "B"})
	relay.Wait()

	mu.Lock()
	defer mu.Unlock()
	if calls != 2 {
		t.Errorf("Expected 2 relay calls, but got %d", calls)
	}
}

func TestRelay_DispatchSwallowsErrors(t *testing.T) {
	relay := NewRelay("http://127.0.0.1:1", 100*time.Millisecond)
	relay.Dispatch(models.Submission{"name": "A"})
	relay.Wait()
}
