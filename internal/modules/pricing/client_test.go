package pricing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taxifare/internal/modules/ride"
)

func TestClient_Predict_SendsQuery(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fare": 9.37}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/predict", 0)
	resp, err := c.Predict(context.Background(), ride.Build(ride.Demo()))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if resp["fare"] != 9.37 {
		t.Errorf("fare = %v, want 9.37", resp["fare"])
	}

	if got.Method != http.MethodGet {
		t.Errorf("method = %s, want GET", got.Method)
	}
	if got.URL.Path != "/predict" {
		t.Errorf("path = %s, want /predict", got.URL.Path)
	}
	q := got.URL.Query()
	want := map[string]string{
		"pickup_datetime":   "2023-08-15 14:30:00",
		"pickup_longitude":  "-73.985428",
		"pickup_latitude":   "40.758896",
		"dropoff_longitude": "-73.973057",
		"dropoff_latitude":  "40.764356",
		"passenger_count":   "2",
	}
	for k, v := range want {
		if q.Get(k) != v {
			t.Errorf("query %s = %q, want %q", k, q.Get(k), v)
		}
	}
}

func TestClient_Predict_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, wantErr: ErrUnexpectedStatus},
		{name: "validation error", status: http.StatusUnprocessableEntity, body: `{"detail":[]}`, wantErr: ErrUnexpectedStatus},
		{name: "html body", status: http.StatusOK, body: `<html>maintenance</html>`, wantErr: ErrDecodeResponse},
		{name: "json array", status: http.StatusOK, body: `[1,2]`, wantErr: ErrDecodeResponse},
		{name: "json null", status: http.StatusOK, body: `null`, wantErr: ErrDecodeResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, 0).Predict(context.Background(), ride.Build(ride.Demo()))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_Predict_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := NewClient(url, 0).Predict(context.Background(), ride.Build(ride.Demo())); err == nil {
		t.Fatal("expected error for closed server")
	}
}
