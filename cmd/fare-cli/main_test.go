package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"taxifare/internal/config"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(config.New())
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDemoCmd(t *testing.T) {
	out, err := runCLI(t, "demo")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	for _, want := range []string{"2023-08-15", "14:30:00", "-73.985428", "40.764356", "Passenger Count:   2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPredictCmd_Autofill(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"fare": 12.5}`))
	}))
	defer srv.Close()

	out, err := runCLI(t, "predict", "--autofill", "--pickup-lon", "ignored", "--endpoint", srv.URL)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if !strings.Contains(out, "Predicted Fare: $12.50") {
		t.Errorf("missing banner:\n%s", out)
	}
	if !strings.Contains(out, "Raw API Response:") {
		t.Errorf("missing raw response:\n%s", out)
	}
	if got.Get("pickup_datetime") != "2023-08-15 14:30:00" || got.Get("pickup_longitude") != "-73.985428" {
		t.Errorf("unexpected query: %v", got)
	}
}

func TestPredictCmd_Flags(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"fare": -1}`))
	}))
	defer srv.Close()

	out, err := runCLI(t, "predict",
		"--endpoint", srv.URL,
		"--date", "2024-01-02", "--time", "08:05",
		"--pickup-lon=-73,99", "--passengers", "3.7")
	if !errors.Is(err, errNotPredicted) {
		t.Fatalf("expected errNotPredicted, got %v", err)
	}
	if !strings.Contains(out, "Predicted fare is negative") {
		t.Errorf("missing domain error banner:\n%s", out)
	}
	if got.Get("pickup_datetime") != "2024-01-02 08:05:00" {
		t.Errorf("pickup_datetime = %q", got.Get("pickup_datetime"))
	}
	if got.Get("pickup_longitude") != "-73.99" || got.Get("passenger_count") != "3" {
		t.Errorf("unexpected query: %v", got)
	}
	if got.Get("dropoff_latitude") != "40.764356" {
		t.Errorf("unset flags should keep defaults, got %q", got.Get("dropoff_latitude"))
	}
}

func TestPredictCmd_BadDate(t *testing.T) {
	_, err := runCLI(t, "predict", "--date", "tomorrow", "--endpoint", "http://127.0.0.1:1")
	if err == nil || errors.Is(err, errNotPredicted) {
		t.Fatalf("expected date parse error, got %v", err)
	}
}
