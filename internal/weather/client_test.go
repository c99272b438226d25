package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientCurrent(t *testing.T) {
	payload := `{"name":"London","main":{"temp":12.3}}`

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/weather" {
			t.Errorf("expected path /weather, got %s", request.URL.Path)
		}
		query := request.URL.Query()
		if query.Get("q") != "London" {
			t.Errorf("expected location query 'London', got %q", query.Get("q"))
		}
		if query.Get("appid") != "test-key" {
			t.Errorf("expected API key 'test-key', got %q", query.Get("appid"))
		}
		if query.Get("units") != "metric" {
			t.Errorf("expected metric units, got %q", query.Get("units"))
		}
		writer.Write([]byte(payload))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", time.Second)
	result, err := client.Current(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != payload {
		t.Fatalf("expected the payload to be returned verbatim, got %q", string(result))
	}
}

func TestClientForecastPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/forecast" {
			t.Errorf("expected path /forecast, got %s", request.URL.Path)
		}
		writer.Write([]byte(`{"list":[]}`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", time.Second)
	if _, err := client.Forecast(context.Background(), "London"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"location not found", http.StatusNotFound, ErrLocationNotFound},
		{"server error", http.StatusInternalServerError, ErrUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(test.status)
			}))
			defer server.Close()

			client := New(server.URL, "test-key", time.Second)
			_, err := client.Current(context.Background(), "London")
			if !errors.Is(err, test.want) {
				t.Fatalf("expected %v, got %v", test.want, err)
			}
		})
	}
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", 50*time.Millisecond)
	_, err := client.Current(context.Background(), "London")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected a timeout to map to ErrUnavailable, got %v", err)
	}
}

func TestClientUnreachableProvider(t *testing.T) {
	client := New("http://127.0.0.1:1", "test-key", time.Second)
	_, err := client.Current(context.Background(), "London")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected a transport failure to map to ErrUnavailable, got %v", err)
	}
}
