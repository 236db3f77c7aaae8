package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.TimeoutMs = 1000
	return cfg
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(_ context.Context, e CallEvent) {
	o.events = append(o.events, e)
}

func TestHTTPClient_GetJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities/101", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": 101, "name": "Quiz"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL + "/api")
	cfg.Token = "secret"
	obs := &recordingObserver{}
	client := NewHTTPClient(cfg, obs)

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, GetJSON(context.Background(), client, Path("activities", 101), &out))
	assert.Equal(t, 101, out.ID)
	assert.Equal(t, "Quiz", out.Name)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 200, obs.events[0].Status)
}

func TestHTTPClient_SendJSON_EncodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bien", body["comment"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	var out map[string]any
	err := SendJSON(context.Background(), client, http.MethodPut, "activity-grades/9",
		map[string]string{"comment": "bien"}, &out)
	require.NoError(t, err)
	assert.Nil(t, out, "empty body leaves out untouched")
}

func TestHTTPClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "x"})

	assert.ErrorIs(t, err, ErrNotFound)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 404, se.Code)
	assert.True(t, IsTransportFailure(err))
}

func TestHTTPClient_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad", http.StatusBadRequest)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3
	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "x"})

	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_RetriesServerErrorOnGet(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewHTTPClient(cfg, NoopObserver{})
	var out []int
	require.NoError(t, GetJSON(context.Background(), client, "x", &out))
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClient_DoesNotRetryWrites(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2
	client := NewHTTPClient(cfg, NoopObserver{})
	err := SendJSON(context.Background(), client, http.MethodPut, "x", map[string]int{"a": 1}, nil)

	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2
	obs := &recordingObserver{}
	client := NewHTTPClient(cfg, obs)
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "x"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.ErrorIs(t, err, ErrTransport)
	require.Len(t, obs.events, 1)
	assert.Equal(t, 3, obs.events[0].Attempts)
	assert.Equal(t, "RETRY_EXHAUSTED", obs.events[0].ErrorCode)
}

func TestHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	cfg.MaxRetries = 0
	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "slow"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPClient_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.MaxRetries = 0
	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "x"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	var out map[string]any
	err := GetJSON(context.Background(), client, "x", &out)

	assert.ErrorIs(t, err, ErrDecode)
	assert.False(t, IsTransportFailure(err))
}

func TestPath_EscapesSegments(t *testing.T) {
	assert.Equal(t, "activities/101/students/3", Path("activities", 101, "students", 3))
	assert.Equal(t, "groups/5%2FA", Path("groups", "5/A"))
}
