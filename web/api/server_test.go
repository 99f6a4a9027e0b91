package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/neuroforge/forge/internal/stats"
	"github.com/neuroforge/forge/internal/statstore"
)

func newTestServer(t *testing.T, snapshots int) (*Server, *httptest.Server) {
	t.Helper()

	store, err := statstore.New(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	for i := 1; i <= snapshots; i++ {
		snap := &stats.Snapshot{
			ByExtension: map[string]stats.ExtStat{"go": {Count: i, Lines: i * 10}},
			TotalFiles:  i,
			TotalLines:  i * 10,
		}
		if _, err := store.SaveSnapshot("/repo", snap); err != nil {
			t.Fatal(err)
		}
	}

	srv := NewServer(store, "127.0.0.1:0")
	go srv.hub.Run()

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestServer_Result(t *testing.T) {
	_, ts := newTestServer(t, 0)

	resp, err := http.Get(ts.URL + "/api/result")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result["status"] != "success" {
		t.Errorf("status = %q, want success", result["status"])
	}
	if result["message"] == "" {
		t.Error("message should not be empty")
	}
}

func TestServer_LatestEmpty(t *testing.T) {
	_, ts := newTestServer(t, 0)

	resp, err := http.Get(ts.URL + "/api/stats/latest")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestServer_Latest(t *testing.T) {
	_, ts := newTestServer(t, 2)

	resp, err := http.Get(ts.URL + "/api/stats/latest")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rec statstore.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatal(err)
	}
	if rec.RepoPath != "/repo" {
		t.Errorf("RepoPath = %q, want /repo", rec.RepoPath)
	}
}

func TestServer_Snapshots(t *testing.T) {
	_, ts := newTestServer(t, 3)

	resp, err := http.Get(ts.URL + "/api/snapshots?limit=2")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var records []statstore.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestServer_SnapshotsBadLimit(t *testing.T) {
	_, ts := newTestServer(t, 0)

	resp, err := http.Get(ts.URL + "/api/snapshots?limit=x")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestServer_WebsocketBroadcast(t *testing.T) {
	srv, ts := newTestServer(t, 0)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	// Give the hub time to register the client
	time.Sleep(50 * time.Millisecond)

	srv.Broadcast(Event{Type: "snapshot", Data: map[string]int{"total_files": 7}})

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var event Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatal(err)
	}
	if event.Type != "snapshot" {
		t.Errorf("event type = %q, want snapshot", event.Type)
	}
}
