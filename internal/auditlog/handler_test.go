package auditlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===========================
// in-memory Repository fake

type fakeRepo struct {
	entries   []AuditLog
	lastLimit int64
}

func (f *fakeRepo) Create(_ context.Context, entry *AuditLog) error {
	entry.ID = primitive.NewObjectID()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	f.entries = append(f.entries, *entry)
	return nil
}

// List mirrors the store contract: newest-first, bounded by limit
func (f *fakeRepo) List(_ context.Context, limit int64) ([]AuditLog, error) {
	f.lastLimit = limit

	out := make([]AuditLog, len(f.entries))
	copy(out, f.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewService(repo))

	r := gin.New()
	r.GET("/admin/auditlogs", h.GetAuditLogs)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func seedEntries(t *testing.T, repo *fakeRepo, n int) {
	t.Helper()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService(repo)
	for i := 0; i < n; i++ {
		if err := svc.LogAction(context.Background(), "admin@example.com", primitive.NewObjectID().Hex(),
			ActionRSVPApproved, map[string]interface{}{"approved": true}, "203.0.113.7", StatusSuccess); err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
		// distinct timestamps so the ordering assertion is deterministic
		repo.entries[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
	}
}

func TestGetAuditLogsEnvelope(t *testing.T) {
	repo := &fakeRepo{}
	seedEntries(t, repo, 3)
	r := newTestRouter(repo)

	w, resp := doGet(t, r, "/admin/auditlogs")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp["success"] != true || resp["count"].(float64) != 3 {
		t.Fatalf("unexpected envelope: %v", resp)
	}

	entry := resp["data"].([]interface{})[0].(map[string]interface{})
	if entry["actorEmail"] != "admin@example.com" || entry["action"] != ActionRSVPApproved ||
		entry["ipAddress"] != "203.0.113.7" || entry["status"] != StatusSuccess {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestGetAuditLogsNewestFirst(t *testing.T) {
	repo := &fakeRepo{}
	seedEntries(t, repo, 3)
	r := newTestRouter(repo)

	_, resp := doGet(t, r, "/admin/auditlogs")
	entries := resp["data"].([]interface{})

	var prev time.Time
	for i, raw := range entries {
		createdAt, err := time.Parse(time.RFC3339, raw.(map[string]interface{})["createdAt"].(string))
		if err != nil {
			t.Fatalf("entry %d: unparsable createdAt: %v", i, err)
		}
		if i > 0 && createdAt.After(prev) {
			t.Fatalf("entries not newest-first at index %d", i)
		}
		prev = createdAt
	}
}

func TestGetAuditLogsDefaultLimit(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	doGet(t, r, "/admin/auditlogs")
	if repo.lastLimit != 100 {
		t.Errorf("expected default limit 100, got %d", repo.lastLimit)
	}
}

func TestGetAuditLogsExplicitLimit(t *testing.T) {
	repo := &fakeRepo{}
	seedEntries(t, repo, 5)
	r := newTestRouter(repo)

	w, resp := doGet(t, r, "/admin/auditlogs?limit=2")
	if w.Code != http.StatusOK || resp["count"].(float64) != 2 {
		t.Fatalf("expected 2 entries, got %d %v", w.Code, resp)
	}
	if repo.lastLimit != 2 {
		t.Errorf("expected limit 2 forwarded to the store, got %d", repo.lastLimit)
	}
}

func TestLogActionDefaultsNilDetails(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	if err := svc.LogAction(context.Background(), "admin@example.com", "", ActionRSVPExported, nil, "", StatusSuccess); err != nil {
		t.Fatalf("LogAction failed: %v", err)
	}
	if repo.entries[0].Details == nil {
		t.Errorf("nil details should be stored as an empty map")
	}
}
