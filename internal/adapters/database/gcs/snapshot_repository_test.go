package gcs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// fakeBucketServer serves the subset of the Cloud Storage JSON API used by the
// repository: media downloads and multipart uploads.
type fakeBucketServer struct {
	mu        sync.Mutex
	objects   map[string][]byte
	failWrite bool
}

func (f *fakeBucketServer) object(name string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[name]
	return data, ok
}

func (f *fakeBucketServer) put(name string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = data
}

func (f *fakeBucketServer) rejectWrites() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrite = true
}

func (f *fakeBucketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.EscapedPath()
	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/storage/v1/b/"):
		f.download(w, path)
	case r.Method == http.MethodPost && strings.HasPrefix(path, "/upload/storage/v1/b/"):
		f.upload(w, r)
	default:
		writeError(w, http.StatusNotImplemented, "unexpected request "+r.Method+" "+path)
	}
}

func (f *fakeBucketServer) download(w http.ResponseWriter, path string) {
	_, escaped, found := strings.Cut(path, "/o/")
	name, err := url.PathUnescape(escaped)
	if !found || err != nil {
		writeError(w, http.StatusBadRequest, "bad object path")
		return
	}
	data, ok := f.object(name)
	if !ok {
		writeError(w, http.StatusNotFound, "No such object: "+name)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.Header().Set("X-Goog-Generation", "1")
	w.Header().Set("X-Goog-Metageneration", "1")
	_, _ = w.Write(data)
}

func (f *fakeBucketServer) upload(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		writeError(w, http.StatusForbidden, "write denied")
		return
	}

	_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "upload is not multipart")
		return
	}
	parts := multipart.NewReader(r.Body, params["boundary"])
	metaPart, err := parts.NextPart()
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing metadata part")
		return
	}
	var meta struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(metaPart).Decode(&meta); err != nil {
		writeError(w, http.StatusBadRequest, "bad metadata")
		return
	}
	mediaPart, err := parts.NextPart()
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing media part")
		return
	}
	data, err := io.ReadAll(mediaPart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad media")
		return
	}
	f.objects[meta.Name] = data

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"kind":        "storage#object",
		"bucket":      "fince",
		"name":        meta.Name,
		"generation":  "1",
		"size":        fmt.Sprint(len(data)),
		"contentType": "application/json",
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": message},
	})
}

func newTestRepository(t *testing.T) (*SnapshotRepository, *fakeBucketServer) {
	t.Helper()
	fake := &fakeBucketServer{objects: make(map[string][]byte)}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := storage.NewClient(context.Background(),
		option.WithEndpoint(server.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
		storage.WithJSONReads(),
	)
	require.NoError(t, err)
	repo := NewSnapshotRepositoryWithClient(client, "fince", "ledgers")
	t.Cleanup(func() { _ = repo.Close() })
	return repo, fake
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "ledgers/alice.json", ObjectName("ledgers/", "alice"))
	assert.Equal(t, "ledgers/alice.json", ObjectName("ledgers", "alice"))
	assert.Equal(t, "a%2Fb.json", ObjectName("", "a/b"))
}

func TestSnapshotRepository_LoadUnknownLedgerIsEmpty(t *testing.T) {
	repo, _ := newTestRepository(t)

	snapshot, err := repo.Load(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, domain.EmptySnapshot(), snapshot)
}

func TestSnapshotRepository_SaveLoadAndOverwrite(t *testing.T) {
	ctx := context.Background()
	repo, fake := newTestRepository(t)

	snapshot := domain.EmptySnapshot()
	snapshot.InitialBalance = decimal.NewFromInt(100)
	snapshot.Transactions = []domain.Transaction{{
		TransactionID: "t1", Label: "Pizza", Category: "food",
		Amount: decimal.NewFromInt(-12), OccurredOn: domain.NewDate(2024, 3, 5),
	}}
	require.NoError(t, repo.Save(ctx, "alice", snapshot))
	_, stored := fake.object("ledgers/alice.json")
	assert.True(t, stored)

	loaded, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, loaded.InitialBalance.Equal(decimal.NewFromInt(100)))
	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, "Pizza", loaded.Transactions[0].Label)
	assert.Equal(t, domain.NewDate(2024, 3, 5), loaded.Transactions[0].OccurredOn)

	snapshot.InitialBalance = decimal.NewFromInt(250)
	snapshot.Transactions = nil
	require.NoError(t, repo.Save(ctx, "alice", snapshot))

	loaded, err = repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, loaded.InitialBalance.Equal(decimal.NewFromInt(250)))
	assert.Empty(t, loaded.Transactions)

	other, err := repo.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, other.Transactions)
}

func TestSnapshotRepository_SaveFailsWhenUploadIsRejected(t *testing.T) {
	ctx := context.Background()
	repo, fake := newTestRepository(t)
	fake.rejectWrites()

	err := repo.Save(ctx, "alice", domain.EmptySnapshot())

	require.Error(t, err)
	_, stored := fake.object("ledgers/alice.json")
	assert.False(t, stored)
}

func TestSnapshotRepository_CorruptObject(t *testing.T) {
	repo, fake := newTestRepository(t)
	fake.put("ledgers/alice.json", []byte("{not json"))

	_, err := repo.Load(context.Background(), "alice")

	assert.Error(t, err)
}
