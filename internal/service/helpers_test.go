package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"travely/internal/cache"
	"travely/internal/models"
)

// fakeCache is an in-memory Cache for tests.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

// fakeResetTokenStore is an in-memory ResetTokenStore for tests.
type fakeResetTokenStore struct {
	tokens map[string]*cache.ResetTokenData
	ttls   map[string]time.Duration
}

func newFakeResetTokenStore() *fakeResetTokenStore {
	return &fakeResetTokenStore{
		tokens: make(map[string]*cache.ResetTokenData),
		ttls:   make(map[string]time.Duration),
	}
}

func (s *fakeResetTokenStore) Create(ctx context.Context, tokenHash string, data *cache.ResetTokenData, ttl time.Duration) error {
	s.tokens[tokenHash] = data
	s.ttls[tokenHash] = ttl
	return nil
}

func (s *fakeResetTokenStore) Get(ctx context.Context, tokenHash string) (*cache.ResetTokenData, error) {
	return s.tokens[tokenHash], nil
}

func (s *fakeResetTokenStore) Consume(ctx context.Context, tokenHash string) error {
	delete(s.tokens, tokenHash)
	return nil
}

// fakeGoogleVerifier returns a fixed profile without talking to the provider.
type fakeGoogleVerifier struct {
	profile     *models.GoogleProfile
	exchangeErr error
}

func (g *fakeGoogleVerifier) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (g *fakeGoogleVerifier) Exchange(ctx context.Context, code string) (*models.GoogleProfile, error) {
	if g.exchangeErr != nil {
		return nil, g.exchangeErr
	}
	return g.profile, nil
}

// fakeStorage records uploaded and deleted object keys.
type fakeStorage struct {
	keys    []string
	deleted []string
}

func (s *fakeStorage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	s.keys = append(s.keys, key)
	return nil
}

func (s *fakeStorage) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://storage.example.com/" + key, nil
}

func (s *fakeStorage) DeleteObject(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

// newFileHeader builds a real multipart.FileHeader the way a request parser
// would produce one.
func newFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File[field]
	require.Len(t, files, 1)
	return files[0]
}
