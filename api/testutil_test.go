package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testBaseURL = "http://site.test"

type uploadCall struct {
	prefix      string
	filename    string
	contentType string
}

// fakeUploader records uploads and removals instead of talking to a
// blob store.
type fakeUploader struct {
	mu         sync.Mutex
	uploads    []uploadCall
	removed    []string
	failUpload bool
	counter    int
}

func (f *fakeUploader) Upload(_ context.Context, pathPrefix, filename, contentType string, _ io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpload {
		return "", fmt.Errorf("blob store unavailable")
	}
	f.counter++
	f.uploads = append(f.uploads, uploadCall{prefix: pathPrefix, filename: filename, contentType: contentType})
	return fmt.Sprintf("https://cdn.site.test/%s/%d-%s", pathPrefix, f.counter, filename), nil
}

func (f *fakeUploader) Remove(_ context.Context, publicURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, publicURL)
}

func (f *fakeUploader) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func (f *fakeUploader) removedURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.removed...)
}

type fakeMail struct {
	subject    string
	recipients []string
	html       string
}

// fakeMailer records outgoing mail.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []fakeMail
	failFor string
}

func (f *fakeMailer) Send(subject, html string, recipients []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range recipients {
		if r == f.failFor {
			return fmt.Errorf("mailer rejected %s", r)
		}
	}
	f.sent = append(f.sent, fakeMail{subject: subject, recipients: recipients, html: html})
	return nil
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type testEnv struct {
	router   http.Handler
	db       database.Database
	uploader *fakeUploader
	mailer   *fakeMailer
	notifier *services.Notifier
}

// newTestEnv wires the full router against an in-memory database and
// fake collaborators. The admin token is left empty so admin routes are
// open to the tests.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}

	if err := database.AutoMigrate(gormDB); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	db := database.New(gormDB)
	uploader := &fakeUploader{}
	mailer := &fakeMailer{}
	notifier := services.NewNotifier(db.SubscriptionRepo(), mailer, testBaseURL)

	deps := handlerDeps{
		uploader: uploader,
		mailer:   mailer,
		notifier: notifier,
		baseURL:  testBaseURL,
	}

	router := newRouter(db, deps, withConfig(map[string]string{}))

	return &testEnv{
		router:   router,
		db:       db,
		uploader: uploader,
		mailer:   mailer,
		notifier: notifier,
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type testFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// multipartRequest builds a multipart form request with explicit part
// content types, the way browsers submit file uploads.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...testFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("creating part %s: %v", f.field, err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("writing part %s: %v", f.field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func httpRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, target, nil)
}

// decodeBody unmarshals a recorded JSON response.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
