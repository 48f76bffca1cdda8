package get_book_qr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StaffPortal/internal/service/library"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
)

type fakeService struct {
	png []byte
	err error
}

func (f *fakeService) QRCode(_ context.Context, _ int64) ([]byte, error) {
	return f.png, f.err
}

func serve(svc LibraryService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/books/{bookId}/qr", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_PNG(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	rec := serve(&fakeService{png: png}, "/api/v1/books/5/qr")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/books/abc/qr").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: library.ErrBookNotFound}, "/api/v1/books/5/qr").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: library.ErrInternal}, "/api/v1/books/5/qr").Code)
}
