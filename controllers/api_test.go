package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/shanykim9/BoilerInspector/config"
	"github.com/shanykim9/BoilerInspector/controllers"
	"github.com/shanykim9/BoilerInspector/database"
	"github.com/shanykim9/BoilerInspector/models"
	"github.com/shanykim9/BoilerInspector/routes"
)

type testApp struct {
	app       *fiber.App
	store     *database.Store
	uploadDir string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	store, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	uploadDir := t.TempDir()
	app := fiber.New(fiber.Config{BodyLimit: cfg.MaxUploadBytes})
	app.Static("/uploads", uploadDir)
	routes.Register(app, controllers.New(store, uploadDir))
	return &testApp{app: app, store: store, uploadDir: uploadDir}
}

func (ta *testApp) do(t *testing.T, method, path string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func photoForm(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreateInspectionDefaults(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, "POST", "/api/inspections", strings.NewReader(`{}`), "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeJSON[models.CreateInspectionResp](t, resp)
	require.NotEmpty(t, created.ID)

	resp = ta.do(t, "GET", "/api/inspections/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decodeJSON[models.InspectionDetail](t, resp)
	require.Equal(t, "DOC-"+created.ID[:8], *detail.DocumentNumber)
	require.JSONEq(t, `[]`, string(detail.Products))
	require.JSONEq(t, `{}`, string(detail.Checklist))
	require.JSONEq(t, `[]`, string(detail.Photos))
	require.NotNil(t, detail.InspectionDate)
}

func TestCreateInspectionRejectsEmptyBody(t *testing.T) {
	ta := newTestApp(t)
	resp := ta.do(t, "POST", "/api/inspections", nil, "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNullBodyTreatedAsNoData(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, "POST", "/api/inspections", strings.NewReader(`null`), "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ta.do(t, "GET", "/api/inspections", nil, "")
	require.Empty(t, decodeJSON[[]models.InspectionSummary](t, resp))

	resp = ta.do(t, "POST", "/api/inspections", strings.NewReader(`{}`), "application/json")
	created := decodeJSON[models.CreateInspectionResp](t, resp)
	resp = ta.do(t, "PUT", "/api/inspections/"+created.ID, strings.NewReader(`null`), "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ta.do(t, "POST", "/api/inspectors", strings.NewReader(`null`), "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = ta.do(t, "POST", "/api/sites", strings.NewReader(`null`), "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetInspectionUnknownID(t *testing.T) {
	ta := newTestApp(t)
	resp := ta.do(t, "GET", "/api/inspections/nope", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPartialUpdate(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, "POST", "/api/inspections",
		strings.NewReader(`{"documentNumber":"2026-031"}`), "application/json")
	created := decodeJSON[models.CreateInspectionResp](t, resp)

	resp = ta.do(t, "PUT", "/api/inspections/"+created.ID,
		strings.NewReader(`{"result":"pass"}`), "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeJSON[models.UpdateInspectionResp](t, resp)
	require.True(t, updated.Success)

	resp = ta.do(t, "GET", "/api/inspections/"+created.ID, nil, "")
	detail := decodeJSON[models.InspectionDetail](t, resp)
	require.Equal(t, "pass", *detail.Result)
	require.Equal(t, "2026-031", *detail.DocumentNumber)
	require.Nil(t, detail.Summary)
}

func TestUpdateUnknownInspection(t *testing.T) {
	ta := newTestApp(t)
	resp := ta.do(t, "PUT", "/api/inspections/nope",
		strings.NewReader(`{"result":"pass"}`), "application/json")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateRejectsEmptyBody(t *testing.T) {
	ta := newTestApp(t)
	resp := ta.do(t, "POST", "/api/inspections", strings.NewReader(`{}`), "application/json")
	created := decodeJSON[models.CreateInspectionResp](t, resp)

	resp = ta.do(t, "PUT", "/api/inspections/"+created.ID, nil, "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadPhotoCreatesPlaceholder(t *testing.T) {
	ta := newTestApp(t)
	id := "aabbccdd-1122-3344-5566-77889900aabb"

	body, ct := photoForm(t, "boiler room.jpg", []byte("fake image bytes"))
	resp := ta.do(t, "POST", "/api/inspections/"+id+"/photos", body, ct)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	uploaded := decodeJSON[models.PhotoUploadResp](t, resp)
	require.True(t, strings.HasPrefix(uploaded.PhotoURL, "/uploads/inspections/"+id+"/"))
	require.True(t, strings.HasSuffix(uploaded.PhotoURL, "_boiler_room.jpg"))

	saved := filepath.Join(ta.uploadDir, "inspections", id, filepath.Base(uploaded.PhotoURL))
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	require.Equal(t, []byte("fake image bytes"), data)

	// served back through the static mount
	resp = ta.do(t, "GET", uploaded.PhotoURL, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ta.do(t, "GET", "/api/inspections/"+id, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decodeJSON[models.InspectionDetail](t, resp)
	require.Equal(t, "TEMP-aabbccdd", *detail.DocumentNumber)
	var photos []string
	require.NoError(t, json.Unmarshal(detail.Photos, &photos))
	require.Equal(t, []string{uploaded.PhotoURL}, photos)
}

func TestUploadPhotoAppendsInOrder(t *testing.T) {
	ta := newTestApp(t)
	resp := ta.do(t, "POST", "/api/inspections", strings.NewReader(`{}`), "application/json")
	created := decodeJSON[models.CreateInspectionResp](t, resp)

	body, ct := photoForm(t, "a.png", []byte("a"))
	resp = ta.do(t, "POST", "/api/inspections/"+created.ID+"/photos", body, ct)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	urlA := decodeJSON[models.PhotoUploadResp](t, resp).PhotoURL

	body, ct = photoForm(t, "b.png", []byte("b"))
	resp = ta.do(t, "POST", "/api/inspections/"+created.ID+"/photos", body, ct)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	urlB := decodeJSON[models.PhotoUploadResp](t, resp).PhotoURL

	resp = ta.do(t, "GET", "/api/inspections/"+created.ID, nil, "")
	detail := decodeJSON[models.InspectionDetail](t, resp)
	var photos []string
	require.NoError(t, json.Unmarshal(detail.Photos, &photos))
	require.Equal(t, []string{urlA, urlB}, photos)
}

func TestUploadPhotoRejectsBadExtension(t *testing.T) {
	ta := newTestApp(t)
	id := "11223344-aaaa-bbbb-cccc-ddddeeeeffff"

	for _, filename := range []string{"notes.txt", "malware.exe", "noextension"} {
		body, ct := photoForm(t, filename, []byte("nope"))
		resp := ta.do(t, "POST", "/api/inspections/"+id+"/photos", body, ct)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "filename %s", filename)
	}

	// nothing persisted: no file on disk, no placeholder record
	_, err := os.Stat(filepath.Join(ta.uploadDir, "inspections", id))
	require.True(t, os.IsNotExist(err))
	resp := ta.do(t, "GET", "/api/inspections/"+id, nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadPhotoOverBodyLimit(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	ta := newTestApp(t)
	id := "99887766-aaaa-bbbb-cccc-ddddeeeeffff"

	body, ct := photoForm(t, "huge.jpg", bytes.Repeat([]byte("x"), 8192))
	req := httptest.NewRequest("POST", "/api/inspections/"+id+"/photos", body)
	req.Header.Set("Content-Type", ct)
	resp, err := ta.app.Test(req, -1)
	// fasthttp may drop the connection instead of writing the 413
	if err != nil {
		require.ErrorContains(t, err, "body size exceeds the given limit")
	} else {
		require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	}

	// the handler never ran: no placeholder record
	getResp := ta.do(t, "GET", "/api/inspections/"+id, nil, "")
	require.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestUploadPhotoRequiresFile(t *testing.T) {
	ta := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("photo", "not a file"))
	require.NoError(t, w.Close())

	resp := ta.do(t, "POST", "/api/inspections/some-id/photos", &buf, w.FormDataContentType())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMalformedStoredChecklistSurfacesAs500(t *testing.T) {
	ta := newTestApp(t)
	resp := ta.do(t, "POST", "/api/inspections", strings.NewReader(`{}`), "application/json")
	created := decodeJSON[models.CreateInspectionResp](t, resp)

	// corrupt the stored sub-document behind the API's back
	ins, err := ta.store.GetInspection(context.Background(), created.ID)
	require.NoError(t, err)
	bad := `{"burner":`
	ins.Checklist = &bad
	require.NoError(t, ta.store.UpdateInspection(context.Background(), ins))

	resp = ta.do(t, "GET", "/api/inspections/"+created.ID, nil, "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestInspectorAndSiteEndpoints(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, "POST", "/api/inspectors",
		strings.NewReader(`{"name":"김철수","phone":"010-1234-5678"}`), "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inspector := decodeJSON[models.CreateInspectorResp](t, resp)
	require.Equal(t, "김철수", inspector.Name)

	resp = ta.do(t, "POST", "/api/inspectors", nil, "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ta.do(t, "POST", "/api/sites",
		strings.NewReader(`{"name":"서울아파트","contactPerson":"관리사무소"}`), "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = ta.do(t, "POST", "/api/sites",
		strings.NewReader(`{"name":"부산빌딩"}`), "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ta.do(t, "GET", "/api/inspectors", nil, "")
	inspectors := decodeJSON[[]models.InspectorItem](t, resp)
	require.Len(t, inspectors, 1)
	require.Equal(t, "010-1234-5678", *inspectors[0].Phone)

	resp = ta.do(t, "GET", "/api/sites?search="+url.QueryEscape("부산"), nil, "")
	sites := decodeJSON[[]models.SiteItem](t, resp)
	require.Len(t, sites, 1)
	require.Equal(t, "부산빌딩", sites[0].Name)
}

func TestListInspectionsEndpoint(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, "POST", "/api/inspections", strings.NewReader(`{}`), "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = ta.do(t, "POST", "/api/inspections", strings.NewReader(`{}`), "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ta.do(t, "GET", "/api/inspections", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeJSON[[]models.InspectionSummary](t, resp)
	require.Len(t, list, 2)
	for _, item := range list {
		require.True(t, strings.HasPrefix(item.DocumentNumber, "DOC-"))
	}
}
