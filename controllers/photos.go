package controllers

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shanykim9/BoilerInspector/models"
)

var allowedPhotoExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// HandleUploadPhoto saves one image under the inspection's upload directory
// and appends its URL to the record's photo list. Uploading against an
// unknown id creates a placeholder inspection instead of failing, so clients
// can attach photos before submitting the form.
func (a *API) HandleUploadPhoto(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return badReq(c, "invalid inspection id")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return badReq(c, "no file provided")
	}
	if fh.Filename == "" {
		return badReq(c, "no file selected")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedPhotoExts[ext] {
		return badReq(c, "invalid file type")
	}

	dir := filepath.Join(a.UploadDir, "inspections", id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return serverErr(c, err)
	}
	name := uuid.NewString() + "_" + sanitizeFilename(fh.Filename)
	if err := saveUploadedFile(fh, filepath.Join(dir, name)); err != nil {
		return serverErr(c, err)
	}

	photoURL := "/uploads/inspections/" + id + "/" + name
	if err := a.Store.AppendPhoto(c.Context(), id, photoURL, time.Now()); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(models.PhotoUploadResp{PhotoURL: photoURL})
}

// sanitizeFilename strips any path component and replaces everything outside
// letters, digits, dot, dash and underscore, so the stored name is safe to
// join under the upload root.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "uploaded_file"
	}
	return out
}

func saveUploadedFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
