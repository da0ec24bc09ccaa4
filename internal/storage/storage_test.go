package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildFileHeaders assembles a real multipart form in memory so the
// save functions see the same *multipart.FileHeader they get from an
// HTTP request.
func buildFileHeaders(t *testing.T, names map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range names {
		fw, err := mw.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	reader := multipart.NewReader(&buf, mw.Boundary())
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["images"]
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	headers := buildFileHeaders(t, map[string][]byte{"photo.jpg": []byte("jpeg-bytes")})

	url, err := SaveImage(dir, headers[0])
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("url = %q, want /uploads/ prefix", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url = %q, want original extension kept", url)
	}

	saved, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	if err != nil {
		t.Fatalf("saved file unreadable: %v", err)
	}
	if string(saved) != "jpeg-bytes" {
		t.Errorf("saved content = %q", saved)
	}
}

func TestSaveImageRejectsBadExtension(t *testing.T) {
	dir := t.TempDir()
	headers := buildFileHeaders(t, map[string][]byte{"script.exe": []byte("mz")})

	if _, err := SaveImage(dir, headers[0]); err == nil {
		t.Fatal("SaveImage accepted an .exe upload")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("rejected upload left %d files behind", len(entries))
	}
}

func TestSaveImageRejectsOversize(t *testing.T) {
	dir := t.TempDir()
	big := bytes.Repeat([]byte("x"), MaxFileSize+1)
	headers := buildFileHeaders(t, map[string][]byte{"huge.png": big})

	if _, err := SaveImage(dir, headers[0]); err == nil {
		t.Fatal("SaveImage accepted an oversize upload")
	}
}

func TestSaveImagesGeneratesUniqueNames(t *testing.T) {
	dir := t.TempDir()
	headers := buildFileHeaders(t, map[string][]byte{
		"a.png": []byte("a"),
		"b.png": []byte("b"),
	})

	paths, err := SaveImages(dir, headers)
	if err != nil {
		t.Fatalf("SaveImages: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("len = %d, want 2", len(paths))
	}
	if paths[0] == paths[1] {
		t.Errorf("duplicate generated filename: %q", paths[0])
	}
}

func TestSaveImagesEnforcesCount(t *testing.T) {
	files := map[string][]byte{}
	for i := 0; i < MaxFilesCount+1; i++ {
		files[strings.Repeat("a", i+1)+".png"] = []byte("x")
	}
	headers := buildFileHeaders(t, files)

	if _, err := SaveImages(t.TempDir(), headers); err == nil {
		t.Fatalf("SaveImages accepted %d files", len(headers))
	}
}
