package imagehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUploader_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("request was not multipart: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if got := r.FormValue("upload_preset"); got != "canteen" {
			t.Errorf("upload_preset = %q, want canteen", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing file part: %v", err)
		}
		w.Write([]byte(`{"secure_url":"https://img.example.com/p.jpg"}`))
	}))
	defer srv.Close()

	u := NewWithEndpoint(srv.URL, "canteen", srv.Client())
	url, err := u.Upload(context.Background(), strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Upload() unexpected error: %v", err)
	}
	if url != "https://img.example.com/p.jpg" {
		t.Errorf("Upload() = %q, want secure url", url)
	}
}

func TestUploader_UploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid preset"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	u := NewWithEndpoint(srv.URL, "canteen", srv.Client())
	if _, err := u.Upload(context.Background(), strings.NewReader("x")); err == nil {
		t.Fatal("Upload() expected an error on a 400 response")
	}
}

func TestUploader_NoURLInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	u := NewWithEndpoint(srv.URL, "canteen", srv.Client())
	if _, err := u.Upload(context.Background(), strings.NewReader("x")); err == nil {
		t.Fatal("Upload() expected an error when the response carries no url")
	}
}
