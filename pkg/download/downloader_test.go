package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	content := []byte("installer payload")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(content)
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "subdir", "installer.zip")

	d := NewDownloader()
	err := d.Download(context.Background(), Options{URL: ts.URL, DestPath: dest})
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// No temp file left behind.
	_, err = os.Stat(dest + ".downloading")
	assert.True(t, os.IsNotExist(err))
}

func TestDownloadChecksumOK(t *testing.T) {
	content := []byte("verified payload")
	sum := sha256.Sum256(content)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(content)
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "file.bin")

	d := NewDownloader()
	err := d.Download(context.Background(), Options{
		URL:      ts.URL,
		DestPath: dest,
		SHA256:   hex.EncodeToString(sum[:]),
	})
	require.NoError(t, err)
}

func TestDownloadChecksumMismatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tampered payload"))
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "file.bin")

	d := NewDownloader()
	err := d.Download(context.Background(), Options{
		URL:      ts.URL,
		DestPath: dest,
		SHA256:   "deadbeef",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")

	// Failed download leaves nothing at the destination.
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownloadHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer ts.Close()

	d := NewDownloader()
	err := d.Download(context.Background(), Options{
		URL:      ts.URL,
		DestPath: filepath.Join(t.TempDir(), "file.bin"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestDownloadProgress(t *testing.T) {
	content := make([]byte, 64*1024)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(content)
	}))
	defer ts.Close()

	var lastDownloaded, lastTotal int64
	d := NewDownloader()
	err := d.Download(context.Background(), Options{
		URL:      ts.URL,
		DestPath: filepath.Join(t.TempDir(), "file.bin"),
		OnProgress: func(downloaded, total int64) {
			lastDownloaded = downloaded
			lastTotal = total
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(len(content)), lastDownloaded)
	assert.Equal(t, int64(len(content)), lastTotal)
}
