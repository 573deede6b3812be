package service

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"desaku_backend/internals/sentinel"
)

func newTestService(t *testing.T) *UploadService {
	t.Helper()
	svc, err := NewUploadService(t.TempDir(), 5*1024*1024, 5)
	require.NoError(t, err)
	return svc
}

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestCheckFile(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"pdf diterima", "surat.pdf", 1024, false},
		{"jpg diterima", "ktp.jpg", 1024, false},
		{"docx diterima", "form.docx", 1024, false},
		{"ekstensi kapital diterima", "KTP.PDF", 1024, false},
		{"exe ditolak", "virus.exe", 1024, true},
		{"tanpa ekstensi ditolak", "README", 1024, true},
		{"terlalu besar ditolak", "besar.pdf", 6 * 1024 * 1024, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckFile(tt.filename, tt.size)
			if tt.wantErr {
				require.ErrorIs(t, err, sentinel.ErrUploadRejected)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCheckBatch(t *testing.T) {
	svc := newTestService(t)

	t.Run("batch kosong ditolak", func(t *testing.T) {
		err := svc.CheckBatch(nil)
		require.ErrorIs(t, err, sentinel.ErrUploadRejected)
	})

	t.Run("melebihi jumlah maksimum ditolak", func(t *testing.T) {
		files := make([]*multipart.FileHeader, 6)
		for i := range files {
			files[i] = header("a.pdf", 100)
		}
		err := svc.CheckBatch(files)
		require.ErrorIs(t, err, sentinel.ErrUploadRejected)
	})

	t.Run("satu file buruk menolak seluruh batch", func(t *testing.T) {
		err := svc.CheckBatch([]*multipart.FileHeader{
			header("oke.pdf", 100),
			header("buruk.exe", 100),
		})
		require.ErrorIs(t, err, sentinel.ErrUploadRejected)
	})

	t.Run("batch valid lolos", func(t *testing.T) {
		err := svc.CheckBatch([]*multipart.FileHeader{
			header("satu.pdf", 100),
			header("dua.png", 100),
		})
		require.NoError(t, err)
	})
}

func TestStoredName(t *testing.T) {
	svc := newTestService(t)

	name := svc.StoredName("Surat Pengantar (final).PDF")
	require.True(t, strings.HasSuffix(name, ".pdf"))
	require.NotContains(t, name, " ")
	require.NotContains(t, name, "(")

	// dua panggilan menghasilkan nama berbeda
	require.NotEqual(t, name, svc.StoredName("Surat Pengantar (final).PDF"))
}

func TestResolve(t *testing.T) {
	svc := newTestService(t)

	stored := filepath.Join(svc.Dir, "abc.pdf")
	require.NoError(t, os.WriteFile(stored, []byte("isi"), 0o644))

	t.Run("file ada", func(t *testing.T) {
		full, err := svc.Resolve("abc.pdf")
		require.NoError(t, err)
		require.Equal(t, stored, full)
	})

	t.Run("file tidak ada", func(t *testing.T) {
		_, err := svc.Resolve("hilang.pdf")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("path traversal ditolak", func(t *testing.T) {
		_, err := svc.Resolve("../../etc/passwd")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("dotfile ditolak", func(t *testing.T) {
		_, err := svc.Resolve(".env")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
