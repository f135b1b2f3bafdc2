// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/praxislabs/cli/internal/testutils"
)

func TestExtractTarGzRoundTrip(t *testing.T) {
	require := testutils.SetupTest(t)

	archiveDir, checkFunc := testutils.CreateTestArchivePath(t, require)
	archivePath := filepath.Join(t.TempDir(), "test.tar.gz")
	testutils.CreateTarGz(require, archiveDir, archivePath, true)

	controlDir := filepath.Join(t.TempDir(), "extracted")
	require.NoError(ExtractArchive(tarExtension, archivePath, controlDir))
	checkFunc(filepath.Join(controlDir, filepath.Base(archiveDir)))
}

func TestExtractZipRoundTrip(t *testing.T) {
	require := testutils.SetupTest(t)

	archiveDir, _ := testutils.CreateTestArchivePath(t, require)
	archivePath := filepath.Join(t.TempDir(), "test.zip")
	testutils.CreateZip(require, archiveDir, archivePath)

	controlDir := filepath.Join(t.TempDir(), "extracted")
	require.NoError(ExtractArchive(zipExtension, archivePath, controlDir))
	// zip entries carry the source dir as top level
	require.DirExists(filepath.Join(controlDir, filepath.Base(archiveDir), "dir1"))
	require.FileExists(filepath.Join(controlDir, filepath.Base(archiveDir), "dir1", "gzipTest11"))
}

func TestExtractArchiveUnsupportedExtension(t *testing.T) {
	require := testutils.SetupTest(t)

	err := ExtractArchive("rar", "whatever.rar", t.TempDir())
	require.ErrorContains(err, "unsupported archive extension")
}

func TestExtractArchiveCorruptInput(t *testing.T) {
	require := testutils.SetupTest(t)

	archivePath := filepath.Join(t.TempDir(), "corrupt.tar.gz")
	require.NoError(os.WriteFile(archivePath, []byte("definitely not gzip"), 0o644))

	err := ExtractArchive(tarExtension, archivePath, filepath.Join(t.TempDir(), "out"))
	require.Error(err)
}

func TestExtractTarGzRejectsPathTraversal(t *testing.T) {
	require := testutils.SetupTest(t)

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	contents := []byte("evil")
	require.NoError(tw.WriteHeader(&tar.Header{
		Name:     "../evil.txt",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len(contents)),
	}))
	_, err := tw.Write(contents)
	require.NoError(err)
	require.NoError(tw.Close())
	require.NoError(gw.Close())

	baseDir := t.TempDir()
	archivePath := filepath.Join(baseDir, "slip.tar.gz")
	require.NoError(os.WriteFile(archivePath, buf.Bytes(), 0o644))

	destDir := filepath.Join(baseDir, "dest")
	err = ExtractArchive(tarExtension, archivePath, destDir)
	require.ErrorContains(err, "invalid file path in archive")
	require.NoFileExists(filepath.Join(baseDir, "evil.txt"))
}
