// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/praxislabs/cli/pkg/constants"
)

const maxCopy = 2147483648 // 2 GB

// ExtractArchive extracts a downloaded release archive into destDir.
// The supported formats are tar.gz and zip.
func ExtractArchive(ext string, archivePath string, destDir string) error {
	if err := os.MkdirAll(destDir, constants.DefaultPerms755); err != nil {
		return fmt.Errorf("failed creating extraction dir %s: %w", destDir, err)
	}
	switch ext {
	case zipExtension:
		return extractZip(archivePath, destDir)
	case tarExtension:
		return extractTarGz(archivePath, destDir)
	default:
		return fmt.Errorf("unsupported archive extension: %s", ext)
	}
}

// extractTarGz extracts a tar.gz archive to the destination directory
func extractTarGz(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open archive file: %w", err)
	}
	defer in.Close()

	gr, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	tr := tar.NewReader(gr)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		target, err := sanitizeArchivePath(dst, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, constants.DefaultPerms755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), constants.DefaultPerms755); err != nil {
				return err
			}

			f, err := os.OpenFile(target, os.O_CREATE|os.O_RDWR, os.FileMode(header.Mode))
			if err != nil {
				return err
			}

			// limit the copy to protect against decompression bombs
			if _, err := io.CopyN(f, tr, maxCopy); err != nil && err != io.EOF {
				f.Close()
				return err
			}
			f.Close()
		}
	}

	return nil
}

// extractZip extracts a zip archive to the destination directory
func extractZip(src string, dst string) error {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer reader.Close()

	for _, f := range reader.File {
		target, err := sanitizeArchivePath(dst, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, constants.DefaultPerms755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), constants.DefaultPerms755); err != nil {
			return err
		}

		out, err := os.OpenFile(target, os.O_CREATE|os.O_RDWR|os.O_TRUNC, f.Mode())
		if err != nil {
			return err
		}

		in, err := f.Open()
		if err != nil {
			out.Close()
			return err
		}

		_, err = io.CopyN(out, in, maxCopy)
		in.Close()
		out.Close()
		if err != nil && err != io.EOF {
			return err
		}
	}

	return nil
}

// sanitizeArchivePath validates an archive entry path to prevent Zip
// Slip: the joined target must stay under the destination directory.
func sanitizeArchivePath(dst, name string) (string, error) {
	target := filepath.Join(dst, name)

	destAbs, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	targetAbs, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	if targetAbs != destAbs && !strings.HasPrefix(targetAbs, destAbs+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid file path in archive: %s", name)
	}
	return target, nil
}
