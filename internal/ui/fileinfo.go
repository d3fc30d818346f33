package ui

import (
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/lumipallolabs/weightmap/internal/model"
)

// leafFilePath maps a filesystem leaf back to its on-disk path. The
// root's label is the base name of the scan root, so the tree path is
// resolved against the scan root's parent directory.
func leafFilePath(scanRoot string, leaf *model.Tree) string {
	if leaf == nil || leaf.IsEmpty() {
		return ""
	}
	return filepath.Join(filepath.Dir(scanRoot), filepath.FromSlash(leaf.Path()))
}

// detectMime returns the MIME type of the file, or "" when detection
// fails (deleted files, permission errors)
func detectMime(path string) string {
	if path == "" {
		return ""
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	return mtype.String()
}
