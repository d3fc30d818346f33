//go:build windows

package scanner

import (
	"io/fs"
	"sync"
)

// platformRootInfo holds platform-specific root information.
// Windows drives are separate roots, so there is nothing to track.
type platformRootInfo struct{}

// getPlatformRootInfo returns platform-specific info about the root path
func getPlatformRootInfo(path string) platformRootInfo {
	return platformRootInfo{}
}

// shouldSkipDir reports whether the directory should be skipped.
// No mount point detection is needed on Windows.
func shouldSkipDir(path string, d fs.DirEntry, rootInfo platformRootInfo, seenItems *sync.Map) bool {
	return false
}

// getFileSize returns the file size
func getFileSize(info fs.FileInfo, seenItems *sync.Map) int64 {
	return info.Size()
}
