//go:build !windows

package scanner

import (
	"io/fs"
	"sync"

	"golang.org/x/sys/unix"
)

// platformRootInfo holds platform-specific root information
type platformRootInfo struct {
	dev uint64
}

// getPlatformRootInfo returns platform-specific info about the root path
func getPlatformRootInfo(path string) platformRootInfo {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return platformRootInfo{}
	}
	return platformRootInfo{dev: uint64(stat.Dev)}
}

// shouldSkipDir reports whether the directory lies on another filesystem
// (mount point) or was already visited through a firmlink
func shouldSkipDir(path string, d fs.DirEntry, rootInfo platformRootInfo, seenItems *sync.Map) bool {
	info, err := d.Info()
	if err != nil {
		return false
	}

	stat, ok := info.Sys().(*unix.Stat_t)
	if !ok {
		return false
	}

	if uint64(stat.Dev) != rootInfo.dev {
		return true
	}

	if _, exists := seenItems.LoadOrStore(stat.Ino, true); exists {
		return true
	}

	return false
}

// getFileSize returns the size the file occupies on disk, or -1 if the
// file is a hard link whose inode was already counted
func getFileSize(info fs.FileInfo, seenItems *sync.Map) int64 {
	stat, ok := info.Sys().(*unix.Stat_t)
	if !ok {
		return info.Size()
	}

	if stat.Nlink > 1 {
		if _, exists := seenItems.LoadOrStore(stat.Ino, true); exists {
			return -1
		}
	}

	// Blocks is in 512-byte units; using it handles sparse files
	return int64(stat.Blocks) * 512
}
