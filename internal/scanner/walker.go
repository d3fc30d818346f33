package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/lumipallolabs/weightmap/internal/model"
)

// Walker implements parallel filesystem scanning
type Walker struct {
	workers  int
	progress Progress
}

// NewWalker creates a new parallel filesystem walker
func NewWalker(workers int) *Walker {
	if workers < 1 {
		workers = 8
	}
	return &Walker{workers: workers}
}

// Progress returns a snapshot of the progress counters
func (w *Walker) Progress() Progress {
	return Progress{
		FilesScanned: atomic.LoadInt64(&w.progress.FilesScanned),
		DirsScanned:  atomic.LoadInt64(&w.progress.DirsScanned),
		BytesFound:   atomic.LoadInt64(&w.progress.BytesFound),
	}
}

// entry is a flat record collected during the walk, before tree assembly
type entry struct {
	path  string
	name  string
	size  int64
	isDir bool
}

// Scan walks the filesystem under root with fastwalk and assembles the
// collected entries into a weighted tree
func (w *Walker) Scan(ctx context.Context, root string) (*model.Tree, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	// Platform-specific root info for mount point detection
	rootInfo := getPlatformRootInfo(absRoot)

	// Collect entries over a channel so walker goroutines never contend
	// on a shared slice
	entryChan := make(chan entry, 50000)
	var entries []entry
	var collectWg sync.WaitGroup

	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		collected := make([]entry, 0, 4096)
		for e := range entryChan {
			collected = append(collected, e)
		}
		entries = collected
	}()

	// Inodes seen so far, for hard link and firmlink deduplication
	var seenItems sync.Map

	conf := &fastwalk.Config{
		Follow:     false, // don't follow symlinks
		NumWorkers: w.workers,
	}

	walkErr := fastwalk.Walk(conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return nil // skip unreadable entries
		}
		if path == absRoot {
			return nil
		}

		if d.IsDir() {
			if shouldSkipDir(path, d, rootInfo, &seenItems) {
				return fs.SkipDir
			}
			atomic.AddInt64(&w.progress.DirsScanned, 1)
		}

		var size int64
		if !d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return nil
			}
			size = getFileSize(info, &seenItems)
			if size < 0 {
				return nil // hard link already counted
			}
			atomic.AddInt64(&w.progress.FilesScanned, 1)
			atomic.AddInt64(&w.progress.BytesFound, size)
		}

		entryChan <- entry{
			path:  path,
			name:  d.Name(),
			size:  size,
			isDir: d.IsDir(),
		}
		return nil
	})

	close(entryChan)
	collectWg.Wait()

	if walkErr != nil {
		return nil, walkErr
	}

	return buildTree(absRoot, entries), nil
}

// buildTree assembles the flat entries into a weighted tree, constructing
// leaves first so every internal node's weight is the sum of its children.
// Children are ordered by name: the parallel walk delivers entries in
// nondeterministic order and the layout depends on child order.
func buildTree(rootPath string, entries []entry) *model.Tree {
	byParent := make(map[string][]entry, len(entries)/8+1)
	for _, e := range entries {
		parent := filepath.Dir(e.path)
		byParent[parent] = append(byParent[parent], e)
	}
	for _, siblings := range byParent {
		sort.Slice(siblings, func(i, j int) bool {
			return siblings[i].name < siblings[j].name
		})
	}

	var build func(e entry) *model.Tree
	build = func(e entry) *model.Tree {
		if !e.isDir {
			return model.New(model.FileSystem, e.name, nil, e.size)
		}
		siblings := byParent[e.path]
		children := make([]*model.Tree, 0, len(siblings))
		for _, child := range siblings {
			children = append(children, build(child))
		}
		// An empty directory becomes a zero-weight childless node
		return model.New(model.FileSystem, e.name, children, 0)
	}

	return build(entry{path: rootPath, name: filepath.Base(rootPath), isDir: true})
}

// Ensure Walker implements Scanner
var _ Scanner = (*Walker)(nil)
