package collection

import (
	"context"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

const (
	mFileSuffix      = ".m"
	classFolderMark  = '@'
	namespaceMark    = '+'
	privateFolder    = "private"
	contentsFile     = "Contents.m"
)

// pathGlobber recursively walks a root the way MATLAB's path machinery
// would: regular subdirectories are only descended into when recursive is
// set (and never if named "private"), while "+namespace" and "@class"
// folders are always descended into — and are themselves emitted as path
// members, unlike regular folders. ".m" files are emitted except
// "Contents.m". Entries within each directory are visited in lexicographic
// order so that path membership and, downstream, all iteration over it is
// deterministic (spec.md §9 Open Question 1). Mirrors collection.py:
// _PathGlobber._glob.
// entryKind classifies a globbed path member without requiring any further
// filesystem access once globbing has completed — the directory listing
// that discovered it already told us everything isFolder/isClassFolder/
// isNamespace need to know.
type entryKind int

const (
	entryFile entryKind = iota
	entryFolder
	entryClassFolder
	entryNamespace
)

type pathEntry struct {
	path string
	kind entryKind
}

type pathGlobber struct {
	fs    afs.Service
	paths []pathEntry
	// dirs records every directory visited (folders, namespaces, class
	// folders alike, "private" excluded) so PathsCollection can resolve
	// "/"-separated path syntax down to any of them, not just the
	// namespace/class-folder ones that also get an identifier mapping.
	dirs []pathEntry
}

func newPathGlobber(ctx context.Context, fs afs.Service, root string, recursive bool) (*pathGlobber, error) {
	g := &pathGlobber{fs: fs}
	if err := g.glob(ctx, root, recursive); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *pathGlobber) glob(ctx context.Context, path string, recursive bool) error {
	entries, err := g.fs.List(ctx, path)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, info := range entries {
		name := info.Name()
		if name == "." || name == ".." {
			continue
		}
		child := url.Join(path, name)

		switch {
		case info.IsDir() && recursive && !hasFolderPrefix(name) && stem(name) != privateFolder:
			g.dirs = append(g.dirs, pathEntry{path: child, kind: entryFolder})
			if err := g.glob(ctx, child, true); err != nil {
				return err
			}
		case info.IsDir() && hasFolderPrefix(name):
			kind := entryNamespace
			if name[0] == classFolderMark {
				kind = entryClassFolder
			}
			g.paths = append(g.paths, pathEntry{path: child, kind: kind})
			g.dirs = append(g.dirs, pathEntry{path: child, kind: kind})
			if err := g.glob(ctx, child, false); err != nil {
				return err
			}
		case !info.IsDir() && strings.HasSuffix(name, mFileSuffix) && name != contentsFile:
			g.paths = append(g.paths, pathEntry{path: child, kind: entryFile})
		}
	}
	return nil
}

func hasFolderPrefix(name string) bool {
	if name == "" {
		return false
	}
	return name[0] == classFolderMark || name[0] == namespaceMark
}

// stem returns name without its file extension, MATLAB folders included:
// "+pkg" has no extension so stem("+pkg") == "+pkg".
func stem(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}

// maxStemLength reports the length of the longest path member's stem,
// useful for aligning diagnostic output; kept for parity with
// collection.py: _PathGlobber.max_stem_length.
func (g *pathGlobber) maxStemLength() int {
	max := 0
	for _, p := range g.paths {
		if n := len(stem(baseName(p))); n > max {
			max = n
		}
	}
	return max
}

func baseName(p string) string {
	if i := strings.LastIndexAny(p, "/\\"); i >= 0 {
		return p[i+1:]
	}
	return p
}
