package collection

import (
	"context"
	"strings"
	"sync"

	"github.com/viant/afs"
	"go.uber.org/zap"

	"github.com/go-malt/malt/matlab"
)

// memberEntry records one identifier registered from a given root path, so
// RemovePath can undo exactly what AddPath did for that root.
type memberEntry struct {
	name string
	path string
}

// PathsCollection is the MATLAB search path itself: an ordered list of root
// directories, each globbed into identifier -> file/folder mappings the way
// MATLAB's own path machinery resolves `which` and shadowing. It implements
// matlab.MemberLookup and matlab.LinesProvider is supplied separately via
// its LinesCollection field (see Lines) so parsed files can look up their own
// neighbours without package matlab importing this package. Mirrors
// collection.py: PathsCollection.
type PathsCollection struct {
	fs     afs.Service
	ctx    context.Context
	logger *zap.Logger

	mu      sync.Mutex
	roots   []string
	mapping map[string][]string      // identifier -> ordered source paths, front wins
	objects map[string]*matlab.Alias // path -> lazily-resolved alias
	folders map[string]*matlab.Alias // directory path -> lazily-resolved alias
	members map[string][]memberEntry // root path -> identifiers registered from it

	lines            *LinesCollection
	workingDirectory string
}

// New returns an empty collection rooted at fs, optionally pre-populated
// with the given search-path roots (added in order, each to the back of the
// path the way MATLAB's own addpath(..., "-end") does by default).
func New(ctx context.Context, fs afs.Service, workingDirectory string, roots ...string) (*PathsCollection, error) {
	pc := &PathsCollection{
		fs:               fs,
		ctx:              ctx,
		logger:           zap.NewNop(),
		mapping:          map[string][]string{},
		objects:          map[string]*matlab.Alias{},
		folders:          map[string]*matlab.Alias{},
		members:          map[string][]memberEntry{},
		lines:            NewLinesCollection(),
		workingDirectory: workingDirectory,
	}
	for _, root := range roots {
		if err := pc.AddPath(root, true, true); err != nil {
			return nil, err
		}
	}
	return pc, nil
}

// SetLogger overrides the collection's no-op default logger. The logger is
// only stored: classes parsed through the collection are built with their
// own no-op logger, so their unresolved-base diagnostics do not reach it.
func (pc *PathsCollection) SetLogger(l *zap.Logger) {
	if l != nil {
		pc.logger = l
	}
}

// Lines exposes the backing LinesCollection, e.g. to hand to a FileParser
// constructed outside AddPath.
func (pc *PathsCollection) Lines() *LinesCollection { return pc.lines }

// Roots reports the current search path, front (highest shadowing priority)
// to back.
func (pc *PathsCollection) Roots() []string {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	out := make([]string, len(pc.roots))
	copy(out, pc.roots)
	return out
}

// AddPath globs root and registers every identifier it contains. Re-adding
// a root already on the path repositions it (to the front or back per
// toEnd) without reparsing anything still cached in pc.objects from a prior
// AddPath call on an overlapping root. Mirrors collection.py:
// PathsCollection.addpath.
func (pc *PathsCollection) AddPath(root string, toEnd, recursive bool) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	for i, p := range pc.roots {
		if p == root {
			pc.roots = append(pc.roots[:i], pc.roots[i+1:]...)
			break
		}
	}
	if toEnd {
		pc.roots = append(pc.roots, root)
	} else {
		pc.roots = append([]string{root}, pc.roots...)
	}

	g, err := newPathGlobber(pc.ctx, pc.fs, root, recursive)
	if err != nil {
		return err
	}

	regs := make([]memberEntry, 0, len(g.paths))
	for _, pe := range g.paths {
		pe := pe
		resolver := newPathResolver(pe.path, pe.kind, pc)
		identifier := resolver.name()
		if _, cached := pc.objects[pe.path]; !cached {
			pc.objects[pe.path] = matlab.NewAlias(identifierLeaf(identifier), pe.path, func() (matlab.Member, error) {
				return resolver.resolve(pc.ctx)
			})
		}

		// The mapping always grows by appending, regardless of toEnd: the
		// earliest-added entry for an identifier stays at index 0 and wins
		// on lookup. toEnd only changes where root lands in pc.roots.
		pc.mapping[identifier] = append(pc.mapping[identifier], pe.path)
		regs = append(regs, memberEntry{name: identifier, path: pe.path})
	}

	for _, dir := range g.dirs {
		if _, ok := pc.folders[dir.path]; ok {
			continue
		}
		if alias, ok := pc.objects[dir.path]; ok {
			pc.folders[dir.path] = alias
			continue
		}
		dir := dir
		resolver := newPathResolver(dir.path, dir.kind, pc)
		alias := matlab.NewAlias(stem(baseName(dir.path)), dir.path, func() (matlab.Member, error) {
			return resolver.resolve(pc.ctx)
		})
		pc.folders[dir.path] = alias
	}

	pc.members[root] = regs
	return nil
}

// RemovePath undoes a prior AddPath for root, deregistering every
// identifier it contributed. With recursive set, roots previously added
// beneath root are removed too. Mirrors collection.py:
// PathsCollection.rm_path.
func (pc *PathsCollection) RemovePath(root string, recursive bool) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.removeLocked(root)
	if recursive {
		var nested []string
		for p := range pc.members {
			if isSubdirectory(p, root) {
				nested = append(nested, p)
			}
		}
		for _, p := range nested {
			pc.removeLocked(p)
		}
	}
	return nil
}

func (pc *PathsCollection) removeLocked(root string) {
	for i, p := range pc.roots {
		if p == root {
			pc.roots = append(pc.roots[:i], pc.roots[i+1:]...)
			break
		}
	}
	for _, entry := range pc.members[root] {
		lst := pc.mapping[entry.name]
		for i, p := range lst {
			if p == entry.path {
				lst = append(lst[:i], lst[i+1:]...)
				break
			}
		}
		if len(lst) == 0 {
			delete(pc.mapping, entry.name)
		} else {
			pc.mapping[entry.name] = lst
		}
		delete(pc.objects, entry.path)
	}
	delete(pc.members, root)

	for dirPath := range pc.folders {
		if dirPath == root || isSubdirectory(dirPath, root) {
			delete(pc.folders, dirPath)
		}
	}
}

// Members returns every identifier currently visible on the path, mapped to
// its materialized, shadowing-resolved target.
func (pc *PathsCollection) Members() map[string]matlab.Member {
	pc.mu.Lock()
	ids := make(map[string]string, len(pc.mapping))
	for id, paths := range pc.mapping {
		if len(paths) > 0 {
			ids[id] = paths[0]
		}
	}
	pc.mu.Unlock()

	out := make(map[string]matlab.Member, len(ids))
	for id, path := range ids {
		alias, ok := pc.objects[path]
		if !ok {
			continue
		}
		if m, err := alias.Target(); err == nil {
			out[id] = m
		}
	}
	return out
}

// Contains reports whether identifier currently resolves to something.
func (pc *PathsCollection) Contains(identifier string) bool {
	_, err := pc.GetMember(identifier)
	return err == nil
}

// GetMember implements matlab.MemberLookup: resolve identifier against the
// path's mapping first, then "/"-separated directory syntax, then
// "."-separated member access into an already-resolved parent. Mirrors
// collection.py: PathsCollection.__getitem__.
func (pc *PathsCollection) GetMember(identifier string) (matlab.Member, error) {
	pc.mu.Lock()
	paths, ok := pc.mapping[identifier]
	pc.mu.Unlock()
	if ok && len(paths) > 0 {
		alias, ok := pc.objects[paths[0]]
		if !ok {
			return nil, &matlab.NameResolutionError{Name: identifier}
		}
		return alias.Target()
	}

	if strings.Contains(identifier, "/") {
		return pc.getMemberByPath(identifier)
	}

	if i := strings.LastIndex(identifier, "."); i >= 0 {
		parentID, leaf := identifier[:i], identifier[i+1:]
		parent, err := pc.GetMember(parentID)
		if err != nil {
			return nil, err
		}
		if member, ok := parent.Members().Get(leaf); ok {
			return dereference(member)
		}
		return nil, &matlab.NameResolutionError{Name: identifier}
	}

	return nil, &matlab.NameResolutionError{Name: identifier}
}

func (pc *PathsCollection) getMemberByPath(identifier string) (matlab.Member, error) {
	full := identifier
	if !strings.HasPrefix(full, "/") && pc.workingDirectory != "" {
		full = joinPath(pc.workingDirectory, identifier)
	}
	if alias, ok := pc.folders[full]; ok {
		return alias.Target()
	}
	if alias, ok := pc.objects[full]; ok {
		return alias.Target()
	}
	if alias, ok := pc.objects[full+mFileSuffix]; ok {
		return alias.Target()
	}
	return nil, &matlab.NameResolutionError{Name: identifier}
}

func dereference(m matlab.Member) (matlab.Member, error) {
	if a, ok := m.(*matlab.Alias); ok {
		return a.Target()
	}
	return m, nil
}

func identifierLeaf(identifier string) string {
	if i := strings.LastIndex(identifier, "."); i >= 0 {
		return identifier[i+1:]
	}
	return identifier
}

func isSubdirectory(child, parent string) bool {
	parent = strings.TrimRight(parent, "/")
	return strings.HasPrefix(child, parent+"/")
}
