package collection

import (
	"context"
	"strings"

	"github.com/go-malt/malt/matlab"
	"github.com/go-malt/malt/parser"
)

// pathResolver classifies a single path on the MATLAB search path and
// lazily materializes the matlab.Member it denotes: a Class assembled from
// a class folder's sibling .m files, a Namespace or Folder assembled from
// its directory contents, or whatever a plain .m file parses to. The
// classification itself (kind) was already determined once by the globber
// that discovered this path, so resolving never needs to re-stat anything
// beyond listing a directory's own children. Mirrors collection.py:
// _PathResolver.
type pathResolver struct {
	path string
	kind entryKind
	pc   *PathsCollection
}

func newPathResolver(path string, kind entryKind, pc *PathsCollection) *pathResolver {
	return &pathResolver{path: path, kind: kind, pc: pc}
}

func (r *pathResolver) base() string { return baseName(strings.TrimRight(r.path, "/")) }

func (r *pathResolver) isFolder() bool      { return r.kind == entryFolder }
func (r *pathResolver) isClassFolder() bool { return r.kind == entryClassFolder }
func (r *pathResolver) isNamespace() bool   { return r.kind == entryNamespace }

func (r *pathResolver) parentPath() string {
	trimmed := strings.TrimRight(r.path, "/")
	if i := strings.LastIndexAny(trimmed, "/\\"); i >= 0 {
		return trimmed[:i]
	}
	return ""
}

func (r *pathResolver) isInNamespace() bool {
	parent := baseName(r.parentPath())
	return parent != "" && parent[0] == namespaceMark
}

// name computes this path's dotted (or "+"-prefixed) identifier purely
// from its position in the directory tree, without reading or parsing any
// file — the same derivation as collection.py: _PathResolver.name, kept
// side-effect free so addpath can register every identifier without
// materializing anything.
func (r *pathResolver) name() string {
	var nsParts []string
	if r.isInNamespace() {
		segments := strings.Split(strings.TrimRight(r.path, "/"), "/")
		for i := len(segments) - 2; i >= 0; i-- {
			seg := segments[i]
			if seg == "" || seg[0] != namespaceMark {
				break
			}
			nsParts = append([]string{seg[1:]}, nsParts...)
		}
	}
	prefix := ""
	if len(nsParts) > 0 {
		prefix = strings.Join(nsParts, ".") + "."
	}

	base := r.base()
	var name string
	if len(base) > 0 && (base[0] == classFolderMark || base[0] == namespaceMark) {
		name = prefix + base[1:]
	} else {
		name = prefix + stem(base)
	}
	if r.isNamespace() {
		name = string(namespaceMark) + name
	}
	return name
}

// resolve materializes the object this path denotes. Called exactly once
// per path by the singleflight-guarded Alias wrapping it.
func (r *pathResolver) resolve(ctx context.Context) (matlab.Member, error) {
	var obj matlab.Member
	var err error
	switch {
	case r.isClassFolder():
		obj, err = r.collectClassFolder(ctx)
	case r.isNamespace():
		obj, err = r.collectNamespace(ctx)
	case r.isFolder():
		obj, err = r.collectFolder(ctx)
	default:
		obj, err = r.collectPath(ctx, r.path)
	}
	if err != nil || obj == nil {
		return obj, err
	}

	if r.isInNamespace() {
		if parentAlias, ok := r.pc.objects[r.parentPath()]; ok {
			if parentObj, perr := parentAlias.Target(); perr == nil {
				if ns, ok := parentObj.(*matlab.Namespace); ok {
					obj.SetParent(ns)
				}
			}
		}
	}
	return obj, nil
}

// collectPath parses a single .m file, recording its source lines.
func (r *pathResolver) collectPath(ctx context.Context, path string) (matlab.Member, error) {
	content, err := r.pc.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, &matlab.FileNotFoundError{Path: path}
	}
	fp := parser.NewFileParser(path, content, r.pc, r.pc.lines)
	obj, err := fp.Parse()
	if err != nil {
		return nil, err
	}
	r.pc.lines.Set(path, string(content))
	return obj, nil
}

// collectDirectory populates object's members from path's direct children:
// namespace/class-folder subdirectories and sibling .m files, each already
// registered as its own alias in pc.objects by addpath. A "Contents.m"
// file's docstring becomes the directory object's own docstring when it
// has none of its own; otherwise a README.md/readme.md fallback is tried.
func (r *pathResolver) collectDirectory(ctx context.Context, path string, object matlab.Member, setParent bool) error {
	entries, err := r.pc.fs.List(ctx, path)
	if err != nil {
		return err
	}
	var contentsDoc string
	var readmeName string
	for _, info := range entries {
		name := info.Name()
		child := joinPath(path, name)
		switch {
		case info.IsDir() && hasFolderPrefix(name):
			sub, serr := r.dereference(child)
			if serr != nil || sub == nil {
				continue
			}
			if setParent {
				sub.SetParent(object)
			}
			object.Members().Set(sub.Name(), sub)
		case !info.IsDir() && strings.HasSuffix(name, mFileSuffix):
			if name == contentsFile {
				doc, derr := r.collectPath(ctx, child)
				if derr == nil && doc != nil {
					contentsDoc = doc.Docstring()
				}
				continue
			}
			sub, serr := r.dereference(child)
			if serr != nil || sub == nil {
				continue
			}
			if setParent {
				sub.SetParent(object)
			}
			object.Members().Set(sub.Name(), sub)
		case !info.IsDir() && (name == "README.md" || name == "readme.md"):
			readmeName = name
		}
	}
	if object.Docstring() == "" {
		if contentsDoc != "" {
			setDocstring(object, contentsDoc)
		} else if readmeName != "" {
			if content, rerr := r.pc.fs.DownloadWithURL(ctx, joinPath(path, readmeName)); rerr == nil {
				setDocstring(object, string(content))
			}
		}
	}
	return nil
}

// dereference looks up an already-registered path's alias and materializes
// its target.
func (r *pathResolver) dereference(path string) (matlab.Member, error) {
	alias, ok := r.pc.objects[path]
	if !ok {
		return nil, nil
	}
	return alias.Target()
}

func (r *pathResolver) collectClassFolder(ctx context.Context) (matlab.Member, error) {
	base := r.base()
	className := base[1:]
	classFile := joinPath(r.path, className+mFileSuffix)

	obj, err := r.collectPath(ctx, classFile)
	if err != nil {
		return nil, nil // no C.m inside @C: not a recognized class folder
	}
	class, ok := obj.(*matlab.Class)
	if !ok {
		return nil, nil
	}

	entries, err := r.pc.fs.List(ctx, r.path)
	if err != nil {
		return nil, err
	}
	var contentsDoc string
	var readmeName string
	for _, info := range entries {
		name := info.Name()
		if info.IsDir() {
			continue
		}
		child := joinPath(r.path, name)
		switch {
		case child == classFile:
			continue
		case strings.HasSuffix(name, mFileSuffix) && name == contentsFile:
			if class.Docstring() == "" {
				if doc, derr := r.collectPath(ctx, child); derr == nil && doc != nil {
					contentsDoc = doc.Docstring()
				}
			}
		case strings.HasSuffix(name, mFileSuffix):
			method, merr := r.dereference(child)
			if merr != nil || method == nil {
				continue
			}
			method.SetParent(class)
			class.Members().Set(method.Name(), method)
		case name == "README.md" || name == "readme.md":
			readmeName = name
		}
	}
	if class.Docstring() == "" {
		if contentsDoc != "" {
			setDocstring(class, contentsDoc)
		} else if readmeName != "" {
			if content, rerr := r.pc.fs.DownloadWithURL(ctx, joinPath(r.path, readmeName)); rerr == nil {
				setDocstring(class, string(content))
			}
		}
	}
	return class, nil
}

func (r *pathResolver) collectNamespace(ctx context.Context) (matlab.Member, error) {
	name := r.name()
	name = strings.TrimPrefix(name, string(namespaceMark))
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	ns := matlab.NewNamespace(name)
	ns.SetFilepath(r.path)
	ns.SetProviders(r.pc.lines, r.pc)
	if err := r.collectDirectory(ctx, r.path, ns, true); err != nil {
		return nil, err
	}
	return ns, nil
}

func (r *pathResolver) collectFolder(ctx context.Context) (matlab.Member, error) {
	name := stem(r.base())
	folder := matlab.NewFolder(name)
	folder.SetFilepath(r.path)
	folder.SetProviders(r.pc.lines, r.pc)
	if err := r.collectDirectory(ctx, r.path, folder, false); err != nil {
		return nil, err
	}
	return folder, nil
}

func setDocstring(m matlab.Member, doc string) {
	if s, ok := m.(interface{ SetDocstring(string) }); ok {
		s.SetDocstring(doc)
	}
}

func joinPath(base, name string) string {
	base = strings.TrimRight(base, "/")
	return base + "/" + name
}
