package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/julianshen/projinsight/internal/discovery"
	"github.com/julianshen/projinsight/internal/scan"
)

// project is the slice of a scanned tree owned by one boundary. Paths in
// its tree are relative to the boundary root.
type project struct {
	tag  int
	rel  string
	tree *scan.Tree
}

// partition splits tree by owning boundary, in tag order. Without any
// boundary the whole tree is one project with the unowned tag. Files that
// no boundary owns are returned by root-relative path.
func partition(tree *scan.Tree, bounds *discovery.Boundaries) ([]project, []string) {
	unowned := []string{}
	if bounds.Len() == 0 {
		return []project{{tag: discovery.UnownedTag, rel: ".", tree: tree}}, unowned
	}

	all := bounds.All()
	index := make(map[int]int, len(all))
	parts := make([]project, len(all))
	for i, b := range all {
		index[b.Tag] = i
		parts[i] = project{
			tag:  b.Tag,
			rel:  relativeTo(tree.Root, b.Root),
			tree: &scan.Tree{Root: b.Root},
		}
	}

	for _, f := range tree.Files {
		owner, ok := bounds.Owner(f.Path)
		if !ok {
			unowned = append(unowned, f.RelPath)
			continue
		}
		part := &parts[index[owner.Tag]]
		f.RelPath = relativeTo(owner.Root, f.Path)
		part.tree.Files = append(part.tree.Files, f)
	}

	for _, dir := range tree.Dirs {
		abs := filepath.Join(tree.Root, filepath.FromSlash(dir))
		if _, isRoot := bounds.Tag(abs); isRoot {
			continue
		}
		owner, ok := bounds.Owner(abs)
		if !ok {
			continue
		}
		part := &parts[index[owner.Tag]]
		part.tree.Dirs = append(part.tree.Dirs, relativeTo(owner.Root, abs))
	}
	return parts, unowned
}

// relativeTo returns path relative to base with forward slashes, or the
// path itself when it cannot be made relative.
func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
