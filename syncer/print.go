package syncer

import (
	"github.com/xlab/treeprint"
	"golang.org/x/tools/txtar"
)

// Print renders the tree shape under a root label, one entry per line.
func Print(root string, dir Dir) string {
	tree := treeprint.NewWithRoot(root)
	addBranch(tree, dir)
	return tree.String()
}

func addBranch(tree treeprint.Tree, dir Dir) {
	for _, name := range dir.Names() {
		if sub, ok := dir[name].(Dir); ok {
			addBranch(tree.AddBranch(name+"/"), sub)
			continue
		}
		tree.AddNode(name)
	}
}

// Archive renders every file of the tree into a txtar archive, in path
// order. Lazy nodes are evaluated.
func Archive(dir Dir) ([]byte, error) {
	ar := &txtar.Archive{}
	err := dir.Walk(func(p string, n Node) error {
		content, err := Content(n)
		if err != nil {
			return err
		}
		if content != "" && content[len(content)-1] != '\n' {
			content += "\n"
		}
		ar.Files = append(ar.Files, txtar.File{Name: p, Data: []byte(content)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txtar.Format(ar), nil
}

// FromArchive rebuilds a tree of File nodes from a txtar archive.
func FromArchive(data []byte) Dir {
	ar := txtar.Parse(data)
	root := Dir{}
	for _, f := range ar.Files {
		parts := splitPath(f.Name)
		if len(parts) == 0 {
			continue
		}
		cur := root
		for _, part := range parts[:len(parts)-1] {
			sub, ok := cur[part].(Dir)
			if !ok {
				sub = Dir{}
				cur[part] = sub
			}
			cur = sub
		}
		cur[parts[len(parts)-1]] = File(f.Data)
	}
	return root
}
