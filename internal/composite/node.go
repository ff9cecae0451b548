package composite

import (
	"log/slog"

	"github.com/google/uuid"
)

// RootPath is the path of the root directory.
const RootPath = "/"

// Separator joins the names of a path.
const Separator = "/"

// Node is any member of the tree. The set of implementations is closed:
// only *Dir and *File satisfy it.
type Node interface {
	ID() uuid.UUID
	Name() string
	Path() (string, error)
	Parent() *Dir
	SetParent(parent *Dir) Node

	node()
}

// File is a leaf: it never holds children.
type File struct {
	id   uuid.UUID
	name string
	dir  *Dir
}

// Dir is a container holding an ordered list of children.
type Dir struct {
	id       uuid.UUID
	name     string
	root     bool
	children []Node
	parent   *Dir
}

// NewRoot returns the root directory. Its path is always RootPath.
func NewRoot() *Dir {
	return &Dir{
		id:       uuid.New(),
		root:     true,
		children: []Node{},
	}
}

// NewDir creates a directory and, when parent is not nil, attaches it to
// parent.
func NewDir(name string, parent *Dir) *Dir {
	d := &Dir{
		id:       uuid.New(),
		name:     name,
		children: []Node{},
	}
	if parent != nil {
		d.parent = parent
		parent.AddChild(d)
	}
	return d
}

// NewFile creates a file and, when parent is not nil, attaches it to parent.
func NewFile(name string, parent *Dir) *File {
	f := &File{
		id:   uuid.New(),
		name: name,
	}
	if parent != nil {
		f.dir = parent
		parent.AddChild(f)
	}
	return f
}

func (f *File) node() {}

func (f *File) ID() uuid.UUID {
	return f.id
}

func (f *File) Name() string {
	return f.name
}

func (f *File) Parent() *Dir {
	return f.dir
}

// SetParent replaces the back-reference only. Neither the old nor the new
// parent's children are updated. A parent chain that loops makes Path
// recurse until the stack overflows.
func (f *File) SetParent(parent *Dir) Node {
	f.dir = parent
	return f
}

// Path returns the parent's path followed by the file name.
func (f *File) Path() (string, error) {
	if f.dir == nil {
		return "", &MissingParentError{Name: f.name}
	}
	parentPath, err := f.dir.Path()
	if err != nil {
		return "", err
	}
	return parentPath + f.name, nil
}

func (d *Dir) node() {}

func (d *Dir) ID() uuid.UUID {
	return d.id
}

func (d *Dir) Name() string {
	return d.name
}

// IsRoot reports whether d is the tree root.
func (d *Dir) IsRoot() bool {
	return d.root
}

func (d *Dir) Parent() *Dir {
	return d.parent
}

// SetParent replaces the back-reference only. It is ignored on the root.
// Nothing prevents a cycle (d.SetParent(d) included); Path on a node inside
// one recurses until the stack overflows.
func (d *Dir) SetParent(parent *Dir) Node {
	if d.root {
		return d
	}
	d.parent = parent
	return d
}

// Path returns the parent's path followed by the directory name and a
// trailing separator.
func (d *Dir) Path() (string, error) {
	if d.root {
		return RootPath, nil
	}
	if d.parent == nil {
		return "", &MissingParentError{Name: d.name}
	}
	parentPath, err := d.parent.Path()
	if err != nil {
		return "", err
	}
	return parentPath + d.name + Separator, nil
}

// AddChild appends child. It does not check for duplicates or cycles and
// leaves the child's parent untouched.
func (d *Dir) AddChild(child Node) {
	slog.Debug("adding child", "child", child.Name(), "dir", d.name)
	d.children = append(d.children, child)
}

// RemoveChild removes the first child identical to child, keeping the order
// of the others. The removed child is detached when it pointed at d and no
// other entry of d still holds it. It reports whether anything was removed.
func (d *Dir) RemoveChild(child Node) bool {
	for i, c := range d.children {
		if c != child {
			continue
		}
		slog.Debug("removing child", "child", child.Name(), "dir", d.name)
		d.children = append(d.children[:i:i], d.children[i+1:]...)
		if child.Parent() == d && !d.holds(child) {
			child.SetParent(nil)
		}
		return true
	}
	return false
}

func (d *Dir) holds(n Node) bool {
	for _, c := range d.children {
		if c == n {
			return true
		}
	}
	return false
}

// Children returns a copy of the ordered children.
func (d *Dir) Children() []Node {
	out := make([]Node, len(d.children))
	copy(out, d.children)
	return out
}
