package composite

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ChildrenTree lists the path of every direct child of d, one per line, in
// insertion order. Grandchildren are not visited; see DescendantTree.
func (d *Dir) ChildrenTree() (string, error) {
	lines := make([]string, 0, len(d.children))
	for _, child := range d.children {
		p, err := child.Path()
		if err != nil {
			return "", err
		}
		lines = append(lines, p)
	}
	return strings.Join(lines, "\n"), nil
}

// DescendantTree lists the path of every descendant of d, depth first,
// one per line.
func (d *Dir) DescendantTree() (string, error) {
	nodes := Flatten(d)[1:]
	lines := make([]string, 0, len(nodes))
	for _, n := range nodes {
		p, err := n.Path()
		if err != nil {
			return "", err
		}
		lines = append(lines, p)
	}
	return strings.Join(lines, "\n"), nil
}

// Flatten returns n followed by all of its descendants in pre-order.
func Flatten(n Node) []Node {
	out := []Node{n}
	if dir, ok := n.(*Dir); ok {
		for _, child := range dir.children {
			out = append(out, Flatten(child)...)
		}
	}
	return out
}

// Find resolves a slash separated path relative to d. Repeated slashes are
// ignored and an empty path returns d itself. When siblings share a name the
// first one wins.
func (d *Dir) Find(path string) (Node, error) {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })

	var current Node = d
	for i, part := range parts {
		dir, ok := current.(*Dir)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, strings.Join(parts[:i+1], Separator))
		}
		current = dir.child(part)
		if current == nil {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, strings.Join(parts[:i+1], Separator))
		}
	}
	return current, nil
}

// FindByID returns the node under d (or d itself) with the given id.
func (d *Dir) FindByID(id uuid.UUID) (Node, error) {
	for _, n := range Flatten(d) {
		if n.ID() == id {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", ErrNodeNotFound, id)
}

func (d *Dir) child(name string) Node {
	for _, c := range d.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}
