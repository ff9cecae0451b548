// Package composite arranges directories and files in a tree where every
// member exposes the same Node behavior and paths are computed by walking
// up the parent links.
package composite
