package model

// Path represents a file system path.
type Path string

func (p Path) String() string {
	return string(p)
}
