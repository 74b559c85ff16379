package matlab

// Folder is a plain directory on the MATLAB path: not a namespace (`+pkg`)
// and not a class folder (`@Class`). It exists mainly as a canonical-path
// boundary — Object.CanonicalPath stops climbing at the nearest Folder.
type Folder struct {
	Object
}

// NewFolder constructs a Folder entity for the directory at name.
func NewFolder(name string) *Folder {
	o := NewObject(KindFolder, name, 0, 0, "")
	return &Folder{Object: o}
}
