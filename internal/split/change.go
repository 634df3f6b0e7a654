package split

import (
	"fmt"

	"go.abhg.dev/git-split-commit/internal/git"
)

// ChangeKind is the kind of a file-level change.
// It decides how the change is staged.
type ChangeKind int

const (
	// Added is a file that did not exist in the parent.
	Added ChangeKind = iota + 1

	// Deleted is a file that does not exist in the commit.
	Deleted

	// Modified is any other change to a file:
	// content or mode changes, renames and copies.
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	case Modified:
		return "modified"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change is a single file-level change between two trees.
type Change struct {
	Kind ChangeKind

	// Status is the status letter reported by Git.
	// It distinguishes renames and copies from other modifications.
	Status git.FileStatusCode

	// Path is the path of the file after the change.
	// For deletions, it's the path of the deleted file.
	Path string

	// OldPath is the source path of a rename or copy.
	OldPath string
}

func (c Change) String() string {
	if c.OldPath != "" {
		return fmt.Sprintf("%s %s -> %s", c.Status, c.OldPath, c.Path)
	}
	return fmt.Sprintf("%s %s", c.Status, c.Path)
}

// changeFromStatus converts a diff entry into a Change.
func changeFromStatus(st git.FileStatus) (Change, error) {
	c := Change{
		Status:  st.Status,
		Path:    st.Path,
		OldPath: st.OldPath,
	}

	switch st.Status {
	case git.FileAdded:
		c.Kind = Added
	case git.FileDeleted:
		c.Kind = Deleted
	case git.FileModified, git.FileTypeChanged, git.FileRenamed, git.FileCopied:
		c.Kind = Modified
	default:
		return Change{}, fmt.Errorf("%v: unsupported file status %q", st.Path, st.Status)
	}
	return c, nil
}

// ChangeSet is an ordered set of changes, unique by path.
type ChangeSet []Change

// Paths returns the paths of the changes in order.
func (cs ChangeSet) Paths() []string {
	paths := make([]string, len(cs))
	for i, c := range cs {
		paths[i] = c.Path
	}
	return paths
}
