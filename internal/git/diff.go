package git

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
)

// FileStatusCode specifies the status of a file in a diff.
type FileStatusCode string

// List of file status codes from
// https://git-scm.com/docs/git-diff-index#Documentation/git-diff-index.txt---diff-filterACDMRTUXB82308203.
const (
	FileUnchanged   FileStatusCode = ""
	FileAdded       FileStatusCode = "A"
	FileCopied      FileStatusCode = "C"
	FileDeleted     FileStatusCode = "D"
	FileModified    FileStatusCode = "M"
	FileRenamed     FileStatusCode = "R"
	FileTypeChanged FileStatusCode = "T"
	FileUnmerged    FileStatusCode = "U"
)

// FileStatus is a single file in a diff.
type FileStatus struct {
	// Status of the file.
	Status FileStatusCode

	// Score is the similarity percentage for renames and copies.
	Score int

	// Path to the file relative to the tree root.
	// For renames and copies, this is the destination path.
	Path string

	// OldPath is the source path of a rename or copy.
	// It is empty for other statuses.
	OldPath string
}

// DiffTree compares two tree-ish objects
// and returns the files that differ between them,
// in the order reported by Git.
// Renames and copies are detected.
func (r *Repository) DiffTree(ctx context.Context, from, to string) ([]FileStatus, error) {
	cmd := r.gitCmd(ctx,
		"diff-tree", "-r", "-z",
		"--name-status",
		"--find-renames",
		"--end-of-options",
		from, to,
	)

	var (
		files   []FileStatus
		pending *FileStatus // waiting for its paths
		paths   int         // paths still expected for pending
	)
	for tok, err := range cmd.Scan(splitNullByte) {
		if err != nil {
			return nil, fmt.Errorf("diff-tree: %w", err)
		}
		if len(tok) == 0 {
			continue
		}

		if pending == nil {
			st, err := parseFileStatus(tok)
			if err != nil {
				return nil, err
			}
			pending = &st
			paths = 1
			if st.Status == FileRenamed || st.Status == FileCopied {
				paths = 2
			}
			continue
		}

		if paths == 2 && pending.OldPath == "" {
			pending.OldPath = string(tok)
			continue
		}
		pending.Path = string(tok)
		files = append(files, *pending)
		pending = nil
	}

	if pending != nil {
		return nil, fmt.Errorf("diff-tree: truncated entry for status %q", pending.Status)
	}
	return files, nil
}

// parseFileStatus parses a status token like "M" or "R087".
func parseFileStatus(tok []byte) (FileStatus, error) {
	code := FileStatusCode(tok[:1])
	switch code {
	case FileAdded, FileCopied, FileDeleted, FileModified,
		FileRenamed, FileTypeChanged, FileUnmerged:
	default:
		return FileStatus{}, fmt.Errorf("unknown file status %q", tok)
	}

	var score int
	if len(tok) > 1 {
		var err error
		score, err = strconv.Atoi(string(tok[1:]))
		if err != nil {
			return FileStatus{}, fmt.Errorf("bad similarity score in %q: %w", tok, err)
		}
	}
	return FileStatus{Status: code, Score: score}, nil
}

// splitNullByte is a bufio.SplitFunc that splits on NUL bytes.
func splitNullByte(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
