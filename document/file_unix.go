//go:build unix

package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/lixenwraith/tin/parameter"
)

// fileMeta is what a save must carry over to the replacement file
type fileMeta struct {
	target string // Real file to replace, symlinks resolved
	mode   os.FileMode
	uid    int
	gid    int
	exists bool
}

// statTarget captures permission bits, owner and group of path, following a symlink to its destination
func statTarget(path string) (fileMeta, error) {
	meta := fileMeta{target: path, mode: parameter.DefaultFileMode}

	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		if err == unix.ENOENT {
			return meta, nil
		}
		return meta, fmt.Errorf("stat error: %w", err)
	}

	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		dest, err := os.Readlink(path)
		if err != nil {
			return meta, fmt.Errorf("readlink error: %w", err)
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		meta.target = dest

		if err := unix.Stat(dest, &st); err != nil {
			if err == unix.ENOENT {
				return meta, nil // Dangling link: create its destination
			}
			return meta, fmt.Errorf("stat error: %w", err)
		}
	}

	meta.mode = os.FileMode(st.Mode & 0o777)
	meta.uid = int(st.Uid)
	meta.gid = int(st.Gid)
	meta.exists = true
	return meta, nil
}

// saveAtomic writes through fill into a temporary file next to the target,
// applies the captured metadata and renames it over the target
func saveAtomic(path string, fill func(io.Writer) (int, error)) (n int, err error) {
	meta, err := statTarget(path)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(meta.target), filepath.Base(meta.target)+".*")
	if err != nil {
		return 0, fmt.Errorf("create error: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	n, err = fill(tmp)
	if err != nil {
		return 0, fmt.Errorf("write error: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("write error: %w", err)
	}

	if err := tmp.Chmod(meta.mode); err != nil {
		return 0, fmt.Errorf("chmod error: %w", err)
	}

	if meta.exists {
		var st unix.Stat_t
		if err := unix.Fstat(int(tmp.Fd()), &st); err != nil {
			return 0, fmt.Errorf("stat error: %w", err)
		}
		if int(st.Uid) != meta.uid || int(st.Gid) != meta.gid {
			if err := tmp.Chown(meta.uid, meta.gid); err != nil {
				return 0, fmt.Errorf("chown error: %w", err)
			}
		}
	}

	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("write error: %w", err)
	}

	if err := os.Rename(tmpName, meta.target); err != nil {
		return 0, fmt.Errorf("rename error: %w", err)
	}

	committed = true
	return n, nil
}
