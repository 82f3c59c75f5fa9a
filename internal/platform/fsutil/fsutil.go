// Package fsutil holds the filesystem helpers acquisition strategies share:
// emptiness checks, staged directory swaps and tree copies.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"modelfetch/internal/platform/logx"
)

// removeAll se sustituye en tests
var removeAll = os.RemoveAll

// Entry is one top-level item of a directory with its total size.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

// SizeMB returns the size in mebibytes.
func (e Entry) SizeMB() float64 {
	return float64(e.Size) / (1024 * 1024)
}

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsEmpty reports whether dir has no visible entries. A missing directory is
// empty. Names starting with "." are ignored so staging leftovers do not count.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), ".") {
			return false, nil
		}
	}
	return true, nil
}

// StagingDir creates a hidden sibling of dest to build a replacement in.
func StagingDir(dest string) (string, error) {
	parent := filepath.Dir(dest)
	if err := EnsureDir(parent); err != nil {
		return "", err
	}
	return os.MkdirTemp(parent, "."+filepath.Base(dest)+".staging-")
}

// Swap replaces dest with staging. The previous dest is moved aside first and
// restored if the final rename fails, so dest is never a mix of both trees.
// Once the new tree is in place a leftover backup is only logged.
func Swap(staging, dest string, logger logx.Logger) error {
	var backup string
	if Exists(dest) {
		backup = fmt.Sprintf("%s.old-%d", filepath.Join(filepath.Dir(dest), "."+filepath.Base(dest)), time.Now().UnixNano())
		if err := os.Rename(dest, backup); err != nil {
			return fmt.Errorf("failed to move %s aside: %w", dest, err)
		}
	}

	if err := os.Rename(staging, dest); err != nil {
		if backup != "" {
			_ = os.Rename(backup, dest)
		}
		return fmt.Errorf("failed to move %s into place: %w", staging, err)
	}

	if backup != "" {
		if err := removeAll(backup); err != nil && logger != nil {
			logger.Warn("could not remove previous tree", "backup", backup, "error", err.Error())
		}
	}
	return nil
}

// CopyEntries copies every top-level entry of src into dest. Each entry is
// copied to a hidden temporary name inside dest and renamed over the old one.
func CopyEntries(src, dest string) (int, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}
	if err := EnsureDir(dest); err != nil {
		return 0, err
	}

	copied := 0
	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dest, e.Name())
		tmp := filepath.Join(dest, fmt.Sprintf(".%s.partial-%d", e.Name(), time.Now().UnixNano()))

		if err := CopyTree(from, tmp); err != nil {
			_ = os.RemoveAll(tmp)
			return copied, fmt.Errorf("copy %s: %w", e.Name(), err)
		}
		if err := os.RemoveAll(to); err != nil {
			_ = os.RemoveAll(tmp)
			return copied, fmt.Errorf("remove stale %s: %w", to, err)
		}
		if err := os.Rename(tmp, to); err != nil {
			_ = os.RemoveAll(tmp)
			return copied, fmt.Errorf("rename %s: %w", e.Name(), err)
		}
		copied++
	}
	return copied, nil
}

// CopyTree copies src (file or directory) to dst, preserving permissions and
// modification times.
func CopyTree(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(src)
		if err != nil {
			return err
		}
		return os.Symlink(target, dst)
	case info.IsDir():
		if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return err
		}
		children, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, c := range children {
			if err := CopyTree(filepath.Join(src, c.Name()), filepath.Join(dst, c.Name())); err != nil {
				return err
			}
		}
		return nil
	default:
		return copyFile(src, dst, info)
	}
}

func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// DirSize sums the sizes of regular files under path.
func DirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// List returns the visible top-level entries of dir sorted by name.
func List(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		size, err := DirSize(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Name: e.Name(), IsDir: e.IsDir(), Size: size})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
