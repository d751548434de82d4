package cache

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileStore keeps one file per key. Each file starts with a header line
// holding the expiry (unix seconds, 0 for none) and the original key, which
// lets prefix invalidation work without an index.
type FileStore struct {
	dir string
	now func() time.Time
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

func (f *FileStore) path(key string) string {
	sum := sha1.Sum([]byte(key))
	name := hex.EncodeToString(sum[:])
	return filepath.Join(f.dir, name[:2], name[2:4], name)
}

type fileHeader struct {
	expiresAt int64
	key       string
}

func readHeader(r *bufio.Reader) (fileHeader, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return fileHeader{}, err
	}
	return parseHeader(strings.TrimSuffix(line, "\n"))
}

func parseHeader(line string) (fileHeader, error) {
	expiry, key, ok := strings.Cut(line, " ")
	if !ok {
		return fileHeader{}, errors.New("cache: malformed file header")
	}
	n, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil {
		return fileHeader{}, fmt.Errorf("cache: malformed expiry: %w", err)
	}
	return fileHeader{expiresAt: n, key: key}, nil
}

func (f *FileStore) expired(h fileHeader) bool {
	return h.expiresAt > 0 && h.expiresAt <= f.now().Unix()
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		return nil, ErrMiss
	}
	header, err := parseHeader(string(data[:idx]))
	if err != nil || header.key != key {
		return nil, ErrMiss
	}
	if f.expired(header) {
		_ = os.Remove(f.path(key))
		return nil, ErrMiss
	}
	return data[idx+1:], nil
}

func (f *FileStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = f.now().Add(ttl).Unix()
	}

	target := f.path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	fmt.Fprintf(w, "%d %s\n", expiresAt, key)
	w.Write(value)
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (f *FileStore) Forget(_ context.Context, key string) (bool, error) {
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// FlushByPrefix reads the header of every cache file and removes those whose
// key matches.
func (f *FileStore) FlushByPrefix(_ context.Context, prefix string) (int, error) {
	removed := 0
	err := f.walk(func(path string, h fileHeader) error {
		if !strings.HasPrefix(h.key, prefix) {
			return nil
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if !f.expired(h) {
			removed++
		}
		return nil
	})
	return removed, err
}

func (f *FileStore) Flush(_ context.Context) error {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(f.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (f *FileStore) Driver() string { return DriverFile }

// Prune removes expired files.
func (f *FileStore) Prune(_ context.Context) (int64, error) {
	var removed int64
	err := f.walk(func(path string, h fileHeader) error {
		if f.expired(h) {
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
		return nil
	})
	return removed, err
}

// StartJanitor prunes expired files every interval until ctx is cancelled.
func (f *FileStore) StartJanitor(ctx context.Context, interval time.Duration) {
	runJanitor(ctx, interval, DriverFile, f.Prune)
}

func (f *FileStore) walk(fn func(path string, h fileHeader) error) error {
	return filepath.WalkDir(f.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return nil
		}
		header, herr := readHeader(bufio.NewReader(file))
		file.Close()
		if herr != nil {
			return nil
		}
		return fn(path, header)
	})
}
