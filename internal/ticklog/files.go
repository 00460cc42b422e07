package ticklog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectFiles lists segment files under dir with the given prefix in
// name order. Segment names embed creation time and segment id, so
// name order is write order. An empty prefix uses the default.
func CollectFiles(dir, prefix string) ([]string, error) {
	if prefix == "" {
		prefix = defaultFilePrefix
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	want := prefix + "-"
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, want) || !strings.HasSuffix(name, SegmentSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

// Walk reads every segment under dir in write order and calls fn once
// per record. The payload passed to fn is only valid for the duration
// of the call.
func Walk(dir, prefix string, opts ReaderOptions, fn func(seq uint64, payload []byte) error) error {
	files, err := CollectFiles(dir, prefix)
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := walkFile(path, opts, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkFile(path string, opts ReaderOptions, fn func(seq uint64, payload []byte) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := NewReader(file, opts)
	for {
		seq, payload, err := reader.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := fn(seq, payload); err != nil {
			return err
		}
	}
}
