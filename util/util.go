package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

func IsMidiPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// GatherAllMidiPaths walks path for MIDI files. maxNum of 0 means no limit.
// Files this tool wrote itself are skipped.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsMidiPath(s) || IsOutputPath(s) {
			return nil
		}
		if maxNum == 0 || len(res) < maxNum {
			res = append(res, s)
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}
	return res, nil
}

const outputMarker = ".hands"

// OutputPath names the split file for input inside outDir, e.g.
// song.mid -> outDir/song.hands_dp.mid for suffix "dp".
func OutputPath(outDir, input, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := base + outputMarker
	if suffix != "" {
		name += "_" + suffix
	}
	return filepath.Join(outDir, name+".mid")
}

func IsOutputPath(path string) bool {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.HasSuffix(stem, outputMarker) || strings.Contains(stem, outputMarker+"_")
}

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

func Max[A constraints.Ordered](a, b A) A {
	if a > b {
		return a
	}
	return b
}

func Sum[A constraints.Integer | constraints.Float](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}
