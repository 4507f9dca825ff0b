package submission

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/maastricht-university/zerospeech-convolution/convolution"
)

const maxLineBytes = 16 << 20

// LoadMatrix parses a whitespace-separated text matrix, one frame per line.
// Everything after a '#' is a comment and blank lines are skipped. An empty
// file yields an empty matrix; rows of unequal width yield a *ShapeError.
func LoadMatrix(path string) (convolution.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := convolution.Matrix{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(m) > 0 && len(fields) != len(m[0]) {
			return nil, &ShapeError{Path: path, Line: line, Want: len(m[0]), Got: len(fields)}
		}
		frame := make([]float64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("submission: %s:%d: %w", path, line, err)
			}
			frame[j] = v
		}
		m = append(m, frame)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("submission: read %s: %w", path, err)
	}
	return m, nil
}

// WriteMatrix serializes m to path, one space-separated frame per line,
// creating parent directories. With appendMode the frames are added after
// any existing content; otherwise the file is replaced.
func WriteMatrix(path string, m convolution.Matrix, appendMode bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, frame := range m {
		for j, v := range frame {
			if j > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
