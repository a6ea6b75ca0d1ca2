package demo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Result is the captured output of one demo.
type Result struct {
	Demo  string   `json:"demo"`
	Lines []string `json:"lines"`
}

// Runner executes demos in order, logging each one.
type Runner struct {
	log *zap.Logger
}

// NewRunner returns a Runner that logs to log. A nil logger disables logging.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run writes each demo's output to w. It stops at the first failing demo.
func (r *Runner) Run(w io.Writer, demos []Demo) error {
	for _, d := range demos {
		if err := r.runOne(w, d); err != nil {
			return err
		}
	}
	r.log.Info("demos complete", zap.Int("count", len(demos)))
	return nil
}

// Capture runs each demo into its own buffer and returns the lines it wrote.
func (r *Runner) Capture(demos []Demo) ([]Result, error) {
	results := make([]Result, 0, len(demos))
	for _, d := range demos {
		var buf bytes.Buffer
		if err := r.runOne(&buf, d); err != nil {
			return nil, err
		}
		results = append(results, Result{Demo: d.Name, Lines: splitLines(buf.Bytes())})
	}
	r.log.Info("demos captured", zap.Int("count", len(results)))
	return results, nil
}

func (r *Runner) runOne(w io.Writer, d Demo) error {
	r.log.Debug("running demo", zap.String("demo", d.Name))
	if err := d.Run(w); err != nil {
		r.log.Error("demo failed", zap.String("demo", d.Name), zap.Error(err))
		return fmt.Errorf("demo %s: %w", d.Name, err)
	}
	return nil
}

// RunAll runs demos against w without logging.
func RunAll(w io.Writer, demos []Demo) error {
	return NewRunner(nil).Run(w, demos)
}

func splitLines(b []byte) []string {
	lines := []string{}
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}
