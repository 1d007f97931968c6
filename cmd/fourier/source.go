package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/cwbudde/algo-epicycle/dsp/curve"
	"github.com/cwbudde/algo-epicycle/dsp/signal"
	"github.com/cwbudde/algo-epicycle/internal/logging"
)

const zstdExt = ".zst"

// lookupSignal resolves a registry name or fails with the known names.
func (e *env) lookupSignal(name string) (signal.Entry, error) {
	s, ok := e.signals.Lookup(name)
	if !ok {
		return signal.Entry{}, fmt.Errorf("unknown signal %q (known: %s)",
			name, strings.Join(e.signals.Names(), ", "))
	}
	return s, nil
}

// loadCurve reads an x,y CSV file, zstd-compressed when it ends in .zst.
func (e *env) loadCurve(path string) (curve.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, zstdExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	c, err := curve.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("curve loaded", logging.Fields{"path": path, "points": len(c)})
	return c, nil
}

// createOutput opens path for writing. "-" is stdout; a .zst suffix
// compresses the stream. The returned close func flushes everything.
func (e *env) createOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return e.stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, zstdExt) {
		return f, f.Close, nil
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	closeAll := func() error {
		if err := enc.Close(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	return enc, closeAll, nil
}
