package inspect

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/isseis/go-portable-fileio/internal/color"
	"github.com/isseis/go-portable-fileio/internal/fileio"
)

// Report is the inspection result for one path.
type Report struct {
	Path string
	Stat fileio.Stat
}

// Inspector stats files through the portable handle and renders the
// normalized metadata.
type Inspector struct {
	cfg     Config
	palette color.Palette
	logger  *slog.Logger
}

// NewInspector creates an Inspector. colorEnabled is decided by the
// caller, typically from terminal capabilities and the config's color
// mode.
func NewInspector(cfg Config, colorEnabled bool, logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inspector{
		cfg:     cfg,
		palette: color.NewPalette(colorEnabled),
		logger:  logger,
	}
}

// Inspect opens path read-only and returns its metadata.
func (ins *Inspector) Inspect(path string) (Report, error) {
	f, err := fileio.Open(path, fileio.FlagRead)
	if err != nil {
		return Report{}, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			ins.logger.Warn("failed to close file", slog.String("path", path), slog.Any("error", closeErr))
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return Report{}, err
	}

	ins.logger.Debug("inspected file",
		slog.String("path", path),
		slog.Uint64("size", st.Size),
	)
	return Report{Path: path, Stat: st}, nil
}

// Touch sets both timestamps of path to t, creating the file when it is
// missing, and returns the refreshed metadata.
func (ins *Inspector) Touch(path string, t time.Time) (Report, error) {
	f, err := fileio.Open(path, fileio.FlagRead|fileio.FlagWrite)
	if err != nil {
		return Report{}, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			ins.logger.Warn("failed to close file", slog.String("path", path), slog.Any("error", closeErr))
		}
	}()

	ns := t.UnixNano()
	if err := f.UpdateTimes(ns, ns); err != nil {
		return Report{}, err
	}

	st, err := f.Stat()
	if err != nil {
		return Report{}, err
	}
	return Report{Path: path, Stat: st}, nil
}

// Render writes a multi-line description of the report to w.
func (ins *Inspector) Render(w io.Writer, r Report) error {
	pal := ins.palette
	lines := []string{
		pal.Path(r.Path),
		fmt.Sprintf("  size:  %s", pal.Size(fmt.Sprintf("%d", r.Stat.Size))),
	}
	if r.Stat.HasMode {
		lines = append(lines, fmt.Sprintf("  mode:  %s", pal.Mode(fmt.Sprintf("%04o", r.Stat.Mode&0o7777))))
	}
	lines = append(lines,
		fmt.Sprintf("  atime: %s", pal.Timestamp(ins.formatTime(r.Stat.Atime))),
		fmt.Sprintf("  mtime: %s", pal.Timestamp(ins.formatTime(r.Stat.Mtime))),
		fmt.Sprintf("  ctime: %s", pal.Timestamp(ins.formatTime(r.Stat.Ctime))),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}
	return nil
}

// RenderError writes a one-line failure notice for path.
func (ins *Inspector) RenderError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s: %s\n", path, ins.palette.Error(err.Error()))
}

func (ins *Inspector) formatTime(ns int64) string {
	return time.Unix(0, ns).UTC().Format(ins.cfg.TimeFormat)
}
