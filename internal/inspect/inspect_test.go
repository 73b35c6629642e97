package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-portable-fileio/internal/fileio"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		errType error
		wantErr bool
	}{
		{
			name:    "full config",
			content: "time_format = \"2006-01-02\"\ncolor = \"never\"\n",
			want:    Config{TimeFormat: "2006-01-02", Color: ColorNever},
		},
		{
			name:    "missing keys keep defaults",
			content: "color = \"always\"\n",
			want:    Config{TimeFormat: time.RFC3339, Color: ColorAlways},
		},
		{
			name:    "empty file is all defaults",
			content: "",
			want:    DefaultConfig(),
		},
		{
			name:    "invalid color mode",
			content: "color = \"sometimes\"\n",
			wantErr: true,
			errType: ErrInvalidColorMode,
		},
		{
			name:    "malformed toml",
			content: "color = [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			cfg, err := LoadConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					require.ErrorIs(t, err, tt.errType)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))

	var openErr *fileio.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, fileio.KindNotFound, openErr.Kind)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o600))

	ins := NewInspector(DefaultConfig(), false, nil)
	report, err := ins.Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, path, report.Path)
	assert.Equal(t, uint64(10), report.Stat.Size)
}

func TestInspectMissingFile(t *testing.T) {
	ins := NewInspector(DefaultConfig(), false, nil)
	_, err := ins.Inspect(filepath.Join(t.TempDir(), "absent"))

	var openErr *fileio.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, fileio.KindNotFound, openErr.Kind)
}

func TestTouch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "touched.bin")

	// 100 ns aligned so the values survive both platform families
	when := time.Date(2024, 3, 10, 6, 0, 0, 555_000_000, time.UTC)

	ins := NewInspector(DefaultConfig(), false, nil)
	report, err := ins.Touch(path, when)
	require.NoError(t, err)

	assert.Equal(t, when.UnixNano(), report.Stat.Atime)
	assert.Equal(t, when.UnixNano(), report.Stat.Mtime)

	// Touch creates missing files
	_, statErr := os.Lstat(path)
	assert.NoError(t, statErr)
}

func TestRender(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeFormat = "2006-01-02"

	ins := NewInspector(cfg, false, nil)
	report := Report{
		Path: "/tmp/x",
		Stat: fileio.Stat{
			Size:    42,
			Mode:    0o644,
			HasMode: true,
			Mtime:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).UnixNano(),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ins.Render(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "/tmp/x")
	assert.Contains(t, out, "size:  42")
	assert.Contains(t, out, "mode:  0644")
	assert.Contains(t, out, "2024-05-01")
	assert.NotContains(t, out, "\033[", "palette disabled")
}

func TestRenderColored(t *testing.T) {
	ins := NewInspector(DefaultConfig(), true, nil)

	var buf bytes.Buffer
	require.NoError(t, ins.Render(&buf, Report{Path: "p"}))
	assert.Contains(t, buf.String(), "\033[36m", "path role uses cyan")
}
