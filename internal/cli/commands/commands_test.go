package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/logicossoftware/go-binresource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// workdir switches into an empty directory so no stray binres.yaml is picked up.
func workdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func fixedNow(t *testing.T, ts time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = orig })
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "binres", cmd.Use)
	expected := []string{"version", "inspect", "wrap", "unwrap", "set-metadata", "digest"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "expected command %s to be registered", name)
	}
}

func TestVersionCommand(t *testing.T) {
	workdir(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "binres version: "+Version)
	assert.Contains(t, out, "Header version: 1")
}

func TestWrapInspectUnwrap(t *testing.T) {
	dir := workdir(t)
	fixedNow(t, time.Unix(1700000000, 0))
	payload := []byte("opaque payload \x00\x01\x02")
	in := filepath.Join(dir, "payload.raw")
	res := filepath.Join(dir, "res.bin")
	outPath := filepath.Join(dir, "out.raw")
	require.NoError(t, os.WriteFile(in, payload, 0o644))

	_, err := run(t, "wrap", "--type", "42", "--format-version", "1.0.0-dummy", in, res)
	require.NoError(t, err)

	out, err := run(t, "inspect", "--output", "json", res)
	require.NoError(t, err)
	var info resourceInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, binresource.HeaderVersion, info.HeaderVersion)
	assert.Equal(t, int64(len(payload)), info.PayloadSize)
	assert.Equal(t, uint32(42), info.Type)
	assert.Equal(t, "1.0.0-dummy", info.FormatVersion)
	assert.Equal(t, "binres", info.ToolName)
	assert.Equal(t, Version, info.ToolVersion)
	assert.Equal(t, uint64(1700000000), info.GenerationDate)

	out, err = run(t, "inspect", res)
	require.NoError(t, err)
	assert.Contains(t, out, "Tool name")
	assert.Contains(t, out, "binres")
	assert.Contains(t, out, "2023-11-14T22:13:20Z")

	out, err = run(t, "inspect", "-o", "yaml", res)
	require.NoError(t, err)
	assert.Contains(t, out, "tool_name: binres")
	assert.Contains(t, out, "generation_date: 1700000000")

	_, err = run(t, "inspect", "-o", "xml", res)
	require.Error(t, err)

	_, err = run(t, "unwrap", res, outPath)
	require.NoError(t, err)
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWrapUsesConfig(t *testing.T) {
	dir := workdir(t)
	t.Setenv("BINRES_TOOL_INFO", "from environment")
	cfg := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("tool:\n  name: configured\n  version: 3.1.4\n"), 0o644))
	in := filepath.Join(dir, "payload.raw")
	res := filepath.Join(dir, "res.bin")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0o644))

	_, err := run(t, "--config", cfg, "wrap", in, res)
	require.NoError(t, err)

	r, err := binresource.OpenFile(res)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "configured", r.Metadata().ToolName())
	assert.Equal(t, "3.1.4", r.Metadata().ToolVersion())
	assert.Equal(t, "from environment", r.Metadata().ToolInfo())
}

func TestSetMetadataKeepsPayload(t *testing.T) {
	dir := workdir(t)
	in := filepath.Join(dir, "payload.raw")
	res := filepath.Join(dir, "res.bin")
	require.NoError(t, os.WriteFile(in, bytes.Repeat([]byte("abc"), 500), 0o644))
	_, err := run(t, "wrap", "--type", "5", "--tool-name", "first", in, res)
	require.NoError(t, err)
	before, err := run(t, "digest", res)
	require.NoError(t, err)

	_, err = run(t, "set-metadata", "--tool-name", "second", "--date", "99", res)
	require.NoError(t, err)

	r, err := binresource.OpenFile(res)
	require.NoError(t, err)
	md := r.Metadata()
	require.NoError(t, r.Close())
	assert.Equal(t, "second", md.ToolName())
	assert.Equal(t, uint64(99), md.GenerationDate())
	assert.Equal(t, uint32(5), md.Type(), "unset flags keep the current value")

	after, err := run(t, "digest", res)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSetMetadataRejectsOversize(t *testing.T) {
	dir := workdir(t)
	in := filepath.Join(dir, "payload.raw")
	res := filepath.Join(dir, "res.bin")
	require.NoError(t, os.WriteFile(in, nil, 0o644))
	_, err := run(t, "wrap", in, res)
	require.NoError(t, err)

	long := string(bytes.Repeat([]byte("v"), binresource.ToolVersionMaxSize+1))
	_, err = run(t, "set-metadata", "--tool-version", long, res)
	require.ErrorIs(t, err, binresource.ErrFieldTooLong)
}

func TestDigest(t *testing.T) {
	dir := workdir(t)
	payload := []byte("hash me")
	in := filepath.Join(dir, "payload.raw")
	res := filepath.Join(dir, "res.bin")
	require.NoError(t, os.WriteFile(in, payload, 0o644))
	_, err := run(t, "wrap", in, res)
	require.NoError(t, err)

	out, err := run(t, "digest", res)
	require.NoError(t, err)
	sum := blake3.Sum256(payload)
	assert.Equal(t, hex.EncodeToString(sum[:])+"  "+res+"\n", out)
}

func TestInspectRejectsNonResource(t *testing.T) {
	dir := workdir(t)
	bad := filepath.Join(dir, "bad.bin")
	require.NoError(t, os.WriteFile(bad, []byte("not a resource at all"), 0o644))

	_, err := run(t, "inspect", bad)
	require.ErrorIs(t, err, binresource.ErrInvalidMagic)

	_, err = run(t, "inspect", filepath.Join(dir, "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
