package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hashkit"
	"github.com/hupe1980/hashkit/codec"
	"github.com/hupe1980/hashkit/ring"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestSumString(t *testing.T) {
	out, _, err := runCLI(t, "sum", "--string", "hello")
	require.NoError(t, err)
	assert.Equal(t, "b48be5a931380ce8  hello\n", out)

	out, _, err = runCLI(t, "sum", "--string", "-a", "city64,murmur32", "hello")
	require.NoError(t, err)
	assert.Equal(t, "city64  b48be5a931380ce8  hello\nmurmur32  248bfa47  hello\n", out)
}

func TestSumUnknownAlgorithm(t *testing.T) {
	_, _, err := runCLI(t, "sum", "--string", "-a", "sha1", "hello")

	var unknown *hashkit.ErrUnknownAlgorithm
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "sha1", unknown.Name)

	dir := writeFiles(t, map[string]string{"a.txt": "hello"})
	_, _, err = runCLI(t, "sum", "-s", dir, "-a", "sha1", "a.txt")
	require.ErrorAs(t, err, &unknown)
}

func TestSumLocalStore(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt":     "alpha",
		"sub/b.txt": "beta",
	})

	out, _, err := runCLI(t, "sum", "--store", dir, "a.txt", "sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "de0b782a1d6e3572  a.txt\n270bb20b48fa5770  sub/b.txt\n", out)

	// Without names every blob is hashed, in sorted order.
	all, _, err := runCLI(t, "sum", "--store", dir)
	require.NoError(t, err)
	assert.Equal(t, out, all)

	sub, _, err := runCLI(t, "sum", "--store", dir, "--prefix", "sub/")
	require.NoError(t, err)
	assert.Equal(t, "270bb20b48fa5770  sub/b.txt\n", sub)
}

func TestSumMultipleAlgorithmsWithCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{"h.txt": "hello"})

	out, _, err := runCLI(t, "sum", "-s", dir, "-a", "city64", "-a", "murmur32", "--cache-size", "1048576", "h.txt")
	require.NoError(t, err)
	assert.Equal(t, "city64  b48be5a931380ce8  h.txt\nmurmur32  248bfa47  h.txt\n", out)
}

func TestSumMissingBlob(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "alpha"})

	out, errOut, err := runCLI(t, "sum", "-s", dir, "a.txt", "missing.txt")
	require.ErrorIs(t, err, errFailed)
	assert.Equal(t, "de0b782a1d6e3572  a.txt\n", out)
	assert.Equal(t, 1, strings.Count(errOut, "missing.txt"), errOut)
}

func TestSumDebugLogCarriesStore(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "alpha"})

	_, errOut, err := runCLI(t, "--log-level", "debug", "--log-format", "json", "sum", "-s", dir, "a.txt", "missing.txt")
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, errOut, `"msg":"sum failed"`)
	assert.Contains(t, errOut, `"store":`+strconv.Quote(dir))
}

func TestSumJSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "alpha"})

	out, _, err := runCLI(t, "sum", "-s", dir, "-f", "json", "a.txt", "missing.txt")
	require.ErrorIs(t, err, errFailed)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var ok, bad sumRecord
	require.NoError(t, codec.Default.Unmarshal([]byte(lines[0]), &ok))
	require.NoError(t, codec.Default.Unmarshal([]byte(lines[1]), &bad))

	assert.Equal(t, sumRecord{Name: "a.txt", Algorithm: "city64", Digest: "de0b782a1d6e3572", Size: 5}, ok)
	assert.Equal(t, "missing.txt", bad.Name)
	assert.Empty(t, bad.Digest)
	assert.NotEmpty(t, bad.Error)
}

func TestSumMaxSize(t *testing.T) {
	dir := writeFiles(t, map[string]string{"big.txt": strings.Repeat("x", 100)})

	_, errOut, err := runCLI(t, "sum", "-s", dir, "--max-size", "10", "big.txt")
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, errOut, "big.txt")
}

func TestLocate(t *testing.T) {
	out, _, err := runCLI(t, "locate", "-n", "cache-a", "-n", "cache-b", "-n", "cache-c:2", "user:1", "user:2", "user:3")
	require.NoError(t, err)

	r := ring.New()
	r.Set(
		ring.Node{Name: "cache-a", Weight: 1},
		ring.Node{Name: "cache-b", Weight: 1},
		ring.Node{Name: "cache-c", Weight: 2},
	)

	var want strings.Builder
	for _, key := range []string{"user:1", "user:2", "user:3"} {
		owner, err := r.Get([]byte(key))
		require.NoError(t, err)
		want.WriteString(key + "  " + owner + "\n")
	}
	assert.Equal(t, want.String(), out)
}

func TestLocateReplicas(t *testing.T) {
	out, _, err := runCLI(t, "locate", "-n", "a,b,c", "-r", "2", "-f", "json", "k")
	require.NoError(t, err)

	var rec locateRecord
	require.NoError(t, codec.Default.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "k", rec.Key)
	require.Len(t, rec.Nodes, 2)
	assert.NotEqual(t, rec.Nodes[0], rec.Nodes[1])
}

func TestLocateInvalidNode(t *testing.T) {
	_, _, err := runCLI(t, "locate", "-n", "a:0", "k")
	require.Error(t, err)
}

func TestDupes(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt": "same",
		"b.txt": "same",
		"c.txt": "other",
	})
	state := filepath.Join(t.TempDir(), "seen.roaring")

	out, _, err := runCLI(t, "dupes", "-s", dir, "--save", state, "a.txt", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b.txt  duplicate of a.txt\n", out)

	out, _, err = runCLI(t, "dupes", "-s", dir, "--load", state, "c.txt", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b.txt  duplicate\n", out)
}

func TestDupesApprox(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt": "same",
		"b.txt": "same",
	})

	out, _, err := runCLI(t, "dupes", "-s", dir, "--approx")
	require.NoError(t, err)
	assert.Equal(t, "b.txt  possible duplicate of a.txt\n", out)

	_, _, err = runCLI(t, "dupes", "-s", dir, "--approx", "--save", filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
}

func TestAlgorithms(t *testing.T) {
	out, _, err := runCLI(t, "algorithms")
	require.NoError(t, err)
	assert.Contains(t, out, "city64")
	assert.Contains(t, out, "128")

	out, _, err = runCLI(t, "algorithms", "-f", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(hashkit.Algorithms()))

	var first hashkit.AlgorithmInfo
	require.NoError(t, codec.Default.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, hashkit.Algorithms()[0], first)
}

func TestRunRejectsBadFlags(t *testing.T) {
	_, _, err := runCLI(t, "--log-level", "loud", "algorithms")
	require.Error(t, err)

	_, _, err = runCLI(t, "sum", "-s", "ftp://host/x", "a")
	require.Error(t, err)
}
