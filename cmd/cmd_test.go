package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	digest "github.com/Giulio2002/faster_digest"
)

const (
	sha256ABC = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	sha3ABC   = "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"
	sha3Empty = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
)

// noConfig points --config at an empty file so a config in $HOME never
// leaks into a test run.
func noConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "digest.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	rootCmd := NewRootCommand()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", noConfig(t)}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSumArgs(t *testing.T) {
	out, err := run(t, "", "sum", "abc", "")
	require.NoError(t, err)
	require.Equal(t,
		sha256ABC+"  sha256  abc\n"+
			sha3ABC+"  sha3-256  abc\n"+
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  sha256  \n"+
			sha3Empty+"  sha3-256  \n",
		out)
}

func TestSumStdinKeepsOrder(t *testing.T) {
	var in strings.Builder
	var want strings.Builder
	for i := 0; i < 50; i++ {
		line := strings.Repeat("x", i)
		in.WriteString(line + "\r\n")
		d := digest.SumSHA3_256([]byte(line))
		want.WriteString(d.String() + "  sha3-256  " + line + "\n")
	}

	out, err := run(t, in.String(), "sum", "--algo", "sha3-256", "--workers", "4")
	require.NoError(t, err)
	require.Equal(t, want.String(), out)
}

func TestSumInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc\n"), 0o600))

	out, err := run(t, "", "sum", "--algo", "sha256", "--input", path)
	require.NoError(t, err)
	require.Equal(t, sha256ABC+"  sha256  abc\n", out)
}

func TestSumRejectsUnknownAlgorithm(t *testing.T) {
	_, err := run(t, "", "sum", "--algo", "md5", "abc")
	require.True(t, errors.Is(err, digest.ErrUnknownAlgorithm))
}

func TestSumRejectsInvalidUTF8(t *testing.T) {
	_, err := run(t, "ok\n\xff\n", "sum")
	require.True(t, errors.Is(err, digest.ErrEncoding))
}

func TestPrompt(t *testing.T) {
	out, err := run(t, "abc\n", "prompt")
	require.NoError(t, err)
	require.Equal(t,
		"Enter something: Input: abc\n"+
			"SHA256 Hash: "+sha256ABC+"\n"+
			"SHA3-256 Hash: "+sha3ABC+"\n",
		out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algo: [sha3-256]\nworkers: 2\n"), 0o600))

	rootCmd := NewRootCommand()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "sum", "abc"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, sha3ABC+"  sha3-256  abc\n", out.String())
}

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	v.Set("workers", 0)
	config, err := LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, 1, config.Workers)
	require.Equal(t, digest.Algorithms, config.Algorithms)

	v.Set("algo", []string{"sha3-256,sha256"})
	config, err = LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, []digest.Algorithm{digest.SHA3_256, digest.SHA256}, config.Algorithms)
}

func TestHashLinesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	config := &Config{Algorithms: digest.Algorithms, Workers: 1}
	_, err := hashLines(ctx, config, []string{"a", "b"})
	require.ErrorIs(t, err, context.Canceled)
}
