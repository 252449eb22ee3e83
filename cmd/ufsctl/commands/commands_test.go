package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

const testConfig = `logging:
  level: ERROR
  format: text
  output: stderr
security:
  authentication_type: SIMPLE
  login:
    username: alice
  group_mapping:
    type: static
    static:
      alice: [staff, wheel]
ufs:
  default_permission: "0777"
  umask: "0022"
`

// aliceWire is user=alice, group unset, posix_perm=0644.
const aliceWire = "00000001" + "00000005" + "616c696365000000" +
	"00000000" +
	"00000001" + "00000004" + "30363434"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m), s)
	return m
}

func TestVersion(t *testing.T) {
	Version = "1.2.3"
	t.Cleanup(func() { Version = "dev" })

	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ufsctl 1.2.3")
	assert.Contains(t, out, "Go version:")
}

func TestDefaults(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := run(t, "defaults", "--config", path, "-o", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "alice", got["user"])
	assert.Equal(t, "staff", got["group"])
	assert.Equal(t, "0755", got["posix_perm"])
	assert.NotContains(t, got, "wire")
}

func TestDefaults_OverridePermAndWire(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := run(t, "defaults", "--config", path, "--posix-perm", "0600", "--wire", "-o", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "0600", got["posix_perm"])
	assert.NotEmpty(t, got["wire"])
}

func TestDefaults_NoSASL(t *testing.T) {
	path := writeConfig(t, strings.Replace(testConfig, "SIMPLE", "NOSASL", 1))

	out, err := run(t, "defaults", "--config", path, "-o", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "", got["user"])
	assert.Equal(t, "", got["group"])
	assert.Equal(t, "0755", got["posix_perm"])
}

func TestDefaults_Table(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := run(t, "defaults", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "staff")
	assert.Contains(t, out, "posix_perm")
}

func TestDefaults_MissingConfig(t *testing.T) {
	_, err := run(t, "defaults", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestDefaults_UserWithoutGroups(t *testing.T) {
	path := writeConfig(t, strings.Replace(testConfig, "username: alice", "username: bob", 1))

	out, err := run(t, "defaults", "--config", path, "-o", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "bob", got["user"])
	assert.Equal(t, "", got["group"])
}

func TestEncode(t *testing.T) {
	out, err := run(t, "encode", "--user", "alice", "--posix-perm", "0644", "-o", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, "alice", got["user"])
	assert.Nil(t, got["group"])
	assert.Equal(t, "0644", got["posix_perm"])
	assert.Equal(t, aliceWire, got["wire"])
}

func TestEncode_EmptyValueIsSet(t *testing.T) {
	out, err := run(t, "encode", "--group", "", "-o", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Nil(t, got["user"])
	assert.Equal(t, "", got["group"])
	assert.Equal(t, "00000000"+"00000001"+"00000000"+"00000000", got["wire"])
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "0x"+aliceWire, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "user: alice")
	assert.Contains(t, out, "group: null")
	assert.Contains(t, out, `posix_perm: "0644"`)
}

func TestDecode_Errors(t *testing.T) {
	_, err := run(t, "decode", "zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex input")

	_, err = run(t, "decode", "00000001")
	require.Error(t, err)
	assert.True(t, ufserrors.IsMalformedWireError(err))

	_, err = run(t, "decode")
	assert.Error(t, err)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := run(t, "encode", "-o", "xml")
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := run(t, "watch", "--config", path, "--count", "3", "--interval", "5ms")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1, "unchanged results are printed once")
	assert.Contains(t, lines[0], "CreateFileOptions{user=alice, group=staff, posixPerm=0755}")
}

func TestWatch_InvalidInterval(t *testing.T) {
	_, err := run(t, "watch", "--interval", "0s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--interval")
}
