package oras

import (
	"context"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/require"

	"github.com/uenv-tools/uenvpull/internal/testutil"
)

func discoverClient(t *testing.T, responseJSON string) *Client {
	t.Helper()
	dir := t.TempDir()
	path := testutil.WriteDiscoverStub(t, dir, "uenv-oras", responseJSON)
	return &Client{Path: path}
}

func TestDiscoverSelectsFirstManifest(t *testing.T) {
	client := discoverClient(t, `{"manifests":[{"digest":"sha256:abc"},{"digest":"sha256:def"}]}`)

	d, err := client.Discover(context.Background(), "registry.example.com/uenv/cp2k/2024", "v1", "uenv/meta")
	require.NoError(t, err)
	require.Equal(t, digest.Digest("sha256:abc"), d)
}

func TestDiscoverSelectionIsOrderSensitive(t *testing.T) {
	client := discoverClient(t, `{"manifests":[{"digest":"sha256:def"},{"digest":"sha256:abc"}]}`)

	d, err := client.Discover(context.Background(), "registry.example.com/uenv/cp2k/2024", "v1", "uenv/meta")
	require.NoError(t, err)
	require.Equal(t, digest.Digest("sha256:def"), d)
}

func TestDiscoverEmptyManifestListFails(t *testing.T) {
	client := discoverClient(t, `{"manifests":[]}`)

	_, err := client.Discover(context.Background(), "registry.example.com/uenv/cp2k/2024", "v1", "uenv/meta")
	var discoverErr *DiscoverError
	require.ErrorAs(t, err, &discoverErr)
}

func TestDiscoverMissingManifestsKeyFails(t *testing.T) {
	client := discoverClient(t, `{"schemaVersion":2}`)

	_, err := client.Discover(context.Background(), "registry.example.com/uenv/cp2k/2024", "v1", "uenv/meta")
	var discoverErr *DiscoverError
	require.ErrorAs(t, err, &discoverErr)
}

func TestDiscoverMalformedJSONFails(t *testing.T) {
	client := discoverClient(t, `{"manifests": "not a list"}`)

	_, err := client.Discover(context.Background(), "registry.example.com/uenv/cp2k/2024", "v1", "uenv/meta")
	var discoverErr *DiscoverError
	require.ErrorAs(t, err, &discoverErr)
}

func TestDiscoverNonzeroExitPropagatesClassifiedFailure(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFailStub(t, dir, "uenv-oras", 1, "Error: repository not found")
	client := &Client{Path: path}

	_, err := client.Discover(context.Background(), "registry.example.com/uenv/cp2k/2024", "v1", "uenv/meta")
	var discoverErr *DiscoverError
	require.ErrorAs(t, err, &discoverErr)
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Contains(t, cmdErr.Stderr, "repository not found")
}

func TestDiscoverPassesArtifactTypeAndAddress(t *testing.T) {
	dir := t.TempDir()
	// Echo the full argument list back as the digest so the test can assert
	// on the exact invocation.
	body := `printf '{"manifests":[{"digest":"args:%s"}]}' "$*"` + "\n"
	path := testutil.WriteScript(t, dir, "uenv-oras", body)
	client := &Client{Path: path}

	d, err := client.Discover(context.Background(), "reg/uenv/prgenv", "23.11", "uenv/meta")
	require.NoError(t, err)
	require.Equal(t, "args:discover -o json --artifact-type uenv/meta reg/uenv/prgenv:23.11", string(d))
}
