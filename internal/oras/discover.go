package oras

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/uenv-tools/uenvpull/internal/messages"
)

// DiscoverError reports that no usable artifact digest could be resolved:
// the discover call itself failed, its output was malformed, or the manifest
// list was empty. None of these improve on retry.
type DiscoverError struct {
	Err error
}

func (e *DiscoverError) Error() string {
	return fmt.Sprintf(messages.DiscoverFailedFmt, e.Err)
}

func (e *DiscoverError) Unwrap() error { return e.Err }

// discoverPollInterval paces the poll loop while a discover call runs.
// Discovery is a short metadata round trip, so this is much tighter than the
// transfer progress interval.
const discoverPollInterval = 25 * time.Millisecond

// Discover resolves address:tag to the content digest of the first manifest
// matching artifactType. Ties between multiple matching manifests are broken
// by list order as returned by the registry; no further disambiguation is
// applied, so "first" is a simplification, not a newest-or-best guarantee.
func (c *Client) Discover(ctx context.Context, address string, tag string, artifactType string) (digest.Digest, error) {
	proc, err := c.Launch("discover", "-o", "json", "--artifact-type", artifactType, address+":"+tag)
	if err != nil {
		return "", err
	}
	defer proc.Terminate()

	stdout, stderr, code, err := Await(ctx, proc, discoverPollInterval)
	if err != nil {
		return "", err
	}
	if err := Classify(code, stderr); err != nil {
		return "", &DiscoverError{Err: err}
	}
	c.logf(messages.OrasSuccessFmt, strings.TrimSpace(stdout))

	// The discover response has the shape of an OCI index. The pointer slice
	// distinguishes a missing manifests key (parse failure) from an empty
	// list (no matching artifact).
	var index struct {
		Manifests *[]ocispec.Descriptor `json:"manifests"`
	}
	if err := json.Unmarshal([]byte(stdout), &index); err != nil {
		return "", &DiscoverError{Err: fmt.Errorf(messages.DiscoverDecodeFmt, err)}
	}
	if index.Manifests == nil {
		return "", &DiscoverError{Err: errors.New(messages.DiscoverMissingManifests)}
	}
	manifests := *index.Manifests
	if len(manifests) == 0 {
		return "", &DiscoverError{Err: errors.New(messages.DiscoverNoManifests)}
	}
	if manifests[0].Digest == "" {
		return "", &DiscoverError{Err: errors.New(messages.DiscoverEmptyDigest)}
	}
	return manifests[0].Digest, nil
}
