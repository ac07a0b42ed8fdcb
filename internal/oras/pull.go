package oras

// Pull launches a pull of ref into destDir and returns immediately; the
// caller decides how to wait. ref is either a tag-qualified address
// (base:tag) or a digest-qualified one (base@digest). Partial files may
// exist under destDir at any point while the child runs.
func (c *Client) Pull(ref string, destDir string) (*Process, error) {
	return c.Launch("pull", "-o", destDir, ref)
}
