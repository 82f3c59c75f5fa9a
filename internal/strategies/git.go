// internal/strategies/git.go
package strategies

import (
	"context"
	"os"
	"strconv"

	"modelfetch/internal/platform/fsutil"
)

// clone clona repo en un directorio hermano temporal y lo intercambia con dest
// solo cuando el clon terminó, de modo que dest nunca queda a medias.
// depth <= 0 hace un clon completo.
func clone(ctx context.Context, tc Toolchain, repo, dest string, depth int) error {
	staging, err := fsutil.StagingDir(dest)
	if err != nil {
		return err
	}

	args := []string{"clone"}
	if depth > 0 {
		args = append(args, "--depth", strconv.Itoa(depth))
	}
	args = append(args, repo, staging)

	tc.Logger.Info("cloning repository", "repo", repo, "dest", dest)
	if _, err := tc.git(ctx, "", args...); err != nil {
		_ = os.RemoveAll(staging)
		return commandFailure("git clone "+repo, err)
	}

	if err := fsutil.Swap(staging, dest, tc.Logger); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}
	return nil
}
