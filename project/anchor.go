package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/daedaleanai/holbuild/log"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/mitchellh/go-homedir"
)

// ResolveAnchor determines the location of the orchestration entry point.
//
// An explicit anchor always wins. Otherwise the git worktree containing
// `workingDir` is used, and as a last resort the directory of the running
// executable.
func ResolveAnchor(explicit, workingDir string) (string, error) {
	if explicit != "" {
		expanded, err := homedir.Expand(explicit)
		if err != nil {
			return "", &ConfigurationError{Reason: "unable to expand anchor " + explicit, Err: err}
		}
		log.Debug("Using explicit anchor '%s'.\n", expanded)
		return filepath.Abs(expanded)
	}

	if workingDir != "" {
		root, err := worktreeRoot(workingDir)
		if err == nil {
			log.Debug("Found git worktree at '%s'.\n", root)
			return filepath.Join(root, AnchorDirName), nil
		}
		log.Debug("No git worktree around '%s': %s.\n", workingDir, err)
	}

	executable, err := os.Executable()
	if err != nil {
		return "", &ConfigurationError{Reason: "unable to locate the running executable", Err: err}
	}
	executable, err = filepath.EvalSymlinks(executable)
	if err != nil {
		return "", &ConfigurationError{Reason: "unable to resolve the running executable", Err: err}
	}
	log.Warning("No anchor given and no git worktree found. Falling back to the executable's directory '%s'.\n", filepath.Dir(executable))
	return filepath.Dir(executable), nil
}

func worktreeRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return worktree.Filesystem.Root(), nil
}

// Revision returns the commit hash checked out in the worktree at `root`.
func Revision(root string) (string, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", errors.New("repository has no commits")
		}
		return "", err
	}
	return head.Hash().String(), nil
}
