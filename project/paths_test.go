package project

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/daedaleanai/holbuild/log"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	root := t.TempDir()
	paths, err := New(filepath.Join(root, AnchorDirName))
	require.NoError(t, err)

	assert.Equal(t, Paths{
		Anchor:          filepath.Join(root, "scripts"),
		Root:            root,
		RustLibsRoot:    filepath.Join(root, "rust-libs"),
		RustCoreLibRoot: filepath.Join(root, "rust-libs", "hol_core"),
		UIRoot:          filepath.Join(root, "lib"),
		UIGeneratedRoot: filepath.Join(root, "lib", "generated"),
		ProtoRoot:       filepath.Join(root, "proto"),
		WebPkgRoot:      filepath.Join(root, "web", "pkg"),
	}, paths)
}

func TestNewIsDeterministic(t *testing.T) {
	anchor := filepath.Join(t.TempDir(), AnchorDirName)
	first, err := New(anchor)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := New(anchor)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNewRelativeAnchor(t *testing.T) {
	paths, err := New("scripts")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(paths.Root))
	assert.Equal(t, filepath.Dir(paths.Anchor), paths.Root)
}

func TestNewEmptyAnchor(t *testing.T) {
	_, err := New("")
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
}

func TestResolveAnchorExplicit(t *testing.T) {
	dir := t.TempDir()
	anchor, err := ResolveAnchor(dir, "/nonexistent")
	require.NoError(t, err)
	assert.Equal(t, dir, anchor)
}

func TestResolveAnchorFromWorktree(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	nested := filepath.Join(root, "lib", "src")
	require.NoError(t, os.MkdirAll(nested, 0755))
	anchor, err := ResolveAnchor("", nested)
	require.NoError(t, err)

	resolvedRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	resolvedAnchor, err := filepath.EvalSymlinks(filepath.Dir(anchor))
	require.NoError(t, err)
	assert.Equal(t, resolvedRoot, resolvedAnchor)
	assert.Equal(t, AnchorDirName, filepath.Base(anchor))
}

func TestRevision(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	_, err = Revision(root)
	assert.Error(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	hash, err := worktree.Commit("initial", &git.CommitOptions{
		AllowEmptyCommits: true,
		Author:            &object.Signature{Name: "hol", Email: "hol@example.com"},
	})
	require.NoError(t, err)

	rev, err := Revision(root)
	require.NoError(t, err)
	assert.Equal(t, hash.String(), rev)
}

func TestResolveAnchorExecutableFallbackWarns(t *testing.T) {
	var out bytes.Buffer
	log.SetOutput(&out)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	anchor, err := ResolveAnchor("", "")
	require.NoError(t, err)

	executable, err := os.Executable()
	require.NoError(t, err)
	executable, err = filepath.EvalSymlinks(executable)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(executable), anchor)
	assert.Contains(t, out.String(), "Warning: ")
	assert.Contains(t, out.String(), filepath.Dir(executable))
}
