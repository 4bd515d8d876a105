// Package project resolves the directory layout of the hol project tree.
package project

import (
	"path/filepath"
)

// AnchorDirName is the directory, relative to the project root, that holds
// the orchestration entry point.
const AnchorDirName = "scripts"

// Number of parent levels between the anchor and the project root.
const anchorDepth = 1

const (
	rustLibsDirName    = "rust-libs"
	rustCoreLibDirName = "hol_core"
	uiDirName          = "lib"
	generatedDirName   = "generated"
	protoDirName       = "proto"
	webPkgDir          = "web/pkg"
)

// Paths holds every directory the build tasks work with. All fields are
// derived from Anchor and are never changed after New returns.
type Paths struct {
	Anchor          string
	Root            string
	RustLibsRoot    string
	RustCoreLibRoot string
	UIRoot          string
	UIGeneratedRoot string
	ProtoRoot       string
	WebPkgRoot      string
}

// New computes the project layout from the location of the orchestration
// entry point. Directory existence is not checked.
func New(anchor string) (Paths, error) {
	if anchor == "" {
		return Paths{}, &ConfigurationError{Reason: "anchor path is empty"}
	}
	abs, err := filepath.Abs(anchor)
	if err != nil {
		return Paths{}, &ConfigurationError{Reason: "unable to resolve anchor path " + anchor, Err: err}
	}

	root := abs
	for i := 0; i < anchorDepth; i++ {
		root = filepath.Dir(root)
	}

	rustLibs := filepath.Join(root, rustLibsDirName)
	ui := filepath.Join(root, uiDirName)
	return Paths{
		Anchor:          abs,
		Root:            root,
		RustLibsRoot:    rustLibs,
		RustCoreLibRoot: filepath.Join(rustLibs, rustCoreLibDirName),
		UIRoot:          ui,
		UIGeneratedRoot: filepath.Join(ui, generatedDirName),
		ProtoRoot:       filepath.Join(root, protoDirName),
		WebPkgRoot:      filepath.Join(root, filepath.FromSlash(webPkgDir)),
	}, nil
}
