// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tileset

import "fmt"

// Validate walks a generated node tree and checks that geometric error is
// non-increasing with depth and that every content URL follows the
// "<hemisphere>_<index>.{b3dm,json}" convention. It is a debugging and
// test helper, not part of the runtime emission path.
func Validate(root *Node) error {
	return validate(root, root.GeometricError)
}

func validate(n *Node, parentError float64) error {
	if n.GeometricError > parentError {
		return fmt.Errorf("tileset: geometricError %v exceeds parent's %v", n.GeometricError, parentError)
	}
	if n.Content != nil {
		isLeaf := len(n.Children) == 0
		if isLeaf && !hasSuffix(n.Content.URL, ".json") {
			return fmt.Errorf("tileset: leaf node content %q should end in .json", n.Content.URL)
		}
		if !isLeaf && !hasSuffix(n.Content.URL, ".b3dm") {
			return fmt.Errorf("tileset: interior node content %q should end in .b3dm", n.Content.URL)
		}
	}
	for _, child := range n.Children {
		if err := validate(child, n.GeometricError); err != nil {
			return err
		}
	}
	return nil
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
