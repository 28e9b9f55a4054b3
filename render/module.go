// SPDX-License-Identifier: MIT
// Package: appgen/render
//
// module.go — leaf and container templates.
//
// Contract:
//   - Pure functions of the node: no state, no I/O, deterministic bytes.
//   - Leaf renders a terminal shape primitive plus the detector element.
//   - Container renders its three child references — static import or lazy
//     boundary per the node's ImportMode — inside positioned wrappers, and
//     emits the hydration flag when the node carries the marker.

package render

import (
	"fmt"
	"path"
	"strings"

	"github.com/bundlebench/appgen/tree"
)

// Shared template fragments. The eval markers are rewritten in place by the
// benchmark harness between runs to simulate edits.
const (
	setupImports  = `import React from "react";`
	setupProps    = `let DETECTOR_PROPS = {};`
	setupHydrate  = `DETECTOR_PROPS.hydration = true;`
	setupEval     = "/* @bundle-bench:eval-start */\n/* @bundle-bench:eval-end */"
	detectorUsage = `<Detector {...DETECTOR_PROPS} />`
)

// childNames are the fixed component identifiers of the three child slots.
var childNames = [tree.Fanout]string{"A", "B", "C"}

// Leaf renders the terminal module template for n.
func Leaf(n *tree.Node) ([]byte, error) {
	detector, err := detectorImport(n.Path)
	if err != nil {
		return nil, err
	}
	content := fmt.Sprintf(`%s
import Detector from "%s";

%s
%s

function Triangle({ style }) {
    return <>
        <polygon points="-5,4.33 0,-4.33 5,4.33" style={style} />
        %s
    </>;
}

export default React.memo(Triangle);
`, setupImports, detector, setupProps, setupEval, detectorUsage)
	return []byte(content), nil
}

// Container renders the composed module template for n: three child
// references (static or lazy) plus the detector element, with the hydration
// flag injected when n carries the marker.
func Container(n *tree.Node) ([]byte, error) {
	detector, err := detectorImport(n.Path)
	if err != nil {
		return nil, err
	}

	var imports, usages [tree.Fanout]string
	for i := 0; i < tree.Fanout; i++ {
		name := childNames[i]
		specifier := fmt.Sprintf("%s%d", n.ImportPrefix, i+1)
		if n.Imports[i] == tree.DynamicImport {
			imports[i] = fmt.Sprintf("const %sLazy = React.lazy(() => import('%s'));", name, specifier)
			usages[i] = fmt.Sprintf("<React.Suspense><%sLazy style={style} /></React.Suspense>", name)
		} else {
			imports[i] = fmt.Sprintf("import %s from '%s';", name, specifier)
			usages[i] = fmt.Sprintf("<%s style={style} />", name)
		}
	}

	props := setupProps
	if n.Hydration {
		props += "\n" + setupHydrate
	}

	content := fmt.Sprintf(`%s
import Detector from "%s";
%s
%s
%s

%s
%s

function Container({ style }) {
    return <>
        <g transform="translate(0 -2.16)   scale(0.5 0.5)">
            %s
        </g>
        <g transform="translate(-2.5 2.16) scale(0.5 0.5)">
            %s
        </g>
        <g transform="translate(2.5 2.16)  scale(0.5 0.5)">
            %s
        </g>
        %s
    </>;
}

export default React.memo(Container);
`, setupImports, detector, imports[0], imports[1], imports[2],
		props, setupEval,
		usages[0], usages[1], usages[2], detectorUsage)
	return []byte(content), nil
}

// detectorImport derives the import specifier from the module at modulePath
// to the shared detector component. Modules in src/ itself use the plain
// sibling form; nested modules climb with "../" segments.
func detectorImport(modulePath string) (string, error) {
	dir := path.Dir(modulePath)
	if dir == path.Dir(tree.DetectorPath) {
		return "./" + path.Base(tree.DetectorPath), nil
	}

	from := strings.Split(path.Clean(dir), "/")
	to := strings.Split(tree.DetectorPath, "/")

	// Both paths must share the src root; anything else is a shape defect.
	common := 0
	for common < len(from) && common < len(to)-1 && from[common] == to[common] {
		common++
	}
	if common == 0 {
		return "", fmt.Errorf("detectorImport: %q does not share a root with %q: %w",
			modulePath, tree.DetectorPath, ErrPathDerivation)
	}

	var b strings.Builder
	for i := common; i < len(from); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(to[common:], "/"))
	return b.String(), nil
}
