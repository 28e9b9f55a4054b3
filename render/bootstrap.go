// SPDX-License-Identifier: MIT
// Package: appgen/render
//
// bootstrap.go — the fixed auxiliary templates that wrap a generated tree
// into a runnable fixture. These are byte-fixed constants: their content
// never depends on the tree shape, only the manifest interpolates a version.

package render

import (
	"encoding/json"
	"fmt"
)

// IndexJSX is the single-page bootstrap entry mounting the tree root.
const IndexJSX = `import React from "react";
import { createRoot } from "react-dom/client";
import Triangle from "./triangle.jsx";

function App() {
    return <svg height="100%" viewBox="-5 -4.33 10 8.66" style={{ }}>
        <Triangle style={{ fill: "white" }}/>
    </svg>
}

document.body.style.backgroundColor = "black";
let root = document.createElement("main");
document.body.appendChild(root);
createRoot(root).render(<App />);
`

// PageJSX is the pages-router style entry.
const PageJSX = `import React from "react";
import Triangle from "../triangle.jsx";

export default function Page() {
    return <svg height="100%" viewBox="-5 -4.33 10 8.66" style={{ backgroundColor: "black" }}>
        <Triangle style={{ fill: "white" }}/>
    </svg>
}
`

// StaticPageJSX is the pages-router entry with a static-props export.
const StaticPageJSX = PageJSX + `
export function getStaticProps() {
    return {
        props: {}
    };
}
`

// AppPageJSX is the app-router server page.
const AppPageJSX = `import React from "react";
import Triangle from "../../triangle.jsx";

export default function Page() {
    return <svg height="100%" viewBox="-5 -4.33 10 8.66" style={{ backgroundColor: "black" }}>
        <Triangle style={{ fill: "white" }}/>
    </svg>
}
`

// AppClientPageJSX is the app-router page on the client side of the boundary.
const AppClientPageJSX = `"use client";
import React from "react";
import Triangle from "../../triangle.jsx";

export default function Page() {
    return <svg height="100%" viewBox="-5 -4.33 10 8.66" style={{ backgroundColor: "black" }}>
        <Triangle style={{ fill: "white" }}/>
    </svg>
}
`

// DetectorJSX is the instrumentation component. Every generated module
// renders it; the single hydration-marked node passes the hydration prop so
// the harness can time client-side hydration.
const DetectorJSX = `"use client";

import React from "react";

export default function Detector({ message, hydration }) {
    React.useEffect(() => {
        if (hydration) {
            globalThis.__bundleBenchBinding && globalThis.__bundleBenchBinding("Hydration done");
        }
        if (message) {
            globalThis.__bundleBenchBinding && globalThis.__bundleBenchBinding(message);
        }
    }, [message, hydration]);
    return null;
}
`

// LayoutJSX is the root layout wrapper used by app-router hosts.
const LayoutJSX = `export default function RootLayout({ children }) {
    return (
        <html lang="en">
            <head>
                <meta charSet="UTF-8" />
                <meta name="viewport" content="width=device-width, initial-scale=1.0" />
                <title>Bundler Test App</title>
            </head>
            <body>
                {children}
            </body>
        </html>
    );
}
`

// IndexHTML is the module-script host used by dev servers that serve source.
const IndexHTML = `<!DOCTYPE html>
<html lang="en">
    <head>
        <meta charset="UTF-8" />
        <meta name="viewport" content="width=device-width, initial-scale=1.0" />
        <title>Bundler Test App</title>
    </head>
    <body>
        <script type="module" src="/src/index.jsx"></script>
    </body>
</html>
`

// PublicHTML is the script-tag host used by bundlers that emit a main.js.
const PublicHTML = `<!DOCTYPE html>
<html lang="en">
    <head>
        <meta charset="UTF-8" />
        <meta name="viewport" content="width=device-width, initial-scale=1.0" />
        <title>Bundler Test App</title>
    </head>
    <body>
        <script src="main.js"></script>
    </body>
</html>
`

// ViteServerMJS is the dev-server script, copied verbatim into the fixture.
const ViteServerMJS = `import fs from "node:fs";
import path from "node:path";
import { fileURLToPath } from "node:url";
import http from "node:http";
import { createServer as createViteServer } from "vite";

const root = path.dirname(fileURLToPath(import.meta.url));
const port = process.env.PORT ?? 5173;

const vite = await createViteServer({
    root,
    appType: "custom",
    server: { middlewareMode: true },
});

const server = http.createServer((req, res) => {
    vite.middlewares(req, res, async () => {
        try {
            const template = fs.readFileSync(path.resolve(root, "src/index.html"), "utf-8");
            const html = await vite.transformIndexHtml(req.url, template);
            const { render } = await vite.ssrLoadModule("/src/vite-entry-server.jsx");
            const appHtml = render();
            res.statusCode = 200;
            res.setHeader("Content-Type", "text/html");
            res.end(html.replace("<body>", "<body><main>" + appHtml + "</main>"));
        } catch (e) {
            vite.ssrFixStacktrace(e);
            res.statusCode = 500;
            res.end(e.stack);
        }
    });
});

server.listen(port, () => {
    console.log("listening on http://localhost:" + port);
});
`

// ViteEntryServerJSX renders the tree root to a string on the server.
const ViteEntryServerJSX = `import React from "react";
import { renderToString } from "react-dom/server";
import Triangle from "./triangle.jsx";

export function render() {
    return renderToString(
        <svg height="100%" viewBox="-5 -4.33 10 8.66" style={{ backgroundColor: "black" }}>
            <Triangle style={{ fill: "white" }}/>
        </svg>
    );
}
`

// ViteEntryClientJSX hydrates the server-rendered tree on the client.
const ViteEntryClientJSX = `import React from "react";
import { hydrateRoot } from "react-dom/client";
import Triangle from "./triangle.jsx";

hydrateRoot(
    document.querySelector("main"),
    <svg height="100%" viewBox="-5 -4.33 10 8.66" style={{ backgroundColor: "black" }}>
        <Triangle style={{ fill: "white" }}/>
    </svg>
);
`

// manifest is the package.json schema. Dependencies marshal with sorted keys,
// keeping the output byte-stable.
type manifest struct {
	Name         string            `json:"name"`
	Private      bool              `json:"private"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}

// PackageJSON renders the fixture manifest pinning the UI library at
// reactVersion for both react and react-dom.
func PackageJSON(reactVersion string) ([]byte, error) {
	m := manifest{
		Name:    "bundler-test-app",
		Private: true,
		Version: "0.0.0",
		Dependencies: map[string]string{
			"react":     reactVersion,
			"react-dom": reactVersion,
		},
	}
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("PackageJSON: %w", err)
	}
	return append(out, '\n'), nil
}
