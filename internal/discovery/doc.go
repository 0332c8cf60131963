// Package discovery finds Node.js version declaration files in a project
// directory (.nvmrc, .node-version, .tool-versions, package.json, mise
// configs) so the CLI can offer them when no file is named explicitly.
package discovery
