// Package parser extracts Node.js version hints from the contents of version
// declaration files: JSON manifests (package.json and Volta configs), mise
// TOML configs, and plain-text files such as .nvmrc, .node-version and
// .tool-versions.
//
// It works on bytes only; file access and extends-following live in the
// nodeversion package.
package parser
