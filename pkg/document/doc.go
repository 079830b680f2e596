// Package document loads YAML and JSON documents into object graphs, addresses
// their properties by path and replays scripted writes against them.
package document
