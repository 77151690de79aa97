// Package profile loads and writes preference profiles for capo-finder.
//
// A profile is a file mapping chord symbols to preference scores. Three
// formats are supported, chosen by file extension:
//
//   - Text (.txt or anything else): "chord: score" lines, parsed leniently
//   - YAML (.yaml, .yml): a mapping, decoded with gopkg.in/yaml.v3
//   - JSON (.json, .jsonc): an object, with comments and trailing commas
//     stripped by github.com/tidwall/jsonc before decoding
//
// YAML and JSON profiles may hold the mapping at the top level or nested
// under a "preferences" key. Unlike the text format, structured formats are
// decoded strictly: a non-numeric score is an error, not a skipped line.
package profile
