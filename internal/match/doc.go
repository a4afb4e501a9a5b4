// Package match provides identifier normalization and edit-distance helpers.
//
// Key functions:
//   - Tokenize / NormalizeIdent / SnakeCase: identifier spellings used to look
//     up attributes on Go structs ("SubModel", "sub_model", "subModel")
//   - Levenshtein: edit distance between two strings
//   - Suggest: the closest known name to a misspelled one
package match
