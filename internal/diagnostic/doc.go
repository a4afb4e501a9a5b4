// Package diagnostic collects definition-time problems so that every problem of
// one mapping definition attempt is reported at once instead of the first only.
//
// Each Diagnostic carries a code (e.g. "missing_predicate"), the definition it
// belongs to and the field it concerns.
package diagnostic
