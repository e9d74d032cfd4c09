/*
Package server implements msgpack IPC for the anagram engine.

The server reads msgpack maps from stdin and writes one msgpack map per
request to stdout. Requests are handled one at a time, in order; every
response echoes the request id. A {"status": "ready"} map is written once
before the first request is read.

# Search

A request with letters and no action (or "action": "search") runs the
single-word matcher, and the pair matcher when "pairs" is set:

	{"id": "q1", "l": "TEAMRATE", "f": {"min": 3, "sw": "T"}, "pairs": true, "b": 50, "n": 20}

Results come back single words first, then pairs, ranked from 1, with the
matching time in microseconds:

	{"id": "q1", "r": [{"w": ["TEAM"], "k": "partial", "n": 4, "r": 1}, {"w": ["TAME", "TEAR"], "k": "pair", "n": 8, "r": 2}], "c": 2, "t": 88}

Beam width and result cap default to the [search] config and are clamped
to the [server] maxima. Letters longer than max_letters are rejected.

# Sources

	{"id": "s1", "action": "sources"}
	{"id": "s2", "action": "toggle", "name": "builtin"}
	{"id": "s3", "action": "enable", "name": "words.txt"}
	{"id": "s4", "action": "disable", "name": "words.txt"}
	{"id": "s5", "action": "add", "name": "mine", "lines": ["LISTEN", "SILENT"]}
	{"id": "s6", "action": "remove", "name": "mine"}
	{"id": "h1", "action": "health"}

Mutations rebuild the index before answering and are written through to the
store when one is configured.

# Errors

	{"id": "q1", "e": "invalid input: letters must be A-Z only, got \"AB1\"", "c": 400}

Codes: 400 bad request, 404 unknown source, 409 duplicate source, 500 internal.
*/
package server

import "github.com/bastiangx/wordhunt/pkg/filter"

// Request is the union of every request shape; Action selects which fields apply.
type Request struct {
	ID      string       `msgpack:"id"`
	Action  string       `msgpack:"action,omitempty"`
	Letters string       `msgpack:"l,omitempty"`
	Filter  *filter.Spec `msgpack:"f,omitempty"`
	Pairs   bool         `msgpack:"pairs,omitempty"`
	Beam    int          `msgpack:"b,omitempty"`
	Cap     int          `msgpack:"n,omitempty"`
	Name    string       `msgpack:"name,omitempty"`
	Lines   []string     `msgpack:"lines,omitempty"`
	Enabled *bool        `msgpack:"enabled,omitempty"`
}

// SearchResult is one ranked match.
type SearchResult struct {
	Words  []string `msgpack:"w"`
	Kind   string   `msgpack:"k"`
	Length int      `msgpack:"n"`
	Rank   int      `msgpack:"r"`
}

// SearchResponse answers a search.
type SearchResponse struct {
	ID        string         `msgpack:"id"`
	Results   []SearchResult `msgpack:"r"`
	Count     int            `msgpack:"c"`
	TimeTaken int64          `msgpack:"t"`
}

// SourceInfo describes one word source.
type SourceInfo struct {
	Name    string `msgpack:"name"`
	Enabled bool   `msgpack:"enabled"`
	Words   int    `msgpack:"words"`
}

// SourcesResponse answers source listing and mutations.
type SourcesResponse struct {
	ID      string       `msgpack:"id"`
	Status  string       `msgpack:"status"`
	Sources []SourceInfo `msgpack:"sources"`
	Words   int          `msgpack:"words"`
}

// StatusResponse answers health checks and signals readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words,omitempty"`
}

// ErrorResponse holds basic error information for any failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
