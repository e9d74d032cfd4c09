// Package export writes ranked search results as CSV, JSON or msgpack.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/bastiangx/wordhunt/pkg/search"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects an export encoding.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatMsgpack
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// Extension returns the usual file extension, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatMsgpack:
		return ".msgpack"
	default:
		return "." + f.String()
	}
}

// ParseFormat maps a name (case-insensitive, "mp" accepted for msgpack) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Row is one exported line.
type Row struct {
	Rank      int    `json:"rank" msgpack:"rank"`
	Candidate string `json:"candidate" msgpack:"candidate"`
	Type      string `json:"type" msgpack:"type"`
	Length    int    `json:"length" msgpack:"length"`
}

// Rows flattens single results then pair results into ranked rows.
func Rows(singles, pairs []search.Result) []Row {
	all := make([]search.Result, 0, len(singles)+len(pairs))
	all = append(all, singles...)
	all = append(all, pairs...)

	ranks := utils.CreateRankList(len(all))
	rows := make([]Row, len(all))
	for i, r := range all {
		rows[i] = Row{
			Rank:      ranks[i],
			Candidate: r.Candidate(),
			Type:      r.Kind.String(),
			Length:    r.Length,
		}
	}
	return rows
}

// Write encodes rows to w in the given format.
func Write(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatJSON:
		return WriteJSON(w, rows)
	case FormatMsgpack:
		return WriteMsgpack(w, rows)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// WriteFile creates (or truncates) path and writes rows to it.
func WriteFile(path string, format Format, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	if err := Write(file, format, rows); err != nil {
		file.Close()
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return file.Close()
}

// WriteCSV writes a header line followed by one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "candidate", "type", "length"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Rank),
			r.Candidate,
			r.Type,
			strconv.Itoa(r.Length),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteMsgpack writes rows as a single msgpack array.
func WriteMsgpack(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	return msgpack.NewEncoder(w).Encode(rows)
}
