// Package record implements the line codec shared by every persisted file:
// pipe-delimited fields with whitespace trimming on decode and no escaping
// on encode.
package record

import (
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// Delimiter separates fields within a record line. There is no escaping;
// encoding fails if a field value contains the delimiter, so callers must
// guarantee clean input.
const Delimiter = "|"

// trimCutset is the whitespace stripped from decoded fields.
const trimCutset = " \t\n\r\f\v"

// Encode joins field values into one record line.
func Encode(fields []string) (string, error) {
	for _, f := range fields {
		if strings.Contains(f, Delimiter) {
			return "", shared.NewDomainError("record", "Encode",
				shared.ErrDelimiterInField, "field value contains "+Delimiter)
		}
	}
	return strings.Join(fields, Delimiter), nil
}

// Decode splits a record line into fields, trimming surrounding whitespace
// from each. The field list is variable-length; callers validate the count
// against the entity's arity before constructing a typed entity. Lines
// beginning with "[" are section headers, not records, and entity decoders
// skip them before calling Decode.
func Decode(line string) []string {
	parts := strings.Split(line, Delimiter)
	for i := range parts {
		parts[i] = strings.Trim(parts[i], trimCutset)
	}
	return parts
}
