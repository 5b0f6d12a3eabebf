package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cbf-translator/internal/textutil"

	"github.com/rs/zerolog/log"
)

// ReadFile reads and parses a dump file.
func ReadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump file: %w", err)
	}
	return Parse(data), nil
}

// Parse splits raw dump content into records in input order.
// Fragments that lack a text field or whose index is not an integer are skipped.
func Parse(data []byte) []Record {
	var records []Record
	skipped := 0

	for _, chunk := range strings.Split(string(data), RecordSeparator) {
		fields := strings.Split(chunk, FieldSeparator)
		if len(fields) < 2 {
			skipped++
			continue
		}

		idx, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			log.Debug().Str("fragment", textutil.Truncate(chunk, 30)).Msg("Skipping record with non-integer index")
			skipped++
			continue
		}

		records = append(records, Record{Index: idx, Text: fields[1]})
	}

	log.Debug().Int("records", len(records)).Int("skipped", skipped).Msg("Parsed dump")
	return records
}
