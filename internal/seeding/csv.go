package seeding

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mauv0809/race-organiser/internal/team"
)

// ParseCSV reads a league table of the form "team,r1,r2,...". A header row is
// skipped when its second column is not a number. Missing scores are zero.
func ParseCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var entries []Entry
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record)-1 > team.Rounds {
			return nil, fmt.Errorf("line %d: %d scores, at most %d rounds are kept", line, len(record)-1, team.Rounds)
		}

		e := Entry{TeamName: strings.TrimSpace(record[0])}
		for i, field := range record[1:] {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			score, err := strconv.Atoi(field)
			if err != nil {
				if line == 1 {
					e = Entry{}
					break
				}
				return nil, fmt.Errorf("line %d: score %q is not a number", line, field)
			}
			e.Scores[i] = score
		}
		if e.TeamName != "" {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
