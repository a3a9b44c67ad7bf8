package export

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pokepc-dataset/core/database"

	"gorm.io/gorm"
)

// SchemaReport compares the export table with the PokemonRow definition.
type SchemaReport struct {
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
}

// VerifySchema checks that the export table has every PokemonRow column with
// a compatible type. A missing table is reported, not returned as an error.
func VerifySchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	actual, err := database.GetTableColumns(db, TableName)
	if err != nil {
		return nil, err
	}

	report := &SchemaReport{
		Table:          TableName,
		Exists:         len(actual) > 0,
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
	}

	byName := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		byName[col.Field] = col
	}

	t := reflect.TypeOf(PokemonRow{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		name := tagValue(tag, "column")
		if name == "" {
			continue
		}

		col, ok := byName[name]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, name)
			report.Matched = false
			continue
		}

		// soft check: mysql reports int(11) for int
		expected := strings.ToLower(tagValue(tag, "type"))
		if expected != "" && !strings.Contains(col.Type, expected) {
			report.TypeMismatches = append(report.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", name, expected, col.Type))
			report.Matched = false
		}
	}
	return report, nil
}

func tagValue(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(part, key+":"); ok {
			return v
		}
	}
	return ""
}
