package export

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultBatchSize is the number of rows per INSERT statement.
const DefaultBatchSize = 500

// Exporter writes rows into the export table.
type Exporter struct {
	db        *gorm.DB
	logger    *zap.Logger
	batchSize int
}

// NewExporter creates an exporter. batchSize <= 0 selects DefaultBatchSize.
func NewExporter(db *gorm.DB, logger *zap.Logger, batchSize int) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Exporter{db: db, logger: logger, batchSize: batchSize}
}

// Export creates or migrates the table, then upserts rows.
// It returns the number of rows written.
func (e *Exporter) Export(ctx context.Context, rows []PokemonRow) (int64, error) {
	if e.db == nil {
		return 0, errors.New("database connection is nil")
	}

	db := e.db.WithContext(ctx)
	if err := db.AutoMigrate(&PokemonRow{}); err != nil {
		return 0, fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	result := db.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(rows, e.batchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to write %s: %w", TableName, result.Error)
	}

	e.logger.Info("Exported pokemon rows",
		zap.String("table", TableName),
		zap.Int("rows", len(rows)),
		zap.Int("batch_size", e.batchSize),
	)
	return int64(len(rows)), nil
}
