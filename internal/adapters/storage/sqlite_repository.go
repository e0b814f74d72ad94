package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/ports"
)

// SQLiteRepository implements ports.TicketRepository using GORM
type SQLiteRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// Verify interface compliance at compile time
var _ ports.TicketRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the ticket logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TICKET_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and creates if needed) the journal at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Several ticket commands may run at once from different terminals
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&TicketModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate ticket schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// NewSQLiteRepositoryForPath opens the journal stored under a TICKET_HOME path
func NewSQLiteRepositoryForPath(ticketHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(ticketHomePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements TicketReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id domain.TicketID) (*domain.Ticket, error) {
	var model TicketModel
	err := r.db.WithContext(ctx).Where("id = ?", int(id)).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTicketNotFound, id)
		}
		return nil, fmt.Errorf("failed to get ticket %s: %w", id, err)
	}

	ticket := ticketModelToDomain(model)
	return &ticket, nil
}

// List implements TicketReader.List, ordered by ticket ID
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	var models []TicketModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]domain.Ticket, 0, len(models))
	for _, m := range models {
		tickets = append(tickets, ticketModelToDomain(m))
	}
	return tickets, nil
}

// MarkStarted implements TicketRecorder.MarkStarted.
// The first start creates the entry; later ones only refresh last_active_at.
func (r *SQLiteRepository) MarkStarted(ctx context.Context, id domain.TicketID) error {
	now := r.now()
	return r.upsert(ctx, TicketModel{
		ID:           int(id),
		LastActiveAt: &now,
		StartedAt:    now,
		Status:       string(domain.StatusOpen),
	}, map[string]any{
		"last_active_at": now,
		"updated_at":     now,
	})
}

// MarkParked implements TicketRecorder.MarkParked
func (r *SQLiteRepository) MarkParked(ctx context.Context, id domain.TicketID) error {
	now := r.now()
	return r.upsert(ctx, TicketModel{
		ID:           int(id),
		LastActiveAt: &now,
		StartedAt:    now,
		Status:       string(domain.StatusOpen),
		StopCount:    1,
	}, map[string]any{
		"last_active_at": now,
		"stop_count":     gorm.Expr("stop_count + 1"),
		"updated_at":     now,
	})
}

// Delete implements TicketRecorder.Delete. Deleting an unknown ticket is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, id domain.TicketID) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("id = ?", int(id)).Delete(&TicketModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			logging.Logger.Debug("Ticket not in journal", "ticket", id.BranchName())
		}
		return nil
	}, 3)
}

// SetBlocked implements TicketStatusUpdater.SetBlocked
func (r *SQLiteRepository) SetBlocked(ctx context.Context, id domain.TicketID, reason string) error {
	now := r.now()
	return r.upsert(ctx, TicketModel{
		BlockReason: reason,
		ID:          int(id),
		StartedAt:   now,
		Status:      string(domain.StatusBlocked),
	}, map[string]any{
		"block_reason": reason,
		"status":       string(domain.StatusBlocked),
		"updated_at":   now,
	})
}

// ClearBlocked implements TicketStatusUpdater.ClearBlocked
func (r *SQLiteRepository) ClearBlocked(ctx context.Context, id domain.TicketID) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&TicketModel{}).
			Where("id = ?", int(id)).
			Updates(map[string]any{
				"block_reason": "",
				"status":       string(domain.StatusOpen),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to unblock ticket %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrTicketNotFound, id)
		}
		return nil
	}, 3)
}

// upsert inserts model, or applies updates when the ticket already exists
func (r *SQLiteRepository) upsert(ctx context.Context, model TicketModel, updates map[string]any) error {
	return withRetry(func() error {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(updates),
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to record ticket %d: %w", model.ID, err)
		}
		return nil
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
