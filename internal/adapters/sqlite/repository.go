package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"equityPaperBot/internal/domain"
	"equityPaperBot/internal/ports"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Repository implements ports.TradeRepository and ports.AnalysisLogRepository
// using SQLite.
type Repository struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite repository.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewRepository creates a new SQLite repository instance.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite repository")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/paper_trades.db"
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("%w: failed to ping database at '%s': %v", ports.ErrDBConnection, dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// SQLite handles concurrency internally; the Go driver benefits from a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	repo := &Repository{db: db, logger: cfg.Logger}

	if err := repo.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}
	cfg.Logger.Info(context.Background(), "SQLite database ready", map[string]interface{}{"path": dbPath})

	return repo, nil
}

func (r *Repository) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS paper_trades (
		trade_id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		entry_price REAL NOT NULL,
		shares INTEGER NOT NULL,
		position_value REAL NOT NULL,
		stop_loss REAL NOT NULL,
		target REAL NOT NULL,
		max_holding_days INTEGER NOT NULL,
		trend_state TEXT NOT NULL,
		entry_state TEXT NOT NULL,
		rs_state TEXT NOT NULL,
		behavior TEXT NOT NULL,
		market_state TEXT NOT NULL,
		fundamental_state TEXT NOT NULL,
		status TEXT NOT NULL,
		exit_date TEXT NOT NULL DEFAULT '',
		exit_price REAL NOT NULL DEFAULT 0,
		exit_reason TEXT NOT NULL DEFAULT 'PENDING',
		outcome TEXT NOT NULL DEFAULT 'PENDING',
		pnl REAL NOT NULL DEFAULT 0,
		pnl_pct REAL NOT NULL DEFAULT 0,
		holding_days INTEGER NOT NULL DEFAULT 0,
		mfe REAL NOT NULL DEFAULT 0,
		mae REAL NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS analysis_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		symbol TEXT NOT NULL,
		market_state TEXT NOT NULL,
		fundamental_state TEXT NOT NULL,
		fundamental_score REAL NOT NULL,
		trend_state TEXT NOT NULL,
		entry_state TEXT NOT NULL,
		rs_state TEXT NOT NULL,
		rs_value REAL NOT NULL,
		behavior TEXT NOT NULL,
		trade_eligible INTEGER NOT NULL,
		rejection_reasons TEXT NOT NULL,
		close REAL NOT NULL,
		rsi REAL NOT NULL,
		consecutive_bars INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_paper_trades_symbol_status ON paper_trades (symbol, status);
	CREATE INDEX IF NOT EXISTS idx_analysis_log_symbol_date ON analysis_log (symbol, date);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to execute schema initialization: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// --- TradeRepository Implementation ---

// UpsertTrade inserts the row or replaces an existing row with the same trade ID.
func (r *Repository) UpsertTrade(ctx context.Context, row domain.TradeRow) error {
	const query = `
	INSERT OR REPLACE INTO paper_trades (
		trade_id, symbol, entry_date, entry_price, shares, position_value,
		stop_loss, target, max_holding_days,
		trend_state, entry_state, rs_state, behavior, market_state, fundamental_state,
		status, exit_date, exit_price, exit_reason, outcome,
		pnl, pnl_pct, holding_days, mfe, mae, notes
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		row.TradeID, row.Symbol, row.EntryDate, row.EntryPrice, row.Shares, row.PositionValue,
		row.StopLoss, row.Target, row.MaxHoldingDays,
		row.TrendState, row.EntryState, row.RSState, row.Behavior, row.MarketState, row.FundamentalState,
		row.Status, row.ExitDate, row.ExitPrice, row.ExitReason, row.Outcome,
		row.PNL, row.PNLPct, row.HoldingDays, row.MFE, row.MAE, row.Notes)
	if err != nil {
		return fmt.Errorf("%w: failed to upsert trade %s: %v", ports.ErrUpdateFailed, row.TradeID, err)
	}
	return nil
}

// FindAllTrades retrieves every persisted trade row, ordered by entry date ascending.
func (r *Repository) FindAllTrades(ctx context.Context) ([]domain.TradeRow, error) {
	const query = `
	SELECT trade_id, symbol, entry_date, entry_price, shares, position_value,
		stop_loss, target, max_holding_days,
		trend_state, entry_state, rs_state, behavior, market_state, fundamental_state,
		status, exit_date, exit_price, exit_reason, outcome,
		pnl, pnl_pct, holding_days, mfe, mae, notes
	FROM paper_trades ORDER BY entry_date ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query trades: %v", ports.ErrQueryFailed, err)
	}
	defer rows.Close()

	var out []domain.TradeRow
	for rows.Next() {
		var t domain.TradeRow
		if err := rows.Scan(
			&t.TradeID, &t.Symbol, &t.EntryDate, &t.EntryPrice, &t.Shares, &t.PositionValue,
			&t.StopLoss, &t.Target, &t.MaxHoldingDays,
			&t.TrendState, &t.EntryState, &t.RSState, &t.Behavior, &t.MarketState, &t.FundamentalState,
			&t.Status, &t.ExitDate, &t.ExitPrice, &t.ExitReason, &t.Outcome,
			&t.PNL, &t.PNLPct, &t.HoldingDays, &t.MFE, &t.MAE, &t.Notes,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan trade row: %v", ports.ErrQueryFailed, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: trade row iteration failed: %v", ports.ErrQueryFailed, err)
	}
	return out, nil
}

// --- AnalysisLogRepository Implementation ---

// AppendLog saves one analysis log row.
func (r *Repository) AppendLog(ctx context.Context, row domain.AnalysisLogRow) error {
	const query = `
	INSERT INTO analysis_log (
		date, symbol, market_state, fundamental_state, fundamental_score,
		trend_state, entry_state, rs_state, rs_value, behavior,
		trade_eligible, rejection_reasons, close, rsi, consecutive_bars
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	eligible := 0
	if row.TradeEligible {
		eligible = 1
	}
	_, err := r.db.ExecContext(ctx, query,
		row.Date, row.Symbol, row.MarketState, row.FundamentalState, row.FundamentalScore,
		row.TrendState, row.EntryState, row.RSState, row.RSValue, row.Behavior,
		eligible, row.RejectionReasons, row.Close, row.RSI, row.ConsecutiveBars)
	if err != nil {
		return fmt.Errorf("%w: failed to append analysis log for %s: %v", ports.ErrUpdateFailed, row.Symbol, err)
	}
	return nil
}

// FindLogBySymbol retrieves the most recent log rows for a symbol, up to a limit.
func (r *Repository) FindLogBySymbol(ctx context.Context, symbol string, limit int) ([]domain.AnalysisLogRow, error) {
	const query = `
	SELECT date, symbol, market_state, fundamental_state, fundamental_score,
		trend_state, entry_state, rs_state, rs_value, behavior,
		trade_eligible, rejection_reasons, close, rsi, consecutive_bars
	FROM analysis_log WHERE symbol = ? ORDER BY date DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query analysis log for %s: %v", ports.ErrQueryFailed, symbol, err)
	}
	defer rows.Close()

	var out []domain.AnalysisLogRow
	for rows.Next() {
		var l domain.AnalysisLogRow
		var eligible int
		if err := rows.Scan(
			&l.Date, &l.Symbol, &l.MarketState, &l.FundamentalState, &l.FundamentalScore,
			&l.TrendState, &l.EntryState, &l.RSState, &l.RSValue, &l.Behavior,
			&eligible, &l.RejectionReasons, &l.Close, &l.RSI, &l.ConsecutiveBars,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan analysis log row: %v", ports.ErrQueryFailed, err)
		}
		l.TradeEligible = eligible != 0
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: analysis log iteration failed: %v", ports.ErrQueryFailed, err)
	}
	return out, nil
}
