package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-sql-driver/mysql"

	"text2sql/config"
)

// Pools hands out one long-lived *sql.DB per database name. Handles are
// created lazily on first use and cached for the process lifetime.
type Pools struct {
	cfg config.MySQLConfig
	log *slog.Logger

	mu  sync.Mutex
	dbs map[string]*poolEntry
}

// poolEntry serializes the first connect per database name. The map mutex is
// only held while looking the entry up, so a slow connect to one database
// never blocks callers of the others.
type poolEntry struct {
	once sync.Once
	db   *sql.DB
	err  error
}

func NewPools(cfg config.MySQLConfig, log *slog.Logger) *Pools {
	return &Pools{
		cfg: cfg,
		log: log,
		dbs: make(map[string]*poolEntry),
	}
}

// Get returns the cached handle for a preconfigured database, opening and
// pinging it on first use. Unknown names fail with ErrUnknownDatabase. A
// failed connect is not cached; the next call retries.
func (p *Pools) Get(ctx context.Context, name string) (*sql.DB, error) {
	if _, err := Lookup(name); err != nil {
		return nil, err
	}

	p.mu.Lock()
	e, ok := p.dbs[name]
	if !ok {
		e = &poolEntry{}
		p.dbs[name] = e
	}
	p.mu.Unlock()

	e.once.Do(func() {
		e.db, e.err = p.open(ctx, name)
	})

	if e.err != nil {
		p.mu.Lock()
		if p.dbs[name] == e {
			delete(p.dbs, name)
		}
		p.mu.Unlock()
		return nil, e.err
	}
	return e.db, nil
}

func (p *Pools) open(ctx context.Context, name string) (*sql.DB, error) {
	db, err := sql.Open("mysql", p.dsn(name))
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", name, err)
	}
	db.SetMaxOpenConns(p.cfg.MaxConns)
	db.SetMaxIdleConns(p.cfg.MaxConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database %q: %w", name, err)
	}

	p.log.Info("connected to database", "database", name, "addr", p.cfg.Addr())
	return db, nil
}

func (p *Pools) dsn(name string) string {
	mc := mysql.NewConfig()
	mc.User = p.cfg.User
	mc.Passwd = p.cfg.Password
	mc.Net = "tcp"
	mc.Addr = p.cfg.Addr()
	mc.DBName = name
	mc.ParseTime = true
	return mc.FormatDSN()
}

// Close closes every cached handle.
func (p *Pools) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for name, e := range p.dbs {
		if e.db == nil {
			continue
		}
		if err := e.db.Close(); err != nil {
			p.log.Warn("closing database handle", "database", name, "error", err)
		}
	}
	p.dbs = make(map[string]*poolEntry)
}
