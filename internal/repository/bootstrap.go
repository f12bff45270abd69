package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
)

// maintenanceDB 建库时连接的维护库
const maintenanceDB = "postgres"

// EnsureDatabase 目标库不存在时经维护库创建；已存在或 DSN 本身指向维护库时不做任何事
func EnsureDatabase(ctx context.Context, dsn string) error {
	cfg, name, err := maintenanceConfig(dsn)
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("连接维护库: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	var one int
	err = conn.QueryRow(ctx, "SELECT 1 FROM pg_database WHERE datname = $1", name).Scan(&one)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("查询库 %s: %w", name, err)
	}
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return fmt.Errorf("创建库 %s: %w", name, err)
	}
	return nil
}

// maintenanceConfig 把 dsn 改指向维护库，同时返回原目标库名；目标即维护库时库名为空
func maintenanceConfig(dsn string) (*pgx.ConnConfig, string, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, "", fmt.Errorf("解析 DSN: %w", err)
	}
	name := cfg.Database
	if name == "" || name == maintenanceDB {
		return cfg, "", nil
	}
	cfg.Database = maintenanceDB
	return cfg, name, nil
}
