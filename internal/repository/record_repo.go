package repository

import (
	"context"

	"CricketStats/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saveBatchSize 单条 INSERT 最多携带的行数
const saveBatchSize = 500

// RecordRepository 击球/投球记录的持久化接口
type RecordRepository interface {
	// SaveBatting 批量写入击球记录，row_key 已存在的行跳过，返回实际新增行数
	SaveBatting(ctx context.Context, records []*model.BattingRecord) (int, error)
	// SaveBowling 批量写入投球记录，语义同 SaveBatting
	SaveBowling(ctx context.Context, records []*model.BowlingRecord) (int, error)
	// ListBatting 按写入顺序返回全部击球记录
	ListBatting(ctx context.Context) ([]*model.BattingRecord, error)
	// ListBowling 按写入顺序返回全部投球记录
	ListBowling(ctx context.Context) ([]*model.BowlingRecord, error)
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository 创建 RecordRepository 实例
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) SaveBatting(ctx context.Context, records []*model.BattingRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "row_key"}},
		DoNothing: true,
	}).CreateInBatches(records, saveBatchSize)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *recordRepository) SaveBowling(ctx context.Context, records []*model.BowlingRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "row_key"}},
		DoNothing: true,
	}).CreateInBatches(records, saveBatchSize)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *recordRepository) ListBatting(ctx context.Context) ([]*model.BattingRecord, error) {
	var list []*model.BattingRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *recordRepository) ListBowling(ctx context.Context) ([]*model.BowlingRecord, error) {
	var list []*model.BowlingRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
