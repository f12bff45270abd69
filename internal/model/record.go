package model

import (
	"time"

	"github.com/guregu/null/v5"
	"gorm.io/datatypes"
)

// BattingRecord 规范化后的击球记录（每名球员每场一条）
// 数值字段解析失败时为 null，行本身保留
type BattingRecord struct {
	ID            uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"-"`
	RowKey        string         `gorm:"column:row_key;type:varchar(32);uniqueIndex;not null;comment:行指纹" json:"row_key"`
	Batch         string         `gorm:"column:batch;type:varchar(64);index;comment:导入批次" json:"batch,omitempty"`
	PlayerName    string         `gorm:"column:player_name;type:varchar(128);index;not null;comment:球员" json:"player_name"`
	MatchDate     null.Time      `gorm:"column:match_date;type:date;comment:比赛日期" json:"match_date"`
	Opponent      null.String    `gorm:"column:opponent;type:varchar(128);comment:对手" json:"opponent"`
	Tournament    null.String    `gorm:"column:tournament;type:varchar(128);comment:赛事" json:"tournament"`
	Dismissal     string         `gorm:"column:dismissal;type:varchar(128);comment:出局描述" json:"dismissal"`
	Runs          null.Int       `gorm:"column:runs;type:int;comment:得分" json:"runs"`
	Balls         null.Int       `gorm:"column:balls;type:int;comment:面对球数" json:"balls"`
	Fours         null.Int       `gorm:"column:fours;type:int;comment:四分球" json:"fours"`
	Sixes         null.Int       `gorm:"column:sixes;type:int;comment:六分球" json:"sixes"`
	Dots          null.Int       `gorm:"column:dots;type:int;comment:零分球" json:"dots"`
	WasNotOut     bool           `gorm:"column:was_not_out;type:boolean;default:false;comment:未出局" json:"was_not_out"`
	InningsPlayed int            `gorm:"column:innings_played;type:int;default:1;comment:是否上场击球" json:"innings_played"`
	RawFields     datatypes.JSON `gorm:"column:raw_fields;type:jsonb;comment:原始行" json:"-"`
	CreatedAt     time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间" json:"-"`
}

// BowlingRecord 规范化后的投球记录
type BowlingRecord struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"-"`
	RowKey       string         `gorm:"column:row_key;type:varchar(32);uniqueIndex;not null;comment:行指纹" json:"row_key"`
	Batch        string         `gorm:"column:batch;type:varchar(64);index;comment:导入批次" json:"batch,omitempty"`
	PlayerName   string         `gorm:"column:player_name;type:varchar(128);index;not null;comment:球员" json:"player_name"`
	MatchDate    null.Time      `gorm:"column:match_date;type:date;comment:比赛日期" json:"match_date"`
	Opponent     null.String    `gorm:"column:opponent;type:varchar(128);comment:对手" json:"opponent"`
	Overs        null.Float     `gorm:"column:overs;type:numeric(8,1);comment:投球轮数" json:"overs"`
	Wickets      null.Int       `gorm:"column:wickets;type:int;comment:三柱门" json:"wickets"`
	RunsConceded null.Int       `gorm:"column:runs_conceded;type:int;comment:失分" json:"runs_conceded"`
	Maidens      null.Int       `gorm:"column:maidens;type:int;comment:无失分轮" json:"maidens"`
	Dots         null.Int       `gorm:"column:dots;type:int;comment:零分球" json:"dots"`
	Economy      null.Float     `gorm:"column:economy;type:numeric(10,4);comment:经济率" json:"economy"`
	RawFields    datatypes.JSON `gorm:"column:raw_fields;type:jsonb;comment:原始行" json:"-"`
	CreatedAt    time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间" json:"-"`
}

func (BattingRecord) TableName() string { return "batting_records" }
func (BowlingRecord) TableName() string { return "bowling_records" }
