package rule

import "github.com/frahmantamala/hrm/internal/store"

type Rule struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title       string `json:"rule_title" gorm:"column:rule_title"`
	Description string `json:"rule_description" gorm:"column:rule_description"`
}

func (Rule) TableName() string {
	return store.TableRules.String()
}

type Key struct {
	ID int64
}

func (k Key) Predicate() (string, []any) {
	return "id = ?", []any{k.ID}
}

func NewRepository(db *store.DB) *store.Records[Rule, Key] {
	return store.NewRecords[Rule, Key](db, store.TableRules)
}
