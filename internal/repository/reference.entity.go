package repository

type CallOutcomeEntity struct {
	Code        string `db:"call_outcome_code"        gorm:"primaryKey;column:call_outcome_code;size:50"`
	Description string `db:"call_outcome_description" gorm:"column:call_outcome_description;size:255"`
}

func (CallOutcomeEntity) TableName() string {
	return "ref_call_outcome"
}

type CallStatusEntity struct {
	Code        string `db:"call_status_code"        gorm:"primaryKey;column:call_status_code;size:50"`
	Description string `db:"call_status_description" gorm:"column:call_status_description;size:255"`
}

func (CallStatusEntity) TableName() string {
	return "ref_call_status"
}

type CustomerTypeEntity struct {
	Code        string `db:"customer_type_code"        gorm:"primaryKey;column:customer_type_code;size:50"`
	Description string `db:"customer_type_description" gorm:"column:customer_type_description;size:255"`
}

func (CustomerTypeEntity) TableName() string {
	return "ref_customer_type"
}

type BusinessSectorEntity struct {
	ID          int64  `db:"business_sector_id"          gorm:"primaryKey;autoIncrement;column:business_sector_id"`
	Code        string `db:"business_sector_code"        gorm:"column:business_sector_code;size:50;not null;uniqueIndex"`
	Description string `db:"business_sector_description" gorm:"column:business_sector_description;size:255"`
}

func (BusinessSectorEntity) TableName() string {
	return "ref_business_sector"
}
