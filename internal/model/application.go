package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationModel 商品现房备案申请数据模型
type ApplicationModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	BusinessNo string    `gorm:"type:varchar(32);not null;uniqueIndex" json:"business_no"` // 业务编号 YYYYMMDD-XXXX
	ApplyTime  time.Time `gorm:"not null;index" json:"apply_time"`
	Status     Status    `gorm:"type:varchar(16);not null;index" json:"status"`

	// 楼栋信息
	BldName     string `gorm:"type:varchar(255);not null" json:"bld_name"`
	BldAddress  string `gorm:"type:varchar(512);not null" json:"bld_address"`
	TotalFloors int    `gorm:"type:int" json:"total_floors"`
	TotalUnits  int    `gorm:"type:int" json:"total_units"`

	// 房屋信息
	HouseNo       string          `gorm:"type:varchar(64);not null" json:"house_no"`
	HouseType     HouseType       `gorm:"type:varchar(32)" json:"house_type"`
	HouseArea     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"house_area"` // 建筑面积 (㎡)
	RightsStatus  RightsStatus    `gorm:"type:varchar(32)" json:"rights_status"`
	PresalePermit string          `gorm:"type:varchar(128);not null" json:"presale_permit"` // 预售/现售证号

	// 卖方信息
	SellerName    string `gorm:"type:varchar(255);not null" json:"seller_name"`
	SellerCode    string `gorm:"type:varchar(64);not null" json:"seller_code"` // 统一社会信用代码
	SellerRep     string `gorm:"type:varchar(128)" json:"seller_rep"`
	SellerContact string `gorm:"type:varchar(64);not null" json:"seller_contact"`

	// 买方信息
	BuyerName      string    `gorm:"type:varchar(255);not null" json:"buyer_name"`
	BuyerIDNo      string    `gorm:"column:buyer_id;type:varchar(64);not null" json:"buyer_id"` // 身份证/证件号
	BuyerContact   string    `gorm:"type:varchar(64);not null" json:"buyer_contact"`
	BuyerShareType ShareType `gorm:"type:varchar(32)" json:"buyer_share_type"`

	// 审核信息
	AuditComment string     `gorm:"type:text" json:"audit_comment"`
	AuditTime    *time.Time `json:"audit_time"`
}

// TableName 指定表名
func (ApplicationModel) TableName() string {
	return "applications"
}

// Validate 验证入库前的完整性
func (am *ApplicationModel) Validate() error {
	if am.ID == "" {
		return errors.New("application ID is required")
	}
	if am.BusinessNo == "" {
		return errors.New("business number is required")
	}
	if !am.Status.IsValid() {
		return errors.New("application status is invalid")
	}
	if !am.HouseArea.IsPositive() {
		return errors.New("house area must be greater than 0")
	}
	return nil
}

// IsReviewed 是否已完成审核
func (am *ApplicationModel) IsReviewed() bool {
	return am.Status.IsTerminal()
}
