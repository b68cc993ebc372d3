package model

import "fmt"

// Status 申请状态
type Status string

const (
	StatusPending  Status = "pending"  // 待审核
	StatusApproved Status = "approved" // 审核通过
	StatusRejected Status = "rejected" // 审核驳回
)

// ParseStatus 解析状态字符串
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown application status %q", s)
	}
	return st, nil
}

// IsValid 是否为已知状态
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal 审核通过或驳回后不再流转
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Label 中文展示名称
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "待审核"
	case StatusApproved:
		return "审核通过"
	case StatusRejected:
		return "审核驳回"
	}
	return string(s)
}

// Color 列表展示颜色
func (s Status) Color() string {
	switch s {
	case StatusApproved:
		return "green"
	case StatusRejected:
		return "red"
	}
	return "orange"
}

// HouseType 户型/用途
type HouseType string

const (
	HouseTypeResidentialFlat   HouseType = "residential_flat"   // 住宅-平层
	HouseTypeResidentialDuplex HouseType = "residential_duplex" // 住宅-复式
	HouseTypeCommercial        HouseType = "commercial"         // 商业
	HouseTypeOffice            HouseType = "office"             // 办公
	HouseTypeOther             HouseType = "other"              // 其他
)

// Label 中文展示名称
func (t HouseType) Label() string {
	switch t {
	case HouseTypeResidentialFlat:
		return "住宅-平层"
	case HouseTypeResidentialDuplex:
		return "住宅-复式"
	case HouseTypeCommercial:
		return "商业"
	case HouseTypeOffice:
		return "办公"
	case HouseTypeOther:
		return "其他"
	}
	return string(t)
}

// RightsStatus 当前产权状况
type RightsStatus string

const (
	RightsUnencumbered          RightsStatus = "unencumbered"           // 现房
	RightsConstructionMortgaged RightsStatus = "construction_mortgaged" // 在建工程抵押
	RightsSeized                RightsStatus = "seized"                 // 查封
)

// Label 中文展示名称
func (r RightsStatus) Label() string {
	switch r {
	case RightsUnencumbered:
		return "现房"
	case RightsConstructionMortgaged:
		return "在建工程抵押"
	case RightsSeized:
		return "查封"
	}
	return string(r)
}

// ShareType 共有情况
type ShareType string

const (
	ShareSole     ShareType = "sole"      // 单独所有
	ShareJoint    ShareType = "joint"     // 共同共有
	ShareByShares ShareType = "by_shares" // 按份共有
)

// Label 中文展示名称
func (s ShareType) Label() string {
	switch s {
	case ShareSole:
		return "单独所有"
	case ShareJoint:
		return "共同共有"
	case ShareByShares:
		return "按份共有"
	}
	return string(s)
}
