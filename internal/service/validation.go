package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mautops/filing-gin/internal/model"
	"github.com/shopspring/decimal"
)

// SubmitRequest 提交备案申请请求
// @Description 新建商品现房备案申请的表单字段
type SubmitRequest struct {
	// 楼栋与房屋信息
	BldName       string             `json:"bld_name" example:"Tower A" validate:"required,max=255"`
	BldAddress    string             `json:"bld_address" example:"1 Main St" validate:"required,max=512"`
	TotalFloors   *int               `json:"total_floors" example:"18" validate:"omitempty,gte=0"`
	TotalUnits    *int               `json:"total_units" example:"2" validate:"omitempty,gte=0"`
	HouseNo       string             `json:"house_no" example:"101" validate:"required,max=64"`
	HouseType     model.HouseType    `json:"house_type" example:"residential_flat" validate:"oneof=residential_flat residential_duplex commercial office other"`
	HouseArea     decimal.Decimal    `json:"house_area" swaggertype:"number" example:"88.5"`
	RightsStatus  model.RightsStatus `json:"rights_status" example:"unencumbered" validate:"oneof=unencumbered construction_mortgaged seized"`
	PresalePermit string             `json:"presale_permit" example:"PS-2024-001" validate:"required,max=128"`

	// 卖方信息, SellerCode 为统一社会信用代码, SellerRep 选填
	SellerName    string `json:"seller_name" validate:"required,max=255"`
	SellerCode    string `json:"seller_code" validate:"required,max=64"`
	SellerRep     string `json:"seller_rep" validate:"max=128"`
	SellerContact string `json:"seller_contact" validate:"required,max=64"`

	// 买方信息
	BuyerName      string          `json:"buyer_name" validate:"required,max=255"`
	BuyerIDNo      string          `json:"buyer_id" validate:"required,max=64"`
	BuyerContact   string          `json:"buyer_contact" validate:"required,max=64"`
	BuyerShareType model.ShareType `json:"buyer_share_type" example:"sole" validate:"oneof=sole joint by_shares"`
}

// 建筑面积列为 decimal(12,2)
const houseAreaScale int32 = 2

var maxHouseArea = decimal.New(1, 10)

const (
	defaultTotalFloors = 1
	defaultTotalUnits  = 1
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误信息使用 json 字段名,与表单字段一致
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateSubmission 校验并规范化提交内容
// 纯函数: 不访问存储,返回待入库的申请(不含 ID、业务编号、时间和状态)
func ValidateSubmission(req *SubmitRequest) (*model.ApplicationModel, error) {
	if req == nil {
		return nil, newValidationError("request", "is required")
	}

	normalized := *req
	normalized.trim()
	normalized.applyDefaults()

	var fields []FieldError
	if err := validate.Struct(&normalized); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	}
	if msg := houseAreaMessage(normalized.HouseArea); msg != "" {
		fields = append(fields, FieldError{Field: "house_area", Message: msg})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return normalized.toModel(), nil
}

// trim 去除首尾空白,仅空白视为未填写
func (r *SubmitRequest) trim() {
	for _, s := range []*string{
		&r.BldName, &r.BldAddress, &r.HouseNo, &r.PresalePermit,
		&r.SellerName, &r.SellerCode, &r.SellerRep, &r.SellerContact,
		&r.BuyerName, &r.BuyerIDNo, &r.BuyerContact,
	} {
		*s = strings.TrimSpace(*s)
	}
}

// applyDefaults 未填写的层数、单元数和未选择的枚举项取表单默认值
func (r *SubmitRequest) applyDefaults() {
	if r.TotalFloors == nil {
		r.TotalFloors = intPtr(defaultTotalFloors)
	}
	if r.TotalUnits == nil {
		r.TotalUnits = intPtr(defaultTotalUnits)
	}
	if r.HouseType == "" {
		r.HouseType = model.HouseTypeResidentialFlat
	}
	if r.RightsStatus == "" {
		r.RightsStatus = model.RightsUnencumbered
	}
	if r.BuyerShareType == "" {
		r.BuyerShareType = model.ShareSole
	}
}

func (r *SubmitRequest) toModel() *model.ApplicationModel {
	return &model.ApplicationModel{
		BldName:        r.BldName,
		BldAddress:     r.BldAddress,
		TotalFloors:    *r.TotalFloors,
		TotalUnits:     *r.TotalUnits,
		HouseNo:        r.HouseNo,
		HouseType:      r.HouseType,
		HouseArea:      r.HouseArea,
		RightsStatus:   r.RightsStatus,
		PresalePermit:  r.PresalePermit,
		SellerName:     r.SellerName,
		SellerCode:     r.SellerCode,
		SellerRep:      r.SellerRep,
		SellerContact:  r.SellerContact,
		BuyerName:      r.BuyerName,
		BuyerIDNo:      r.BuyerIDNo,
		BuyerContact:   r.BuyerContact,
		BuyerShareType: r.BuyerShareType,
	}
}

// houseAreaMessage 面积必须为正数且能原样存入 decimal(12,2),不合法时返回错误描述
func houseAreaMessage(area decimal.Decimal) string {
	switch {
	case !area.IsPositive():
		return "must be greater than 0"
	case !area.Equal(area.Round(houseAreaScale)):
		return "must have at most 2 decimal places"
	case area.GreaterThanOrEqual(maxHouseArea):
		return "must be less than 10000000000"
	}
	return ""
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "exceeds maximum length " + fe.Param()
	case "gte":
		return "must not be negative"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}

func intPtr(v int) *int {
	return &v
}
