package dto

// AvailabilityResponse là kết quả tra cứu phòng trống cho một loại phòng
type AvailabilityResponse struct {
	UnitTypeID     uint       `json:"unitTypeId"`
	CheckInDate    string     `json:"checkInDate"`
	CheckOutDate   string     `json:"checkOutDate"`
	AvailableCount int        `json:"availableCount"`
	Units          []UnitInfo `json:"units"`
}

// UnitInfo là thông tin rút gọn của một phòng trong kết quả tra cứu
type UnitInfo struct {
	UnitID     uint   `json:"unitId"`
	UnitTypeID uint   `json:"unitTypeId"`
	Name       string `json:"name"`
	Floor      int    `json:"floor"`
}

// BlockRequest là dữ liệu tạo khoảng chặn phòng (bảo trì, giữ nội bộ...)
type BlockRequest struct {
	UnitID   uint   `json:"unitId" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Reason   string `json:"reason"`
}
