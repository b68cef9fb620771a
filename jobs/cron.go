package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ReservationReleaser giải phóng các reservation chờ thanh toán quá hạn
type ReservationReleaser interface {
	ReleaseExpired(ctx context.Context, ttl time.Duration) (int, error)
}

var reservationReleaser ReservationReleaser

// SetReservationReleaser thiết lập implementation cho ReservationReleaser
func SetReservationReleaser(releaser ReservationReleaser) {
	reservationReleaser = releaser
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, pendingTTL time.Duration) error {
	// Quét mỗi 5 phút, trả phòng của các đơn giữ chỗ quá hạn về quỹ trống
	_, err := c.AddFunc("*/5 * * * *", func() {
		if reservationReleaser == nil {
			log.Printf("Lỗi: ReservationReleaser chưa được thiết lập")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		released, err := reservationReleaser.ReleaseExpired(ctx, pendingTTL)
		if err != nil {
			log.Printf("Lỗi khi giải phóng reservation quá hạn: %v", err)
			return
		}
		if released > 0 {
			log.Printf("Đã giải phóng %d reservation quá hạn thanh toán", released)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
