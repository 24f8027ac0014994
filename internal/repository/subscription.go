package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jay99268/VideoPlatform.Api/internal/apperr"
	"github.com/jay99268/VideoPlatform.Api/internal/model"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// ListActivePlans 获取上架中的订阅套餐（按价格升序）
func (r *SubscriptionRepository) ListActivePlans() ([]model.SubscriptionPlan, error) {
	var plans []model.SubscriptionPlan
	err := r.db.Where("is_active = ?", true).
		Order("price_usd ASC").
		Find(&plans).Error
	return plans, err
}

// RedeemResult 卡密兑换结果
type RedeemResult struct {
	Plan         model.SubscriptionPlan
	VipExpiresAt time.Time
}

// Redeem 兑换卡密：校验卡密、延长用户 VIP、落订单流水，全部在一个事务内
// VIP 时长从 max(now, 当前过期时间) 起累加，未过期的剩余时长不会被吞掉
func (r *SubscriptionRepository) Redeem(userID, code string, now time.Time) (*RedeemResult, error) {
	var result RedeemResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var rc model.RedemptionCode
		err := tx.Where("code = ?", code).First(&rc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.BadRequest("卡密不存在。")
		}
		if err != nil {
			return err
		}

		if rc.IsRedeemed {
			return apperr.BadRequest("该卡密已被使用。")
		}
		if rc.ExpiresAt != nil && !rc.ExpiresAt.After(now) {
			return apperr.BadRequest("该卡密已过期。")
		}

		var plan model.SubscriptionPlan
		if err := tx.First(&plan, rc.PlanID).Error; err != nil {
			return err
		}

		var user model.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}

		// 从当前过期时间或现在（取较晚者）起延长
		base := now
		if user.VipExpiresAt != nil && user.VipExpiresAt.After(now) {
			base = *user.VipExpiresAt
		}
		expiresAt := base.AddDate(0, 0, plan.DurationInDays)

		err = tx.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"vip_status":     model.VipStatusActive,
			"vip_expires_at": expiresAt,
		}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&model.RedemptionCode{}).Where("id = ?", rc.ID).Updates(map[string]interface{}{
			"is_redeemed":         true,
			"redeemed_by_user_id": userID,
			"redeemed_at":         now,
		}).Error
		if err != nil {
			return err
		}

		planID := plan.ID
		transaction := &model.Transaction{
			ID:            uuid.NewString(),
			UserID:        userID,
			PlanID:        &planID,
			AmountUsd:     0,
			PaymentMethod: "redemption_code",
			Status:        "completed",
			CreatedAt:     now,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		result.Plan = plan
		result.VipExpiresAt = expiresAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
