package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/middleware"
	"github.com/jay99268/VideoPlatform.Api/internal/utils"
)

// SubscriptionPlanDto 订阅套餐响应数据
type SubscriptionPlanDto struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	PriceUsd         float64  `json:"priceUsd"`
	OriginalPriceUsd *float64 `json:"originalPriceUsd"`
	Description      string   `json:"description"`
	Tag              string   `json:"tag,omitempty"`
}

// GetSubscriptionPlans 获取上架中的订阅套餐
func (h *Handler) GetSubscriptionPlans(c *gin.Context) {
	plans, err := h.Repos.Subscription.ListActivePlans()
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]SubscriptionPlanDto, 0, len(plans))
	for _, p := range plans {
		dto := SubscriptionPlanDto{
			ID:               p.ID,
			Name:             p.Name,
			PriceUsd:         p.PriceUsd,
			OriginalPriceUsd: p.OriginalPriceUsd,
			Description:      "标准单月价",
		}
		// 按时长生成描述和推荐标签
		switch {
		case p.DurationInDays >= 365:
			dto.Description = fmt.Sprintf("折合 $%.2f/月", p.PriceUsd/12)
			dto.Tag = "超值推荐"
		case p.DurationInDays >= 90:
			dto.Description = fmt.Sprintf("折合 $%.2f/月", p.PriceUsd/3)
		}
		items = append(items, dto)
	}

	c.JSON(200, items)
}

// RedeemRequest 卡密兑换请求
type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// RedeemCode 兑换卡密开通/续期 VIP
func (h *Handler) RedeemCode(c *gin.Context) {
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "卡密不能为空。")
		return
	}

	result, err := h.Repos.Subscription.Redeem(middleware.GetUserID(c), req.Code, time.Now())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, gin.H{
		"message":      fmt.Sprintf("兑换成功，已开通「%s」。", result.Plan.Name),
		"planName":     result.Plan.Name,
		"vipExpiresAt": result.VipExpiresAt,
	})
}
