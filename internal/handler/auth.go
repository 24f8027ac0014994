package handler

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/middleware"
	"github.com/jay99268/VideoPlatform.Api/internal/utils"
)

// 验证码有效期5分钟
const verificationCodeTTL = 5 * time.Minute

// SendCodeRequest 发送验证码请求
type SendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SendVerificationCode 发送注册验证码
func (h *Handler) SendVerificationCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "邮箱不能为空。")
		return
	}

	// 生成6位随机数字验证码，按邮箱缓存
	code := fmt.Sprintf("%06d", rand.IntN(900000)+100000)
	utils.CacheSet(utils.VerificationCodeKey(req.Email), code, verificationCodeTTL)

	subject := "您的注册验证码"
	message := fmt.Sprintf("欢迎注册流光影院！您的验证码是：%s。该验证码5分钟内有效。", code)
	if err := h.Email.Send(req.Email, subject, message); err != nil {
		c.Error(err)
		return
	}

	utils.Message(c, "验证码已发送至您的邮箱，请注意查收。")
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username         string `json:"username" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required"`
	VerificationCode string `json:"verificationCode"` // 验证开关关闭时可以不传
}

// Register 注册新用户
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "注册信息不完整。")
		return
	}

	// 1. 按配置决定是否校验验证码
	verificationEnabled, err := h.Settings.IsEmailVerificationEnabled()
	if err != nil {
		c.Error(err)
		return
	}

	cacheKey := utils.VerificationCodeKey(req.Email)
	if verificationEnabled {
		stored, ok := utils.CacheGet(cacheKey)
		if !ok || stored.(string) != req.VerificationCode {
			utils.BadRequest(c, "验证码错误或已过期。")
			return
		}
	}

	// 2. 检查邮箱是否已注册
	exists, err := h.Repos.User.EmailExists(req.Email)
	if err != nil {
		c.Error(err)
		return
	}
	if exists {
		utils.BadRequest(c, "该邮箱已被注册。")
		return
	}

	// 3. 创建新用户，按配置赠送 VIP 天数
	vipDays, err := h.Settings.NewUserVipDays()
	if err != nil {
		c.Error(err)
		return
	}

	if _, err := h.Repos.User.Create(req.Username, req.Email, req.Password, vipDays); err != nil {
		c.Error(err)
		return
	}

	// 4. 注册成功后移除验证码，一码一用
	if verificationEnabled {
		utils.CacheDelete(cacheKey)
	}

	utils.Message(c, "注册成功！")
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录成功后返回的用户信息
type LoginResponse struct {
	Token        string     `json:"token"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	VipStatus    string     `json:"vipStatus"`
	VipExpiresAt *time.Time `json:"vipExpiresAt"`
}

// Login 登录验证
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "邮箱和密码不能为空。")
		return
	}

	user, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	// 邮箱不存在和密码错误返回同样的提示
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "邮箱或密码错误。")
		return
	}

	token, err := middleware.GenerateToken(user, h.Config)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, LoginResponse{
		Token:        token,
		Username:     user.Username,
		Email:        user.Email,
		VipStatus:    user.VipStatus,
		VipExpiresAt: user.VipExpiresAt,
	})
}

// RegistrationSettings 查询注册相关的功能开关（供前端决定是否展示验证码输入框）
func (h *Handler) RegistrationSettings(c *gin.Context) {
	verificationEnabled, err := h.Settings.IsEmailVerificationEnabled()
	if err != nil {
		c.Error(err)
		return
	}
	vipDays, err := h.Settings.NewUserVipDays()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(200, gin.H{
		"emailVerificationEnabled": verificationEnabled,
		"newUserVipDays":           vipDays,
	})
}
