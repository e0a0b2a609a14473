package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	uc "github.com/rosemall/flash-order-service/internal/usecase"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
	orderuc "github.com/rosemall/flash-order-service/internal/usecase/order"
)

type StorefrontHandler struct {
	OrderUsecase     orderuc.OrderUsecase
	FlashSaleUsecase uc.FlashSaleUsecase
	ProfileUsecase   uc.ProfileUsecase
	CouponUsecase    uc.CouponUsecase
	ReferralUsecase  uc.ReferralUsecase
}

func NewStorefrontHandler(
	orderUsecase orderuc.OrderUsecase,
	flashSaleUsecase uc.FlashSaleUsecase,
	profileUsecase uc.ProfileUsecase,
	couponUsecase uc.CouponUsecase,
	referralUsecase uc.ReferralUsecase) *StorefrontHandler {

	return &StorefrontHandler{
		OrderUsecase:     orderUsecase,
		FlashSaleUsecase: flashSaleUsecase,
		ProfileUsecase:   profileUsecase,
		CouponUsecase:    couponUsecase,
		ReferralUsecase:  referralUsecase,
	}
}

func (h *StorefrontHandler) FlashSale(c *gin.Context) {
	snapshot, err := h.FlashSaleUsecase.Snapshot()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	products, err := h.FlashSaleUsecase.ListPricedProducts()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *StorefrontHandler) Profile(c *gin.Context) {
	profile, err := h.ProfileUsecase.Profile(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":            toUserResponse(profile.User),
		"todayOrders":     profile.TodayOrders,
		"remainingQuota":  profile.RemainingQuota,
		"couponsBalance":  profile.CouponsBalance.StringFixed(2),
		"referralCount":   profile.ReferralCount,
		"cashThreshold":   profile.CashThreshold.StringFixed(2),
		"agreementSigned": profile.AgreementSigned,
	})
}

type createOrderRequest struct {
	ProductID         string `json:"productId" binding:"required"`
	Note              string `json:"note"`
	Signature         string `json:"signature"`
	AgreementAccepted bool   `json:"agreementAccepted"`
}

func (h *StorefrontHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	order, err := h.OrderUsecase.CreateFlashOrder(c.Request.Context(), &orderdto.CreateFlashOrderInput{
		UserID:            currentUserID(c),
		ProductID:         req.ProductID,
		Note:              req.Note,
		Signature:         req.Signature,
		AgreementAccepted: req.AgreementAccepted,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *StorefrontHandler) ListOrders(c *gin.Context) {
	orders, err := h.OrderUsecase.ListOrdersByUserID(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type couponResponse struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *StorefrontHandler) ListCoupons(c *gin.Context) {
	userID := currentUserID(c)

	coupons, err := h.CouponUsecase.ListCouponsByUserID(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	balance, err := h.CouponUsecase.Balance(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]couponResponse, len(coupons))
	for i, coupon := range coupons {
		items[i] = couponResponse{
			ID:        coupon.ID,
			Amount:    coupon.Amount.StringFixed(2),
			Status:    string(coupon.Status),
			Reason:    coupon.Reason,
			CreatedAt: coupon.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance.StringFixed(2), "coupons": items})
}

func (h *StorefrontHandler) ListReferrals(c *gin.Context) {
	summary, err := h.ReferralUsecase.Summary(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	entries := make([]gin.H, len(summary.Entries))
	for i, entry := range summary.Entries {
		entries[i] = gin.H{
			"id":        entry.ID,
			"nickname":  entry.Nickname,
			"phone":     entry.Phone,
			"createdAt": entry.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"inviteCode":  summary.InviteCode,
		"count":       summary.Count,
		"totalReward": summary.TotalReward.StringFixed(2),
		"referrals":   entries,
	})
}
