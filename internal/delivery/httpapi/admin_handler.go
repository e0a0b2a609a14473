package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
	uc "github.com/rosemall/flash-order-service/internal/usecase"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
	orderuc "github.com/rosemall/flash-order-service/internal/usecase/order"
)

type AdminHandler struct {
	OrderUsecase     orderuc.OrderUsecase
	ProductUsecase   uc.ProductUsecase
	UserUsecase      uc.UserUsecase
	CouponUsecase    uc.CouponUsecase
	DashboardUsecase uc.DashboardUsecase
	ConfigProvider   domain.SaleConfigProvider
}

func NewAdminHandler(
	orderUsecase orderuc.OrderUsecase,
	productUsecase uc.ProductUsecase,
	userUsecase uc.UserUsecase,
	couponUsecase uc.CouponUsecase,
	dashboardUsecase uc.DashboardUsecase,
	configProvider domain.SaleConfigProvider) *AdminHandler {

	return &AdminHandler{
		OrderUsecase:     orderUsecase,
		ProductUsecase:   productUsecase,
		UserUsecase:      userUsecase,
		CouponUsecase:    couponUsecase,
		DashboardUsecase: dashboardUsecase,
		ConfigProvider:   configProvider,
	}
}

func saleConfigResponse(cfg domain.SaleConfig) gin.H {
	return gin.H{
		"listingStart":          cfg.ListingStart,
		"flashSaleStart":        cfg.FlashSaleStart,
		"dailyGrowthRate":       cfg.DailyGrowthRate.String(),
		"basePriceDate":         cfg.BasePriceDate.Format("2006-01-02"),
		"maxOrdersPerDay":       cfg.MaxOrdersPerDay,
		"couponCashThreshold":   cfg.CouponCashThreshold.StringFixed(2),
		"referralRewardPerUser": cfg.ReferralRewardPerUser.StringFixed(2),
	}
}

func (h *AdminHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, saleConfigResponse(h.ConfigProvider.Current()))
}

type updateConfigRequest struct {
	ListingStart   string `json:"listingStart" binding:"required"`
	FlashSaleStart string `json:"flashSaleStart" binding:"required"`
}

func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	cfg, err := h.ConfigProvider.UpdateSaleWindow(req.ListingStart, req.FlashSaleStart)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saleConfigResponse(cfg))
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	filters := domain.OrderFilters{
		UserID: c.Query("userId"),
	}
	if status := c.Query("status"); status != "" {
		filters.Statuses = []domain.OrderStatus{domain.OrderStatus(status)}
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			writeError(c, fmt.Errorf("%w: invalid from date", domain.ErrValidation))
			return
		}
		filters.DateFrom = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			writeError(c, fmt.Errorf("%w: invalid to date", domain.ErrValidation))
			return
		}
		filters.DateTo = t
	}

	orders, total, err := h.OrderUsecase.ListOrders(filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
}

type adminAddOrderRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Note      string `json:"note"`
}

func (h *AdminHandler) AddOrder(c *gin.Context) {
	var req adminAddOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	order, err := h.OrderUsecase.AdminAddOrder(c.Request.Context(), &orderdto.AdminAddOrderInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Note:      req.Note,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *AdminHandler) MarkPaid(c *gin.Context) {
	order, err := h.OrderUsecase.MarkPaid(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type splitOrderRequest struct {
	Parts int `json:"parts" binding:"required"`
}

func (h *AdminHandler) SplitOrder(c *gin.Context) {
	var req splitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	children, err := h.OrderUsecase.SplitOrder(&orderdto.SplitOrderInput{
		OrderID: c.Param("id"),
		Parts:   req.Parts,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": children})
}

type assignOrderRequest struct {
	Assignee string `json:"assignee" binding:"required"`
}

func (h *AdminHandler) AssignOrder(c *gin.Context) {
	var req assignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	order, err := h.OrderUsecase.AssignOrder(&orderdto.AssignOrderInput{
		OrderID:  c.Param("id"),
		Assignee: req.Assignee,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *AdminHandler) CompleteOrder(c *gin.Context) {
	order, err := h.OrderUsecase.CompleteOrder(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *AdminHandler) CancelOrder(c *gin.Context) {
	order, err := h.OrderUsecase.CancelOrder(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type productRequest struct {
	Title     string   `json:"title" binding:"required"`
	Subtitle  string   `json:"subtitle"`
	BasePrice string   `json:"basePrice" binding:"required"`
	Image     string   `json:"image"`
	Tags      []string `json:"tags"`
}

func (r *productRequest) toInput() (*uc.ProductInput, error) {
	basePrice, err := decimal.NewFromString(r.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base price", domain.ErrValidation)
	}
	return &uc.ProductInput{
		Title:     r.Title,
		Subtitle:  r.Subtitle,
		BasePrice: basePrice,
		Image:     r.Image,
		Tags:      r.Tags,
	}, nil
}

func productResponse(product *domain.Product) gin.H {
	return gin.H{
		"id":        product.ID,
		"title":     product.Title,
		"subtitle":  product.Subtitle,
		"basePrice": product.BasePrice.StringFixed(2),
		"image":     product.Image,
		"tags":      product.Tags,
	}
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}

	product, err := h.ProductUsecase.CreateProduct(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productResponse(product))
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.ProductUsecase.ListProducts()
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]gin.H, len(products))
	for i, product := range products {
		items[i] = productResponse(product)
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}

	product, err := h.ProductUsecase.UpdateProduct(c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, productResponse(product))
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.ProductUsecase.DeleteProduct(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.UserUsecase.ListUsers()
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]gin.H, len(users))
	for i, user := range users {
		items[i] = gin.H{
			"id":            user.ID,
			"phone":         user.Phone,
			"nickname":      user.Nickname,
			"inviteCode":    user.InviteCode,
			"isMainAccount": user.IsMainAccount,
			"createdAt":     user.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"users": items})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.UserUsecase.GetUserByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	quota, err := h.OrderUsecase.RemainingQuota(user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             user.ID,
		"phone":          user.Phone,
		"nickname":       user.Nickname,
		"inviteCode":     user.InviteCode,
		"isMainAccount":  user.IsMainAccount,
		"remainingQuota": quota,
		"createdAt":      user.CreatedAt,
	})
}

type grantCouponRequest struct {
	UserID string `json:"userId" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

func (h *AdminHandler) GrantCoupon(c *gin.Context) {
	var req grantCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(c, fmt.Errorf("%w: invalid amount", domain.ErrValidation))
		return
	}

	coupon, err := h.CouponUsecase.GrantCoupon(&uc.GrantCouponInput{
		UserID: req.UserID,
		Amount: amount,
		Reason: req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     coupon.ID,
		"userId": coupon.UserID,
		"amount": coupon.Amount.StringFixed(2),
		"status": coupon.Status,
		"reason": coupon.Reason,
	})
}

func (h *AdminHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.CouponUsecase.ListCoupons()
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]gin.H, len(coupons))
	for i, coupon := range coupons {
		items[i] = gin.H{
			"id":        coupon.ID,
			"userId":    coupon.UserID,
			"amount":    coupon.Amount.StringFixed(2),
			"status":    coupon.Status,
			"reason":    coupon.Reason,
			"createdAt": coupon.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"coupons": items})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.DashboardUsecase.Stats()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todayOrders":   stats.TodayOrders,
		"todayRevenue":  stats.TodayRevenue.StringFixed(2),
		"totalUsers":    stats.TotalUsers,
		"pendingOrders": stats.PendingOrders,
		"listedOrders":  stats.ListedOrders,
	})
}
