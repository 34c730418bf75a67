package handler

import (
	"net/http"

	"chillgamer/reviews-service/internal/app/reviews/entity"
	"chillgamer/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// WishlistHandler - /wishlist и /mywatchlist
type WishlistHandler struct {
	wishlistService service.WishlistServiceInterface
	validator       *validator.Validate
}

func NewWishlistHandler(wishlistService service.WishlistServiceInterface) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		validator:       validator.New(),
	}
}

func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	docs, err := h.wishlistService.ListWishlist(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get wishlist")
		return
	}

	c.JSON(http.StatusOK, docs)
}

// ListMyWishlist GET /mywatchlist?searchParams=<owner>
func (h *WishlistHandler) ListMyWishlist(c *gin.Context) {
	docs, err := h.wishlistService.ListWishlistByOwner(c.Request.Context(), c.Query("searchParams"))
	if err != nil {
		respondError(c, err, "Failed to get wishlist")
		return
	}

	c.JSON(http.StatusOK, docs)
}

func (h *WishlistHandler) CreateWishlistEntry(c *gin.Context) {
	var doc entity.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.wishlistService.CreateWishlistEntry(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err, "Failed to add to wishlist")
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteWishlistEntry DELETE /mywatchlist/:id
func (h *WishlistHandler) DeleteWishlistEntry(c *gin.Context) {
	id, ok := validateID(h.validator, c)
	if !ok {
		return
	}

	result, err := h.wishlistService.DeleteWishlistEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete wishlist entry")
		return
	}

	c.JSON(http.StatusOK, result)
}

type UserHandler struct {
	userService service.UserServiceInterface
}

func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser POST /usercoll
func (h *UserHandler) CreateUser(c *gin.Context) {
	var doc entity.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.userService.CreateUser(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, result)
}
