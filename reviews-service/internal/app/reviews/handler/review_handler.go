package handler

import (
	"net/http"

	"chillgamer/reviews-service/internal/app/reviews/entity"
	"chillgamer/reviews-service/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

// ListReviews GET /reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListTopReviews GET /topreviews
func (h *ReviewHandler) ListTopReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListTopReviews(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get top reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListReviewsByCriteria GET /reviewsforall?sortBy=&filterBy=
func (h *ReviewHandler) ListReviewsByCriteria(c *gin.Context) {
	var criteria entity.ListCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	reviews, err := h.reviewService.ListReviewsByCriteria(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err, "Failed to get reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListMyReviews GET /myreviews?searchParams=<email>
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviewsBySubmitter(c.Request.Context(), c.Query("searchParams"))
	if err != nil {
		respondError(c, err, "Failed to get reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := validateID(h.validator, c)
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// CreateReview POST /reviews (и старый путь POST /review)
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var review entity.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.reviewService.CreateReview(c.Request.Context(), &review)
	if err != nil {
		respondError(c, err, "Failed to create review")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReplaceReview PUT /reviews/:id
func (h *ReviewHandler) ReplaceReview(c *gin.Context) {
	id, ok := validateID(h.validator, c)
	if !ok {
		return
	}

	var fields entity.ReviewFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.reviewService.ReplaceReview(c.Request.Context(), id, fields)
	if err != nil {
		respondError(c, err, "Failed to update review")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := validateID(h.validator, c)
	if !ok {
		return
	}

	result, err := h.reviewService.DeleteReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete review")
		return
	}

	c.JSON(http.StatusOK, result)
}
