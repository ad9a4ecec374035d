package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"roomstay/internal/helpers"
	"roomstay/internal/models"
	"roomstay/internal/services"
)

// ListBookings returns the caller's bookings split into upcoming and past.
func ListBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := userFromContext(c)
		if !ok {
			return
		}

		schedule, err := b.ListBookings(c.Request.Context(), userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(schedule, ""))
	}
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := userFromContext(c)
		if !ok {
			return
		}

		var req struct {
			RoomID      string `json:"room_id" binding:"required"`
			BookingDate string `json:"booking_date" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := b.CreateBooking(c.Request.Context(), helpers.StringTrim(req.RoomID), req.BookingDate, userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking created successfully"))
	}
}

// CancelBooking resolves the booking, checks ownership, then cancels. The
// cancellation window is strict: a booking dated exactly now is refused. The
// response carries the caller's schedule with the cancelled booking pruned
// locally, no second query after the delete.
func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, userId, ok := userFromContext(c)
		if !ok {
			return
		}

		bookingID := helpers.StringTrim(c.Param("id"))
		parsedId, err := primitive.ObjectIDFromHex(bookingID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		booking, err := b.GetBooking(c.Request.Context(), parsedId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		if booking.UserID != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("you can only cancel your own bookings"))
			return
		}

		schedule, err := b.ListBookings(c.Request.Context(), booking.UserID)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		if err := b.CancelBooking(c.Request.Context(), booking); err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		schedule.Remove(booking.ID)

		c.JSON(http.StatusOK, models.SuccessResponse(schedule, "Your booking has been successfully cancelled"))
	}
}

// DownloadReceipt streams a PDF confirmation for one of the caller's
// bookings.
func DownloadReceipt(b *services.BookingService, r *services.ReceiptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, userId, ok := userFromContext(c)
		if !ok {
			return
		}

		bookingID := helpers.StringTrim(c.Param("id"))
		parsedId, err := primitive.ObjectIDFromHex(bookingID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid booking ID format"))
			return
		}

		booking, err := b.GetBooking(c.Request.Context(), parsedId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		if booking.UserID != userId && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("you can only download your own receipts"))
			return
		}

		pdfBytes, filename, err := r.GenerateReceipt(c.Request.Context(), booking, claims.Email)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}
