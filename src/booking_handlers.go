package main

import (
	"errors"
	"log"
	"net/http"
	"tbs/src/common"
	"tbs/src/types"
	"tbs/src/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			bookings, err := utils.GetOwnBookings(userId)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		POST("/bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data."})
				return
			}
			intent, verr := common.ValidateBookingRequest(&body, time.Now())
			if verr != nil {
				ctx.JSON(bookingErrorStatus(verr), gin.H{"success": false, "error": verr.Message})
				return
			}
			bookingId, err := utils.CreateNewBooking(intent, userId)
			if err != nil {
				var berr *common.BookingError
				if errors.As(err, &berr) {
					ctx.JSON(bookingErrorStatus(berr), gin.H{"success": false, "error": berr.Message})
					return
				}
				log.Printf("Booking error: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An unexpected error occurred."})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success":    true,
				"message":    "Booking created successfully!",
				"booking_id": bookingId.String(),
			})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			bookingId, _ := uuid.Parse(params.ID)
			booking, err := utils.GetOwnBooking(userId, bookingId)
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			bookingId, _ := uuid.Parse(params.ID)
			if err := utils.CancelOwnBooking(userId, bookingId); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				log.Printf("Could not complete request: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Error while processing request"})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/bookings/:id/review", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.ReviewBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			bookingId, _ := uuid.Parse(params.ID)
			if err := utils.ReviewBookingGuide(userId, bookingId, body.Rating, body.Review); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func bookingErrorStatus(err *common.BookingError) int {
	if err.Kind == common.ErrNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
