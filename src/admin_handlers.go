package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"tbs/src/db"
	"tbs/src/lib/aws"
	"tbs/src/models"
	"tbs/src/types"
	"tbs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/packages", func(ctx *gin.Context) {
			var body types.CreatePackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			packageId, err := utils.CreateNewPackage(&body)
			if err != nil {
				log.Printf("Error creating package: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Error while processing request"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"package_id": packageId.String()})
		}).
		PUT("/packages/:id", func(ctx *gin.Context) {
			var params types.PackageURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			var body types.UpdatePackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			packageId, _ := uuid.Parse(params.ID)
			if err := utils.UpdatePackage(packageId, &body); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/packages/:id", func(ctx *gin.Context) {
			var params types.PackageURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			packageId, _ := uuid.Parse(params.ID)
			if err := utils.DeletePackage(packageId); err != nil {
				if errors.Is(err, utils.ErrPackageProtected) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/packages/:id/image", func(ctx *gin.Context) {
			var params types.PackageURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			file, err := ctx.FormFile("image")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required."})
				return
			}
			src, err := file.Open()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			defer src.Close()

			packageId, _ := uuid.Parse(params.ID)
			key := fmt.Sprintf("packages/%s%s", packageId, filepath.Ext(file.Filename))
			url, err := aws.S3UploadPackageImage(key, src, file.Header.Get("Content-Type"))
			if err != nil {
				log.Printf("Error uploading package image: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error while processing request"})
				return
			}
			if err := utils.SetPackageImage(packageId, key); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"image_url": url})
		}).
		POST("/guides", func(ctx *gin.Context) {
			var body types.CreateGuideRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			guideId, err := utils.CreateNewGuide(&body)
			if err != nil {
				log.Printf("Error creating guide: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Error while processing request"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": guideId})
		}).
		PUT("/guides/:id", func(ctx *gin.Context) {
			var params types.GuideURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			var body types.UpdateGuideRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := utils.UpdateGuide(params.ID, &body); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/guides/:id", func(ctx *gin.Context) {
			var params types.GuideURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			if err := utils.DeleteGuide(params.ID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/bookings", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.
				Model(&models.Booking{}).
				Preload("Package").
				Preload("User").
				Preload("Guide").
				Order("created_at DESC")
			if status := ctx.Query("status"); status != "" {
				q = q.Where("status", status)
			}
			var bookings []models.Booking
			if err := q.Find(&bookings).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		PUT("/bookings/:id/status", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			bookingId, _ := uuid.Parse(params.ID)
			if err := utils.UpdateBookingStatus(bookingId, body.Status); err != nil {
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
