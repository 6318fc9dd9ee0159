package main

import (
	"errors"
	"net/http"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"
	"tbs/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func guideHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/guides", func(ctx *gin.Context) {
			guides, err := utils.GetAvailableGuides()
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guides, "count": len(guides)})
		}).
		GET("/guides/:id", func(ctx *gin.Context) {
			var params types.GuideURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			db := db.GetDb()
			var guide models.Guide
			err := db.
				Where(&models.Guide{ID: params.ID}).
				Preload("Destinations").
				Preload("Specialities").
				Preload("Languages").
				First(&guide).
				Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			avg, err := guide.AverageRating(db)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guide, "average_rating": avg})
		})
	return g
}
