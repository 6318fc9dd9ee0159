package main

import (
	"errors"
	"net/http"
	"tbs/src/db"
	"tbs/src/lib/aws"
	"tbs/src/models"
	"tbs/src/types"
	"tbs/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func packageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/packages", func(ctx *gin.Context) {
			packages, err := utils.GetActivePackages()
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": packages, "count": len(packages)})
		}).
		GET("/packages/:id", func(ctx *gin.Context) {
			var params types.PackageURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			packageId, _ := uuid.Parse(params.ID)
			db := db.GetDb()
			var pkg models.Package
			err := db.
				Where(&models.Package{ID: packageId, IsActive: true}).
				First(&pkg).
				Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			if pkg.ImageKey != nil {
				if url, err := aws.S3PresignImageURL(*pkg.ImageKey); err == nil {
					pkg.ImageURL = url
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": pkg})
		})
	return g
}
