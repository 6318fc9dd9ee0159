package main

import (
	"log"
	"net/http"
	"tbs/src/lib"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
)

func chatbotHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/chatbot/response", func(ctx *gin.Context) {
			var body types.ChatRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Message is required."})
				return
			}
			reply, err := lib.GetChatbot().Reply(ctx.Request.Context(), body.Message)
			if err != nil {
				log.Printf("Chatbot error: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "The assistant is unavailable right now."})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"response": reply})
		})
	return g
}
