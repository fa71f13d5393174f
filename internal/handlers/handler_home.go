package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeText = "Bun venit la API-ul de conversii de unități!"

// getHome godoc
// @Summary Show the welcome text.
// @Description Plain text greeting, useful as a liveness probe.
// @Tags root
// @Accept */*
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.String(http.StatusOK, welcomeText)
}

// getHealth godoc
// @Summary Health check
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
