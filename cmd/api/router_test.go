package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	setGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())

	setGinMode("test")
	assert.Equal(t, gin.TestMode, gin.Mode())

	setGinMode("")
	assert.Equal(t, gin.DebugMode, gin.Mode())
}
