package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ollamaSettings is the mutable slice of configuration: operators can repoint
// the summarizer at a different Ollama server without a restart.
type ollamaSettings struct {
	mu      sync.RWMutex
	baseURL string
	model   string
}

var currentOllama ollamaSettings

// InitRuntimeConfig seeds the runtime-adjustable settings from the static config
func InitRuntimeConfig(ollamaBaseURL, ollamaModel string) {
	currentOllama.mu.Lock()
	currentOllama.baseURL = ollamaBaseURL
	currentOllama.model = ollamaModel
	currentOllama.mu.Unlock()
}

// GetRuntimeOllamaBaseURL returns the Ollama base URL as currently configured
func GetRuntimeOllamaBaseURL() string {
	currentOllama.mu.RLock()
	defer currentOllama.mu.RUnlock()
	return currentOllama.baseURL
}

// GetRuntimeOllamaModel returns the Ollama model as currently configured
func GetRuntimeOllamaModel() string {
	currentOllama.mu.RLock()
	defer currentOllama.mu.RUnlock()
	return currentOllama.model
}

// GetOllamaSettings returns the active Ollama configuration
// GET /api/settings/ollama
func GetOllamaSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ollama_base_url": GetRuntimeOllamaBaseURL(),
		"ollama_model":    GetRuntimeOllamaModel(),
	})
}

// UpdateOllamaSettings changes the Ollama configuration at runtime. An empty
// model keeps the current one.
// PUT /api/settings/ollama
func UpdateOllamaSettings(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollama_base_url" binding:"required"`
		OllamaModel   string `json:"ollama_model,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currentOllama.mu.Lock()
	currentOllama.baseURL = req.OllamaBaseURL
	if req.OllamaModel != "" {
		currentOllama.model = req.OllamaModel
	}
	currentOllama.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message":         "Ollama settings updated successfully",
		"ollama_base_url": GetRuntimeOllamaBaseURL(),
		"ollama_model":    GetRuntimeOllamaModel(),
	})
}

// TestOllamaConnection probes the Ollama server's /api/tags listing. A base
// URL in the body tests a candidate server; otherwise the configured one.
// POST /api/settings/ollama/test
func TestOllamaConnection(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollama_base_url"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.OllamaBaseURL == "" {
		req.OllamaBaseURL = GetRuntimeOllamaBaseURL()
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(req.OllamaBaseURL + "/api/tags")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected":   false,
			"status_code": resp.StatusCode,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":       true,
		"ollama_base_url": req.OllamaBaseURL,
	})
}
