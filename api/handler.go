package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/flightmenu/menu-ocr-service/internal/ai"
	"github.com/flightmenu/menu-ocr-service/internal/auth"
	"github.com/flightmenu/menu-ocr-service/internal/catalog"
	"github.com/flightmenu/menu-ocr-service/internal/db"
	"github.com/flightmenu/menu-ocr-service/internal/menu"
	"github.com/flightmenu/menu-ocr-service/internal/models"
	"github.com/flightmenu/menu-ocr-service/internal/ocr"
	"github.com/flightmenu/menu-ocr-service/internal/services"
	"github.com/flightmenu/menu-ocr-service/internal/storage"
)

const (
	MaxUploadSize = 10 * 1024 * 1024 // 10MB
	Version       = "1.2.0"
)

// Handler handles HTTP requests for menu processing
type Handler struct {
	config *models.Config
	parser *menu.Parser
}

// NewHandler creates a new API handler
func NewHandler(config *models.Config) *Handler {
	return &Handler{
		config: config,
		parser: menu.NewParser(catalog.Default),
	}
}

// SetupRoutes configures the HTTP routes
func (h *Handler) SetupRoutes() *mux.Router {
	router := mux.NewRouter()

	// Main endpoints
	router.HandleFunc("/api/process-menu", h.ProcessMenu).Methods("POST")
	router.HandleFunc("/api/menus", h.GetMenus).Methods("GET")

	// Menu CRUD
	router.HandleFunc("/api/menu/{id}", h.GetMenu).Methods("GET")
	router.HandleFunc("/api/menu/{id}", h.DeleteMenu).Methods("DELETE")
	router.HandleFunc("/api/menu/{id}/select", h.SelectMenuItem).Methods("POST")
	router.HandleFunc("/api/menu/{id}/image", h.GetMenuImage).Methods("GET")

	// Chat assistant
	router.HandleFunc("/api/chat", h.Chat).Methods("POST")

	// Health check
	router.HandleFunc("/health", h.Health).Methods("GET")

	return router
}

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status      string            `json:"status"`
	Version     string            `json:"version"`
	Timestamp   string            `json:"timestamp"`
	Uptime      string            `json:"uptime"`
	Memory      MemoryStats       `json:"memory"`
	Tesseract   ServiceStatus     `json:"tesseract"`
	ImageMagick ServiceStatus     `json:"imageMagick"`
	Database    ServiceStatus     `json:"database"`
	Storage     ServiceStatus     `json:"storage"`
	Catalog     ServiceStatus     `json:"catalog"`
	AI          map[string]string `json:"ai"`
}

// MemoryStats represents memory usage statistics
type MemoryStats struct {
	Allocated string `json:"allocated"`
	Total     string `json:"total"`
	System    string `json:"system"`
}

// ServiceStatus represents the status of a service dependency
type ServiceStatus struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

var startTime = time.Now()

// Health endpoint - enhanced for monitoring
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	tesseractStatus := h.checkTesseract()
	imageMagickStatus := h.checkImageMagick()
	databaseStatus := h.checkDatabase()
	storageStatus := h.checkStorage()
	catalogStatus := h.checkCatalog()

	response := HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(startTime).String(),
		Memory: MemoryStats{
			Allocated: fmt.Sprintf("%.2f MB", float64(m.Alloc)/1024/1024),
			Total:     fmt.Sprintf("%.2f MB", float64(m.TotalAlloc)/1024/1024),
			System:    fmt.Sprintf("%.2f MB", float64(m.Sys)/1024/1024),
		},
		Tesseract:   tesseractStatus,
		ImageMagick: imageMagickStatus,
		Database:    databaseStatus,
		Storage:     storageStatus,
		Catalog:     catalogStatus,
		AI: map[string]string{
			"defaultProvider": h.config.AI.DefaultProvider,
			"ocrEngine":       h.config.OCR.Engine,
		},
	}

	// The text pipeline needs tesseract; the catalog is loaded at startup
	if !tesseractStatus.Available || !catalogStatus.Available {
		response.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}

// checkTesseract verifies Tesseract OCR is available
func (h *Handler) checkTesseract() ServiceStatus {
	cmd := exec.Command("tesseract", "--version")
	output, err := cmd.CombinedOutput()

	if err != nil {
		return ServiceStatus{
			Available: false,
			Error:     "tesseract not found or not executable",
		}
	}

	version := "unknown"
	lines := strings.Split(string(output), "\n")
	if len(lines) > 0 {
		version = strings.TrimSpace(lines[0])
	}

	return ServiceStatus{
		Available: true,
		Version:   version,
	}
}

// checkImageMagick verifies ImageMagick is available
func (h *Handler) checkImageMagick() ServiceStatus {
	cmd := exec.Command("convert", "-version")
	output, err := cmd.CombinedOutput()

	if err != nil {
		return ServiceStatus{
			Available: false,
			Error:     "imagemagick not found or not executable",
		}
	}

	version := "unknown"
	lines := strings.Split(string(output), "\n")
	if len(lines) > 0 {
		version = strings.TrimSpace(lines[0])
	}

	return ServiceStatus{
		Available: true,
		Version:   version,
	}
}

// checkDatabase verifies PostgreSQL connection
func (h *Handler) checkDatabase() ServiceStatus {
	if db.Pool == nil {
		return ServiceStatus{
			Available: false,
			Error:     "database pool not initialized",
		}
	}

	return ServiceStatus{
		Available: true,
		Version:   "PostgreSQL",
	}
}

// checkStorage verifies MinIO connection
func (h *Handler) checkStorage() ServiceStatus {
	if storage.Client == nil {
		return ServiceStatus{
			Available: false,
			Error:     "storage client not initialized",
		}
	}

	return ServiceStatus{
		Available: true,
		Version:   "MinIO S3",
	}
}

// checkCatalog verifies the reference catalog loaded
func (h *Handler) checkCatalog() ServiceStatus {
	if catalog.Default == nil {
		return ServiceStatus{
			Available: false,
			Error:     "reference catalog not loaded",
		}
	}

	return ServiceStatus{
		Available: true,
		Version:   fmt.Sprintf("%d entries", len(catalog.Default.Entries())),
	}
}

// ProcessMenu handles menu photo processing: upload, OCR or vision AI,
// parsing, validation, persistence.
func (h *Handler) ProcessMenu(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	startTime := time.Now()

	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized: "+err.Error())
		return
	}

	// Parse multipart form
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	err = r.ParseMultipartForm(MaxUploadSize)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "File too large or invalid form data")
		return
	}

	// Get file - accept both "file" and "image" field names
	file, header, err := r.FormFile("file")
	if err != nil {
		file, header, err = r.FormFile("image")
		if err != nil {
			h.sendError(w, http.StatusBadRequest, "No file provided (use 'file' or 'image' field)")
			return
		}
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	aiProvider := r.FormValue("aiProvider")
	if aiProvider == "" {
		aiProvider = h.config.AI.DefaultProvider
	}

	// Vision mode reads the photo with a multimodal model instead of the
	// tesseract + heuristic pipeline
	useVisionModelParam := r.FormValue("useVisionModel")
	useVisionModel := useVisionModelParam == "true"

	model := r.FormValue("model")
	language := r.FormValue("language")
	if language == "" {
		language = h.config.OCR.Language
	}

	// Generate unique filename
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	filename := fmt.Sprintf("%s_%s%s",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8],
		storage.GetFileExtension(contentType),
	)

	// Upload to MinIO (if configured)
	var imageURL string
	if storage.Client != nil {
		imageReader := bytes.NewReader(imageData)
		imageURL, err = storage.UploadMenuImage(
			ctx,
			claims.UserID,
			filename,
			imageReader,
			int64(len(imageData)),
			contentType,
		)
		if err != nil {
			// Log but don't fail - image storage is optional
			log.Printf("Warning: failed to upload image to MinIO: %v", err)
		}
	}

	items, rawText, source, ocrDuration, aiDuration, err := h.processMenu(
		imageData,
		useVisionModel,
		aiProvider,
		model,
		language,
	)

	totalDuration := time.Since(startTime).Seconds()

	if err != nil {
		response := models.ProcessResponse{
			Success:       false,
			Error:         err.Error(),
			TotalDuration: totalDuration,
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
		return
	}

	validation := services.NewMenuValidator().Validate(items)

	// Save parsed menu (if configured)
	var savedMenu *db.StoredMenu
	if db.Pool != nil {
		stored := &db.StoredMenu{
			UserID:   claims.UserID,
			ImageURL: imageURL,
			RawText:  rawText,
			Source:   source,
			Items:    items,
		}
		if err := db.SaveMenu(ctx, stored); err != nil {
			log.Printf("Warning: failed to save menu to DB: %v", err)
		} else {
			savedMenu = stored
		}
	}

	responseData := map[string]interface{}{
		"success":       true,
		"items":         items,
		"itemCount":     len(items),
		"source":        source,
		"validation":    validation,
		"ocrDuration":   ocrDuration,
		"aiDuration":    aiDuration,
		"totalDuration": totalDuration,
	}

	// An empty menu is not an error; the client should ask for a better photo
	if len(items) == 0 {
		responseData["retryHint"] = "no menu items recognized - try a clearer, closer photo"
	}

	if savedMenu != nil {
		responseData["menuId"] = savedMenu.ID
		responseData["createdAt"] = savedMenu.CreatedAt
		// Proxy URL so the mobile app can fetch the image with its token
		responseData["imageUrl"] = fmt.Sprintf("/api/menu/%s/image", savedMenu.ID)
		responseData["saved"] = true
	} else {
		responseData["saved"] = false
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(responseData)
}

// processMenu runs either the OCR + heuristic pipeline or a vision model.
func (h *Handler) processMenu(
	imageData []byte,
	useVisionModel bool,
	providerName string,
	modelName string,
	language string,
) ([]models.MenuItem, string, string, float64, float64, error) {
	if useVisionModel {
		// Vision models read the original color photo better than the
		// grayscale-preprocessed one
		imageBase64 := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData)

		provider, err := h.createProvider(providerName, modelName)
		if err != nil {
			return nil, "", "", 0, 0, err
		}

		extractor := ai.NewExtractor(provider)
		items, aiDuration, err := extractor.Extract("", imageBase64)
		if err != nil {
			return nil, "", "", 0, aiDuration, err
		}
		return items, "", provider.Name(), 0, aiDuration, nil
	}

	// Tesseract path: preprocess, OCR, heuristic pipeline
	if !ocr.Available() {
		return nil, "", "", 0, 0, fmt.Errorf("tesseract is not installed")
	}

	ocrStart := time.Now()
	preprocessor := ocr.NewPreprocessor()
	processedImage, err := preprocessor.PreprocessImage(imageData)
	if err != nil {
		return nil, "", "", 0, 0, fmt.Errorf("image preprocessing failed: %w", err)
	}

	tesseract := ocr.NewTesseractOCR(language)
	rawText, err := tesseract.ExtractText(processedImage)
	if err != nil {
		return nil, "", "", 0, 0, fmt.Errorf("OCR failed: %w", err)
	}
	ocrDuration := time.Since(ocrStart).Seconds()

	items := h.parser.ParseText(rawText)
	return items, rawText, "ocr", ocrDuration, 0, nil
}

// createProvider creates the appropriate AI provider
func (h *Handler) createProvider(providerName, modelName string) (ai.Provider, error) {
	switch providerName {
	case "openai":
		model := modelName
		if model == "" {
			model = h.config.AI.OpenAI.Model
		}
		return ai.NewOpenAIProvider(
			h.config.AI.OpenAI.APIKey,
			h.config.AI.OpenAI.BaseURL,
			model,
		), nil

	case "gemini":
		model := modelName
		if model == "" {
			model = h.config.AI.Gemini.Model
		}
		return ai.NewGeminiProvider(
			h.config.AI.Gemini.APIKey,
			model,
		), nil

	case "ollama":
		model := modelName
		if model == "" {
			model = h.config.AI.Ollama.Model
		}
		return ai.NewOllamaProvider(
			h.config.AI.Ollama.BaseURL,
			model,
		), nil

	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerName)
	}
}

// sendError sends an error response
func (h *Handler) sendError(w http.ResponseWriter, statusCode int, message string) {
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
